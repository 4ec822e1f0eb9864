// This file is part of Locutus.
//
// Locutus is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Locutus is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Locutus.  If not, see <https://www.gnu.org/licenses/>.

package locutus

import (
	"fmt"

	"github.com/jetsetilly/locutus/crc"
	"github.com/jetsetilly/locutus/hardware/memory/bus"
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/locutus/metadata"
	"github.com/jetsetilly/locutus/hardware/preferences"
	"github.com/jetsetilly/locutus/random"
)

// Capacity is the number of 16 bit words in the Locutus store.
const Capacity = 512 * 1024

// The number of paragraphs in the memory map and the number of chapters and
// pages in the page flip table.
const (
	NumParagraphs = 256
	NumChapters   = 16
	NumPages      = 16
)

// masks applied to values stored in the memory map and page flip tables
const (
	memMapMask      = 0x07ff
	pageFlipMapMask = 0x007f
)

// the initial value of the JLP random number generator
const jlpRandSeed = 0x4a5a6a7a

// indexes into the memory map arrays
const (
	active    = 0
	resetCopy = 1
)

// Locutus is the Locutus cartridge.
type Locutus struct {
	prefs *preferences.Preferences

	// the invalidator is notified when the memory map changes. in practice
	// this is the CPU decode cache
	inv bus.Invalidator

	ram         [Capacity]uint16
	initialized [Capacity / 64]uint64

	// the memory map and permissions. the first index selects the active
	// copy or the reset copy
	memMap  [2][NumParagraphs]uint16
	memPerm [2][NumParagraphs]Perm

	// the page flip table
	pflMap  [NumChapters][NumPages]uint16
	pflPerm [NumChapters][NumPages]Perm

	// the most recent page flipped into each chapter. only used to restore
	// chapters 8 and 9 when the JLP accelerator is switched off
	bsel [NumChapters]uint8

	// UID of the cartridge. zero if the cartridge does not have one
	UID uint64

	metadata *metadata.Metadata

	// feature flags that have no equivalent in the metadata. retained so
	// that the flags survive a round trip through FeatureFlags() and
	// SetFeatureFlags()
	otherFlags FeatureFlags

	// scrambling key of a scrambled LUIGI file. scrambled images can not be
	// emulated but the key is kept for reporting
	scrambled bool
	druid     [16]uint8

	jlp jlp

	// the extended instruction set should be made available to the CPU.
	// updated on reset
	ltoISA bool
}

// NewLocutus is the preferred method of initialisation for the Locutus
// type. The preferences argument can be nil.
func NewLocutus(prefs *preferences.Preferences) *Locutus {
	cart := &Locutus{
		prefs:    prefs,
		metadata: metadata.NewMetadata(),
	}

	seed := uint32(jlpRandSeed)
	if prefs != nil && prefs.RandSeed.Get().(int) != 0 {
		rnd := random.NewRandom(uint64(prefs.RandSeed.Get().(int)))
		seed = uint32(rnd.Uint16())<<16 | uint32(rnd.Uint16())
	}

	cart.jlp.crc16 = crc.JLP16.New(0)
	cart.jlp.rand = crc.Zip.New(seed)

	return cart
}

// Plumb the invalidator into the cartridge. The invalidator is called
// whenever a change to the memory map changes the content of the address
// space.
func (cart *Locutus) Plumb(inv bus.Invalidator) {
	cart.inv = inv
}

// SetXRegs connects the CPU's extended register file to the JLP window at
// $9F90 - $9F9F. The registers are accessed directly and not copied.
func (cart *Locutus) SetXRegs(x *[16]uint16) {
	cart.jlp.xregs = x
}

func (cart *Locutus) invalidate(lo uint16, hi uint16) {
	if cart.inv != nil {
		cart.inv.Invalidate(lo, hi)
	}
}

func (cart *Locutus) String() string {
	return fmt.Sprintf("Locutus (%s)", cart.metadata.Name)
}

func validateAddr(fn string, addr uint32) {
	if addr >= Capacity {
		panic(fmt.Sprintf("locutus: %s: address out of range (%#x)", fn, addr))
	}
}

// ReadRAM returns the word in the store. Panics if the address is outside of
// the store.
func (cart *Locutus) ReadRAM(addr uint32) uint16 {
	validateAddr("ReadRAM", addr)
	return cart.ram[addr]
}

// WriteRAM stores a word in the store and marks it as initialised. Panics if
// the address is outside of the store.
func (cart *Locutus) WriteRAM(addr uint32, data uint16) {
	validateAddr("WriteRAM", addr)
	cart.ram[addr] = data
	cart.initialized[addr>>6] |= 1 << (addr & 63)
}

// Initialized returns true if the address in the store has been written to.
func (cart *Locutus) Initialized(addr uint32) bool {
	validateAddr("Initialized", addr)
	return cart.initialized[addr>>6]&(1<<(addr&63)) != 0
}

// SetInitialized changes the initialised state of an address in the store.
func (cart *Locutus) SetInitialized(addr uint32, init bool) {
	validateAddr("SetInitialized", addr)
	if init {
		cart.initialized[addr>>6] |= 1 << (addr & 63)
	} else {
		cart.initialized[addr>>6] &^= 1 << (addr & 63)
	}
}

// Span is an inclusive range of addresses in the store.
type Span struct {
	Lo uint32
	Hi uint32
}

// InitializedSpans returns the ranges of the store that have been written
// to, in ascending order.
func (cart *Locutus) InitializedSpans() []Span {
	var spans []Span

	var lo uint32
	inSpan := false

	for addr := uint32(0); addr < Capacity; addr++ {
		// skip words of the bitset quickly
		if addr&63 == 0 {
			w := cart.initialized[addr>>6]
			if (w == 0 && !inSpan) || (w == ^uint64(0) && inSpan) {
				addr += 63
				continue
			}
		}

		init := cart.initialized[addr>>6]&(1<<(addr&63)) != 0
		if !inSpan && init {
			lo = addr
			inSpan = true
		} else if inSpan && !init {
			spans = append(spans, Span{Lo: lo, Hi: addr - 1})
			inSpan = false
		}
	}

	if inSpan {
		spans = append(spans, Span{Lo: lo, Hi: Capacity - 1})
	}

	return spans
}

func copyIndex(reset bool) int {
	if reset {
		return resetCopy
	}
	return active
}

// MemMap returns the memory map entry for the paragraph. The reset argument
// selects the reset copy of the map.
func (cart *Locutus) MemMap(para uint8, reset bool) uint16 {
	return cart.memMap[copyIndex(reset)][para]
}

// SetMemMap changes the memory map entry for the paragraph. Only the lower 11
// bits of the value are used.
func (cart *Locutus) SetMemMap(para uint8, reset bool, m uint16) {
	cart.memMap[copyIndex(reset)][para] = m & memMapMask
}

// MemPerm returns the permissions for the paragraph.
func (cart *Locutus) MemPerm(para uint8, reset bool) Perm {
	return cart.memPerm[copyIndex(reset)][para]
}

// SetMemPerm changes the permissions for the paragraph.
func (cart *Locutus) SetMemPerm(para uint8, reset bool, perm Perm) {
	cart.memPerm[copyIndex(reset)][para] = perm & permMask
}

// PageFlipMap returns the page flip table entry for the chapter and page.
// The value is the 4K block of the store that the page addresses.
func (cart *Locutus) PageFlipMap(chap uint8, page uint8) uint16 {
	return cart.pflMap[chap&0xf][page&0xf]
}

// SetPageFlipMap changes the page flip table entry. Only the lower 7 bits of
// the value are used.
func (cart *Locutus) SetPageFlipMap(chap uint8, page uint8, m uint16) {
	cart.pflMap[chap&0xf][page&0xf] = m & pageFlipMapMask
}

// PageFlipPerm returns the permissions of the page flip table entry.
func (cart *Locutus) PageFlipPerm(chap uint8, page uint8) Perm {
	return cart.pflPerm[chap&0xf][page&0xf]
}

// SetPageFlipPerm changes the permissions of the page flip table entry.
func (cart *Locutus) SetPageFlipPerm(chap uint8, page uint8, perm Perm) {
	cart.pflPerm[chap&0xf][page&0xf] = perm & permMask
}

// SetPageFlip changes the map and permissions of the page flip table entry.
func (cart *Locutus) SetPageFlip(chap uint8, page uint8, m uint16, perm Perm) {
	cart.SetPageFlipMap(chap, page, m)
	cart.SetPageFlipPerm(chap, page, perm)
}

// Metadata returns the cartridge metadata. Changes to the compatibility
// settings take effect on the next reset.
func (cart *Locutus) Metadata() *metadata.Metadata {
	return cart.metadata
}

// SetMetadata replaces the cartridge metadata.
func (cart *Locutus) SetMetadata(m *metadata.Metadata) {
	if m == nil {
		m = metadata.NewMetadata()
	}
	cart.metadata = m
}

// SetScrambled records the scrambling key of a scrambled image. A nil key
// means the image is not scrambled.
func (cart *Locutus) SetScrambled(druid []uint8) {
	cart.scrambled = druid != nil
	clear(cart.druid[:])
	copy(cart.druid[:], druid)
}

// Scrambled returns the scrambling key if the image was scrambled.
func (cart *Locutus) Scrambled() ([16]uint8, bool) {
	return cart.druid, cart.scrambled
}

// DRUID returns the scrambling key formatted in the way it is shown to the
// user.
func (cart *Locutus) DRUID() string {
	d := cart.druid
	return fmt.Sprintf("%02X%02X:%02X%02X:%02X%02X:%02X%02X:%02X%02X:%02X%02X:%02X%02X:%02X%02X",
		d[15], d[14], d[13], d[12], d[11], d[10], d[9], d[8],
		d[7], d[6], d[5], d[4], d[3], d[2], d[1], d[0])
}

// LTOISA returns true if the extended instruction set of the CPU should be
// enabled. The value is updated on reset.
func (cart *Locutus) LTOISA() bool {
	return cart.ltoISA
}
