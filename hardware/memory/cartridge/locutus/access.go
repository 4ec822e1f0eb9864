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
	"github.com/jetsetilly/locutus/hardware/memory"
	"github.com/jetsetilly/locutus/hardware/memory/bus"
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/locutus/metadata"
	"github.com/jetsetilly/locutus/logger"
)

// address ranges that Locutus never responds to
func unmapped(addr uint16) bool {
	return addr <= 0x04ff ||
		(addr >= 0x1000 && addr <= 0x1fff) ||
		(addr >= 0x3000 && addr <= 0x47ff)
}

// the JLP accelerator windows as seen by a read
func jlpReadWindow(addr uint16) bool {
	return (addr >= 0x8000 && addr <= 0x803f) || (addr >= 0x9f80 && addr <= 0x9fff)
}

// the JLP accelerator windows as seen by a write. $9FFF is not included
// because it is also the page flip address for chapter 9
func jlpWriteWindow(addr uint16) bool {
	return (addr >= 0x8000 && addr <= 0x803f) || (addr >= 0x9f80 && addr <= 0x9ffe)
}

// translate a CPU address to an address in the store through the active
// memory map
func (cart *Locutus) translate(addr uint16) uint32 {
	m := uint32(cart.memMap[active][addr>>8])
	return m<<8 | uint32(addr&0xff)
}

// Read implements the bus.CPUBus interface.
func (cart *Locutus) Read(addr uint16) uint16 {
	return cart.read(addr, false)
}

// read ignores the permissions of the paragraph if force is true
func (cart *Locutus) read(addr uint16, force bool) uint16 {
	cart.jlp.rand.Update(uint32(addr), 16)

	if cart.jlp.sleep > 0 {
		cart.jlp.sleep--
		return bus.Unmapped
	}

	if unmapped(addr) {
		return bus.Unmapped
	}

	if cart.jlp.on && jlpReadWindow(addr) {
		return cart.jlpRead(addr)
	}

	if force || cart.memPerm[active][addr>>8].Has(PermRead) {
		return cart.ReadRAM(cart.translate(addr))
	}

	return bus.Unmapped
}

// Peek implements the bus.DebugBus interface. Permissions are ignored and
// there are no side effects.
func (cart *Locutus) Peek(addr uint16) uint16 {
	if unmapped(addr) {
		return bus.Unmapped
	}
	if cart.jlp.on && jlpReadWindow(addr) {
		return cart.jlpPeek(addr)
	}
	return cart.ReadRAM(cart.translate(addr))
}

// Poke implements the bus.DebugBus interface. Permissions are ignored and
// there are no side effects. Pokes to the JLP windows are ignored.
func (cart *Locutus) Poke(addr uint16, data uint16) {
	if unmapped(addr) {
		return
	}
	if cart.jlp.on && jlpReadWindow(addr) {
		return
	}
	cart.WriteRAM(cart.translate(addr), data)
}

// Write implements the bus.CPUBus interface.
func (cart *Locutus) Write(addr uint16, data uint16) {
	cart.jlp.rand.Update(uint32(data), 16)
	cart.jlp.rand.Update(uint32(addr), 16)

	if cart.jlp.sleep > 0 {
		cart.jlp.sleep--
		return
	}

	if addr >= 0x0040 && addr <= 0x005f {
		cart.bankSwitch(addr, data)
		return
	}

	para := uint8(addr >> 8)
	perm := cart.memPerm[active][para]

	// any access to a readable or writable location updates the PV register
	if addr != jlpPV && (perm.Has(PermRead) || perm.Has(PermWrite)) {
		cart.jlpWrite(jlpPV, cart.read(addr, true))
	}

	// accelerator writes take priority over page flips
	if cart.jlp.on && jlpWriteWindow(addr) {
		cart.jlpWrite(addr, data)
		return
	}

	if !cart.jlp.on && addr == jlpUnlock && data == jlpUnlockKey && cart.jlpAccel() != metadata.JLPDisabled {
		cart.flipJLP(true)
		return
	}

	if addr&0x0fff == 0x0fff && (addr&0xf000)|0x0a50 == data&0xfff0 &&
		(!cart.jlp.on || (addr != 0x8fff && addr != 0x9fff)) {
		cart.pageFlip(addr, data)
		return
	}

	// native mapper writes do not apply to writable paragraphs
	if cart.ltoMapper() && !perm.Has(PermWrite) {
		reset := addr&0x100 == 0x100

		switch {
		case addr >= 0x1000 && addr <= 0x11ff:
			cart.SetMemMap(uint8(addr), reset, data)
			return
		case addr >= 0x1200 && addr <= 0x13ff:
			cart.SetMemPerm(uint8(addr), reset, Perm(data))
			return
		case addr >= 0x1400 && addr <= 0x14ff:
			chap := uint8(addr>>4) & 0xf
			page := uint8(addr) & 0xf
			cart.SetPageFlip(chap, page, (data&0x07f0)>>4, Perm(data))
			return
		}
	}

	if perm.Has(PermWrite) {
		cart.WriteRAM(cart.translate(addr), data)
	}
}

// Intellicart style bank switching. each of the 32 registers selects the
// upper 8 bits of the store address for a 2K range of the address space
func (cart *Locutus) bankSwitch(addr uint16, data uint16) {
	hchap := (addr&0xf)<<12 | (addr&0x10)<<7
	para := uint8(hchap >> 8)

	if !cart.memPerm[active][para].Has(PermBankSwitch) {
		return
	}

	for i := range uint8(8) {
		cart.SetMemMap(para+i, false, (data+uint16(i))&0xff)
	}

	cart.invalidate(hchap, hchap+2047)
}

// ECS style page flipping
func (cart *Locutus) pageFlip(addr uint16, data uint16) {
	chap := uint8(addr >> 12)
	page := uint8(data & 0xf)

	if chap == 0 {
		return
	}

	perm := cart.pflPerm[chap][page]
	if !perm.Has(PermBankSwitch) {
		return
	}
	perm &^= PermBankSwitch

	m := cart.pflMap[chap][page] << 4
	para := chap << 4
	cart.bsel[chap] = page

	// only $4800 - $4FFF is flipped in chapter 4
	first := uint8(0)
	if chap == 4 {
		first = 8
	}

	for i := first; i < 16; i++ {
		cart.SetMemMap(para+i, false, m+uint16(i))
		cart.SetMemPerm(para+i, false, perm)
	}

	cart.invalidate(uint16(para+first)<<8, uint16(para)<<8+4095)
}

// Reset the cartridge to its power-on state. The reset copy of the memory
// map is copied to the active copy and the JLP accelerator is switched on
// if the JLP mode requires it.
func (cart *Locutus) Reset() {
	cart.memMap[active] = cart.memMap[resetCopy]
	cart.memPerm[active] = cart.memPerm[resetCopy]
	clear(cart.bsel[:])

	// the accelerators are only switched on for modes where they are on at
	// reset. in the other modes they are left off
	jlp := cart.jlpAccel()
	cart.jlp.on = false
	if jlp == metadata.JLPAccelOn || jlp == metadata.JLPAccelFlashOn {
		cart.flipJLP(true)
	}

	cart.ltoISA = cart.ltoMapper() || jlp != metadata.JLPDisabled

	logger.Logf(logger.Allow, "locutus", "reset: jlp %s, lto isa %v", jlp, cart.ltoISA)
}

// IsCacheable returns false for addresses where the content can change
// without a write to the address.
func (cart *Locutus) IsCacheable(addr uint16) bool {
	return !(cart.jlp.on && jlpReadWindow(addr))
}

// Peripheral returns the cartridge as a peripheral for the memory system.
// The peripheral claims the entire address space so it should be registered
// after the peripherals of the console.
func (cart *Locutus) Peripheral() *memory.Peripheral {
	return &memory.Peripheral{
		Name:      "Locutus",
		Lo:        0x0000,
		Hi:        0xffff,
		Read:      cart.Read,
		Write:     cart.Write,
		Peek:      cart.Peek,
		Poke:      cart.Poke,
		Cacheable: cart.IsCacheable,
		Reset:     cart.Reset,
	}
}
