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

package locutus_test

import (
	"testing"

	"github.com/jetsetilly/locutus/hardware/memory/bus"
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/locutus"
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/locutus/metadata"
	"github.com/jetsetilly/locutus/test"
)

type invalidation struct {
	lo, hi uint16
}

// records every call to Invalidate()
type invalidator struct {
	calls []invalidation
}

func (inv *invalidator) Invalidate(lo uint16, hi uint16) {
	inv.calls = append(inv.calls, invalidation{lo: lo, hi: hi})
}

func (inv *invalidator) last(t *testing.T) invalidation {
	t.Helper()
	if len(inv.calls) == 0 {
		t.Fatalf("no invalidations")
	}
	return inv.calls[len(inv.calls)-1]
}

func newCart() (*locutus.Locutus, *invalidator) {
	cart := locutus.NewLocutus(nil)
	inv := &invalidator{}
	cart.Plumb(inv)
	return cart, inv
}

func TestInterfaces(t *testing.T) {
	var m bus.Memory
	cart, _ := newCart()
	test.ExpectImplements(t, cart, m)
}

func TestReadPermissions(t *testing.T) {
	cart, _ := newCart()

	// map $5000 - $50FF to $00500 of the store
	cart.SetMemMap(0x50, true, 0x005)
	cart.SetMemPerm(0x50, true, locutus.PermRead)
	cart.Reset()

	cart.WriteRAM(0x00510, 0x1234)
	test.ExpectEquality(t, cart.Read(0x5010), 0x1234)

	// paragraph with no read permission
	cart.WriteRAM(0x00610, 0x4321)
	cart.SetMemMap(0x51, false, 0x006)
	test.ExpectEquality(t, cart.Read(0x5110), bus.Unmapped)
	test.ExpectEquality(t, cart.Peek(0x5110), 0x4321)

	// writes to read-only memory are ignored
	cart.Write(0x5010, 0xaaaa)
	test.ExpectEquality(t, cart.Read(0x5010), 0x1234)

	// unmapped address ranges are never readable
	cart.SetMemPerm(0x10, false, locutus.PermRead)
	test.ExpectEquality(t, cart.Read(0x1000), bus.Unmapped)
	test.ExpectEquality(t, cart.Read(0x0400), bus.Unmapped)
	test.ExpectEquality(t, cart.Read(0x4700), bus.Unmapped)
}

func TestPoke(t *testing.T) {
	cart, _ := newCart()
	cart.SetMemMap(0x60, false, 0x060)

	cart.Poke(0x6000, 0xbeef)
	test.ExpectEquality(t, cart.ReadRAM(0x06000), 0xbeef)
	test.ExpectSuccess(t, cart.Initialized(0x06000))
	test.ExpectEquality(t, cart.Peek(0x6000), 0xbeef)

	// no permissions so the bus can't see it
	test.ExpectEquality(t, cart.Read(0x6000), bus.Unmapped)
}

func TestPageFlip(t *testing.T) {
	cart, inv := newCart()

	// page 3 of chapter 3 is at $10000 of the store
	cart.SetPageFlip(3, 3, 0x10, locutus.PermRead|locutus.PermBankSwitch)
	cart.WriteRAM(0x10123, 0x5555)

	cart.Write(0x3fff, 0x3a53)
	for i := range uint8(16) {
		test.ExpectEquality(t, cart.MemMap(0x30+i, false), 0x100+uint16(i))
		test.ExpectEquality(t, cart.MemPerm(0x30+i, false), locutus.PermRead)
	}
	test.ExpectEquality(t, inv.last(t), invalidation{lo: 0x3000, hi: 0x3fff})

	// the reset copy is not changed
	test.ExpectEquality(t, cart.MemMap(0x30, true), 0)

	// chapter 4 only flips $4800 - $4FFF
	cart.SetMemMap(0x40, false, 0x7ff)
	cart.SetPageFlip(4, 2, 0x20, locutus.PermRead|locutus.PermWrite|locutus.PermBankSwitch)
	cart.Write(0x4fff, 0x4a52)
	test.ExpectEquality(t, cart.MemMap(0x40, false), 0x7ff)
	test.ExpectEquality(t, cart.MemMap(0x47, false), 0)
	for i := uint8(8); i < 16; i++ {
		test.ExpectEquality(t, cart.MemMap(0x40+i, false), 0x200+uint16(i))
		test.ExpectEquality(t, cart.MemPerm(0x40+i, false), locutus.PermRead|locutus.PermWrite)
	}
	test.ExpectEquality(t, inv.last(t), invalidation{lo: 0x4800, hi: 0x4fff})
}

func TestPageFlipRefused(t *testing.T) {
	cart, inv := newCart()

	// no bankswitch permission on the page
	cart.SetPageFlip(5, 1, 0x10, locutus.PermRead)
	cart.Write(0x5fff, 0x5a51)
	test.ExpectEquality(t, cart.MemMap(0x50, false), 0)

	// data doesn't match the chapter
	cart.SetPageFlip(5, 1, 0x10, locutus.PermRead|locutus.PermBankSwitch)
	cart.Write(0x5fff, 0x6a51)
	test.ExpectEquality(t, cart.MemMap(0x50, false), 0)

	// chapter 0 can't be flipped
	cart.SetPageFlip(0, 1, 0x10, locutus.PermRead|locutus.PermBankSwitch)
	cart.Write(0x0fff, 0x0a51)
	test.ExpectEquality(t, cart.MemMap(0x00, false), 0)

	test.ExpectEquality(t, len(inv.calls), 0)

	// correct flip
	cart.Write(0x5fff, 0x5a51)
	test.ExpectEquality(t, cart.MemMap(0x50, false), 0x100)
}

func TestBankSwitch(t *testing.T) {
	cart, inv := newCart()

	cart.SetMemPerm(0x50, false, locutus.PermRead|locutus.PermBankSwitch)

	// register $45 controls $5000 - $57FF
	cart.Write(0x0045, 0x0012)
	for i := range uint8(8) {
		test.ExpectEquality(t, cart.MemMap(0x50+i, false), 0x12+uint16(i))
	}
	test.ExpectEquality(t, cart.MemMap(0x58, false), 0)
	test.ExpectEquality(t, inv.last(t), invalidation{lo: 0x5000, hi: 0x57ff})

	// register $55 controls $5800 - $5FFF but the paragraph does not have
	// bankswitch permission
	n := len(inv.calls)
	cart.Write(0x0055, 0x0034)
	test.ExpectEquality(t, cart.MemMap(0x58, false), 0)
	test.ExpectEquality(t, len(inv.calls), n)

	// bank switch values wrap at eight bits
	cart.Write(0x0045, 0x00fe)
	test.ExpectEquality(t, cart.MemMap(0x51, false), 0xff)
	test.ExpectEquality(t, cart.MemMap(0x52, false), 0x00)
}

func TestLTOMapper(t *testing.T) {
	cart, _ := newCart()

	// mapper writes are ignored unless the LTO mapper is enabled
	cart.Write(0x1005, 0x0123)
	test.ExpectEquality(t, cart.MemMap(0x05, false), 0)

	cart.Metadata().LTOMapper = 1

	cart.Write(0x1005, 0x0123)
	test.ExpectEquality(t, cart.MemMap(0x05, false), 0x123)
	test.ExpectEquality(t, cart.MemMap(0x05, true), 0)

	cart.Write(0x1105, 0x0321)
	test.ExpectEquality(t, cart.MemMap(0x05, true), 0x321)

	cart.Write(0x1205, 0x0003)
	test.ExpectEquality(t, cart.MemPerm(0x05, false), locutus.PermRead|locutus.PermWrite)

	cart.Write(0x1305, 0x000f)
	test.ExpectEquality(t, cart.MemPerm(0x05, true), locutus.PermRead|locutus.PermWrite|locutus.PermNarrow|locutus.PermBankSwitch)

	// page flip table. chapter in bits 4 to 7 of the address, page in bits
	// 0 to 3
	cart.Write(0x1432, 0x0125)
	test.ExpectEquality(t, cart.PageFlipMap(3, 2), 0x12)
	test.ExpectEquality(t, cart.PageFlipPerm(3, 2), locutus.PermRead|locutus.PermNarrow)

	// a writable paragraph takes the write instead of the mapper
	cart.SetMemPerm(0x10, false, locutus.PermRead|locutus.PermWrite)
	cart.SetMemMap(0x10, false, 0x300)
	cart.Write(0x1006, 0x0456)
	test.ExpectEquality(t, cart.MemMap(0x06, false), 0)
	test.ExpectEquality(t, cart.ReadRAM(0x30006), 0x456)
}

func TestReset(t *testing.T) {
	cart, _ := newCart()

	cart.SetMemMap(0x50, true, 0x050)
	cart.SetMemPerm(0x50, true, locutus.PermRead|locutus.PermBankSwitch)
	cart.Reset()
	test.ExpectEquality(t, cart.MemMap(0x50, false), 0x050)

	// bankswitching changes the active copy only
	cart.Write(0x0045, 0x0070)
	test.ExpectEquality(t, cart.MemMap(0x50, false), 0x070)
	test.ExpectEquality(t, cart.MemMap(0x50, true), 0x050)

	// changes to the reset copy are not seen until the next reset
	cart.SetMemPerm(0x60, true, locutus.PermRead)
	test.ExpectEquality(t, cart.MemPerm(0x60, false), 0)

	cart.Reset()
	test.ExpectEquality(t, cart.MemMap(0x50, false), 0x050)
	test.ExpectEquality(t, cart.MemPerm(0x60, false), locutus.PermRead)
}

func TestLTOISA(t *testing.T) {
	cart, _ := newCart()
	cart.Reset()
	test.ExpectFailure(t, cart.LTOISA())

	cart.Metadata().LTOMapper = 1
	test.ExpectFailure(t, cart.LTOISA())
	cart.Reset()
	test.ExpectSuccess(t, cart.LTOISA())

	cart.Metadata().LTOMapper = 0
	cart.Metadata().JLPAccel = metadata.JLPAccelOff
	cart.Reset()
	test.ExpectSuccess(t, cart.LTOISA())
}

func TestRawAccess(t *testing.T) {
	cart, _ := newCart()

	expectPanic := func(f func()) {
		t.Helper()
		defer func() {
			test.ExpectInequality(t, recover(), nil)
		}()
		f()
	}

	expectPanic(func() { cart.ReadRAM(locutus.Capacity) })
	expectPanic(func() { cart.WriteRAM(locutus.Capacity, 0) })
	expectPanic(func() { cart.Initialized(0xfffffff) })

	cart.WriteRAM(locutus.Capacity-1, 0x1234)
	test.ExpectEquality(t, cart.ReadRAM(locutus.Capacity-1), 0x1234)
}

func TestInitializedSpans(t *testing.T) {
	cart, _ := newCart()
	test.ExpectEquality(t, len(cart.InitializedSpans()), 0)

	cart.WriteRAM(10, 0)
	cart.WriteRAM(11, 0)
	cart.WriteRAM(100, 0)
	for a := uint32(0x1000); a < 0x1100; a++ {
		cart.WriteRAM(a, 0)
	}
	cart.WriteRAM(locutus.Capacity-1, 0)

	spans := cart.InitializedSpans()
	test.DemandEquality(t, len(spans), 4)
	test.ExpectEquality(t, spans[0], locutus.Span{Lo: 10, Hi: 11})
	test.ExpectEquality(t, spans[1], locutus.Span{Lo: 100, Hi: 100})
	test.ExpectEquality(t, spans[2], locutus.Span{Lo: 0x1000, Hi: 0x10ff})
	test.ExpectEquality(t, spans[3], locutus.Span{Lo: locutus.Capacity - 1, Hi: locutus.Capacity - 1})

	cart.SetInitialized(11, false)
	spans = cart.InitializedSpans()
	test.ExpectEquality(t, spans[0], locutus.Span{Lo: 10, Hi: 10})
}

func TestFeatureFlags(t *testing.T) {
	cart, _ := newCart()

	// defaults. everything tolerated and not explicit
	f := cart.FeatureFlags()
	test.ExpectEquality(t, f, locutus.FeatureFlags{0x55, 0})

	m := cart.Metadata()
	m.ECS = metadata.Requires
	m.Voice = metadata.Enhanced
	m.TV = metadata.Incompatible
	m.JLPAccel = metadata.JLPAccelFlashOn
	m.JLPFlash = 3
	m.LTOMapper = 1
	m.IsDefaults = false

	f = cart.FeatureFlags()
	test.ExpectEquality(t, f.Bit(0), false)
	test.ExpectEquality(t, f.Bit(1), true)
	test.ExpectEquality(t, f.Bit(2), true)
	test.ExpectEquality(t, f.Bit(3), true)
	test.ExpectEquality(t, f.Bit(8), true)
	test.ExpectEquality(t, f.Bit(16), true)
	test.ExpectEquality(t, f.Bit(17), true)
	test.ExpectEquality(t, f.Bit(22), true)
	test.ExpectEquality(t, f.Bit(23), true)
	test.ExpectEquality(t, f.Bit(32), true)
	test.ExpectEquality(t, f.Bit(63), true)

	// unpack into a fresh cartridge. reserved bits survive
	f.SetBit(100, true)
	f.SetBit(40, true)

	other, _ := newCart()
	other.SetFeatureFlags(f)
	test.ExpectEquality(t, other.FeatureFlags(), f)

	om := other.Metadata()
	test.ExpectEquality(t, om.ECS, metadata.Requires)
	test.ExpectEquality(t, om.Voice, metadata.Enhanced)
	test.ExpectEquality(t, om.TV, metadata.Incompatible)
	test.ExpectEquality(t, om.KC, metadata.Tolerates)
	test.ExpectEquality(t, om.JLPAccel, metadata.JLPAccelFlashOn)
	test.ExpectEquality(t, om.JLPFlash, 3)
	test.ExpectEquality(t, om.LTOMapper, 1)
	test.ExpectEquality(t, om.IsDefaults, false)
}

func TestScrambled(t *testing.T) {
	cart, _ := newCart()
	_, ok := cart.Scrambled()
	test.ExpectFailure(t, ok)

	druid := make([]uint8, 16)
	for i := range druid {
		druid[i] = uint8(i)
	}
	cart.SetScrambled(druid)
	_, ok = cart.Scrambled()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, cart.DRUID(), "0F0E:0D0C:0B0A:0908:0706:0504:0302:0100")
}

func TestSummary(t *testing.T) {
	cart, _ := newCart()
	cart.Metadata().Name = "Test Cart"
	cart.SetMemMap(0x50, false, 0x050)
	cart.SetMemPerm(0x50, false, locutus.PermRead)
	cart.SetMemMap(0x51, false, 0x051)
	cart.SetMemPerm(0x51, false, locutus.PermRead)
	cart.SetPageFlip(0xd, 1, 0x40, locutus.PermRead|locutus.PermBankSwitch)

	d := cart.MemoryDiagram()
	test.DemandEquality(t, len(d.Chapters), 2)
	test.DemandEquality(t, len(d.Chapters[0].Spans), 1)
	test.ExpectEquality(t, d.Chapters[0].Spans[0].CPU, "$5000 - $51FF")
	test.ExpectEquality(t, d.Chapters[0].Spans[0].Store, "$05000 - $051FF")
	test.DemandEquality(t, len(d.Chapters[1].Pages), 1)
	test.ExpectEquality(t, d.Chapters[1].Pages[0].Store, "$40000 - $40FFF")

	w := &test.Writer{}
	cart.WriteMemoryDiagram(w)
	test.ExpectInequality(t, w.String(), "")
}
