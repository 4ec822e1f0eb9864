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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/locutus/curated"
	"github.com/jetsetilly/locutus/hardware/memory"
	"github.com/jetsetilly/locutus/hardware/memory/bus"
	"github.com/jetsetilly/locutus/test"
)

type invalidation struct {
	lo, hi uint16
}

type mockInvalidator struct {
	calls []invalidation
}

func (m *mockInvalidator) Invalidate(lo uint16, hi uint16) {
	m.calls = append(m.calls, invalidation{lo: lo, hi: hi})
}

func TestRouting(t *testing.T) {
	mem := memory.NewMemory()
	var m bus.Memory
	test.ExpectImplements(t, mem, m)

	sys := memory.NewRAM("System RAM", 0x0200, 0x035f, 16)
	scratch := memory.NewRAM("Scratchpad RAM", 0x0100, 0x01ef, 8)
	test.DemandSuccess(t, mem.Register(sys.Peripheral()))
	test.DemandSuccess(t, mem.Register(scratch.Peripheral()))

	// unrouted addresses
	test.ExpectEquality(t, mem.Read(0x0000), bus.Unmapped)
	test.ExpectEquality(t, mem.Peek(0x0360), bus.Unmapped)
	test.ExpectEquality(t, mem.Lookup(0x0360) == nil, true)

	mem.Write(0x0200, 0x1234)
	test.ExpectEquality(t, mem.Read(0x0200), 0x1234)

	// scratchpad RAM is only eight bits wide
	mem.Write(0x0100, 0x1234)
	test.ExpectEquality(t, mem.Read(0x0100), 0x0034)

	mem.Poke(0x035f, 0xbeef)
	test.ExpectEquality(t, mem.Peek(0x035f), 0xbeef)
	test.ExpectEquality(t, sys.Peek(0x035f), 0xbeef)
}

func TestFirstComeFirstServed(t *testing.T) {
	mem := memory.NewMemory()

	a := memory.NewRAM("A", 0x1000, 0x10ff, 16)
	b := memory.NewRAM("B", 0x1080, 0x11ff, 16)
	test.DemandSuccess(t, mem.Register(a.Peripheral()))
	test.DemandSuccess(t, mem.Register(b.Peripheral()))

	mem.Write(0x1080, 1)
	test.ExpectEquality(t, a.Peek(0x1080), 1)
	test.ExpectEquality(t, b.Peek(0x1080), 0)

	mem.Write(0x1100, 2)
	test.ExpectEquality(t, b.Peek(0x1100), 2)

	test.ExpectEquality(t, mem.Lookup(0x10ff).Name, "A")
	test.ExpectEquality(t, mem.Lookup(0x1100).Name, "B")
}

func TestRegisterErrors(t *testing.T) {
	mem := memory.NewMemory()

	err := mem.Register(&memory.Peripheral{Name: "backwards", Lo: 0x2000, Hi: 0x1000})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.RegisterError))

	p := &memory.Peripheral{Name: "twice", Lo: 0x2000, Hi: 0x2000}
	test.ExpectSuccess(t, mem.Register(p))
	test.ExpectFailure(t, mem.Register(p))

	test.ExpectFailure(t, mem.Register(nil))
}

func TestSnoop(t *testing.T) {
	mem := memory.NewMemory()
	inv := &mockInvalidator{}
	mem.Plumb(inv)

	ram := memory.NewRAM("RAM", 0x8000, 0x8fff, 16)
	test.DemandSuccess(t, mem.Register(ram.Peripheral()))

	mem.Write(0x8010, 0)
	mem.Poke(0x8020, 0)

	// writes to unrouted addresses are still snooped
	mem.Write(0x0001, 0)

	test.DemandEquality(t, len(inv.calls), 3)
	test.ExpectEquality(t, inv.calls[0], invalidation{lo: 0x800e, hi: 0x8011})
	test.ExpectEquality(t, inv.calls[1], invalidation{lo: 0x801e, hi: 0x8021})
	test.ExpectEquality(t, inv.calls[2], invalidation{lo: 0xffff, hi: 0x0002})
}

func TestCacheable(t *testing.T) {
	mem := memory.NewMemory()

	test.DemandSuccess(t, mem.Register(&memory.Peripheral{
		Name: "volatile",
		Lo:   0x9000, Hi: 0x9fff,
		Cacheable: func(address uint16) bool {
			return address < 0x9f80
		},
	}))
	test.DemandSuccess(t, mem.Register(memory.NewRAM("RAM", 0x8000, 0x8fff, 16).Peripheral()))

	test.ExpectSuccess(t, mem.IsCacheable(0x8000))
	test.ExpectSuccess(t, mem.IsCacheable(0x9f7f))
	test.ExpectFailure(t, mem.IsCacheable(0x9f80))
	test.ExpectFailure(t, mem.IsCacheable(0x0000))
}

func TestTick(t *testing.T) {
	mem := memory.NewMemory()

	var ticks []uint64
	test.DemandSuccess(t, mem.Register(&memory.Peripheral{
		Name:    "ticker",
		Lo:      0x0000, Hi: 0x0000,
		MinTick: 100,
		MaxTick: 250,
		Tick: func(cycles uint64) {
			ticks = append(ticks, cycles)
		},
	}))

	test.ExpectEquality(t, mem.NextTick(), 250)

	mem.Tick(60)
	test.ExpectEquality(t, len(ticks), 0)
	test.ExpectEquality(t, mem.NextTick(), 190)

	mem.Tick(60)
	test.DemandEquality(t, len(ticks), 1)
	test.ExpectEquality(t, ticks[0], 120)
	test.ExpectEquality(t, mem.NextTick(), 250)
	test.ExpectEquality(t, mem.Now(), 120)

	var reset bool
	mem.Lookup(0x0000).Reset = func() { reset = true }
	mem.Reset()
	test.ExpectSuccess(t, reset)
	test.ExpectEquality(t, mem.Now(), 0)
}

func TestNoTickers(t *testing.T) {
	mem := memory.NewMemory()
	test.ExpectEquality(t, mem.NextTick(), ^uint64(0))
}

func TestROM(t *testing.T) {
	mem := memory.NewMemory()
	rom := memory.NewROM("EXEC", 0x1000, []uint16{0x0004, 0x0350, 0x0000})
	test.DemandSuccess(t, mem.Register(rom.Peripheral()))

	test.ExpectEquality(t, mem.Read(0x1001), 0x0350)
	test.ExpectEquality(t, mem.Read(0x1003), bus.Unmapped)

	// writes by the CPU are ignored but pokes are not
	mem.Write(0x1001, 0x1234)
	test.ExpectEquality(t, mem.Read(0x1001), 0x0350)
	mem.Poke(0x1001, 0x1234)
	test.ExpectEquality(t, mem.Peek(0x1001), 0x1234)
}
