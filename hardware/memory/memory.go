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

package memory

import (
	"fmt"
	"math"
	"strings"

	"github.com/jetsetilly/locutus/curated"
	"github.com/jetsetilly/locutus/hardware/memory/bus"
	"github.com/jetsetilly/locutus/logger"
)

// Error patterns.
const (
	RegisterError = "memory: register: %v"
)

// the route table stores an index into the list of peripherals. a value of
// zero means that the address is not routed so the index is offset by one.
// the maximum number of peripherals is limited by the size of the type
const maxPeripherals = math.MaxUint8

// Memory is the peripheral bus of the Intellivision. All memory accesses by
// the CPU are routed through Memory to the peripheral that has claimed the
// address.
//
// Memory implements the bus.Memory interface.
type Memory struct {
	peripherals []*Peripheral
	route       [0x10000]uint8

	// the invalidator is notified of every write to memory. in practice this
	// is the CPU decode cache
	invalidator bus.Invalidator

	// cycles counted by Tick() since the last reset
	now uint64
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{}
}

// Plumb the invalidator into the memory system. The invalidator will be
// called after every write and poke.
func (mem *Memory) Plumb(inv bus.Invalidator) {
	mem.invalidator = inv
}

func (mem *Memory) String() string {
	s := strings.Builder{}
	for _, p := range mem.peripherals {
		s.WriteString(p.String())
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}

// Register a peripheral with the memory system. Addresses already claimed by
// an earlier peripheral are not taken by the new peripheral.
func (mem *Memory) Register(p *Peripheral) error {
	if p == nil {
		return curated.Errorf(RegisterError, "nil peripheral")
	}
	if p.Lo > p.Hi {
		return curated.Errorf(RegisterError, fmt.Sprintf("%s: range is backwards (%04x to %04x)", p.Name, p.Lo, p.Hi))
	}
	if len(mem.peripherals) >= maxPeripherals {
		return curated.Errorf(RegisterError, fmt.Sprintf("%s: too many peripherals", p.Name))
	}
	for _, q := range mem.peripherals {
		if q == p {
			return curated.Errorf(RegisterError, fmt.Sprintf("%s: already registered", p.Name))
		}
	}

	mem.peripherals = append(mem.peripherals, p)
	idx := uint8(len(mem.peripherals))

	claimed := 0
	for a := uint32(p.Lo); a <= uint32(p.Hi); a++ {
		if mem.route[a] == 0 {
			mem.route[a] = idx
			claimed++
		}
	}

	logger.Logf(logger.Allow, "memory", "%s registered at %04x to %04x (%d addresses claimed)", p.Name, p.Lo, p.Hi, claimed)

	return nil
}

// Peripherals returns the list of registered peripherals in the order they
// were registered.
func (mem *Memory) Peripherals() []*Peripheral {
	return mem.peripherals
}

// Lookup returns the peripheral that services the address. Returns nil if the
// address is not routed.
func (mem *Memory) Lookup(address uint16) *Peripheral {
	idx := mem.route[address]
	if idx == 0 {
		return nil
	}
	return mem.peripherals[idx-1]
}

// Read implements the bus.CPUBus interface.
func (mem *Memory) Read(address uint16) uint16 {
	p := mem.Lookup(address)
	if p == nil || p.Read == nil {
		return bus.Unmapped
	}
	return p.Read(address)
}

// Write implements the bus.CPUBus interface.
func (mem *Memory) Write(address uint16, data uint16) {
	if p := mem.Lookup(address); p != nil && p.Write != nil {
		p.Write(address, data)
	}
	mem.snoop(address)
}

// Peek implements the bus.DebugBus interface.
func (mem *Memory) Peek(address uint16) uint16 {
	p := mem.Lookup(address)
	if p == nil || p.Peek == nil {
		return bus.Unmapped
	}
	return p.Peek(address)
}

// Poke implements the bus.DebugBus interface.
func (mem *Memory) Poke(address uint16, data uint16) {
	if p := mem.Lookup(address); p != nil && p.Poke != nil {
		p.Poke(address, data)
	}
	mem.snoop(address)
}

// a write to an address may change any instruction that started in the
// two words before it. the word after is included because a double byte
// data instruction reads the following word twice
func (mem *Memory) snoop(address uint16) {
	if mem.invalidator != nil {
		mem.invalidator.Invalidate(address-2, address+1)
	}
}

// IsCacheable returns false if the content of the address may change without
// a write being seen by the memory system.
func (mem *Memory) IsCacheable(address uint16) bool {
	p := mem.Lookup(address)
	if p == nil {
		return false
	}
	if p.Cacheable == nil {
		return true
	}
	return p.Cacheable(address)
}

// Reset all peripherals in the order they were registered.
func (mem *Memory) Reset() {
	mem.now = 0
	for _, p := range mem.peripherals {
		p.pending = 0
		if p.Reset != nil {
			p.Reset()
		}
	}
}

// Now returns the number of cycles counted by Tick() since the last reset.
func (mem *Memory) Now() uint64 {
	return mem.now
}

// Tick advances all peripherals by the number of cycles. A peripheral's Tick
// function is called once at least MinTick cycles have accumulated.
func (mem *Memory) Tick(cycles uint64) {
	mem.now += cycles
	for _, p := range mem.peripherals {
		if p.Tick == nil {
			continue
		}
		p.pending += cycles
		if p.pending >= p.MinTick {
			p.Tick(p.pending)
			p.pending = 0
		}
	}
}

// NextTick returns the number of cycles that can pass before a peripheral
// must be ticked. The run loop should not execute more than this number of
// cycles between calls to Tick().
func (mem *Memory) NextTick() uint64 {
	next := uint64(math.MaxUint64)
	for _, p := range mem.peripherals {
		if p.Tick == nil || p.MaxTick == 0 {
			continue
		}
		var n uint64
		if p.pending < p.MaxTick {
			n = p.MaxTick - p.pending
		}
		next = min(next, n)
	}
	return next
}
