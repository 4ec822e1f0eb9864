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
	"strings"
)

// RAM is a block of console RAM. The Intellivision has 8bit scratchpad RAM
// and 16bit system RAM.
type RAM struct {
	label  string
	origin uint16
	memtop uint16
	mask   uint16
	memory []uint16
}

// NewRAM is the preferred method of initialisation for the RAM type. The
// width argument is the number of bits in each word of memory.
func NewRAM(label string, origin uint16, memtop uint16, width int) *RAM {
	ram := &RAM{
		label:  label,
		origin: origin,
		memtop: memtop,
		mask:   uint16((1 << width) - 1),
	}

	// allocate the mininmal amount of memory
	ram.memory = make([]uint16, ram.memtop-ram.origin+1)

	return ram
}

func (ram *RAM) String() string {
	s := strings.Builder{}
	s.WriteString("        -0   -1   -2   -3   -4   -5   -6   -7\n")
	s.WriteString("      ---- ---- ---- ---- ---- ---- ---- ----")
	for i, v := range ram.memory {
		if i%8 == 0 {
			s.WriteString(fmt.Sprintf("\n%04x |", ram.origin+uint16(i)))
		}
		s.WriteString(fmt.Sprintf(" %04x", v))
	}
	return s.String()
}

// Peripheral returns the peripheral description of the RAM, ready for
// registering with the memory system.
func (ram *RAM) Peripheral() *Peripheral {
	return &Peripheral{
		Name:  ram.label,
		Lo:    ram.origin,
		Hi:    ram.memtop,
		Read:  ram.Peek,
		Write: ram.Poke,
		Peek:  ram.Peek,
		Poke:  ram.Poke,
	}
}

// Peek returns the value at the address. Upper bits not supported by the
// width of the RAM are zero.
func (ram *RAM) Peek(address uint16) uint16 {
	return ram.memory[address-ram.origin]
}

// Poke a new value into the RAM. Upper bits not supported by the width of the
// RAM are lost.
func (ram *RAM) Poke(address uint16, data uint16) {
	ram.memory[address-ram.origin] = data & ram.mask
}
