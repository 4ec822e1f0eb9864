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

// ROM is a block of read-only console memory. The Intellivision EXEC and GROM
// are examples of console ROM. The data is not part of the emulation and must
// be supplied by the user.
type ROM struct {
	label  string
	origin uint16
	memory []uint16
}

// NewROM is the preferred method of initialisation for the ROM type. The
// data is copied and must not be empty. Data beyond the top of the address
// space is ignored.
func NewROM(label string, origin uint16, data []uint16) *ROM {
	n := min(len(data), 0x10000-int(origin))
	rom := &ROM{
		label:  label,
		origin: origin,
		memory: make([]uint16, n),
	}
	copy(rom.memory, data)
	return rom
}

// Peripheral returns the peripheral description of the ROM, ready for
// registering with the memory system. Writes by the CPU are ignored but the
// ROM can be poked.
func (rom *ROM) Peripheral() *Peripheral {
	return &Peripheral{
		Name: rom.label,
		Lo:   rom.origin,
		Hi:   rom.origin + uint16(len(rom.memory)-1),
		Read: rom.Peek,
		Peek: rom.Peek,
		Poke: rom.Poke,
	}
}

// Peek returns the value at the address.
func (rom *ROM) Peek(address uint16) uint16 {
	return rom.memory[address-rom.origin]
}

// Poke a new value into the ROM.
func (rom *ROM) Poke(address uint16, data uint16) {
	rom.memory[address-rom.origin] = data
}
