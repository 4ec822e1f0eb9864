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

package registers

import "strings"

// Status is the set of flags of the CP-1610.
type Status struct {
	Sign              bool
	Zero              bool
	Overflow          bool
	Carry             bool
	InterruptsEnabled bool

	// DoubleByteData is set by the SDBD instruction. It is a two stage shift
	// register so that it is only visible to the instruction that follows
	// the SDBD instruction. Use Shift() after every instruction.
	DoubleByteData uint8
}

// Label returns the canonical name for the status register.
func (sr Status) Label() string {
	return "SR"
}

func (sr Status) String() string {
	s := strings.Builder{}

	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + 'a' - 'A')
		}
	}

	flag(sr.Sign, 'S')
	flag(sr.Zero, 'Z')
	flag(sr.Overflow, 'O')
	flag(sr.Carry, 'C')
	flag(sr.InterruptsEnabled, 'I')
	flag(sr.DBD(), 'D')

	return s.String()
}

// SetDBD sets the double byte data flag for the next instruction.
func (sr *Status) SetDBD() {
	sr.DoubleByteData = 2
}

// DBD returns true if the current instruction should use double byte data.
func (sr Status) DBD() bool {
	return sr.DoubleByteData != 0
}

// Shift the double byte data flag. Called at the end of every instruction.
func (sr *Status) Shift() {
	sr.DoubleByteData >>= 1
}

// Word returns the flags as they are stored by the GSWD instruction. The four
// arithmetic flags are placed in bits 4 to 7 and duplicated in bits 12 to 15.
func (sr Status) Word() uint16 {
	var v uint16
	if sr.Sign {
		v |= 0x80
	}
	if sr.Zero {
		v |= 0x40
	}
	if sr.Overflow {
		v |= 0x20
	}
	if sr.Carry {
		v |= 0x10
	}
	return v | v<<8
}

// LoadWord restores the arithmetic flags from a value in the format used by
// the RSWD instruction. Only the lower byte is considered.
func (sr *Status) LoadWord(v uint16) {
	sr.Sign = v&0x80 == 0x80
	sr.Zero = v&0x40 == 0x40
	sr.Overflow = v&0x20 == 0x20
	sr.Carry = v&0x10 == 0x10
}

// Reset clears all flags.
func (sr *Status) Reset() {
	*sr = Status{}
}
