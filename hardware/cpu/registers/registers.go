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

import (
	"fmt"
	"strings"
)

// Indexes of the registers with special purposes.
const (
	SP = 6
	PC = 7
)

// NumExtended is the number of registers in the extended register file.
const NumExtended = 16

// File is the complete set of CP-1610 registers.
type File struct {
	R      [8]uint16
	X      [NumExtended]uint16
	Status Status
}

// Label returns the name of the general purpose register.
func Label(r int) string {
	return fmt.Sprintf("R%d", r)
}

// Reset clears all registers.
func (f *File) Reset() {
	*f = File{}
}

func (f File) String() string {
	s := strings.Builder{}
	for i, v := range f.R {
		s.WriteString(fmt.Sprintf("%s=%04x ", Label(i), v))
	}
	s.WriteString(fmt.Sprintf("%s=%s", f.Status.Label(), f.Status))
	return s.String()
}

// ExtendedString returns the extended register file as a string.
func (f File) ExtendedString() string {
	s := strings.Builder{}
	for i, v := range f.X {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("X%X=%04x", i, v))
	}
	return s.String()
}
