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

import "strings"

// Perm is the set of permissions for a paragraph or for a page in the page
// flip table. Only the lower four bits are used.
type Perm uint8

// List of permission bits.
const (
	PermRead Perm = 1 << iota
	PermWrite

	// the paragraph is 8 bits wide. the flag is descriptive and does not
	// change how writes are stored
	PermNarrow

	// bank switch writes (for a paragraph) or page flips (for a page flip
	// table entry) are allowed
	PermBankSwitch

	permMask = PermRead | PermWrite | PermNarrow | PermBankSwitch
)

// Has returns true if every permission in p is present.
func (perm Perm) Has(p Perm) bool {
	return perm&p == p
}

func (perm Perm) String() string {
	s := strings.Builder{}
	for _, p := range []struct {
		bit Perm
		c   byte
	}{
		{PermRead, 'R'},
		{PermWrite, 'W'},
		{PermNarrow, 'N'},
		{PermBankSwitch, 'B'},
	} {
		if perm.Has(p.bit) {
			s.WriteByte(p.c)
		} else {
			s.WriteByte('-')
		}
	}
	return s.String()
}
