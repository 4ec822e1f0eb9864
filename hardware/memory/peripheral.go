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

import "fmt"

// Peripheral describes a device that responds to a range of addresses on the
// peripheral bus. Any of the functions can be nil. A peripheral with a nil
// Read function (or a nil Peek function) returns bus.Unmapped.
type Peripheral struct {
	Name string

	// inclusive range of addresses claimed by the peripheral
	Lo uint16
	Hi uint16

	// read and write access by the CPU. may have side effects
	Read  func(address uint16) uint16
	Write func(address uint16, data uint16)

	// access without side effects
	Peek func(address uint16) uint16
	Poke func(address uint16, data uint16)

	// returns false if the content of the address can change without a
	// write. the decoder will not cache instructions at these addresses. a
	// nil function means that every address is cacheable
	Cacheable func(address uint16) bool

	// called on machine reset
	Reset func()

	// Tick is called with the number of cycles that have passed since the
	// previous call. MinTick is the minimum number of cycles between calls
	// and MaxTick is the maximum. a MaxTick of zero means there is no maximum
	MinTick uint64
	MaxTick uint64
	Tick    func(cycles uint64)

	// cycles accumulated since Tick was last called
	pending uint64
}

func (p *Peripheral) String() string {
	return fmt.Sprintf("%04x -> %04x\t%s", p.Lo, p.Hi, p.Name)
}

// Covers returns true if the address is in the peripheral's range. Note that
// the address might be serviced by a different peripheral.
func (p *Peripheral) Covers(address uint16) bool {
	return address >= p.Lo && address <= p.Hi
}
