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

package cpu

// add two values and set all four arithmetic flags. the result is returned.
func (mc *CPU) add(a uint16, b uint16) uint16 {
	op3 := uint32(b) + uint32(a)
	r := uint16(op3)
	mc.Reg.Status.Sign = op3&0x8000 == 0x8000
	mc.Reg.Status.Carry = op3&0x10000 == 0x10000
	mc.Reg.Status.Overflow = (uint32(b)^op3)&^(uint32(a)^uint32(b))&0x8000 == 0x8000
	mc.Reg.Status.Zero = r == 0
	return r
}

// subtract a from b and set all four arithmetic flags. the carry flag is set
// when there is no borrow.
func (mc *CPU) sub(a uint16, b uint16) uint16 {
	op3 := uint32(b) + uint32(a^0xffff) + 1
	r := uint16(op3)
	mc.Reg.Status.Sign = op3&0x8000 == 0x8000
	mc.Reg.Status.Carry = op3&0x10000 == 0x10000
	mc.Reg.Status.Overflow = (uint32(b)^op3)&(uint32(a)^uint32(b))&0x8000 == 0x8000
	mc.Reg.Status.Zero = r == 0
	return r
}

// set the sign and zero flags for the value. the value is returned unchanged.
func (mc *CPU) sz(v uint16) uint16 {
	mc.Reg.Status.Sign = v&0x8000 == 0x8000
	mc.Reg.Status.Zero = v == 0
	return v
}

// extra returns the additional cycle taken by instructions that write to the
// stack pointer or the program counter.
func extra(reg int) int {
	if reg >= 6 {
		return 1
	}
	return 0
}

func bit(v uint16, mask uint16) bool {
	return v&mask == mask
}

func b2u(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}
