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

import (
	"github.com/jetsetilly/locutus/hardware/cpu/instructions"
)

// PVAddress is the address of the previous value register. Every valid
// extended instruction writes the value of its destination register to this
// address before the result is stored.
const PVAddress = uint16(0x9f8d)

// an extended operation. the destination registers are passed in so that
// operations that accumulate or leave one half of the result untouched can
// do so.
type xop func(s1 uint16, s2 uint16, dl *uint16, dh *uint16)

// the opcodes of the two 32-bit division operations. they take a register
// pair for the first source operand
const (
	xopDiv32S = 0x4e
	xopDiv32U = 0x4f
)

func swap(v uint16) uint16 {
	return v>>8 | v<<8
}

func pack(hi uint16, lo uint16) uint16 {
	return (hi&0xff)<<8 | lo&0xff
}

func i32(v uint16) int32 {
	return int32(int16(v))
}

func flagWord(b bool) uint16 {
	if b {
		return 0xffff
	}
	return 0
}

func low(f func(s1, s2 uint16) uint16) xop {
	return func(s1, s2 uint16, dl, _ *uint16) {
		*dl = f(s1, s2)
	}
}

func shiftCount(s2 uint16) uint {
	return uint(s2 & 0x0f)
}

// the extended operations indexed by opcode and then by the S bit of the
// addressing mode. a nil entry is executed as a NOP
var xops = [0x58][2]xop{
	0x00: {
		low(func(s1, s2 uint16) uint16 { return s1 + s2 }),
		low(func(s1, s2 uint16) uint16 { return -(s1 + s2) }),
	},
	0x01: {
		low(func(s1, s2 uint16) uint16 { return swap(swap(s1) + swap(s2)) }),
		low(func(s1, s2 uint16) uint16 { return swap(-swap(s1) - swap(s2)) }),
	},
	0x02: {
		low(func(s1, s2 uint16) uint16 { return s1 - s2 }),
		low(func(s1, s2 uint16) uint16 { return s1 - s2 }),
	},
	0x03: {
		low(func(s1, s2 uint16) uint16 { return swap(swap(s1) - swap(s2)) }),
		low(func(s1, s2 uint16) uint16 { return swap(swap(s1) - swap(s2)) }),
	},
	0x04: {
		low(func(s1, s2 uint16) uint16 { return s1 & s2 }),
		low(func(s1, s2 uint16) uint16 { return ^(s1 & s2) }),
	},
	0x05: {
		low(func(s1, s2 uint16) uint16 { return ^s1 & s2 }),
		low(func(s1, s2 uint16) uint16 { return ^(^s1 & s2) }),
	},
	0x06: {
		low(func(s1, s2 uint16) uint16 { return s1 | s2 }),
		low(func(s1, s2 uint16) uint16 { return ^(s1 | s2) }),
	},
	0x07: {
		low(func(s1, s2 uint16) uint16 { return s1 ^ s2 }),
		low(func(s1, s2 uint16) uint16 { return ^(s1 ^ s2) }),
	},

	0x08: both(func(s1, s2 uint16, dl, dh *uint16) {
		s := shiftCount(s2)
		*dl = s1 << s
		if s == 0 {
			*dh = uint16(i32(s1) >> 15)
		} else {
			*dh = uint16(i32(s1) >> (16 - s))
		}
	}),
	0x09: both(func(s1, s2 uint16, dl, dh *uint16) {
		s := shiftCount(s2)
		*dl = s1 << s
		if s == 0 {
			*dh = 0
		} else {
			*dh = s1 >> (16 - s)
		}
	}),
	0x0a: both(func(s1, s2 uint16, dl, dh *uint16) {
		s := shiftCount(s2)
		*dl = uint16(i32(s1) >> s)
		if s == 0 {
			*dh = 0
		} else {
			*dh = s1 << (16 - s)
		}
	}),
	0x0b: both(func(s1, s2 uint16, dl, dh *uint16) {
		s := shiftCount(s2)
		*dl = s1 >> s
		if s == 0 {
			*dh = 0
		} else {
			*dh = s1 << (16 - s)
		}
	}),
	0x0c: both(func(s1, s2 uint16, dl, dh *uint16) {
		s := min(shiftCount(s2), 8)
		ns := 8 - s
		hi := s1 >> 8
		lo := s1 & 0xff
		*dl = pack(hi<<s, lo<<s)
		*dh = pack(hi>>ns, lo>>ns)
	}),
	0x0d: both(func(s1, s2 uint16, dl, dh *uint16) {
		s := min(shiftCount(s2), 8)
		ns := 8 - s
		hi := s1 >> 8
		lo := s1 & 0xff
		*dl = pack(hi>>s, lo>>s)
		*dh = pack(hi<<ns, lo<<ns)
	}),
	0x0e: both(low(func(s1, s2 uint16) uint16 {
		s := shiftCount(s2)
		return s1<<s | s1>>(16-s)
	})),
	0x0f: both(low(func(s1, s2 uint16) uint16 {
		s := shiftCount(s2)
		return s1>>s | s1<<(16-s)
	})),

	0x10: both(low(func(s1, s2 uint16) uint16 {
		var n uint16
		for i := 0; i <= int(s2&0x0f); i++ {
			n += (s1 >> (15 - i)) & 0x01
		}
		return n
	})),
	0x11: both(low(func(s1, s2 uint16) uint16 {
		var n uint16
		for i := 0; i <= int(s2&0x0f); i++ {
			n += (s1 >> i) & 0x01
		}
		return n
	})),
	0x12: both(low(func(s1, s2 uint16) uint16 {
		var v uint16
		for i := 0; i <= int(s2&0x0f); i++ {
			v >>= 1
			v |= (s1 << i) & 0x8000
		}
		return v
	})),
	0x13: both(low(func(s1, s2 uint16) uint16 {
		var v uint16
		for i := 0; i <= int(s2&0x0f); i++ {
			v <<= 1
			v |= (s1 >> i) & 0x0001
		}
		return v
	})),
	0x14: both(low(func(s1, s2 uint16) uint16 {
		for i := int(s2 & 0x0f); i >= 0; i-- {
			if s1&(1<<i) != 0 {
				return uint16(i)
			}
		}
		return 0xffff
	})),
	0x15: both(low(func(s1, s2 uint16) uint16 {
		for i := int(s2 & 0x0f); i >= 0; i-- {
			if s1&(1<<i) == 0 {
				return uint16(i)
			}
		}
		return 0xffff
	})),
	0x16: both(low(func(s1, s2 uint16) uint16 {
		for i := int(s2 & 0x0f); i <= 15; i++ {
			if s1&(1<<i) != 0 {
				return uint16(i)
			}
		}
		return 0xffff
	})),
	0x17: both(low(func(s1, s2 uint16) uint16 {
		for i := int(s2 & 0x0f); i <= 15; i++ {
			if s1&(1<<i) == 0 {
				return uint16(i)
			}
		}
		return 0xffff
	})),

	0x18: both(func(s1, s2 uint16, dl, dh *uint16) {
		*dl = pack(s1, s2)
		*dh = pack(s1>>8, s2>>8)
	}),
	0x19: both(low(func(s1, s2 uint16) uint16 { return pack(s1, s2) })),
	0x1a: both(low(func(s1, s2 uint16) uint16 { return pack(s1>>8, s2>>8) })),
	0x1b: both(low(func(s1, s2 uint16) uint16 { return pack(s1, s2>>8) })),
	0x1c: both(low(func(s1, s2 uint16) uint16 { return s1 ^ (1 << (s2 & 0x0f)) })),
	0x1d: both(low(func(s1, s2 uint16) uint16 { return s1 | (1 << (s2 & 0x0f)) })),
	0x1e: both(low(func(s1, s2 uint16) uint16 { return s1 &^ (1 << (s2 & 0x0f)) })),
	0x1f: {
		low(func(s1, s2 uint16) uint16 { return flagWord(s1 == s2) }),
		low(func(s1, s2 uint16) uint16 { return flagWord(s1 != s2) }),
	},

	0x20: both(low(func(s1, s2 uint16) uint16 { return flagWord(s1 < s2) })),
	0x21: both(low(func(s1, s2 uint16) uint16 { return flagWord(swap(s1) < swap(s2)) })),
	0x22: both(low(func(s1, s2 uint16) uint16 { return flagWord(s1 <= s2) })),
	0x23: both(low(func(s1, s2 uint16) uint16 { return flagWord(swap(s1) <= swap(s2)) })),
	0x24: both(accumulate(func(s1, s2 uint16) bool { return s1 < s2 })),
	0x25: both(accumulate(func(s1, s2 uint16) bool { return swap(s1) < swap(s2) })),
	0x26: both(accumulate(func(s1, s2 uint16) bool { return s1 <= s2 })),
	0x27: both(accumulate(func(s1, s2 uint16) bool { return swap(s1) <= swap(s2) })),

	0x28: both(low(func(s1, s2 uint16) uint16 { return flagWord(int16(s1) < int16(s2)) })),
	0x29: both(low(func(s1, s2 uint16) uint16 { return flagWord(int16(swap(s1)) < int16(swap(s2))) })),
	0x2a: both(low(func(s1, s2 uint16) uint16 { return flagWord(int16(s1) <= int16(s2)) })),
	0x2b: both(low(func(s1, s2 uint16) uint16 { return flagWord(int16(swap(s1)) <= int16(swap(s2))) })),
	0x2c: both(accumulate(func(s1, s2 uint16) bool { return int16(s1) < int16(s2) })),
	0x2d: both(accumulate(func(s1, s2 uint16) bool { return int16(swap(s1)) < int16(swap(s2)) })),
	0x2e: both(accumulate(func(s1, s2 uint16) bool { return int16(s1) <= int16(s2) })),
	0x2f: both(accumulate(func(s1, s2 uint16) bool { return int16(swap(s1)) <= int16(swap(s2)) })),

	0x30: {
		low(func(s1, s2 uint16) uint16 { return pick(int16(s1) < int16(s2), s1, s2) }),
		low(func(s1, s2 uint16) uint16 { return pick(s1 < s2, s1, s2) }),
	},
	0x31: {
		low(func(s1, s2 uint16) uint16 { return pick(int16(swap(s1)) < int16(swap(s2)), s1, s2) }),
		low(func(s1, s2 uint16) uint16 { return pick(swap(s1) < swap(s2), s1, s2) }),
	},
	0x32: {
		low(func(s1, s2 uint16) uint16 { return pick(int16(s1) > int16(s2), s1, s2) }),
		low(func(s1, s2 uint16) uint16 { return pick(s1 > s2, s1, s2) }),
	},
	0x33: {
		low(func(s1, s2 uint16) uint16 { return pick(int16(swap(s1)) > int16(swap(s2)), s1, s2) }),
		low(func(s1, s2 uint16) uint16 { return pick(swap(s1) > swap(s2), s1, s2) }),
	},

	0x3a: {
		low(func(s1, s2 uint16) uint16 { return uint16(abs(i32(s1) - i32(s2))) }),
		low(func(s1, s2 uint16) uint16 { return uint16(abs(int32(s1) - int32(s2))) }),
	},

	0x40: {
		func(s1, s2 uint16, dl, dh *uint16) { product(i32(s1)*i32(s2), dl, dh) },
		func(s1, s2 uint16, dl, dh *uint16) { product(int32(uint32(s1)*uint32(s2)), dl, dh) },
	},
	0x42: both(func(s1, s2 uint16, dl, dh *uint16) { product(i32(s1)*int32(s2), dl, dh) }),
	0x44: both(func(s1, s2 uint16, dl, dh *uint16) { product(int32(s1)*i32(s2), dl, dh) }),
	0x46: both(low(func(s1, s2 uint16) uint16 { return s1 * s2 })),

	0x48: both(low(func(s1, s2 uint16) uint16 { return ((s1&0xff-0x20)&0x1ff)<<3 + s2 })),
	0x49: both(low(func(s1, s2 uint16) uint16 { return (((s1>>8)&0xff-0x20)&0x1ff)<<3 + s2 })),
	0x4a: both(func(s1, s2 uint16, dl, dh *uint16) {
		if s2 == 0 {
			*dl = 0x7fff
			*dh = 0x7fff
			return
		}
		n := i32(s1)
		d := i32(s2)
		*dl = uint16(n / d)
		*dh = uint16(n % d)
	}),
	0x4c: both(func(s1, s2 uint16, dl, dh *uint16) {
		if s2 == 0 {
			*dl = 0xffff
			*dh = 0xffff
			return
		}
		*dl = s1 / s2
		*dh = s1 % s2
	}),

	0x50: {
		func(s1, s2 uint16, dl, dh *uint16) { product(i32(s1)+i32(s2), dl, dh) },
		func(s1, s2 uint16, dl, dh *uint16) { product(int32(s1)+int32(s2), dl, dh) },
	},
	0x51: {
		func(s1, s2 uint16, dl, _ *uint16) { *dl = s1 + s2 + *dl },
		func(s1, s2 uint16, dl, dh *uint16) { product(int32(s1)+int32(s2)+int32(*dl), dl, dh) },
	},
	0x52: both(func(s1, s2 uint16, dl, dh *uint16) { product(i32(s1)-i32(s2), dl, dh) }),
	0x53: both(func(s1, s2 uint16, dl, dh *uint16) { product(int32(s1)-int32(s2), dl, dh) }),
	0x54: both(func(s1, s2 uint16, dl, dh *uint16) { product(int32(s1)-int32(s2)+i32(*dl), dl, dh) }),
	0x55: both(func(s1, s2 uint16, dl, _ *uint16) { *dl = uint16(int32(s1) - int32(s2) + i32(*dl)) }),
	0x56: both(func(s1, s2 uint16, dl, dh *uint16) {
		*dh = s1
		*dl = s2
	}),
	0x57: both(func(s1, s2 uint16, dl, dh *uint16) {
		*dh = s1 + s2
		*dl = s1 - s2
	}),
}

func both(f xop) [2]xop {
	return [2]xop{f, f}
}

func accumulate(f func(s1, s2 uint16) bool) xop {
	return func(s1, s2 uint16, dl, _ *uint16) {
		*dl &= flagWord(f(s1, s2))
	}
}

func pick(b bool, s1 uint16, s2 uint16) uint16 {
	if b {
		return s1
	}
	return s2
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func product(p int32, dl *uint16, dh *uint16) {
	*dl = uint16(p)
	*dh = uint16(p >> 16)
}

// the 32-bit division operations. the dividend is the register pair starting
// at the first source register. if the first source is one of the general
// purpose registers then it is the upper half of the dividend
func div32(signed bool, lo uint16, hi uint16, s2 uint16, dl *uint16, dh *uint16) {
	if signed {
		*dl = 0x7fff
		*dh = 0x7fff
		if s2 == 0 {
			return
		}
		n := int32(uint32(hi)<<16 | uint32(lo))
		d := i32(s2)
		q := n / d
		if q >= -0x8000 && q <= 0x7fff {
			*dl = uint16(q)
			*dh = uint16(n % d)
		}
		return
	}

	*dl = 0xffff
	*dh = 0xffff
	if s2 == 0 {
		return
	}
	n := uint32(hi)<<16 | uint32(lo)
	d := uint32(s2)
	q := n / d
	if q <= 0xffff {
		*dl = uint16(q)
		*dh = uint16(n % d)
	}
}

// extended executes an instruction from the extended instruction set. invalid
// instructions are executed as a NOP.
func extended(mc *CPU, d *instructions.Decoded) int {
	mc.advance(2)

	opcode := int(d.Imm0 >> 8)
	sbit := d.AMode & 0x01
	s1type := (d.AMode >> 3) & 0x01
	s2type := (d.AMode >> 1) & 0x03

	if d.AMode >= 0x20 || d.AMode < 0x02 || opcode >= len(xops) || s2type == 0 {
		return 9
	}

	if opcode != xopDiv32S && opcode != xopDiv32U && xops[opcode][sbit] == nil {
		return 9
	}

	dl := &mc.Reg.X[d.XReg0]
	dh := &mc.Reg.X[(d.XReg0+1)&0x0f]

	mc.write(PVAddress, *dl)

	var s1 uint16
	if s1type == 0 {
		s1 = mc.Reg.R[d.Reg0&0x07]
	} else {
		s1 = mc.Reg.X[d.Reg0]
	}

	var s2 uint16
	if s2type == 1 {
		s2 = mc.Reg.X[d.Reg1]
	} else {
		s2 = d.Imm1
	}

	if opcode == xopDiv32S || opcode == xopDiv32U {
		if sbit == 1 {
			return 9
		}
		var hi, lo uint16
		if s1type == 0 {
			hi = s1
		} else {
			lo = s1
			hi = mc.Reg.X[(d.Reg0+1)&0x0f]
		}
		div32(opcode == xopDiv32S, lo, hi, s2, dl, dh)
		return 9
	}

	if sbit == 1 {
		s1, s2 = s2, s1
	}

	xops[opcode][sbit](s1, s2, dl, dh)

	return 9
}
