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
	"github.com/jetsetilly/locutus/hardware/cpu/registers"
	"github.com/jetsetilly/locutus/logger"
)

// execute is the signature of all instruction implementations. The number of
// cycles used by the instruction is returned.
type execute func(mc *CPU, d *instructions.Decoded) int

// operation numbers shared by the Register2, Direct, Indirect and Immediate
// formats
const (
	opMVO = 1
	opMVI = 2
	opADD = 3
	opSUB = 4
	opCMP = 5
	opAND = 6
	opXOR = 7
)

// alu performs the arithmetic or logical operation on the two values. the
// result should be stored in the destination register if the second return
// value is true.
func (mc *CPU) alu(op int, src uint16, dst uint16) (uint16, bool) {
	switch op {
	case opADD:
		return mc.add(src, dst), true
	case opSUB:
		return mc.sub(src, dst), true
	case opCMP:
		mc.sub(src, dst)
		return dst, false
	case opAND:
		return mc.sz(src & dst), true
	case opXOR:
		return mc.sz(src ^ dst), true
	}

	// opMVI or the MOVR form of the Register2 format
	return src, true
}

func (mc *CPU) pc() uint16 {
	return mc.Reg.R[registers.PC]
}

func (mc *CPU) advance(n uint16) {
	mc.Reg.R[registers.PC] += n
}

func (mc *CPU) dbd() uint16 {
	if mc.Reg.Status.DBD() {
		return 1
	}
	return 0
}

// unreachable entries in the dispatch tables.
func invalid(mc *CPU, d *instructions.Decoded) int {
	logger.Logf(logger.Allow, "cpu", "invalid opcode @ %04x: %04x %04x %04x",
		d.Address, mc.mem.Peek(d.Address), mc.mem.Peek(d.Address+1), mc.mem.Peek(d.Address+2))
	mc.advance(1)
	return 0
}

func hlt(mc *CPU, d *instructions.Decoded) int {
	logger.Logf(logger.Allow, "cpu", "halt: PC=%04x instructions=%d cycles=%d",
		mc.pc(), mc.Instructions, mc.Cycles)
	mc.Halted = true
	return 4
}

func sdbd(mc *CPU, _ *instructions.Decoded) int {
	mc.advance(1)
	mc.Reg.Status.SetDBD()
	return 4
}

func eis(mc *CPU, _ *instructions.Decoded) int {
	mc.advance(1)
	mc.Reg.Status.InterruptsEnabled = true
	return 4
}

func dis(mc *CPU, _ *instructions.Decoded) int {
	mc.advance(1)
	mc.Reg.Status.InterruptsEnabled = false
	return 4
}

// TCI has no effect in the Intellivision.
func tci(mc *CPU, _ *instructions.Decoded) int {
	mc.advance(1)
	return 4
}

func clrc(mc *CPU, _ *instructions.Decoded) int {
	mc.advance(1)
	mc.Reg.Status.Carry = false
	return 4
}

func setc(mc *CPU, _ *instructions.Decoded) int {
	mc.advance(1)
	mc.Reg.Status.Carry = true
	return 4
}

// the interrupt enable bits in the second word of a jump apply to both J and
// JSR. a value of zero leaves the interrupt state alone
func jumpInterrupts(mc *CPU, d *instructions.Decoded) {
	if d.Imm1 != 0 {
		mc.Reg.Status.InterruptsEnabled = d.Imm1&0x01 == 0x01
	}
}

// J, JE and JD
func j(mc *CPU, d *instructions.Decoded) int {
	jumpInterrupts(mc, d)
	mc.Reg.R[registers.PC] = d.Imm0
	return 13
}

// JSR, JSRE and JSRD. the return address is saved in the link register
func jsr(mc *CPU, d *instructions.Decoded) int {
	jumpInterrupts(mc, d)
	mc.Reg.R[d.Reg0] = mc.pc() + 3
	mc.Reg.R[registers.PC] = d.Imm0
	return 13
}

func incr(mc *CPU, d *instructions.Decoded) int {
	mc.advance(1)
	mc.Reg.R[d.Reg0] = mc.sz(mc.Reg.R[d.Reg0] + 1)
	return 6 + extra(d.Reg0)
}

func decr(mc *CPU, d *instructions.Decoded) int {
	mc.advance(1)
	mc.Reg.R[d.Reg0] = mc.sz(mc.Reg.R[d.Reg0] - 1)
	return 6 + extra(d.Reg0)
}

func comr(mc *CPU, d *instructions.Decoded) int {
	mc.advance(1)
	mc.Reg.R[d.Reg0] = mc.sz(mc.Reg.R[d.Reg0] ^ 0xffff)
	return 6 + extra(d.Reg0)
}

func negr(mc *CPU, d *instructions.Decoded) int {
	mc.advance(1)
	mc.Reg.R[d.Reg0] = mc.sub(mc.Reg.R[d.Reg0], 0)
	return 6 + extra(d.Reg0)
}

func adcr(mc *CPU, d *instructions.Decoded) int {
	mc.advance(1)
	mc.Reg.R[d.Reg0] = mc.add(mc.Reg.R[d.Reg0], b2u(mc.Reg.Status.Carry))
	return 6 + extra(d.Reg0)
}

func rswd(mc *CPU, d *instructions.Decoded) int {
	mc.advance(1)
	mc.Reg.Status.LoadWord(mc.Reg.R[d.Reg0])
	return 6
}

func gswd(mc *CPU, d *instructions.Decoded) int {
	mc.advance(1)
	mc.Reg.R[d.Reg0] = mc.Reg.Status.Word()
	return 6
}

func nop(mc *CPU, _ *instructions.Decoded) int {
	mc.advance(1)
	return 6
}

// the values in R0 and R1 that cause SIN to identify the emulator
const (
	sinProbeR0 = 0x656d
	sinProbeR1 = 0x753f
	sinReplyR0 = 0x4a5a
)

func sin(mc *CPU, _ *instructions.Decoded) int {
	mc.advance(1)
	if mc.Reg.R[0] == sinProbeR0 && mc.Reg.R[1] == sinProbeR1 {
		mc.Reg.R[0] = sinReplyR0
		mc.Reg.R[1] = Version
		mc.Reg.Status.Carry = false
	}
	return 6
}

// rotate and shift instructions in the order of the operation field of the
// Rotate format
var rotates = [16]func(mc *CPU, r uint16) (uint16, int){
	// SWAP
	func(mc *CPU, r uint16) (uint16, int) {
		mc.Reg.Status.Zero = r == 0
		mc.Reg.Status.Sign = bit(r, 0x8000)
		return r>>8 | r<<8, 6
	},
	// SWAP2
	func(mc *CPU, r uint16) (uint16, int) {
		r &= 0xff
		v := r | r<<8
		mc.Reg.Status.Sign = bit(r, 0x0080)
		mc.Reg.Status.Zero = v == 0
		return v, 8
	},
	// SLL
	func(mc *CPU, r uint16) (uint16, int) {
		v := r << 1
		mc.Reg.Status.Sign = bit(r, 0x4000)
		mc.Reg.Status.Zero = v == 0
		return v, 6
	},
	// SLL2
	func(mc *CPU, r uint16) (uint16, int) {
		v := r << 2
		mc.Reg.Status.Sign = bit(r, 0x2000)
		mc.Reg.Status.Zero = v == 0
		return v, 8
	},
	// RLC
	func(mc *CPU, r uint16) (uint16, int) {
		v := r<<1 | b2u(mc.Reg.Status.Carry)
		mc.Reg.Status.Zero = v == 0
		mc.Reg.Status.Carry = bit(r, 0x8000)
		mc.Reg.Status.Sign = bit(r, 0x4000)
		return v, 6
	},
	// RLC2
	func(mc *CPU, r uint16) (uint16, int) {
		v := r<<2 | b2u(mc.Reg.Status.Carry)<<1 | b2u(mc.Reg.Status.Overflow)
		mc.Reg.Status.Zero = v == 0
		mc.Reg.Status.Carry = bit(r, 0x8000)
		mc.Reg.Status.Overflow = bit(r, 0x4000)
		mc.Reg.Status.Sign = bit(r, 0x2000)
		return v, 8
	},
	// SLLC
	func(mc *CPU, r uint16) (uint16, int) {
		v := r << 1
		mc.Reg.Status.Zero = v == 0
		mc.Reg.Status.Carry = bit(r, 0x8000)
		mc.Reg.Status.Sign = bit(r, 0x4000)
		return v, 6
	},
	// SLLC2
	func(mc *CPU, r uint16) (uint16, int) {
		v := r << 2
		mc.Reg.Status.Zero = v == 0
		mc.Reg.Status.Carry = bit(r, 0x8000)
		mc.Reg.Status.Overflow = bit(r, 0x4000)
		mc.Reg.Status.Sign = bit(r, 0x2000)
		return v, 8
	},
	// SLR
	func(mc *CPU, r uint16) (uint16, int) {
		v := r >> 1
		mc.Reg.Status.Sign = bit(r, 0x0100)
		mc.Reg.Status.Zero = v == 0
		return v, 6
	},
	// SLR2
	func(mc *CPU, r uint16) (uint16, int) {
		v := r >> 2
		mc.Reg.Status.Sign = bit(r, 0x0200)
		mc.Reg.Status.Zero = v == 0
		return v, 8
	},
	// SAR
	func(mc *CPU, r uint16) (uint16, int) {
		v := r>>1 | r&0x8000
		mc.Reg.Status.Sign = bit(r, 0x0100)
		mc.Reg.Status.Zero = v == 0
		return v, 6
	},
	// SAR2
	func(mc *CPU, r uint16) (uint16, int) {
		s := r & 0x8000
		v := r>>2 + s + s>>1
		mc.Reg.Status.Sign = bit(r, 0x0200)
		mc.Reg.Status.Zero = v == 0
		return v, 8
	},
	// RRC
	func(mc *CPU, r uint16) (uint16, int) {
		v := r>>1 | b2u(mc.Reg.Status.Carry)<<15
		mc.Reg.Status.Sign = bit(r, 0x0100)
		mc.Reg.Status.Zero = v == 0
		mc.Reg.Status.Carry = bit(r, 0x0001)
		return v, 6
	},
	// RRC2
	func(mc *CPU, r uint16) (uint16, int) {
		v := r>>2 | b2u(mc.Reg.Status.Carry)<<14 | b2u(mc.Reg.Status.Overflow)<<15
		mc.Reg.Status.Sign = bit(r, 0x0200)
		mc.Reg.Status.Zero = v == 0
		mc.Reg.Status.Carry = bit(r, 0x0001)
		mc.Reg.Status.Overflow = bit(r, 0x0002)
		return v, 8
	},
	// SARC
	func(mc *CPU, r uint16) (uint16, int) {
		v := r>>1 | r&0x8000
		mc.Reg.Status.Sign = bit(r, 0x0100)
		mc.Reg.Status.Zero = v == 0
		mc.Reg.Status.Carry = bit(r, 0x0001)
		return v, 6
	},
	// SARC2
	func(mc *CPU, r uint16) (uint16, int) {
		s := r & 0x8000
		v := r>>2 + s + s>>1
		mc.Reg.Status.Sign = bit(r, 0x0200)
		mc.Reg.Status.Zero = v == 0
		mc.Reg.Status.Carry = bit(r, 0x0001)
		mc.Reg.Status.Overflow = bit(r, 0x0002)
		return v, 8
	},
}

func rotate(mc *CPU, d *instructions.Decoded) int {
	mc.advance(1)
	v, cycles := rotates[d.Op](mc, mc.Reg.R[d.Reg0])
	mc.Reg.R[d.Reg0] = v
	return cycles
}

// register to register. neither register is the program counter
func registerToRegister(mc *CPU, d *instructions.Decoded) int {
	r0 := mc.Reg.R[d.Reg0]
	r1 := mc.Reg.R[d.Reg1]
	mc.advance(1)

	if d.Op == opMVI {
		mc.Reg.R[d.Reg1] = mc.sz(r0)
	} else if v, store := mc.alu(d.Op, r0, r1); store {
		mc.Reg.R[d.Reg1] = v
	}

	return 6 + extra(d.Reg1)
}

// TSTR is encoded as MOVR with the same source and destination
func registerTest(mc *CPU, d *instructions.Decoded) int {
	r0 := mc.Reg.R[d.Reg0]
	if d.Reg0 == registers.PC {
		r0++
	}
	mc.advance(1)
	mc.sz(r0)
	return 6 + extra(d.Reg1)
}

// the program counter is the source register. the value of the program
// counter is the address of the next instruction
func pcToRegister(mc *CPU, d *instructions.Decoded) int {
	r0 := mc.pc() + 1
	r1 := mc.Reg.R[d.Reg1]
	mc.Reg.R[registers.PC] = r0

	if d.Op == opMVI {
		mc.Reg.R[d.Reg1] = mc.sz(r0)
	} else if v, store := mc.alu(d.Op, r0, r1); store {
		mc.Reg.R[d.Reg1] = v
	}

	return 6 + extra(d.Reg1)
}

// the program counter is the destination register
func registerToPC(mc *CPU, d *instructions.Decoded) int {
	r0 := mc.Reg.R[d.Reg0]
	r1 := mc.pc() + 1

	if d.Op == opMVI {
		mc.Reg.R[registers.PC] = mc.sz(r0)
	} else {
		v, _ := mc.alu(d.Op, r0, r1)
		mc.Reg.R[registers.PC] = v
	}

	return 7
}

// branch conditions in the order of the condition field of the Branch format.
// the BEXT instruction is handled separately
var conditions = [16]func(sr registers.Status) bool{
	func(sr registers.Status) bool { return true },
	func(sr registers.Status) bool { return sr.Carry },
	func(sr registers.Status) bool { return sr.Overflow },
	func(sr registers.Status) bool { return !sr.Sign },
	func(sr registers.Status) bool { return sr.Zero },
	func(sr registers.Status) bool { return sr.Sign != sr.Overflow },
	func(sr registers.Status) bool { return sr.Zero || sr.Sign != sr.Overflow },
	func(sr registers.Status) bool { return sr.Carry != sr.Sign },
	func(sr registers.Status) bool { return false },
	func(sr registers.Status) bool { return !sr.Carry },
	func(sr registers.Status) bool { return !sr.Overflow },
	func(sr registers.Status) bool { return sr.Sign },
	func(sr registers.Status) bool { return !sr.Zero },
	func(sr registers.Status) bool { return sr.Sign == sr.Overflow },
	func(sr registers.Status) bool { return !(sr.Zero || sr.Sign != sr.Overflow) },
	func(sr registers.Status) bool { return sr.Carry == sr.Sign },
}

func branch(mc *CPU, d *instructions.Decoded) int {
	mc.advance(2)

	var taken bool
	if d.Op >= 16 {
		taken = mc.EBCA == d.Imm1
	} else {
		taken = conditions[d.Op](mc.Reg.Status)
	}

	if taken {
		mc.Reg.R[registers.PC] = d.Imm0
		return 9
	}
	return 7
}

// read the operand of a direct mode instruction. the extended addressing
// modes only apply when the extended instruction set is active
func (mc *CPU) directRead(d *instructions.Decoded) uint16 {
	if !mc.extendedISA || (d.AMode == 0 && d.XReg0 == 0) {
		return mc.read(d.Imm0)
	}

	base := mc.Reg.X[d.XReg0]
	addr := base + d.Imm0

	if d.AMode == 0 {
		// address calculation without a memory access
		if d.Reg0 == registers.PC && d.Op == opMVI {
			if base != 0 {
				return mc.pc() + d.Imm0 - 1
			}
			return mc.pc()
		}

		// counted loop. the register is decremented and the branch offset
		// is returned while the count is not zero
		if d.Reg0 == registers.PC && d.Op == opXOR {
			dest := mc.pc() - 1 + d.Imm0
			delta := mc.pc() ^ dest
			mc.Reg.X[d.XReg0]--
			if mc.Reg.X[d.XReg0] != 0 {
				return delta
			}
			return 0
		}

		return addr
	}

	if d.AMode&0x02 == 0x02 {
		mc.Reg.X[d.XReg0] = addr
	}
	if d.AMode&0x01 == 0x01 {
		return mc.read(addr)
	}
	return mc.read(base)
}

func (mc *CPU) directWrite(d *instructions.Decoded, data uint16) {
	if !mc.extendedISA || (d.AMode == 0 && d.XReg0 == 0) {
		mc.write(d.Imm0, data)
		return
	}

	base := mc.Reg.X[d.XReg0]
	addr := base + d.Imm0

	if d.AMode == 0 {
		mc.Reg.X[d.XReg0] = data + d.Imm0
		return
	}

	if d.AMode&0x02 == 0x02 {
		mc.Reg.X[d.XReg0] = addr
	}
	if d.AMode&0x01 == 0x01 {
		mc.write(addr, data)
	} else {
		mc.write(base, data)
	}
}

func direct(mc *CPU, d *instructions.Decoded) int {
	mc.advance(2)

	if d.Op == opMVO {
		mc.directWrite(d, mc.Reg.R[d.Reg0])
		return 11
	}

	cycles := 10 + extra(d.Reg0)

	r0 := mc.directRead(d)
	r1 := mc.Reg.R[d.Reg0]

	// double byte data takes the high byte from the word following the
	// instruction
	if mc.Reg.Status.DBD() {
		hi := mc.read(mc.pc())
		mc.advance(1)
		r0 = r0&0xff | (hi&0xff)<<8
		cycles += 3
	}

	if v, store := mc.alu(d.Op, r0, r1); store {
		mc.Reg.R[d.Reg0] = v
	}

	return cycles
}

// immediate mode for instructions decoded with knowledge of a preceeding SDBD
// instruction. the double byte data flag decides which operand is used
func immediate(mc *CPU, d *instructions.Decoded) int {
	if d.Op == opMVO {
		return immediateMVO(mc, d)
	}

	dbd := mc.dbd()
	mc.advance(2 + dbd)

	r0 := d.Imm0
	if dbd == 1 {
		r0 = d.Imm1
	}

	if v, store := mc.alu(d.Op, r0, mc.Reg.R[d.Reg0]); store {
		mc.Reg.R[d.Reg0] = v
	}

	if dbd == 1 {
		return 10 + extra(d.Reg0)
	}
	return 8 + extra(d.Reg0)
}

func immediateNoDBD(mc *CPU, d *instructions.Decoded) int {
	if d.Op == opMVO {
		return immediateMVO(mc, d)
	}

	mc.advance(2)

	if v, store := mc.alu(d.Op, d.Imm0, mc.Reg.R[d.Reg0]); store {
		mc.Reg.R[d.Reg0] = v
	}

	return 8 + extra(d.Reg0)
}

// MVO@ R7 writes the register to the word following the instruction
func immediateMVO(mc *CPU, d *instructions.Decoded) int {
	mc.advance(2)
	mc.write(d.Address+1, mc.Reg.R[d.Reg0])
	return 9
}

// the atomic forms of MVO@ combine the register with the value already in
// memory
func (mc *CPU) atomic(d *instructions.Decoded, addr uint16, data uint16) uint16 {
	switch d.AMode {
	case 1:
		return data + mc.read(addr)
	case 2:
		return data & mc.read(addr)
	case 3:
		return data | mc.read(addr)
	}
	return data
}

func indirectMVO(mc *CPU, d *instructions.Decoded, increment bool) int {
	addr := mc.Reg.R[d.Reg0]
	mc.advance(1)

	data := mc.atomic(d, addr, mc.Reg.R[d.Reg1])
	mc.write(addr, data)

	if increment {
		mc.Reg.R[d.Reg0] = addr + 1
	}

	return 9
}

// indirect through R1, R2 or R3 when the instruction was not preceeded by
// SDBD
func indirectNoDBD(mc *CPU, d *instructions.Decoded) int {
	if d.Op == opMVO {
		return indirectMVO(mc, d, false)
	}

	addr := mc.Reg.R[d.Reg0]
	mc.advance(1)

	if v, store := mc.alu(d.Op, mc.read(addr), mc.Reg.R[d.Reg1]); store {
		mc.Reg.R[d.Reg1] = v
	}

	return 8 + extra(d.Reg0)
}

// indirect through R1, R2 or R3. with double byte data the same address is
// read twice
func indirect(mc *CPU, d *instructions.Decoded) int {
	if d.Op == opMVO {
		return indirectMVO(mc, d, false)
	}

	dbd := mc.Reg.Status.DBD()
	addr := mc.Reg.R[d.Reg0]
	mc.advance(1)

	r1 := mc.Reg.R[d.Reg1]
	r0 := mc.read(addr)
	if dbd {
		r0 = r0&0xff | mc.read(addr)<<8
	}

	if v, store := mc.alu(d.Op, r0, r1); store {
		mc.Reg.R[d.Reg1] = v
	}

	if dbd {
		return 10 + extra(d.Reg0)
	}
	return 8 + extra(d.Reg0)
}

// indirect through R4 or R5 with the pointer incremented after every access
func indirectIncrement(mc *CPU, d *instructions.Decoded) int {
	if d.Op == opMVO {
		return indirectMVO(mc, d, true)
	}

	if !mc.Reg.Status.DBD() {
		return indirectIncrementNoDBD(mc, d)
	}

	addr := mc.Reg.R[d.Reg0]
	mc.advance(1)

	r1 := mc.Reg.R[d.Reg1]
	r0 := mc.read(addr)
	addr++
	r0 = r0&0xff | mc.read(addr)<<8
	addr++

	if d.Op == opMVI {
		mc.Reg.R[d.Reg0] = addr
		mc.Reg.R[d.Reg1] = r0
	} else {
		if v, store := mc.alu(d.Op, r0, r1); store {
			mc.Reg.R[d.Reg1] = v
		}
		mc.Reg.R[d.Reg0] = addr
	}

	return 10 + extra(d.Reg0)
}

func indirectIncrementNoDBD(mc *CPU, d *instructions.Decoded) int {
	if d.Op == opMVO {
		return indirectMVO(mc, d, true)
	}

	addr := mc.Reg.R[d.Reg0]
	mc.Reg.R[d.Reg0]++
	mc.advance(1)

	r1 := mc.Reg.R[d.Reg1]
	r0 := mc.read(addr)

	if v, store := mc.alu(d.Op, r0, r1); store {
		mc.Reg.R[d.Reg1] = v
	}

	return 8 + extra(d.Reg0)
}

// indirect through the stack pointer. MVO@ pushes to the stack and all other
// operations pop from the stack. popping ignores double byte data so the same
// routine serves both decodings
func indirectStack(mc *CPU, d *instructions.Decoded) int {
	if d.Op == opMVO {
		return indirectMVO(mc, d, true)
	}

	addr := mc.Reg.R[d.Reg0] - 1
	mc.advance(1)

	r0 := mc.read(addr)
	mc.Reg.R[d.Reg0] = addr
	r1 := mc.Reg.R[d.Reg1]

	if v, store := mc.alu(d.Op, r0, r1); store {
		mc.Reg.R[d.Reg1] = v
	}

	return 11 + extra(d.Reg0)
}
