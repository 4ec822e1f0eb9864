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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/locutus/hardware/cpu/instructions"
	"github.com/jetsetilly/locutus/test"
)

func TestTotality(t *testing.T) {
	var count [instructions.NumFormats]int
	for op := range uint16(1024) {
		f := instructions.Classify(op)
		if !test.ExpectSuccess(t, f >= 0 && f < instructions.NumFormats, op) {
			return
		}
		count[f]++
	}

	test.ExpectEquality(t, count[instructions.ImpliedA], 4)
	test.ExpectEquality(t, count[instructions.ImpliedB], 3)
	test.ExpectEquality(t, count[instructions.Jump], 1)
	test.ExpectEquality(t, count[instructions.GetStatus], 4)
	test.ExpectEquality(t, count[instructions.NopSin], 4)
	test.ExpectEquality(t, count[instructions.Register1], 48)
	test.ExpectEquality(t, count[instructions.Rotate], 64)
	test.ExpectEquality(t, count[instructions.Register2], 384)
	test.ExpectEquality(t, count[instructions.Branch], 64)
	test.ExpectEquality(t, count[instructions.Direct], 56)
	test.ExpectEquality(t, count[instructions.Immediate], 56)
	test.ExpectEquality(t, count[instructions.Indirect], 336)

	// the upper six bits do not affect classification
	test.ExpectEquality(t, instructions.Classify(0xffff), instructions.Immediate)
	test.ExpectEquality(t, instructions.Classify(0x0400|0x0004), instructions.Jump)
}

func TestLength(t *testing.T) {
	test.ExpectEquality(t, instructions.Immediate.Length(false), 2)
	test.ExpectEquality(t, instructions.Immediate.Length(true), 3)
	test.ExpectEquality(t, instructions.Indirect.Length(true), 1)
	test.ExpectEquality(t, instructions.Jump.Length(false), 3)
	test.ExpectEquality(t, instructions.Branch.Length(true), 2)
	test.ExpectEquality(t, instructions.Register2.Length(true), 1)
}

func TestWeeds(t *testing.T) {
	test.ExpectSuccess(t, instructions.InTheWeeds(0x0400, false))
	test.ExpectFailure(t, instructions.InTheWeeds(0x03ff, false))
	test.ExpectFailure(t, instructions.InTheWeeds(0x0400, true))
	test.ExpectSuccess(t, instructions.InTheWeeds(0xffff, true))
	test.ExpectSuccess(t, instructions.InTheWeeds(0xffff, false))
}

func TestJump(t *testing.T) {
	// JSR R5,$1234
	d := instructions.Decode(0x5000, [3]uint16{0x0004, 0x0110, 0x0234}, false, false)
	test.ExpectEquality(t, d.Format, instructions.Jump)
	test.ExpectEquality(t, d.Length, 3)
	test.ExpectEquality(t, d.Imm0, uint16(0x1234))
	test.ExpectEquality(t, d.Reg0, 5)
	test.ExpectEquality(t, d.Binding, instructions.JumpSave)
	test.ExpectEquality(t, d.String(), "JSR R5,$1234")

	// JD $5000
	d = instructions.Decode(0x5000, [3]uint16{0x0004, 0x0352, 0x0000}, false, false)
	test.ExpectEquality(t, d.Binding, instructions.JumpNoSave)
	test.ExpectEquality(t, d.Imm0, uint16(0x5000))
	test.ExpectEquality(t, d.Imm1, uint16(2))
	test.ExpectEquality(t, d.String(), "JD $5000")
}

func TestRegister2(t *testing.T) {
	// MOVR R1,R2
	d := instructions.Decode(0x5000, [3]uint16{0x008a}, false, false)
	test.ExpectEquality(t, d.Reg0, 1)
	test.ExpectEquality(t, d.Reg1, 2)
	test.ExpectEquality(t, d.Binding, 2)
	test.ExpectEquality(t, d.String(), "MOVR R1,R2")

	// MOVR R3,R3 is TSTR R3
	d = instructions.Decode(0x5000, [3]uint16{0x009b}, false, false)
	test.ExpectEquality(t, d.Binding, instructions.Register2Test)
	test.ExpectEquality(t, d.String(), "TSTR R3")

	// ADDR R7,R1
	d = instructions.Decode(0x5000, [3]uint16{0x00f9}, false, false)
	test.ExpectEquality(t, d.Binding, 3|instructions.Register2SrcPC)

	// MOVR R5,R7
	d = instructions.Decode(0x5000, [3]uint16{0x00af}, false, false)
	test.ExpectEquality(t, d.Binding, 2|instructions.Register2DstPC)

	// MOVR R7,R7 is not a test instruction
	d = instructions.Decode(0x5000, [3]uint16{0x00bf}, false, false)
	test.ExpectEquality(t, d.Binding, 2|instructions.Register2SrcPC)
}

func TestBranch(t *testing.T) {
	// BEQ forward
	d := instructions.Decode(0x5000, [3]uint16{0x0204, 0x0010}, false, false)
	test.ExpectEquality(t, d.Format, instructions.Branch)
	test.ExpectEquality(t, d.Imm0, uint16(0x5012))
	test.ExpectEquality(t, d.String(), "BEQ $5012")

	// B backwards. a displacement of 1 with the direction bit set branches
	// to the branch instruction itself
	d = instructions.Decode(0x5000, [3]uint16{0x0220, 0x0001}, false, false)
	test.ExpectEquality(t, d.Imm0, uint16(0x5000))
	test.ExpectEquality(t, d.String(), "B $5000")

	// BEXT
	d = instructions.Decode(0x5000, [3]uint16{0x0213, 0x0000}, false, false)
	test.ExpectEquality(t, d.Mnemonic(), "BEXT")
	test.ExpectEquality(t, d.Imm1, uint16(3))
}

func TestDirect(t *testing.T) {
	// MVI $0102,R1
	d := instructions.Decode(0x5000, [3]uint16{0x0281, 0x0102}, false, false)
	test.ExpectEquality(t, d.Format, instructions.Direct)
	test.ExpectEquality(t, d.Imm0, uint16(0x0102))
	test.ExpectEquality(t, d.Reg0, 1)
	test.ExpectEquality(t, d.String(), "MVI $0102,R1")

	// MVO R2,$0200
	d = instructions.Decode(0x5000, [3]uint16{0x0242, 0x0200}, false, false)
	test.ExpectEquality(t, d.String(), "MVO R2,$0200")
}

func TestIndirect(t *testing.T) {
	// MVI@ R4,R0 without SDBD
	d := instructions.Decode(0x5000, [3]uint16{0x02a0}, false, false)
	test.ExpectEquality(t, d.Format, instructions.Indirect)
	test.ExpectEquality(t, d.Reg0, 4)
	test.ExpectEquality(t, d.Reg1, 0)
	test.ExpectEquality(t, d.Binding, 2|instructions.IndirectIncrement|instructions.IndirectNoDBD)
	test.ExpectEquality(t, d.String(), "MVI@ R4,R0")

	// with SDBD
	d = instructions.Decode(0x5000, [3]uint16{0x02a0}, true, false)
	test.ExpectEquality(t, d.Binding, 2|instructions.IndirectIncrement)
	test.ExpectEquality(t, d.Length, 1)

	// PSHR R1 is MVO@ R1,R6
	d = instructions.Decode(0x5000, [3]uint16{0x0271}, false, false)
	test.ExpectEquality(t, d.Binding, 1|instructions.IndirectStack|instructions.IndirectNoDBD)
}

func TestImmediate(t *testing.T) {
	// MVII #$1234,R1
	d := instructions.Decode(0x5000, [3]uint16{0x02b9, 0x1234}, false, false)
	test.ExpectEquality(t, d.Format, instructions.Immediate)
	test.ExpectEquality(t, d.Length, 2)
	test.ExpectEquality(t, d.Imm0, uint16(0x1234))
	test.ExpectEquality(t, d.Binding, 2|instructions.ImmediateNoDBD)
	test.ExpectEquality(t, d.String(), "MVII #$1234,R1")

	// SDBD followed by MVII is three words long
	d = instructions.Decode(0x5000, [3]uint16{0x02b9, 0x0034, 0x0012}, true, false)
	test.ExpectEquality(t, d.Length, 3)
	test.ExpectEquality(t, d.Imm1, uint16(0x1234))
	test.ExpectEquality(t, d.Binding, 2)
	test.ExpectEquality(t, d.String(), "MVII #$1234,R1")

	// the 0xffff word decodes as an immediate XOR and is flagged
	d = instructions.Decode(0x5000, [3]uint16{0xffff, 0xffff}, false, true)
	test.ExpectSuccess(t, d.Weeds)
	test.ExpectEquality(t, d.AMode, 1)
	test.ExpectFailure(t, d.Extended)
}

func TestExtended(t *testing.T) {
	// extended opcode 0x40 (MPYSS) with constant source
	w0 := uint16(0x0278) | 0x04<<10
	d := instructions.Decode(0x5000, [3]uint16{w0, 0x4053}, false, true)
	test.ExpectSuccess(t, d.Extended)
	test.ExpectEquality(t, d.AMode, 0x04)
	test.ExpectEquality(t, d.XReg0, 3)
	test.ExpectEquality(t, d.Imm1, uint16(5))
	test.ExpectEquality(t, d.Reg0, 0)

	// not extended when the extended instruction set is disabled
	d = instructions.Decode(0x5000, [3]uint16{w0, 0x4053}, false, false)
	test.ExpectFailure(t, d.Extended)
}

func TestInterruptible(t *testing.T) {
	d := instructions.Decode(0x5000, [3]uint16{0x0001}, false, false)
	test.ExpectFailure(t, d.IsInterruptible())
	d = instructions.Decode(0x5000, [3]uint16{0x0240, 0x0100}, false, false)
	test.ExpectFailure(t, d.IsInterruptible())
	d = instructions.Decode(0x5000, [3]uint16{0x0280, 0x0100}, false, false)
	test.ExpectSuccess(t, d.IsInterruptible())
	d = instructions.Decode(0x5000, [3]uint16{0x0034}, false, false)
	test.ExpectSuccess(t, d.IsInterruptible())
}
