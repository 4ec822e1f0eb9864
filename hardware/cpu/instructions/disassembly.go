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

package instructions

import (
	"fmt"
	"strings"
)

var impliedA = [...]string{"HLT", "SDBD", "EIS", "DIS"}
var impliedB = [...]string{"", "TCI", "CLRC", "SETC"}
var register1 = [...]string{"", "INCR", "DECR", "COMR", "NEGR", "ADCR", "", "RSWD"}
var rotate = [...]string{"SWAP", "SLL", "RLC", "SLLC", "SLR", "SAR", "RRC", "SARC"}
var register2 = [...]string{"", "", "MOVR", "ADDR", "SUBR", "CMPR", "ANDR", "XORR"}
var memory = [...]string{"", "MVO", "MVI", "ADD", "SUB", "CMP", "AND", "XOR"}

var branches = [...]string{
	"B", "BC", "BOV", "BPL", "BEQ", "BLT", "BLE", "BUSC",
	"NOPP", "BNC", "BNOV", "BMI", "BNEQ", "BGE", "BGT", "BESC",
}

// Mnemonic returns the assembler mnemonic for the instruction.
func (d *Decoded) Mnemonic() string {
	switch d.Format {
	case ImpliedA:
		return impliedA[d.Op]
	case ImpliedB:
		return impliedB[d.Op]
	case Jump:
		s := "J"
		if d.Binding == JumpSave {
			s = "JSR"
		}
		switch d.Imm1 {
		case 1:
			s = fmt.Sprintf("%sE", s)
		case 2:
			s = fmt.Sprintf("%sD", s)
		}
		return s
	case Register1:
		return register1[d.Op]
	case GetStatus:
		return "GSWD"
	case NopSin:
		if d.Op == 1 {
			return "SIN"
		}
		return "NOP"
	case Rotate:
		return rotate[d.Op>>1]
	case Register2:
		if d.Binding == Register2Test {
			return "TSTR"
		}
		return register2[d.Op]
	case Branch:
		if d.Op&0x10 == 0x10 {
			return "BEXT"
		}
		return branches[d.Op]
	case Direct:
		return memory[d.Op]
	case Indirect:
		return fmt.Sprintf("%s@", memory[d.Op])
	case Immediate:
		if d.Extended {
			return fmt.Sprintf("XOP%02X", d.Imm0>>8)
		}
		return fmt.Sprintf("%sI", memory[d.Op])
	}
	return "???"
}

func register(r int) string {
	return fmt.Sprintf("R%d", r)
}

// String returns the instruction in assembler syntax.
func (d *Decoded) String() string {
	s := strings.Builder{}
	s.WriteString(d.Mnemonic())

	operands := func(o ...string) {
		s.WriteString(" ")
		s.WriteString(strings.Join(o, ","))
	}

	switch d.Format {
	case Jump:
		if d.Binding == JumpSave {
			operands(register(d.Reg0), fmt.Sprintf("$%04X", d.Imm0))
		} else {
			operands(fmt.Sprintf("$%04X", d.Imm0))
		}
	case Register1, GetStatus:
		operands(register(d.Reg0))
	case Rotate:
		if d.Op&0x01 == 0x01 {
			operands(register(d.Reg0), "2")
		} else {
			operands(register(d.Reg0))
		}
	case Register2:
		if d.Binding == Register2Test {
			operands(register(d.Reg0))
		} else {
			operands(register(d.Reg0), register(d.Reg1))
		}
	case Branch:
		if d.Op&0x10 == 0x10 {
			operands(fmt.Sprintf("$%04X", d.Imm0), fmt.Sprintf("%d", d.Imm1))
		} else if d.Op != 8 {
			operands(fmt.Sprintf("$%04X", d.Imm0))
		}
	case Direct:
		if d.Op == 1 {
			operands(register(d.Reg0), fmt.Sprintf("$%04X", d.Imm0))
		} else {
			operands(fmt.Sprintf("$%04X", d.Imm0), register(d.Reg0))
		}
	case Indirect:
		if d.Op == 1 {
			operands(register(d.Reg1), register(d.Reg0))
		} else {
			operands(register(d.Reg0), register(d.Reg1))
		}
	case Immediate:
		if d.Extended {
			operands(fmt.Sprintf("$%04X", d.Imm0))
			break
		}
		v := d.Imm0
		if d.PrevSDBD {
			v = d.Imm1
		}
		if d.Op == 1 {
			operands(register(d.Reg0), fmt.Sprintf("#$%04X", v))
		} else {
			operands(fmt.Sprintf("#$%04X", v), register(d.Reg0))
		}
	}

	return s.String()
}
