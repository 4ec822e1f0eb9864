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

// SDBD is the encoding of the SDBD prefix instruction.
const SDBD = uint16(0x0001)

// Binding values for the Jump format.
const (
	JumpSave   = 0
	JumpNoSave = 1
)

// Binding modifiers for the Register2 format. The lower three bits of the
// binding are the operation.
const (
	Register2DstPC = 8
	Register2SrcPC = 16

	// Register2Test is the binding for MOVR instructions where the source and
	// destination registers are the same
	Register2Test = 32
)

// Binding modifiers for the Indirect format. The lower three bits of the
// binding are the operation and the next two bits are the pointer register
// group.
const (
	IndirectPlain     = 0
	IndirectPlainAlt  = 8
	IndirectIncrement = 16
	IndirectStack     = 24
	IndirectNoDBD     = 32
)

// Binding modifier for the Immediate format.
const ImmediateNoDBD = 8

// Decoded is a decoded instruction. Fields that have no meaning for the
// instruction's format are left at zero.
type Decoded struct {
	Address uint16
	Words   [3]uint16
	Length  int
	Format  Format

	// the raw operation field for formats that have one
	Op int

	// index into the dispatch table of the format
	Binding int

	// the normalised operands
	Imm0  uint16
	Imm1  uint16
	Reg0  int
	Reg1  int
	XReg0 int
	AMode int

	// the instruction was preceeded by an SDBD instruction
	PrevSDBD bool

	// the instruction is from the extended instruction set
	Extended bool

	// the instruction was decoded from the word 0xffff
	Weeds bool
}

// InTheWeeds returns true if the word cannot be the first word of an
// instruction. When the extended instruction set is not active any word with
// a value in the upper six bits is invalid. When the extended instruction set
// is active only the value 0xffff is invalid.
func InTheWeeds(word uint16, extendedISA bool) bool {
	if extendedISA {
		return word == 0xffff
	}
	return word&0xfc00 != 0
}

// Decode the instruction at address. The words array must contain at least
// the number of words indicated by the Length() function of the Format
// returned by Classify(). Unused words are ignored.
func Decode(address uint16, words [3]uint16, prevSDBD bool, extendedISA bool) *Decoded {
	w := words[0]
	d := &Decoded{
		Address:  address,
		Format:   Classify(w),
		PrevSDBD: prevSDBD,
		Weeds:    w == 0xffff,
	}
	d.Length = d.Format.Length(prevSDBD)
	copy(d.Words[:d.Length], words[:d.Length])

	switch d.Format {
	case ImpliedA, ImpliedB:
		d.Op = int(w & 0x03)
		d.Binding = d.Op

	case Jump:
		w1 := words[1]
		w2 := words[2]
		d.Imm0 = (w1>>2)&0x3f<<10 | w2&0x3ff
		d.Imm1 = w1 & 0x03
		d.Reg0 = int((w1>>8)&0x03) + 4
		if d.Reg0 == 7 {
			d.Binding = JumpNoSave
		} else {
			d.Binding = JumpSave
		}

	case Register1:
		d.Op = int((w >> 3) & 0x07)
		d.Reg0 = int(w & 0x07)
		d.Binding = d.Op

	case GetStatus:
		d.Reg0 = int(w & 0x03)

	case NopSin:
		d.Imm0 = w & 0x01
		d.Op = int((w >> 1) & 0x01)
		d.Binding = d.Op

	case Rotate:
		d.Op = int((w >> 2) & 0x0f)
		d.Reg0 = int(w & 0x03)
		d.Binding = d.Op

	case Register2:
		d.Op = int((w >> 6) & 0x07)
		d.Reg0 = int((w >> 3) & 0x07)
		d.Reg1 = int(w & 0x07)
		d.Binding = d.Op
		if d.Reg0 == 7 {
			d.Binding |= Register2SrcPC
		} else if d.Reg1 == 7 {
			d.Binding |= Register2DstPC
		}
		if d.Reg0 == d.Reg1 && d.Binding == 2 {
			d.Binding = Register2Test
		}

	case Branch:
		cond := int(w & 0x1f)
		disp := words[1]
		if w&0x20 == 0x20 {
			disp = ^disp
		}
		d.Op = cond
		d.Binding = cond
		d.Imm0 = disp + address + 2
		d.Imm1 = uint16(cond & 0x0f)

	case Direct:
		d.Op = int((w >> 6) & 0x07)
		d.Binding = d.Op
		d.Reg0 = int(w & 0x07)
		d.Imm0 = words[1]
		d.Imm1 = uint16(d.Op)
		d.XReg0 = int((w >> 10) & 0x07)
		d.AMode = int((w >> 13) & 0x03)

	case Indirect:
		d.Op = int((w >> 6) & 0x07)
		d.Reg0 = int((w >> 3) & 0x07)
		d.Reg1 = int(w & 0x07)
		d.Binding = d.Op | (d.Reg0&0x06)<<2
		if !prevSDBD {
			d.Binding |= IndirectNoDBD
		}
		ext := int(w>>10) & 0x3f
		if d.Op == 1 && ext <= 3 {
			d.AMode = ext
		}

	case Immediate:
		d.Op = int((w >> 6) & 0x07)
		d.Reg0 = int(w & 0x07)
		d.Binding = d.Op
		if !prevSDBD {
			d.Binding |= ImmediateNoDBD
		}
		d.Imm0 = words[1]
		if prevSDBD {
			d.Imm1 = (words[2]&0xff)<<8 | d.Imm0&0xff
		} else {
			d.Imm1 = d.Imm0 & 0xff
		}

		ext := int(w>>10) & 0x3f
		if extendedISA && !d.Weeds && d.Op == 1 && ext > 0 {
			d.Extended = true
			d.AMode = ext
			d.Reg1 = int(d.Imm0>>4) & 0x0f
			d.Imm1 = (d.Imm0 >> 4) & 0x0f
			if ext&0x02 == 0x02 {
				d.Imm1 ^= 0xffff
			}
			d.XReg0 = int(d.Imm0 & 0x0f)
			if ext&0x18 == 0x18 {
				d.Reg0 |= 0x08
			}
		}

		if d.Weeds {
			d.AMode = 1
		}
	}

	return d
}

// IsInterruptible returns false if an interrupt cannot be taken immediately
// after the instruction.
func (d *Decoded) IsInterruptible() bool {
	switch d.Format {
	case ImpliedA, ImpliedB, GetStatus, Rotate:
		return false
	case Register1:
		return d.Op != 7
	case Direct, Indirect, Immediate:
		return d.Op != 1 && !d.Extended
	}
	return true
}
