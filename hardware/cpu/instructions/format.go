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
	"math/bits"
)

// Format of an instruction. The format decides the length of the instruction
// and how the operand fields are laid out.
type Format int

// List of valid Format values.
const (
	ImpliedA Format = iota
	ImpliedB
	Jump
	Register1
	GetStatus
	NopSin
	Rotate
	Register2
	Branch
	Direct
	Indirect
	Immediate

	NumFormats
)

func (f Format) String() string {
	switch f {
	case ImpliedA:
		return "implied 1-op (a)"
	case ImpliedB:
		return "implied 1-op (b)"
	case Jump:
		return "jump"
	case Register1:
		return "register 1-op"
	case GetStatus:
		return "gswd"
	case NopSin:
		return "nop/sin"
	case Rotate:
		return "rotate/shift 1-op"
	case Register2:
		return "register 2-op"
	case Branch:
		return "conditional branch"
	case Direct:
		return "direct 2-op"
	case Indirect:
		return "indirect 2-op"
	case Immediate:
		return "immediate 2-op"
	}
	return "unknown format"
}

// Length returns the number of words in an instruction of the format. The
// length of an immediate instruction is one word longer if the instruction
// follows an SDBD instruction.
func (f Format) Length(prevSDBD bool) int {
	switch f {
	case Jump:
		return 3
	case Branch, Direct:
		return 2
	case Immediate:
		if prevSDBD {
			return 3
		}
		return 2
	}
	return 1
}

// pattern describes a set of opcodes by their ten bit value. the pattern is
// written most significant bit first. the letter x means that the bit can be
// either value
type pattern struct {
	bits   string
	format Format
}

// the order of the list is unimportant. more specific patterns (fewer x
// characters) take priority over less specific patterns
var patterns = []pattern{
	{bits: "00000000xx", format: ImpliedA},
	{bits: "0000000100", format: Jump},
	{bits: "00000001xx", format: ImpliedB},
	{bits: "0000xxxxxx", format: Register1},
	{bits: "00001100xx", format: GetStatus},
	{bits: "00001101xx", format: NopSin},
	{bits: "0001xxxxxx", format: Rotate},
	{bits: "001xxxxxxx", format: Register2},
	{bits: "01xxxxxxxx", format: Register2},
	{bits: "1000xxxxxx", format: Branch},
	{bits: "1001xxxxxx", format: Indirect},
	{bits: "101xxxxxxx", format: Indirect},
	{bits: "11xxxxxxxx", format: Indirect},
	{bits: "1001000xxx", format: Direct},
	{bits: "101x000xxx", format: Direct},
	{bits: "11xx000xxx", format: Direct},
	{bits: "1001111xxx", format: Immediate},
	{bits: "101x111xxx", format: Immediate},
	{bits: "11xx111xxx", format: Immediate},
}

// compile a pattern into a mask and value pair. the number of x characters is
// returned as the third value
func (p pattern) compile() (uint16, uint16, int) {
	if len(p.bits) != 10 {
		panic(fmt.Sprintf("instructions: pattern %q is not ten bits", p.bits))
	}

	var mask, value uint16
	var dontCare int
	for _, c := range p.bits {
		mask <<= 1
		value <<= 1
		switch c {
		case '0':
			mask |= 1
		case '1':
			mask |= 1
			value |= 1
		case 'x':
			dontCare++
		default:
			panic(fmt.Sprintf("instructions: pattern %q has illegal character %q", p.bits, c))
		}
	}

	if dontCare != 10-bits.OnesCount16(mask) {
		panic("instructions: pattern compilation is inconsistent")
	}

	return mask, value, dontCare
}

// formats maps every ten bit opcode to its format
var formats [1024]Format

func init() {
	formats = buildTable(patterns)
}

// buildTable classifies every ten bit opcode. it panics if an opcode is not
// covered by any pattern or is claimed by two different formats with the same
// specificity.
func buildTable(list []pattern) [1024]Format {
	type compiled struct {
		mask     uint16
		value    uint16
		dontCare int
		format   Format
	}

	c := make([]compiled, 0, len(list))
	for _, p := range list {
		m, v, d := p.compile()
		c = append(c, compiled{mask: m, value: v, dontCare: d, format: p.format})
	}

	var tbl [1024]Format
	for op := range uint16(1024) {
		best := -1
		bestDontCare := 11
		for i, p := range c {
			if op&p.mask != p.value {
				continue
			}
			if p.dontCare < bestDontCare {
				best = i
				bestDontCare = p.dontCare
			} else if p.dontCare == bestDontCare && p.format != c[best].format {
				panic(fmt.Sprintf("instructions: opcode %03x is ambiguous (%s or %s)", op, p.format, c[best].format))
			}
		}
		if best == -1 {
			panic(fmt.Sprintf("instructions: opcode %03x is not covered by any format", op))
		}
		tbl[op] = c[best].format
	}

	return tbl
}

// Classify returns the format of the instruction beginning with word.
func Classify(word uint16) Format {
	return formats[word&0x03ff]
}
