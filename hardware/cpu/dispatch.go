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

// dispatchTables builds the tables of instruction implementations for every
// instruction format. every binding value that the decoder can produce for a
// format has an entry.
func dispatchTables() [instructions.NumFormats][]execute {
	var t [instructions.NumFormats][]execute

	t[instructions.ImpliedA] = []execute{hlt, sdbd, eis, dis}
	t[instructions.ImpliedB] = []execute{invalid, tci, clrc, setc}

	t[instructions.Jump] = make([]execute, 2)
	t[instructions.Jump][instructions.JumpSave] = jsr
	t[instructions.Jump][instructions.JumpNoSave] = j

	t[instructions.Register1] = []execute{invalid, incr, decr, comr, negr, adcr, invalid, rswd}
	t[instructions.GetStatus] = []execute{gswd}
	t[instructions.NopSin] = []execute{nop, sin}

	t[instructions.Rotate] = make([]execute, 16)
	for i := range t[instructions.Rotate] {
		t[instructions.Rotate][i] = rotate
	}

	t[instructions.Register2] = make([]execute, instructions.Register2Test+1)
	for i := range t[instructions.Register2] {
		t[instructions.Register2][i] = invalid
	}
	for op := opMVI; op <= opXOR; op++ {
		t[instructions.Register2][op] = registerToRegister
		t[instructions.Register2][op|instructions.Register2DstPC] = registerToPC
		t[instructions.Register2][op|instructions.Register2SrcPC] = pcToRegister
	}
	t[instructions.Register2][instructions.Register2Test] = registerTest

	t[instructions.Branch] = make([]execute, 32)
	for i := range t[instructions.Branch] {
		t[instructions.Branch][i] = branch
	}

	t[instructions.Direct] = make([]execute, 8)
	for i := range t[instructions.Direct] {
		t[instructions.Direct][i] = direct
	}

	// instructions decoded without a preceeding SDBD are bound to routines
	// that never read double byte data. the stack routine ignores the flag so
	// it serves both decodings
	t[instructions.Indirect] = make([]execute, 64)
	for op := range 8 {
		t[instructions.Indirect][op|instructions.IndirectPlain] = indirect
		t[instructions.Indirect][op|instructions.IndirectPlainAlt] = indirect
		t[instructions.Indirect][op|instructions.IndirectIncrement] = indirectIncrement
		t[instructions.Indirect][op|instructions.IndirectStack] = indirectStack

		nodbd := op | instructions.IndirectNoDBD
		t[instructions.Indirect][nodbd|instructions.IndirectPlain] = indirectNoDBD
		t[instructions.Indirect][nodbd|instructions.IndirectPlainAlt] = indirectNoDBD
		t[instructions.Indirect][nodbd|instructions.IndirectIncrement] = indirectIncrementNoDBD
		t[instructions.Indirect][nodbd|instructions.IndirectStack] = indirectStack
	}

	t[instructions.Immediate] = make([]execute, 16)
	for op := range 8 {
		t[instructions.Immediate][op] = immediate
		t[instructions.Immediate][op|instructions.ImmediateNoDBD] = immediateNoDBD
	}

	return t
}

// perform the decoded instruction and return the number of cycles used.
func (mc *CPU) perform(d *instructions.Decoded) int {
	if d.Extended {
		return extended(mc, d)
	}
	return mc.dispatch[d.Format][d.Binding](mc, d)
}
