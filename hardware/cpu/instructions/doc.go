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

// Package instructions classifies and decodes CP-1610 opcodes.
//
// The low ten bits of the first word of every instruction select one of twelve
// instruction formats. The classification table is built when the package is
// initialised from a short list of bit patterns. More specific patterns take
// priority over less specific ones and the construction panics if the pattern
// list leaves a gap in the opcode space or if two patterns of equal
// specificity claim the same opcode.
//
// Decode() extracts the operand fields of an instruction into a Decoded
// record. The record also carries a Binding value, which is an index into the
// dispatch table for the instruction's format. The cpu package uses the format
// and binding to select the execution routine for the instruction.
//
// The SDBD prefix alters decoding. An immediate mode instruction that follows
// an SDBD instruction is one word longer than normal. Immediate and indirect
// instructions that do not follow an SDBD are bound to execution routines that
// never need to consider double byte data.
package instructions
