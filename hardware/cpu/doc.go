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

// Package cpu emulates the CP-1610 microprocessor found in the Intellivision.
//
// The instance of the CPU type requires an implementation of bus.Memory. The
// Memory interface defines the memory operations required by the CPU. See the
// bus package for details.
//
// Instructions are decoded on first execution and the decoded instruction is
// kept in a cache indexed by address. The cache entry stays valid until the
// memory system calls Invalidate() for an address range that covers it. The
// memory system must do this on every write to an address A for the range
// A-2 to A+1: an instruction of up to three words beginning at A-2 or A-1
// may include the word at A, and the instruction at A+1 may have been decoded
// with the knowledge that the word at A was an SDBD instruction.
//
// The bread-and-butter of the CPU type is the Step() function, which executes
// a single instruction or accepts a pending interrupt. Run() calls Step()
// repeatedly until a cycle budget has been used or the CPU halts.
//
//	mc := cpu.NewCPU(nil, mem)
//	mc.Reset()
//
//	cycles, err := mc.Run(context.Background(), 1000000)
//	if err != nil {
//		return err
//	}
//
// The CPU supports the extended instruction set of the Locutus cartridge. The
// extended instruction set is activated with SetExtendedISA().
//
// The CPU is not safe for concurrent use.
package cpu
