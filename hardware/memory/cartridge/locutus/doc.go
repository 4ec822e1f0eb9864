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

// Package locutus models the Locutus cartridge (better known as LTO Flash!)
// and serves as a container for any Locutus compatible cartridge image.
//
// Locutus presents a 512K word store to the Intellivision through a memory
// map. The 16-bit address space is divided into 256 paragraphs of 256 words.
// Each paragraph has an entry in the memory map, which selects the 256 word
// block of the store that the paragraph addresses, and a set of permissions.
// There are two copies of the memory map and permissions: the active copy,
// which is used for every access, and the reset copy, which is copied into
// the active copy when the cartridge is reset.
//
// Bank switching is supported in two ways. Intellicart style bank switching
// is controlled by writes to $0040 - $005F and remaps a 2K half-chapter of
// the address space. ECS style page flipping is controlled by writing a
// magic value to the last address of a 4K chapter, which selects one of
// sixteen pages for the chapter from the page flip table.
//
// The JLP accelerator is an optional feature of the cartridge. When enabled
// it provides multiply and divide units, a CRC-16 accumulator, a random
// number generator and 8K words of RAM at $8040 - $9F7F. A savegame facility
// stores rows of JLP RAM in flash memory, which can optionally be backed by a
// file on disk.
//
// Invalid accesses never fail. Reads of unmapped or read-protected addresses
// return bus.Unmapped and writes to protected addresses are ignored. The only
// exception is access to the store itself with ReadRAM() and WriteRAM(),
// which panic if the address is outside of the store.
package locutus
