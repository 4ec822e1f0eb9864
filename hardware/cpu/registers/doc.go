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

// Package registers implements the register file of the CP-1610.
//
// There are eight general purpose registers of sixteen bits. R6 doubles as the
// stack pointer and R7 is the program counter. The status flags are held in
// the Status type.
//
// The Locutus cartridge adds sixteen extended registers, which are visible to
// the extended instruction set and are also aliased into cartridge memory.
package registers
