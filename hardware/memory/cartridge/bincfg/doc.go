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

// Package bincfg converts between the BIN+CFG cartridge format and the
// Locutus cartridge.
//
// A BIN file is a sequence of big-endian 16 bit words. The CFG file that
// accompanies it describes where the words of the BIN file are placed in the
// Intellivision address space and how that memory behaves. A BIN file with no
// CFG file uses the default Mattel mapping.
//
// The CFG file is divided into sections. The sections that affect the
// cartridge are:
//
//	[mapping]       $0000 - $0FFF = $5000 [PAGE n] [ROM|RAM|WOM width]
//	[preload]       $0000 - $0FFF = $5000
//	[memattr]       $5000 - $50FF = [PAGE n] ROM|RAM|WOM width
//	[bankswitch]    $5000 - $5FFF
//	[ecsbank]       n : $0000 - $0FFF = $5000
//	[vars]          name = value
//
// Comments begin with a semicolon and run to the end of the line. Macros and
// the sections used only by the emulator's user interface are ignored.
//
// Import() builds a cartridge from BIN and CFG data and Export() does the
// reverse. Neither function stops at the first problem. Problems are
// collected in a Report, which distinguishes errors from warnings.
package bincfg
