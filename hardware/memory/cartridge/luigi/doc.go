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

// Package luigi reads and writes the LUIGI file format, the native format of
// the Locutus cartridge.
//
// A LUIGI file is a header followed by a sequence of blocks. The header
// carries the feature flags and a unique identifier for the image. Each
// block carries a type, a length and a CRC of the block header; the payload
// of a non-empty block is protected by a second CRC.
//
// Blocks describe the memory map and page flip tables of the cartridge, the
// contents of the store and the descriptive metadata. The contents of the
// store are run-length encoded in data hunks, with runs of 8, 10 and 16 bit
// words. A scrambled image carries a scramble block, which contains the key
// needed to descramble the remainder of the file. Scrambled images can be
// identified but not loaded.
//
// Serialize() always writes version 1 of the format. Deserialize() accepts
// versions 0 and 1.
package luigi
