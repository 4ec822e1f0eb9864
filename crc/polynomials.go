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

package crc

// Named tables for the polynomials used in the emulation.
var (
	// the CRC-32 used by zip and most file checksums. use with an initial
	// value of 0xffffffff and an inverted result
	Zip = NewTable(0xedb88320, 32, Right)

	// the CRC-16 used by the Intellicart
	ICart = NewTable(0x1021, 16, Left)

	// the CRC-16 implemented by the JLP accelerator
	JLP16 = NewTable(0xad52, 16, Right)

	// Castagnoli CRC-32C. used to protect LUIGI block payloads
	Castagnoli = NewTable(0x82f63b78, 32, Right)

	// the 8 bit CRC (DOWCRC) used to protect LUIGI headers
	DOWCRC = NewTable(0x98, 8, Right)
)

// ZipChecksum returns the standard CRC-32 of the data.
func ZipChecksum(data []byte) uint32 {
	return Zip.Checksum(data, 0xffffffff, true)
}
