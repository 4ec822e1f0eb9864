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

// Package crc implements table driven cyclic redundancy checks for arbitrary
// polynomials of up to 32 bits.
//
// Left shifting CRCs keep the accumulator left-justified in a 32 bit word and
// process data most significant bit first. Right shifting CRCs keep the
// accumulator right-justified and process data least significant bit first;
// the polynomial for a right shifting CRC is given in its reflected form.
//
// The lookup table for a polynomial is built once, when the Table is created,
// and can be shared by any number of CRC accumulators.
package crc
