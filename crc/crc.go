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

import "fmt"

// Direction of a CRC computation.
type Direction int

// List of valid Direction values.
const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown direction"
}

// Table is the lookup table for a polynomial, field width and direction.
type Table struct {
	poly  uint32
	width uint
	dir   Direction
	lu    [256]uint32
}

// NewTable is the preferred method of initialisation for the Table type. The
// width is the width of the CRC field in bits and must be between 1 and 32.
func NewTable(poly uint32, width int, dir Direction) *Table {
	if width < 1 || width > 32 {
		panic(fmt.Sprintf("crc: unsupported field width (%d)", width))
	}

	tab := &Table{
		poly:  poly,
		width: uint(width),
		dir:   dir,
	}

	switch dir {
	case Left:
		p := poly << (32 - tab.width)
		for i := range tab.lu {
			v := uint32(i) << 24
			for range 8 {
				if v&0x80000000 != 0 {
					v = (v << 1) ^ p
				} else {
					v <<= 1
				}
			}
			tab.lu[i] = v
		}
	case Right:
		for i := range tab.lu {
			v := uint32(i)
			for range 8 {
				if v&1 != 0 {
					v = (v >> 1) ^ poly
				} else {
					v >>= 1
				}
			}
			tab.lu[i] = v
		}
	default:
		panic(fmt.Sprintf("crc: unsupported direction (%d)", dir))
	}

	return tab
}

func (tab *Table) String() string {
	return fmt.Sprintf("poly=%#x width=%d dir=%s", tab.poly, tab.width, tab.dir)
}

// New returns a CRC accumulator for the table, initialised with the value.
func (tab *Table) New(init uint32) *CRC {
	c := &CRC{tab: tab}
	c.Set(init)
	return c
}

// Checksum is a convenience function that returns the CRC of the data with
// the initial value and, optionally, an inverted result.
func (tab *Table) Checksum(data []byte, init uint32, invert bool) uint32 {
	c := tab.New(init)
	c.Block(data)
	if invert {
		c.Invert()
	}
	return c.Get()
}

// CRC is an accumulator for a cyclic redundancy check.
type CRC struct {
	tab *Table
	val uint32
}

// Update folds the lower bits of data into the CRC. The default number of
// bits used by the historical interface is eight, but any number between 1
// and 32 is accepted.
func (c *CRC) Update(data uint32, bits int) {
	switch c.tab.dir {
	case Left:
		c.val ^= data << (32 - bits)
		for ; bits >= 8; bits -= 8 {
			c.val = (c.val << 8) ^ c.tab.lu[c.val>>24]
		}
		p := c.tab.poly << (32 - c.tab.width)
		for range bits {
			x := c.val&0x80000000 != 0
			c.val <<= 1
			if x {
				c.val ^= p
			}
		}
	case Right:
		c.val ^= data
		for ; bits >= 8; bits -= 8 {
			c.val = (c.val >> 8) ^ c.tab.lu[c.val&0xff]
		}
		for range bits {
			x := c.val&1 != 0
			c.val >>= 1
			if x {
				c.val ^= c.tab.poly
			}
		}
	}
}

// Block folds a sequence of bytes into the CRC.
func (c *CRC) Block(data []byte) {
	switch c.tab.dir {
	case Left:
		for _, b := range data {
			c.val = (c.val << 8) ^ c.tab.lu[byte(c.val>>24)^b]
		}
	case Right:
		for _, b := range data {
			c.val = (c.val >> 8) ^ c.tab.lu[byte(c.val)^b]
		}
	}
}

// Words folds a sequence of 16 bit words into the CRC.
func (c *CRC) Words(data []uint16) {
	for _, w := range data {
		c.Update(uint32(w), 16)
	}
}

// Set the CRC to a new value.
func (c *CRC) Set(v uint32) {
	if c.tab.dir == Left {
		c.val = v << (32 - c.tab.width)
	} else {
		c.val = v
	}
}

// Get the current CRC value.
func (c *CRC) Get() uint32 {
	if c.tab.dir == Left {
		return c.val >> (32 - c.tab.width)
	}
	return c.val
}

// Invert all bits in the CRC field.
func (c *CRC) Invert() {
	if c.tab.dir == Left {
		c.val ^= ^uint32(0) << (32 - c.tab.width)
	} else {
		c.val ^= ^uint32(0) >> (32 - c.tab.width)
	}
}
