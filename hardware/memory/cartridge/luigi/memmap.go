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

package luigi

import (
	"encoding/binary"

	"github.com/jetsetilly/locutus/curated"
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/locutus"
)

// the memory map block is the reset copy of the memory map, the reset copy
// of the paragraph permissions and the page flip table
//
//	256 x 16 bit    memory map entries
//	256 x 8 bit     paragraph permissions
//	16 x 16 x 16 bit page flip entries. the upper 12 bits are the 256 word
//	                block of the store and the lower 4 bits are the permissions
const (
	memMapEntries = locutus.NumParagraphs * 2
	memPermBytes  = locutus.NumParagraphs
	pageFlipBytes = locutus.NumChapters * locutus.NumPages * 2
	memMapLen     = memMapEntries + memPermBytes + pageFlipBytes
)

// the limit for memory map entries
const memMapLimit = 0x800

func decodeMemMap(cart *locutus.Locutus, data []byte) error {
	if len(data) != memMapLen {
		return curated.Errorf(MemMapSize, len(data))
	}

	maps := data[:memMapEntries]
	perms := data[memMapEntries : memMapEntries+memPermBytes]
	flips := data[memMapEntries+memPermBytes:]

	for p := range locutus.NumParagraphs {
		m := binary.LittleEndian.Uint16(maps[p*2:])
		if m >= memMapLimit {
			return curated.Errorf(MemMapRange, "map", p, m)
		}
		if perms[p]&0xf0 != 0 {
			return curated.Errorf(MemMapRange, "permission", p, perms[p])
		}

		para := uint8(p)
		cart.SetMemMap(para, false, m)
		cart.SetMemMap(para, true, m)
		cart.SetMemPerm(para, false, locutus.Perm(perms[p]))
		cart.SetMemPerm(para, true, locutus.Perm(perms[p]))
	}

	for i := range locutus.NumChapters * locutus.NumPages {
		w := binary.LittleEndian.Uint16(flips[i*2:])
		m := w >> 4
		if m >= memMapLimit {
			return curated.Errorf(MemMapRange, "page flip", i, m)
		}
		cart.SetPageFlip(uint8(i/locutus.NumPages), uint8(i%locutus.NumPages), m, locutus.Perm(w&0xf))
	}

	return nil
}

func encodeMemMap(cart *locutus.Locutus) []byte {
	data := make([]byte, 0, memMapLen)

	for p := range locutus.NumParagraphs {
		data = binary.LittleEndian.AppendUint16(data, cart.MemMap(uint8(p), true))
	}
	for p := range locutus.NumParagraphs {
		data = append(data, byte(cart.MemPerm(uint8(p), true)))
	}
	for c := range locutus.NumChapters {
		for p := range locutus.NumPages {
			m := cart.PageFlipMap(uint8(c), uint8(p))
			perm := cart.PageFlipPerm(uint8(c), uint8(p))
			data = binary.LittleEndian.AppendUint16(data, (m<<4)&0xfff0|uint16(perm)&0xf)
		}
	}

	return data
}
