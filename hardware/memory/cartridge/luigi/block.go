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

	"github.com/jetsetilly/locutus/crc"
	"github.com/jetsetilly/locutus/curated"
)

// block types
const (
	blockScramble = 0x00
	blockMemMap   = 0x01
	blockDataHunk = 0x02
	blockMetadata = 0x03
	blockEOF      = 0xff
)

// the length of the block header. the type, the length and the header CRC
const blockHeaderLen = 4

// the length of the payload CRC that follows the header of a non-empty block
const payloadCRCLen = 4

type block struct {
	typ     byte
	payload []byte
}

// decodeBlock returns the block at the start of the data and the data that
// follows the block. Everything after an EOF block is ignored.
func decodeBlock(n int, data []byte) (block, []byte, error) {
	if data[0] == blockEOF {
		return block{typ: blockEOF}, nil, nil
	}

	if len(data) < blockHeaderLen {
		return block{}, nil, curated.Errorf(BlockTooShort, n)
	}

	want := crc.DOWCRC.Checksum(data[:3], 0, false)
	if got := uint32(data[3]); got != want {
		return block{}, nil, curated.Errorf(BlockCRCMismatch, n, got, want)
	}

	b := block{typ: data[0]}
	l := int(binary.LittleEndian.Uint16(data[1:3]))
	data = data[blockHeaderLen:]

	if l == 0 {
		return b, data, nil
	}

	if len(data) < l+payloadCRCLen {
		return block{}, nil, curated.Errorf(PayloadTruncated, n)
	}

	b.payload = data[payloadCRCLen : payloadCRCLen+l]

	// the payload of the scramble block is not protected
	if b.typ != blockScramble {
		want := crc.Castagnoli.Checksum(b.payload, 0, false)
		if got := binary.LittleEndian.Uint32(data[:payloadCRCLen]); got != want {
			return block{}, nil, curated.Errorf(PayloadMismatch, n, got, want)
		}
	}

	return b, data[payloadCRCLen+l:], nil
}

// encodeBlock appends the block to the data.
func encodeBlock(data []byte, typ byte, payload []byte) []byte {
	if len(payload) > 0xffff {
		panic("luigi: block payload too large")
	}

	hdr := []byte{typ, byte(len(payload)), byte(len(payload) >> 8), 0}
	hdr[3] = byte(crc.DOWCRC.Checksum(hdr[:3], 0, false))
	data = append(data, hdr...)

	if len(payload) == 0 {
		return data
	}

	data = binary.LittleEndian.AppendUint32(data, crc.Castagnoli.Checksum(payload, 0, false))
	return append(data, payload...)
}
