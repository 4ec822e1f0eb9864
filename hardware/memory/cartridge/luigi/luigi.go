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
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/locutus"
	"github.com/jetsetilly/locutus/logger"
)

// Error patterns.
const (
	DataTooShort      = "luigi: data too short"
	InvalidMagic      = "luigi: invalid magic number"
	HeaderCRCMismatch = "luigi: header crc mismatch (%.2X vs. %.2X)"
	BlockTooShort     = "luigi: block %d: too little for header"
	BlockCRCMismatch  = "luigi: block %d: header crc mismatch (%.2X vs. %.2X)"
	PayloadTruncated  = "luigi: block %d: payload truncated"
	PayloadMismatch   = "luigi: block %d: payload crc mismatch (%.8X vs. %.8X)"
	UnknownBlock      = "luigi: block %d: unknown block type %02X"
	ScramblerTooShort = "luigi: scrambler data too short"
	MemMapSize        = "luigi: memory map: wrong size (%d bytes)"
	MemMapRange       = "luigi: memory map: %s entry %d out of range (%#x)"
	DataHunk          = "luigi: data hunk: %v"
	Metadata          = "luigi: metadata: %v"
)

// the magic number at the start of every LUIGI file
var magic = [3]byte{'L', 'T', 'O'}

// the size of the header for each version of the format
const (
	headerLenV0 = 16
	headerLenV1 = 32
)

// the most recent version of the format
const version = 1

// Header is the fixed length header at the start of a LUIGI file.
type Header struct {
	Version  int
	Features locutus.FeatureFlags

	// the UID is zero for version 0 files
	UID uint64
}

// Identify returns the header of the LUIGI data without decoding any
// blocks.
func Identify(data []byte) (Header, error) {
	h, _, err := decodeHeader(data)
	return h, err
}

func decodeHeader(data []byte) (Header, int, error) {
	var h Header

	if len(data) < headerLenV0 {
		return h, 0, curated.Errorf(DataTooShort)
	}

	if data[0] != magic[0] || data[1] != magic[1] || data[2] != magic[2] || data[3] > version {
		return h, 0, curated.Errorf(InvalidMagic)
	}

	h.Version = int(data[3])

	var l int
	switch h.Version {
	case 0:
		l = headerLenV0
		h.Features[0] = binary.LittleEndian.Uint64(data[4:12])
	default:
		l = headerLenV1
		if len(data) < l {
			return h, 0, curated.Errorf(DataTooShort)
		}
		h.Features[0] = binary.LittleEndian.Uint64(data[4:12])
		h.Features[1] = binary.LittleEndian.Uint64(data[12:20])
		h.UID = binary.LittleEndian.Uint64(data[20:28])
	}

	want := crc.DOWCRC.Checksum(data[:l-1], 0, false)
	if got := uint32(data[l-1]); got != want {
		return h, 0, curated.Errorf(HeaderCRCMismatch, got, want)
	}

	return h, l, nil
}

func encodeHeader(features locutus.FeatureFlags, uid uint64) []byte {
	h := make([]byte, headerLenV1)
	copy(h, magic[:])
	h[3] = version
	binary.LittleEndian.PutUint64(h[4:12], features[0])
	binary.LittleEndian.PutUint64(h[12:20], features[1])
	binary.LittleEndian.PutUint64(h[20:28], uid)
	h[headerLenV1-1] = byte(crc.DOWCRC.Checksum(h[:headerLenV1-1], 0, false))
	return h
}

// Deserialize decodes the LUIGI data into the cartridge. The cartridge
// should be newly created.
//
// A scrambled image is not an error: the scrambling key is recorded in the
// cartridge and decoding stops. The caller should check the Scrambled()
// function of the cartridge.
func Deserialize(cart *locutus.Locutus, data []byte) error {
	h, l, err := decodeHeader(data)
	if err != nil {
		return err
	}

	cart.SetFeatureFlags(h.Features)
	cart.UID = h.UID

	logger.Logf(logger.Allow, "luigi", "version %d: uid %016X: flags %s", h.Version, h.UID, h.Features)

	data = data[l:]
	for n := 0; len(data) > 0; n++ {
		b, rest, err := decodeBlock(n, data)
		if err != nil {
			return err
		}
		data = rest

		switch b.typ {
		case blockEOF:
			return nil

		case blockScramble:
			if len(b.payload) < 16 {
				return curated.Errorf(ScramblerTooShort)
			}
			cart.SetScrambled(b.payload[:16])
			logger.Logf(logger.Allow, "luigi", "scrambled (DRUID %s)", cart.DRUID())
			return nil

		case blockMemMap:
			if err := decodeMemMap(cart, b.payload); err != nil {
				return err
			}

		case blockDataHunk:
			if err := decodeHunk(cart, b.payload); err != nil {
				return curated.Errorf(DataHunk, err)
			}

		case blockMetadata:
			if err := cart.Metadata().Deserialize(b.payload); err != nil {
				return curated.Errorf(Metadata, err)
			}

		default:
			return curated.Errorf(UnknownBlock, n, b.typ)
		}
	}

	return nil
}

// the maximum number of words in a single data hunk
const maxHunkWords = 8192

// Serialize encodes the cartridge as LUIGI data. The scrambling key of a
// scrambled image is not preserved.
func Serialize(cart *locutus.Locutus) []byte {
	data := encodeHeader(cart.FeatureFlags(), cart.UID)

	if !cart.Metadata().Empty() {
		data = encodeBlock(data, blockMetadata, cart.Metadata().Serialize())
	}

	data = encodeBlock(data, blockMemMap, encodeMemMap(cart))

	for _, s := range cart.InitializedSpans() {
		for lo := s.Lo; lo <= s.Hi; lo += maxHunkWords {
			hi := min(lo+maxHunkWords-1, s.Hi)
			words := make([]uint16, 0, hi-lo+1)
			for a := lo; a <= hi; a++ {
				words = append(words, cart.ReadRAM(a))
			}
			data = encodeBlock(data, blockDataHunk, encodeHunk(lo, words))
		}
	}

	return append(data, blockEOF)
}
