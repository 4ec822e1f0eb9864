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

package bincfg

import (
	"encoding/binary"

	"golang.org/x/exp/slices"
)

// MaxBIN is the maximum number of words read from a BIN file.
const MaxBIN = 1 << 20

// DecodeBIN returns the words in the BIN data. A trailing odd byte is
// ignored.
func DecodeBIN(data []byte) []uint16 {
	n := min(len(data)/2, MaxBIN)
	words := make([]uint16, n)
	for i := range words {
		words[i] = binary.BigEndian.Uint16(data[i*2:])
	}
	return words
}

// EncodeBIN returns the words as BIN data.
func EncodeBIN(words []uint16) []byte {
	data := make([]byte, 0, len(words)*2)
	for _, w := range words {
		data = binary.BigEndian.AppendUint16(data, w)
	}
	return data
}

// AttachData attaches BIN data to the preloaded spans of the configuration.
// Spans that reach beyond the end of the BIN data are adjusted:
//
//	read-only, entirely beyond the end  span is removed
//	read-only, partially beyond the end span is trimmed
//	writable, entirely beyond the end   span is no longer preloaded
//	writable, partially beyond the end  span is split and the part beyond the
//	                                    end is not preloaded
func (cfg *Config) AttachData(bin []uint16) {
	l := uint32(len(bin))

	spans := make([]*Span, 0, len(cfg.Spans))

	for _, s := range cfg.Spans {
		if s.Data != nil || s.Flags&FlagPreload == 0 {
			spans = append(spans, s)
			continue
		}

		writable := s.Flags&FlagWrite == FlagWrite

		if s.FileStart >= l {
			if writable {
				s.Flags &^= FlagPreload
				spans = append(spans, s)
			}
			continue
		}

		var part *Span

		if s.FileEnd >= l {
			if writable {
				part = &Span{
					Start: s.Start + l - s.FileStart,
					End:   s.End,
					Flags: s.Flags &^ FlagPreload,
					Width: s.Width,
					Page:  s.Page,
				}
			}
			s.FileEnd = l - 1
		}

		s.End = s.Start + s.FileEnd - s.FileStart
		s.Data = slices.Clone(bin[s.FileStart : s.FileEnd+1])
		spans = append(spans, s)

		if part != nil {
			spans = append(spans, part)
		}
	}

	cfg.Spans = spans
}
