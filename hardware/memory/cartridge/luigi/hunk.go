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
	"fmt"

	"github.com/jetsetilly/locutus/curated"
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/locutus"
	"golang.org/x/exp/slices"
)

// Error patterns.
const (
	HunkTooShort   = "too short (%d bytes)"
	HunkAddress    = "address out of range (%#x)"
	HunkOverflow   = "hunk at %#x overflows the store"
	HunkTruncated  = "run at offset %d truncated"
	HunkUnexpected = "Unexpected byte %02X at offset %d"
)

// a data hunk is a 24 bit store address followed by a sequence of runs. each
// run begins with a tag byte, which gives the type and length of the run
//
//	$01 - $3F   8 bit run. n-1 bytes followed by a 16 bit word
//	$40 - $BF   10 bit run. n-1 bytes, each group of four preceded by a byte
//	            with the upper two bits of each value, followed by a 16 bit
//	            word
//	$C0 - $FD   16 bit run. n 16 bit words
//
// the final word of 8 and 10 bit runs is always a full word
const (
	tagBase8  = 0x00
	tagBase10 = 0x3f
	tagBase16 = 0xbf

	maxRun8  = 0x3f
	maxRun10 = 0x80
	maxRun16 = 0x3e
)

type runWidth int

const (
	run8  runWidth = 8
	run10 runWidth = 10
	run16 runWidth = 16
)

func widthOf(w uint16) runWidth {
	switch {
	case w < 0x100:
		return run8
	case w < 0x400:
		return run10
	}
	return run16
}

// the encoded length of a run of n words, including the tag bytes needed if
// the run must be split
func estimate(width runWidth, n int) int {
	switch width {
	case run8:
		return n + 2*(1+n/maxRun8)
	case run10:
		return ((n + 2) >> 2) + n + 2*(1+n/maxRun10)
	}
	return 2*n + (1 + n/maxRun16)
}

func maxRun(width runWidth) int {
	switch width {
	case run8:
		return maxRun8
	case run10:
		return maxRun10
	}
	return maxRun16
}

type run struct {
	width runWidth
	n     int
}

// plan returns the sequence of runs used to encode the data.
func plan(data []uint16) []run {
	if len(data) == 0 {
		return nil
	}

	// a word wider than the current run ends the run. the final word of an
	// 8 or 10 bit run is a full word so the wider word can be absorbed
	var runs []run
	cur := run{width: widthOf(data[0])}
	for _, d := range data {
		w := widthOf(d)
		switch {
		case w == cur.width:
			cur.n++
		case w > cur.width:
			cur.n++
			runs = append(runs, cur)
			cur = run{width: w}
		default:
			if cur.n > 0 {
				runs = append(runs, cur)
			}
			cur = run{width: w, n: 1}
		}
	}
	if cur.n > 0 {
		runs = append(runs, cur)
	}

	// merge neighbouring runs while doing so makes the encoding no longer
	for changed := true; changed && len(runs) > 1; {
		changed = false

		// the index into data of the first word of the current run
		pos := runs[0].n

		prev := 0
		for curr := 1; curr < len(runs); {
			p := &runs[prev]
			c := runs[curr]
			last := widthOf(data[pos-1])
			sep := estimate(p.width, p.n) + estimate(c.width, c.n)

			if p.width >= c.width && last <= p.width && sep >= estimate(p.width, p.n+c.n) {
				p.n += c.n
			} else if p.width <= c.width && last <= c.width && sep > estimate(c.width, p.n+c.n) {
				p.width = c.width
				p.n += c.n
			} else {
				pos += c.n
				prev = curr
				curr++
				continue
			}

			pos += c.n
			runs = slices.Delete(runs, curr, curr+1)
			changed = true
		}
	}

	// split runs that are too long to be encoded by a single tag
	var split []run
	for _, r := range runs {
		m := maxRun(r.width)
		for r.n > m {
			split = append(split, run{width: r.width, n: m})
			r.n -= m
		}
		split = append(split, r)
	}

	return split
}

// encodeHunk returns the payload of a data hunk block for the data at the
// store address.
func encodeHunk(addr uint32, data []uint16) []byte {
	enc := []byte{byte(addr), byte(addr >> 8), byte(addr >> 16)}

	for _, r := range plan(data) {
		words := data[:r.n]
		data = data[r.n:]

		switch r.width {
		case run8:
			enc = append(enc, byte(tagBase8+r.n))
			for _, w := range words[:r.n-1] {
				if w > 0xff {
					panic(fmt.Sprintf("luigi: value %#x too wide for 8 bit run", w))
				}
				enc = append(enc, byte(w))
			}

		case run10:
			enc = append(enc, byte(tagBase10+r.n))
			uppers := -1
			for i, w := range words[:r.n-1] {
				if w > 0x3ff {
					panic(fmt.Sprintf("luigi: value %#x too wide for 10 bit run", w))
				}
				if i&3 == 0 {
					uppers = len(enc)
					enc = append(enc, 0)
				}
				enc[uppers] |= byte((w & 0x300) >> (2 + 2*(i&3)))
				enc = append(enc, byte(w))
			}

		case run16:
			enc = append(enc, byte(tagBase16+r.n))
			for _, w := range words {
				enc = binary.LittleEndian.AppendUint16(enc, w)
			}
			continue
		}

		enc = binary.LittleEndian.AppendUint16(enc, words[r.n-1])
	}

	if len(enc) > 0xffff {
		panic("luigi: data hunk too large")
	}

	return enc
}

// decodeHunk writes the contents of the data hunk into the store.
func decodeHunk(cart *locutus.Locutus, data []byte) error {
	if len(data) < 3 {
		return curated.Errorf(HunkTooShort, len(data))
	}

	addr := uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16
	if addr >= locutus.Capacity {
		return curated.Errorf(HunkAddress, addr)
	}

	var words []uint16

	for i := 3; i < len(data); {
		tag := data[i]
		start := i
		i++

		var n, need int
		switch {
		case tag >= 0x01 && tag <= 0x3f:
			n = int(tag) - tagBase8
			need = n + 1
		case tag >= 0x40 && tag <= 0xbf:
			n = int(tag) - tagBase10
			need = ((n + 2) >> 2) + n + 1
		case tag >= 0xc0 && tag <= 0xfd:
			n = int(tag) - tagBase16
			need = 2 * n
		default:
			return curated.Errorf(HunkUnexpected, tag, start)
		}

		if len(data)-i < need {
			return curated.Errorf(HunkTruncated, start)
		}

		switch {
		case tag <= 0x3f:
			for _, b := range data[i : i+n-1] {
				words = append(words, uint16(b))
			}
			i += n - 1
			words = append(words, binary.LittleEndian.Uint16(data[i:]))
			i += 2

		case tag <= 0xbf:
			uppers := uint32(0x10000)
			for range n - 1 {
				if uppers&0x10000 != 0 {
					uppers = 0x100 | uint32(data[i])
					i++
				}
				uppers <<= 2
				words = append(words, uint16(0x300&uppers)|uint16(data[i]))
				i++
			}
			words = append(words, binary.LittleEndian.Uint16(data[i:]))
			i += 2

		default:
			for range n {
				words = append(words, binary.LittleEndian.Uint16(data[i:]))
				i += 2
			}
		}
	}

	if uint64(addr)+uint64(len(words)) > locutus.Capacity {
		return curated.Errorf(HunkOverflow, addr)
	}

	for j, w := range words {
		cart.WriteRAM(addr+uint32(j), w)
	}

	return nil
}
