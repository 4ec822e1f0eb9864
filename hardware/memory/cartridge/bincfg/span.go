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

import "fmt"

// Flags describe how a span of memory behaves.
type Flags uint16

// List of span flags.
const (
	FlagRead Flags = 1 << iota
	FlagWrite
	FlagNarrow
	FlagBankSwitch

	// the span is loaded with data from the BIN file
	FlagPreload

	// the span is the subject of a poke macro
	FlagPoke

	// the span is an ECS style page
	FlagPaged

	// used while resolving memory attributes
	flagDelete
)

func (f Flags) String() string {
	s := []byte("------")
	for i, c := range []byte("RWNBLP") {
		if f&(1<<i) != 0 {
			s[i] = c
		}
	}
	if f&FlagPaged != 0 {
		s = append(s, 'E')
	}
	return string(s)
}

// NoPage is the page of a span that is not an ECS style page.
const NoPage = -1

// Span is a range of the Intellivision address space and, if the span is
// preloaded, the range of the BIN file that it is loaded from.
type Span struct {
	// offsets into the BIN file, in words. inclusive
	FileStart uint32
	FileEnd   uint32

	// the Intellivision addresses. inclusive
	Start uint32
	End   uint32

	Flags Flags
	Width int
	Page  int

	// the data for a preloaded span. nil until the BIN data is attached
	Data []uint16
}

func (s Span) String() string {
	if s.Page == NoPage {
		return fmt.Sprintf("$%04X - $%04X [%s]", s.Start, s.End, s.Flags)
	}
	return fmt.Sprintf("$%04X - $%04X PAGE %X [%s]", s.Start, s.End, s.Page, s.Flags)
}

// the default mapping used for a BIN file with no CFG file, or for a CFG
// file with no preloaded spans
func defaultSpans() []*Span {
	return []*Span{
		{FileStart: 0x0000, FileEnd: 0x1fff, Start: 0x5000, End: 0x6fff, Flags: FlagRead | FlagPreload, Width: 16, Page: NoPage},
		{FileStart: 0x2000, FileEnd: 0x2fff, Start: 0xd000, End: 0xdfff, Flags: FlagRead | FlagPreload, Width: 16, Page: NoPage},
		{FileStart: 0x3000, FileEnd: 0x3fff, Start: 0xf000, End: 0xffff, Flags: FlagRead | FlagPreload, Width: 16, Page: NoPage},
	}
}
