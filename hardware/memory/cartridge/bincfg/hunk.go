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
	"cmp"

	"golang.org/x/exp/slices"
)

// the page of a hunk that is not paged. sorts after every real page
const hunkNoPage = 0xff

// a hunk is a range of addresses with data, destined for the [mapping] or
// [preload] sections of the CFG file
type hunk struct {
	start uint32
	end   uint32
	page  int

	// mapped hunks are in the Intellivision address space. unmapped hunks
	// are in the address space of the store
	mapped bool

	data []uint16
}

func (h hunk) canMerge(o hunk) bool {
	return h.end+1 == o.start && h.page == o.page && h.mapped == o.mapped
}

func (h hunk) merged(o hunk) hunk {
	h.end = o.end
	h.data = append(slices.Clip(h.data), o.data...)
	return h
}

// splitAt shortens the hunk so that it ends at addr-1 and returns a new hunk
// for the remainder.
func (h *hunk) splitAt(addr uint32) hunk {
	n := hunk{
		start:  addr,
		end:    h.end,
		page:   h.page,
		mapped: h.mapped,
		data:   h.data[addr-h.start:],
	}
	h.end = addr - 1
	h.data = slices.Clip(h.data[:addr-h.start])
	return n
}

func pageThenAddr(a, b hunk) int {
	if c := cmp.Compare(a.page, b.page); c != 0 {
		return c
	}
	return cmp.Compare(a.start, b.start)
}

func addrThenPage(a, b hunk) int {
	if c := cmp.Compare(a.start, b.start); c != 0 {
		return c
	}
	return cmp.Compare(a.page, b.page)
}

type memattrType int

const (
	memattrBad memattrType = iota
	memattrROM
	memattrWOM
	memattrRAM
)

func (t memattrType) String() string {
	switch t {
	case memattrROM:
		return "ROM"
	case memattrWOM:
		return "WOM"
	case memattrRAM:
		return "RAM"
	}
	return "BAD"
}

// a memattr is a range of addresses for the [memattr] section
type memattr struct {
	start uint32
	end   uint32
	typ   memattrType
	width int
}

func (m memattr) canMerge(o memattr) bool {
	return m.end+1 == o.start && m.typ == o.typ && m.width == o.width
}

func (m memattr) merged(o memattr) memattr {
	m.end = o.end
	return m
}

// a bankswitch is a range of addresses for the [bankswitch] section
type bankswitch struct {
	start uint32
	end   uint32
}

func (b bankswitch) canMerge(o bankswitch) bool {
	return b.end+1 == o.start
}

func (b bankswitch) merged(o bankswitch) bankswitch {
	b.end = o.end
	return b
}

type mergeable[T any] interface {
	canMerge(T) bool
	merged(T) T
}

// mergeAdjacent combines neighbouring entries of a sorted list.
func mergeAdjacent[T mergeable[T]](v []T) []T {
	for i := len(v) - 1; i > 0; i-- {
		if v[i-1].canMerge(v[i]) {
			v[i-1] = v[i-1].merged(v[i])
			v = slices.Delete(v, i, i+1)
		}
	}
	return v
}

// splitAt4K splits hunks that cross a 4K boundary.
func splitAt4K(v []hunk) []hunk {
	for i := len(v); i > 0; {
		h := &v[i-1]
		if (h.start^h.end)&^0xfff == 0 {
			i--
			continue
		}
		n := h.splitAt(h.end &^ 0xfff)
		v = slices.Insert(v, i, n)
	}
	return v
}
