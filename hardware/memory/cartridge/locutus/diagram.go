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

package locutus

import (
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"
)

// DiagramSpan is a run of paragraphs in the active memory map with the same
// permissions that address a contiguous area of the store.
type DiagramSpan struct {
	CPU   string
	Store string
	Perm  string
}

// DiagramPage is an entry in the page flip table.
type DiagramPage struct {
	Page  int
	Store string
	Perm  string
}

// DiagramChapter is a 4K chapter of the address space.
type DiagramChapter struct {
	Chapter int
	Spans   []*DiagramSpan
	Pages   []*DiagramPage
}

// Diagram is the structure rendered by WriteMemoryDiagram(). Chapters with
// no accessible memory and no page flip entries are omitted.
type Diagram struct {
	Name     string
	JLP      string
	Chapters []*DiagramChapter
}

// MemoryDiagram returns a summary of the active memory map and the page flip
// table.
func (cart *Locutus) MemoryDiagram() *Diagram {
	d := &Diagram{
		Name: cart.metadata.Name,
		JLP:  cart.jlpAccel().String(),
	}

	for chap := range NumChapters {
		c := &DiagramChapter{Chapter: chap}

		var span *DiagramSpan
		var lo, hi, storeLo uint32
		var perm Perm

		flush := func() {
			if span == nil {
				return
			}
			span.CPU = fmt.Sprintf("$%04X - $%04X", lo, hi)
			span.Store = fmt.Sprintf("$%05X - $%05X", storeLo, storeLo+hi-lo)
			span.Perm = perm.String()
			c.Spans = append(c.Spans, span)
			span = nil
		}

		for i := range 16 {
			para := uint8(chap<<4 | i)
			p := cart.memPerm[active][para]
			addr := uint32(para) << 8
			store := uint32(cart.memMap[active][para]) << 8

			if p == 0 {
				flush()
				continue
			}

			if span != nil && p == perm && store == storeLo+addr-lo {
				hi = addr + 0xff
				continue
			}

			flush()
			span = &DiagramSpan{}
			lo, hi, storeLo, perm = addr, addr+0xff, store, p
		}
		flush()

		for page := range NumPages {
			p := cart.pflPerm[chap][page]
			if p == 0 {
				continue
			}
			store := uint32(cart.pflMap[chap][page]) << 12
			c.Pages = append(c.Pages, &DiagramPage{
				Page:  page,
				Store: fmt.Sprintf("$%05X - $%05X", store, store+0xfff),
				Perm:  p.String(),
			})
		}

		if len(c.Spans) > 0 || len(c.Pages) > 0 {
			d.Chapters = append(d.Chapters, c)
		}
	}

	return d
}

// WriteMemoryDiagram writes a graphviz rendering of MemoryDiagram() to the
// writer.
func (cart *Locutus) WriteMemoryDiagram(w io.Writer) {
	memviz.Map(w, cart.MemoryDiagram())
}
