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
	"bytes"
	"fmt"
	"io"

	"github.com/jetsetilly/locutus/curated"
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/locutus"
	"golang.org/x/exp/slices"
)

// Error patterns.
const (
	ExportFailed = "bincfg: export: %d errors"
	WriteError   = "bincfg: write: %v"
)

// lines of the CFG file end with a CRLF pair
const crlf = "\r\n"

type exporter struct {
	cart *locutus.Locutus
	rep  *Report

	mappings     []hunk
	preloads     []hunk
	memattrs     []memattr
	bankswitches []bankswitch

	// addresses of the store that have been placed in a [mapping] hunk
	preloaded []bool

	// Intellivision addresses that are covered by a [mapping] hunk
	memattred []bool
}

// Export writes the cartridge as BIN and CFG data. The reset copy of the
// memory map is used.
//
// The report is always returned. If the report contains any errors then
// nothing is written and the error is not nil. The error is also not nil if
// either io.Writer fails.
func Export(cart *locutus.Locutus, bin io.Writer, cfg io.Writer) (*Report, error) {
	exp := &exporter{
		cart:      cart,
		rep:       &Report{},
		preloaded: make([]bool, locutus.Capacity),
		memattred: make([]bool, 0x10000),
	}

	exp.classify()

	if exp.rep.Errors > 0 {
		return exp.rep, curated.Errorf(ExportFailed, exp.rep.Errors)
	}

	// mappings and preloads are sorted by page first so that every fragment
	// of a page is merged
	slices.SortFunc(exp.mappings, pageThenAddr)
	slices.SortFunc(exp.preloads, pageThenAddr)
	slices.SortFunc(exp.memattrs, func(a, b memattr) int { return int(a.start) - int(b.start) })
	slices.SortFunc(exp.bankswitches, func(a, b bankswitch) int { return int(a.start) - int(b.start) })

	exp.mappings = mergeAdjacent(exp.mappings)
	exp.preloads = mergeAdjacent(exp.preloads)
	exp.memattrs = mergeAdjacent(exp.memattrs)
	exp.bankswitches = mergeAdjacent(exp.bankswitches)

	exp.mappings = splitAt4K(exp.mappings)
	exp.preloads = splitAt4K(exp.preloads)

	slices.SortFunc(exp.mappings, addrThenPage)
	slices.SortFunc(exp.preloads, addrThenPage)

	var binData []uint16
	cfgData := &bytes.Buffer{}

	hunks := func(header string, hs []hunk) {
		if len(hs) == 0 {
			return
		}
		cfgData.WriteString(header + crlf)
		for _, h := range hs {
			ofs := len(binData)
			fmt.Fprintf(cfgData, "$%.4X - $%.4X = $%.4X", ofs, ofs+len(h.data)-1, h.start)
			if h.page != hunkNoPage {
				fmt.Fprintf(cfgData, " PAGE %1X", h.page)
			}
			cfgData.WriteString(crlf)
			binData = append(binData, h.data...)
		}
		cfgData.WriteString(crlf)
	}

	hunks("[mapping]", exp.mappings)
	hunks("[preload]", exp.preloads)

	if len(exp.memattrs) > 0 {
		cfgData.WriteString("[memattr]" + crlf)
		for _, m := range exp.memattrs {
			fmt.Fprintf(cfgData, "$%.4X - $%.4X = %s %d%s", m.start, m.end, m.typ, m.width, crlf)
		}
		cfgData.WriteString(crlf)
	}

	if len(exp.bankswitches) > 0 {
		cfgData.WriteString("[bankswitch]" + crlf)
		for _, b := range exp.bankswitches {
			fmt.Fprintf(cfgData, "$%.4X - $%.4X%s", b.start, b.end, crlf)
		}
		cfgData.WriteString(crlf)
	}

	if vars := cart.Metadata().Vars(); len(vars) > 0 {
		cfgData.WriteString("[vars]" + crlf)
		for _, v := range vars {
			cfgData.WriteString(v.String() + crlf)
		}
	}

	if _, err := bin.Write(EncodeBIN(binData)); err != nil {
		return exp.rep, curated.Errorf(WriteError, err)
	}
	if _, err := cfg.Write(cfgData.Bytes()); err != nil {
		return exp.rep, curated.Errorf(WriteError, err)
	}

	return exp.rep, nil
}

// classify every part of the cartridge into mappings, preloads, memory
// attributes and bank switched ranges.
func (exp *exporter) classify() {
	cart := exp.cart

	for chap := range locutus.NumChapters {
		flipped := false
		for p := range locutus.NumPages {
			if cart.PageFlipPerm(uint8(chap), uint8(p)).Has(locutus.PermBankSwitch) {
				flipped = true
				break
			}
		}

		if flipped {
			exp.pagedChapter(chap)
		} else {
			exp.plainChapter(chap)
		}
	}

	exp.scanPreloads()
	exp.scanMemattrs()

	for para := range locutus.NumParagraphs {
		if cart.MemPerm(uint8(para), true).Has(locutus.PermBankSwitch) {
			start := uint32(para) << 8
			exp.bankswitches = append(exp.bankswitches, bankswitch{start: start, end: start + 0xff})
		}
	}
}

// plainChapter looks for ROM in a chapter that is not page flipped. Only
// initialised words are output.
func (exp *exporter) plainChapter(chap int) {
	cart := exp.cart

	for para := chap << 4; para < (chap+1)<<4; para++ {
		perm := exp.cart.MemPerm(uint8(para), true)
		if !perm.Has(locutus.PermRead) || perm.Has(locutus.PermWrite) || perm.Has(locutus.PermBankSwitch) {
			continue
		}

		intvBase := uint32(para) << 8
		locuBase := uint32(cart.MemMap(uint8(para), true)) << 8

		var h *hunk
		for ofs := range uint32(0x100) {
			intvAddr := intvBase + ofs
			locuAddr := locuBase + ofs

			if !cart.Initialized(locuAddr) {
				if h != nil {
					exp.mappings = append(exp.mappings, *h)
					h = nil
				}
				continue
			}

			if h == nil {
				h = &hunk{start: intvAddr, page: hunkNoPage, mapped: true}
			}
			h.end = intvAddr
			h.data = append(h.data, cart.ReadRAM(locuAddr))
			exp.preloaded[locuAddr] = true
			exp.memattred[intvAddr] = true
		}

		if h != nil {
			exp.mappings = append(exp.mappings, *h)
		}
	}
}

// pagedChapter outputs each readable page of a page flipped chapter as a 4K
// hunk. Uninitialised words are padded with $FFFF.
func (exp *exporter) pagedChapter(chap int) {
	cart := exp.cart

	for p := range locutus.NumPages {
		perm := cart.PageFlipPerm(uint8(chap), uint8(p))

		if perm.Has(locutus.PermWrite) {
			exp.rep.errorf("Pageflipped ROM at chapter %.1X, page %.1X not yet supported.  Ignored.", chap, p)
			continue
		}

		if !perm.Has(locutus.PermRead) {
			continue
		}

		if perm.Has(locutus.PermNarrow) {
			exp.rep.warningf("NARROW flag set on ROM at chapter %.1X, page %.1X.  Ignored.", chap, p)
			continue
		}

		if !perm.Has(locutus.PermBankSwitch) {
			exp.rep.warningf("Chapter %.2X page %.1X is readable, but does not have page-flip bit set.  Perm=%.1X", chap, p, uint8(perm))
		}

		intvBase := uint32(chap) << 12
		locuBase := uint32(cart.PageFlipMap(uint8(chap), uint8(p))) << 12

		h := hunk{start: intvBase, end: intvBase + pageLen - 1, page: p, mapped: true, data: make([]uint16, pageLen)}
		for ofs := range uint32(pageLen) {
			locuAddr := locuBase + ofs
			if cart.Initialized(locuAddr) {
				exp.preloaded[locuAddr] = true
				h.data[ofs] = cart.ReadRAM(locuAddr)
			} else {
				h.data[ofs] = 0xffff
			}
			exp.memattred[intvBase+ofs] = true
		}

		exp.mappings = append(exp.mappings, h)
	}
}

// scanPreloads finds initialised words of the store that are not part of a
// mapping.
func (exp *exporter) scanPreloads() {
	cart := exp.cart

	above64K := false

	var h *hunk
	for addr := range uint32(locutus.Capacity) {
		if exp.preloaded[addr] || !cart.Initialized(addr) {
			if h != nil {
				exp.preloads = append(exp.preloads, *h)
				above64K = above64K || h.end >= 0x10000
				h = nil
			}
			continue
		}

		if h == nil {
			h = &hunk{start: addr, page: hunkNoPage}
		}
		h.end = addr
		h.data = append(h.data, cart.ReadRAM(addr))
		exp.preloaded[addr] = true
	}

	if h != nil {
		exp.preloads = append(exp.preloads, *h)
		above64K = true
	}

	if above64K {
		exp.rep.warningf("preload section above 64K boundary")
	}
}

// scanMemattrs finds RAM, ROM and WOM. ROM that is covered by a mapping is
// not output.
func (exp *exporter) scanMemattrs() {
	for para := range locutus.NumParagraphs {
		perm := exp.cart.MemPerm(uint8(para), true)

		var typ memattrType
		switch {
		case perm.Has(locutus.PermRead | locutus.PermWrite):
			typ = memattrRAM
		case perm.Has(locutus.PermRead):
			typ = memattrROM
		case perm.Has(locutus.PermWrite):
			typ = memattrWOM
		default:
			continue
		}

		width := 16
		if perm.Has(locutus.PermWrite | locutus.PermNarrow) {
			width = 8
		}

		base := uint32(para) << 8

		if typ != memattrROM {
			exp.memattrs = append(exp.memattrs, memattr{start: base, end: base + 0xff, typ: typ, width: width})
			continue
		}

		inSpan := false
		var start uint32
		for addr := base; addr <= base+0xff; addr++ {
			if inSpan && exp.memattred[addr] {
				exp.memattrs = append(exp.memattrs, memattr{start: start, end: addr - 1, typ: typ, width: width})
				inSpan = false
			} else if !inSpan && !exp.memattred[addr] {
				start = addr
				inSpan = true
			}
		}

		if inSpan {
			exp.memattrs = append(exp.memattrs, memattr{start: start, end: base + 0xff, typ: typ, width: width})
		}
	}
}
