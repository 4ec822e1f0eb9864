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

	"github.com/jetsetilly/locutus/crc"
	"github.com/jetsetilly/locutus/curated"
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/locutus"
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/locutus/metadata"
	"golang.org/x/exp/slices"
)

// Error patterns.
const (
	ImportFailed = "bincfg: import: %d errors"
)

// paged segments are allocated at the top of the store, growing downwards
const pagedSegmentTop = 0x80000

// the size of an ECS page
const pageLen = 0x1000

// Import builds the cartridge from BIN data and, optionally, CFG data. The
// cartridge should be newly created. A nil cfg argument means there is no
// CFG file and the default mapping is used.
//
// The reset copy of the memory map is set up by the import. The cartridge
// must be reset before use.
//
// The UID of the cartridge is formed from the CRC-32 of the CFG data (in the
// upper 32 bits) and the CRC-32 of the BIN data.
//
// The report is always returned. The error is not nil if the report contains
// any errors.
func Import(cart *locutus.Locutus, bin []byte, cfg []byte) (*Report, error) {
	rep := &Report{}

	var c *Config
	if cfg == nil {
		c = NewConfig()
	} else {
		var err error
		c, err = Parse(bytes.NewReader(cfg))
		if err != nil {
			rep.errorf("%v", err)
			return rep, curated.Errorf(ImportFailed, rep.Errors)
		}
		for _, d := range c.Diagnostics {
			rep.warningf("%s", d)
		}
	}

	c.AttachData(DecodeBIN(bin))

	cart.SetMetadata(metadata.FromVars(c.Vars))

	cart.UID = uint64(crc.ZipChecksum(bin))
	if cfg != nil {
		cart.UID |= uint64(crc.ZipChecksum(cfg)) << 32
	}

	imp := importer{cart: cart, rep: rep}
	imp.process(c)

	if rep.Errors > 0 {
		return rep, curated.Errorf(ImportFailed, rep.Errors)
	}
	return rep, nil
}

type importer struct {
	cart *locutus.Locutus
	rep  *Report
}

func permFromFlags(f Flags) locutus.Perm {
	var perm locutus.Perm
	if f&FlagRead != 0 {
		perm |= locutus.PermRead
	}
	if f&FlagWrite != 0 {
		perm |= locutus.PermWrite
	}
	if f&FlagNarrow != 0 {
		perm |= locutus.PermNarrow
	}
	if f&FlagBankSwitch != 0 {
		perm |= locutus.PermBankSwitch
	}
	return perm
}

// a 4K page assembled from one or more paged spans
type pagedData struct {
	data    []uint16
	perm    locutus.Perm
	hasData bool
}

func (imp *importer) process(c *Config) {
	var pages [locutus.NumChapters][locutus.NumPages]*pagedData
	var paged bool

	for _, s := range c.Spans {
		if s.End >= 0x10000 {
			imp.rep.errorf("Segment at $%.4X - $%.4X goes outside valid address range.", s.Start, s.End)
			continue
		}

		if s.Flags&FlagPaged != 0 {
			switch {
			case s.Page == NoPage:
				imp.rep.errorf("Invalid segment is marked 'paged' but without a valid page number at $%.4X - $%.4X", s.Start, s.End)
				continue
			case s.Page > 15:
				imp.rep.errorf("Invalid page number %.2X for page at $%.4X - $%.4X", s.Page, s.Start, s.End)
				continue
			case s.Flags&FlagBankSwitch != 0:
				imp.rep.errorf("Invalid segment is both bankswitched and paged at $%.4X - $%.4X PAGE %.1X", s.Start, s.End, s.Page)
				continue
			case s.Flags&(FlagRead|FlagWrite) == 0:
				imp.rep.errorf("Invalid segment is paged but neither readable nor writeable at $%.4X - $%.4X PAGE %.1X", s.Start, s.End, s.Page)
				continue
			case s.Flags&FlagPreload != 0 && s.Data == nil:
				imp.rep.errorf("Skipping paged segment marked preload but missing data at $%.4X - $%.4X PAGE %.1X", s.Start, s.End, s.Page)
				continue
			}

			// collect the fragments of each page. the first fragment
			// decides the permissions
			paged = true
			for a := s.Start; a <= s.End; a++ {
				chap := a >> 12
				pg := pages[chap][s.Page]
				if pg == nil {
					pg = &pagedData{
						data: make([]uint16, pageLen),
						perm: permFromFlags(s.Flags) | locutus.PermBankSwitch,
					}
					for i := range pg.data {
						pg.data[i] = 0xffff
					}
					pages[chap][s.Page] = pg
				}
				if s.Data != nil {
					pg.data[a&0xfff] = s.Data[a-s.Start]
					pg.hasData = true
				}
			}
			continue
		}

		if s.Flags&(FlagPreload|FlagPoke) != 0 && s.Data == nil {
			imp.rep.errorf("Skipping segment marked preload, but missing data at $%.4X - $%.4X", s.Start, s.End)
			continue
		}

		// spans are applied in order and the last span to cover a paragraph
		// sets its permissions. a [bankswitch] span is bank switched ROM so
		// RAM or WOM from an earlier [memattr] span over the same addresses
		// becomes read only
		imp.addSegment(s.Start, s.Start, s.End-s.Start+1, permFromFlags(s.Flags), s.Data, NoPage)
	}

	if !paged {
		return
	}

	// pages are allocated in a canonical order, from the highest chapter
	// and page downwards
	locuAddr := uint32(pagedSegmentTop)
	pageFlipOnly := locutus.PermBankSwitch

	for chap := locutus.NumChapters - 1; chap >= 0; chap-- {
		if !slices.ContainsFunc(pages[chap][:], func(pg *pagedData) bool { return pg != nil }) {
			continue
		}

		for p := locutus.NumPages - 1; p >= 0; p-- {
			intvAddr := uint32(chap) << 12

			pg := pages[chap][p]
			if pg == nil {
				imp.addSegment(intvAddr, 0, pageLen, pageFlipOnly, nil, p)
				continue
			}

			if locuAddr < pageLen {
				imp.rep.errorf("Paged segment overflow")
				return
			}
			locuAddr -= pageLen

			var data []uint16
			if pg.hasData {
				data = pg.data
			}
			imp.addSegment(intvAddr, locuAddr, pageLen, pg.perm, data, p)
		}
	}
}

// addSegment places the data in the store and sets up the reset copy of the
// memory map and the page flip table.
func (imp *importer) addSegment(intvAddr uint32, locuAddr uint32, length uint32, perm locutus.Perm, data []uint16, page int) {
	if intvAddr+length > 0x10000 {
		imp.rep.errorf("Address overflow on span %.4X len %.4X", intvAddr, length)
		return
	}

	for i, d := range data {
		imp.cart.WriteRAM(locuAddr+uint32(i), d)
	}

	// unpaged segments and page zero of a paged segment are in the memory
	// map at reset
	if page == 0 || page == NoPage {
		paras := 1 + ((length + (intvAddr & 0xff) - 1) >> 8)
		para := intvAddr >> 8
		p := perm
		if page == 0 {
			p &^= locutus.PermBankSwitch
		}
		for i := range paras {
			imp.cart.SetMemPerm(uint8(para+i), true, p)
			imp.cart.SetMemMap(uint8(para+i), true, uint16(locuAddr>>8+i))
		}
	}

	chaps := (length + pageLen - 1) >> 12
	chap := intvAddr >> 12

	if page != NoPage {
		for i := range chaps {
			imp.cart.SetPageFlip(uint8(chap+i), uint8(page), uint16(locuAddr>>12+i), perm)
		}
		return
	}

	// unpaged segments occupy page zero of the page flip table with page
	// flipping disabled
	for i := range chaps {
		imp.cart.SetPageFlip(uint8(chap+i), 0, uint16(locuAddr>>12+i), perm&^locutus.PermBankSwitch)
	}
}
