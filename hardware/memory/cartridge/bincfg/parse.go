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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/locutus/curated"
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/locutus/metadata"
)

// Error patterns.
const (
	ReadError = "bincfg: read: %v"
)

// Config is a parsed CFG file.
type Config struct {
	// the memory spans described by the file. preloaded spans are first,
	// followed by memory attribute and bank switch spans that do not
	// overlap a preloaded span
	Spans []*Span

	// the contents of the [vars] section
	Vars []metadata.Var

	// problems found while parsing. lines that can not be parsed are
	// skipped
	Diagnostics []string
}

// the sections of a CFG file
type section int

const (
	secNone section = iota
	secBankswitch
	secMapping
	secECSBank
	secMemattr
	secPreload
	secVars

	// sections that are recognised but which do not affect the cartridge
	secIgnored
)

var sections = map[string]section{
	"bankswitch": secBankswitch,
	"mapping":    secMapping,
	"ecsbank":    secECSBank,
	"memattr":    secMemattr,
	"preload":    secPreload,
	"vars":       secVars,
	"macro":      secIgnored,
	"joystick":   secIgnored,
	"keys":       secIgnored,
	"capslock":   secIgnored,
	"numlock":    secIgnored,
	"scrolllock": secIgnored,
	"disasm":     secIgnored,
	"voices":     secIgnored,
}

// NewConfig returns the configuration used for a BIN file that has no CFG
// file.
func NewConfig() *Config {
	cfg := &Config{}
	cfg.resolve()
	return cfg
}

// Parse the CFG file. The only error returned is a failure to read from the
// io.Reader. Problems with the content of the file are recorded in the
// Diagnostics field of the Config.
func Parse(r io.Reader) (*Config, error) {
	cfg := &Config{}

	sec := secNone
	secName := ""

	scanner := bufio.NewScanner(r)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(stripComment(scanner.Text()))
		if line == "" {
			continue
		}

		if line[0] == '[' {
			name, _, ok := strings.Cut(line[1:], "]")
			if !ok {
				cfg.diagnostic("", lineNum, "malformed section header '%s'", line)
				sec = secIgnored
				continue
			}
			secName = fmt.Sprintf("[%s]", strings.ToLower(strings.TrimSpace(name)))
			if sec, ok = sections[strings.ToLower(strings.TrimSpace(name))]; !ok {
				cfg.diagnostic(secName, lineNum, "unknown section")
				sec = secIgnored
			}
			continue
		}

		var span *Span
		var err error

		switch sec {
		case secNone:
			cfg.diagnostic("", lineNum, "line outside of any section")
			continue
		case secIgnored:
			continue
		case secVars:
			name, value, ok := strings.Cut(line, "=")
			name = strings.TrimSpace(name)
			if !ok || name == "" {
				cfg.diagnostic(secName, lineNum, "unexpected '%s'", line)
				continue
			}
			cfg.Vars = append(cfg.Vars, metadata.ParseVar(name, strings.TrimSpace(value)))
			continue
		case secBankswitch:
			span, err = parseBankswitch(tokenise(line))
		case secMapping:
			span, err = parseMapping(tokenise(line))
		case secECSBank:
			span, err = parseECSBank(tokenise(line))
		case secMemattr:
			span, err = parseMemattr(tokenise(line))
		case secPreload:
			span, err = parsePreload(tokenise(line))
		}

		if err != nil {
			cfg.diagnostic(secName, lineNum, "%v", err)
			continue
		}

		cfg.Spans = append(cfg.Spans, span)
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(ReadError, err)
	}

	cfg.resolve()

	return cfg, nil
}

func (cfg *Config) diagnostic(sec string, line int, format string, args ...any) {
	cfg.Diagnostics = append(cfg.Diagnostics, fmt.Sprintf("%s:%d: %s", sec, line, fmt.Sprintf(format, args...)))
}

// stripComment removes everything from the first semicolon that is not
// inside a quoted string.
func stripComment(s string) string {
	quoted := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if quoted {
				i++
			}
		case '"':
			quoted = !quoted
		case ';':
			if !quoted {
				return s[:i]
			}
		}
	}
	return s
}

var punctuation = strings.NewReplacer("-", " - ", "=", " = ", ":", " : ")

func tokenise(s string) []string {
	return strings.Fields(punctuation.Replace(s))
}

// expect returns an error if the tokens do not begin with the pattern. an
// empty string in the pattern matches any token
func expect(toks []string, pattern ...string) error {
	if len(toks) < len(pattern) {
		return fmt.Errorf("unexpected end of line")
	}
	for i, p := range pattern {
		if p != "" && toks[i] != p {
			return fmt.Errorf("unexpected token '%s'", toks[i])
		}
	}
	return nil
}

func parseHex(tok string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(tok, "$"), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number '%s'", tok)
	}
	return uint32(v), nil
}

// parses the "$start - $end" at the start of the tokens
func parseRange(toks []string) (uint32, uint32, error) {
	if err := expect(toks, "", "-", ""); err != nil {
		return 0, 0, err
	}
	s, err := parseHex(toks[0])
	if err != nil {
		return 0, 0, err
	}
	e, err := parseHex(toks[2])
	if err != nil {
		return 0, 0, err
	}
	if e < s {
		return 0, 0, fmt.Errorf("range $%04X - $%04X is backwards", s, e)
	}
	return s, e, nil
}

type attributes struct {
	flags Flags
	width int
	page  int
}

// parses an optional memory attribute with an optional page number. the
// page number can appear before or after the attribute
func parseAttributes(toks []string) (attributes, error) {
	if len(toks) == 0 {
		return attributes{flags: FlagRead, width: 16, page: NoPage}, nil
	}

	switch strings.ToUpper(toks[0]) {
	case "PAGE":
		if len(toks) < 2 {
			return attributes{}, fmt.Errorf("missing page number")
		}
		p, err := parseHex(toks[1])
		if err != nil {
			return attributes{}, err
		}
		a, err := parseAttributes(toks[2:])
		if err != nil {
			return attributes{}, err
		}
		a.flags |= FlagPaged
		a.page = int(p)
		return a, nil

	case "ROM", "RAM", "WOM":
		var flags Flags
		switch strings.ToUpper(toks[0]) {
		case "ROM":
			flags = FlagRead
		case "RAM":
			flags = FlagRead | FlagWrite
		case "WOM":
			flags = FlagWrite
		}

		if len(toks) < 2 {
			return attributes{}, fmt.Errorf("missing width for %s", toks[0])
		}
		w, err := strconv.Atoi(toks[1])
		if err != nil || w < 1 || w > 16 {
			return attributes{}, fmt.Errorf("invalid width '%s'", toks[1])
		}
		if w < 16 {
			flags |= FlagNarrow
		}

		a, err := parseAttributes(toks[2:])
		if err != nil {
			return attributes{}, err
		}
		return attributes{flags: flags | a.flags&FlagPaged, width: w, page: a.page}, nil
	}

	return attributes{}, fmt.Errorf("unexpected token '%s'", toks[0])
}

// parses "$fstart - $fend = $addr" at the start of the tokens and returns a
// span and the remaining tokens
func parseFileSpan(toks []string) (*Span, []string, error) {
	fs, fe, err := parseRange(toks)
	if err != nil {
		return nil, nil, err
	}
	if err := expect(toks[3:], "=", ""); err != nil {
		return nil, nil, err
	}
	a, err := parseHex(toks[4])
	if err != nil {
		return nil, nil, err
	}
	return &Span{FileStart: fs, FileEnd: fe, Start: a, End: a + fe - fs, Width: 16, Page: NoPage}, toks[5:], nil
}

func parseMapping(toks []string) (*Span, error) {
	span, rest, err := parseFileSpan(toks)
	if err != nil {
		return nil, err
	}
	a, err := parseAttributes(rest)
	if err != nil {
		return nil, err
	}
	span.Flags = a.flags | FlagPreload
	span.Width = a.width
	span.Page = a.page
	return span, nil
}

func parsePreload(toks []string) (*Span, error) {
	span, rest, err := parseFileSpan(toks)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("unexpected token '%s'", rest[0])
	}
	span.Flags = FlagPreload
	return span, nil
}

func parseECSBank(toks []string) (*Span, error) {
	if err := expect(toks, "", ":"); err != nil {
		return nil, err
	}
	p, err := parseHex(toks[0])
	if err != nil {
		return nil, err
	}
	span, rest, err := parseFileSpan(toks[2:])
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("unexpected token '%s'", rest[0])
	}
	span.Flags = FlagPreload | FlagRead | FlagPaged
	span.Page = int(p)
	return span, nil
}

func parseMemattr(toks []string) (*Span, error) {
	s, e, err := parseRange(toks)
	if err != nil {
		return nil, err
	}
	if err := expect(toks[3:], "="); err != nil {
		return nil, err
	}
	a, err := parseAttributes(toks[4:])
	if err != nil {
		return nil, err
	}
	return &Span{Start: s, End: e, Flags: a.flags, Width: a.width, Page: a.page}, nil
}

func parseBankswitch(toks []string) (*Span, error) {
	s, e, err := parseRange(toks)
	if err != nil {
		return nil, err
	}
	if len(toks) > 3 {
		return nil, fmt.Errorf("unexpected token '%s'", toks[3])
	}
	return &Span{Start: s, End: e, Flags: FlagBankSwitch | FlagRead, Width: 16, Page: NoPage}, nil
}

// resolve applies memory attributes to the preloaded spans they overlap,
// splitting spans where necessary. A default mapping is added if there are
// no preloaded spans.
func (cfg *Config) resolve() {
	var preloads, memattrs []*Span
	for _, s := range cfg.Spans {
		if s.Flags&FlagPreload != 0 {
			preloads = append(preloads, s)
		} else {
			memattrs = append(memattrs, s)
		}
	}

	if len(preloads) == 0 {
		preloads = defaultSpans()
	}

	// both lists can grow as spans are split. new spans are examined by
	// the loops
	for mi := 0; mi < len(memattrs); mi++ {
		m := memattrs[mi]

		for pi := 0; pi < len(preloads); pi++ {
			p := preloads[pi]

			if m.End < p.Start || m.Start > p.End || m.Page != p.Page {
				continue
			}

			if p.Start < m.Start {
				n := *p
				n.End = m.Start - 1
				p.Start = m.Start
				p.FileStart = p.FileEnd - p.End + p.Start
				n.FileEnd = n.FileStart + n.End - n.Start
				preloads = append(preloads, &n)
			}

			if p.End > m.End {
				n := *p
				n.Start = m.End + 1
				p.End = m.End
				n.FileStart = n.FileEnd - n.End + n.Start
				p.FileEnd = p.FileStart + p.End - p.Start
				preloads = append(preloads, &n)
			}

			if m.Start < p.Start {
				n := *m
				n.Flags &^= flagDelete
				n.End = p.Start - 1
				m.Start = p.Start
				memattrs = append(memattrs, &n)
			}

			if m.End > p.End {
				n := *m
				n.Flags &^= flagDelete
				n.Start = p.End + 1
				m.End = p.End
				memattrs = append(memattrs, &n)
			}

			p.Width = m.Width
			p.Flags = (m.Flags | FlagPreload) &^ flagDelete
			m.Flags |= flagDelete
		}
	}

	cfg.Spans = preloads
	for _, m := range memattrs {
		if m.Flags&flagDelete == 0 {
			cfg.Spans = append(cfg.Spans, m)
		}
	}
}
