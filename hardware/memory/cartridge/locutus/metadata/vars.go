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

package metadata

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// the kinds of value a Var can hold. more than one kind can be present
type valueKind uint8

const (
	kindDec valueKind = 1 << iota
	kindHex
	kindString
	kindDate
)

// Var is a name/value pair as found in the [vars] section of a CFG file. The
// value can be interpreted in more than one way, depending on what the value
// looks like.
type Var struct {
	Name string

	kind valueKind
	dec  int
	hex  uint32
	str  string
	date Date
}

// NewVarDec returns a variable with a decimal value.
func NewVarDec(name string, v int) Var {
	return Var{Name: name, kind: kindDec | kindString, dec: v, str: strconv.Itoa(v)}
}

// NewVarHex returns a variable with a hexadecimal value.
func NewVarHex(name string, v uint32) Var {
	return Var{Name: name, kind: kindHex | kindString, hex: v, str: fmt.Sprintf("%x", v)}
}

// NewVarString returns a variable with a string value.
func NewVarString(name string, v string) Var {
	return Var{Name: name, kind: kindString, str: v}
}

// NewVarDate returns a variable with a date value. The string form of the
// variable is the formatted date.
func NewVarDate(name string, d Date) Var {
	v := Var{Name: name, kind: kindDate, date: d}
	if s := d.String(); s != "" {
		v.kind |= kindString
		v.str = s
	}
	return v
}

// ParseVar creates a variable from a name and a value token as it appears in
// a CFG file. Quoted tokens are unquoted.
func ParseVar(name string, token string) Var {
	v := Var{Name: name, kind: kindString}

	switch {
	case len(token) >= 2 && token[0] == '"' && token[len(token)-1] == '"':
		v.str = Unquote(token)
		v.tryDate()

	case strings.HasPrefix(token, "$") && isHex(token[1:]):
		v.str = token[1:]
		v.tryHex()

	case isDec(token):
		v.str = token
		v.tryDec()
		v.tryHex()

		// bare decimal numbers are usable as a year
		if v.dec > 0 && v.dec < 100 {
			v.kind |= kindDate
			v.date = NewDate(v.dec + 1900)
		} else if v.dec > 1900 && v.dec < 1900+255 {
			v.kind |= kindDate
			v.date = NewDate(v.dec)
		}

	default:
		v.str = token
		v.tryDate()
	}

	return v
}

// ParseKeyValue creates a variable from a "key=value" string. The value is
// interpreted in every way it can be. Returns false if there is no '='.
func ParseKeyValue(kv string) (Var, bool) {
	name, value, ok := strings.Cut(kv, "=")
	if !ok {
		return Var{}, false
	}

	v := Var{Name: name, kind: kindString, str: value}
	v.tryDec()
	v.tryHex()
	v.tryDate()

	return v, true
}

func isDec(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range []byte(s) {
		if !strings.ContainsRune("0123456789abcdefABCDEF", rune(c)) {
			return false
		}
	}
	return true
}

func (v *Var) tryDec() {
	if !isDec(v.str) {
		return
	}
	n, err := strconv.ParseInt(v.str, 10, 32)
	if err != nil {
		return
	}
	v.dec = int(n)
	v.kind |= kindDec
}

func (v *Var) tryHex() {
	s := strings.TrimPrefix(v.str, "$")
	if !isHex(s) {
		return
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return
	}
	v.hex = uint32(n)
	v.kind |= kindHex
}

func (v *Var) tryDate() {
	if d, ok := ParseDate(v.str); ok {
		v.date = d
		v.kind |= kindDate
	}
}

// Dec returns the decimal value of the variable, if it has one.
func (v Var) Dec() (int, bool) {
	return v.dec, v.kind&kindDec == kindDec
}

// Hex returns the hexadecimal value of the variable, if it has one.
func (v Var) Hex() (uint32, bool) {
	return v.hex, v.kind&kindHex == kindHex
}

// Str returns the string value of the variable, if it has one.
func (v Var) Str() (string, bool) {
	return v.str, v.kind&kindString == kindString
}

// Date returns the date value of the variable, if it has one.
func (v Var) Date() (Date, bool) {
	return v.date, v.kind&kindDate == kindDate
}

// String returns the variable as it would appear in the [vars] section of a
// CFG file. Decimal values take priority over hexadecimal values, which take
// priority over strings.
func (v Var) String() string {
	switch {
	case v.kind&kindDec == kindDec:
		return fmt.Sprintf("%s = %d", v.Name, v.dec)
	case v.kind&kindHex == kindHex:
		return fmt.Sprintf("%s = $%04X", v.Name, v.hex)
	}
	return fmt.Sprintf("%s = %s", v.Name, Quote(v.str))
}

// characters that cause a string to be quoted, in addition to control
// characters and characters outside of the ASCII range
const mustQuote = " ;[]$=-,\\\"'\x7f"

func needsQuote(s string) bool {
	for _, c := range []byte(s) {
		if c < 0x20 || c >= 0x80 || strings.IndexByte(mustQuote, c) >= 0 {
			return true
		}
	}
	return false
}

// Quote a string if it contains characters that would otherwise confuse the
// CFG file parser. Valid UTF-8 sequences are not escaped. Strings that do not
// need quoting are returned unchanged.
func Quote(s string) string {
	if !needsQuote(s) {
		return s
	}

	var b strings.Builder
	b.WriteByte('"')

	for i := 0; i < len(s); {
		c := s[i]

		switch c {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
			i++
			continue
		case '\t':
			b.WriteString("\\t")
			i++
			continue
		case '\n':
			b.WriteString("\\n")
			i++
			continue
		case '\r':
			b.WriteString("\\r")
			i++
			continue
		}

		r, sz := utf8.DecodeRuneInString(s[i:])
		if sz > 1 && r != utf8.RuneError {
			b.WriteString(s[i : i+sz])
			i += sz
			continue
		}

		if c < 0x20 || c > 0x7e {
			fmt.Fprintf(&b, "\\x%02X", c)
		} else {
			b.WriteByte(c)
		}
		i++
	}

	b.WriteByte('"')
	return b.String()
}

// Unquote is the reverse of Quote(). A string that does not both begin and
// end with a double quote is returned unchanged.
//
// The following escape sequences are recognised: \t \n \r \xHH and \ooo. The
// value of an octal escape is masked to eight bits. A backslash followed by
// any other character is replaced by that character.
func Unquote(s string) string {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	s = s[1 : len(s)-1]

	hexDigit := func(c byte) (byte, bool) {
		switch {
		case c >= '0' && c <= '9':
			return c - '0', true
		case c >= 'a' && c <= 'f':
			return c - 'a' + 10, true
		case c >= 'A' && c <= 'F':
			return c - 'A' + 10, true
		}
		return 0, false
	}

	octDigit := func(c byte) (byte, bool) {
		if c >= '0' && c <= '7' {
			return c - '0', true
		}
		return 0, false
	}

	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			i++
			continue
		}

		c := s[i+1]
		switch c {
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 'x':
			if i+3 < len(s) {
				h, ok1 := hexDigit(s[i+2])
				l, ok2 := hexDigit(s[i+3])
				if ok1 && ok2 {
					b.WriteByte(h<<4 | l)
					i += 4
					continue
				}
			}
			b.WriteByte(c)
			i += 2
		case '0', '1', '2', '3', '4', '5', '6', '7':
			if i+3 < len(s) {
				d0, _ := octDigit(c)
				d1, ok1 := octDigit(s[i+2])
				d2, ok2 := octDigit(s[i+3])
				if ok1 && ok2 {
					b.WriteByte((d0&3)<<6 | d1<<3 | d2)
					i += 4
					continue
				}
			}
			b.WriteByte(c)
			i += 2
		default:
			b.WriteByte(c)
			i += 2
		}
	}

	return b.String()
}
