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

package metadata_test

import (
	"testing"

	"github.com/jetsetilly/locutus/hardware/memory/cartridge/locutus/metadata"
	"github.com/jetsetilly/locutus/test"
)

func TestQuote(t *testing.T) {
	test.ExpectEquality(t, metadata.Quote("hello"), "hello")
	test.ExpectEquality(t, metadata.Quote("hello world"), `"hello world"`)
	test.ExpectEquality(t, metadata.Quote("a-b"), `"a-b"`)
	test.ExpectEquality(t, metadata.Quote(`say "hi"`), `"say \"hi\""`)
	test.ExpectEquality(t, metadata.Quote("a\tb\n"), `"a\tb\n"`)
	test.ExpectEquality(t, metadata.Quote("\x01"), `"\x01"`)
	test.ExpectEquality(t, metadata.Quote("\xff"), `"\xFF"`)
	test.ExpectEquality(t, metadata.Quote("café"), `"café"`)
}

func TestUnquote(t *testing.T) {
	test.ExpectEquality(t, metadata.Unquote("plain"), "plain")
	test.ExpectEquality(t, metadata.Unquote(`"half`), `"half`)
	test.ExpectEquality(t, metadata.Unquote(`"a\tb"`), "a\tb")
	test.ExpectEquality(t, metadata.Unquote(`"\x4a\x4B"`), "JK")
	test.ExpectEquality(t, metadata.Unquote(`"\101"`), "A")
	test.ExpectEquality(t, metadata.Unquote(`"\777"`), "\xff")
	test.ExpectEquality(t, metadata.Unquote(`"\q"`), "q")
	test.ExpectEquality(t, metadata.Unquote(`"\\"`), `\`)

	for _, s := range []string{"hello world", `a"b\c`, "tab\there", "\x01\x7f", "café"} {
		test.ExpectEquality(t, metadata.Unquote(metadata.Quote(s)), s)
	}
}

func TestParseVar(t *testing.T) {
	v := metadata.ParseVar("ecs", "1")
	n, ok := v.Dec()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, 1)
	h, ok := v.Hex()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, h, uint32(1))
	d, ok := v.Date()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d.Year, 1901)
	test.ExpectEquality(t, v.String(), "ecs = 1")

	v = metadata.ParseVar("x", "$1F")
	_, ok = v.Dec()
	test.ExpectFailure(t, ok)
	h, ok = v.Hex()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, h, uint32(0x1f))
	test.ExpectEquality(t, v.String(), "x = $001F")

	v = metadata.ParseVar("name", `"Space Patrol"`)
	s, ok := v.Str()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "Space Patrol")
	test.ExpectEquality(t, v.String(), `name = "Space Patrol"`)

	v = metadata.ParseVar("year", "1983")
	d, ok = v.Date()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d.Year, 1983)

	v = metadata.ParseVar("release_date", `"1983/06/01"`)
	d, ok = v.Date()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d.Month, 6)
}

func TestParseKeyValue(t *testing.T) {
	v, ok := metadata.ParseKeyValue("answer=42")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.Name, "answer")
	n, ok := v.Dec()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, 42)

	_, ok = metadata.ParseKeyValue("no equals sign")
	test.ExpectFailure(t, ok)
}
