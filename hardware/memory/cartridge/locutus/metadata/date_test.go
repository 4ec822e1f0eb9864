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

func TestParseDate(t *testing.T) {
	d, ok := metadata.ParseDate("1983/12/25")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d.Year, 1983)
	test.ExpectEquality(t, d.Month, 12)
	test.ExpectEquality(t, d.Day, 25)
	test.ExpectEquality(t, d.Hour, -1)
	test.ExpectEquality(t, d.UTCDelta, metadata.UTCUnknown)
	test.ExpectEquality(t, d.String(), "1983-12-25")

	d, ok = metadata.ParseDate("83")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d.Year, 1983)
	test.ExpectEquality(t, d.Month, 0)
	test.ExpectEquality(t, d.String(), "1983")

	d, ok = metadata.ParseDate("2001-02-03 04:05:06 +0130")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d.Sec, 6)
	test.ExpectEquality(t, d.UTCDelta, 90)
	test.ExpectEquality(t, d.String(), "2001-02-03 04:05:06 +0130")

	// month out of range invalidates everything to the right
	d, ok = metadata.ParseDate("1999/13/01")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d.Month, 0)
	test.ExpectEquality(t, d.Day, 0)
	test.ExpectEquality(t, d.String(), "1999")

	_, ok = metadata.ParseDate("hello")
	test.ExpectFailure(t, ok)

	_, ok = metadata.ParseDate("1850")
	test.ExpectFailure(t, ok)
}

func TestDateEncoding(t *testing.T) {
	d := metadata.NewDate(2024)
	test.ExpectEquality(t, len(d.Encode()), 1)
	test.ExpectEquality(t, d.Encode()[0], byte(124))

	d, _ = metadata.ParseDate("2001-02-03 04:05:06 -0130")
	enc := d.Encode()
	test.ExpectEquality(t, len(enc), 8)
	test.ExpectEquality(t, enc[6], byte(0xfe))
	test.ExpectEquality(t, enc[7], byte(30))

	dec, err := metadata.DecodeDate(enc)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dec, d)
	test.ExpectEquality(t, dec.UTCDelta, -90)

	// whole hour offsets omit the minutes byte
	d, _ = metadata.ParseDate("2001-02-03 04:05:06 +0200")
	enc = d.Encode()
	test.ExpectEquality(t, len(enc), 7)
	dec, err = metadata.DecodeDate(enc)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dec.UTCDelta, 120)

	_, err = metadata.DecodeDate(nil)
	test.ExpectFailure(t, err)

	_, err = metadata.DecodeDate([]byte{100, 13})
	test.ExpectFailure(t, err)

	_, err = metadata.DecodeDate([]byte{100, 1, 1, 0, 0, 0, 13})
	test.ExpectFailure(t, err)
}
