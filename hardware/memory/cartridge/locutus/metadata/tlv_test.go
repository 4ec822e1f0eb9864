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
	"strings"
	"testing"

	"github.com/jetsetilly/locutus/hardware/memory/cartridge/locutus/metadata"
	"github.com/jetsetilly/locutus/test"
)

func TestTLV(t *testing.T) {
	m := metadata.NewMetadata()
	m.Name = "Space Patrol"
	m.ShortName = "Space Patrol"
	m.Authors = []string{"Joe Zbiciak", "Arnauld Chevallier"}
	m.Composers = []string{"Arnauld Chevallier"}
	m.Publishers = []string{"Intellivision Revolution"}
	m.ReleaseDates = []metadata.Date{metadata.NewDate(2007), {}}
	m.BuildDates = []metadata.Date{metadata.NewDate(2006)}
	m.Versions = []string{"1.1"}
	m.Misc = []string{"foo=bar"}

	data := m.Serialize()
	test.ExpectEquality(t, data[0], byte(0x00))
	test.ExpectEquality(t, int(data[1]), len(m.Name))

	n := metadata.NewMetadata()
	test.ExpectSuccess(t, n.Deserialize(data))
	test.ExpectEquality(t, n.Name, m.Name)
	test.ExpectEquality(t, n.ShortName, m.ShortName)
	test.ExpectEquality(t, len(n.Authors), 2)
	test.ExpectEquality(t, n.Authors[1], "Arnauld Chevallier")
	test.ExpectEquality(t, len(n.Composers), 1)
	test.ExpectEquality(t, len(n.Publishers), 1)

	// the zero release date is not serialised
	test.ExpectEquality(t, len(n.ReleaseDates), 1)
	test.ExpectEquality(t, n.ReleaseDates[0].Year, 2007)

	test.ExpectEquality(t, len(n.BuildDates), 1)
	test.ExpectEquality(t, n.BuildDates[0].Year, 2006)
	test.ExpectEquality(t, len(n.Versions), 1)
	test.ExpectEquality(t, n.Versions[0], "1.1")
	test.ExpectEquality(t, len(n.Misc), 1)
	test.ExpectEquality(t, n.Misc[0], "foo=bar")
}

func TestTLVLongString(t *testing.T) {
	m := metadata.NewMetadata()
	m.Name = strings.Repeat("x", 300)

	data := m.Serialize()
	test.ExpectEquality(t, len(data), 257)

	n := metadata.NewMetadata()
	test.ExpectSuccess(t, n.Deserialize(data))
	test.ExpectEquality(t, len(n.Name), 255)
}

func TestTLVMalformed(t *testing.T) {
	n := metadata.NewMetadata()

	// unknown tags are skipped
	test.ExpectSuccess(t, n.Deserialize([]byte{0x7f, 0x01, 0xaa, 0x00, 0x02, 'h', 'i'}))
	test.ExpectEquality(t, n.Name, "hi")

	test.ExpectFailure(t, n.Deserialize([]byte{0x00}))
	test.ExpectFailure(t, n.Deserialize([]byte{0x00, 0x05, 'h', 'i'}))
}
