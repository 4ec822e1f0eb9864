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

package clocks_test

import (
	"testing"

	"github.com/jetsetilly/locutus/hardware/clocks"
	"github.com/jetsetilly/locutus/test"
)

func TestLookup(t *testing.T) {
	test.ExpectEquality(t, clocks.Lookup("NTSC"), clocks.SpecNTSC)
	test.ExpectEquality(t, clocks.Lookup("PAL"), clocks.SpecPAL)
	test.ExpectEquality(t, clocks.Lookup("pal"), clocks.SpecPAL)

	// unrecognised IDs fall back to NTSC
	test.ExpectEquality(t, clocks.Lookup("SECAM"), clocks.SpecNTSC)
	test.ExpectEquality(t, clocks.Lookup(""), clocks.SpecNTSC)
}

func TestFrameRate(t *testing.T) {
	// NTSC runs at very nearly 60Hz and PAL at exactly 50Hz
	ntsc := clocks.NTSC * 1000000 / clocks.NTSC_Frame
	test.ExpectEquality(t, ntsc > 59.9 && ntsc < 60.0, true)
	test.ExpectEquality(t, clocks.PAL*1000000/clocks.PAL_Frame, 50.0)
}
