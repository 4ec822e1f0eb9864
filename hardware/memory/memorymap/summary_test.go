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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/locutus/hardware/memory/memorymap"
	"github.com/jetsetilly/locutus/test"
)

const validMemMap = "0000 -> 003f\tSTIC\n" +
	"0040 -> 00ff\tCartridge\n" +
	"0100 -> 01ef\tScratchpad RAM\n" +
	"01f0 -> 01ff\tPSG\n" +
	"0200 -> 035f\tSystem RAM\n" +
	"0360 -> 0fff\tCartridge\n" +
	"1000 -> 1fff\tEXEC\n" +
	"2000 -> 2fff\tCartridge\n" +
	"3000 -> 37ff\tGROM\n" +
	"3800 -> 3fff\tGRAM\n" +
	"4000 -> ffff\tCartridge\n"

func TestMemory(t *testing.T) {
	if memorymap.Summary() != validMemMap {
		t.Fatalf("memory map is invalid")
	}
}

func TestIsArea(t *testing.T) {
	test.ExpectSuccess(t, memorymap.IsArea(0x0040, memorymap.Cartridge))
	test.ExpectSuccess(t, memorymap.IsArea(0x01f5, memorymap.PSG))
	test.ExpectSuccess(t, memorymap.IsArea(0x1004, memorymap.EXEC))
	test.ExpectFailure(t, memorymap.IsArea(0x3800, memorymap.GROM))
	test.ExpectEquality(t, memorymap.MapAddress(0xffff), memorymap.Cartridge)
}
