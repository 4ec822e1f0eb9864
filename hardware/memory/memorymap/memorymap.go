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

package memorymap

// Area represents the different areas of memory in the Intellivision.
type Area int

func (a Area) String() string {
	switch a {
	case STIC:
		return "STIC"
	case ScratchRAM:
		return "Scratchpad RAM"
	case PSG:
		return "PSG"
	case SystemRAM:
		return "System RAM"
	case EXEC:
		return "EXEC"
	case GROM:
		return "GROM"
	case GRAM:
		return "GRAM"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The different memory areas in the Intellivision. Anything not claimed by
// the console is available to the cartridge.
const (
	Undefined Area = iota
	STIC
	ScratchRAM
	PSG
	SystemRAM
	EXEC
	GROM
	GRAM
	Cartridge
)

// The origin and memory top for each area of memory owned by the console.
const (
	OriginSTIC       = uint16(0x0000)
	MemtopSTIC       = uint16(0x003f)
	OriginScratchRAM = uint16(0x0100)
	MemtopScratchRAM = uint16(0x01ef)
	OriginPSG        = uint16(0x01f0)
	MemtopPSG        = uint16(0x01ff)
	OriginSystemRAM  = uint16(0x0200)
	MemtopSystemRAM  = uint16(0x035f)
	OriginEXEC       = uint16(0x1000)
	MemtopEXEC       = uint16(0x1fff)
	OriginGROM       = uint16(0x3000)
	MemtopGROM       = uint16(0x37ff)
	OriginGRAM       = uint16(0x3800)
	MemtopGRAM       = uint16(0x3fff)
)

// Memtop is the top most address of the CP-1610 address space.
const Memtop = uint16(0xffff)

// MapAddress returns the area that the address falls within. Unlike the
// other address spaces in the console the Intellivision address space is not
// mirrored so the address does not need to be normalised.
func MapAddress(address uint16) Area {
	switch {
	case address <= MemtopSTIC:
		return STIC
	case address >= OriginScratchRAM && address <= MemtopScratchRAM:
		return ScratchRAM
	case address >= OriginPSG && address <= MemtopPSG:
		return PSG
	case address >= OriginSystemRAM && address <= MemtopSystemRAM:
		return SystemRAM
	case address >= OriginEXEC && address <= MemtopEXEC:
		return EXEC
	case address >= OriginGROM && address <= MemtopGROM:
		return GROM
	case address >= OriginGRAM && address <= MemtopGRAM:
		return GRAM
	}
	return Cartridge
}

// IsArea returns true if the address is in the specificied area.
func IsArea(address uint16, area Area) bool {
	return MapAddress(address) == area
}
