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

// Package clocks defines the constant values that define the speed of the CPU
// clock in the Intellivision console, and the number of CPU cycles in each
// video frame.
//
// The CPU clock is the colour burst crystal divided by four in the NTSC
// console. The PAL console runs from a 4MHz crystal.
package clocks

// CPU clock in MHz.
const (
	NTSC = 0.894886
	PAL  = 1.000000
)

// Number of CPU cycles in a video frame. The STIC raises an interrupt at the
// start of each vertical blank.
const (
	NTSC_Frame = 14934
	PAL_Frame  = 20000
)

// Spec describes the timing of a console.
type Spec struct {
	ID    string
	Clock float64
	Frame uint64
}

// The supported console timings.
var (
	SpecNTSC = Spec{ID: "NTSC", Clock: NTSC, Frame: NTSC_Frame}
	SpecPAL  = Spec{ID: "PAL", Clock: PAL, Frame: PAL_Frame}
)

// Lookup returns the Spec for the ID. The NTSC spec is returned if the ID is
// not recognised.
func Lookup(id string) Spec {
	switch id {
	case "PAL", "pal":
		return SpecPAL
	}
	return SpecNTSC
}
