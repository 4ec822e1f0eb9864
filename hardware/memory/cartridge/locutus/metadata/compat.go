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

// Compat is the compatibility level of a cartridge with a piece of hardware.
type Compat int

// List of valid Compat values.
const (
	// no compatibility level has been specified
	CompatUnspecified Compat = iota - 1

	// will not function correctly if the hardware is present
	Incompatible

	// works but is not enhanced by the hardware's presence
	Tolerates

	// enhanced by the hardware but does not require it
	Enhanced

	// will not function correctly if the hardware is absent
	Requires
)

func (c Compat) String() string {
	switch c {
	case CompatUnspecified:
		return "unspecified"
	case Incompatible:
		return "incompatible"
	case Tolerates:
		return "tolerates"
	case Enhanced:
		return "enhanced"
	case Requires:
		return "requires"
	}
	return "unknown"
}

// JLPAccel describes the JLP acceleration ability of a cartridge. In all
// modes except JLPDisabled the program can switch the accelerators on and off
// by writing to the unlock and lock addresses.
type JLPAccel int

// List of valid JLPAccel values.
const (
	JLPUnspecified JLPAccel = iota - 1

	// no JLP functionality of any sort
	JLPDisabled

	// accelerators and RAM on at reset. no flash
	JLPAccelOn

	// accelerators and RAM off at reset. JLP flash size controls flash
	JLPAccelOff

	// accelerators and RAM on at reset. JLP flash size controls flash
	JLPAccelFlashOn
)

func (j JLPAccel) String() string {
	switch j {
	case JLPUnspecified:
		return "unspecified"
	case JLPDisabled:
		return "disabled"
	case JLPAccelOn:
		return "accelerators on"
	case JLPAccelOff:
		return "accelerators off"
	case JLPAccelFlashOn:
		return "accelerators and flash on"
	}
	return "unknown"
}

// Requires returns true if the JLP mode requires JLP hardware.
func (j JLPAccel) Requires() bool {
	return j >= JLPAccelOn
}

// The limits of the JLP flash size. The size is measured in sectors.
const (
	JLPFlashMin = 1
	JLPFlashMax = 682
)
