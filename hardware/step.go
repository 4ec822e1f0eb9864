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

package hardware

import (
	"context"
)

// Step the emulation one CPU instruction. Peripherals are ticked by the number
// of cycles used by the instruction.
func (ivm *Intellivision) Step(ctx context.Context) error {
	if ivm.CPU.Halted {
		return nil
	}
	err := ivm.CPU.Step(ctx)
	ivm.Mem.Tick(uint64(ivm.CPU.LastResult.Cycles))
	return err
}
