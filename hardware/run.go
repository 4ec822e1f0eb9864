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

// Run the emulation for at least the number of cycles. Returns early if the
// CPU halts, if the instruction tick function returns false or if the context
// is cancelled. The number of cycles used is returned.
//
// Peripherals are ticked whenever the number of cycles returned by
// Memory.NextTick() have passed.
func (ivm *Intellivision) Run(ctx context.Context, cycles uint64) (uint64, error) {
	ivm.stopped = false

	var used uint64
	for used < cycles && !ivm.CPU.Halted && !ivm.stopped {
		n := min(cycles-used, max(ivm.Mem.NextTick(), 1))

		c, err := ivm.CPU.Run(ctx, n)
		ivm.Mem.Tick(c)
		used += c

		if err != nil {
			return used, err
		}
	}

	return used, nil
}

// RunForFrameCount runs the emulation until the number of frames have
// passed. Useful for tests and for scripts that need to wait for the program
// to reach a stable state.
func (ivm *Intellivision) RunForFrameCount(ctx context.Context, numFrames int) error {
	target := ivm.Frames() + uint64(numFrames)
	for ivm.Frames() < target && !ivm.CPU.Halted {
		_, err := ivm.Run(ctx, ivm.Spec.Frame)
		if err != nil {
			return err
		}
		if ivm.stopped {
			break
		}
	}
	return nil
}
