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

package hardware_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/locutus/cartridgeloader"
	"github.com/jetsetilly/locutus/curated"
	"github.com/jetsetilly/locutus/hardware"
	"github.com/jetsetilly/locutus/hardware/clocks"
	"github.com/jetsetilly/locutus/hardware/cpu"
	"github.com/jetsetilly/locutus/hardware/cpu/registers"
	"github.com/jetsetilly/locutus/hardware/instance"
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/bincfg"
	"github.com/jetsetilly/locutus/test"
)

// J $5000
var execStub = []uint16{0x0004, 0x0350, 0x0000, 0x0000, 0x0000}

func newIntellivision(t *testing.T, program []uint16) *hardware.Intellivision {
	t.Helper()

	ins, err := instance.NewInstance(instance.Main, nil)
	test.DemandSuccess(t, err)
	ins.Prefs.SetDefaults()

	ivm, err := hardware.NewIntellivision(ins)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ivm.AttachExec(execStub))

	pth := filepath.Join(t.TempDir(), "program.bin")
	test.DemandSuccess(t, os.WriteFile(pth, bincfg.EncodeBIN(program), 0o644))

	cl := cartridgeloader.NewLoader(pth)
	test.DemandSuccess(t, ivm.AttachCartridge(&cl))

	return ivm
}

func TestNoCartridge(t *testing.T) {
	ins, err := instance.NewInstance(instance.Main, nil)
	test.DemandSuccess(t, err)

	ivm, err := hardware.NewIntellivision(ins)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, curated.Is(ivm.Reset(), hardware.NoCartridge), true)
	test.ExpectEquality(t, curated.Is(ivm.AttachExec(nil), hardware.MemoryError), true)
}

func TestRun(t *testing.T) {
	// MVII #$1234,R1
	// MVO R1,$0200
	// MVO R1,$0100
	// HLT
	ivm := newIntellivision(t, []uint16{0x02b9, 0x1234, 0x0241, 0x0200, 0x0241, 0x0100, 0x0000})

	test.ExpectEquality(t, ivm.CPU.Reg.R[registers.PC], cpu.ResetVector)

	_, err := ivm.Run(context.Background(), 100000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ivm.CPU.Halted, true)
	test.ExpectEquality(t, ivm.Mem.Peek(0x0200), 0x1234)

	// scratchpad RAM is only eight bits wide
	test.ExpectEquality(t, ivm.Mem.Peek(0x0100), 0x0034)
}

func TestStep(t *testing.T) {
	ivm := newIntellivision(t, []uint16{0x0034, 0x0034, 0x0000})

	ctx := context.Background()
	test.DemandSuccess(t, ivm.Step(ctx))
	test.ExpectEquality(t, ivm.CPU.Reg.R[registers.PC], 0x5000)
	test.ExpectEquality(t, ivm.Mem.Now(), 13)

	test.DemandSuccess(t, ivm.Step(ctx))
	test.ExpectEquality(t, ivm.CPU.Reg.R[registers.PC], 0x5001)
	test.ExpectEquality(t, ivm.Mem.Now(), 19)

	// reset returns to the EXEC
	test.DemandSuccess(t, ivm.Reset())
	test.ExpectEquality(t, ivm.CPU.Reg.R[registers.PC], cpu.ResetVector)
	test.ExpectEquality(t, ivm.Mem.Now(), 0)
}

func TestVBlank(t *testing.T) {
	// EIS
	// J $5001
	ivm := newIntellivision(t, []uint16{0x0002, 0x0004, 0x0350, 0x0001})

	// HLT in the EXEC at the interrupt vector
	ivm.Mem.Poke(cpu.InterruptVector, 0x0000)

	_, err := ivm.Run(context.Background(), 2*clocks.NTSC_Frame)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ivm.CPU.Halted, true)
	test.ExpectEquality(t, ivm.Frames(), 1)
	test.ExpectEquality(t, ivm.CPU.Reg.R[registers.PC], cpu.InterruptVector+1)

	// the return address was pushed on to the stack
	test.ExpectEquality(t, ivm.CPU.Reg.R[registers.SP], 1)
}

func TestInstructionTick(t *testing.T) {
	// J $5000
	ivm := newIntellivision(t, []uint16{0x0004, 0x0350, 0x0000})

	var n int
	ivm.SetInstructionTick(func(_ *cpu.CPU) bool {
		n++
		return n < 10
	})

	_, err := ivm.Run(context.Background(), 1000000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 10)
	test.ExpectEquality(t, ivm.CPU.Instructions, 10)

	ivm.SetInstructionTick(nil)
	used, err := ivm.Run(context.Background(), 1000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, used >= 1000, true)
}

func TestRunForFrameCount(t *testing.T) {
	// J $5000
	ivm := newIntellivision(t, []uint16{0x0004, 0x0350, 0x0000})

	test.DemandSuccess(t, ivm.RunForFrameCount(context.Background(), 3))
	test.ExpectEquality(t, ivm.Frames(), 3)
	test.ExpectEquality(t, ivm.Mem.Now() >= 3*clocks.NTSC_Frame, true)
}

func TestCancel(t *testing.T) {
	ivm := newIntellivision(t, []uint16{0x0004, 0x0350, 0x0000})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ivm.Run(ctx, 1000)
	test.ExpectEquality(t, err, context.Canceled)
}

func TestPAL(t *testing.T) {
	ins, err := instance.NewInstance(instance.Main, nil)
	test.DemandSuccess(t, err)
	ins.Prefs.SetDefaults()
	ins.Prefs.Spec.Set("PAL")

	ivm, err := hardware.NewIntellivision(ins)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ivm.Spec, clocks.SpecPAL)
}
