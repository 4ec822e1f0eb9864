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

package monitor_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/locutus/cartridgeloader"
	"github.com/jetsetilly/locutus/curated"
	"github.com/jetsetilly/locutus/hardware"
	"github.com/jetsetilly/locutus/hardware/cpu/registers"
	"github.com/jetsetilly/locutus/hardware/instance"
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/bincfg"
	"github.com/jetsetilly/locutus/monitor"
	"github.com/jetsetilly/locutus/monitor/terminal/plainterm"
	"github.com/jetsetilly/locutus/script"
	"github.com/jetsetilly/locutus/test"
)

// J $5000
var execStub = []uint16{0x0004, 0x0350, 0x0000}

// NOP
// NOP
// MVII #$1234,R1
// MVO R1,$0200
// HLT
var program = []uint16{0x0034, 0x0034, 0x02b9, 0x1234, 0x0241, 0x0200, 0x0000}

func newMonitor(t *testing.T, input string) (*monitor.Monitor, *hardware.Intellivision, *test.Writer) {
	t.Helper()

	ins, err := instance.NewInstance(instance.Monitor, nil)
	test.DemandSuccess(t, err)
	ins.Prefs.SetDefaults()

	ivm, err := hardware.NewIntellivision(ins)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ivm.AttachExec(execStub))

	pth := filepath.Join(t.TempDir(), "program.bin")
	test.DemandSuccess(t, os.WriteFile(pth, bincfg.EncodeBIN(program), 0o644))
	cl := cartridgeloader.NewLoader(pth)
	test.DemandSuccess(t, ivm.AttachCartridge(&cl))

	w := &test.Writer{}
	term := plainterm.NewPlainTerminal(strings.NewReader(input), w)

	return monitor.NewMonitor(ivm, term), ivm, w
}

func TestStepAndRepeat(t *testing.T) {
	mon, ivm, w := newMonitor(t, "step\n\nSTEP 2\n")
	test.DemandSuccess(t, mon.Run(context.Background()))

	// the empty line repeats the first step command
	test.ExpectEquality(t, ivm.CPU.Instructions, 4)
	test.ExpectEquality(t, ivm.CPU.Reg.R[1], 0x1234)
	test.ExpectEquality(t, strings.Contains(w.String(), "1000: J"), true)
}

func TestRunToHalt(t *testing.T) {
	mon, ivm, w := newMonitor(t, "run\npeek 200 2\nquit\nstep\n")
	test.DemandSuccess(t, mon.Run(context.Background()))

	test.ExpectEquality(t, ivm.CPU.Halted, true)
	test.ExpectEquality(t, strings.Contains(w.String(), "stopped (halted)"), true)
	test.ExpectEquality(t, strings.Contains(w.String(), "0200: 1234 0000"), true)

	// the step after the quit command is never executed
	test.ExpectEquality(t, strings.Contains(w.String(), "CPU is halted"), false)
}

func TestBreakpoint(t *testing.T) {
	mon, ivm, w := newMonitor(t, "break $5002\nrun\nbreak\n")
	test.DemandSuccess(t, mon.Run(context.Background()))

	test.ExpectEquality(t, ivm.CPU.Reg.R[registers.PC], 0x5002)
	test.ExpectEquality(t, ivm.CPU.Halted, false)
	test.ExpectEquality(t, strings.Contains(w.String(), "stopped (breakpoint)"), true)
	test.ExpectEquality(t, strings.Contains(w.String(), "breakpoint at $5002\n"), true)
}

func TestPokeAndReset(t *testing.T) {
	mon, ivm, _ := newMonitor(t, "")
	ctx := context.Background()

	test.DemandSuccess(t, mon.Execute(ctx, "poke 0x0210 1 2 $3"))
	test.ExpectEquality(t, ivm.Mem.Peek(0x0211), 2)
	test.ExpectEquality(t, ivm.Mem.Peek(0x0212), 3)

	test.DemandSuccess(t, mon.Execute(ctx, "step 3"))
	test.DemandSuccess(t, mon.Execute(ctx, "reset"))
	test.ExpectEquality(t, ivm.CPU.Reg.R[registers.PC], 0x1000)
	test.ExpectEquality(t, ivm.CPU.Instructions, 0)
}

func TestScript(t *testing.T) {
	mon, ivm, w := newMonitor(t, "run\n")

	scr := script.NewScript(ivm.CPU, ivm.Mem)
	defer scr.Close()
	test.DemandSuccess(t, scr.LoadString("function tick() return pc() ~= 0x5001 end"))
	mon.SetScript(scr)

	test.DemandSuccess(t, mon.Run(context.Background()))
	test.ExpectEquality(t, ivm.CPU.Reg.R[registers.PC], 0x5001)
	test.ExpectEquality(t, strings.Contains(w.String(), "stopped (script)"), true)
}

func TestCommandErrors(t *testing.T) {
	mon, _, w := newMonitor(t, "frobnicate\npeek\npeek zz\nstep 0\n")
	ctx := context.Background()

	err := mon.Execute(ctx, "frobnicate")
	test.ExpectEquality(t, curated.Is(err, monitor.UnknownCommand), true)
	err = mon.Execute(ctx, "peek")
	test.ExpectEquality(t, curated.Is(err, monitor.MissingArgument), true)
	err = mon.Execute(ctx, "peek zz")
	test.ExpectEquality(t, curated.Is(err, monitor.BadArgument), true)
	err = mon.Execute(ctx, "step 0")
	test.ExpectEquality(t, curated.Is(err, monitor.BadArgument), true)

	// errors are printed by the input loop and the loop continues
	test.DemandSuccess(t, mon.Run(ctx))
	test.ExpectEquality(t, strings.Count(w.String(), "* monitor:"), 4)
}

func TestHelp(t *testing.T) {
	mon, _, w := newMonitor(t, "help\n")
	test.DemandSuccess(t, mon.Run(context.Background()))
	for _, s := range []string{"STEP [n]", "RUN [cycles]", "PEEK addr [n]", "QUIT"} {
		test.ExpectEquality(t, strings.Contains(w.String(), s), true, s)
	}
}

func TestMemoryMap(t *testing.T) {
	mon, _, w := newMonitor(t, "mem\nmem map\n")
	test.DemandSuccess(t, mon.Run(context.Background()))
	test.ExpectEquality(t, strings.Contains(w.String(), "Scratchpad RAM"), true)
	test.ExpectEquality(t, strings.Contains(w.String(), "0100 -> 01ef\tScratchpad RAM"), true)
	test.ExpectEquality(t, strings.Contains(w.String(), "Cartridge"), true)

	err := mon.Execute(context.Background(), "mem stic")
	test.ExpectEquality(t, curated.Is(err, monitor.BadArgument), true)
}
