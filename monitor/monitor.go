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

package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/locutus/curated"
	"github.com/jetsetilly/locutus/hardware"
	"github.com/jetsetilly/locutus/hardware/cpu"
	"github.com/jetsetilly/locutus/hardware/cpu/registers"
	"github.com/jetsetilly/locutus/logger"
	"github.com/jetsetilly/locutus/monitor/terminal"
	"github.com/jetsetilly/locutus/script"
)

// Error patterns.
const (
	UnknownCommand  = "monitor: unknown command: %s"
	BadArgument     = "monitor: %s: bad argument (%s)"
	MissingArgument = "monitor: %s: missing argument"
	Interrupted     = "monitor: interrupted"
)

// DefaultRunLimit is the number of cycles the RUN command runs for if no
// limit is given.
const DefaultRunLimit = 10000000

// Monitor is the command line interface to the emulation.
type Monitor struct {
	ivm  *hardware.Intellivision
	term terminal.Terminal

	// optional script called after every instruction during RUN
	script *script.Script

	breakpoints map[uint16]bool

	// the reason the most recent RUN command stopped
	stopReason string

	// the most recent command. repeated if the input is an empty line
	lastCommand string

	quit bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(ivm *hardware.Intellivision, term terminal.Terminal) *Monitor {
	return &Monitor{
		ivm:         ivm,
		term:        term,
		breakpoints: make(map[uint16]bool),
	}
}

// SetScript attaches a script to the monitor. The script is called after
// every instruction executed by the RUN command.
func (mon *Monitor) SetScript(scr *script.Script) {
	mon.script = scr
}

func (mon *Monitor) printLine(style terminal.Style, s string, a ...any) {
	mon.term.TermPrintLine(style, fmt.Sprintf(s, a...))
}

func (mon *Monitor) prompt() string {
	pc := mon.ivm.CPU.Reg.R[registers.PC]
	d := mon.ivm.CPU.Disassemble(pc)
	return fmt.Sprintf("[%04x %s] > ", pc, d.Mnemonic())
}

// Run the monitor input loop. Returns when the user quits or when there is
// no more input.
func (mon *Monitor) Run(ctx context.Context) error {
	err := mon.term.Initialise()
	if err != nil {
		return err
	}
	defer mon.term.CleanUp()

	mon.printLine(terminal.StyleFeedback, "type HELP for a list of commands")

	for !mon.quit {
		input, err := mon.term.TermRead(mon.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if curated.IsAny(err) {
				mon.printLine(terminal.StyleError, "%v", err)
				continue
			}
			return err
		}

		mon.printLine(terminal.StyleEcho, "%s", input)

		err = mon.Execute(ctx, input)
		if err != nil {
			mon.printLine(terminal.StyleError, "%v", err)
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}

	return nil
}

// Execute a single command. An empty input repeats the previous command if
// it was a STEP command.
func (mon *Monitor) Execute(ctx context.Context, input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		if !strings.HasPrefix(mon.lastCommand, "STEP") {
			return nil
		}
		input = mon.lastCommand
	}

	args := strings.Fields(input)
	args[0] = strings.ToUpper(args[0])

	cmd, ok := lookupCommand(args[0])
	if !ok {
		return curated.Errorf(UnknownCommand, args[0])
	}

	mon.lastCommand = strings.Join(args, " ")

	return cmd.fn(mon, ctx, args)
}

// the instruction tick used by the RUN command. stops the emulation at a
// breakpoint, when the CPU has gone off in the weeds or when the script
// says so
func (mon *Monitor) tick(mc *cpu.CPU) bool {
	if mc.LastResult.Weeds {
		mon.stopReason = "off in the weeds"
		return false
	}
	if mon.script != nil && !mon.script.Tick(mc) {
		mon.stopReason = "script"
		if mon.script.Err != nil {
			mon.stopReason = mon.script.Err.Error()
		}
		return false
	}
	if mon.breakpoints[mc.Reg.R[registers.PC]] {
		mon.stopReason = "breakpoint"
		return false
	}
	return true
}

// run the emulation for the number of cycles. the emulation can be
// interrupted by the user
func (mon *Monitor) run(ctx context.Context, cycles uint64) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	mon.stopReason = "cycle limit"
	mon.ivm.SetInstructionTick(mon.tick)
	defer mon.ivm.SetInstructionTick(nil)

	used, err := mon.ivm.Run(ctx, cycles)
	if mon.ivm.CPU.Halted && !mon.ivm.CPU.LastResult.Weeds {
		mon.stopReason = "halted"
	}

	logger.Logf(logger.Allow, "monitor", "run: %d cycles: %s", used, mon.stopReason)

	if err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return curated.Errorf(Interrupted)
		}
		return err
	}

	mon.printLine(terminal.StyleFeedback, "%d cycles: stopped (%s)", used, mon.stopReason)
	mon.printLine(terminal.StyleFeedback, "%s", mon.ivm.CPU.LastResult)

	return nil
}
