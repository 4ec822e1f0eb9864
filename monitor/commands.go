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
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/locutus/curated"
	"github.com/jetsetilly/locutus/hardware/cpu/registers"
	"github.com/jetsetilly/locutus/hardware/memory/memorymap"
	"github.com/jetsetilly/locutus/logger"
	"github.com/jetsetilly/locutus/monitor/terminal"
	"golang.org/x/exp/slices"
)

type command struct {
	name string
	args string
	help string
	fn   func(mon *Monitor, ctx context.Context, args []string) error
}

// the list of commands is initialised in init() because some of the command
// functions refer to the list
var commands []command

func init() {
	commands = []command{
		{"STEP", "[n]", "step the CPU by n instructions (default 1)", (*Monitor).cmdStep},
		{"RUN", "[cycles]", "run until HLT, a breakpoint or the cycle limit", (*Monitor).cmdRun},
		{"BREAK", "[addr]", "toggle a breakpoint. list breakpoints if no address is given", (*Monitor).cmdBreak},
		{"REGS", "", "show the CPU registers", (*Monitor).cmdRegs},
		{"XREGS", "", "show the extended registers", (*Monitor).cmdXRegs},
		{"PEEK", "addr [n]", "show n words of memory (default 8)", (*Monitor).cmdPeek},
		{"POKE", "addr value...", "write values to consecutive addresses", (*Monitor).cmdPoke},
		{"DISASM", "[addr] [n]", "disassemble n instructions (default 10) from addr (default PC)", (*Monitor).cmdDisasm},
		{"RESET", "", "reset the Intellivision", (*Monitor).cmdReset},
		{"CART", "", "describe the cartridge", (*Monitor).cmdCart},
		{"MEM", "[MAP]", "list the peripherals on the memory bus or the console memory map", (*Monitor).cmdMem},
		{"LOG", "[n]", "show the last n log entries (default 10)", (*Monitor).cmdLog},
		{"HELP", "", "this list of commands", (*Monitor).cmdHelp},
		{"QUIT", "", "leave the monitor", (*Monitor).cmdQuit},
	}
}

func lookupCommand(name string) (command, bool) {
	if name == "EXIT" {
		name = "QUIT"
	}
	i := slices.IndexFunc(commands, func(c command) bool {
		return c.name == name
	})
	if i < 0 {
		return command{}, false
	}
	return commands[i], true
}

// parse a hexadecimal address or value. the $ and 0x prefixes are optional
func parseHex(cmd string, s string) (uint16, error) {
	t := strings.TrimPrefix(s, "$")
	t = strings.TrimPrefix(strings.ToLower(t), "0x")
	v, err := strconv.ParseUint(t, 16, 16)
	if err != nil {
		return 0, curated.Errorf(BadArgument, cmd, s)
	}
	return uint16(v), nil
}

// parse a decimal count. the count must be at least one
func parseCount(cmd string, s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v == 0 {
		return 0, curated.Errorf(BadArgument, cmd, s)
	}
	return v, nil
}

// the optional count argument at position i
func optionalCount(args []string, i int, def uint64) (uint64, error) {
	if len(args) <= i {
		return def, nil
	}
	return parseCount(args[0], args[i])
}

// steps beyond this number are not individually listed
const maxStepListing = 20

func (mon *Monitor) cmdStep(ctx context.Context, args []string) error {
	n, err := optionalCount(args, 1, 1)
	if err != nil {
		return err
	}

	for i := range n {
		if mon.ivm.CPU.Halted {
			mon.printLine(terminal.StyleFeedback, "CPU is halted")
			break
		}
		err := mon.ivm.Step(ctx)
		if err != nil {
			return err
		}
		if n <= maxStepListing || i == n-1 {
			mon.printLine(terminal.StyleFeedback, "%s", mon.ivm.CPU.LastResult)
		}
	}

	return nil
}

func (mon *Monitor) cmdRun(ctx context.Context, args []string) error {
	n, err := optionalCount(args, 1, DefaultRunLimit)
	if err != nil {
		return err
	}
	return mon.run(ctx, n)
}

func (mon *Monitor) cmdBreak(_ context.Context, args []string) error {
	if len(args) < 2 {
		if len(mon.breakpoints) == 0 {
			mon.printLine(terminal.StyleFeedback, "no breakpoints")
			return nil
		}
		var bps []uint16
		for a := range mon.breakpoints {
			bps = append(bps, a)
		}
		slices.Sort(bps)
		for _, a := range bps {
			mon.printLine(terminal.StyleFeedback, "breakpoint at $%04x", a)
		}
		return nil
	}

	addr, err := parseHex(args[0], args[1])
	if err != nil {
		return err
	}

	if mon.breakpoints[addr] {
		delete(mon.breakpoints, addr)
		mon.printLine(terminal.StyleFeedback, "breakpoint at $%04x removed", addr)
	} else {
		mon.breakpoints[addr] = true
		mon.printLine(terminal.StyleFeedback, "breakpoint at $%04x added", addr)
	}

	return nil
}

func (mon *Monitor) cmdRegs(_ context.Context, _ []string) error {
	mc := mon.ivm.CPU
	mon.printLine(terminal.StyleFeedback, "%s", mc)
	mon.printLine(terminal.StyleFeedback, "cycles=%d instructions=%d frames=%d halted=%v extended=%v",
		mc.Cycles, mc.Instructions, mon.ivm.Frames(), mc.Halted, mc.ExtendedISA())
	return nil
}

func (mon *Monitor) cmdXRegs(_ context.Context, _ []string) error {
	mon.printLine(terminal.StyleFeedback, "%s", mon.ivm.CPU.Reg.ExtendedString())
	return nil
}

// number of words on each line of PEEK output
const peekWidth = 8

func (mon *Monitor) cmdPeek(_ context.Context, args []string) error {
	if len(args) < 2 {
		return curated.Errorf(MissingArgument, args[0])
	}
	addr, err := parseHex(args[0], args[1])
	if err != nil {
		return err
	}
	n, err := optionalCount(args, 2, peekWidth)
	if err != nil {
		return err
	}

	s := strings.Builder{}
	for i := range n {
		a := addr + uint16(i)
		if i%peekWidth == 0 {
			if i > 0 {
				mon.printLine(terminal.StyleFeedback, "%s", s.String())
				s.Reset()
			}
			s.WriteString(fmt.Sprintf("%04x:", a))
		}
		s.WriteString(fmt.Sprintf(" %04x", mon.ivm.Mem.Peek(a)))
	}
	mon.printLine(terminal.StyleFeedback, "%s", s.String())

	return nil
}

func (mon *Monitor) cmdPoke(_ context.Context, args []string) error {
	if len(args) < 3 {
		return curated.Errorf(MissingArgument, args[0])
	}
	addr, err := parseHex(args[0], args[1])
	if err != nil {
		return err
	}

	// parse all values before poking any of them
	vals := make([]uint16, 0, len(args)-2)
	for _, s := range args[2:] {
		v, err := parseHex(args[0], s)
		if err != nil {
			return err
		}
		vals = append(vals, v)
	}

	for i, v := range vals {
		mon.ivm.Mem.Poke(addr+uint16(i), v)
	}

	return nil
}

func (mon *Monitor) cmdDisasm(_ context.Context, args []string) error {
	addr := mon.ivm.CPU.Reg.R[registers.PC]
	if len(args) > 1 {
		var err error
		addr, err = parseHex(args[0], args[1])
		if err != nil {
			return err
		}
	}
	n, err := optionalCount(args, 2, 10)
	if err != nil {
		return err
	}

	for range n {
		d := mon.ivm.CPU.Disassemble(addr)
		words := make([]string, d.Length)
		for i := range words {
			words[i] = fmt.Sprintf("%04x", d.Words[i])
		}
		mon.printLine(terminal.StyleFeedback, "%04x: %-15s %s", addr, strings.Join(words, " "), d)
		addr += uint16(max(d.Length, 1))
	}

	return nil
}

func (mon *Monitor) cmdReset(_ context.Context, _ []string) error {
	return mon.ivm.Reset()
}

func (mon *Monitor) cmdCart(_ context.Context, _ []string) error {
	if mon.ivm.Cart == nil {
		mon.printLine(terminal.StyleFeedback, "no cartridge")
		return nil
	}
	mon.printLine(terminal.StyleFeedback, "%s", strings.TrimSuffix(mon.ivm.Cart.Summary(), "\n"))
	return nil
}

func (mon *Monitor) cmdMem(_ context.Context, args []string) error {
	if len(args) > 1 {
		if strings.ToUpper(args[1]) != "MAP" {
			return curated.Errorf(BadArgument, args[0], args[1])
		}
		mon.printLine(terminal.StyleFeedback, "%s", strings.TrimSuffix(memorymap.Summary(), "\n"))
		return nil
	}
	mon.printLine(terminal.StyleFeedback, "%s", mon.ivm.Mem)
	return nil
}

func (mon *Monitor) cmdLog(_ context.Context, args []string) error {
	n, err := optionalCount(args, 1, 10)
	if err != nil {
		return err
	}
	s := strings.Builder{}
	logger.Tail(&s, int(n))
	mon.printLine(terminal.StyleFeedback, "%s", strings.TrimSuffix(s.String(), "\n"))
	return nil
}

func (mon *Monitor) cmdHelp(_ context.Context, _ []string) error {
	for _, c := range commands {
		mon.printLine(terminal.StyleHelp, "%-24s %s", strings.TrimSpace(c.name+" "+c.args), c.help)
	}
	mon.printLine(terminal.StyleHelp, "an empty line repeats a STEP command")
	return nil
}

func (mon *Monitor) cmdQuit(_ context.Context, _ []string) error {
	mon.quit = true
	return nil
}
