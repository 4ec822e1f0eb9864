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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/locutus/cartridgeloader"
	"github.com/jetsetilly/locutus/hardware"
	"github.com/jetsetilly/locutus/hardware/instance"
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/bincfg"
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/locutus"
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/luigi"
	"github.com/jetsetilly/locutus/logger"
	"github.com/jetsetilly/locutus/modalflag"
	"github.com/jetsetilly/locutus/monitor"
	"github.com/jetsetilly/locutus/prefs"
	"github.com/jetsetilly/locutus/script"
	"github.com/jetsetilly/locutus/statsview"
	"github.com/jetsetilly/locutus/version"
)

// exit values returned by launch()
const (
	exitOK         = 0
	exitModeError  = 1
	exitParseError = 10
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the command line and runs the selected mode. the return
// value is suitable for os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "MONITOR", "LUIGI", "BIN", "INFO", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)

	case "MONITOR":
		err = mon(md, output)

	case "LUIGI":
		err = toLUIGI(md, output)

	case "BIN":
		err = toBIN(md, output)

	case "INFO":
		err = info(md, output)

	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// parse the flags of the current mode and check the number of remaining
// arguments. a nil error and a false value means help was printed and the
// mode should do nothing
func parseMode(md *modalflag.Modes, minArgs int, maxArgs int) (bool, error) {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return false, nil
	case modalflag.ParseError:
		return false, err
	}

	n := len(md.RemainingArgs())
	if n < minArgs {
		if minArgs == 1 {
			return false, fmt.Errorf("cartridge file required for %s mode", md)
		}
		return false, fmt.Errorf("too few arguments for %s mode", md)
	}
	if n > maxArgs {
		return false, fmt.Errorf("too many arguments for %s mode", md)
	}

	return true, nil
}

// the flags shared by the modes that create a running Intellivision
type session struct {
	exec      *string
	prefs     *string
	statsview *bool
}

func addSessionFlags(md *modalflag.Modes) *session {
	s := &session{
		exec:  md.AddString("exec", "", "EXEC ROM image in BIN format"),
		prefs: md.AddString("prefs", "", "preferences for this session (key::value; key::value)"),
	}
	if statsview.Available() {
		s.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return s
}

// create an Intellivision with the cartridge attached and reset
func (s *session) intellivision(label instance.Label, filename string, output io.Writer) (*hardware.Intellivision, error) {
	if *s.prefs != "" {
		prefs.PushCommandLineStack(*s.prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
			}
		}()
	}

	if s.statsview != nil && *s.statsview {
		statsview.Launch(output)
	}

	ins, err := instance.NewInstance(label, nil)
	if err != nil {
		return nil, err
	}

	ivm, err := hardware.NewIntellivision(ins)
	if err != nil {
		return nil, err
	}

	if *s.exec != "" {
		data, err := os.ReadFile(*s.exec)
		if err != nil {
			return nil, err
		}
		err = ivm.AttachExec(bincfg.DecodeBIN(data))
		if err != nil {
			return nil, err
		}
	}

	cl := cartridgeloader.NewLoader(filename)
	err = ivm.AttachCartridge(&cl)
	if err != nil {
		return nil, err
	}

	return ivm, nil
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cycles := md.AddUint64("cycles", 1000000, "maximum number of cycles to run")
	log := md.AddBool("log", false, "echo log to stdout")
	lua := md.AddString("lua", "", "lua script to call after every instruction")
	sess := addSessionFlags(md)

	if ok, err := parseMode(md, 1, 1); !ok {
		return err
	}

	if *log {
		logger.SetEcho(output, true)
		defer logger.SetEcho(nil, false)
	}

	ivm, err := sess.intellivision(instance.Main, md.GetArg(0), output)
	if err != nil {
		return err
	}
	defer ivm.Detach()

	var scr *script.Script
	if *lua != "" {
		scr = script.NewScript(ivm.CPU, ivm.Mem)
		defer scr.Close()
		err = scr.Load(*lua)
		if err != nil {
			return err
		}
		ivm.SetInstructionTick(scr.Tick)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	used, err := ivm.Run(ctx, *cycles)
	if err != nil {
		return err
	}
	if scr != nil && scr.Err != nil {
		return scr.Err
	}

	fmt.Fprintf(output, "%d cycles, %d instructions, %d frames\n", used, ivm.CPU.Instructions, ivm.Frames())
	if ivm.CPU.Halted {
		fmt.Fprintf(output, "halted at $%04X\n", ivm.CPU.LastResult.Address)
	}
	fmt.Fprintln(output, ivm.CPU.Reg.String())
	if ivm.Cart.LTOISA() {
		fmt.Fprintln(output, ivm.CPU.Reg.ExtendedString())
	}

	return nil
}

func mon(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	lua := md.AddString("lua", "", "lua script to call after every instruction during RUN")
	sess := addSessionFlags(md)

	if ok, err := parseMode(md, 1, 1); !ok {
		return err
	}

	ivm, err := sess.intellivision(instance.Monitor, md.GetArg(0), output)
	if err != nil {
		return err
	}
	defer ivm.Detach()

	m := monitor.NewMonitor(ivm, monitor.NewTerminal())

	if *lua != "" {
		scr := script.NewScript(ivm.CPU, ivm.Mem)
		defer scr.Close()
		err = scr.Load(*lua)
		if err != nil {
			return err
		}
		m.SetScript(scr)
	}

	return m.Run(context.Background())
}

// attach the file to a new cartridge without creating an Intellivision
func loadCartridge(filename string) (*locutus.Locutus, *cartridgeloader.Loader, error) {
	cl := cartridgeloader.NewLoader(filename)
	err := cl.Load()
	if err != nil {
		return nil, &cl, err
	}

	cart := locutus.NewLocutus(nil)
	err = cl.Attach(cart)
	if err != nil {
		return nil, &cl, err
	}

	return cart, &cl, nil
}

// print the messages in the bincfg report. the report may be nil
func printReport(output io.Writer, rep *bincfg.Report) {
	if rep == nil {
		return
	}
	for _, m := range rep.Messages {
		fmt.Fprintln(output, m)
	}
}

// replace the extension of the filename
func withExtension(filename string, ext string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ext
}

func toLUIGI(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("converts a BIN file and its CFG file to a LUIGI file. the output\nfilename defaults to the input filename with the .luigi extension")

	if ok, err := parseMode(md, 1, 2); !ok {
		return err
	}

	cart, cl, err := loadCartridge(md.GetArg(0))
	printReport(output, cl.Report)
	if err != nil {
		return err
	}

	out := md.GetArg(1)
	if out == "" {
		out = withExtension(cl.Filename, ".luigi")
	}

	data := luigi.Serialize(cart)
	err = os.WriteFile(out, data, 0o644)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s: %d bytes\n", out, len(data))

	return nil
}

func toBIN(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("converts a LUIGI file to a BIN file and a CFG file. the output files\nare named after the input file unless an output basename is given")

	if ok, err := parseMode(md, 1, 2); !ok {
		return err
	}

	cart, cl, err := loadCartridge(md.GetArg(0))
	if err != nil {
		return err
	}

	base := md.GetArg(1)
	if base == "" {
		base = withExtension(cl.Filename, "")
	}

	bin := &strings.Builder{}
	cfg := &strings.Builder{}
	rep, err := bincfg.Export(cart, bin, cfg)
	printReport(output, rep)
	if err != nil {
		return err
	}

	for _, f := range []struct {
		name string
		data string
	}{
		{base + ".bin", bin.String()},
		{base + ".cfg", cfg.String()},
	} {
		err = os.WriteFile(f.name, []byte(f.data), 0o644)
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "%s: %d bytes\n", f.name, len(f.data))
	}

	return nil
}

func info(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	dot := md.AddString("memviz", "", "write a graphviz diagram of the memory map to file")

	if ok, err := parseMode(md, 1, 1); !ok {
		return err
	}

	cart, cl, err := loadCartridge(md.GetArg(0))
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%-16s%s\n", "file", cl.ShortName())
	fmt.Fprintf(output, "%-16s%s\n", "format", cl.Type)
	fmt.Fprintf(output, "%-16s%s\n", "sha1", cl.Hash)
	fmt.Fprint(output, cart.Summary())

	if *dot != "" {
		f, err := os.Create(*dot)
		if err != nil {
			return err
		}
		defer f.Close()
		cart.WriteMemoryDiagram(f)
	}

	return nil
}
