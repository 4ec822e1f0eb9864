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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/locutus/hardware/memory/cartridge/bincfg"
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/luigi"
	"github.com/jetsetilly/locutus/test"
)

// writes a BIN file without a CFG file. the program is mapped at $5000
func writeProgram(t *testing.T, dir string, name string, program []uint16) string {
	t.Helper()
	pth := filepath.Join(dir, name)
	test.DemandSuccess(t, os.WriteFile(pth, bincfg.EncodeBIN(program), 0o644))
	return pth
}

func TestVersionMode(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"VERSION"}, w), exitOK)
	test.ExpectEquality(t, strings.HasPrefix(w.String(), "Locutus "), true)
}

func TestBadArguments(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"INFO"}, w), exitModeError)
	test.ExpectEquality(t, strings.HasPrefix(w.String(), "* error in INFO mode"), true)

	w.Clear()
	test.ExpectEquality(t, launch([]string{"INFO", "a", "b"}, w), exitModeError)

	w.Clear()
	test.ExpectEquality(t, launch([]string{"LUIGI", filepath.Join(t.TempDir(), "missing.bin")}, w), exitModeError)
}

func TestConversion(t *testing.T) {
	dir := t.TempDir()
	bin := writeProgram(t, dir, "prog.bin", []uint16{0x0034, 0x0034, 0x0000})

	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"LUIGI", bin}, w), exitOK)

	lui := filepath.Join(dir, "prog.luigi")
	data, err := os.ReadFile(lui)
	test.DemandSuccess(t, err)
	_, err = luigi.Identify(data)
	test.ExpectSuccess(t, err)

	// convert back to BIN and CFG with a different basename
	w.Clear()
	test.ExpectEquality(t, launch([]string{"BIN", lui, filepath.Join(dir, "back")}, w), exitOK)

	data, err = os.ReadFile(filepath.Join(dir, "back.bin"))
	test.DemandSuccess(t, err)
	words := bincfg.DecodeBIN(data)
	test.DemandEquality(t, len(words) >= 3, true)
	test.ExpectEquality(t, [3]uint16(words[:3]), [3]uint16{0x0034, 0x0034, 0x0000})

	cfg, err := os.ReadFile(filepath.Join(dir, "back.cfg"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(string(cfg), "[mapping]"), true)
}

func TestInfo(t *testing.T) {
	dir := t.TempDir()
	bin := writeProgram(t, dir, "prog.bin", []uint16{0x0034, 0x0000})
	dot := filepath.Join(dir, "prog.dot")

	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"INFO", "-memviz", dot, bin}, w), exitOK)
	test.ExpectEquality(t, strings.Contains(w.String(), "prog.bin"), true)
	test.ExpectEquality(t, strings.Contains(w.String(), "$5000"), true)

	data, err := os.ReadFile(dot)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, len(data), 0)
}

func TestRunMode(t *testing.T) {
	dir := t.TempDir()

	// J $5000
	exec := writeProgram(t, dir, "exec.bin", []uint16{0x0004, 0x0350, 0x0000})

	// NOP; HLT
	bin := writeProgram(t, dir, "prog.bin", []uint16{0x0034, 0x0000})

	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"RUN", "-exec", exec, "-cycles", "1000", bin}, w), exitOK)
	test.ExpectEquality(t, strings.Contains(w.String(), "halted at $5001"), true)
}

func TestRunScript(t *testing.T) {
	dir := t.TempDir()
	exec := writeProgram(t, dir, "exec.bin", []uint16{0x0004, 0x0350, 0x0000})

	// J $5000
	bin := writeProgram(t, dir, "loop.bin", []uint16{0x0004, 0x0350, 0x0000})

	lua := filepath.Join(dir, "stop.lua")
	test.DemandSuccess(t, os.WriteFile(lua, []byte("function tick() return cycles() < 100 end"), 0o644))

	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"RUN", "-exec", exec, "-lua", lua, bin}, w), exitOK)
	test.ExpectEquality(t, strings.HasPrefix(w.String(), "104 cycles"), true)
}
