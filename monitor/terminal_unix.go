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

//go:build !windows

package monitor

import (
	"os"

	"github.com/jetsetilly/locutus/monitor/terminal"
	"github.com/jetsetilly/locutus/monitor/terminal/cbreakterm"
	"github.com/jetsetilly/locutus/monitor/terminal/plainterm"
	"golang.org/x/term"
)

// NewTerminal returns the most suitable terminal for the monitor. The
// cbreak terminal is used if both the standard input and the standard output
// are real terminals.
func NewTerminal() terminal.Terminal {
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		return &cbreakterm.CBreakTerminal{}
	}
	return plainterm.NewPlainTerminal(os.Stdin, os.Stdout)
}
