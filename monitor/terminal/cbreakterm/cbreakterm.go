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

// Package cbreakterm implements the Terminal interface for the monitor. The
// terminal is put into cbreak mode so that the monitor can react to a single
// key press. Pressing the space bar on an empty line steps the CPU.
package cbreakterm

import (
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/locutus/curated"
	"github.com/jetsetilly/locutus/monitor/easyterm"
	"github.com/jetsetilly/locutus/monitor/terminal"
)

// Error patterns.
const (
	UserInterrupt = "cbreakterm: user interrupt"
)

// CBreakTerminal implements the terminal.Terminal interface. It keeps a
// history of commands that can be recalled with the cursor keys.
type CBreakTerminal struct {
	easyterm.Terminal

	history []string
}

// Initialise perfoms any setting up required for the terminal.
func (ct *CBreakTerminal) Initialise() error {
	err := ct.Terminal.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	ct.CBreakMode()
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *CBreakTerminal) CleanUp() {
	ct.Print("\r")
	_ = ct.Flush()
	ct.Terminal.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *CBreakTerminal) IsInteractive() bool {
	return true
}

// TermPrintLine implements the terminal.Output interface.
func (ct *CBreakTerminal) TermPrintLine(style terminal.Style, s string) {
	switch style {
	case terminal.StyleEcho:
		return
	case terminal.StyleError:
		s = "* " + s
	}
	ct.Print("%s\r\n", strings.ReplaceAll(s, "\n", "\r\n"))
}

// TermRead implements the terminal.Input interface.
func (ct *CBreakTerminal) TermRead(prompt string) (string, error) {
	var input []byte
	history := len(ct.history)

	for {
		ct.Print("\r%s%s%s", easyterm.ClearLine, prompt, input)

		b, err := ct.ReadByte()
		if err != nil {
			return "", err
		}

		switch b {
		case easyterm.KeyCtrlC:
			ct.Print("\r\n")
			return "", curated.Errorf(UserInterrupt)

		case easyterm.KeyCtrlD:
			if len(input) == 0 {
				ct.Print("\r\n")
				return "", io.EOF
			}

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			ct.Print("\r\n")
			s := string(input)
			if s != "" && (len(ct.history) == 0 || ct.history[len(ct.history)-1] != s) {
				ct.history = append(ct.history, s)
			}
			return s, nil

		case easyterm.KeySpace:
			if len(input) == 0 {
				ct.Print("\r\n")
				return terminal.StepCommand, nil
			}
			input = append(input, b)

		case easyterm.KeyBackspace, easyterm.KeyBackspaceAlt:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}

		case easyterm.KeyEsc:
			b, err = ct.ReadByte()
			if err != nil {
				return "", err
			}
			if b != easyterm.EscCursor {
				continue
			}
			b, err = ct.ReadByte()
			if err != nil {
				return "", err
			}
			switch b {
			case easyterm.CursorUp:
				if history > 0 {
					history--
					input = []byte(ct.history[history])
				}
			case easyterm.CursorDown:
				if history < len(ct.history)-1 {
					history++
					input = []byte(ct.history[history])
				} else {
					history = len(ct.history)
					input = input[:0]
				}
			}

		default:
			if b >= easyterm.KeySpace && b < easyterm.KeyBackspace {
				input = append(input, b)
			}
		}
	}
}
