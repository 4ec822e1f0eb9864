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

// Package terminal defines the operations required by the monitor's command
// line interface. Implementations are in the sub-packages.
package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can choose
// to interpret the style how it sees fit.
type Style int

// List of valid Style values.
const (
	// the output of a monitor command
	StyleFeedback Style = iota

	// help text
	StyleHelp

	// the input of the user. terminals that echo input automatically will
	// ignore this style
	StyleEcho

	// an error has occurred
	StyleError
)

// StepCommand is returned by TermRead() when the user has pressed the step
// key. Not all terminals support the step key.
const StepCommand = "STEP"

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns a line of input, without the line ending. An io.EOF
	// error is returned when there is no more input.
	TermRead(prompt string) (string, error)

	// IsInteractive() should return true for implementations that require
	// user interaction. Instances that don't expect user intervention should
	// return false.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the monitor's command line
// interface.
type Terminal interface {
	// Terminal implementation also implement the Input and Output interfaces.
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to it's original state, if possible. for example,
	// we could use this to make sure the terminal is returned to canonical
	// mode. not all terminal implementations will need to do anything.
	CleanUp()
}
