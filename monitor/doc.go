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

// Package monitor is an interactive command line for examining and
// controlling the emulation. It is not a debugger in the full sense but it is
// enough to step through a program, run to a breakpoint and examine memory.
//
// The terminal used by the monitor is chosen by NewTerminal(). When the
// standard input is a real terminal, the terminal is put into cbreak mode and
// pressing the space bar on an empty line steps the CPU. Otherwise commands
// are read one line at a time, which is useful for feeding the monitor with a
// file of commands.
//
// Addresses and values are given in hexadecimal, with an optional $ or 0x
// prefix. Counts are given in decimal.
package monitor
