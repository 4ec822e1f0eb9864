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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds the concept of modes to command line parsing.
//
// A mode is a word on the command line that selects what the program does,
// with each mode having its own set of flags. For example:
//
//	locutus LUIGI game.bin game.luigi
//	locutus RUN -cycles 100000 game.luigi
//
// A Modes instance is initialised with NewArgs(). Sub-modes are declared with
// AddSubModes() and flags with the Add*() functions. Parse() then consumes the
// arguments, recording the selected mode. The first sub-mode declared is the
// default mode, used when the next argument is not a recognised mode.
//
// After handling a mode, NewMode() starts a fresh flag set for the arguments
// that remain:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "INFO")
//	p, err := md.Parse()
//	...
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		cycles := md.AddInt("cycles", 1000000, "number of cycles to run")
//		p, err = md.Parse()
//		...
//	}
//
// Help output is generated automatically when -help is given and Parse()
// returns ParseHelp in that case.
package modalflag
