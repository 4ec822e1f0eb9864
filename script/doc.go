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

// Package script runs Lua scripts alongside the emulation. A script is called
// after every CPU instruction and can inspect and change the state of the
// machine.
//
// The script should define a global function called tick(). The function is
// called after every instruction. If the function returns false the
// emulation stops. Returning nothing, or any other value, allows the
// emulation to continue.
//
// The following functions are available to the script:
//
//	peek(addr)      returns the value at the address
//	poke(addr, v)   writes the value to the address
//	reg(n)          returns the value of register n (0 to 7)
//	setreg(n, v)    sets the value of register n
//	xreg(n)         returns the value of extended register n (0 to 15)
//	pc()            returns the program counter
//	cycles()        returns the number of cycles since reset
//	halt()          stops the emulation after the current tick
//	log(s)          writes the string to the log
//
// Memory access is through the debugging bus so peek() and poke() have no
// side effects.
package script
