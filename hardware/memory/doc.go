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

// Package memory implements the peripheral bus of the Intellivision.
//
// Devices register with the bus by describing themselves with the Peripheral
// type. A Peripheral claims a range of addresses and provides functions for
// reading and writing. Addresses are claimed on a first come first served
// basis. If two peripherals cover the same address then the peripheral
// registered first services the address.
//
// The memory is viewed differently by different parts of the emulation. The
// CPU sees memory through the bus.CPUBus interface, where reads and writes
// may have side effects. The debugger and the loaders see memory through the
// bus.DebugBus interface, where Peek and Poke never have side effects.
//
//	    CPU ---- cpu bus ---- MEMORY ---- Scratchpad RAM
//	                            |    \
//	                            |     \--- System RAM
//	                      debugger bus \
//	                            |       \-- Cartridge
//	                         MONITOR
//
// Every write or poke is snooped and the invalidator plumbed into the memory
// system is told about the change. The CPU uses this to keep its decoded
// instruction cache consistent with memory. Addresses A-2 to A+1 are
// invalidated for a write to address A.
//
// Peripherals with a Tick function are advanced by calls to Memory.Tick().
// The NextTick() function returns the number of cycles that can pass before
// a peripheral must be serviced.
package memory
