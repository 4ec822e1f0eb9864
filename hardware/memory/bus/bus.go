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

package bus

// Unmapped is the value returned by a read of an address that no device
// responds to.
const Unmapped = uint16(0xffff)

// CPUBus defines the operations for the memory system when accessed from the
// CPU. Reads and writes may have side effects in the device that services the
// address.
type CPUBus interface {
	Read(address uint16) uint16
	Write(address uint16, data uint16)
}

// DebugBus defines the meta-operations for all memory areas. Think of these
// functions as "debugging" functions, that is operations outside of the normal
// operation of the machine. Peek and Poke never cause side effects.
type DebugBus interface {
	Peek(address uint16) uint16
	Poke(address uint16, data uint16)
}

// Memory is implemented by memory systems that support both the CPU and the
// debugging buses.
type Memory interface {
	CPUBus
	DebugBus
}

// Invalidator is implemented by anything that caches the contents of memory.
// The CPU's decoded instruction cache is the main example.
//
// The range is inclusive. Calls to Invalidate() are synchronous and the cache
// must be consistent with memory when the function returns.
type Invalidator interface {
	Invalidate(lo uint16, hi uint16)
}
