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

package cpu

import (
	"context"
	"fmt"

	"github.com/jetsetilly/locutus/curated"
	"github.com/jetsetilly/locutus/hardware/cpu/instructions"
	"github.com/jetsetilly/locutus/hardware/cpu/registers"
	"github.com/jetsetilly/locutus/hardware/memory/bus"
	"github.com/jetsetilly/locutus/hardware/preferences"
	"github.com/jetsetilly/locutus/logger"
)

// Addresses the CPU loads into the program counter on reset and on accepting
// an interrupt.
const (
	ResetVector     = uint16(0x1000)
	InterruptVector = uint16(0x1004)
)

// Version is the value placed in R1 by the SIN version probe.
const Version = uint16(0x0104)

// Error patterns.
const (
	OffInTheWeeds = "cpu: off in the weeds: PC=%04x word=%04x"
)

// the number of cycles taken to accept an interrupt
const interruptCycles = 12

// Result of the most recent call to Step().
type Result struct {
	// the instruction executed. will be nil if the step was an interrupt
	Decoded *instructions.Decoded

	// the address of the instruction
	Address uint16

	// number of cycles used by the step
	Cycles int

	// the step accepted an interrupt instead of executing an instruction
	Interrupt bool

	// the instruction was an invalid opcode
	Weeds bool
}

func (r Result) String() string {
	if r.Interrupt {
		return fmt.Sprintf("%04x: interrupt (%d cycles)", r.Address, r.Cycles)
	}
	if r.Decoded == nil {
		return "no instruction"
	}
	return fmt.Sprintf("%04x: %s (%d cycles)", r.Address, r.Decoded, r.Cycles)
}

// cacheable is implemented by memory systems where not every address can be
// safely cached by the decoder.
type cacheable interface {
	IsCacheable(address uint16) bool
}

// InstructionTick is called after every step. Returning false causes Run() to
// return. It is also called instead of halting when the CPU encounters an
// invalid opcode.
type InstructionTick func(mc *CPU) bool

// CPU implements the CP-1610 as found in the Intellivision.
type CPU struct {
	prefs *preferences.Preferences
	mem   bus.Memory
	cache cacheable

	Reg registers.File

	// the state of the external branch condition lines. tested by the BEXT
	// instruction
	EBCA uint16

	// decoded instructions indexed by address. a nil entry has not been
	// decoded or has been invalidated
	decoded [0x10000]*instructions.Decoded

	// dispatch is indexed by instruction format and then by the binding
	// value of the decoded instruction
	dispatch [instructions.NumFormats][]execute

	// whether the extended instruction set is active
	extendedISA bool

	// interrupt request line and whether an interrupt can be taken after the
	// most recent instruction
	intrq         bool
	interruptible bool

	// the instruction tick function
	tick InstructionTick

	// cumulative counts since the last reset
	Cycles       uint64
	Instructions uint64

	// the CPU has executed an HLT instruction or has gone off in the weeds.
	// requires a Reset()
	Halted bool

	LastResult Result
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// preferences argument can be nil.
func NewCPU(prefs *preferences.Preferences, mem bus.Memory) *CPU {
	mc := &CPU{
		prefs: prefs,
	}
	mc.dispatch = dispatchTables()
	mc.Plumb(mem)
	return mc
}

// Plumb a new memory system into the CPU. The decoded instruction cache is
// flushed.
func (mc *CPU) Plumb(mem bus.Memory) {
	mc.mem = mem
	mc.cache, _ = mem.(cacheable)
	mc.Flush()
}

func (mc *CPU) String() string {
	return mc.Reg.String()
}

// Reset the CPU. Registers are cleared and the program counter is set to the
// reset vector. Interrupts are disabled until an instruction that allows them
// has been executed.
func (mc *CPU) Reset() {
	mc.Reg.Reset()
	mc.Reg.R[registers.PC] = ResetVector
	mc.intrq = false
	mc.interruptible = false
	mc.Halted = false
	mc.Cycles = 0
	mc.Instructions = 0
	mc.LastResult = Result{}
	mc.Flush()
}

// SetExtendedISA activates or deactivates the extended instruction set. The
// decoded instruction cache is flushed if the state changes.
func (mc *CPU) SetExtendedISA(active bool) {
	if mc.extendedISA != active {
		mc.extendedISA = active
		mc.Flush()
	}
}

// ExtendedISA returns true if the extended instruction set is active.
func (mc *CPU) ExtendedISA() bool {
	return mc.extendedISA
}

// SetInstructionTick registers a function to be called after every step. A
// nil value removes the function.
func (mc *CPU) SetInstructionTick(tick InstructionTick) {
	mc.tick = tick
}

// Interrupt raises the interrupt request line. The interrupt is accepted at
// the beginning of the next step that follows an interruptible instruction
// while interrupts are enabled.
func (mc *CPU) Interrupt() {
	mc.intrq = true
}

// Flush the entire decoded instruction cache.
func (mc *CPU) Flush() {
	clear(mc.decoded[:])
}

// Invalidate the decoded instruction cache for the inclusive address range.
// The range wraps around the top of the address space if lo is greater than
// hi. Implements the bus.Invalidator interface.
func (mc *CPU) Invalidate(lo uint16, hi uint16) {
	for a := lo; ; a++ {
		mc.decoded[a] = nil
		if a == hi {
			break
		}
	}
}

// IsDecoded returns true if there is a cached decoding for the address.
func (mc *CPU) IsDecoded(address uint16) bool {
	return mc.decoded[address] != nil
}

// Disassemble the instruction at address without side effects. The cached
// decoding is used if there is one.
func (mc *CPU) Disassemble(address uint16) *instructions.Decoded {
	if d := mc.decoded[address]; d != nil {
		return d
	}

	var words [3]uint16
	words[0] = mc.mem.Peek(address)
	prevSDBD := mc.mem.Peek(address-1) == instructions.SDBD
	n := instructions.Classify(words[0]).Length(prevSDBD)
	for i := 1; i < n; i++ {
		words[i] = mc.mem.Peek(address + uint16(i))
	}
	return instructions.Decode(address, words, prevSDBD, mc.extendedISA)
}

func (mc *CPU) read(address uint16) uint16 {
	return mc.mem.Read(address)
}

func (mc *CPU) write(address uint16, data uint16) {
	mc.mem.Write(address, data)
}

// decode the instruction at the program counter and add it to the cache if
// possible
func (mc *CPU) decode(pc uint16) *instructions.Decoded {
	var words [3]uint16

	words[0] = mc.read(pc)

	// the previous word is peeked rather than read because it is not part of
	// the instruction
	prevSDBD := mc.Reg.Status.DBD() || mc.mem.Peek(pc-1) == instructions.SDBD

	n := instructions.Classify(words[0]).Length(prevSDBD)
	for i := 1; i < n; i++ {
		words[i] = mc.read(pc + uint16(i))
	}

	d := instructions.Decode(pc, words, prevSDBD, mc.extendedISA)

	cache := true
	if mc.cache != nil {
		cache = mc.cache.IsCacheable(pc) && mc.cache.IsCacheable(pc+uint16(n-1))
	}
	if cache {
		mc.decoded[pc] = d
	}

	return d
}

// Step executes a single instruction or accepts a pending interrupt.
func (mc *CPU) Step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if mc.Halted {
		return nil
	}

	pc := mc.Reg.R[registers.PC]

	if mc.intrq && mc.interruptible {
		mc.intrq = false
		mc.interruptible = false
		mc.write(mc.Reg.R[registers.SP], pc)
		mc.Reg.R[registers.SP]++
		mc.Reg.R[registers.PC] = InterruptVector
		mc.Cycles += interruptCycles
		mc.LastResult = Result{
			Address:   pc,
			Cycles:    interruptCycles,
			Interrupt: true,
		}
		return nil
	}

	d := mc.decoded[pc]

	// an instruction decoded without knowledge of an SDBD prefix cannot
	// handle double byte data
	if d != nil && !d.PrevSDBD && mc.Reg.Status.DBD() {
		if d.Format == instructions.Immediate || d.Format == instructions.Indirect {
			d = nil
		}
	}

	if d == nil {
		d = mc.decode(pc)
	}

	weeds := instructions.InTheWeeds(d.Words[0], mc.extendedISA)
	if weeds {
		logger.Logf(logger.Allow, "cpu", "off in the weeds: PC=%04x word=%04x", pc, d.Words[0])
		if mc.tick == nil {
			mc.Halted = true
			mc.LastResult = Result{Decoded: d, Address: pc, Weeds: true}
			if mc.prefs == nil || mc.prefs.WeedsFatal.Get().(bool) {
				return curated.Errorf(OffInTheWeeds, pc, d.Words[0])
			}
			return nil
		}
	}

	cycles := mc.perform(d)

	mc.interruptible = mc.Reg.Status.InterruptsEnabled && d.IsInterruptible()
	mc.Reg.Status.Shift()

	mc.Cycles += uint64(cycles)
	mc.Instructions++
	mc.LastResult = Result{
		Decoded: d,
		Address: pc,
		Cycles:  cycles,
		Weeds:   weeds,
	}

	return nil
}

// Run the CPU until at least the specified number of cycles have elapsed, the
// CPU halts or the instruction tick function returns false. The number of
// cycles used is returned.
func (mc *CPU) Run(ctx context.Context, cycles uint64) (uint64, error) {
	start := mc.Cycles
	for mc.Cycles-start < cycles && !mc.Halted {
		if err := mc.Step(ctx); err != nil {
			return mc.Cycles - start, err
		}
		if mc.tick != nil && !mc.tick(mc) {
			break
		}
	}
	return mc.Cycles - start, nil
}
