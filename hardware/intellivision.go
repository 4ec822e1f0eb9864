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

package hardware

import (
	"github.com/jetsetilly/locutus/cartridgeloader"
	"github.com/jetsetilly/locutus/curated"
	"github.com/jetsetilly/locutus/hardware/clocks"
	"github.com/jetsetilly/locutus/hardware/cpu"
	"github.com/jetsetilly/locutus/hardware/instance"
	"github.com/jetsetilly/locutus/hardware/memory"
	"github.com/jetsetilly/locutus/hardware/memory/memorymap"
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/locutus"
	"github.com/jetsetilly/locutus/logger"
)

// Error patterns.
const (
	NoCartridge = "intellivision: no cartridge attached"
	MemoryError = "intellivision: memory: %v"
)

// Intellivision is the main container for the emulated components of the
// Intellivision console.
type Intellivision struct {
	Instance *instance.Instance

	// the timing of the console
	Spec clocks.Spec

	CPU *cpu.CPU
	Mem *memory.Memory

	// the attached cartridge. will be nil until AttachCartridge() has been
	// called successfully
	Cart *locutus.Locutus

	Scratchpad *memory.RAM
	SystemRAM  *memory.RAM

	// the EXEC ROM is not part of the emulation. it must be supplied with
	// AttachExec() if the cartridge relies on it
	Exec *memory.ROM

	vblank *vblank

	// the instruction tick function installed by SetInstructionTick(). the
	// stopped flag is set when the function returns false
	tick    cpu.InstructionTick
	stopped bool
}

// NewIntellivision creates a new Intellivision and everything associated
// with the hardware. The memory system has no cartridge until
// AttachCartridge() is called.
func NewIntellivision(ins *instance.Instance) (*Intellivision, error) {
	ivm := &Intellivision{
		Instance:   ins,
		Spec:       clocks.Lookup(ins.Prefs.Spec.Get().(string)),
		Scratchpad: memory.NewRAM(memorymap.ScratchRAM.String(), memorymap.OriginScratchRAM, memorymap.MemtopScratchRAM, 8),
		SystemRAM:  memory.NewRAM(memorymap.SystemRAM.String(), memorymap.OriginSystemRAM, memorymap.MemtopSystemRAM, 16),
	}

	ivm.CPU = cpu.NewCPU(ins.Prefs, memory.NewMemory())
	ivm.vblank = newVBlank(ivm.Spec.Frame, ivm.CPU.Interrupt)

	err := ivm.plumb()
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "intellivision", "created with %s timing (%.6f MHz)", ivm.Spec.ID, ivm.Spec.Clock)

	return ivm, nil
}

// build the memory system and connect it to the CPU. the cartridge claims
// every address so it is registered last
func (ivm *Intellivision) plumb() error {
	mem := memory.NewMemory()

	peripherals := []*memory.Peripheral{
		ivm.Scratchpad.Peripheral(),
		ivm.SystemRAM.Peripheral(),
		ivm.vblank.peripheral(),
	}
	if ivm.Exec != nil {
		peripherals = append(peripherals, ivm.Exec.Peripheral())
	}
	if ivm.Cart != nil {
		peripherals = append(peripherals, ivm.Cart.Peripheral())
	}

	for _, p := range peripherals {
		if err := mem.Register(p); err != nil {
			return curated.Errorf(MemoryError, err)
		}
	}

	mem.Plumb(ivm.CPU)
	ivm.CPU.Plumb(mem)
	if ivm.Cart != nil {
		ivm.Cart.Plumb(ivm.CPU)
		ivm.Cart.SetXRegs(&ivm.CPU.Reg.X)
	}
	ivm.Mem = mem

	return nil
}

// AttachCartridge loads the cartridge data specified by the loader and
// replaces any previously attached cartridge. The Intellivision is reset.
//
// If the flashfile preference is set, the JLP flash memory of the cartridge
// is backed by a file alongside the cartridge file.
func (ivm *Intellivision) AttachCartridge(cl *cartridgeloader.Loader) error {
	err := cl.Load()
	if err != nil {
		return err
	}

	cart := locutus.NewLocutus(ivm.Instance.Prefs)
	err = cl.Attach(cart)
	if err != nil {
		return err
	}

	var flash string
	if ivm.Instance.Prefs.FlashFile.Get().(bool) {
		flash = cl.FlashFilename()
	}
	err = cart.SetFlashFile(flash)
	if err != nil {
		return err
	}

	if err := ivm.Detach(); err != nil {
		logger.Log(logger.Allow, "intellivision", err)
	}

	ivm.Cart = cart
	err = ivm.plumb()
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "intellivision", "attached %s", cl.ShortName())

	return ivm.Reset()
}

// AttachExec installs the EXEC ROM at the reset vector. The EXEC ROM takes
// priority over the cartridge for the addresses it covers. The Intellivision
// should be reset after attaching the EXEC.
func (ivm *Intellivision) AttachExec(data []uint16) error {
	if len(data) == 0 {
		return curated.Errorf(MemoryError, "empty EXEC ROM")
	}
	ivm.Exec = memory.NewROM("EXEC", cpu.ResetVector, data)
	return ivm.plumb()
}

// Detach the cartridge. The JLP flash backing file is closed.
func (ivm *Intellivision) Detach() error {
	if ivm.Cart == nil {
		return nil
	}
	err := ivm.Cart.CloseFlashFile()
	ivm.Cart = nil
	if perr := ivm.plumb(); perr != nil {
		return perr
	}
	return err
}

// Reset emulates the reset button on the console. Every peripheral is reset
// before the CPU. The extended instruction set is activated if the cartridge
// requires it.
func (ivm *Intellivision) Reset() error {
	if ivm.Cart == nil {
		return curated.Errorf(NoCartridge)
	}

	ivm.Mem.Reset()
	ivm.CPU.Reset()
	ivm.CPU.SetExtendedISA(ivm.Cart.LTOISA())

	return nil
}

// SetInstructionTick installs a function that is called after every
// instruction. Run() returns when the function returns false. A nil value
// removes the function.
func (ivm *Intellivision) SetInstructionTick(tick cpu.InstructionTick) {
	ivm.tick = tick
	if tick == nil {
		ivm.CPU.SetInstructionTick(nil)
		return
	}
	ivm.CPU.SetInstructionTick(func(mc *cpu.CPU) bool {
		if !ivm.tick(mc) {
			ivm.stopped = true
			return false
		}
		return true
	})
}

// Frames returns the number of vertical blanks since the last reset.
func (ivm *Intellivision) Frames() uint64 {
	return ivm.vblank.frames
}
