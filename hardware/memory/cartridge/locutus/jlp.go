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

package locutus

import (
	"github.com/jetsetilly/locutus/crc"
	"github.com/jetsetilly/locutus/hardware/memory/bus"
	"github.com/jetsetilly/locutus/logger"
)

// Addresses and magic values of the JLP accelerator.
const (
	jlpSaveStart = 0x8023
	jlpSaveEnd   = 0x8024
	jlpSaveAddr  = 0x8025
	jlpSaveRow   = 0x8026

	jlpRAMToFlash    = 0x802d
	jlpRAMToFlashKey = 0xc0de
	jlpFlashToRAM    = 0x802e
	jlpFlashToRAMKey = 0xdec0
	jlpErase         = 0x802f
	jlpEraseKey      = 0xbeef

	jlpUnlock    = 0x8033
	jlpUnlockKey = 0x4a5a
	jlpLock      = 0x8034
	jlpLockKey   = 0x6a7a

	// the PV register is updated with the previous value of any location
	// written to
	jlpPV = 0x9f8d

	jlpCRCUpdate = 0x9ffc
	jlpCRCValue  = 0x9ffd
	jlpRand      = 0x9ffe
)

// the state of the JLP accelerator
type jlp struct {
	// whether the accelerators and JLP RAM are visible
	on bool

	// the multiply/divide registers at $9F80 - $9F8F
	regs [16]uint16

	// the CPU's extended registers. mapped to $9F90 - $9F9F if not nil
	xregs *[16]uint16

	crc16 *crc.CRC
	rand  *crc.CRC

	// the number of bus accesses to ignore following a savegame command
	sleep uint16

	flash flash
}

// advance the random number generator and return the new value
func (cart *Locutus) nextRand() uint32 {
	cart.jlp.rand.Update(jlpRandSeed, 32)
	return cart.jlp.rand.Get()
}

func (cart *Locutus) jlpRead(addr uint16) uint16 {
	switch {
	case addr >= 0x8000 && addr < jlpSaveStart:
		return 0
	case addr == jlpSaveStart:
		return cart.jlp.flash.start
	case addr == jlpSaveEnd:
		return cart.jlp.flash.end
	case addr >= jlpSaveAddr && addr < 0x8040:
		return 0
	case addr >= 0x9f80 && addr < 0x9f90:
		return cart.jlp.regs[addr&0xf]
	case addr >= 0x9f90 && addr < 0x9fa0 && cart.jlp.xregs != nil:
		return cart.jlp.xregs[addr&0xf]
	case addr >= 0x9fa0 && addr < jlpCRCValue:
		return bus.Unmapped
	case addr == jlpCRCValue:
		return uint16(cart.jlp.crc16.Get())
	case addr == jlpRand:
		return uint16(cart.nextRand())
	case addr == 0x9fff:
		return 0
	}
	return bus.Unmapped
}

// jlpPeek is the same as jlpRead() except that the random number generator
// is not advanced
func (cart *Locutus) jlpPeek(addr uint16) uint16 {
	if addr == jlpRand {
		return uint16(cart.jlp.rand.Get())
	}
	return cart.jlpRead(addr)
}

func (cart *Locutus) jlpWrite(addr uint16, data uint16) {
	// multiply and divide. results are in $9F8E and $9F8F
	//
	//	$9F80/1   s16 x s16 -> s32
	//	$9F82/3   s16 x u16 -> s32
	//	$9F84/5   u16 x s16 -> s32
	//	$9F86/7   u16 x u16 -> u32
	//	$9F88/9   s16 / s16 -> quotient, remainder
	//	$9F8A/B   u16 / u16 -> quotient, remainder
	if addr >= 0x9f80 && addr <= 0x9f8f {
		r := &cart.jlp.regs
		r[addr&0xf] = data

		product := func(p uint32) {
			r[0xe] = uint16(p)
			r[0xf] = uint16(p >> 16)
		}

		switch addr & 0xf {
		case 0, 1:
			product(uint32(int32(int16(r[0])) * int32(int16(r[1]))))
		case 2, 3:
			product(uint32(int32(int16(r[2])) * int32(r[3])))
		case 4, 5:
			product(uint32(int32(r[4]) * int32(int16(r[5]))))
		case 6, 7:
			product(uint32(r[6]) * uint32(r[7]))
		case 8, 9:
			if r[9] != 0 {
				// -32768 / -1 wraps to -32768 with no remainder
				n, d := int16(r[8]), int16(r[9])
				r[0xe] = uint16(n / d)
				r[0xf] = uint16(n % d)
			}
		case 10, 11:
			if r[11] != 0 {
				r[0xe] = r[10] / r[11]
				r[0xf] = r[10] % r[11]
			}
		}
		return
	}

	if addr >= 0x9f90 && addr <= 0x9f9f && cart.jlp.xregs != nil {
		cart.jlp.xregs[addr&0xf] = data
		return
	}

	switch {
	case addr == jlpSaveAddr:
		cart.jlp.flash.addr = data
		return
	case addr == jlpSaveRow:
		cart.jlp.flash.row = data
		return
	case addr == jlpRAMToFlash && data == jlpRAMToFlashKey:
		cart.ramToFlash()
		return
	case addr == jlpFlashToRAM && data == jlpFlashToRAMKey:
		cart.flashToRAM()
		return
	case addr == jlpErase && data == jlpEraseKey:
		cart.eraseSector()
		return
	}

	switch addr {
	case jlpCRCUpdate:
		cart.jlp.crc16.Update(uint32(data), 16)
	case jlpCRCValue:
		cart.jlp.crc16.Set(uint32(data))
	case jlpLock:
		if data == jlpLockKey {
			cart.flipJLP(false)
		}
	}
}

// switch the JLP accelerators and RAM on or off. switching to the current
// state does nothing, which means changes to the memory map made since the
// previous switch are retained
func (cart *Locutus) flipJLP(on bool) {
	if on == cart.jlp.on {
		return
	}
	cart.jlp.on = on

	if on {
		// map $8000 - $9FFF to $10000 - $11FFF of the store as 16 bit RAM
		// with no bank switching. the accelerators are visible at $8000 -
		// $803F and $9F80 - $9FFF. the page flip table is not changed
		m := uint16(0x0100)
		for para := 0x80; para <= 0x9f; para++ {
			cart.SetMemPerm(uint8(para), false, PermRead|PermWrite)
			cart.SetMemMap(uint8(para), false, m)
			m++
		}
	} else {
		// restore the most recent page flipped into chapters 8 and 9
		for chap := uint8(8); chap <= 9; chap++ {
			page := cart.bsel[chap]
			perm := cart.pflPerm[chap][page] &^ PermBankSwitch
			m := cart.pflMap[chap][page] << 4
			para := chap << 4
			for i := range uint8(16) {
				cart.SetMemMap(para+i, false, m+uint16(i))
				cart.SetMemPerm(para+i, false, perm)
			}
		}
	}

	logger.Logf(logger.Allow, "jlp", "accelerators switched on: %v", on)

	cart.invalidate(0x8000, 0x9fff)
}

// JLPOn returns true if the JLP accelerators are visible.
func (cart *Locutus) JLPOn() bool {
	return cart.jlp.on
}

// Sleeping returns the number of bus accesses that will be ignored before
// the JLP finishes the most recent savegame command.
func (cart *Locutus) Sleeping() int {
	return int(cart.jlp.sleep)
}
