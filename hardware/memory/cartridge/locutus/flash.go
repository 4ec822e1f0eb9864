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
	"errors"
	"io"
	"os"

	"github.com/jetsetilly/locutus/curated"
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/locutus/metadata"
	"github.com/jetsetilly/locutus/logger"
)

// Error patterns.
const (
	FlashFileError = "Locutus JLP: Unable to initialize backing file: %v"
)

// JLP flash geometry. A row is 96 words stored as 192 bytes and a sector is 8
// rows. The first row number is arbitrary but must be a multiple of 8.
const (
	FlashFirstRow   = 224
	FlashRowBytes   = 192
	FlashRowWords   = FlashRowBytes / 2
	FlashSectorRows = 8
)

// the value of the address and row registers before they are first written
const flashBadRegister = 0xbadd

// the range of JLP RAM that can be copied to and from flash
const (
	flashRAMLo = 0x8040
	flashRAMHi = 0x9f7f
)

// the JLP flash memory and the optional backing file
type flash struct {
	// the first and last row numbers
	start uint16
	end   uint16

	// registers written by the program to select the RAM address and the
	// flash row for the next command
	addr uint16
	row  uint16

	img  []byte
	path string
	file *os.File
}

// SetFlashFile initialises the JLP flash memory using the flash size in the
// metadata. If the path is not empty then the flash is backed by the file.
// An existing file is loaded into flash and a backup of the file is made
// with the same name plus a trailing tilde.
//
// Flash is not available if the JLP mode is disabled or if the flash size is
// zero.
func (cart *Locutus) SetFlashFile(path string) error {
	fl := &cart.jlp.flash

	if err := cart.CloseFlashFile(); err != nil {
		logger.Logf(logger.Allow, "jlp", "%v", err)
	}

	sectors := 0
	if cart.jlpAccel() != metadata.JLPDisabled {
		sectors = max(cart.metadata.JLPFlash, 0)
	}

	if sectors == 0 {
		fl.start = 0
		fl.end = 0
		fl.img = nil
		fl.path = ""
		return nil
	}

	fl.start = FlashFirstRow
	fl.end = uint16(FlashFirstRow + sectors*FlashSectorRows - 1)
	fl.addr = flashBadRegister
	fl.row = flashBadRegister
	fl.img = make([]byte, FlashRowBytes*FlashSectorRows*sectors)
	for i := range fl.img {
		fl.img[i] = 0xff
	}
	fl.path = path

	logger.Logf(logger.Allow, "jlp", "flash: %d sectors (rows %d to %d)", sectors, fl.start, fl.end)

	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return curated.Errorf(FlashFileError, err)
	}

	// a short file is fine. the remainder of the image is erased flash
	_, err = io.ReadFull(f, fl.img)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		logger.Logf(logger.Allow, "jlp", "flash: could not read %s: %v", path, err)
	}

	err = os.WriteFile(path+"~", fl.img, 0o644)
	if err != nil {
		logger.Logf(logger.Allow, "jlp", "flash: could not write backup: %v", err)
	}

	n, err := f.WriteAt(fl.img, 0)
	if err != nil || n != len(fl.img) {
		_ = f.Close()
		if err == nil {
			err = io.ErrShortWrite
		}
		return curated.Errorf(FlashFileError, err)
	}

	fl.file = f
	logger.Logf(logger.Allow, "jlp", "flash: backed by %s", path)

	return nil
}

// CloseFlashFile closes the flash backing file, if there is one.
func (cart *Locutus) CloseFlashFile() error {
	fl := &cart.jlp.flash
	if fl.file == nil {
		return nil
	}
	err := fl.file.Close()
	fl.file = nil
	if err != nil {
		return curated.Errorf(FlashFileError, err)
	}
	return nil
}

// FlashRows returns the first and last flash row numbers. Both values are
// zero if flash is not available.
func (cart *Locutus) FlashRows() (uint16, uint16) {
	return cart.jlp.flash.start, cart.jlp.flash.end
}

// FlashImage returns the contents of flash memory. The slice should not be
// modified.
func (cart *Locutus) FlashImage() []byte {
	return cart.jlp.flash.img
}

// check the savegame registers before a command. the RAM address is only
// checked for commands that access RAM
func (cart *Locutus) flashValidate(checkAddr bool) bool {
	fl := &cart.jlp.flash
	if fl.row < fl.start || fl.row > fl.end {
		return false
	}
	if checkAddr && (fl.addr < flashRAMLo || uint32(fl.addr)+FlashRowWords-1 > flashRAMHi) {
		return false
	}
	return true
}

// write part of the image through to the backing file
func (cart *Locutus) flashWriteThrough(offset int, length int) {
	fl := &cart.jlp.flash
	if fl.file == nil {
		return
	}
	_, err := fl.file.WriteAt(fl.img[offset:offset+length], int64(offset))
	if err != nil {
		logger.Logf(logger.Allow, "jlp", "flash: could not update %s: %v", fl.path, err)
	}
}

// copy a row of JLP RAM to a row of flash. the row must have been erased
func (cart *Locutus) ramToFlash() {
	fl := &cart.jlp.flash

	cart.jlp.sleep = uint16(400 + cart.nextRand()%200)
	if !cart.flashValidate(true) {
		return
	}

	idx := int(fl.row-fl.start) * FlashRowBytes

	for _, b := range fl.img[idx : idx+FlashRowBytes] {
		if b != 0xff {
			return
		}
	}

	// little-endian
	for i := range FlashRowWords {
		v := cart.ReadRAM(cart.translate(fl.addr + uint16(i)))
		fl.img[idx+i*2] = uint8(v)
		fl.img[idx+i*2+1] = uint8(v >> 8)
	}

	cart.flashWriteThrough(idx, FlashRowBytes)
}

// copy a row of flash to JLP RAM
func (cart *Locutus) flashToRAM() {
	fl := &cart.jlp.flash

	cart.jlp.sleep = uint16(10 + cart.nextRand()%20)
	if !cart.flashValidate(true) {
		return
	}

	idx := int(fl.row-fl.start) * FlashRowBytes

	for i := range FlashRowWords {
		v := uint16(fl.img[idx+i*2]) | uint16(fl.img[idx+i*2+1])<<8
		cart.WriteRAM(cart.translate(fl.addr+uint16(i)), v)
	}
}

// erase the sector containing the selected row
func (cart *Locutus) eraseSector() {
	fl := &cart.jlp.flash

	cart.jlp.sleep = uint16(800 + cart.nextRand()%200)
	if !cart.flashValidate(false) {
		return
	}

	idx := int((fl.row-fl.start)&^(FlashSectorRows-1)) * FlashRowBytes
	n := FlashRowBytes * FlashSectorRows

	for i := range fl.img[idx : idx+n] {
		fl.img[idx+i] = 0xff
	}

	cart.flashWriteThrough(idx, n)
}
