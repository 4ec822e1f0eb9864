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
	"github.com/jetsetilly/locutus/hardware/memory"
)

// the STIC handshake register. a write to this address during vertical blank
// enables the display
const sticHandshake = 0x0020

// vblank raises the CPU interrupt at the start of every frame. this is the
// only part of the STIC that is emulated
type vblank struct {
	frame     uint64
	interrupt func()

	// number of frames since reset
	frames uint64

	// the program has written to the handshake register since the most
	// recent vertical blank
	handshake bool
}

func newVBlank(frame uint64, interrupt func()) *vblank {
	return &vblank{
		frame:     frame,
		interrupt: interrupt,
	}
}

func (vb *vblank) peripheral() *memory.Peripheral {
	return &memory.Peripheral{
		Name:    "VBLANK",
		Lo:      sticHandshake,
		Hi:      sticHandshake,
		Write:   vb.write,
		Poke:    vb.write,
		Reset:   vb.reset,
		MinTick: vb.frame,
		MaxTick: vb.frame,
		Tick:    vb.tick,
	}
}

func (vb *vblank) write(_ uint16, _ uint16) {
	vb.handshake = true
}

func (vb *vblank) reset() {
	vb.frames = 0
	vb.handshake = false
}

func (vb *vblank) tick(_ uint64) {
	vb.frames++
	vb.handshake = false
	vb.interrupt()
}
