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

// Package hardware is the base package for the Intellivision emulation. It and
// its sub-packages contain everything required for a headless emulation.
//
// The Intellivision type is the root of the emulation and contains external
// references to all the sub-systems. From here, the emulation can either be
// started to run for a number of cycles (with an optional instruction tick to
// check for continuation) or it can be stepped instruction by instruction.
//
// The video and audio chips are not emulated. The vertical blank interrupt
// that the STIC raises every frame is emulated because most programs do not
// run without it.
package hardware
