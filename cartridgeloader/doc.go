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

// Package cartridgeloader is used to specify the data that is to be attached
// to the emulated Intellivision.
//
// Two file types are supported: LUIGI files and BIN files with an optional
// CFG file. The type of file is decided by the filename extension and, for
// files with an unrecognised extension, by the content of the file.
//
// The simplest use of the package:
//
//	cl := cartridgeloader.NewLoader("roms/game.bin")
//	err := cl.Load()
//	if err != nil {
//		return err
//	}
//	err = cl.Attach(cart)
//
// The CFG file for a BIN file is found by replacing the extension of the BIN
// filename with ".cfg". The CFG file is optional.
package cartridgeloader
