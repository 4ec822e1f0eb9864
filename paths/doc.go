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

// Package paths prepares paths to Locutus resources, such as the preferences
// file and JLP flash images.
//
// If the base resource directory ".locutus" exists in the current directory
// then that is used. Otherwise the directory is placed in the user's
// configuration directory, as returned by os.UserConfigDir(). On a Linux
// system the following:
//
//	paths.ResourcePath("flash", "game.jlp")
//
// returns /home/user/.config/locutus/flash/game.jlp
package paths
