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

// Package prefs holds the preference values of the emulation and persists them
// to disk.
//
// Preference values are of type Bool, Int or String. Each is added to a Disk
// instance under a key. Saving the Disk writes every value to the file as a
// "key :: value" line. Entries in the file that are not known to the Disk
// instance are preserved, so more than one Disk can share a file.
//
// Values can be overridden for a single session with the command line stack.
// The string given to PushCommandLineStack() has the form:
//
//	locutus.randseed::100; cpu.weeds.fatal::false
//
// A value on the stack takes priority over the value on disk when the Disk is
// loaded.
package prefs
