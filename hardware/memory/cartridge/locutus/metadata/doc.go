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

// Package metadata describes a cartridge: its title, the people who made it,
// its release dates and its compatibility with the hardware attached to the
// console.
//
// The Metadata type is the single source of truth for the hardware
// compatibility flags of a Locutus cartridge. The packed feature flags found
// in LUIGI files are derived from it when required.
//
// Metadata can be converted to and from the tag-length-value encoding used by
// the metadata block of LUIGI files, and to and from the [vars] section of a
// CFG file.
package metadata
