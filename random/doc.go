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

// Package random is the source of random numbers for the emulation. It is
// used for the jitter applied to JLP command latencies and to seed the JLP
// random number register.
//
// The source can be seeded explicitly, which makes emulation runs
// reproducible for testing. A seed of zero means the source is seeded from
// the current time.
package random
