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

// Package logger is the central log for the emulation. Entries are short
// messages grouped by a tag naming the subsystem that created them.
//
// There is one central log, accessed through the package level functions, and
// the Logger type is exported so that tests and tools can create private
// logs. The log has a maximum number of entries and the oldest entries are
// dropped once that number is exceeded. Consecutive identical entries are
// collapsed into one entry with a repeat count.
//
// Every log request is accompanied by a Permission. Allow is the permission
// for requests that should always succeed. Other implementations are used to
// suppress logging in contexts where it would be noise, for example when the
// monitor peeks memory through the normal read path.
package logger
