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

// Package statsview is an optional package that launches a server showing
// runtime statistics of the running emulation. The server is only available
// when the program is compiled with the statsview build tag.
//
//	go build -tags=statsview
//
// Available() can be used to check whether the package was compiled with the
// tag. When it was not, Launch() does nothing.
package statsview
