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

package prefs

import "slices"

// preference keys that are no longer used. they are dropped from the
// preferences file on the next save.
var defunct = []string{
	"locutus.jlp.sleep",
	"cpu.cache",
}

func isDefunct(s string) bool {
	return slices.Contains(defunct, s)
}
