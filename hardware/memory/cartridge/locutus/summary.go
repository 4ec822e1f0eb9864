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

package locutus

import (
	"fmt"
	"strings"
)

// Summary returns a description of the cartridge suitable for display to
// the user. The description includes the metadata, the feature flags and the
// memory map.
func (cart *Locutus) Summary() string {
	s := strings.Builder{}

	s.WriteString(cart.metadata.String())
	s.WriteString(fmt.Sprintf("%-16s%s\n", "feature flags", cart.FeatureFlags()))
	if cart.UID != 0 {
		s.WriteString(fmt.Sprintf("%-16s%016x\n", "uid", cart.UID))
	}
	if cart.scrambled {
		s.WriteString(fmt.Sprintf("%-16s%s\n", "scrambled", cart.DRUID()))
	}
	if start, end := cart.FlashRows(); end > 0 {
		s.WriteString(fmt.Sprintf("%-16srows %d to %d\n", "flash", start, end))
	}

	d := cart.MemoryDiagram()
	for _, c := range d.Chapters {
		for _, sp := range c.Spans {
			s.WriteString(fmt.Sprintf("%s => %s %s\n", sp.CPU, sp.Store, sp.Perm))
		}
		for _, p := range c.Pages {
			s.WriteString(fmt.Sprintf("$%X000 page %X => %s %s\n", c.Chapter, p.Page, p.Store, p.Perm))
		}
	}

	return s.String()
}
