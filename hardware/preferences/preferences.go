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

package preferences

import (
	"github.com/jetsetilly/locutus/paths"
	"github.com/jetsetilly/locutus/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware packages.
type Preferences struct {
	dsk *prefs.Disk

	// whether the CPU running into an invalid opcode causes Run() to return
	// an error. when false the condition is logged and the CPU halts
	WeedsFatal prefs.Bool

	// keep a JLP flash backing file alongside the cartridge file
	FlashFile prefs.Bool

	// seed for the random number generator used by the JLP accelerator. a
	// value of zero means that the generator starts with the value used by
	// the real hardware
	RandSeed prefs.Int

	// the console timing. either NTSC or PAL
	Spec prefs.String
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("cpu.weeds.fatal", &p.WeedsFatal)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("locutus.jlp.flashfile", &p.FlashFile)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("locutus.randseed", &p.RandSeed)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.spec", &p.Spec)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.WeedsFatal.Set(true)
	p.FlashFile.Set(true)
	p.RandSeed.Set(0)
	p.Spec.Set("NTSC")
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
