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

package metadata

import (
	"fmt"
	"strings"
)

// Metadata for a cartridge. Every field is optional.
type Metadata struct {
	Name      string
	ShortName string

	Authors         []string
	GameArtists     []string
	Composers       []string
	SFXArtists      []string
	VoiceActors     []string
	DocWriters      []string
	Conceptualizers []string
	BoxArtists      []string
	MoreInfo        []string
	Publishers      []string
	ReleaseDates    []Date
	Licenses        []string
	Descriptions    []string
	BuildDates      []Date
	Versions        []string

	// key=value pairs for variables that have no other home
	Misc []string

	ECS   Compat
	Voice Compat
	Intv2 Compat

	// keyboard component
	KC Compat

	// TutorVision and INTV88 SuperPro
	TV Compat

	// LTOMapper and JLPFlash are negative when unspecified
	LTOMapper int
	JLPAccel  JLPAccel
	JLPFlash  int

	// IsDefaults is false if at least one compatibility setting has been
	// specified explicitly, whether or not the setting is the same as the
	// default
	IsDefaults bool
}

// NewMetadata returns metadata with every compatibility setting at its
// default value.
func NewMetadata() *Metadata {
	return &Metadata{
		ECS:        Tolerates,
		Voice:      Tolerates,
		Intv2:      Tolerates,
		KC:         Tolerates,
		TV:         Tolerates,
		JLPAccel:   JLPDisabled,
		IsDefaults: true,
	}
}

// SetUnspecified sets every compatibility setting to unspecified.
func (m *Metadata) SetUnspecified() {
	m.ECS = CompatUnspecified
	m.Voice = CompatUnspecified
	m.Intv2 = CompatUnspecified
	m.KC = CompatUnspecified
	m.TV = CompatUnspecified
	m.JLPAccel = JLPUnspecified
	m.JLPFlash = -1
	m.LTOMapper = -1
	m.IsDefaults = true
}

// SetUnspecifiedToDefaults replaces unspecified compatibility settings with
// their default values. The IsDefaults field is updated and returned.
func (m *Metadata) SetUnspecifiedToDefaults() bool {
	isDefaults := m.IsDefaults

	for _, c := range []*Compat{&m.ECS, &m.Voice, &m.Intv2, &m.KC, &m.TV} {
		if *c == CompatUnspecified {
			*c = Tolerates
		} else {
			isDefaults = false
		}
	}

	if m.LTOMapper < 0 {
		m.LTOMapper = 0
	} else {
		isDefaults = false
	}

	if m.JLPAccel == JLPUnspecified && m.JLPFlash < 0 {
		m.JLPAccel = JLPDisabled
		m.JLPFlash = 0
	} else {
		isDefaults = false

		if m.JLPAccel == JLPUnspecified {
			m.JLPAccel = JLPDisabled
		}

		if m.JLPFlash < 0 {
			if m.JLPAccel&2 == 2 {
				m.JLPFlash = 4
			} else {
				m.JLPFlash = 0
			}
		}

		// a flash size implies a mode that supports flash
		if m.JLPFlash > 0 {
			if m.JLPAccel == JLPDisabled {
				m.JLPAccel = JLPAccelOff
			} else {
				m.JLPAccel = JLPAccelFlashOn
			}
		}
	}

	m.IsDefaults = isDefaults
	return isDefaults
}

// Empty returns true if there is no descriptive metadata. The compatibility
// settings are not considered.
func (m *Metadata) Empty() bool {
	return m.Name == "" && m.ShortName == "" &&
		len(m.Authors) == 0 && len(m.GameArtists) == 0 &&
		len(m.Composers) == 0 && len(m.SFXArtists) == 0 &&
		len(m.VoiceActors) == 0 && len(m.DocWriters) == 0 &&
		len(m.Conceptualizers) == 0 && len(m.BoxArtists) == 0 &&
		len(m.MoreInfo) == 0 && len(m.Publishers) == 0 &&
		len(m.ReleaseDates) == 0 && len(m.Licenses) == 0 &&
		len(m.Descriptions) == 0 && len(m.BuildDates) == 0 &&
		len(m.Versions) == 0 && len(m.Misc) == 0
}

// Clear all descriptive metadata. The compatibility settings are not changed.
func (m *Metadata) Clear() {
	m.Name = ""
	m.ShortName = ""
	m.Authors = nil
	m.GameArtists = nil
	m.Composers = nil
	m.SFXArtists = nil
	m.VoiceActors = nil
	m.DocWriters = nil
	m.Conceptualizers = nil
	m.BoxArtists = nil
	m.MoreInfo = nil
	m.Publishers = nil
	m.ReleaseDates = nil
	m.Licenses = nil
	m.Descriptions = nil
	m.BuildDates = nil
	m.Versions = nil
	m.Misc = nil
}

func (m *Metadata) String() string {
	s := strings.Builder{}

	str := func(label string, v string) {
		if v != "" {
			s.WriteString(fmt.Sprintf("%-16s%s\n", label, v))
		}
	}
	list := func(label string, v []string) {
		for _, e := range v {
			str(label, e)
		}
	}
	dates := func(label string, v []Date) {
		for _, d := range v {
			str(label, d.String())
		}
	}

	str("name", m.Name)
	str("short name", m.ShortName)
	list("author", m.Authors)
	list("game art by", m.GameArtists)
	list("music by", m.Composers)
	list("sfx by", m.SFXArtists)
	list("voices by", m.VoiceActors)
	list("docs by", m.DocWriters)
	list("concept by", m.Conceptualizers)
	list("box art by", m.BoxArtists)
	list("more info at", m.MoreInfo)
	list("publisher", m.Publishers)
	dates("release date", m.ReleaseDates)
	dates("build date", m.BuildDates)
	list("version", m.Versions)
	list("license", m.Licenses)
	list("description", m.Descriptions)
	list("misc", m.Misc)

	str("ecs", m.ECS.String())
	str("intellivoice", m.Voice.String())
	str("intellivision 2", m.Intv2.String())
	str("keyboard comp.", m.KC.String())
	str("tutorvision", m.TV.String())
	str("lto mapper", fmt.Sprintf("%v", m.LTOMapper > 0))
	str("jlp", m.JLPAccel.String())
	str("jlp flash", fmt.Sprintf("%d sectors", max(m.JLPFlash, 0)))
	if m.IsDefaults {
		str("flags", "defaults")
	} else {
		str("flags", "explicit")
	}

	return s.String()
}
