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

import "strings"

func clampCompat(v int) int {
	return min(max(v, 0), 3)
}

func remapECS(v int) int {
	if v == 0 {
		return int(Tolerates)
	}
	return int(Requires)
}

func remapVoice(v int) int {
	if v == 0 {
		return int(Tolerates)
	}
	return int(Enhanced)
}

func remapIntv2(v int) int {
	if v == 0 {
		return int(Incompatible)
	}
	return int(Tolerates)
}

func clampJLPFlash(v int) int {
	return min(max(v, 0), JLPFlashMax)
}

// a single entry in the table that associates variable names with metadata
// fields. only one of the field pointers is used
type mapping struct {
	name string

	str   func(m *Metadata) *string
	strs  func(m *Metadata) *[]string
	dates func(m *Metadata) *[]Date
	num   func(m *Metadata) *int
	remap func(int) int
}

func compatField(f func(m *Metadata) *Compat) func(m *Metadata) *int {
	return func(m *Metadata) *int {
		return (*int)(f(m))
	}
}

var mappings = []mapping{
	{name: "name", str: func(m *Metadata) *string { return &m.Name }},
	{name: "short_name", str: func(m *Metadata) *string { return &m.ShortName }},
	{name: "author", strs: func(m *Metadata) *[]string { return &m.Authors }},
	{name: "game_art_by", strs: func(m *Metadata) *[]string { return &m.GameArtists }},
	{name: "music_by", strs: func(m *Metadata) *[]string { return &m.Composers }},
	{name: "sfx_by", strs: func(m *Metadata) *[]string { return &m.SFXArtists }},
	{name: "voices_by", strs: func(m *Metadata) *[]string { return &m.VoiceActors }},
	{name: "docs_by", strs: func(m *Metadata) *[]string { return &m.DocWriters }},
	{name: "concept_by", strs: func(m *Metadata) *[]string { return &m.Conceptualizers }},
	{name: "box_art_by", strs: func(m *Metadata) *[]string { return &m.BoxArtists }},
	{name: "more_info_at", strs: func(m *Metadata) *[]string { return &m.MoreInfo }},
	{name: "publisher", strs: func(m *Metadata) *[]string { return &m.Publishers }},
	{name: "license", strs: func(m *Metadata) *[]string { return &m.Licenses }},
	{name: "desc", strs: func(m *Metadata) *[]string { return &m.Descriptions }},
	{name: "description", strs: func(m *Metadata) *[]string { return &m.Descriptions }},
	{name: "version", strs: func(m *Metadata) *[]string { return &m.Versions }},
	{name: "year", dates: func(m *Metadata) *[]Date { return &m.ReleaseDates }},
	{name: "release_date", dates: func(m *Metadata) *[]Date { return &m.ReleaseDates }},
	{name: "build_date", dates: func(m *Metadata) *[]Date { return &m.BuildDates }},
	{name: "ecs", num: compatField(func(m *Metadata) *Compat { return &m.ECS }), remap: remapECS},
	{name: "ecs_compat", num: compatField(func(m *Metadata) *Compat { return &m.ECS }), remap: clampCompat},
	{name: "voice", num: compatField(func(m *Metadata) *Compat { return &m.Voice }), remap: remapVoice},
	{name: "voice_compat", num: compatField(func(m *Metadata) *Compat { return &m.Voice }), remap: clampCompat},
	{name: "intv2", num: compatField(func(m *Metadata) *Compat { return &m.Intv2 }), remap: remapIntv2},
	{name: "intv2_compat", num: compatField(func(m *Metadata) *Compat { return &m.Intv2 }), remap: clampCompat},
	{name: "kc_compat", num: compatField(func(m *Metadata) *Compat { return &m.KC }), remap: clampCompat},
	{name: "tv_compat", num: compatField(func(m *Metadata) *Compat { return &m.TV }), remap: clampCompat},
	{name: "lto_mapper", num: func(m *Metadata) *int { return &m.LTOMapper }, remap: clampCompat},
	{name: "jlp", num: func(m *Metadata) *int { return (*int)(&m.JLPAccel) }, remap: clampCompat},
	{name: "jlp_accel", num: func(m *Metadata) *int { return (*int)(&m.JLPAccel) }, remap: clampCompat},
	{name: "jlpflash", num: func(m *Metadata) *int { return &m.JLPFlash }, remap: clampJLPFlash},
	{name: "jlp_flash", num: func(m *Metadata) *int { return &m.JLPFlash }, remap: clampJLPFlash},
}

func isMappedName(name string) bool {
	for _, mp := range mappings {
		if mp.name == name {
			return true
		}
	}
	return false
}

// FromVars creates metadata from the variables in the [vars] section of a CFG
// file. Where a variable has been specified more than once, string fields
// take the first value and numeric fields take the value found for the last
// mapping that applies. Variables with no metadata field are kept as
// "name=value" entries in the Misc field.
//
// Compatibility settings not mentioned by any variable are set to their
// defaults.
func FromVars(vars []Var) *Metadata {
	m := &Metadata{}
	m.SetUnspecified()

	for _, mp := range mappings {
		switch {
		case mp.str != nil:
			p := mp.str(m)
			if *p != "" {
				continue
			}
			for _, v := range vars {
				if s, ok := v.Str(); ok && v.Name == mp.name {
					*p = s
					break
				}
			}

		case mp.strs != nil:
			p := mp.strs(m)
			for _, v := range vars {
				if s, ok := v.Str(); ok && v.Name == mp.name {
					*p = append(*p, s)
				}
			}

		case mp.dates != nil:
			p := mp.dates(m)
			for _, v := range vars {
				if d, ok := v.Date(); ok && v.Name == mp.name {
					*p = append(*p, d)
				}
			}

		case mp.num != nil:
			for _, v := range vars {
				if v.Name != mp.name {
					continue
				}
				n, ok := v.Dec()
				if !ok {
					var h uint32
					h, ok = v.Hex()
					n = int(h)
				}
				if ok {
					*mp.num(m) = mp.remap(n)
					break
				}
			}
		}
	}

	for _, v := range vars {
		if s, ok := v.Str(); ok && !isMappedName(v.Name) {
			m.Misc = append(m.Misc, v.Name+"="+s)
		}
	}

	m.SetUnspecifiedToDefaults()

	return m
}

// a compatibility level as it is expressed as a variable. the explicit flag
// means that the variable is only output if the metadata is not the defaults
type compatVar struct {
	name     string
	value    int
	explicit bool
}

// indexed by compatibility level plus one
type compatVars [5]compatVar

var (
	ecsVars = compatVars{
		{"ecs_compat", 1, true},
		{"ecs", 0, true},
		{"ecs_compat", 1, true},
		{"ecs_compat", 2, false},
		{"ecs", 1, false},
	}
	voiceVars = compatVars{
		{"voice_compat", 1, true},
		{"voice_compat", 0, false},
		{"voice", 0, true},
		{"voice", 1, false},
		{"voice_compat", 3, false},
	}
	intv2Vars = compatVars{
		{"intv2", 1, true},
		{"intv2", 0, false},
		{"intv2", 1, true},
		{"intv2_compat", 2, false},
		{"intv2_compat", 3, false},
	}
)

func plainCompatVars(name string) compatVars {
	return compatVars{
		{name, 1, true},
		{name, 0, false},
		{name, 1, true},
		{name, 2, false},
		{name, 3, false},
	}
}

// Vars is the reverse of FromVars(). Compatibility settings that are the
// same as the defaults are only included if the IsDefaults field is false.
func (m *Metadata) Vars() []Var {
	var vars []Var

	explicit := !m.IsDefaults

	compat := func(tbl compatVars, c Compat) {
		idx := int(c) + 1
		if idx < 0 || idx >= len(tbl) {
			return
		}
		e := tbl[idx]
		if !e.explicit || explicit {
			vars = append(vars, NewVarDec(e.name, e.value))
		}
	}

	compat(ecsVars, m.ECS)
	compat(voiceVars, m.Voice)
	compat(intv2Vars, m.Intv2)
	compat(plainCompatVars("kc_compat"), m.KC)
	compat(plainCompatVars("tv_compat"), m.TV)

	if m.LTOMapper > 0 || explicit {
		vars = append(vars, NewVarDec("lto_mapper", m.LTOMapper))
	}
	if m.JLPAccel > 0 || explicit {
		vars = append(vars, NewVarDec("jlp_accel", int(m.JLPAccel)))
	}
	if m.JLPFlash > 0 || explicit {
		vars = append(vars, NewVarDec("jlp_flash", m.JLPFlash))
	}

	if m.Name != "" {
		vars = append(vars, NewVarString("name", m.Name))
	}
	if m.ShortName != "" {
		vars = append(vars, NewVarString("short_name", m.ShortName))
	}

	strs := func(name string, v []string) {
		for _, s := range v {
			vars = append(vars, NewVarString(name, s))
		}
	}
	dates := func(name string, v []Date) {
		for _, d := range v {
			if !d.IsZero() {
				vars = append(vars, NewVarDate(name, d))
			}
		}
	}

	strs("author", m.Authors)
	strs("game_art_by", m.GameArtists)
	strs("music_by", m.Composers)
	strs("sfx_by", m.SFXArtists)
	strs("voices_by", m.VoiceActors)
	strs("docs_by", m.DocWriters)
	strs("concept_by", m.Conceptualizers)
	strs("box_art_by", m.BoxArtists)
	strs("more_info_at", m.MoreInfo)
	strs("publisher", m.Publishers)
	dates("release_date", m.ReleaseDates)
	dates("build_date", m.BuildDates)
	strs("license", m.Licenses)
	strs("description", m.Descriptions)
	strs("version", m.Versions)

	for _, kv := range m.Misc {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars = append(vars, NewVarString(k, v))
		}
	}

	return vars
}
