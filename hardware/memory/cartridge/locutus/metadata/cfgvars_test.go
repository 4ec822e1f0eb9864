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

package metadata_test

import (
	"testing"

	"github.com/jetsetilly/locutus/hardware/memory/cartridge/locutus/metadata"
	"github.com/jetsetilly/locutus/test"
)

func TestFromVars(t *testing.T) {
	vars := []metadata.Var{
		metadata.ParseVar("name", `"Space Patrol"`),
		metadata.ParseVar("name", `"Ignored"`),
		metadata.ParseVar("author", `"Joe Zbiciak"`),
		metadata.ParseVar("author", `"Arnauld Chevallier"`),
		metadata.ParseVar("year", "2007"),
		metadata.ParseVar("ecs", "1"),
		metadata.ParseVar("voice", "0"),
		metadata.ParseVar("kc_compat", "9"),
		metadata.ParseVar("foo", "bar"),
	}

	m := metadata.FromVars(vars)
	test.ExpectEquality(t, m.Name, "Space Patrol")
	test.ExpectEquality(t, len(m.Authors), 2)
	test.ExpectEquality(t, len(m.ReleaseDates), 1)
	test.ExpectEquality(t, m.ReleaseDates[0].Year, 2007)
	test.ExpectEquality(t, m.ECS, metadata.Requires)
	test.ExpectEquality(t, m.Voice, metadata.Tolerates)
	test.ExpectEquality(t, m.KC, metadata.Requires)
	test.ExpectEquality(t, m.Intv2, metadata.Tolerates)
	test.ExpectEquality(t, m.JLPAccel, metadata.JLPDisabled)
	test.ExpectEquality(t, m.JLPFlash, 0)
	test.ExpectEquality(t, m.LTOMapper, 0)
	test.ExpectFailure(t, m.IsDefaults)
	test.ExpectEquality(t, len(m.Misc), 1)
	test.ExpectEquality(t, m.Misc[0], "foo=bar")
}

func TestFromVarsDefaults(t *testing.T) {
	m := metadata.FromVars([]metadata.Var{metadata.ParseVar("name", "x")})
	test.ExpectSuccess(t, m.IsDefaults)
	test.ExpectEquality(t, m.ECS, metadata.Tolerates)
	test.ExpectEquality(t, m.JLPAccel, metadata.JLPDisabled)

	// only the name var is output for default compatibility
	vars := m.Vars()
	test.ExpectEquality(t, len(vars), 1)
	test.ExpectEquality(t, vars[0].String(), "name = x")
}

func TestFromVarsJLP(t *testing.T) {
	// a flash size with no accelerator mode implies flash without the
	// accelerators switched on at reset
	m := metadata.FromVars([]metadata.Var{metadata.ParseVar("jlpflash", "8")})
	test.ExpectEquality(t, m.JLPAccel, metadata.JLPAccelOff)
	test.ExpectEquality(t, m.JLPFlash, 8)

	m = metadata.FromVars([]metadata.Var{metadata.ParseVar("jlp", "1")})
	test.ExpectEquality(t, m.JLPAccel, metadata.JLPAccelOn)
	test.ExpectEquality(t, m.JLPFlash, 0)

	m = metadata.FromVars([]metadata.Var{metadata.ParseVar("jlp_accel", "3")})
	test.ExpectEquality(t, m.JLPAccel, metadata.JLPAccelFlashOn)
	test.ExpectEquality(t, m.JLPFlash, 4)

	m = metadata.FromVars([]metadata.Var{metadata.ParseVar("jlp_flash", "1000")})
	test.ExpectEquality(t, m.JLPFlash, metadata.JLPFlashMax)
}

func TestVarsRoundTrip(t *testing.T) {
	vars := []metadata.Var{
		metadata.ParseVar("name", `"Space Patrol"`),
		metadata.ParseVar("author", `"Joe Zbiciak"`),
		metadata.ParseVar("release_date", `"2007/05/01"`),
		metadata.ParseVar("ecs_compat", "2"),
		metadata.ParseVar("voice_compat", "3"),
		metadata.ParseVar("intv2", "0"),
		metadata.ParseVar("lto_mapper", "1"),
		metadata.ParseVar("foo", "bar"),
	}

	m := metadata.FromVars(vars)
	test.ExpectEquality(t, m.ECS, metadata.Enhanced)
	test.ExpectEquality(t, m.Voice, metadata.Requires)
	test.ExpectEquality(t, m.Intv2, metadata.Incompatible)
	test.ExpectEquality(t, m.LTOMapper, 1)

	out := m.Vars()
	var s []string
	for _, v := range out {
		s = append(s, v.String())
	}

	expected := []string{
		"ecs_compat = 2",
		"voice_compat = 3",
		"intv2 = 0",
		"kc_compat = 1",
		"tv_compat = 1",
		"lto_mapper = 1",
		"jlp_accel = 0",
		"jlp_flash = 0",
		`name = "Space Patrol"`,
		`author = "Joe Zbiciak"`,
		`release_date = "2007-05-01"`,
		"foo = bar",
	}

	test.DemandEquality(t, len(s), len(expected))
	for i := range expected {
		test.ExpectEquality(t, s[i], expected[i])
	}

	n := metadata.FromVars(out)
	test.ExpectEquality(t, n.ECS, m.ECS)
	test.ExpectEquality(t, n.Voice, m.Voice)
	test.ExpectEquality(t, n.Intv2, m.Intv2)
	test.ExpectEquality(t, n.LTOMapper, m.LTOMapper)
	test.ExpectEquality(t, n.ReleaseDates[0], m.ReleaseDates[0])
}
