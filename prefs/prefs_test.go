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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/locutus/prefs"
	"github.com/jetsetilly/locutus/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "locutus_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestInt(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))
	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestLoad(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	var n prefs.Int
	test.ExpectSuccess(t, dsk.Add("name", &s))
	test.ExpectSuccess(t, dsk.Add("seed", &n))
	test.ExpectSuccess(t, s.Set("locutus"))
	test.ExpectSuccess(t, n.Set(42))
	test.DemandSuccess(t, dsk.Save())

	test.ExpectSuccess(t, s.Reset())
	test.ExpectSuccess(t, n.Reset())
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, s.String(), "locutus")
	test.ExpectEquality(t, n.String(), "42")
}

// a second Disk instance using the same file must not clobber the values
// saved by the first
func TestSharedFile(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	cmpTmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestCommandLineStack(t *testing.T) {
	fn := tmpPrefFile(t)

	prefs.PushCommandLineStack("seed::100; unused::foo")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var n prefs.Int
	test.ExpectSuccess(t, dsk.Add("seed", &n))
	test.ExpectEquality(t, n.Get().(int), 100)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::foo")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestHook(t *testing.T) {
	var b prefs.Bool
	var seen bool
	b.SetHookPost(func(v prefs.Value) error {
		seen = v.(bool)
		return nil
	})
	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, seen)
}

func TestIllegalKey(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)
	var b prefs.Bool
	test.ExpectFailure(t, dsk.Add("bad :: key", &b))
	test.ExpectSuccess(t, dsk.Add("good", &b))
	test.ExpectFailure(t, dsk.Add("good", &b))
}
