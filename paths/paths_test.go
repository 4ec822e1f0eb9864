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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/locutus/paths"
	"github.com/jetsetilly/locutus/test"
)

func TestPaths(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	// with a .locutus directory in the current directory that directory is
	// used as the base path
	tmp := t.TempDir()
	test.DemandSuccess(t, os.Chdir(tmp))
	test.DemandSuccess(t, os.Mkdir(".locutus", 0o700))

	pth, err := paths.ResourcePath("flash", "game.jlp")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".locutus", "flash", "game.jlp"))

	_, err = os.Stat(filepath.Join(".locutus", "flash"))
	test.ExpectSuccess(t, err)

	pth, err = paths.ResourcePath("", "prefs")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".locutus", "prefs"))
}
