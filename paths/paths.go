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

package paths

import (
	"os"
	"path/filepath"
)

const baseResourcePath = ".locutus"

// ResourcePath returns the resource path prepended with the base path. The
// final element of the resource list is assumed to be a file. Directories
// leading up to it are created if necessary.
func ResourcePath(resource ...string) (string, error) {
	base := basePath()

	p := make([]string, 0, len(resource)+1)
	p = append(p, base)
	p = append(p, resource...)
	pth := filepath.Join(p...)

	dir := filepath.Dir(pth)
	if len(resource) == 0 || resource[len(resource)-1] == "" {
		dir = pth
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}

// basePath returns baseResourcePath if it exists in the current directory,
// otherwise it is placed in the user's configuration directory.
func basePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}

	return filepath.Join(cnf, baseResourcePath[1:])
}
