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

package cartridgeloader

import (
	"path/filepath"
	"strings"
)

// FileType indicates the format of the cartridge data.
type FileType int

// List of valid FileType values.
const (
	Unknown FileType = iota
	LUIGI
	BIN
)

func (ft FileType) String() string {
	switch ft {
	case LUIGI:
		return "LUIGI"
	case BIN:
		return "BIN"
	}
	return "unknown"
}

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".LUIGI", ".BIN", ".INT", ".ITV"}

// CfgExtension is the extension of the CFG file that accompanies a BIN file.
const CfgExtension = ".cfg"

// FlashExtension is the extension of the JLP flash backing file.
const FlashExtension = ".jlp"

func fileTypeFromExtension(filename string) FileType {
	switch strings.ToUpper(filepath.Ext(filename)) {
	case ".LUIGI":
		return LUIGI
	case ".BIN", ".INT", ".ITV":
		return BIN
	}
	return Unknown
}

// return filename with the extension replaced
func sibling(filename string, ext string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ext
}
