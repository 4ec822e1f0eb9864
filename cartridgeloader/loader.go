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
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/locutus/curated"
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/bincfg"
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/locutus"
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/luigi"
	"github.com/jetsetilly/locutus/logger"
)

// Error patterns.
const (
	LoadError     = "cartridgeloader: %v"
	NotLoaded     = "cartridgeloader: %s: not loaded"
	UnknownFormat = "cartridgeloader: %s: unrecognised file format"
	Scrambled     = "cartridgeloader: %s: scrambled LUIGI file for DRUID %s"
	AttachError   = "cartridgeloader: %s: %v"
)

// Loader is used to specify the cartridge to use when attaching to the
// Intellivision.
type Loader struct {
	// filename of cartridge to load.
	Filename string

	// the file type. decided by the filename extension by NewLoader(). an
	// Unknown value will be decided by the content of the file when it is
	// loaded
	Type FileType

	// filename of the CFG file. only used for BIN files. the CFG file is
	// optional and an empty string means that there is no CFG file
	CfgFilename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. the Cfg field will be nil if there is no CFG
	// file
	Data []byte
	Cfg  []byte

	// the report from the most recent call to Attach() for a BIN file
	Report *bincfg.Report
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The Type field is set according to the filename extension. For BIN files
// the CfgFilename field is set to the name of the CFG file if it exists.
//
// Alphabetic characters in file extensions can be in upper or lower case or a
// mixture of both.
func NewLoader(filename string) Loader {
	cl := Loader{
		Filename: filename,
		Type:     fileTypeFromExtension(filename),
	}

	if cl.Type == BIN {
		cl.CfgFilename = findCfg(filename)
	}

	return cl
}

// the CFG file extension is tried in lower and upper case
func findCfg(filename string) string {
	for _, ext := range []string{CfgExtension, strings.ToUpper(CfgExtension)} {
		cfg := sibling(filename, ext)
		if cfg == filename {
			continue
		}
		if _, err := os.Stat(cfg); err == nil {
			return cfg
		}
	}
	return ""
}

// ShortName returns a shortened version of the CartridgeLoader filename.
func (cl Loader) ShortName() string {
	shortCartName := filepath.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, filepath.Ext(cl.Filename))
	return shortCartName
}

// FlashFilename returns the name of the file used to back the JLP flash
// memory of the cartridge.
func (cl Loader) FlashFilename() string {
	return sibling(cl.Filename, FlashExtension)
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
//
// If the Type field is Unknown it will be decided by the content of the data.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	var err error

	cl.Data, err = fetch(cl.Filename)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	if cl.CfgFilename != "" {
		cl.Cfg, err = fetch(cl.CfgFilename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
	}

	// LUIGI files are recognised by the header regardless of the extension
	if _, err := luigi.Identify(cl.Data); err == nil {
		cl.Type = LUIGI
	} else if cl.Type == Unknown {
		return curated.Errorf(UnknownFormat, cl.ShortName())
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(LoadError, "unexpected hash value")
	}

	// not generated hash
	cl.Hash = hash

	logger.Logf(logger.Allow, "loader", "%s: %s file (%d bytes)", cl.ShortName(), cl.Type, len(cl.Data))
	if cl.Cfg != nil {
		logger.Logf(logger.Allow, "loader", "%s: cfg file %s", cl.ShortName(), cl.CfgFilename)
	}

	return nil
}

func fetch(filename string) ([]byte, error) {
	scheme := "file"

	url, err := url.Parse(filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(filename)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%s: %s", filename, resp.Status)
		}

		return io.ReadAll(resp.Body)

	case "file", "":
		data, err := os.ReadFile(filename)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: file not found", filename)
		}
		return data, err

	default:
		// windows filenames with a drive letter parse as a URL scheme
		if len(scheme) == 1 {
			return os.ReadFile(filename)
		}
		return nil, fmt.Errorf("unsupported URL scheme (%s)", scheme)
	}
}

// Attach the loaded data to the cartridge. The cartridge should be newly
// created and must be reset after a successful attachment.
//
// Scrambled LUIGI files cannot be attached because the key for the DRUID of
// the emulated Locutus device is not available.
func (cl *Loader) Attach(cart *locutus.Locutus) error {
	if !cl.HasLoaded() {
		return curated.Errorf(NotLoaded, cl.ShortName())
	}

	switch cl.Type {
	case LUIGI:
		err := luigi.Deserialize(cart, cl.Data)
		if err != nil {
			return curated.Errorf(AttachError, cl.ShortName(), err)
		}
		if _, ok := cart.Scrambled(); ok {
			return curated.Errorf(Scrambled, cl.ShortName(), cart.DRUID())
		}

	case BIN:
		var err error
		cl.Report, err = bincfg.Import(cart, cl.Data, cl.Cfg)
		if cl.Report != nil {
			logger.Logf(logger.Allow, "loader", "%s: %d errors, %d warnings", cl.ShortName(), cl.Report.Errors, cl.Report.Warnings)
		}
		if err != nil {
			return curated.Errorf(AttachError, cl.ShortName(), err)
		}

	default:
		return curated.Errorf(UnknownFormat, cl.ShortName())
	}

	logger.Logf(logger.Allow, "loader", "%s: attached (uid %016x)", cl.ShortName(), cart.UID)

	return nil
}
