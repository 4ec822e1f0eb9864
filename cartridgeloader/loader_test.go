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

package cartridgeloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/locutus/cartridgeloader"
	"github.com/jetsetilly/locutus/curated"
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/bincfg"
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/locutus"
	"github.com/jetsetilly/locutus/hardware/memory/cartridge/luigi"
	"github.com/jetsetilly/locutus/test"
)

func writeFile(t *testing.T, dir string, name string, data []byte) string {
	t.Helper()
	pth := filepath.Join(dir, name)
	test.DemandSuccess(t, os.WriteFile(pth, data, 0o644))
	return pth
}

func romWords(n int) []uint16 {
	w := make([]uint16, n)
	for i := range w {
		w[i] = uint16(i) | 0x8000
	}
	return w
}

func TestFileType(t *testing.T) {
	test.ExpectEquality(t, cartridgeloader.NewLoader("game.luigi").Type, cartridgeloader.LUIGI)
	test.ExpectEquality(t, cartridgeloader.NewLoader("game.BIN").Type, cartridgeloader.BIN)
	test.ExpectEquality(t, cartridgeloader.NewLoader("game.Int").Type, cartridgeloader.BIN)
	test.ExpectEquality(t, cartridgeloader.NewLoader("game.rom").Type, cartridgeloader.Unknown)
	test.ExpectEquality(t, cartridgeloader.NewLoader("roms/game.bin").ShortName(), "game")
	test.ExpectEquality(t, cartridgeloader.NewLoader("roms/game.bin").FlashFilename(), "roms/game.jlp")
}

func TestBINWithCfg(t *testing.T) {
	dir := t.TempDir()
	bin := writeFile(t, dir, "game.bin", bincfg.EncodeBIN(romWords(0x1000)))
	writeFile(t, dir, "game.cfg", []byte("[mapping]\n$0000 - $0FFF = $6000\n[vars]\nname = \"Loader Test\"\n"))

	cl := cartridgeloader.NewLoader(bin)
	test.ExpectEquality(t, cl.CfgFilename, filepath.Join(dir, "game.cfg"))
	test.ExpectEquality(t, cl.HasLoaded(), false)

	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.HasLoaded(), true)
	test.ExpectInequality(t, cl.Hash, "")
	test.ExpectInequality(t, cl.Cfg == nil, true)

	cart := locutus.NewLocutus(nil)
	test.DemandSuccess(t, cl.Attach(cart))
	test.ExpectEquality(t, cl.Report.Errors, 0)
	test.ExpectEquality(t, cart.Metadata().Name, "Loader Test")

	cart.Reset()
	test.ExpectEquality(t, cart.Read(0x6000), 0x8000)
	test.ExpectEquality(t, cart.Read(0x6fff), 0x8fff)
	test.ExpectEquality(t, cart.Read(0x5000), 0xffff)
}

func TestBINWithoutCfg(t *testing.T) {
	dir := t.TempDir()
	bin := writeFile(t, dir, "game.int", bincfg.EncodeBIN(romWords(0x100)))

	cl := cartridgeloader.NewLoader(bin)
	test.ExpectEquality(t, cl.CfgFilename, "")
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.Cfg == nil, true)

	cart := locutus.NewLocutus(nil)
	test.DemandSuccess(t, cl.Attach(cart))

	// default mapping
	cart.Reset()
	test.ExpectEquality(t, cart.Read(0x5000), 0x8000)
	test.ExpectEquality(t, cart.Read(0x50ff), 0x80ff)
}

func TestLUIGI(t *testing.T) {
	src := locutus.NewLocutus(nil)
	_, err := bincfg.Import(src, bincfg.EncodeBIN(romWords(0x200)), nil)
	test.DemandSuccess(t, err)

	// the content of the file decides the type, not the extension
	dir := t.TempDir()
	pth := writeFile(t, dir, "game.dat", luigi.Serialize(src))

	cl := cartridgeloader.NewLoader(pth)
	test.ExpectEquality(t, cl.Type, cartridgeloader.Unknown)
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.Type, cartridgeloader.LUIGI)

	cart := locutus.NewLocutus(nil)
	test.DemandSuccess(t, cl.Attach(cart))
	test.ExpectEquality(t, cart.UID, src.UID)

	cart.Reset()
	test.ExpectEquality(t, cart.Read(0x5000), 0x8000)
	test.ExpectEquality(t, cart.Read(0x51ff), 0x81ff)
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()

	cl := cartridgeloader.NewLoader(filepath.Join(dir, "missing.bin"))
	err := cl.Load()
	test.ExpectEquality(t, curated.Is(err, cartridgeloader.LoadError), true)

	cl = cartridgeloader.NewLoader(filepath.Join(dir, "missing.bin"))
	err = cl.Attach(locutus.NewLocutus(nil))
	test.ExpectEquality(t, curated.Is(err, cartridgeloader.NotLoaded), true)

	cl = cartridgeloader.NewLoader(writeFile(t, dir, "game.xyz", []byte{1, 2, 3, 4}))
	err = cl.Load()
	test.ExpectEquality(t, curated.Is(err, cartridgeloader.UnknownFormat), true)

	cl = cartridgeloader.NewLoader(writeFile(t, dir, "bad.luigi", []byte("LTO but not really a luigi file")))
	test.DemandSuccess(t, cl.Load())
	err = cl.Attach(locutus.NewLocutus(nil))
	test.ExpectEquality(t, curated.Is(err, cartridgeloader.AttachError), true)
	test.ExpectEquality(t, curated.Has(err, luigi.InvalidMagic), true)

	cl = cartridgeloader.NewLoader(writeFile(t, dir, "hash.bin", []byte{0, 1}))
	cl.Hash = "0000"
	err = cl.Load()
	test.ExpectEquality(t, curated.Is(err, cartridgeloader.LoadError), true)
}
