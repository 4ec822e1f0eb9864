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

package locutus

import (
	"fmt"

	"github.com/jetsetilly/locutus/hardware/memory/cartridge/locutus/metadata"
)

// FeatureFlags is the 128 bit feature flag field of a Locutus cartridge. The
// first element holds bits 0 to 63.
//
//	0..1    Intellivoice compatibility
//	2..3    ECS compatibility
//	4..5    Intellivision 2 compatibility
//	6..7    Keyboard Component compatibility
//	8..11   TutorVision compatibility. bit 8 is set if bits 10 and 11 are
//	        valid. otherwise the cartridge tolerates the TutorVision
//	16..17  JLP accelerator mode
//	22..31  JLP flash size in sectors
//	32      LTO mapper
//	63      compatibility set explicitly (not defaults)
//
// All other bits are reserved.
type FeatureFlags [2]uint64

// Bit returns the value of the numbered flag.
func (f FeatureFlags) Bit(n int) bool {
	if n < 0 || n >= 128 {
		return false
	}
	return f[n>>6]&(1<<(n&63)) != 0
}

// SetBit changes the value of the numbered flag.
func (f *FeatureFlags) SetBit(n int, v bool) {
	if n < 0 || n >= 128 {
		return
	}
	if v {
		f[n>>6] |= 1 << (n & 63)
	} else {
		f[n>>6] &^= 1 << (n & 63)
	}
}

func (f FeatureFlags) field(lo int, width int) int {
	var v int
	for i := range width {
		if f.Bit(lo + i) {
			v |= 1 << i
		}
	}
	return v
}

func (f *FeatureFlags) setField(lo int, width int, v int) {
	for i := range width {
		f.SetBit(lo+i, v&(1<<i) != 0)
	}
}

func (f FeatureFlags) String() string {
	return fmt.Sprintf("%016x%016x", f[1], f[0])
}

// the bits of the feature flags that are derived from the metadata
var metadataFlags = FeatureFlags{0x00000001_ffc30fff | 1<<63, 0}

// packFlags creates feature flags from the compatibility settings in the
// metadata
func packFlags(m *metadata.Metadata) FeatureFlags {
	var f FeatureFlags

	f.setField(0, 2, int(m.Voice))
	f.setField(2, 2, int(m.ECS))
	f.setField(4, 2, int(m.Intv2))
	f.setField(6, 2, int(m.KC))

	if m.TV != metadata.Tolerates {
		f.SetBit(8, true)
		f.setField(10, 2, int(m.TV))
	}

	f.setField(16, 2, int(m.JLPAccel))
	f.setField(22, 10, max(m.JLPFlash, 0))
	f.SetBit(32, m.LTOMapper > 0)
	f.SetBit(63, !m.IsDefaults)

	return f
}

// unpackFlags is the reverse of packFlags()
func unpackFlags(f FeatureFlags, m *metadata.Metadata) {
	m.Voice = metadata.Compat(f.field(0, 2))
	m.ECS = metadata.Compat(f.field(2, 2))
	m.Intv2 = metadata.Compat(f.field(4, 2))
	m.KC = metadata.Compat(f.field(6, 2))

	if f.field(8, 2) != 0 {
		m.TV = metadata.Compat(f.field(10, 2))
	} else {
		m.TV = metadata.Tolerates
	}

	m.JLPAccel = metadata.JLPAccel(f.field(16, 2))
	m.JLPFlash = f.field(22, 10)

	if f.Bit(32) {
		m.LTOMapper = 1
	} else {
		m.LTOMapper = 0
	}

	m.IsDefaults = !f.Bit(63)
}

// FeatureFlags returns the feature flags of the cartridge. The flags are
// derived from the compatibility settings in the metadata.
func (cart *Locutus) FeatureFlags() FeatureFlags {
	f := packFlags(cart.metadata)
	f[0] |= cart.otherFlags[0] &^ metadataFlags[0]
	f[1] |= cart.otherFlags[1] &^ metadataFlags[1]
	return f
}

// SetFeatureFlags changes the compatibility settings in the metadata to
// match the feature flags. Reserved flags are retained.
func (cart *Locutus) SetFeatureFlags(f FeatureFlags) {
	unpackFlags(f, cart.metadata)
	cart.otherFlags = f
}

// jlpAccel returns the JLP mode from the metadata.
func (cart *Locutus) jlpAccel() metadata.JLPAccel {
	return cart.metadata.JLPAccel
}

// ltoMapper returns true if the LTO mapper is enabled.
func (cart *Locutus) ltoMapper() bool {
	return cart.metadata.LTOMapper > 0
}
