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

package random

import (
	"math/rand/v2"
	"time"
)

// Random is a seedable random number source.
type Random struct {
	seed uint64
	rnd  *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type. A
// seed of zero seeds the source from the current time.
func NewRandom(seed uint64) *Random {
	rnd := &Random{}
	rnd.Reseed(seed)
	return rnd
}

// Reseed the random number source.
func (rnd *Random) Reseed(seed uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rnd.seed = seed
	rnd.rnd = rand.New(rand.NewPCG(seed, seed^0x4c4f435554555321))
}

// Seed returns the seed value in use.
func (rnd *Random) Seed() uint64 {
	return rnd.seed
}

// IntN returns a random number in the range [0, n).
func (rnd *Random) IntN(n int) int {
	return rnd.rnd.IntN(n)
}

// Uint16 returns a random 16 bit value.
func (rnd *Random) Uint16() uint16 {
	return uint16(rnd.rnd.Uint32())
}
