// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package random_test

import (
	"testing"

	"github.com/jetsetilly/vcscore/random"
	"github.com/jetsetilly/vcscore/test"
)

type fixedTicker int

func (f fixedTicker) Ticks() int { return int(f) }

func TestRandomZeroSeedIsReproducible(t *testing.T) {
	a := random.NewRandom(fixedTicker(100))
	b := random.NewRandom(fixedTicker(9999))
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Rewindable(i), b.Rewindable(i))
	}
}

func TestRandomTicksAffectOutput(t *testing.T) {
	a := random.NewRandom(fixedTicker(1))
	b := random.NewRandom(fixedTicker(2))

	differs := false
	for i := 1; i < 256; i++ {
		if a.Rewindable(i) != b.Rewindable(i) {
			differs = true
			break
		}
	}
	test.ExpectSuccess(t, differs)
}
