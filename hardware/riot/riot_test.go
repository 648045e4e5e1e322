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

package riot_test

import (
	"testing"

	"github.com/jetsetilly/vcscore/hardware/riot"
	"github.com/jetsetilly/vcscore/test"
)

func TestRAM(t *testing.T) {
	r := riot.NewRIOT()
	r.WriteRAM(0x10, 0x42)
	test.ExpectEquality(t, r.ReadRAM(0x10), uint8(0x42))
}

func TestSwitches(t *testing.T) {
	r := riot.NewRIOT()
	r.SetSwitches(riot.Switches{SWCHA: 0x80, SWCHB: 0x3f})
	test.ExpectEquality(t, r.Read(0x00), uint8(0x80))
	test.ExpectEquality(t, r.Read(0x02), uint8(0x3f))
}

func TestWriteFallsThroughToRAM(t *testing.T) {
	r := riot.NewRIOT()
	r.Write(0x05, 0x7f)
	test.ExpectEquality(t, r.ReadRAM(0x05), uint8(0x7f))
}
