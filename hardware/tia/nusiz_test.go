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

package tia

import (
	"testing"

	"github.com/jetsetilly/vcscore/test"
)

func TestNusizeDecodeTable(t *testing.T) {
	cases := []struct {
		code                 uint8
		number, size, gap uint8
	}{
		{0, 1, 1, 0},
		{1, 2, 1, 2},
		{2, 2, 1, 4},
		{3, 3, 1, 2},
		{4, 2, 1, 8},
		{5, 1, 2, 0},
		{6, 3, 1, 4},
		{7, 1, 4, 0},
	}
	for _, c := range cases {
		number, size, gap := nusize(c.code)
		test.ExpectEquality(t, number, c.number)
		test.ExpectEquality(t, size, c.size)
		test.ExpectEquality(t, gap, c.gap)
	}
}

func TestNusizeIgnoresUpperBits(t *testing.T) {
	number, size, gap := nusize(0xf8)
	test.ExpectEquality(t, number, uint8(1))
	test.ExpectEquality(t, size, uint8(1))
	test.ExpectEquality(t, gap, uint8(0))
}
