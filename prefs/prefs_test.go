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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/vcscore/prefs"
	"github.com/jetsetilly/vcscore/test"
)

func TestBool(t *testing.T) {
	b := prefs.NewBool(false)
	test.ExpectEquality(t, b.Get(), false)

	b.Set(true)
	test.ExpectEquality(t, b.Get(), true)
}

func TestInt(t *testing.T) {
	i := prefs.NewInt(3)
	test.ExpectEquality(t, i.Get(), 3)

	i.Set(20000)
	test.ExpectEquality(t, i.Get(), 20000)
}
