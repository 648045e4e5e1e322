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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/vcscore/hardware/cpu/registers"
	"github.com/jetsetilly/vcscore/test"
)

func TestReset(t *testing.T) {
	r := registers.Registers{A: 1, X: 2, Y: 3, SP: 4, PC: 5, P: 0xff}
	r.Reset()
	test.ExpectEquality(t, r.A, uint8(0))
	test.ExpectEquality(t, r.X, uint8(0))
	test.ExpectEquality(t, r.Y, uint8(0))
	test.ExpectEquality(t, r.SP, uint8(0))
	test.ExpectEquality(t, r.PC, uint16(0))
	test.ExpectEquality(t, r.P, registers.Flag1)
}

func TestFlags(t *testing.T) {
	var r registers.Registers
	r.Reset()

	test.ExpectFailure(t, r.Carry())
	r.SetCarry(true)
	test.ExpectSuccess(t, r.Carry())
	r.SetCarry(false)
	test.ExpectFailure(t, r.Carry())

	r.SetNZ(0)
	test.ExpectSuccess(t, r.Zero())
	test.ExpectFailure(t, r.Negative())

	r.SetNZ(0x80)
	test.ExpectFailure(t, r.Zero())
	test.ExpectSuccess(t, r.Negative())
}

func TestPushAndPull(t *testing.T) {
	var r registers.Registers
	r.Reset()
	r.SetCarry(true)
	r.SetNegative(true)

	pushed := r.PushValue(true)
	test.ExpectSuccess(t, pushed&registers.FlagB != 0)
	test.ExpectSuccess(t, pushed&registers.Flag1 != 0)

	var r2 registers.Registers
	r2.SetFromPull(pushed)
	test.ExpectSuccess(t, r2.Carry())
	test.ExpectSuccess(t, r2.Negative())
	// the break flag only exists in the pushed byte, never in P itself
	test.ExpectEquality(t, r2.P&registers.FlagB, uint8(0))
}
