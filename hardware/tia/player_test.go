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

func TestPlayerZeroGraphicIsBlank(t *testing.T) {
	var p player
	p.updateRESP(horizontalBlank)
	p.updateP(0x00)
	for _, lit := range p.scan {
		test.ExpectEquality(t, lit, false)
	}
}

func TestPlayerSingleCopyPaintsEightBits(t *testing.T) {
	var p player
	p.updateRESP(horizontalBlank)
	p.updateP(0xff)

	count := 0
	for _, lit := range p.scan {
		if lit {
			count++
		}
	}
	test.ExpectEquality(t, count, 8)
}

func TestPlayerReflectionReversesBitOrder(t *testing.T) {
	// REFP's reflect bit is inverted: bit 3 clear means reflected, matching
	// the original's own REFP decode.
	plain := player{}
	plain.updateREFP(0x08) // bit 3 set -> not reflected
	plain.updateRESP(horizontalBlank)
	plain.updateP(0x01)

	reflected := player{}
	reflected.updateREFP(0x00) // bit 3 clear -> reflected
	reflected.updateRESP(horizontalBlank)
	reflected.updateP(0x01)

	test.ExpectInequality(t, plain.scan, reflected.scan)
}

func TestPlayerVDELPUsesPreviousWrite(t *testing.T) {
	var p player
	p.updateRESP(horizontalBlank)
	p.updateVDELP(0x01)
	p.updateP(0xff)

	// with VDELP set, the current GRP write isn't visible until latched by
	// the next GRP1 write via updatePOld.
	for _, lit := range p.scan {
		test.ExpectEquality(t, lit, false)
	}

	p.updatePOld(0xff)
	count := 0
	for _, lit := range p.scan {
		if lit {
			count++
		}
	}
	test.ExpectEquality(t, count, 8)
}
