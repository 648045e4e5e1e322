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

// missile models the M0/M1 sprites. Missiles share NUSIZ's copy-count/gap
// decode with the corresponding player, but ignore its size field - a
// missile's width comes from NUSIZ bits 4-5 instead, the same field ball
// uses.
type missile struct {
	nusiz uint8
	enam  uint8
	resm  uint8

	number uint8
	gap    uint8

	scan [FrameWidth]bool
}

func (m *missile) update() {
	number, _, gap := nusize(m.nusiz)
	m.number = number
	m.gap = gap

	if m.resm < uint8(horizontalBlank) {
		m.resm = uint8(horizontalBlank)
	}

	m.recalc()
}

func (m *missile) recalc() {
	for i := range m.scan {
		m.scan[i] = false
	}
	if m.enam&0x02 == 0 {
		return
	}
	width := uint16(1) << ((m.nusiz & 0x30) >> 4)
	for n := uint16(0); n < uint16(m.number); n++ {
		for i := uint16(0); i < width; i++ {
			x := (i + uint16(m.resm) + n*uint16(m.gap)*8 - horizontalBlank) % FrameWidth
			m.scan[x] = true
		}
	}
}

func (m *missile) updateNUSIZ(v uint8) { m.nusiz = v; m.update() }
func (m *missile) updateRESM(v uint8)  { m.resm = v; m.update() }
func (m *missile) updateENAM(v uint8)  { m.enam = v; m.recalc() }
