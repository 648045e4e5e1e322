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

// ball models the BL sprite: a single dot whose width is 1/2/4/8 pixels per
// CTRLPF bits 4-5, enabled by ENABL and positioned by RESBL. Like playfield,
// its scanline is recomputed whenever a relevant register changes rather
// than every pixel.
type ball struct {
	enabl, enablOld uint8
	vdelbl          uint8
	resbl           uint8
	ctrlpf          uint8

	enabled    bool
	xMin, xMax uint16

	scan [FrameWidth]bool
}

func (b *ball) update() {
	if b.vdelbl&0x1 == 0 {
		b.enabled = b.enabl&0x02 != 0
	} else {
		b.enabled = b.enablOld&0x02 != 0
	}

	width := uint16(1) << ((b.ctrlpf & 0x30) >> 4)
	b.xMin = uint16(b.resbl) - horizontalBlank
	b.xMax = b.xMin + width

	for i := range b.scan {
		b.scan[i] = false
	}
	if b.enabled {
		for x := b.xMin; x < b.xMax; x++ {
			b.scan[x%FrameWidth] = true
		}
	}
}

func (b *ball) updateRESBL(v uint8)   { b.resbl = v; b.update() }
func (b *ball) updateENABLOld(v uint8) { b.enablOld = v; b.update() }
func (b *ball) updateENABL(v uint8)   { b.enabl = v; b.update() }
func (b *ball) updateVDELBL(v uint8)  { b.vdelbl = v; b.update() }
func (b *ball) updateCTRLPF(v uint8)  { b.ctrlpf = v; b.update() }
