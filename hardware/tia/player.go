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

// player models the P0/P1 sprites: an 8-bit graphic (GRP0/1), optionally
// reflected (REFP0/1), optionally delayed by one write via the vertical
// delay latch (VDELP0/1), repeated/spaced/scaled per NUSIZ0/1, and
// positioned by RESP0/1.
type player struct {
	nusiz       uint8
	p, pOld     uint8
	refp        uint8
	resp        uint8
	vdelp       uint8

	grp             uint8
	number          uint8
	size            uint8
	gap             uint8
	reflect         bool
	posStart        uint16

	scan [FrameWidth]bool
}

func (p *player) update() {
	if p.vdelp&0x1 == 0 {
		p.grp = p.p
	} else {
		p.grp = p.pOld
	}

	if p.grp == 0 {
		for i := range p.scan {
			p.scan[i] = false
		}
		return
	}

	number, size, gap := nusize(p.nusiz)
	p.number = number
	p.size = size
	p.gap = gap

	if p.resp < uint8(horizontalBlank) {
		p.resp = uint8(horizontalBlank)
	}
	p.reflect = p.refp&0x8 == 0

	p.posStart = (uint16(p.resp) - horizontalBlank + uint16(p.size)/2) % FrameWidth
	p.recalc()
}

func (p *player) recalc() {
	graphic := [8]bool{}
	for i := 0; i < 8; i++ {
		graphic[i] = (p.grp>>uint(i))&0x1 != 0
	}
	if p.reflect {
		for i, j := 0, 7; i < j; i, j = i+1, j-1 {
			graphic[i], graphic[j] = graphic[j], graphic[i]
		}
	}

	scaled := make([]bool, 8*int(p.size))
	for i := 0; i < 8; i++ {
		for s := 0; s < int(p.size); s++ {
			scaled[i*int(p.size)+s] = graphic[i]
		}
	}

	unshifted := make([]bool, FrameWidth)
	for n := uint8(0); n < p.number; n++ {
		offset := int(n) * int(p.gap) * 8
		for i, v := range scaled {
			if offset+i < len(unshifted) {
				unshifted[offset+i] = v
			}
		}
	}

	rotation := int(FrameWidth - p.posStart)
	for i := 0; i < int(FrameWidth); i++ {
		p.scan[i] = unshifted[(i+rotation)%int(FrameWidth)]
	}
}

func (p *player) updateNUSIZ(v uint8) { p.nusiz = v; p.update() }
func (p *player) updateRESP(v uint8)  { p.resp = v; p.update() }
func (p *player) updateREFP(v uint8)  { p.refp = v; p.update() }
func (p *player) updateP(v uint8)     { p.p = v; p.update() }
func (p *player) updatePOld(v uint8)  { p.pOld = v; p.update() }
func (p *player) updateVDELP(v uint8) { p.vdelp = v; p.update() }
