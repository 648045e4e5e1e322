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

// playfieldExpand is the number of screen pixels each playfield bit covers.
const playfieldExpand = 4

// playfieldHalfWidth is the number of pixels in one half of the playfield
// (PF0's 4 bits + PF1's 8 bits + PF2's 8 bits, each expanded by
// playfieldExpand).
const playfieldHalfWidth = 20 * playfieldExpand

// playfield precomputes the 160-pixel scanline implied by PF0/PF1/PF2/CTRLPF
// whenever one of those registers changes, rather than re-deriving it every
// pixel. The bit order is PF0: 4,5,6,7; PF1: 7,6,5,4,3,2,1,0; PF2: 0..7.
type playfield struct {
	pf0, pf1, pf2 uint8
	ctrlpf        uint8

	scan [FrameWidth]bool
}

func expandByte(b uint8, reverse bool) []bool {
	bits := make([]bool, 8)
	for i := 0; i < 8; i++ {
		bits[i] = b&(1<<uint(i)) != 0
	}
	if reverse {
		for i, j := 0, len(bits)-1; i < j; i, j = i+1, j-1 {
			bits[i], bits[j] = bits[j], bits[i]
		}
	}
	expanded := make([]bool, len(bits)*playfieldExpand)
	for i, v := range bits {
		for k := 0; k < playfieldExpand; k++ {
			expanded[i*playfieldExpand+k] = v
		}
	}
	return expanded
}

func (pf *playfield) update() {
	var half []bool
	// PF0 only uses its top 4 bits.
	half = append(half, expandByte(pf.pf0, false)[16:]...)
	half = append(half, expandByte(pf.pf1, true)...)
	half = append(half, expandByte(pf.pf2, false)...)

	second := make([]bool, len(half))
	copy(second, half)
	if pf.ctrlpf&0x1 != 0 {
		for i, j := 0, len(second)-1; i < j; i, j = i+1, j-1 {
			second[i], second[j] = second[j], second[i]
		}
	}

	for i := 0; i < playfieldHalfWidth; i++ {
		pf.scan[i] = half[i]
		pf.scan[playfieldHalfWidth+i] = second[i]
	}
}

func (pf *playfield) updatePF0(v uint8)    { pf.pf0 = v; pf.update() }
func (pf *playfield) updatePF1(v uint8)    { pf.pf1 = v; pf.update() }
func (pf *playfield) updatePF2(v uint8)    { pf.pf2 = v; pf.update() }
func (pf *playfield) updateCTRLPF(v uint8) { pf.ctrlpf = v; pf.update() }
