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

// nusize decodes the player/missile copy count, copy size, and inter-copy
// gap (in 8-pixel units) encoded in the low 3 bits of NUSIZ0/NUSIZ1.
func nusize(nusiz uint8) (number, size, gap uint8) {
	switch nusiz & 0x7 {
	case 0:
		return 1, 1, 0
	case 1:
		return 2, 1, 2
	case 2:
		return 2, 1, 4
	case 3:
		return 3, 1, 2
	case 4:
		return 2, 1, 8
	case 5:
		return 1, 2, 0
	case 6:
		return 3, 1, 4
	case 7:
		return 1, 4, 0
	}
	panic("nusize: unreachable")
}
