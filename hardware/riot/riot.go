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

// Package riot implements the part of the 6532 RIOT chip that the memory bus
// needs to route CPU accesses: its 128 bytes of RAM (which also serves as
// the 6507's stack) and the SWCHA/SWCHB/INTIM/TIMINT port registers. Timer
// countdown emulation - the RIOT's other job - is explicitly out of scope;
// INTIM reads back whatever was last written to it, and the six input
// switches (left difficulty, right difficulty, colour/b&w, game select,
// reset, and the joystick/paddle port) are supplied by the host as a single
// Switches value rather than modelled as individual pins.
package riot

import "github.com/jetsetilly/vcscore/random"

// RAM size of the 6532's general-purpose RAM, shared with the 6507 stack
// (addresses 0x100-0x1ff map to the same 128 bytes).
const RAMSize = 128

// Switches bundles the six input bytes a host presents to the console: the
// two difficulty switches and the colour/b&w switch live in SWCHB, the game
// select/reset switches and joystick/paddle fire buttons live in SWCHA and
// the TIA's INPT registers (read directly by the TIA, not the RIOT).
type Switches struct {
	SWCHA uint8
	SWCHB uint8
}

// RIOT is the subset of the 6532 the memory bus and CPU can see.
type RIOT struct {
	RAM [RAMSize]uint8

	switches Switches

	// INTIM/TIMINT are simple read-back registers; no timer counts down.
	intim   uint8
	timint  uint8
}

// NewRIOT creates a RIOT with its RAM zeroed.
func NewRIOT() *RIOT {
	return &RIOT{}
}

// NewRIOTWithRandom creates a RIOT whose RAM is scattered with a plausible
// power-on pattern rather than left at zero, matching real SRAM's undefined
// startup state. A nil rnd, or one with ZeroSeed set, behaves like NewRIOT.
func NewRIOTWithRandom(rnd *random.Random) *RIOT {
	r := &RIOT{}
	if rnd == nil || rnd.ZeroSeed {
		return r
	}
	for i := range r.RAM {
		r.RAM[i] = rnd.Rewindable(i)
	}
	return r
}

// SetSwitches updates the externally supplied switch state.
func (r *RIOT) SetSwitches(s Switches) {
	r.switches = s
}

// Read services a CPU read of a RIOT address (RAM, stack mirror, or a
// chip register), addr already normalised to the RIOT's own 0-0x7f window
// by the memory bus.
func (r *RIOT) Read(addr uint16) uint8 {
	switch addr & 0x1f {
	case 0x00:
		return r.switches.SWCHA
	case 0x02:
		return r.switches.SWCHB
	case 0x04:
		return r.intim
	case 0x05:
		return r.timint
	default:
		return r.RAM[addr&0x7f]
	}
}

// Write services a CPU write of a RIOT address. Real hardware lets SWCHA be
// written when SWACNT configures the port for output; vcscore doesn't model
// the direction register, so a CPU write there is treated the same as any
// other RAM write: it lands in RAM[addr&0x7f], the same byte the RAM area
// shows at 0x80 plus that offset. Writes to the timer registers (TIM1T,
// TIM8T, TIM64T, T1024T) set INTIM.
func (r *RIOT) Write(addr uint16, data uint8) {
	switch addr & 0x1f {
	case 0x14, 0x15, 0x16, 0x17:
		r.intim = data
	default:
		r.RAM[addr&0x7f] = data
	}
}

// ReadRAM/WriteRAM give the memory bus direct access to the shared RAM/stack
// area (addr already normalised to 0-0x7f) without going through the
// register decode above, which only applies to the RIOT's own I/O page.
func (r *RIOT) ReadRAM(addr uint16) uint8 {
	return r.RAM[addr&0x7f]
}

func (r *RIOT) WriteRAM(addr uint16, data uint8) {
	r.RAM[addr&0x7f] = data
}
