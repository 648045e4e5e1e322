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

// Package registers defines the 6507's register file: the accumulator,
// index registers, stack pointer, program counter, and status flags.
//
// Ported from the original's PcState, which bundles A/X/Y/S/PC with a single
// status byte and per-flag accessors, rather than Gopher2600's own register
// package (which models each register as a slice of bits with its own
// arithmetic). The bit-addressable-register-file framing that the source
// material uses maps onto Go more directly as a struct of plain uint8/uint16
// fields with flag helper methods, which is what's implemented here.
package registers

// status flag bit positions within P.
const (
	FlagC = uint8(1 << 0) // carry
	FlagZ = uint8(1 << 1) // zero
	FlagI = uint8(1 << 2) // interrupt disable
	FlagD = uint8(1 << 3) // decimal mode
	FlagB = uint8(1 << 4) // break (only meaningful in the byte pushed to the stack)
	Flag1 = uint8(1 << 5) // unused, always set when pushed to the stack
	FlagV = uint8(1 << 6) // overflow
	FlagN = uint8(1 << 7) // negative
)

// Registers is the complete 6507 register file.
type Registers struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	PC uint16
	P  uint8
}

// Reset sets every register to its documented power-on state: all zero,
// with the unused flag bit always reading as set.
func (r *Registers) Reset() {
	*r = Registers{P: Flag1}
}

func (r *Registers) set(flag uint8, v bool) {
	if v {
		r.P |= flag
	} else {
		r.P &^= flag
	}
}

// Carry, Zero, Interrupt, Decimal, Overflow and Negative read individual
// status flags.
func (r Registers) Carry() bool     { return r.P&FlagC != 0 }
func (r Registers) Zero() bool      { return r.P&FlagZ != 0 }
func (r Registers) Interrupt() bool { return r.P&FlagI != 0 }
func (r Registers) Decimal() bool   { return r.P&FlagD != 0 }
func (r Registers) Overflow() bool  { return r.P&FlagV != 0 }
func (r Registers) Negative() bool  { return r.P&FlagN != 0 }

// SetCarry, SetZero, SetInterrupt, SetDecimal, SetOverflow and SetNegative
// write individual status flags.
func (r *Registers) SetCarry(v bool)     { r.set(FlagC, v) }
func (r *Registers) SetZero(v bool)      { r.set(FlagZ, v) }
func (r *Registers) SetInterrupt(v bool) { r.set(FlagI, v) }
func (r *Registers) SetDecimal(v bool)   { r.set(FlagD, v) }
func (r *Registers) SetOverflow(v bool)  { r.set(FlagV, v) }
func (r *Registers) SetNegative(v bool)  { r.set(FlagN, v) }

// SetNZ sets the Zero and Negative flags from the given result value, the
// way almost every load/transfer/ALU instruction concludes.
func (r *Registers) SetNZ(v uint8) {
	r.SetZero(v == 0)
	r.SetNegative(v&0x80 != 0)
}

// PushValue returns the byte that BRK/PHP/IRQ push onto the stack: the
// current flags with the unused bit forced on, and the break bit set when brk
// is true and cleared otherwise.
func (r Registers) PushValue(brk bool) uint8 {
	v := r.P | Flag1
	if brk {
		v |= FlagB
	} else {
		v &^= FlagB
	}
	return v
}

// SetFromPull restores P from a byte popped off the stack (PLP/RTI). The
// break flag isn't a real flip-flop on the 6502 - it only exists in the
// pushed byte - so it's discarded, and the unused bit is always forced on.
func (r *Registers) SetFromPull(v uint8) {
	r.P = (v &^ FlagB) | Flag1
}

// String formats the status flags for debugging/disassembly output.
func (r Registers) String() string {
	flags := [8]byte{'.', '.', '.', '.', '.', '1', '.', '.'}
	apply := func(i int, set bool, c byte) {
		if set {
			flags[i] = c
		}
	}
	apply(0, r.Negative(), 'N')
	apply(1, r.Overflow(), 'V')
	apply(3, r.Decimal(), 'D')
	apply(4, r.Interrupt(), 'I')
	apply(6, r.Zero(), 'Z')
	apply(7, r.Carry(), 'C')
	return string(flags[:])
}
