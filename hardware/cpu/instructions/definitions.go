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

package instructions

import "fmt"

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         Category
	Undocumented   bool
}

// Bytes returns the number of bytes an instance of this instruction occupies
// in memory, derived from its addressing mode.
func (defn Definition) Bytes() int {
	return defn.AddressingMode.Bytes()
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes(), defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

func d(opcode uint8, op Operator, cycles int, mode AddressingMode, pageSensitive bool, effect Category) Definition {
	return Definition{OpCode: opcode, Operator: op, Cycles: cycles, AddressingMode: mode, PageSensitive: pageSensitive, Effect: effect}
}

func u(opcode uint8, op Operator, cycles int, mode AddressingMode, pageSensitive bool, effect Category) Definition {
	defn := d(opcode, op, cycles, mode, pageSensitive, effect)
	defn.Undocumented = true
	return defn
}

// Definitions holds every opcode vcscore knows how to dispatch, indexed by
// nothing in particular - lookup is by OpCode via ByOpCode.
//
// The original source this was ported from only wired up the handful of
// opcodes its test ROMs actually used (load/store/branch/compare and the
// flag instructions); the primitive routines for the rest of the documented
// 6502 set (and the five undocumented opcodes a lot of VCS carts rely on -
// LAX, SAX, DCP, ISC, SLO) were present in its instruction_set module but
// never reached from the dispatch table. vcscore wires all of them.
var Definitions = []Definition{
	// ADC
	d(0x69, ADC, 2, Immediate, false, Read),
	d(0x65, ADC, 3, ZeroPage, false, Read),
	d(0x75, ADC, 4, ZeroPageX, false, Read),
	d(0x6D, ADC, 4, Absolute, false, Read),
	d(0x7D, ADC, 4, AbsoluteX, true, Read),
	d(0x79, ADC, 4, AbsoluteY, true, Read),
	d(0x61, ADC, 6, IndexedIndirect, false, Read),
	d(0x71, ADC, 5, IndirectIndexed, true, Read),

	// AND
	d(0x29, AND, 2, Immediate, false, Read),
	d(0x25, AND, 3, ZeroPage, false, Read),
	d(0x35, AND, 4, ZeroPageX, false, Read),
	d(0x2D, AND, 4, Absolute, false, Read),
	d(0x3D, AND, 4, AbsoluteX, true, Read),
	d(0x39, AND, 4, AbsoluteY, true, Read),
	d(0x21, AND, 6, IndexedIndirect, false, Read),
	d(0x31, AND, 5, IndirectIndexed, true, Read),

	// ASL
	d(0x0A, ASL, 2, Accumulator, false, Modify),
	d(0x06, ASL, 5, ZeroPage, false, Modify),
	d(0x16, ASL, 6, ZeroPageX, false, Modify),
	d(0x0E, ASL, 6, Absolute, false, Modify),
	d(0x1E, ASL, 7, AbsoluteX, false, Modify),

	// branches - Cycles is the base (untaken) cost; the CPU adds +1 for a
	// taken branch and +1 more for a page crossing, per spec.
	d(0x90, BCC, 2, Relative, true, Flow),
	d(0xB0, BCS, 2, Relative, true, Flow),
	d(0xF0, BEQ, 2, Relative, true, Flow),
	d(0x30, BMI, 2, Relative, true, Flow),
	d(0xD0, BNE, 2, Relative, true, Flow),
	d(0x10, BPL, 2, Relative, true, Flow),
	d(0x50, BVC, 2, Relative, true, Flow),
	d(0x70, BVS, 2, Relative, true, Flow),

	d(0x24, BIT, 3, ZeroPage, false, Read),
	d(0x2C, BIT, 4, Absolute, false, Read),

	d(0x00, BRK, 7, Implied, false, Interrupt),

	d(0x18, CLC, 2, Implied, false, Modify),
	d(0xD8, CLD, 2, Implied, false, Modify),
	d(0x58, CLI, 2, Implied, false, Modify),
	d(0xB8, CLV, 2, Implied, false, Modify),

	// CMP
	d(0xC9, CMP, 2, Immediate, false, Read),
	d(0xC5, CMP, 3, ZeroPage, false, Read),
	d(0xD5, CMP, 4, ZeroPageX, false, Read),
	d(0xCD, CMP, 4, Absolute, false, Read),
	d(0xDD, CMP, 4, AbsoluteX, true, Read),
	d(0xD9, CMP, 4, AbsoluteY, true, Read),
	d(0xC1, CMP, 6, IndexedIndirect, false, Read),
	d(0xD1, CMP, 5, IndirectIndexed, true, Read),

	d(0xE0, CPX, 2, Immediate, false, Read),
	d(0xE4, CPX, 3, ZeroPage, false, Read),
	d(0xEC, CPX, 4, Absolute, false, Read),

	d(0xC0, CPY, 2, Immediate, false, Read),
	d(0xC4, CPY, 3, ZeroPage, false, Read),
	d(0xCC, CPY, 4, Absolute, false, Read),

	// DEC
	d(0xC6, DEC, 5, ZeroPage, false, Modify),
	d(0xD6, DEC, 6, ZeroPageX, false, Modify),
	d(0xCE, DEC, 6, Absolute, false, Modify),
	d(0xDE, DEC, 7, AbsoluteX, false, Modify),

	d(0xCA, DEX, 2, Implied, false, Modify),
	d(0x88, DEY, 2, Implied, false, Modify),

	// EOR
	d(0x49, EOR, 2, Immediate, false, Read),
	d(0x45, EOR, 3, ZeroPage, false, Read),
	d(0x55, EOR, 4, ZeroPageX, false, Read),
	d(0x4D, EOR, 4, Absolute, false, Read),
	d(0x5D, EOR, 4, AbsoluteX, true, Read),
	d(0x59, EOR, 4, AbsoluteY, true, Read),
	d(0x41, EOR, 6, IndexedIndirect, false, Read),
	d(0x51, EOR, 5, IndirectIndexed, true, Read),

	// INC
	d(0xE6, INC, 5, ZeroPage, false, Modify),
	d(0xF6, INC, 6, ZeroPageX, false, Modify),
	d(0xEE, INC, 6, Absolute, false, Modify),
	d(0xFE, INC, 7, AbsoluteX, false, Modify),

	d(0xE8, INX, 2, Implied, false, Modify),
	d(0xC8, INY, 2, Implied, false, Modify),

	d(0x4C, JMP, 3, Absolute, false, Flow),
	d(0x6C, JMP, 5, Indirect, false, Flow),

	d(0x20, JSR, 6, Absolute, false, Subroutine),

	// LDA
	d(0xA9, LDA, 2, Immediate, false, Read),
	d(0xA5, LDA, 3, ZeroPage, false, Read),
	d(0xB5, LDA, 4, ZeroPageX, false, Read),
	d(0xAD, LDA, 4, Absolute, false, Read),
	d(0xBD, LDA, 4, AbsoluteX, true, Read),
	d(0xB9, LDA, 4, AbsoluteY, true, Read),
	d(0xA1, LDA, 6, IndexedIndirect, false, Read),
	d(0xB1, LDA, 5, IndirectIndexed, true, Read),

	// LDX
	d(0xA2, LDX, 2, Immediate, false, Read),
	d(0xA6, LDX, 3, ZeroPage, false, Read),
	d(0xB6, LDX, 4, ZeroPageY, false, Read),
	d(0xAE, LDX, 4, Absolute, false, Read),
	d(0xBE, LDX, 4, AbsoluteY, true, Read),

	// LDY
	d(0xA0, LDY, 2, Immediate, false, Read),
	d(0xA4, LDY, 3, ZeroPage, false, Read),
	d(0xB4, LDY, 4, ZeroPageX, false, Read),
	d(0xAC, LDY, 4, Absolute, false, Read),
	d(0xBC, LDY, 4, AbsoluteX, true, Read),

	// LSR
	d(0x4A, LSR, 2, Accumulator, false, Modify),
	d(0x46, LSR, 5, ZeroPage, false, Modify),
	d(0x56, LSR, 6, ZeroPageX, false, Modify),
	d(0x4E, LSR, 6, Absolute, false, Modify),
	d(0x5E, LSR, 7, AbsoluteX, false, Modify),

	d(0xEA, NOP, 2, Implied, false, Read),

	// ORA
	d(0x09, ORA, 2, Immediate, false, Read),
	d(0x05, ORA, 3, ZeroPage, false, Read),
	d(0x15, ORA, 4, ZeroPageX, false, Read),
	d(0x0D, ORA, 4, Absolute, false, Read),
	d(0x1D, ORA, 4, AbsoluteX, true, Read),
	d(0x19, ORA, 4, AbsoluteY, true, Read),
	d(0x01, ORA, 6, IndexedIndirect, false, Read),
	d(0x11, ORA, 5, IndirectIndexed, true, Read),

	d(0x48, PHA, 3, Implied, false, Write),
	d(0x08, PHP, 3, Implied, false, Write),
	d(0x68, PLA, 4, Implied, false, Read),
	d(0x28, PLP, 4, Implied, false, Read),

	// ROL
	d(0x2A, ROL, 2, Accumulator, false, Modify),
	d(0x26, ROL, 5, ZeroPage, false, Modify),
	d(0x36, ROL, 6, ZeroPageX, false, Modify),
	d(0x2E, ROL, 6, Absolute, false, Modify),
	d(0x3E, ROL, 7, AbsoluteX, false, Modify),

	// ROR
	d(0x6A, ROR, 2, Accumulator, false, Modify),
	d(0x66, ROR, 5, ZeroPage, false, Modify),
	d(0x76, ROR, 6, ZeroPageX, false, Modify),
	d(0x6E, ROR, 6, Absolute, false, Modify),
	d(0x7E, ROR, 7, AbsoluteX, false, Modify),

	d(0x40, RTI, 6, Implied, false, Interrupt),
	d(0x60, RTS, 6, Implied, false, Subroutine),

	// SBC
	d(0xE9, SBC, 2, Immediate, false, Read),
	d(0xE5, SBC, 3, ZeroPage, false, Read),
	d(0xF5, SBC, 4, ZeroPageX, false, Read),
	d(0xED, SBC, 4, Absolute, false, Read),
	d(0xFD, SBC, 4, AbsoluteX, true, Read),
	d(0xF9, SBC, 4, AbsoluteY, true, Read),
	d(0xE1, SBC, 6, IndexedIndirect, false, Read),
	d(0xF1, SBC, 5, IndirectIndexed, true, Read),

	d(0x38, SEC, 2, Implied, false, Modify),
	d(0xF8, SED, 2, Implied, false, Modify),
	d(0x78, SEI, 2, Implied, false, Modify),

	// STA
	d(0x85, STA, 3, ZeroPage, false, Write),
	d(0x95, STA, 4, ZeroPageX, false, Write),
	d(0x8D, STA, 4, Absolute, false, Write),
	d(0x9D, STA, 5, AbsoluteX, false, Write),
	d(0x99, STA, 5, AbsoluteY, false, Write),
	d(0x81, STA, 6, IndexedIndirect, false, Write),
	d(0x91, STA, 6, IndirectIndexed, false, Write),

	// STX / STY
	d(0x86, STX, 3, ZeroPage, false, Write),
	d(0x96, STX, 4, ZeroPageY, false, Write),
	d(0x8E, STX, 4, Absolute, false, Write),

	d(0x84, STY, 3, ZeroPage, false, Write),
	d(0x94, STY, 4, ZeroPageX, false, Write),
	d(0x8C, STY, 4, Absolute, false, Write),

	d(0xAA, TAX, 2, Implied, false, Modify),
	d(0xA8, TAY, 2, Implied, false, Modify),
	d(0xBA, TSX, 2, Implied, false, Modify),
	d(0x8A, TXA, 2, Implied, false, Modify),
	d(0x9A, TXS, 2, Implied, false, Modify),
	d(0x98, TYA, 2, Implied, false, Modify),

	// undocumented opcodes. these are the ones that VCS cartridges - in
	// particular ones built with optimising 6502 compilers/assemblers - are
	// known to rely on.
	u(0xA7, LAX, 3, ZeroPage, false, Read),
	u(0xB7, LAX, 4, ZeroPageY, false, Read),
	u(0xAF, LAX, 4, Absolute, false, Read),
	u(0xBF, LAX, 4, AbsoluteY, true, Read),
	u(0xA3, LAX, 6, IndexedIndirect, false, Read),
	u(0xB3, LAX, 5, IndirectIndexed, true, Read),

	u(0x87, SAX, 3, ZeroPage, false, Write),
	u(0x97, SAX, 4, ZeroPageY, false, Write),
	u(0x8F, SAX, 4, Absolute, false, Write),
	u(0x83, SAX, 6, IndexedIndirect, false, Write),

	u(0xC7, DCP, 5, ZeroPage, false, Modify),
	u(0xD7, DCP, 6, ZeroPageX, false, Modify),
	u(0xCF, DCP, 6, Absolute, false, Modify),
	u(0xDF, DCP, 7, AbsoluteX, false, Modify),
	u(0xDB, DCP, 7, AbsoluteY, false, Modify),
	u(0xC3, DCP, 8, IndexedIndirect, false, Modify),
	u(0xD3, DCP, 8, IndirectIndexed, false, Modify),

	u(0xE7, ISC, 5, ZeroPage, false, Modify),
	u(0xF7, ISC, 6, ZeroPageX, false, Modify),
	u(0xEF, ISC, 6, Absolute, false, Modify),
	u(0xFF, ISC, 7, AbsoluteX, false, Modify),
	u(0xFB, ISC, 7, AbsoluteY, false, Modify),
	u(0xE3, ISC, 8, IndexedIndirect, false, Modify),
	u(0xF3, ISC, 8, IndirectIndexed, false, Modify),

	u(0x07, SLO, 5, ZeroPage, false, Modify),
	u(0x17, SLO, 6, ZeroPageX, false, Modify),
	u(0x0F, SLO, 6, Absolute, false, Modify),
	u(0x1F, SLO, 7, AbsoluteX, false, Modify),
	u(0x1B, SLO, 7, AbsoluteY, false, Modify),
	u(0x03, SLO, 8, IndexedIndirect, false, Modify),
	u(0x13, SLO, 8, IndirectIndexed, false, Modify),
}

// ByOpCode indexes Definitions by opcode byte for O(1) dispatch lookup.
var ByOpCode [256]*Definition

func init() {
	for i := range Definitions {
		defn := &Definitions[i]
		if ByOpCode[defn.OpCode] != nil {
			panic(fmt.Sprintf("duplicate opcode definition: %#02x", defn.OpCode))
		}
		ByOpCode[defn.OpCode] = defn
	}
}
