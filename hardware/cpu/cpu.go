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

// Package cpu implements the 6507's fetch-decode-execute cycle: one Step
// call executes exactly one instruction, advancing the register file and
// the shared colour clock by the instruction's cycle count.
//
// Ported from the original's Core::step and its instruction_set module, but
// restructured around the flat per-instruction Definition.Cycles model in
// the instructions package rather than the source's cycle-by-cycle
// function-pointer dispatch. The ALU semantics (flag computation for every
// documented operator, plus the five undocumented opcodes VCS carts lean
// on) are preserved faithfully; two known-bad code paths from the source are
// corrected here rather than carried forward; see the comments on
// execBranch and adc/sbc.
package cpu

import (
	"github.com/jetsetilly/vcscore/errors"
	"github.com/jetsetilly/vcscore/hardware/clocks"
	"github.com/jetsetilly/vcscore/hardware/cpu/execution"
	"github.com/jetsetilly/vcscore/hardware/cpu/instructions"
	"github.com/jetsetilly/vcscore/hardware/cpu/registers"
	"github.com/jetsetilly/vcscore/hardware/memory/bus"
)

// ResetVector and IRQVector are the fixed addresses the 6507 reads its
// program counter from at power-on and on BRK/IRQ, respectively. The 6507
// has no separate NMI pin wired up in the VCS, so there is no NMI vector.
const (
	ResetVector = 0xfffc
	IRQVector   = 0xfffe
)

// CPU drives fetch-decode-execute for the 6507 against a memory bus and a
// shared colour clock.
type CPU struct {
	Reg   registers.Registers
	Mem   bus.CPUBus
	Clock *clocks.Clock

	// LastResult records detail about the most recently executed
	// instruction, for disassembly/debugging; Step's own correctness
	// doesn't depend on it.
	LastResult execution.Result
}

// NewCPU creates a CPU wired to the given bus and clock, and resets it.
func NewCPU(mem bus.CPUBus, clock *clocks.Clock) (*CPU, error) {
	c := &CPU{Mem: mem, Clock: clock}
	return c, c.Reset()
}

// Reset puts the register file into its documented power-on state and
// loads the program counter from the reset vector.
func (c *CPU) Reset() error {
	c.Reg.Reset()
	addr, err := c.read16(ResetVector)
	if err != nil {
		return err
	}
	c.Reg.PC = addr
	return nil
}

func (c *CPU) read16(addr uint16) (uint16, error) {
	lo, err := c.Mem.Read(addr)
	if err != nil {
		return 0, err
	}
	hi, err := c.Mem.Read(addr + 1)
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

// read16ZeroPage reads a little endian pointer from a zero page address,
// wrapping within page zero rather than crossing into page one - the
// indirect addressing bug (ind,X) and (ind),Y are both known for.
func (c *CPU) read16ZeroPage(addr uint8) (uint16, error) {
	lo, err := c.Mem.Read(uint16(addr))
	if err != nil {
		return 0, err
	}
	hi, err := c.Mem.Read(uint16(addr + 1))
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

// fetch reads the byte at PC and advances PC past it.
func (c *CPU) fetch() (uint8, error) {
	v, err := c.Mem.Read(c.Reg.PC)
	if err != nil {
		return 0, err
	}
	c.Reg.PC++
	return v, nil
}

func (c *CPU) fetch16() (uint16, error) {
	lo, err := c.fetch()
	if err != nil {
		return 0, err
	}
	hi, err := c.fetch()
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

func (c *CPU) push(v uint8) error {
	err := c.Mem.Write(0x0100|uint16(c.Reg.SP), v)
	c.Reg.SP--
	return err
}

func (c *CPU) pull() (uint8, error) {
	c.Reg.SP++
	return c.Mem.Read(0x0100 | uint16(c.Reg.SP))
}

// Step executes the single instruction at the current program counter,
// advances the clock by however many cycles it took, and returns a Result
// describing what happened.
func (c *CPU) Step() (execution.Result, error) {
	var res execution.Result
	res.Address = c.Reg.PC

	opcode, err := c.fetch()
	if err != nil {
		res.Error = err.Error()
		return res, err
	}
	res.ByteCount = 1

	defn := instructions.ByOpCode[opcode]
	if defn == nil {
		err := errors.Errorf(errors.UnimplementedInstruction, opcode, res.Address)
		res.Error = err.Error()
		return res, err
	}
	res.Defn = defn
	res.Cycles = defn.Cycles

	switch defn.Operator {
	case instructions.BRK:
		err = c.execBRK(&res)
	case instructions.JSR:
		err = c.execJSR(&res)
	case instructions.RTS:
		err = c.execRTS(&res)
	case instructions.RTI:
		err = c.execRTI(&res)
	case instructions.JMP:
		err = c.execJMP(&res)
	case instructions.PHA, instructions.PHP, instructions.PLA, instructions.PLP:
		err = c.execStack(&res)
	default:
		switch {
		case defn.IsBranch():
			err = c.execBranch(&res)
		case defn.AddressingMode == instructions.Implied || defn.AddressingMode == instructions.Accumulator:
			err = c.execImplied(&res)
		default:
			err = c.execMemory(&res)
		}
	}

	if err != nil {
		if res.Error == "" {
			res.Error = err.Error()
		}
		return res, err
	}

	c.Clock.AddCycles(res.Cycles)
	res.Final = true
	c.LastResult = res
	return res, nil
}

// operand resolves the effective address for every addressing mode used by
// the general read/write/modify instructions (branches, JMP/JSR/RTS/RTI/BRK
// and the stack operators all have their own dedicated handling and never
// reach here).
func (c *CPU) operand(res *execution.Result) (uint16, error) {
	defn := res.Defn
	switch defn.AddressingMode {
	case instructions.Immediate:
		addr := c.Reg.PC
		c.Reg.PC++
		res.ByteCount++
		return addr, nil

	case instructions.ZeroPage:
		b, err := c.fetch()
		if err != nil {
			return 0, err
		}
		res.ByteCount++
		res.InstructionData = uint16(b)
		return uint16(b), nil

	case instructions.ZeroPageX:
		b, err := c.fetch()
		if err != nil {
			return 0, err
		}
		res.ByteCount++
		res.InstructionData = uint16(b)
		if uint16(b)+uint16(c.Reg.X) > 0xff {
			res.CPUBug = string(execution.ZeroPageIndexBug)
		}
		return uint16(b + c.Reg.X), nil

	case instructions.ZeroPageY:
		b, err := c.fetch()
		if err != nil {
			return 0, err
		}
		res.ByteCount++
		res.InstructionData = uint16(b)
		if uint16(b)+uint16(c.Reg.Y) > 0xff {
			res.CPUBug = string(execution.ZeroPageIndexBug)
		}
		return uint16(b + c.Reg.Y), nil

	case instructions.Absolute:
		addr, err := c.fetch16()
		if err != nil {
			return 0, err
		}
		res.ByteCount += 2
		res.InstructionData = addr
		return addr, nil

	case instructions.AbsoluteX:
		base, err := c.fetch16()
		if err != nil {
			return 0, err
		}
		res.ByteCount += 2
		res.InstructionData = base
		addr := base + uint16(c.Reg.X)
		if defn.PageSensitive && addr&0xff00 != base&0xff00 {
			res.PageFault = true
			res.Cycles++
		}
		return addr, nil

	case instructions.AbsoluteY:
		base, err := c.fetch16()
		if err != nil {
			return 0, err
		}
		res.ByteCount += 2
		res.InstructionData = base
		addr := base + uint16(c.Reg.Y)
		if defn.PageSensitive && addr&0xff00 != base&0xff00 {
			res.PageFault = true
			res.Cycles++
		}
		return addr, nil

	case instructions.IndexedIndirect:
		b, err := c.fetch()
		if err != nil {
			return 0, err
		}
		res.ByteCount++
		res.InstructionData = uint16(b)
		if uint16(b)+uint16(c.Reg.X) > 0xff {
			res.CPUBug = string(execution.IndexedIndirectAddressingBug)
		}
		return c.read16ZeroPage(b + c.Reg.X)

	case instructions.IndirectIndexed:
		b, err := c.fetch()
		if err != nil {
			return 0, err
		}
		res.ByteCount++
		res.InstructionData = uint16(b)
		base, err := c.read16ZeroPage(b)
		if err != nil {
			return 0, err
		}
		addr := base + uint16(c.Reg.Y)
		if defn.PageSensitive && addr&0xff00 != base&0xff00 {
			res.PageFault = true
			res.Cycles++
		}
		return addr, nil

	default:
		return 0, errors.Errorf(errors.InvalidDuringExecution, defn.AddressingMode)
	}
}

// execMemory handles every instruction whose effect reads, writes or
// modifies a byte at a resolved memory address.
func (c *CPU) execMemory(res *execution.Result) error {
	defn := res.Defn
	addr, err := c.operand(res)
	if err != nil {
		return err
	}

	switch defn.Effect {
	case instructions.Write:
		var v uint8
		switch defn.Operator {
		case instructions.STA:
			v = c.Reg.A
		case instructions.STX:
			v = c.Reg.X
		case instructions.STY:
			v = c.Reg.Y
		case instructions.SAX:
			v = c.Reg.A & c.Reg.X
		default:
			return errors.Errorf(errors.InvalidDuringExecution, defn.Operator)
		}
		return c.Mem.Write(addr, v)

	case instructions.Read:
		v, err := c.Mem.Read(addr)
		if err != nil {
			return err
		}
		return c.execRead(defn.Operator, v)

	case instructions.Modify:
		v, err := c.Mem.Read(addr)
		if err != nil {
			return err
		}
		nv, err := c.execModify(defn.Operator, v)
		if err != nil {
			return err
		}
		return c.Mem.Write(addr, nv)

	default:
		return errors.Errorf(errors.InvalidDuringExecution, defn.Effect)
	}
}

// execImplied handles instructions with no memory operand: the Implied
// addressing mode (flag instructions, register transfers, NOP) and the
// Accumulator addressing mode, where the ALU shift/rotate operates on A
// directly instead of a memory byte.
func (c *CPU) execImplied(res *execution.Result) error {
	switch res.Defn.Operator {
	case instructions.NOP:
	case instructions.CLC:
		c.Reg.SetCarry(false)
	case instructions.CLD:
		c.Reg.SetDecimal(false)
	case instructions.CLI:
		c.Reg.SetInterrupt(false)
	case instructions.CLV:
		c.Reg.SetOverflow(false)
	case instructions.SEC:
		c.Reg.SetCarry(true)
	case instructions.SED:
		c.Reg.SetDecimal(true)
	case instructions.SEI:
		c.Reg.SetInterrupt(true)
	case instructions.DEX:
		c.Reg.X--
		c.Reg.SetNZ(c.Reg.X)
	case instructions.DEY:
		c.Reg.Y--
		c.Reg.SetNZ(c.Reg.Y)
	case instructions.INX:
		c.Reg.X++
		c.Reg.SetNZ(c.Reg.X)
	case instructions.INY:
		c.Reg.Y++
		c.Reg.SetNZ(c.Reg.Y)
	case instructions.TAX:
		c.Reg.X = c.Reg.A
		c.Reg.SetNZ(c.Reg.X)
	case instructions.TAY:
		c.Reg.Y = c.Reg.A
		c.Reg.SetNZ(c.Reg.Y)
	case instructions.TSX:
		c.Reg.X = c.Reg.SP
		c.Reg.SetNZ(c.Reg.X)
	case instructions.TXA:
		c.Reg.A = c.Reg.X
		c.Reg.SetNZ(c.Reg.A)
	case instructions.TXS:
		c.Reg.SP = c.Reg.X // the stack pointer transfer alone affects no flags
	case instructions.TYA:
		c.Reg.A = c.Reg.Y
		c.Reg.SetNZ(c.Reg.A)
	case instructions.ASL, instructions.LSR, instructions.ROL, instructions.ROR:
		nv, err := c.execModify(res.Defn.Operator, c.Reg.A)
		if err != nil {
			return err
		}
		c.Reg.A = nv
	default:
		return errors.Errorf(errors.InvalidDuringExecution, res.Defn.Operator)
	}
	return nil
}

// execRead implements every Read-effect ALU operator: the value has already
// been fetched from memory or an Immediate operand.
func (c *CPU) execRead(op instructions.Operator, v uint8) error {
	switch op {
	case instructions.LDA:
		c.Reg.A = v
		c.Reg.SetNZ(c.Reg.A)
	case instructions.LDX:
		c.Reg.X = v
		c.Reg.SetNZ(c.Reg.X)
	case instructions.LDY:
		c.Reg.Y = v
		c.Reg.SetNZ(c.Reg.Y)
	case instructions.LAX:
		c.Reg.A = v
		c.Reg.X = v
		c.Reg.SetNZ(v)
	case instructions.AND:
		c.Reg.A &= v
		c.Reg.SetNZ(c.Reg.A)
	case instructions.ORA:
		c.Reg.A |= v
		c.Reg.SetNZ(c.Reg.A)
	case instructions.EOR:
		c.Reg.A ^= v
		c.Reg.SetNZ(c.Reg.A)
	case instructions.BIT:
		c.Reg.SetZero(c.Reg.A&v == 0)
		c.Reg.SetOverflow(v&0x40 != 0)
		c.Reg.SetNegative(v&0x80 != 0)
	case instructions.CMP:
		c.compare(c.Reg.A, v)
	case instructions.CPX:
		c.compare(c.Reg.X, v)
	case instructions.CPY:
		c.compare(c.Reg.Y, v)
	case instructions.ADC:
		c.adc(v)
	case instructions.SBC:
		c.sbc(v)
	default:
		return errors.Errorf(errors.InvalidDuringExecution, op)
	}
	return nil
}

// execModify implements every read-modify-write operator, for both a
// memory byte (the caller writes the returned value back) and the
// Accumulator addressing case (the caller stores it into A directly).
func (c *CPU) execModify(op instructions.Operator, v uint8) (uint8, error) {
	switch op {
	case instructions.ASL:
		c.Reg.SetCarry(v&0x80 != 0)
		v <<= 1
		c.Reg.SetNZ(v)
		return v, nil
	case instructions.LSR:
		c.Reg.SetCarry(v&0x01 != 0)
		v >>= 1
		c.Reg.SetNZ(v)
		return v, nil
	case instructions.ROL:
		carryIn := uint8(0)
		if c.Reg.Carry() {
			carryIn = 1
		}
		c.Reg.SetCarry(v&0x80 != 0)
		v = (v << 1) | carryIn
		c.Reg.SetNZ(v)
		return v, nil
	case instructions.ROR:
		carryIn := uint8(0)
		if c.Reg.Carry() {
			carryIn = 0x80
		}
		c.Reg.SetCarry(v&0x01 != 0)
		v = (v >> 1) | carryIn
		c.Reg.SetNZ(v)
		return v, nil
	case instructions.INC:
		v++
		c.Reg.SetNZ(v)
		return v, nil
	case instructions.DEC:
		v--
		c.Reg.SetNZ(v)
		return v, nil
	case instructions.SLO:
		c.Reg.SetCarry(v&0x80 != 0)
		v <<= 1
		c.Reg.A |= v
		c.Reg.SetNZ(c.Reg.A)
		return v, nil
	case instructions.DCP:
		v--
		c.compare(c.Reg.A, v)
		return v, nil
	case instructions.ISC:
		v++
		c.sbc(v)
		return v, nil
	default:
		return 0, errors.Errorf(errors.InvalidDuringExecution, op)
	}
}

// compare implements CMP/CPX/CPY/DCP's comparison: a subtraction that's
// never stored, setting Carry when the register is greater than or equal
// to the operand and Negative/Zero from the unstored result byte.
func (c *CPU) compare(reg, v uint8) {
	c.Reg.SetCarry(reg >= v)
	c.Reg.SetNZ(reg - v)
}

// adc implements ADC, including BCD (decimal mode) addition.
//
// The source this was ported from hardcoded the overflow flag to true in its
// decimal SBC branch and left "FIXME need to fix flags" comments on both its
// decimal ADC and SBC paths. This corrects that: N, V and Z are always
// derived from the binary sum of the two operands, which is the documented
// (if famously surprising) behaviour of NMOS 6502 decimal arithmetic - only
// the stored accumulator value and the carry flag take the BCD adjustment.
func (c *CPU) adc(v uint8) {
	a := c.Reg.A
	carryIn := uint8(0)
	if c.Reg.Carry() {
		carryIn = 1
	}

	binSum := int(a) + int(v) + int(carryIn)
	binResult := uint8(binSum)

	if c.Reg.Decimal() {
		lo := int(a&0x0f) + int(v&0x0f) + int(carryIn)
		hi := int(a>>4) + int(v>>4)
		if lo > 9 {
			lo += 6
			hi++
		}
		if hi > 9 {
			hi += 6
		}
		c.Reg.A = uint8(hi<<4) | uint8(lo&0xf)
		c.Reg.SetCarry(hi > 15)
	} else {
		c.Reg.A = binResult
		c.Reg.SetCarry(binSum > 0xff)
	}

	c.Reg.SetOverflow((a^binResult)&(v^binResult)&0x80 != 0)
	c.Reg.SetNegative(binResult&0x80 != 0)
	c.Reg.SetZero(binResult == 0)
}

// sbc implements SBC (and ISC's internal subtraction), including BCD
// subtraction. See adc's comment: N, V and Z are derived from the binary
// difference regardless of decimal mode.
func (c *CPU) sbc(v uint8) {
	a := c.Reg.A
	borrowIn := uint8(0)
	if !c.Reg.Carry() {
		borrowIn = 1
	}

	binDiff := int(a) - int(v) - int(borrowIn)
	binResult := uint8(binDiff)

	if c.Reg.Decimal() {
		lo := int(a&0xf) - int(v&0xf) - int(borrowIn)
		hi := int(a>>4) - int(v>>4)
		if lo < 0 {
			lo -= 6
			hi--
		}
		if hi < 0 {
			hi -= 6
		}
		c.Reg.A = uint8(hi<<4) | uint8(lo&0xf)
	} else {
		c.Reg.A = binResult
	}

	c.Reg.SetCarry(binDiff >= 0)
	c.Reg.SetOverflow((a^v)&(a^binResult)&0x80 != 0)
	c.Reg.SetNegative(binResult&0x80 != 0)
	c.Reg.SetZero(binResult == 0)
}

// execBranch implements the eight conditional branch operators.
//
// The page-cross check compares full pages with a 0xff00 mask. The source
// this was ported from used a 12 bit 0x0f00 mask, which compares only
// address bits 8-11 and so misses a crossing between pages that differ
// only in bits 12-15 - an extra cycle would silently go uncounted. Fixed here.
func (c *CPU) execBranch(res *execution.Result) error {
	defn := res.Defn
	offset, err := c.fetch()
	if err != nil {
		return err
	}
	res.ByteCount++
	res.InstructionData = uint16(offset)

	var taken bool
	switch defn.Operator {
	case instructions.BPL:
		taken = !c.Reg.Negative()
	case instructions.BMI:
		taken = c.Reg.Negative()
	case instructions.BVC:
		taken = !c.Reg.Overflow()
	case instructions.BVS:
		taken = c.Reg.Overflow()
	case instructions.BCC:
		taken = !c.Reg.Carry()
	case instructions.BCS:
		taken = c.Reg.Carry()
	case instructions.BNE:
		taken = !c.Reg.Zero()
	case instructions.BEQ:
		taken = c.Reg.Zero()
	default:
		return errors.Errorf(errors.InvalidDuringExecution, defn.Operator)
	}
	res.BranchSuccess = taken
	if !taken {
		return nil
	}

	res.Cycles++
	start := c.Reg.PC
	target := start + uint16(int8(offset))
	if start&0xff00 != target&0xff00 {
		res.PageFault = true
		res.Cycles++
	}
	c.Reg.PC = target
	return nil
}

// execStack implements PHA/PHP/PLA/PLP.
func (c *CPU) execStack(res *execution.Result) error {
	switch res.Defn.Operator {
	case instructions.PHA:
		return c.push(c.Reg.A)
	case instructions.PHP:
		return c.push(c.Reg.PushValue(true))
	case instructions.PLA:
		v, err := c.pull()
		if err != nil {
			return err
		}
		c.Reg.A = v
		c.Reg.SetNZ(v)
		return nil
	case instructions.PLP:
		v, err := c.pull()
		if err != nil {
			return err
		}
		c.Reg.SetFromPull(v)
		return nil
	default:
		return errors.Errorf(errors.InvalidDuringExecution, res.Defn.Operator)
	}
}

// execJSR pushes the address of the last byte of the JSR instruction and
// jumps to the 16 bit absolute operand.
func (c *CPU) execJSR(res *execution.Result) error {
	target, err := c.fetch16()
	if err != nil {
		return err
	}
	res.ByteCount += 2
	res.InstructionData = target

	ret := c.Reg.PC - 1
	if err := c.push(uint8(ret >> 8)); err != nil {
		return err
	}
	if err := c.push(uint8(ret)); err != nil {
		return err
	}
	c.Reg.PC = target
	return nil
}

// execRTS pulls a return address off the stack and resumes just past it.
func (c *CPU) execRTS(res *execution.Result) error {
	lo, err := c.pull()
	if err != nil {
		return err
	}
	hi, err := c.pull()
	if err != nil {
		return err
	}
	c.Reg.PC = (uint16(hi)<<8 | uint16(lo)) + 1
	return nil
}

// execRTI pulls status flags and a return address off the stack.
func (c *CPU) execRTI(res *execution.Result) error {
	p, err := c.pull()
	if err != nil {
		return err
	}
	c.Reg.SetFromPull(p)

	lo, err := c.pull()
	if err != nil {
		return err
	}
	hi, err := c.pull()
	if err != nil {
		return err
	}
	c.Reg.PC = uint16(hi)<<8 | uint16(lo)
	return nil
}

// execBRK pushes PC and flags (with the break bit forced on), disables
// further interrupts, and jumps through the IRQ vector.
func (c *CPU) execBRK(res *execution.Result) error {
	if _, err := c.fetch(); err != nil { // the padding byte BRK reads and discards
		return err
	}
	res.ByteCount++

	ret := c.Reg.PC
	if err := c.push(uint8(ret >> 8)); err != nil {
		return err
	}
	if err := c.push(uint8(ret)); err != nil {
		return err
	}
	if err := c.push(c.Reg.PushValue(true)); err != nil {
		return err
	}
	c.Reg.SetInterrupt(true)

	vec, err := c.read16(IRQVector)
	if err != nil {
		return err
	}
	c.Reg.PC = vec
	return nil
}

// execJMP implements both JMP addressing modes, including the famous
// indirect JMP bug: when the pointer's low byte sits on a page boundary,
// the high byte of the target is read from the start of the same page
// instead of the start of the next one.
func (c *CPU) execJMP(res *execution.Result) error {
	defn := res.Defn
	switch defn.AddressingMode {
	case instructions.Absolute:
		target, err := c.fetch16()
		if err != nil {
			return err
		}
		res.ByteCount += 2
		res.InstructionData = target
		c.Reg.PC = target
		return nil

	case instructions.Indirect:
		ptr, err := c.fetch16()
		if err != nil {
			return err
		}
		res.ByteCount += 2
		res.InstructionData = ptr

		lo, err := c.Mem.Read(ptr)
		if err != nil {
			return err
		}
		var hi uint8
		if ptr&0x00ff == 0x00ff {
			res.CPUBug = string(execution.JmpIndirectAddressingBug)
			hi, err = c.Mem.Read(ptr & 0xff00)
		} else {
			hi, err = c.Mem.Read(ptr + 1)
		}
		if err != nil {
			return err
		}
		c.Reg.PC = uint16(hi)<<8 | uint16(lo)
		return nil

	default:
		return errors.Errorf(errors.InvalidDuringExecution, defn.AddressingMode)
	}
}
