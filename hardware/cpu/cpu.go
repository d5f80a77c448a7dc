// This file is part of famicore.
//
// famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with famicore.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"fmt"

	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/cpu/instructions"
	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/hardware/memory/bus"
	"github.com/famicore/famicore/hardware/memory/cpubus"
	"github.com/famicore/famicore/logger"
)

// CPU implements the 6502 as found in the NES. Register logic is implemented
// by the Register type in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	// the number of cycles consumed since the last reset. instructions never
	// read this value
	Cycles uint64

	mem cpubus.Memory

	// last result. the result of the most recent call to ExecuteInstruction()
	LastResult execution.Result

	// NoFlowControl sets whether the cpu responds accurately to instructions
	// that affect the flow of the program (branches, JMP, subroutines and
	// interrupts). useful for tools that want to visit every part of a
	// program.
	NoFlowControl bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU should be Reset() before use.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:    mem,
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewStackPointer(0),
		Status: registers.NewStatusRegister(),
		acc8:   registers.NewRegister(0, "accumulator"),
	}
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new cpubus.Memory into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and loads the PC with the address in the
// reset vector. The stack pointer is set to 0xfd and interrupts are disabled.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xfd)
	mc.Status.Reset()
	mc.Status.InterruptDisable = true
	mc.Cycles = 0

	mc.LoadPCIndirect(cpubus.Reset)

	// not touching NoFlowControl
}

// HasReset checks whether the CPU has recently been reset.
func (mc *CPU) HasReset() bool {
	return mc.LastResult.Defn == nil
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) {
	mc.PC.Load(mc.read16Bit(indirectAddress))
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}

// read16Bit returns the little endian 16bit value from the specified address.
func (mc *CPU) read16Bit(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return (uint16(hi) << 8) | uint16(lo)
}

// push a byte onto the stack.
func (mc *CPU) push(v uint8) {
	mc.mem.Write(mc.SP.Push(), v)
}

// pull a byte from the stack.
func (mc *CPU) pull() uint8 {
	return mc.mem.Read(mc.SP.Pull())
}

// push the 16bit value onto the stack, high byte first.
func (mc *CPU) push16Bit(v uint16) {
	mc.push(uint8(v >> 8))
	mc.push(uint8(v))
}

// pull a 16bit value from the stack, low byte first.
func (mc *CPU) pull16Bit() uint16 {
	lo := mc.pull()
	hi := mc.pull()
	return (uint16(hi) << 8) | uint16(lo)
}

// branch to the relative offset if flag is true. returns the number of
// additional cycles consumed.
func (mc *CPU) branch(flag bool, offset uint8) int {
	// return early if NoFlowControl flag is turned on
	if mc.NoFlowControl {
		return 0
	}

	// note branching result
	mc.LastResult.BranchSuccess = flag

	if !flag {
		return 0
	}

	// the offset is relative to the address of the instruction following the
	// branch, which is the current value of the PC
	if mc.PC.Relative(offset) {
		mc.LastResult.PageFault = true
		return 2
	}

	return 1
}

// AllowLogging implements the logger.Permission interface. A CPU that is not
// honouring flow control is not running a real program and should not log.
func (mc *CPU) AllowLogging() bool {
	return !mc.NoFlowControl
}

// NilCycleCallback can be provided as an argument to ExecuteInstruction().
// It's a convenience do-nothing function.
func NilCycleCallback() error {
	return nil
}

// ExecuteInstruction steps CPU forward one instruction. The basic process when
// executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. resolve operand (if any) according to the addressing mode of the instruction
//  3. advance the PC past the instruction
//  4. using the operator as a guide, perform the instruction on the data
//
// All instructions take at least 2 cycles. The cycleCallback() function is
// run once for every cycle consumed by the instruction, after the instruction
// has been performed. The only errors returned by the function are errors
// returned by cycleCallback().
//
// The cycleCallback argument should *never* be nil. Use the NilCycleCallback()
// function in this package if you want a nil effect.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) (execution.Result, error) {
	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// read next instruction
	defn := instructions.Decode(mc.mem.Read(mc.PC.Address()))
	mc.LastResult.Defn = defn
	mc.PC.Add(1)

	// resolve operand. the addressing mode reads the instruction data at the
	// PC but does not move the PC
	op := mc.resolve(defn)
	mc.PC.Add(uint16(defn.Bytes - 1))

	mc.LastResult.ByteCount = defn.Bytes
	mc.LastResult.InstructionData = op.data
	mc.LastResult.CPUBug = op.bug

	cycles := defn.Cycles

	// extra cycle for page sensitive instructions that cross a page
	if defn.PageSensitive && op.pageCrossed {
		mc.LastResult.PageFault = true
		cycles++
	}

	// value is the operand value. for read-modify-write instructions the
	// value will change during execution and be used to write back to memory
	value := op.value
	address := op.address

	// actually perform instruction based on operator group
	switch defn.Operator {
	case instructions.Illegal:
		logger.Logf(mc, "cpu", "illegal opcode 0x%02x at 0x%04x", defn.OpCode, mc.LastResult.Address)

	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		mc.push(mc.A.Value())

	case instructions.Pla:
		mc.A.Load(mc.pull())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Negative = mc.A.IsNegative()

	case instructions.Php:
		mc.push(mc.Status.Pushed(true))

	case instructions.Plp:
		mc.Status.Load(mc.pull())

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Negative = mc.A.IsNegative()

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Negative = mc.X.IsNegative()

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Negative = mc.Y.IsNegative()

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Negative = mc.A.IsNegative()

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Negative = mc.X.IsNegative()

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Negative = mc.A.IsNegative()

	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Negative = mc.A.IsNegative()

	case instructions.And:
		mc.A.AND(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Negative = mc.A.IsNegative()

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Negative = mc.A.IsNegative()

	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Negative = mc.X.IsNegative()

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Negative = mc.Y.IsNegative()

	case instructions.Sta:
		mc.mem.Write(address, mc.A.Value())

	case instructions.Stx:
		mc.mem.Write(address, mc.X.Value())

	case instructions.Sty:
		mc.mem.Write(address, mc.Y.Value())

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Negative = mc.X.IsNegative()

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Negative = mc.Y.IsNegative()

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Negative = mc.X.IsNegative()

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Negative = mc.Y.IsNegative()

	case instructions.Asl:
		r := mc.shiftRegister(defn, value)
		mc.Status.Carry = r.ASL()
		mc.Status.Zero = r.IsZero()
		mc.Status.Negative = r.IsNegative()
		value = r.Value()

	case instructions.Lsr:
		r := mc.shiftRegister(defn, value)
		mc.Status.Carry = r.LSR()
		mc.Status.Zero = r.IsZero()
		mc.Status.Negative = r.IsNegative()
		value = r.Value()

	case instructions.Rol:
		r := mc.shiftRegister(defn, value)
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.Status.Zero = r.IsZero()
		mc.Status.Negative = r.IsNegative()
		value = r.Value()

	case instructions.Ror:
		r := mc.shiftRegister(defn, value)
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.Status.Zero = r.IsZero()
		mc.Status.Negative = r.IsNegative()
		value = r.Value()

	case instructions.Adc:
		// the decimal mode flag has no effect on the NES
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Negative = mc.A.IsNegative()

	case instructions.Sbc:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Negative = mc.A.IsNegative()

	case instructions.Inc:
		r := &mc.acc8
		r.Load(value)
		r.Add(1, false)
		mc.Status.Zero = r.IsZero()
		mc.Status.Negative = r.IsNegative()
		value = r.Value()

	case instructions.Dec:
		r := &mc.acc8
		r.Load(value)
		r.Add(0xff, false)
		mc.Status.Zero = r.IsZero()
		mc.Status.Negative = r.IsNegative()
		value = r.Value()

	case instructions.Cmp:
		mc.Status.Carry, mc.Status.Zero, mc.Status.Negative = mc.A.Compare(value)

	case instructions.Cpx:
		mc.Status.Carry, mc.Status.Zero, mc.Status.Negative = mc.X.Compare(value)

	case instructions.Cpy:
		mc.Status.Carry, mc.Status.Zero, mc.Status.Negative = mc.Y.Compare(value)

	case instructions.Bit:
		r := &mc.acc8
		r.Load(value)
		mc.Status.Negative = r.IsNegative()
		mc.Status.Overflow = r.IsBitV()
		r.AND(mc.A.Value())
		mc.Status.Zero = r.IsZero()

	case instructions.Jmp:
		if !mc.NoFlowControl {
			mc.PC.Load(address)
		}

	case instructions.Bcc:
		cycles += mc.branch(!mc.Status.Carry, value)

	case instructions.Bcs:
		cycles += mc.branch(mc.Status.Carry, value)

	case instructions.Beq:
		cycles += mc.branch(mc.Status.Zero, value)

	case instructions.Bmi:
		cycles += mc.branch(mc.Status.Negative, value)

	case instructions.Bne:
		cycles += mc.branch(!mc.Status.Zero, value)

	case instructions.Bpl:
		cycles += mc.branch(!mc.Status.Negative, value)

	case instructions.Bvc:
		cycles += mc.branch(!mc.Status.Overflow, value)

	case instructions.Bvs:
		cycles += mc.branch(mc.Status.Overflow, value)

	case instructions.Jsr:
		if !mc.NoFlowControl {
			// the return address pushed to the stack is the address of the
			// last byte of the JSR instruction
			mc.push16Bit(mc.PC.Address() - 1)
			mc.PC.Load(address)
		}

	case instructions.Rts:
		if !mc.NoFlowControl {
			mc.PC.Load(mc.pull16Bit())
			mc.PC.Add(1)
		}

	case instructions.Brk:
		// BRK is a one byte instruction but the byte following the opcode is
		// skipped. the return address is the address of the BRK + 2
		mc.PC.Add(1)

		if !mc.NoFlowControl {
			mc.push16Bit(mc.PC.Address())
			mc.push(mc.Status.Pushed(true))
			mc.Status.InterruptDisable = true
			mc.LoadPCIndirect(cpubus.IRQ)
		}

	case instructions.Rti:
		if !mc.NoFlowControl {
			mc.Status.Load(mc.pull())
			mc.PC.Load(mc.pull16Bit())
		}

	default:
		panic(fmt.Sprintf("cpu: unknown operator (%s)", defn.Operator))
	}

	// write altered value back to memory for RMW instructions
	if defn.Effect == instructions.RMW && op.hasAddress {
		mc.mem.Write(address, value)
	}

	mc.LastResult.Cycles = cycles
	mc.LastResult.Final = true
	mc.Cycles += uint64(cycles)

	for i := 0; i < cycles; i++ {
		if err := cycleCallback(); err != nil {
			return mc.LastResult, err
		}
	}

	return mc.LastResult, nil
}

// shiftRegister returns the register to be used by the shift and rotate
// instructions. the accumulator addressing mode works on the A register
// directly, all other modes work on a copy of the value read from memory.
func (mc *CPU) shiftRegister(defn *instructions.Definition, value uint8) *registers.Register {
	if defn.AddressingMode == instructions.Accumulator {
		return &mc.A
	}
	mc.acc8.Load(value)
	return &mc.acc8
}

// predictRTS is a subset of bus.DebugBus. It's enough for the purposes of
// the PredictRTS() function.
type predictRTS interface {
	Peek(address uint16) uint8
}

// interface check
var _ predictRTS = (bus.DebugBus)(nil)

// PredictRTS returns the PC address that would result if RTS was run at the
// current moment. The stack is inspected without side effects, so the
// function requires a memory implementation that supports Peek(). Returns
// false if it does not.
func (mc *CPU) PredictRTS() (uint16, bool) {
	predict, ok := mc.mem.(predictRTS)
	if !ok {
		return 0, false
	}

	lo := predict.Peek(mc.SP.Peek(1))
	hi := predict.Peek(mc.SP.Peek(2))

	return ((uint16(hi) << 8) | uint16(lo)) + 1, true
}
