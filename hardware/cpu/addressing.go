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
)

// operand is the result of resolving the addressing mode of an instruction.
type operand struct {
	// the value to be used by the instruction. for immediate and relative
	// mode this is the byte following the opcode. for the accumulator mode
	// it is the value of the A register. for other modes it is the value read
	// from the effective address but only if the instruction reads memory
	value uint8

	// the effective address. only valid if hasAddress is true
	address    uint16
	hasAddress bool

	// the instruction data following the opcode
	data uint16

	// whether indexing moved the effective address onto a different page to
	// the base address
	pageCrossed bool

	// a known CPU bug was triggered while resolving the address
	bug execution.Bug
}

// zeroPage16Bit reads a little endian 16bit value from the zero page. the
// high byte wraps around to the start of the zero page.
func (mc *CPU) zeroPage16Bit(ptr uint8) uint16 {
	lo := mc.mem.Read(uint16(ptr))
	hi := mc.mem.Read(uint16(ptr + 1))
	return (uint16(hi) << 8) | uint16(lo)
}

// resolve the operand for the instruction. the PC should point to the first
// byte following the opcode. the PC is not changed.
//
// memory at the effective address is only read if the instruction is a Read
// or RMW instruction. reading memory mapped registers can have side effects so
// store instructions must never read the address they write to.
func (mc *CPU) resolve(defn *instructions.Definition) operand {
	var op operand

	pc := mc.PC.Address()

	switch defn.AddressingMode {
	case instructions.Implied:
		// no operand

	case instructions.Accumulator:
		op.value = mc.A.Value()

	case instructions.Immediate, instructions.Relative:
		// the value is the next byte in the program. in the case of the
		// relative mode the value is a signed offset from the PC
		op.value = mc.mem.Read(pc)
		op.data = uint16(op.value)
		return op

	case instructions.ZeroPage:
		op.data = uint16(mc.mem.Read(pc))
		op.address = op.data
		op.hasAddress = true

	case instructions.ZeroPageX, instructions.ZeroPageY:
		base := mc.mem.Read(pc)
		op.data = uint16(base)

		idx := mc.X.Value()
		if defn.AddressingMode == instructions.ZeroPageY {
			idx = mc.Y.Value()
		}

		// indexing wraps around within the zero page
		mc.acc8.Load(base)
		if carry, _ := mc.acc8.Add(idx, false); carry {
			op.bug = execution.ZeroPageIndexBug
		}
		op.address = mc.acc8.Address()
		op.hasAddress = true

	case instructions.Absolute:
		op.data = mc.read16Bit(pc)
		op.address = op.data
		op.hasAddress = true

	case instructions.AbsoluteX, instructions.AbsoluteY:
		op.data = mc.read16Bit(pc)

		idx := mc.X.Address()
		if defn.AddressingMode == instructions.AbsoluteY {
			idx = mc.Y.Address()
		}

		op.address = op.data + idx
		op.hasAddress = true
		op.pageCrossed = op.data&0xff00 != op.address&0xff00

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP command
		ptr := mc.read16Bit(pc)
		op.data = ptr

		// the high byte of the address is always read from the same page as
		// the low byte. when the pointer is on the last byte of a page the
		// high byte is read from the start of the same page
		lo := mc.mem.Read(ptr)
		hi := mc.mem.Read((ptr & 0xff00) | ((ptr + 1) & 0x00ff))
		if ptr&0x00ff == 0x00ff {
			op.bug = execution.JmpIndirectAddressingBug
		}

		op.address = (uint16(hi) << 8) | uint16(lo)
		op.hasAddress = true

	case instructions.IndexedIndirect: // x indexing
		base := mc.mem.Read(pc)
		op.data = uint16(base)

		// the pointer wraps around within the zero page
		mc.acc8.Load(base)
		carry, _ := mc.acc8.Add(mc.X.Value(), false)
		ptr := mc.acc8.Value()
		if carry || ptr == 0xff {
			op.bug = execution.IndexedIndirectAddressingBug
		}

		op.address = mc.zeroPage16Bit(ptr)
		op.hasAddress = true

	case instructions.IndirectIndexed: // y indexing
		ptr := mc.mem.Read(pc)
		op.data = uint16(ptr)

		base := mc.zeroPage16Bit(ptr)
		op.address = base + mc.Y.Address()
		op.hasAddress = true
		op.pageCrossed = base&0xff00 != op.address&0xff00

	default:
		panic(fmt.Sprintf("cpu: unknown addressing mode for %s", defn.Operator))
	}

	// read value from memory using address found in AddressingMode switch
	// above only when the instruction is 'Read' or 'RMW'
	//  - for write modes, we only use the address to write a value we already have
	//  - for flow modes, the use of the address is very specific
	if op.hasAddress && (defn.Effect == instructions.Read || defn.Effect == instructions.RMW) {
		op.value = mc.mem.Read(op.address)
	}

	return op
}
