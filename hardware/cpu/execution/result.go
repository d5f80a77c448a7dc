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

package execution

import (
	"fmt"
	"strings"

	"github.com/famicore/famicore/hardware/cpu/instructions"
)

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
//
// The Final field indicates whether the Result value has been completed.
// A Result value with Final set to false should not be relied upon.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition
	Defn *instructions.Definition

	// the actual number of bytes read during decode
	ByteCount int

	// instruction data is the actual instruction data. so, for example, in the
	// case of branch instruction, instruction data is the offset value.
	InstructionData uint16

	// the actual number of cycles taken by the instruction - usually the same
	// as Defn.Cycles but in the case of PageFaults and branches, this value
	// may be different
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a known buggy code path (in the emulated CPU) was triggered
	CPUBug Bug

	// whether branch instruction test passed (ie. branched) or not. testing of
	// this field should be used in conjunction with Defn.IsBranch()
	BranchSuccess bool

	// whether this data has been finalised - some fields in this struct will
	// be undefined if Final is false
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// Illegal returns true if the executed instruction has no documented
// assignment. Illegal instructions are executed as a two cycle no-operation.
func (r Result) Illegal() bool {
	return r.Defn != nil && r.Defn.Illegal
}

// Opcode returns the opcode of the executed instruction. Returns false if no
// instruction has been decoded.
func (r Result) Opcode() (uint8, bool) {
	if r.Defn == nil {
		return 0, false
	}
	return r.Defn.OpCode, true
}

// String returns a single line trace of the instruction. For example:
//
//	0x0600  LDA   #$05     [2]
func (r Result) String() string {
	var programCounter string
	var mnemonic, data string
	var cycles, notes string

	if r.Final {
		programCounter = fmt.Sprintf("0x%04x", r.Address)
	} else {
		programCounter = "      "
	}

	if r.Defn == nil {
		return fmt.Sprintf("%s  ???", programCounter)
	}

	mnemonic = r.Defn.Mnemonic
	data = r.Operand()

	if r.Final {
		cycles = fmt.Sprintf("[%d]", r.Cycles)
	} else {
		cycles = "[v]"
	}

	var n []string
	if r.Defn.Illegal {
		n = append(n, fmt.Sprintf("illegal opcode 0x%02x", r.Defn.OpCode))
	}
	if r.PageFault {
		n = append(n, "page-fault")
	}
	if r.CPUBug != NoBug {
		n = append(n, fmt.Sprintf("* %s *", r.CPUBug))
	}
	if len(n) > 0 {
		notes = fmt.Sprintf(" %s", strings.Join(n, " "))
	}

	return fmt.Sprintf("%s  %-4s  %-9s%s%s", programCounter, mnemonic, data, cycles, notes)
}

// Operand returns the instruction data formatted according to the addressing
// mode of the instruction. For example, "#$05" or "($40),Y". Returns the empty
// string for instructions without an operand.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	var data string

	switch r.Defn.Bytes {
	case 2:
		data = fmt.Sprintf("$%02x", r.InstructionData)
	case 3:
		data = fmt.Sprintf("$%04x", r.InstructionData)
	}

	switch r.Defn.AddressingMode {
	case instructions.Accumulator:
		data = "A"
	case instructions.Immediate:
		data = fmt.Sprintf("#%s", data)
	case instructions.Indirect:
		data = fmt.Sprintf("(%s)", data)
	case instructions.IndexedIndirect:
		data = fmt.Sprintf("(%s,X)", data)
	case instructions.IndirectIndexed:
		data = fmt.Sprintf("(%s),Y", data)
	case instructions.AbsoluteX, instructions.ZeroPageX:
		data = fmt.Sprintf("%s,X", data)
	case instructions.AbsoluteY, instructions.ZeroPageY:
		data = fmt.Sprintf("%s,Y", data)
	}

	return data
}
