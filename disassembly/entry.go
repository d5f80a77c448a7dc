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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/cpu/instructions"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded as though every byte is the start of a
// valid instruction. Blessed entries have been reached by following the flow
// of the program from one of the interrupt vectors.
const (
	EntryLevelUnused EntryLevel = iota
	EntryLevelDecoded
	EntryLevelBlessed
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelUnused:
		return "unused"
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelBlessed:
		return "blessed"
	}
	return "unknown level"
}

// Entry is a disassembled instruction.
type Entry struct {
	Level EntryLevel

	// the result of executing the instruction with flow control disabled
	Result execution.Result

	// the bytes of the instruction, including the opcode
	Bytes []uint8
}

// Operand returns the operand of the instruction. The operand of a branch
// instruction is the address of the branch target rather than the offset.
func (e Entry) Operand() string {
	if e.Result.Defn != nil && e.Result.Defn.AddressingMode == instructions.Relative {
		return fmt.Sprintf("$%04x", branchTarget(e.Result))
	}
	return e.Result.Operand()
}

func (e Entry) String() string {
	if e.Result.Defn == nil {
		return ""
	}
	s := fmt.Sprintf("%04x  %-8s  %-4s %s", e.Result.Address, fmt.Sprintf("% 02x", e.Bytes),
		e.Result.Defn.Mnemonic, e.Operand())
	return strings.TrimRight(s, " ")
}

// branchTarget returns the address a branch instruction would jump to.
func branchTarget(r execution.Result) uint16 {
	next := r.Address + uint16(r.ByteCount)
	return next + uint16(int16(int8(uint8(r.InstructionData))))
}
