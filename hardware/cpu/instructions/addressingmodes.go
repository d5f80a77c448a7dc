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

package instructions

// AddressingMode describes the method data for the instruction should be received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	ZeroPage  // zpg
	ZeroPageX // zpg,X
	ZeroPageY // zpg,Y

	Absolute  // abs
	AbsoluteX // abs,X
	AbsoluteY // abs,Y

	Indirect        // (ind)
	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind),Y
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageX:
		return "ZeroPageX"
	case ZeroPageY:
		return "ZeroPageY"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	case Indirect:
		return "Indirect"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	}
	return "unknown addressing mode"
}

// OperandBytes returns the number of bytes that follow the opcode in the
// instruction stream for the addressing mode.
func (m AddressingMode) OperandBytes() int {
	switch m {
	case Implied, Accumulator:
		return 0
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	}
	return 1
}
