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

package instructions_test

import (
	"testing"

	"github.com/famicore/famicore/hardware/cpu/instructions"
	"github.com/famicore/famicore/test"
)

func TestDecodeIsTotal(t *testing.T) {
	var legal, illegal int

	for i := 0; i < 256; i++ {
		defn := instructions.Decode(uint8(i))
		if defn == nil {
			t.Fatalf("no definition for opcode %#02x", i)
		}

		// the table is indexed by opcode
		test.ExpectEquality(t, defn.OpCode, uint8(i), defn)

		// a definition is stable between calls
		test.ExpectEquality(t, instructions.Decode(uint8(i)), defn, defn)

		if defn.Illegal {
			illegal++
			test.ExpectEquality(t, defn.Operator, instructions.Illegal, defn)
			test.ExpectEquality(t, defn.Bytes, 1, defn)
			test.ExpectEquality(t, defn.Cycles, 2, defn)
			test.ExpectEquality(t, defn.AddressingMode, instructions.Implied, defn)
			continue
		}

		legal++
		test.ExpectInequality(t, defn.Operator, instructions.Illegal, defn)
		test.ExpectEquality(t, defn.Operator.String(), defn.Mnemonic, defn)
		test.ExpectEquality(t, defn.Bytes, 1+defn.AddressingMode.OperandBytes(), defn)

		// only read instructions using an indexed mode can be page sensitive
		if defn.PageSensitive {
			test.ExpectEquality(t, defn.Effect, instructions.Read, defn)
			switch defn.AddressingMode {
			case instructions.AbsoluteX, instructions.AbsoluteY, instructions.IndirectIndexed:
			default:
				t.Errorf("unexpected page sensitive addressing mode: %s", defn)
			}
		}
	}

	test.ExpectEquality(t, legal, 151)
	test.ExpectEquality(t, illegal, 105)
}

func TestDecodeEntries(t *testing.T) {
	type entry struct {
		opcode   uint8
		operator instructions.Operator
		mode     instructions.AddressingMode
		bytes    int
		cycles   int
		effect   instructions.EffectCategory
	}

	entries := []entry{
		{0x00, instructions.Brk, instructions.Implied, 1, 7, instructions.Interrupt},
		{0x0a, instructions.Asl, instructions.Accumulator, 1, 2, instructions.RMW},
		{0x10, instructions.Bpl, instructions.Relative, 2, 2, instructions.Flow},
		{0x20, instructions.Jsr, instructions.Absolute, 3, 6, instructions.Subroutine},
		{0x40, instructions.Rti, instructions.Implied, 1, 6, instructions.Interrupt},
		{0x4c, instructions.Jmp, instructions.Absolute, 3, 3, instructions.Flow},
		{0x60, instructions.Rts, instructions.Implied, 1, 6, instructions.Subroutine},
		{0x69, instructions.Adc, instructions.Immediate, 2, 2, instructions.Read},
		{0x6c, instructions.Jmp, instructions.Indirect, 3, 5, instructions.Flow},
		{0x81, instructions.Sta, instructions.IndexedIndirect, 2, 6, instructions.Write},
		{0x91, instructions.Sta, instructions.IndirectIndexed, 2, 6, instructions.Write},
		{0x96, instructions.Stx, instructions.ZeroPageY, 2, 4, instructions.Write},
		{0x9a, instructions.Txs, instructions.Implied, 1, 2, instructions.Read},
		{0xa9, instructions.Lda, instructions.Immediate, 2, 2, instructions.Read},
		{0xb1, instructions.Lda, instructions.IndirectIndexed, 2, 5, instructions.Read},
		{0xb6, instructions.Ldx, instructions.ZeroPageY, 2, 4, instructions.Read},
		{0xbe, instructions.Ldx, instructions.AbsoluteY, 3, 4, instructions.Read},
		{0xd0, instructions.Bne, instructions.Relative, 2, 2, instructions.Flow},
		{0xd5, instructions.Cmp, instructions.ZeroPageX, 2, 4, instructions.Read},
		{0xea, instructions.Nop, instructions.Implied, 1, 2, instructions.Read},
		{0xfe, instructions.Inc, instructions.AbsoluteX, 3, 7, instructions.RMW},
	}

	for _, e := range entries {
		defn := instructions.Decode(e.opcode)
		test.ExpectEquality(t, defn.Operator, e.operator, defn)
		test.ExpectEquality(t, defn.AddressingMode, e.mode, defn)
		test.ExpectEquality(t, defn.Bytes, e.bytes, defn)
		test.ExpectEquality(t, defn.Cycles, e.cycles, defn)
		test.ExpectEquality(t, defn.Effect, e.effect, defn)
		test.ExpectEquality(t, defn.Illegal, false, defn)
	}
}

func TestIllegalIsNotNop(t *testing.T) {
	nop := instructions.Decode(0xea)
	for _, opcode := range []uint8{0x02, 0x1a, 0x80, 0xff} {
		defn := instructions.Decode(opcode)
		test.ExpectEquality(t, defn.Illegal, true, opcode)
		test.ExpectInequality(t, defn.Operator, nop.Operator, opcode)
		test.ExpectEquality(t, defn.Mnemonic, "???", opcode)
	}
}

func TestBranches(t *testing.T) {
	var n int
	for i := 0; i < 256; i++ {
		if instructions.Decode(uint8(i)).IsBranch() {
			n++
		}
	}
	test.ExpectEquality(t, n, 8)

	// JMP is a flow instruction but not a branch
	test.ExpectEquality(t, instructions.Decode(0x4c).IsBranch(), false)
}

func TestLookupOperator(t *testing.T) {
	op, ok := instructions.LookupOperator("LDA")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, op, instructions.Lda)

	_, ok = instructions.LookupOperator("???")
	test.ExpectFailure(t, ok)

	_, ok = instructions.LookupOperator("lda")
	test.ExpectFailure(t, ok)
}
