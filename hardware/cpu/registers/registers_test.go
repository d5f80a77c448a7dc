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

package registers_test

import (
	"testing"

	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/hardware/cpu/registers/assert"
	"github.com/famicore/famicore/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	// initialisation
	r8 := registers.NewRegister(0, "test")
	test.ExpectEquality(t, r8.IsZero(), true)
	assert.Assert(t, r8, 0)

	// loading & addition
	r8.Load(127)
	assert.Assert(t, r8, 127)
	r8.Add(2, false)
	assert.Assert(t, r8, 129)

	// addition boundary
	r8.Load(255)
	test.ExpectEquality(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, false)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.IsZero(), true)
	assert.Assert(t, r8, 0)

	// addition boundary with carry
	r8.Load(254)
	carry, overflow = r8.Add(1, true)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.IsZero(), true)

	r8.Load(255)
	carry, overflow = r8.Add(1, true)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	assert.Assert(t, r8, 1)

	// subtraction
	r8.Load(11)
	r8.Subtract(1, true)
	assert.Assert(t, r8, 10)

	r8.Load(12)
	r8.Subtract(1, false)
	assert.Assert(t, r8, 10)

	r8.Load(0x01)
	r8.Subtract(0x06, false)
	assert.Assert(t, r8, 0xfa)

	// subtract on boundary
	r8.Load(0)
	carry, _ = r8.Subtract(1, true)
	assert.Assert(t, r8, 255)
	test.ExpectEquality(t, carry, false)
	r8.Load(1)
	carry, _ = r8.Subtract(1, true)
	assert.Assert(t, r8, 0)
	test.ExpectEquality(t, carry, true)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	assert.Assert(t, r8, 0x01)
	r8.EOR(0xff)
	assert.Assert(t, r8, 0xfe)
	r8.ORA(0x1)
	assert.Assert(t, r8, 0xff)

	// shifts
	carry = r8.ASL()
	assert.Assert(t, r8, 0xfe)
	test.ExpectEquality(t, carry, true)
	carry = r8.LSR()
	assert.Assert(t, r8, 0x7f)
	test.ExpectEquality(t, carry, false)
	carry = r8.LSR()
	test.ExpectEquality(t, carry, true)

	// rotation
	r8.Load(0xff)
	carry = r8.ROL(false)
	assert.Assert(t, r8, 0xfe)
	test.ExpectEquality(t, carry, true)
	carry = r8.ROR(true)
	assert.Assert(t, r8, 0xff)
	test.ExpectEquality(t, carry, false)
	carry = r8.ROR(false)
	assert.Assert(t, r8, 0x7f)
	test.ExpectEquality(t, carry, true)
}

func TestSignedOverflow(t *testing.T) {
	r8 := registers.NewRegister(0x7f, "A")

	// positive + positive giving a negative result
	carry, overflow := r8.Add(0x01, false)
	assert.Assert(t, r8, 0x80)
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, overflow, true)

	// negative + negative giving a positive result
	r8.Load(0x80)
	carry, overflow = r8.Add(0xff, false)
	assert.Assert(t, r8, 0x7f)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, true)

	// operands with different signs can never overflow
	r8.Load(0x7f)
	_, overflow = r8.Add(0x80, true)
	test.ExpectEquality(t, overflow, false)

	// subtraction: 0x80 - 0x01 = 0x7f is a signed overflow (-128 - 1)
	r8.Load(0x80)
	carry, overflow = r8.Subtract(0x01, true)
	assert.Assert(t, r8, 0x7f)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, true)
}

func TestCompare(t *testing.T) {
	r8 := registers.NewRegister(0x7f, "A")

	// unsigned comparison either side of the signed boundary
	carry, zero, negative := r8.Compare(0x80)
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, zero, false)
	test.ExpectEquality(t, negative, true)

	carry, zero, negative = r8.Compare(0x7f)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, zero, true)
	test.ExpectEquality(t, negative, false)

	r8.Load(0x80)
	carry, zero, negative = r8.Compare(0x7f)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, zero, false)
	test.ExpectEquality(t, negative, false)

	// register is unchanged
	assert.Assert(t, r8, 0x80)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), 0)

	pc.Load(127)
	assert.Assert(t, pc, 127)
	pc.Add(2)
	assert.Assert(t, pc, 129)

	// wraparound
	pc.Load(0xffff)
	test.ExpectEquality(t, pc.Add(1), true)
	assert.Assert(t, pc, 0x0000)

	// relative displacement
	pc.Load(0x0602)
	test.ExpectEquality(t, pc.Relative(0x10), false)
	assert.Assert(t, pc, 0x0612)
	test.ExpectEquality(t, pc.Relative(0xf0), false)
	assert.Assert(t, pc, 0x0602)
	test.ExpectEquality(t, pc.Relative(0xfc), true)
	assert.Assert(t, pc, 0x05fe)
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0xfd)
	test.ExpectEquality(t, sp.Address(), 0x01fd)

	test.ExpectEquality(t, sp.Push(), 0x01fd)
	assert.Assert(t, sp, 0xfc)
	test.ExpectEquality(t, sp.Peek(1), 0x01fd)
	test.ExpectEquality(t, sp.Pull(), 0x01fd)
	assert.Assert(t, sp, 0xfd)

	// the stack pointer never leaves the stack page
	sp.Load(0x00)
	test.ExpectEquality(t, sp.Push(), 0x0100)
	assert.Assert(t, sp, 0xff)
	test.ExpectEquality(t, sp.Address(), 0x01ff)
	test.ExpectEquality(t, sp.Pull(), 0x0100)
	assert.Assert(t, sp, 0x00)
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	assert.Assert(t, sr, "nv-bdizc")

	// reserved bit is always set in byte form
	assert.Assert(t, sr, 0x20)

	sr.Carry = true
	sr.Negative = true
	assert.Assert(t, sr, "Nv-bdizC")
	assert.Assert(t, sr, 0xa1)

	// software pushes set the break bit, hardware pushes clear it
	sr.Break = true
	test.ExpectEquality(t, sr.Pushed(true), 0xb1)
	test.ExpectEquality(t, sr.Pushed(false), 0xa1)

	// loading ignores the reserved bit but keeps every other bit
	sr.Load(0xdf)
	assert.Assert(t, sr, "NV-BDIZC")
	assert.Assert(t, sr, 0xff)
	sr.Load(0x00)
	assert.Assert(t, sr, 0x20)

	sr.InterruptDisable = true
	sr.Reset()
	assert.Assert(t, sr, "nv-bdizc")
}
