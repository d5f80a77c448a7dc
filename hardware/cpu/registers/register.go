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

package registers

import (
	"fmt"
)

// Register is an 8-bit register. Used for the A, X and Y registers of the CPU
// and as a scratch register during the execution of some instructions.
type Register struct {
	label string
	value uint8
}

// NewRegister creates a new register of a givin size and name, and initialises
// the value.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

// Label returns the register's label (or ID).
func (r Register) Label() string {
	return r.label
}

func (r Register) String() string {
	return fmt.Sprintf("%02x", r.value)
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Address returns the current value of the register as a 16-bit value. Useful
// when the register is being used as an index into memory.
func (r Register) Address() uint16 {
	return uint16(r.value)
}

// IsNegative checks the sign bit of the register.
func (r Register) IsNegative() bool {
	return r.value&0x80 == 0x80
}

// IsZero checks if register is all zero bits.
func (r Register) IsZero() bool {
	return r.value == 0
}

// IsBitV returns the state of the second MSB.
func (r Register) IsBitV() bool {
	return r.value&0x40 == 0x40
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. Returns carry and overflow states.
//
// Overflow is set when both operands have the same sign and the result has a
// different sign. Carry is set when the unsigned result does not fit in eight
// bits.
func (r *Register) Add(val uint8, carry bool) (rcarry bool, overflow bool) {
	sum := uint16(r.value) + uint16(val)
	if carry {
		sum++
	}
	result := uint8(sum)

	overflow = (r.value^result)&(val^result)&0x80 == 0x80
	r.value = result

	return sum > 0xff, overflow
}

// Subtract value from register. Returns carry and overflow states.
//
// Note that carry flag is opposite of what you might expect when subtracting
// on the 6502. A set carry means that no borrow occurred.
func (r *Register) Subtract(val uint8, carry bool) (rcarry bool, overflow bool) {
	return r.Add(^val, carry)
}

// Compare the register with a value without altering the register. The
// comparison is an unsigned subtraction. Returns the carry, zero and negative
// states for the status register.
func (r Register) Compare(val uint8) (carry bool, zero bool, negative bool) {
	diff := r.value - val
	return r.value >= val, diff == 0, diff&0x80 == 0x80
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// EOR value with register.
func (r *Register) EOR(val uint8) {
	r.value ^= val
}

// ORA value with register.
func (r *Register) ORA(val uint8) {
	r.value |= val
}

// ASL (arithmetic shift left) shifts register one bit to the left. Returns
// the most significant bit as it was before the shift. If we think of the
// ASL operation as a multiply by two then the return value is the carry bit.
func (r *Register) ASL() bool {
	carry := r.IsNegative()
	r.value <<= 1
	return carry
}

// LSR (logical shift right) shifts register one bit to the right. the least
// significant bit as it was before the shift. If we think of the ASL
// operation as a division by two then the return value is the carry bit.
func (r *Register) LSR() bool {
	carry := r.value&0x01 == 0x01
	r.value >>= 1
	return carry
}

// ROL rotates register 1 bit to the left. The carry argument is the value of
// the carry flag before the rotation and is shifted into bit 0. Returns the
// old bit 7.
func (r *Register) ROL(carry bool) bool {
	rcarry := r.IsNegative()
	r.value <<= 1
	if carry {
		r.value |= 0x01
	}
	return rcarry
}

// ROR rotates register 1 bit to the right. The carry argument is the value of
// the carry flag before the rotation and is shifted into bit 7. Returns the
// old bit 0.
func (r *Register) ROR(carry bool) bool {
	rcarry := r.value&0x01 == 0x01
	r.value >>= 1
	if carry {
		r.value |= 0x80
	}
	return rcarry
}
