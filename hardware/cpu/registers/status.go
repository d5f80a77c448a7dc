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
	"strings"
)

// bit masks of the status register in its byte form.
const (
	maskCarry            = 0x01
	maskZero             = 0x02
	maskInterruptDisable = 0x04
	maskDecimalMode      = 0x08
	maskBreak            = 0x10
	maskReserved         = 0x20
	maskOverflow         = 0x40
	maskNegative         = 0x80
)

// StatusRegister is the special purpose register that stores the flags of the
// CPU.
//
// The reserved bit (bit 5) is not stored. It is always set when the register
// is converted to its byte form.
type StatusRegister struct {
	Negative         bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "P"
}

// String returns the status register as a string of flags. Upper case letters
// indicate a set flag. The reserved bit is shown as a hyphen.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r - 'a' + 'A')
		} else {
			s.WriteRune(r)
		}
	}

	flag(sr.Negative, 'n')
	flag(sr.Overflow, 'v')
	s.WriteRune('-')
	flag(sr.Break, 'b')
	flag(sr.DecimalMode, 'd')
	flag(sr.InterruptDisable, 'i')
	flag(sr.Zero, 'z')
	flag(sr.Carry, 'c')

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.Load(0)
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack. The reserved bit is always set.
func (sr StatusRegister) Value() uint8 {
	v := uint8(maskReserved)

	if sr.Negative {
		v |= maskNegative
	}
	if sr.Overflow {
		v |= maskOverflow
	}
	if sr.Break {
		v |= maskBreak
	}
	if sr.DecimalMode {
		v |= maskDecimalMode
	}
	if sr.InterruptDisable {
		v |= maskInterruptDisable
	}
	if sr.Zero {
		v |= maskZero
	}
	if sr.Carry {
		v |= maskCarry
	}

	return v
}

// Pushed returns the byte image of the status register as it should be pushed
// onto the stack. Software pushes (PHP and BRK) set the break bit. Hardware
// interrupts clear it.
func (sr StatusRegister) Pushed(software bool) uint8 {
	if software {
		return sr.Value() | maskBreak
	}
	return sr.Value() &^ maskBreak
}

// Load sets the status register flags from an 8 bit integer (which has been
// pulled from the stack). The reserved bit is ignored.
func (sr *StatusRegister) Load(v uint8) {
	sr.Negative = v&maskNegative == maskNegative
	sr.Overflow = v&maskOverflow == maskOverflow
	sr.Break = v&maskBreak == maskBreak
	sr.DecimalMode = v&maskDecimalMode == maskDecimalMode
	sr.InterruptDisable = v&maskInterruptDisable == maskInterruptDisable
	sr.Zero = v&maskZero == maskZero
	sr.Carry = v&maskCarry == maskCarry
}
