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

// Package assert contains helper functions for testing the contents of CPU
// registers. Used by the registers package and by the cpu package.
package assert

import (
	"reflect"
	"testing"

	"github.com/famicore/famicore/hardware/cpu/registers"
)

// Assert compares the value of a register with the expected value. Registers
// and the stack pointer can be compared against an int. The program counter
// can be compared against an int. The status register can be compared against
// an int (the byte form) or a string of eight characters (see
// StatusRegister.String()).
func Assert(t *testing.T, r, x interface{}) {
	t.Helper()

	switch r := r.(type) {
	default:
		t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(r))

	case registers.Register:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))
		case int:
			if int(r.Value()) != x {
				t.Errorf("assert Register %s failed (%#02x  - wanted %#02x)", r.Label(), r.Value(), x)
			}
		}

	case registers.StackPointer:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))
		case int:
			if int(r.Value()) != x {
				t.Errorf("assert StackPointer failed (%#02x  - wanted %#02x)", r.Value(), x)
			}
		}

	case registers.ProgramCounter:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))
		case int:
			if int(r.Address()) != x {
				t.Errorf("assert ProgramCounter failed (%#04x  - wanted %#04x)", r.Address(), x)
			}
		}

	case registers.StatusRegister:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))
		case int:
			if int(r.Value()) != x {
				t.Errorf("assert StatusRegister failed (%#02x  - wanted %#02x)", r.Value(), x)
			}
		case string:
			if len(x) != 8 {
				t.Errorf("assert StatusRegister failed (status flags must be a string of 8 chars)")
			} else if r.String() != x {
				t.Errorf("assert StatusRegister failed (%s  - wanted %s)", r.String(), x)
			}
		}
	}
}
