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

// Package registers implements the three types of register found in the 6502:
// the 8-bit general purpose register (A, X and Y), the stack pointer and the
// 16-bit program counter. It also implements the status register, which packs
// the processor flags into a single byte.
//
// All registers store unsigned values. The sign of a value only matters when
// deciding the value of the Negative and Overflow flags, and that is done by
// looking at bit 7 directly.
//
// The arithmetic and logical functions of the Register type do not affect the
// status register. Instead, functions return the information required by the
// caller to update the flags. For instance, in the CPU, we might have this
// sequence of function calls:
//
//	a.Load(10)
//	carry, overflow := a.Subtract(11, true)
//	sr.Zero = a.IsZero()
//
// In this case, the zero flag in the status register will be false and carry
// will be false (a borrow occurred).
//
// Because the functions are pure with respect to the rest of the CPU the
// behaviour of every arithmetic instruction can be tested without a memory
// bus.
package registers
