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

// Package disassembly creates a disassembly of a 6502 program held in memory.
//
// The disassembly is made in two passes. The linear pass decodes every
// address as though it was the start of an instruction. The flow pass then
// follows the program from the addresses in the interrupt vectors, through
// jumps, branches and subroutines. Entries found by the flow pass are
// "blessed" and are much more likely to be real instructions.
//
// Both passes use a CPU with NoFlowControl set and a view of memory that
// ignores writes, so creating a disassembly never changes the memory being
// disassembled.
package disassembly
