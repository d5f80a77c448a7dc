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

// Bug identifies one of the known quirks of the 6502 that a program has
// triggered. The quirks are emulated faithfully. The Bug value is a note
// for the benefit of the user.
type Bug string

// List of known CPU bugs.
const (
	NoBug Bug = ""

	// JMP (indirect) with a pointer on the last byte of a page fetches the
	// high byte of the target address from the start of the same page
	JmpIndirectAddressingBug Bug = "indirect addressing bug (JMP bug)"

	// (zp,X) indexing wraps around within the zero page
	IndexedIndirectAddressingBug Bug = "indexed indirect addressing bug"

	// zp,X and zp,Y indexing wraps around within the zero page
	ZeroPageIndexBug Bug = "zero page index bug"
)
