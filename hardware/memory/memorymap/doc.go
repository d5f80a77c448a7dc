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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents.
//
// Because of the limited number of address lines used by the NES many
// addresses are mirrored. The internal RAM appears four times in the first 8KB
// of the address space and the eight PPU registers are repeated every eight
// bytes between 0x2000 and 0x3fff. In other words, the following addresses
// point to the same memory:
//
//	0x0010 == 0x0810 == 0x1010 == 0x1810
//
// The MapAddress() function translates any address to its primary mirror and
// indicates which area of memory the address falls within.
package memorymap
