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

// Package memory implements the NES memory map. The CPU and the PPU share the
// memory and access it through their own buses. There is a third bus, the
// debug bus, used by tools to inspect memory without side effects.
//
//	    CPU ---- cpu bus ---- MEMORY ---- chip bus ---- PPU
//
//	                             |
//	                             |
//
//	                         debug bus
//
// The memory itself is divided into areas, defined in the memorymap package.
// With the memory areas added, the above diagram is as follows:
//
//	                           ---- PPU registers ---- chip bus ---- PPU
//	                          |
//	    CPU ---- cpu bus ---- *---- RAM
//	                          |
//	                          |---- APU and I/O registers
//	                          |
//	                           ---- Cartridge
//
// The asterisk indicates that addresses used by the CPU are first mapped to
// the primary address. The memorymap package contains more detail on this.
//
// Cartridge mappers are not emulated. The cartridge area is a flat array of
// bytes that can be loaded with the Load() function.
//
// The Flat type is an alternative to the NES memory map. It is a plain 64KB
// array with no mirroring and no memory mapped registers, useful for running
// CPU test programs.
package memory
