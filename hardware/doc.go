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

// Package hardware is the base package for the NES emulation. It and its
// sub-packages contain everything required for a headless emulation of the
// CPU and its memory.
//
// The NES type is the root of the emulation. It owns the memory, the CPU and
// the PPU. Both the CPU and the PPU are given access to the memory but only
// one of them is ever running at any one time. The CPU runs one instruction
// at a time and after the instruction has completed, the PPU is stepped
// three times for every cycle consumed by the instruction.
//
// Interrupt requests raised by the PPU are latched by the NES and serviced
// before the next instruction.
package hardware
