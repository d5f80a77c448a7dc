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

// Package ppu is a stub of the NES picture processing unit. It does not
// render anything. It counts dots and scanlines, maintains the vertical blank
// bit of the PPUSTATUS register and raises NMI requests when the PPUCTRL
// register asks for them.
//
// The only contact the PPU has with the rest of the NES is through the
// chipbus.Memory interface, which gives access to the PPU registers that are
// shared with the CPU.
package ppu
