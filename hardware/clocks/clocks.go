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

// Package clocks defines the constant values that define the speed of the main
// clock in the NES console. Values are in MHz.
//
// The CPU clock is derived from the master clock of the console. The PPU
// clock is three times the speed of the CPU clock for NTSC consoles and 3.2
// times the speed for PAL consoles.
package clocks

// CPU clock speeds.
const (
	NTSC  = 1.789773
	PAL   = 1.662607
	Dendy = 1.773448
)

// PPU clock speeds.
const (
	NTSC_PPU  = NTSC * 3
	PAL_PPU   = PAL * 3.2
	Dendy_PPU = Dendy * 3
)
