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

// Package chipbus defines the memory bus as seen by the chips of the NES that
// share memory with the CPU. Currently, this is the PPU only.
package chipbus

// Register identifies one of the PPU registers as seen from the chip side.
// The value of the register is the offset from the start of the register
// area.
type Register int

// List of PPU registers.
const (
	PPUCTRL Register = iota
	PPUMASK
	PPUSTATUS
	OAMADDR
	OAMDATA
	PPUSCROLL
	PPUADDR
	PPUDATA

	NumRegisters
)

func (r Register) String() string {
	switch r {
	case PPUCTRL:
		return "PPUCTRL"
	case PPUMASK:
		return "PPUMASK"
	case PPUSTATUS:
		return "PPUSTATUS"
	case OAMADDR:
		return "OAMADDR"
	case OAMDATA:
		return "OAMDATA"
	case PPUSCROLL:
		return "PPUSCROLL"
	case PPUADDR:
		return "PPUADDR"
	case PPUDATA:
		return "PPUDATA"
	}
	return "unknown register"
}

// Bits of the PPUCTRL and PPUSTATUS registers that the chips care about.
const (
	// PPUCTRL: generate an NMI at the start of the vertical blank
	CtrlNMIEnable = uint8(0x80)

	// PPUSTATUS: vertical blank has started. cleared when PPUSTATUS is read
	// by the CPU
	StatusVBlank = uint8(0x80)
)

// ChangedRegister packages together the register that has been changed by the
// CPU along with the new value.
type ChangedRegister struct {
	Register Register
	Value    uint8
}

// Memory defines the operations for the memory system when accessed from the
// NES chips.
type Memory interface {
	// ChipHasChanged checks to see if the chip's memory area has been written
	// to by the CPU. if it has the function returns true and an instance of
	// ChangedRegister. the change is forgotten once it has been seen.
	ChipHasChanged() (bool, ChangedRegister)

	// ChipWrite writes the data to the chip memory. the value is what the CPU
	// will see on its next read of the register.
	ChipWrite(reg Register, data uint8)

	// ChipRefer reads the data from chip memory without triggering any of the
	// side effects of a CPU read.
	ChipRefer(reg Register) uint8
}
