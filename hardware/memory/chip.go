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

package memory

import (
	"github.com/famicore/famicore/hardware/memory/chipbus"
	"github.com/famicore/famicore/hardware/memory/memorymap"
)

// ChipMemory defines the information for and operations allowed for those
// memory areas accessed by the CPU *and* the NES chips. Currently, the PPU
// registers only.
type ChipMemory struct {
	memory [memorymap.SizePPU]uint8

	// when the CPU writes to chip memory it is not writing to memory in the
	// way we might expect. instead we note the register that has been written
	// to, and a boolean true to indicate that a write has been performed by
	// the CPU
	lastWrite   chipbus.ChangedRegister
	writeSignal bool
}

// NewChipMemory is the preferred method of initialisation for the ChipMemory
// area.
func NewChipMemory() *ChipMemory {
	return &ChipMemory{}
}

// Reset chip memory to its power on state.
func (area *ChipMemory) Reset() {
	*area = ChipMemory{}
}

// Read is an implementation of cpubus.Memory.
//
// Reading PPUSTATUS clears the vertical blank bit.
func (area *ChipMemory) Read(address uint16) uint8 {
	reg := chipbus.Register(address & memorymap.MaskPPU)
	v := area.memory[reg]
	if reg == chipbus.PPUSTATUS {
		area.memory[reg] &^= chipbus.StatusVBlank
	}
	return v
}

// Write is an implementation of cpubus.Memory.
func (area *ChipMemory) Write(address uint16, data uint8) {
	reg := chipbus.Register(address & memorymap.MaskPPU)

	// the status register is read only
	if reg == chipbus.PPUSTATUS {
		return
	}

	area.memory[reg] = data
	area.lastWrite = chipbus.ChangedRegister{Register: reg, Value: data}
	area.writeSignal = true
}

// Peek is an implementation of bus.DebugBus.
func (area *ChipMemory) Peek(address uint16) uint8 {
	return area.memory[address&memorymap.MaskPPU]
}

// Poke is an implementation of bus.DebugBus.
func (area *ChipMemory) Poke(address uint16, value uint8) {
	area.memory[address&memorymap.MaskPPU] = value
}

// ChipHasChanged is an implementation of chipbus.Memory.
func (area *ChipMemory) ChipHasChanged() (bool, chipbus.ChangedRegister) {
	if !area.writeSignal {
		return false, chipbus.ChangedRegister{}
	}
	area.writeSignal = false
	return true, area.lastWrite
}

// ChipWrite is an implementation of chipbus.Memory.
func (area *ChipMemory) ChipWrite(reg chipbus.Register, data uint8) {
	area.memory[reg] = data
}

// ChipRefer is an implementation of chipbus.Memory.
func (area *ChipMemory) ChipRefer(reg chipbus.Register) uint8 {
	return area.memory[reg]
}
