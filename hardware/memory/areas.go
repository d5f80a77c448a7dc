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
	"github.com/famicore/famicore/hardware/memory/memorymap"
)

// IO represents the APU and I/O registers. The APU and the controllers are not
// emulated so the area is plain memory.
type IO struct {
	memory [memorymap.SizeAPU]uint8
}

// Read is an implementation of cpubus.Memory.
func (io *IO) Read(address uint16) uint8 {
	return io.memory[address-memorymap.OriginAPU]
}

// Write is an implementation of cpubus.Memory.
func (io *IO) Write(address uint16, data uint8) {
	io.memory[address-memorymap.OriginAPU] = data
}

// Cartridge represents the cartridge space. Mappers are not emulated. The
// area is a flat array that covers PRG RAM and PRG ROM alike.
type Cartridge struct {
	memory [memorymap.SizeCart]uint8
}

// Read is an implementation of cpubus.Memory.
func (cart *Cartridge) Read(address uint16) uint8 {
	return cart.memory[address-memorymap.OriginCart]
}

// Write is an implementation of cpubus.Memory.
func (cart *Cartridge) Write(address uint16, data uint8) {
	cart.memory[address-memorymap.OriginCart] = data
}
