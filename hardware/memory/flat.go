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
	"github.com/famicore/famicore/curated"
)

// Flat is a 64KB array of memory with no mirroring and no memory mapped
// registers. It implements the cpubus.Memory and bus.DebugBus interfaces.
type Flat struct {
	Data [0x10000]uint8
}

// NewFlat is the preferred method of initialisation for Flat. Every byte is
// set to the fill value.
func NewFlat(fill uint8) *Flat {
	mem := &Flat{}
	for i := range mem.Data {
		mem.Data[i] = fill
	}
	return mem
}

// Read is an implementation of cpubus.Memory.
func (mem *Flat) Read(address uint16) uint8 {
	return mem.Data[address]
}

// Write is an implementation of cpubus.Memory.
func (mem *Flat) Write(address uint16, data uint8) {
	mem.Data[address] = data
}

// Peek is an implementation of bus.DebugBus.
func (mem *Flat) Peek(address uint16) uint8 {
	return mem.Data[address]
}

// Poke is an implementation of bus.DebugBus.
func (mem *Flat) Poke(address uint16, value uint8) {
	mem.Data[address] = value
}

// Load copies data into memory starting at the origin address. Returns an
// error if the data does not fit in the address space.
func (mem *Flat) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > len(mem.Data) {
		return curated.Errorf("memory: data of %d bytes does not fit at %#04x", len(data), origin)
	}
	copy(mem.Data[origin:], data)
	return nil
}
