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
	"github.com/famicore/famicore/hardware/memory/memorymap"
)

// Memory is the monolithic representation of the memory in the NES. It
// implements the cpubus.Memory and bus.DebugBus interfaces. The PPU accesses
// its registers through the chipbus.Memory interface implemented by the PPU
// field.
type Memory struct {
	RAM  *RAM
	PPU  *ChipMemory
	IO   *IO
	Cart *Cartridge
}

// NewMemory is the preferred method of initialisation for Memory.
func NewMemory() *Memory {
	return &Memory{
		RAM:  NewRAM(),
		PPU:  NewChipMemory(),
		IO:   &IO{},
		Cart: &Cartridge{},
	}
}

// Snapshot creates a copy of the memory in its current state.
func (mem *Memory) Snapshot() *Memory {
	n := &Memory{}
	ram := *mem.RAM
	ppu := *mem.PPU
	io := *mem.IO
	cart := *mem.Cart
	n.RAM = &ram
	n.PPU = &ppu
	n.IO = &io
	n.Cart = &cart
	return n
}

// Reset the memory to its power on state. The cartridge area is not affected.
func (mem *Memory) Reset() {
	mem.RAM.Reset()
	mem.PPU.Reset()
	mem.IO = &IO{}
}

// Read is an implementation of cpubus.Memory.
func (mem *Memory) Read(address uint16) uint8 {
	ma, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.RAM:
		return mem.RAM.Read(ma)
	case memorymap.PPU:
		return mem.PPU.Read(ma)
	case memorymap.APU:
		return mem.IO.Read(ma)
	}
	return mem.Cart.Read(ma)
}

// Write is an implementation of cpubus.Memory.
func (mem *Memory) Write(address uint16, data uint8) {
	ma, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.RAM:
		mem.RAM.Write(ma, data)
	case memorymap.PPU:
		mem.PPU.Write(ma, data)
	case memorymap.APU:
		mem.IO.Write(ma, data)
	default:
		mem.Cart.Write(ma, data)
	}
}

// Peek is an implementation of bus.DebugBus. Returns the value at the address
// without triggering the side effects of a CPU read.
func (mem *Memory) Peek(address uint16) uint8 {
	ma, area := memorymap.MapAddress(address)
	if area == memorymap.PPU {
		return mem.PPU.Peek(ma)
	}
	return mem.Read(ma)
}

// Poke is an implementation of bus.DebugBus. Sets the value at the address
// without triggering the side effects of a CPU write.
func (mem *Memory) Poke(address uint16, value uint8) {
	ma, area := memorymap.MapAddress(address)
	if area == memorymap.PPU {
		mem.PPU.Poke(ma, value)
		return
	}
	mem.Write(ma, value)
}

// Load copies data into memory starting at the origin address. The data is
// written with Poke() so no memory mapped register side effects are
// triggered. Returns an error if the data does not fit in the address space.
func (mem *Memory) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > int(memorymap.Memtop)+1 {
		return curated.Errorf("memory: data of %d bytes does not fit at %#04x", len(data), origin)
	}
	for i, v := range data {
		mem.Poke(origin+uint16(i), v)
	}
	return nil
}
