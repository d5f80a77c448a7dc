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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case APU:
		return "APU"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The different memory areas in the NES.
const (
	Undefined Area = iota
	RAM
	PPU
	APU
	Cartridge
)

// The origin and memory top for each area of memory. Checking which area an
// address falls within and forcing the address into the normalised range is
// all handled by the MapAddress() function.
const (
	OriginRAM  = uint16(0x0000)
	MemtopRAM  = uint16(0x1fff)
	OriginPPU  = uint16(0x2000)
	MemtopPPU  = uint16(0x3fff)
	OriginAPU  = uint16(0x4000)
	MemtopAPU  = uint16(0x401f)
	OriginCart = uint16(0x4020)
	MemtopCart = uint16(0xffff)
)

// Within the RAM and PPU areas there are mirrors. MaskRAM and MaskPPU keep
// only the relevant bits of a RAM or PPU address. Should only be applied to
// addresses that are definitely either a RAM or PPU address.
const (
	MaskRAM = uint16(0x07ff)
	MaskPPU = uint16(0x0007)
)

// The size of each memory area once mirrors have been discounted.
const (
	SizeRAM  = int(MaskRAM) + 1
	SizePPU  = int(MaskPPU) + 1
	SizeAPU  = int(MemtopAPU-OriginAPU) + 1
	SizeCart = int(MemtopCart-OriginCart) + 1
)

// Memtop is the top most address of memory in the NES.
const Memtop = MemtopCart

// MapAddress translates the address argument from mirror space to primary
// space. Generally, an address should be passed through this function before
// accessing memory.
func MapAddress(address uint16) (uint16, Area) {
	// note that the order of these filters is important
	switch {
	case address <= MemtopRAM:
		return address & MaskRAM, RAM
	case address <= MemtopPPU:
		return OriginPPU | address&MaskPPU, PPU
	case address <= MemtopAPU:
		return address, APU
	}
	return address, Cartridge
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
