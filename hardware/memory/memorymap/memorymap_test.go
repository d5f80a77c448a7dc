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

package memorymap_test

import (
	"testing"

	"github.com/famicore/famicore/hardware/memory/memorymap"
	"github.com/famicore/famicore/test"
)

func TestMapAddress(t *testing.T) {
	type mapping struct {
		address uint16
		mapped  uint16
		area    memorymap.Area
	}

	mappings := []mapping{
		{0x0000, 0x0000, memorymap.RAM},
		{0x0010, 0x0010, memorymap.RAM},
		{0x0810, 0x0010, memorymap.RAM},
		{0x1010, 0x0010, memorymap.RAM},
		{0x1810, 0x0010, memorymap.RAM},
		{0x1fff, 0x07ff, memorymap.RAM},
		{0x2000, 0x2000, memorymap.PPU},
		{0x2002, 0x2002, memorymap.PPU},
		{0x200a, 0x2002, memorymap.PPU},
		{0x3ffa, 0x2002, memorymap.PPU},
		{0x3fff, 0x2007, memorymap.PPU},
		{0x4000, 0x4000, memorymap.APU},
		{0x4017, 0x4017, memorymap.APU},
		{0x401f, 0x401f, memorymap.APU},
		{0x4020, 0x4020, memorymap.Cartridge},
		{0x8000, 0x8000, memorymap.Cartridge},
		{0xfffc, 0xfffc, memorymap.Cartridge},
		{0xffff, 0xffff, memorymap.Cartridge},
	}

	for _, m := range mappings {
		mapped, area := memorymap.MapAddress(m.address)
		test.ExpectEquality(t, mapped, m.mapped, m.address)
		test.ExpectEquality(t, area, m.area, m.address)
		test.ExpectEquality(t, memorymap.IsArea(m.address, m.area), true, m.address)
	}
}

func TestAreaSizes(t *testing.T) {
	test.ExpectEquality(t, memorymap.SizeRAM, 2048)
	test.ExpectEquality(t, memorymap.SizePPU, 8)
	test.ExpectEquality(t, memorymap.SizeAPU, 32)
	test.ExpectEquality(t, memorymap.SizeCart, 0xbfe0)
	test.ExpectEquality(t, memorymap.Cartridge.String(), "Cartridge")
}
