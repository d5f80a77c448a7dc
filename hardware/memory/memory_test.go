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

package memory_test

import (
	"testing"

	"github.com/famicore/famicore/hardware/memory"
	"github.com/famicore/famicore/hardware/memory/bus"
	"github.com/famicore/famicore/hardware/memory/chipbus"
	"github.com/famicore/famicore/hardware/memory/cpubus"
	"github.com/famicore/famicore/test"
)

// the memory types must satisfy the bus interfaces
var _ cpubus.Memory = (*memory.Memory)(nil)
var _ bus.DebugBus = (*memory.Memory)(nil)
var _ chipbus.Memory = (*memory.ChipMemory)(nil)
var _ cpubus.Memory = (*memory.Flat)(nil)
var _ bus.DebugBus = (*memory.Flat)(nil)

func TestPowerOn(t *testing.T) {
	mem := memory.NewMemory()
	for a := uint16(0x0000); a < 0x0800; a++ {
		if !test.ExpectEquality(t, mem.Read(a), memory.PowerOnFill, a) {
			break
		}
	}
}

func TestRAMMirrors(t *testing.T) {
	mem := memory.NewMemory()

	mem.Write(0x0010, 0x42)
	test.ExpectEquality(t, mem.Read(0x0810), 0x42)
	test.ExpectEquality(t, mem.Read(0x1010), 0x42)
	test.ExpectEquality(t, mem.Read(0x1810), 0x42)

	mem.Write(0x1fff, 0x24)
	test.ExpectEquality(t, mem.Read(0x07ff), 0x24)

	// the stack page is part of RAM
	mem.Write(0x01fd, 0x99)
	test.ExpectEquality(t, mem.RAM.RAM[0x01fd], 0x99)
}

func TestPPURegisters(t *testing.T) {
	mem := memory.NewMemory()

	// CPU write is seen by the chip
	mem.Write(0x2000, 0x80)
	ok, reg := mem.PPU.ChipHasChanged()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, reg.Register, chipbus.PPUCTRL)
	test.ExpectEquality(t, reg.Value, 0x80)

	// change is forgotten once seen
	ok, _ = mem.PPU.ChipHasChanged()
	test.ExpectFailure(t, ok)

	// mirrors every eight bytes
	mem.Write(0x3ff9, 0x1e)
	test.ExpectEquality(t, mem.PPU.ChipRefer(chipbus.PPUMASK), 0x1e)
	ok, reg = mem.PPU.ChipHasChanged()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, reg.Register, chipbus.PPUMASK)

	// reading PPUSTATUS clears the vblank bit
	mem.PPU.ChipWrite(chipbus.PPUSTATUS, 0x80)
	test.ExpectEquality(t, mem.Peek(0x2002), 0x80)
	test.ExpectEquality(t, mem.Read(0x200a), 0x80)
	test.ExpectEquality(t, mem.Read(0x2002), 0x00)

	// PPUSTATUS is read only. the write is not signalled to the chip
	ok, _ = mem.PPU.ChipHasChanged()
	test.DemandFailure(t, ok)
	mem.Write(0x2002, 0xff)
	test.ExpectEquality(t, mem.PPU.ChipRefer(chipbus.PPUSTATUS), 0x00)
	ok, _ = mem.PPU.ChipHasChanged()
	test.ExpectFailure(t, ok)

	// poke doesn't signal the chip
	mem.Poke(0x2001, 0x08)
	test.ExpectEquality(t, mem.PPU.ChipRefer(chipbus.PPUMASK), 0x08)
	ok, _ = mem.PPU.ChipHasChanged()
	test.ExpectFailure(t, ok)
}

func TestIOAndCartridge(t *testing.T) {
	mem := memory.NewMemory()

	mem.Write(0x4015, 0x0f)
	test.ExpectEquality(t, mem.Read(0x4015), 0x0f)

	mem.Write(0x8000, 0xa9)
	test.ExpectEquality(t, mem.Read(0x8000), 0xa9)
	mem.Write(0xffff, 0x01)
	test.ExpectEquality(t, mem.Read(0xffff), 0x01)
}

func TestLoad(t *testing.T) {
	mem := memory.NewMemory()

	test.ExpectSuccess(t, mem.Load(0xfffc, []uint8{0x00, 0x80, 0x00, 0x90}))
	test.ExpectEquality(t, mem.Read(0xfffc), 0x00)
	test.ExpectEquality(t, mem.Read(0xfffd), 0x80)
	test.ExpectEquality(t, mem.Read(0xffff), 0x90)

	test.ExpectFailure(t, mem.Load(0xfffe, []uint8{0x00, 0x80, 0x00}))

	flat := memory.NewFlat(0x00)
	test.ExpectSuccess(t, flat.Load(0x0600, []uint8{0xa9, 0x05}))
	test.ExpectEquality(t, flat.Read(0x0601), 0x05)
	test.ExpectFailure(t, flat.Load(0xffff, []uint8{0x00, 0x00}))
}

func TestSnapshot(t *testing.T) {
	mem := memory.NewMemory()
	mem.Write(0x0000, 0x01)

	snapshot := mem.Snapshot()
	mem.Write(0x0000, 0x02)

	test.ExpectEquality(t, snapshot.Read(0x0000), 0x01)
	test.ExpectEquality(t, mem.Read(0x0000), 0x02)

	mem.Reset()
	test.ExpectEquality(t, mem.Read(0x0000), memory.PowerOnFill)
}

func TestFlat(t *testing.T) {
	mem := memory.NewFlat(0xff)
	test.ExpectEquality(t, mem.Read(0x1234), 0xff)

	// no mirroring
	mem.Write(0x0010, 0x42)
	test.ExpectEquality(t, mem.Read(0x0810), 0xff)
	test.ExpectEquality(t, mem.Peek(0x0010), 0x42)
	mem.Poke(0x2002, 0x80)
	test.ExpectEquality(t, mem.Read(0x2002), 0x80)
	test.ExpectEquality(t, mem.Read(0x2002), 0x80)
}
