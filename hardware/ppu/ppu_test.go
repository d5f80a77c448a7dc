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

package ppu_test

import (
	"testing"

	"github.com/famicore/famicore/hardware/memory"
	"github.com/famicore/famicore/hardware/ppu"
	"github.com/famicore/famicore/test"
)

// stepTo steps the PPU until it is about to perform the dot on the scanline.
func stepTo(p *ppu.PPU, scanline int, dot int) {
	for p.Scanline != scanline || p.Dot != dot {
		p.Step()
	}
}

func TestVBlank(t *testing.T) {
	chip := memory.NewChipMemory()
	p := ppu.NewPPU(chip)

	stepTo(p, ppu.VBlankScanline, 1)
	test.ExpectFailure(t, p.VBlank())
	p.Step()
	test.ExpectSuccess(t, p.VBlank())

	// NMI not enabled
	test.ExpectFailure(t, p.NMI())

	// vblank bit is visible to the CPU and is cleared by reading PPUSTATUS
	test.ExpectEquality(t, chip.Read(0x2002)&0x80, 0x80)
	test.ExpectFailure(t, p.VBlank())
	test.ExpectEquality(t, chip.Read(0x2002)&0x80, 0x00)

	// set again next frame and cleared on the pre-render line
	stepTo(p, 0, 0)
	test.ExpectEquality(t, p.Frame, 1)
	test.ExpectFailure(t, p.VBlank())
	stepTo(p, ppu.VBlankScanline, 2)
	test.ExpectEquality(t, p.Frame, 1)
	test.ExpectSuccess(t, p.VBlank())
	stepTo(p, ppu.PreRenderScanline, 2)
	test.ExpectFailure(t, p.VBlank())
}

func TestFrame(t *testing.T) {
	p := ppu.NewPPU(memory.NewChipMemory())
	for i := 0; i < ppu.DotsPerScanline*ppu.ScanlinesPerFrame; i++ {
		p.Step()
	}
	test.ExpectEquality(t, p.Frame, 1)
	test.ExpectEquality(t, p.Scanline, 0)
	test.ExpectEquality(t, p.Dot, 0)
	test.ExpectEquality(t, p.String(), "frame=1 scanline=0 dot=0")

	p.Reset()
	test.ExpectEquality(t, p.Frame, 0)
}

func TestNMI(t *testing.T) {
	chip := memory.NewChipMemory()
	p := ppu.NewPPU(chip)

	// CPU enables NMI through PPUCTRL (mirrored address)
	chip.Write(0x2008, 0x80)

	stepTo(p, ppu.VBlankScanline, 2)
	test.ExpectSuccess(t, p.NMI())

	// request is collected once
	test.ExpectFailure(t, p.NMI())
}

func TestNMIEnabledDuringVBlank(t *testing.T) {
	chip := memory.NewChipMemory()
	p := ppu.NewPPU(chip)

	stepTo(p, ppu.VBlankScanline+1, 0)
	test.ExpectFailure(t, p.NMI())

	// enabling NMI while the vblank bit is set raises an NMI on the next step
	chip.Write(0x2000, 0x80)
	p.Step()
	test.ExpectSuccess(t, p.NMI())

	// rewriting the register does not raise another NMI
	chip.Write(0x2000, 0x80)
	p.Step()
	test.ExpectFailure(t, p.NMI())
}

func TestSnapshot(t *testing.T) {
	p := ppu.NewPPU(memory.NewChipMemory())
	stepTo(p, 10, 20)

	s := p.Snapshot()
	p.Step()
	test.ExpectEquality(t, s.Dot, 20)
	test.ExpectEquality(t, p.Dot, 21)
}
