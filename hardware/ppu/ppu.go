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

package ppu

import (
	"fmt"

	"github.com/famicore/famicore/hardware/memory/chipbus"
)

// Timing of the NTSC PPU.
const (
	DotsPerScanline   = 341
	ScanlinesPerFrame = 262

	// the first scanline of the vertical blank. the vblank bit is set on
	// dot 1 of this scanline
	VBlankScanline = 241

	// the last scanline of the frame. the vblank bit is cleared on dot 1 of
	// this scanline
	PreRenderScanline = 261
)

// PPU counts the dots and scanlines of the picture processing unit.
type PPU struct {
	mem chipbus.Memory

	Frame    int
	Scanline int
	Dot      int

	// copy of the NMI enable bit of PPUCTRL. updated when the CPU writes
	// to the register
	nmiEnable bool

	// an NMI has been raised and not yet collected with NMI()
	nmi bool
}

// NewPPU is the preferred method of initialisation for the PPU type.
func NewPPU(mem chipbus.Memory) *PPU {
	return &PPU{mem: mem}
}

// Snapshot creates a copy of the PPU in its current state.
func (ppu *PPU) Snapshot() *PPU {
	n := *ppu
	return &n
}

// Plumb a new chipbus.Memory into the PPU.
func (ppu *PPU) Plumb(mem chipbus.Memory) {
	ppu.mem = mem
}

// Reset the PPU to the start of the first frame.
func (ppu *PPU) Reset() {
	ppu.Frame = 0
	ppu.Scanline = 0
	ppu.Dot = 0
	ppu.nmiEnable = false
	ppu.nmi = false
}

func (ppu *PPU) String() string {
	return fmt.Sprintf("frame=%d scanline=%d dot=%d", ppu.Frame, ppu.Scanline, ppu.Dot)
}

// VBlank returns true if the vblank bit of PPUSTATUS is set.
func (ppu *PPU) VBlank() bool {
	return ppu.mem.ChipRefer(chipbus.PPUSTATUS)&chipbus.StatusVBlank == chipbus.StatusVBlank
}

// NMI returns true if an NMI has been raised since the last call to the
// function.
func (ppu *PPU) NMI() bool {
	nmi := ppu.nmi
	ppu.nmi = false
	return nmi
}

// update PPU state from the registers written by the CPU.
func (ppu *PPU) update() {
	ok, data := ppu.mem.ChipHasChanged()
	if !ok {
		return
	}

	switch data.Register {
	case chipbus.PPUCTRL:
		enable := data.Value&chipbus.CtrlNMIEnable == chipbus.CtrlNMIEnable

		// enabling NMI during the vertical blank raises an NMI immediately
		if enable && !ppu.nmiEnable && ppu.VBlank() {
			ppu.nmi = true
		}

		ppu.nmiEnable = enable
	}
}

// Step the PPU forward one dot.
func (ppu *PPU) Step() {
	ppu.update()

	if ppu.Dot == 1 {
		switch ppu.Scanline {
		case VBlankScanline:
			status := ppu.mem.ChipRefer(chipbus.PPUSTATUS)
			ppu.mem.ChipWrite(chipbus.PPUSTATUS, status|chipbus.StatusVBlank)
			if ppu.nmiEnable {
				ppu.nmi = true
			}
		case PreRenderScanline:
			status := ppu.mem.ChipRefer(chipbus.PPUSTATUS)
			ppu.mem.ChipWrite(chipbus.PPUSTATUS, status&^chipbus.StatusVBlank)
		}
	}

	ppu.Dot++
	if ppu.Dot >= DotsPerScanline {
		ppu.Dot = 0
		ppu.Scanline++
		if ppu.Scanline >= ScanlinesPerFrame {
			ppu.Scanline = 0
			ppu.Frame++
		}
	}
}
