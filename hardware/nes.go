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

package hardware

import (
	"time"

	"github.com/famicore/famicore/hardware/clocks"
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/memory"
	"github.com/famicore/famicore/hardware/ppu"
	"github.com/famicore/famicore/logger"
)

// NES struct is the main container for the emulated components of the NES.
type NES struct {
	Mem *memory.Memory
	CPU *cpu.CPU
	PPU *ppu.PPU

	// the speed of the CPU clock in MHz
	Clock float64

	// interrupt lines. NMI is edge triggered and is latched until it has
	// been serviced. IRQ is level triggered and remains set until it is
	// cleared by whatever raised it
	nmi bool
	irq bool
}

// NewNES creates a new NES and everything associated with the hardware. The
// NES will have been reset and will be ready to run once a program has been
// loaded into memory.
func NewNES() *NES {
	nes := &NES{
		Mem:   memory.NewMemory(),
		Clock: clocks.NTSC,
	}
	nes.CPU = cpu.NewCPU(nes.Mem)
	nes.PPU = ppu.NewPPU(nes.Mem.PPU)
	nes.Reset()
	return nes
}

// Reset emulates the reset button on the console. RAM is not cleared.
func (nes *NES) Reset() {
	nes.Mem.PPU.Reset()
	nes.PPU.Reset()
	nes.CPU.Reset()
	nes.nmi = false
	nes.irq = false
	logger.Logf(logger.Allow, "nes", "reset. jumping to 0x%04x", nes.CPU.PC.Address())
}

// PowerOn puts the NES into its power on state. RAM is filled with the power
// on value before the NES is reset. The cartridge area is not affected.
func (nes *NES) PowerOn() {
	nes.Mem.Reset()
	nes.Reset()
}

// SetIRQ sets or clears the IRQ line. The IRQ line is checked before every
// instruction and will be serviced if interrupts are enabled in the CPU.
func (nes *NES) SetIRQ(set bool) {
	nes.irq = set
}

// EmulatedTime returns the amount of time that would have passed on a real
// NES since the last reset.
func (nes *NES) EmulatedTime() time.Duration {
	return time.Duration(float64(nes.CPU.Cycles) / nes.Clock * float64(time.Microsecond))
}

func (nes *NES) String() string {
	return nes.CPU.String()
}
