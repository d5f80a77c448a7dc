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
	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/cpu/execution"
)

// the number of PPU dots for every CPU cycle.
const ppuDotsPerCycle = 3

// Step the emulation one CPU instruction. Any interrupt that is pending is
// serviced first.
//
// The cycleCallback is called after every PPU dot. It can be nil.
func (nes *NES) Step(cycleCallback func() error) (execution.Result, error) {
	// the cpu calls the ppuCycle function after every CPU cycle. this is
	// backwards compared to the real NES, where the PPU and CPU share a master
	// clock, but the effect is the same because the CPU never sees the PPU
	// state mid-instruction.
	ppuCycle := func() error {
		for i := 0; i < ppuDotsPerCycle; i++ {
			nes.PPU.Step()
			if nes.PPU.NMI() {
				nes.nmi = true
			}

			if cycleCallback != nil {
				if err := cycleCallback(); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if nes.nmi {
		nes.nmi = false
		if _, err := nes.CPU.Interrupt(cpu.NMI, ppuCycle); err != nil {
			return execution.Result{}, curated.Errorf("nes: %v", err)
		}
	} else if nes.irq {
		if _, err := nes.CPU.Interrupt(cpu.IRQ, ppuCycle); err != nil {
			return execution.Result{}, curated.Errorf("nes: %v", err)
		}
	}

	result, err := nes.CPU.ExecuteInstruction(ppuCycle)
	if err != nil {
		return result, curated.Errorf("nes: %v", err)
	}

	return result, nil
}

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called after every instruction and should return false when the
// emulation should stop. A nil continueCheck runs the emulation forever or
// until an error occurs.
func (nes *NES) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		_, err := nes.Step(nil)
		if err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// RunForInstructionCount runs the emulation for the specified number of
// instructions. Useful for tests.
func (nes *NES) RunForInstructionCount(n int) error {
	for i := 0; i < n; i++ {
		if _, err := nes.Step(nil); err != nil {
			return err
		}
	}
	return nil
}

// RunForFrameCount runs the emulation until the PPU has completed the
// specified number of frames. The frame count is only checked between
// instructions.
func (nes *NES) RunForFrameCount(numFrames int) error {
	target := nes.PPU.Frame + numFrames
	for nes.PPU.Frame < target {
		if _, err := nes.Step(nil); err != nil {
			return err
		}
	}
	return nil
}
