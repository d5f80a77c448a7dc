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

package hardware_test

import (
	"errors"
	"testing"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware"
	"github.com/famicore/famicore/hardware/memory/cpubus"
	"github.com/famicore/famicore/hardware/ppu"
	"github.com/famicore/famicore/test"
)

// newNES creates a NES with the program loaded at 0x8000 and the reset
// vector pointing to it. NMI and IRQ vectors point to 0x9000 and 0xa000.
func newNES(t *testing.T, program []uint8) *hardware.NES {
	t.Helper()

	nes := hardware.NewNES()
	test.DemandSuccess(t, nes.Mem.Load(0x8000, program))
	test.DemandSuccess(t, nes.Mem.Load(cpubus.NMI, []uint8{0x00, 0x90, 0x00, 0x80, 0x00, 0xa0}))
	nes.Reset()
	test.DemandEquality(t, nes.CPU.PC.Address(), 0x8000)

	return nes
}

func TestPowerOn(t *testing.T) {
	nes := hardware.NewNES()
	nes.Mem.Poke(0x0010, 0x00)
	nes.PowerOn()
	test.ExpectEquality(t, nes.Mem.Peek(0x0010), 0xff)
	test.ExpectEquality(t, nes.CPU.SP.Value(), 0xfd)
	test.ExpectEquality(t, nes.CPU.Status.InterruptDisable, true)
}

func TestStep(t *testing.T) {
	// LDA #$05; STA $10
	nes := newNES(t, []uint8{0xa9, 0x05, 0x85, 0x10})

	var dots int
	res, err := nes.Step(func() error {
		dots++
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res.Cycles, 2)
	test.ExpectEquality(t, dots, 6)
	test.ExpectEquality(t, nes.PPU.Dot, 6)

	res, err = nes.Step(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res.Cycles, 3)
	test.ExpectEquality(t, nes.PPU.Dot, 15)
	test.ExpectEquality(t, nes.Mem.Peek(0x0010), 0x05)

	// RAM mirror
	test.ExpectEquality(t, nes.Mem.Peek(0x0810), 0x05)
}

func TestStepError(t *testing.T) {
	nes := newNES(t, []uint8{0xea})

	errTest := errors.New("test")
	_, err := nes.Step(func() error {
		return errTest
	})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, errTest))
	test.ExpectSuccess(t, curated.Is(err, "nes: %v"))
}

func TestNMI(t *testing.T) {
	// LDA #$00; STA $10; LDA #$80; STA $2000; JMP $8009
	nes := newNES(t, []uint8{0xa9, 0x00, 0x85, 0x10, 0xa9, 0x80, 0x8d, 0x00, 0x20, 0x4c, 0x09, 0x80})

	// INC $10; RTI
	test.DemandSuccess(t, nes.Mem.Load(0x9000, []uint8{0xe6, 0x10, 0x40}))

	test.DemandSuccess(t, nes.RunForFrameCount(2))
	test.ExpectEquality(t, nes.Mem.Peek(0x0010), 0x02)

	// the stack is balanced after each NMI
	test.ExpectEquality(t, nes.CPU.SP.Value(), 0xfd)
}

func TestNMIDisabled(t *testing.T) {
	// LDA #$00; STA $10; JMP $8004
	nes := newNES(t, []uint8{0xa9, 0x00, 0x85, 0x10, 0x4c, 0x04, 0x80})
	test.DemandSuccess(t, nes.Mem.Load(0x9000, []uint8{0xe6, 0x10, 0x40}))

	test.DemandSuccess(t, nes.RunForFrameCount(1))
	test.ExpectEquality(t, nes.Mem.Peek(0x0010), 0x00)
}

func TestIRQ(t *testing.T) {
	// CLI; JMP $8001
	nes := newNES(t, []uint8{0x58, 0x4c, 0x01, 0x80})

	// INC $11; RTI
	test.DemandSuccess(t, nes.Mem.Load(0xa000, []uint8{0xe6, 0x11, 0x40}))
	nes.Mem.Poke(0x0011, 0x00)

	// the IRQ is raised but interrupts are disabled so the CLI is run
	nes.SetIRQ(true)
	_, err := nes.Step(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, nes.CPU.PC.Address(), 0x8001)

	// the IRQ is serviced and the first instruction of the handler is run
	res, err := nes.Step(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res.Address, 0xa000)
	test.ExpectEquality(t, nes.Mem.Peek(0x0011), 0x01)
	nes.SetIRQ(false)

	// RTI
	_, err = nes.Step(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, nes.CPU.PC.Address(), 0x8001)
	test.ExpectEquality(t, nes.CPU.Status.InterruptDisable, false)
}

func TestRunForInstructionCount(t *testing.T) {
	// INX; JMP $8000
	nes := newNES(t, []uint8{0xe8, 0x4c, 0x00, 0x80})
	test.DemandSuccess(t, nes.RunForInstructionCount(10))
	test.ExpectEquality(t, nes.CPU.X.Value(), 5)
	test.ExpectEquality(t, nes.CPU.Cycles, 25)
	test.ExpectEquality(t, nes.PPU.Dot, 75)
}

func TestRun(t *testing.T) {
	// INX; JMP $8000
	nes := newNES(t, []uint8{0xe8, 0x4c, 0x00, 0x80})

	var n int
	err := nes.Run(func() (bool, error) {
		n++
		return n < 4, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, nes.CPU.X.Value(), 2)

	errTest := errors.New("test")
	err = nes.Run(func() (bool, error) {
		return true, errTest
	})
	test.ExpectSuccess(t, errors.Is(err, errTest))
}

func TestSnapshot(t *testing.T) {
	// INX; JMP $8000
	nes := newNES(t, []uint8{0xe8, 0x4c, 0x00, 0x80})
	test.DemandSuccess(t, nes.RunForInstructionCount(3))

	state := nes.Snapshot()
	test.ExpectEquality(t, state.CPU.X.Value(), 2)

	test.DemandSuccess(t, nes.RunForInstructionCount(4))
	nes.Mem.Poke(0x0000, 0x42)
	test.ExpectEquality(t, nes.CPU.X.Value(), 4)

	// snapshot is unaffected by the running emulation
	test.ExpectEquality(t, state.CPU.X.Value(), 2)
	test.ExpectEquality(t, state.Mem.Peek(0x0000), 0xff)

	nes.Plumb(state)
	test.ExpectEquality(t, nes.CPU.X.Value(), 2)
	test.ExpectEquality(t, nes.Mem.Peek(0x0000), 0xff)

	// the plumbed CPU and PPU use the plumbed memory
	test.DemandSuccess(t, nes.RunForInstructionCount(1))
	test.ExpectEquality(t, nes.CPU.X.Value(), 2)
	test.DemandSuccess(t, nes.RunForInstructionCount(1))
	test.ExpectEquality(t, nes.CPU.X.Value(), 3)

	nes.Mem.Poke(0x2000, 0x80)
	test.ExpectEquality(t, state.Mem.Peek(0x2000), 0x00)

	// plumbing a nil state panics
	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	nes.Plumb(nil)
}

func TestFrameTiming(t *testing.T) {
	// JMP $8000
	nes := newNES(t, []uint8{0x4c, 0x00, 0x80})
	test.DemandSuccess(t, nes.RunForFrameCount(1))

	// a frame is not a whole number of CPU cycles so the PPU will have run a
	// little into the next frame
	test.ExpectEquality(t, nes.PPU.Frame, 1)
	test.ExpectEquality(t, nes.PPU.Scanline, 0)
	test.ExpectSuccess(t, nes.PPU.Dot < 3*3)
	test.ExpectSuccess(t, nes.CPU.Cycles*3 >= ppu.DotsPerScanline*ppu.ScanlinesPerFrame)
}

func TestEmulatedTime(t *testing.T) {
	// JMP $8000
	nes := newNES(t, []uint8{0x4c, 0x00, 0x80})
	test.DemandSuccess(t, nes.RunForFrameCount(60))

	// sixty NTSC frames is very nearly one second
	test.ExpectApproximate(t, nes.EmulatedTime().Seconds(), 1.0, 0.01)
}
