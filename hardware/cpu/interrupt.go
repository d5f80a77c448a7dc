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

package cpu

import (
	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/memory/cpubus"
	"github.com/famicore/famicore/logger"
)

// InterruptKind identifies the hardware interrupt to be serviced by the
// Interrupt() function.
type InterruptKind int

// List of hardware interrupts.
const (
	NMI InterruptKind = iota
	IRQ
)

func (k InterruptKind) String() string {
	switch k {
	case NMI:
		return "NMI"
	case IRQ:
		return "IRQ"
	}
	return "unknown interrupt"
}

// the number of cycles taken by the interrupt sequence.
const interruptCycles = 7

// Interrupt forces the CPU into the interrupt sequence. It should be called
// between calls to ExecuteInstruction(). The PC and the status register
// (with the break flag clear) are pushed to the stack, interrupts are disabled
// and the PC is loaded from the interrupt's vector.
//
// IRQ is ignored if the InterruptDisable flag is set. NMI can not be ignored.
// Returns true if the interrupt was serviced.
//
// Like ExecuteInstruction() the cycleCallback is called for every cycle
// consumed. The only errors returned are those returned by cycleCallback()
// and for an unknown kind of interrupt.
func (mc *CPU) Interrupt(kind InterruptKind, cycleCallback func() error) (bool, error) {
	var vector uint16

	switch kind {
	case NMI:
		vector = cpubus.NMI
	case IRQ:
		if mc.Status.InterruptDisable {
			return false, nil
		}
		vector = cpubus.IRQ
	default:
		return false, curated.Errorf("cpu: %v", kind)
	}

	mc.push16Bit(mc.PC.Address())
	mc.push(mc.Status.Pushed(false))
	mc.Status.InterruptDisable = true
	mc.LoadPCIndirect(vector)

	logger.Logf(mc, "cpu", "%s serviced. jumping to 0x%04x", kind, mc.PC.Address())

	mc.Cycles += interruptCycles
	for i := 0; i < interruptCycles; i++ {
		if err := cycleCallback(); err != nil {
			return true, err
		}
	}

	return true, nil
}
