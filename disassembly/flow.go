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

package disassembly

import (
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/cpu/instructions"
	"github.com/famicore/famicore/hardware/memory/cpubus"
)

// flowDisassembly follows the program from each of the interrupt vectors.
func (dsm *Disassembly) flowDisassembly(mc *cpu.CPU) {
	for _, v := range []uint16{cpubus.Reset, cpubus.NMI, cpubus.IRQ} {
		lo := dsm.mem.Peek(v)
		hi := dsm.mem.Peek(v + 1)
		dsm.flow(mc, (uint16(hi)<<8)|uint16(lo))
	}
}

// flow disassembles from the address until the flow of the program leaves
// the disassembly area or reaches an instruction that has already been
// blessed.
//
// the following are not followed:
//
//	o addresses stuffed into the stack and RTS being called, without an
//		explicit JSR
//	o indirect jumps through pointers in RAM. the pointer value at
//		disassembly time is unlikely to be the value at run time
func (dsm *Disassembly) flow(mc *cpu.CPU, address uint16) {
	mc.PC.Load(address)

	for {
		e := dsm.entry(mc.PC.Address())
		if e == nil || e.Level == EntryLevelBlessed {
			return
		}

		r, _ := mc.ExecuteInstruction(cpu.NilCycleCallback)
		if r.IsValid() != nil || r.Illegal() {
			return
		}

		e.Level = EntryLevelBlessed
		e.Result = r
		e.Bytes = dsm.instructionBytes(r.Address, r.ByteCount)

		// flow control is disabled in the cpu but we still need to pay
		// attention to what's going on or we won't get to see all the areas of
		// the program
		switch r.Defn.Effect {
		case instructions.Flow:
			if r.Defn.IsBranch() {
				retPC := mc.PC.Address()
				dsm.flow(mc, branchTarget(r))
				mc.PC.Load(retPC)
				continue
			}

			// JMP never returns
			target := r.InstructionData
			if r.Defn.AddressingMode == instructions.Indirect {
				if dsm.entry(target) == nil {
					return
				}
				lo := dsm.mem.Peek(target)
				hi := dsm.mem.Peek((target & 0xff00) | ((target + 1) & 0x00ff))
				target = (uint16(hi) << 8) | uint16(lo)
			}
			dsm.flow(mc, target)
			return

		case instructions.Subroutine:
			if r.Defn.Operator == instructions.Rts {
				return
			}

			retPC := mc.PC.Address()
			dsm.flow(mc, r.InstructionData)
			mc.PC.Load(retPC)

		case instructions.Interrupt:
			// BRK continues at the IRQ vector, which is followed separately.
			// RTI returns to wherever the interrupt happened
			return
		}
	}
}
