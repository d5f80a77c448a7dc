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
)

// linearDisassembly decodes every address in the disassembly area as though
// it was the start of an instruction.
//
// the downside of this method is that a lot of addresses in data segments will
// also be deemed to be valid instructions; so linear disassembly is no good
// for presenting the entire program.
func (dsm *Disassembly) linearDisassembly(mc *cpu.CPU) {
	for address := int(dsm.origin); address <= int(dsm.memtop); address++ {
		mc.PC.Load(uint16(address))
		r, _ := mc.ExecuteInstruction(cpu.NilCycleCallback)

		// illegal opcodes are almost certainly data
		if r.IsValid() != nil || r.Illegal() {
			continue
		}

		dsm.entries[address-int(dsm.origin)] = Entry{
			Level:  EntryLevelDecoded,
			Result: r,
			Bytes:  dsm.instructionBytes(r.Address, r.ByteCount),
		}
	}
}
