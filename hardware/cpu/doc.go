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

// Package cpu emulates the 6502 microprocessor found in the NES (the 2A03
// without its audio unit). Like all 8-bit processors of the era, the 6502
// executes instructions according to the single byte value read from an
// address pointed to by the program counter. This single byte is the opcode
// and is looked up in the instruction table. The instruction definition for
// that opcode is then used to move execution of the program forward.
//
// The instance of the CPU type requires an instance of a cpubus.Memory
// implementation as the sole argument. The Memory interface defines the memory
// operations required by the CPU. See the cpubus package for details.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Its sole argument is a callback function to be called once for every cycle
// consumed by the instruction. The callback is called after the instruction
// has completed.
//
// Let's assume mem is an instance of the cpubus.Memory interface loaded with
// 6502 instructions.
//
//	mc := cpu.NewCPU(mem)
//	mc.Reset()
//
//	numCycles := 0
//	numInstructions := 0
//
//	for {
//		mc.ExecuteInstruction(func() error {
//			numCycles++
//			return nil
//		})
//		numInstructions++
//	}
//
// The above program does nothing interesting except to show how
// ExecuteInstruction() can be used to pump information to a callback
// function. The NES emulation uses this to run the PPU three times for every
// CPU cycle.
//
// ExecuteInstruction() returns the execution.Result of the instruction. The
// same information is available in the LastResult field. The result records
// the instruction definition, the number of cycles consumed and whether the
// opcode was an illegal opcode. Illegal opcodes (opcodes with no documented
// assignment) are executed as a two cycle no-operation.
//
// Timing is cycle exact at the instruction level. Page sensitive read
// instructions take an extra cycle when the indexed address crosses a page. A
// successful branch takes an extra cycle and another extra cycle if the
// branch crosses a page.
//
// Hardware interrupts are not raised by the CPU itself. The owner of the CPU
// can force the interrupt sequence between instructions with the Interrupt()
// function.
//
// The NoFlowControl flag is used to prevent the CPU from honouring "flow
// control" functions (ie. JMP, BNE, BEQ, etc.). See instructions package for
// classifications.
package cpu
