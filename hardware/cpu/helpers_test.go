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

package cpu_test

import (
	"testing"

	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/memory/cpubus"
)

// mockMem is a flat 64KB memory that records the addresses read by the CPU.
type mockMem struct {
	internal []uint8
	reads    []uint16
}

func newMockMem() *mockMem {
	mem := new(mockMem)
	mem.internal = make([]uint8, 0x10000)
	return mem
}

// Read implements cpubus.Memory.
func (mem *mockMem) Read(address uint16) uint8 {
	mem.reads = append(mem.reads, address)
	return mem.internal[address]
}

// Write implements cpubus.Memory.
func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

// Peek implements bus.DebugBus.
func (mem *mockMem) Peek(address uint16) uint8 {
	return mem.internal[address]
}

// Poke implements bus.DebugBus.
func (mem *mockMem) Poke(address uint16, value uint8) {
	mem.internal[address] = value
}

// Clear sets all bytes in memory to zero.
func (mem *mockMem) Clear() {
	for i := 0; i < len(mem.internal); i++ {
		mem.internal[i] = 0
	}
	mem.reads = mem.reads[:0]
}

// Fill sets all bytes in memory to the value.
func (mem *mockMem) Fill(v uint8) {
	for i := 0; i < len(mem.internal); i++ {
		mem.internal[i] = v
	}
}

// hasRead returns true if the address has been read since the last call to
// clearReads().
func (mem *mockMem) hasRead(address uint16) bool {
	for _, a := range mem.reads {
		if a == address {
			return true
		}
	}
	return false
}

func (mem *mockMem) clearReads() {
	mem.reads = mem.reads[:0]
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

// putVector writes the little endian address to the vector.
func (mem *mockMem) putVector(vector uint16, address uint16) {
	mem.Write(vector, uint8(address))
	mem.Write(vector+1, uint8(address>>8))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d := mem.internal[address]
	if d != value {
		t.Errorf("memory assertion failed (%#02x  - wanted %#02x at address %04x)", d, value, address)
	}
}

// the origin used by most tests. the reset vector is set to this address.
const origin = uint16(0x0600)

// newCPU creates a cpu with a clear mock memory and reset vector pointing to
// the origin.
func newCPU(t *testing.T) (*cpu.CPU, *mockMem) {
	t.Helper()
	mem := newMockMem()
	mem.putVector(cpubus.Reset, origin)
	mc := cpu.NewCPU(mem)
	mc.Reset()
	return mc, mem
}

// step executes the next instruction and checks the validity of the result.
func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	result, err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	if err != nil {
		t.Fatal(err)
	}
	err = result.IsValid()
	if err != nil {
		t.Fatal(err)
	}
	return result
}
