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
	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/memory/bus"
)

// Disassembly represents the annotated disassembly of an area of memory.
type Disassembly struct {
	mem bus.DebugBus

	origin uint16
	memtop uint16

	// indexed by address. address should have origin subtracted before
	// access
	entries []Entry
}

// FromMemory disassembles the area of memory between origin and memtop
// (inclusive). The memory is not changed.
func FromMemory(mem bus.DebugBus, origin uint16, memtop uint16) (*Disassembly, error) {
	if origin > memtop {
		return nil, curated.Errorf("disassembly: origin (0x%04x) is after memtop (0x%04x)", origin, memtop)
	}

	dsm := &Disassembly{
		mem:     mem,
		origin:  origin,
		memtop:  memtop,
		entries: make([]Entry, int(memtop-origin)+1),
	}

	mc := cpu.NewCPU(minimalMemory{mem: mem})
	mc.NoFlowControl = true

	dsm.linearDisassembly(mc)
	dsm.flowDisassembly(mc)

	return dsm, nil
}

// entry returns a pointer to the entry for the address. Returns nil if the
// address is outside the disassembled area.
func (dsm *Disassembly) entry(address uint16) *Entry {
	if address < dsm.origin || address > dsm.memtop {
		return nil
	}
	return &dsm.entries[address-dsm.origin]
}

// GetEntryByAddress returns the disassembly entry at the specified address.
func (dsm *Disassembly) GetEntryByAddress(address uint16) (Entry, bool) {
	e := dsm.entry(address)
	if e == nil || e.Level == EntryLevelUnused {
		return Entry{}, false
	}
	return *e, true
}

// Count returns the number of entries at the specified level.
func (dsm *Disassembly) Count(level EntryLevel) int {
	var n int
	for _, e := range dsm.entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

// the bytes of the instruction starting at the address.
func (dsm *Disassembly) instructionBytes(address uint16, n int) []uint8 {
	b := make([]uint8, n)
	for i := range b {
		b[i] = dsm.mem.Peek(address + uint16(i))
	}
	return b
}
