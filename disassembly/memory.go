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
	"github.com/famicore/famicore/hardware/memory/bus"
)

// minimalMemory is the view of memory given to the CPU during disassembly.
// Reads are made with Peek() so that memory mapped registers are not
// affected. Writes are ignored.
type minimalMemory struct {
	mem bus.DebugBus
}

// Read implements the cpubus.Memory interface.
func (m minimalMemory) Read(address uint16) uint8 {
	return m.mem.Peek(address)
}

// Write implements the cpubus.Memory interface.
func (m minimalMemory) Write(_ uint16, _ uint8) {
}
