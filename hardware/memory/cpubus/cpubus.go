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

// Package cpubus defines the memory bus as seen by the CPU. The CPU reads and
// writes bytes over the full 16 bit address space. How the address space is
// populated and mirrored is the concern of the implementation of the Memory
// interface, not the CPU.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. All memory areas implement this interface because they are all
// accessible from the CPU (compare to chipbus.Memory). The NES memory type also
// implements this interface and maps the read/write address to the correct
// memory area, meaning that CPU access need not care which part of memory it
// is writing to.
//
// Reads and writes can not fail. Every address is valid even if the address
// is not connected to anything.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// The interrupt vectors at the top of memory. Each vector is a 16 bit little
// endian address.
const (
	// NMI is the address where the non-maskable interrupt address is stored.
	NMI = uint16(0xfffa)

	// Reset is the address where the reset address is stored.
	Reset = uint16(0xfffc)

	// IRQ is the address where the interrupt address is stored. The BRK
	// instruction also uses this vector.
	IRQ = uint16(0xfffe)
)
