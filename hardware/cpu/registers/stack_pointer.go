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

package registers

import (
	"fmt"
)

// StackOrigin is the address of the first byte of the stack page.
const StackOrigin = uint16(0x0100)

// StackPointer represents the SP register in the 6502 CPU. The register holds
// the low byte of the next free slot in the stack page. The stack pointer
// wraps around within the stack page and never addresses memory outside of it.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the SP.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02x", sp.value)
}

// Value returns the low byte of the next free stack slot.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the address in memory of the next free stack slot.
func (sp StackPointer) Address() uint16 {
	return StackOrigin | uint16(sp.value)
}

// Load value into stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Push returns the address that the pushed byte should be written to and moves
// the stack pointer down to the next free slot.
func (sp *StackPointer) Push() uint16 {
	a := sp.Address()
	sp.value--
	return a
}

// Pull moves the stack pointer up to the most recently pushed byte and returns
// its address.
func (sp *StackPointer) Pull() uint16 {
	sp.value++
	return sp.Address()
}

// Peek returns the address of the nth most recently pushed byte without
// changing the stack pointer. The most recent byte is n == 1.
func (sp StackPointer) Peek(n uint8) uint16 {
	return StackOrigin | uint16(sp.value+n)
}
