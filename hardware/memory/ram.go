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

package memory

import (
	"fmt"
	"strings"

	"github.com/famicore/famicore/hardware/memory/memorymap"
)

// PowerOnFill is the value of every byte of internal RAM at power on.
const PowerOnFill = uint8(0xff)

// RAM represents the 2KB of internal RAM in the NES.
type RAM struct {
	RAM [memorymap.SizeRAM]uint8
}

// NewRAM is the preferred method of initialisation for the RAM memory area.
func NewRAM() *RAM {
	ram := &RAM{}
	ram.Reset()
	return ram
}

// Reset contents of RAM to the power on state.
func (ram *RAM) Reset() {
	for i := range ram.RAM {
		ram.RAM[i] = PowerOnFill
	}
}

func (ram RAM) String() string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < 16; y++ {
		s.WriteString(fmt.Sprintf("%X- | ", y))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.RAM[uint16((y*16)+x)]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

// Read is an implementation of cpubus.Memory. Address must be a mapped address.
func (ram *RAM) Read(address uint16) uint8 {
	return ram.RAM[address&memorymap.MaskRAM]
}

// Write is an implementation of cpubus.Memory. Address must be a mapped
// address.
func (ram *RAM) Write(address uint16, data uint8) {
	ram.RAM[address&memorymap.MaskRAM] = data
}
