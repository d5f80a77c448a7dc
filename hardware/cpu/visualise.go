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
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Visualise writes a graphviz description of the CPU state to the writer.
// The memory bus is not included.
func (mc *CPU) Visualise(w io.Writer) {
	n := mc.Snapshot()
	n.mem = nil
	memviz.Map(w, n)
}
