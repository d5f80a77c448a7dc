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
	"io"
)

// Write the disassembly to io.Writer. Only entries at or above the specified
// level are written.
func (dsm *Disassembly) Write(output io.Writer, level EntryLevel) error {
	for _, e := range dsm.entries {
		if e.Level == EntryLevelUnused || e.Level < level {
			continue
		}
		if _, err := io.WriteString(output, e.String()); err != nil {
			return err
		}
		if _, err := io.WriteString(output, "\n"); err != nil {
			return err
		}
	}
	return nil
}
