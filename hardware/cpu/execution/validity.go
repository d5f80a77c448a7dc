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

package execution

import (
	"github.com/famicore/famicore/curated"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised")
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: execution has no instruction definition")
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	// a page fault can only happen for page sensitive instructions and branches
	if r.PageFault && !r.Defn.PageSensitive && !r.Defn.IsBranch() {
		return curated.Errorf("cpu: unexpected page fault")
	}

	// a branch can only page fault if it succeeded
	if r.Defn.IsBranch() {
		if r.PageFault && !r.BranchSuccess {
			return curated.Errorf("cpu: unexpected page fault for unsuccessful branch")
		}

		expected := r.Defn.Cycles
		if r.BranchSuccess {
			expected++
			if r.PageFault {
				expected++
			}
		}
		if r.Cycles != expected {
			return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode,
				r.Defn.Mnemonic,
				r.Cycles,
				expected)
		}
		return nil
	}

	if r.BranchSuccess {
		return curated.Errorf("cpu: unexpected branch success for non-branch instruction")
	}

	expected := r.Defn.Cycles
	if r.PageFault {
		expected++
	}
	if r.Cycles != expected {
		return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode,
			r.Defn.Mnemonic,
			r.Cycles,
			expected)
	}

	return nil
}
