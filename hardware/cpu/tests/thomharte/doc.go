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

// Package thomharte contains 6502 single-step tests as created/maintained by
// Thom Harte.
//
// https://github.com/SingleStepTests/65x02
//
// The tests are large and are not included as part of the repository. Add the
// instructions you want to test from the nes6502/v1 directory on Github to the
// nes6502/v1 directory in this package. Test files for illegal opcodes are
// ignored.
//
// The testdata directory holds a small selection of tests in the same format.
// These cover each class of instruction timing and are always run.
//
// The CPU does not report individual bus cycles so only the final state of
// the CPU, the contents of RAM and the number of cycles are compared.
package thomharte
