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

// Package functional_test runs the 6502 functional test as defined by Klaus
// Dormann. https://github.com/Klaus2m5/6502_65C02_functional_tests
//
// The NES CPU has no decimal mode so the 6502_functional_test.a65 file should
// be assembled with disable_decimal set to 1 and loaded at address zero. The
// resulting binary should be placed in the testdata directory. The test is
// skipped if the binary is not present.
//
// The successAddress variable must match the success trap in the listing
// file produced by the assembler.
package functional_test
