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

// Package instructions defines the table of instruction definitions for the
// 6502 as used in the NES.
//
// The table is generated from the CSV file in the generator directory. To
// regenerate table.go run go generate in this directory. Every one of the 256
// possible opcodes has a definition. Opcodes that have no documented
// assignment are given a one byte, two cycle definition with the Illegal field
// set and the Illegal operator. Callers can use this to detect that a program
// has strayed into undocumented territory.
package instructions
