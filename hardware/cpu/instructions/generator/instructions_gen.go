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

// this program generates the table.go file in the parent directory from the
// instructions.csv file in this directory. it is run with go generate.
package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/famicore/famicore/hardware/cpu/instructions"
)

const definitionsCSVFile = "./generator/instructions.csv"
const generatedGoFile = "./table.go"

const headerFile = "./generator/header.txt"

const leadingBoilerPlate = "// Code generated by generator/instructions_gen.go. DO NOT EDIT.\n\n" +
	"package instructions\n\n" +
	"// table of instruction definitions for the 6502, indexed by opcode\n" +
	"var table = [256]Definition{\n"

const trailingBoilerPlate = "}\n"

// the operator constants are named in title case. eg. "Adc" for "ADC"
func operatorName(mnemonic string) string {
	return mnemonic[:1] + strings.ToLower(mnemonic[1:])
}

func parseCSV() (map[uint8]instructions.Definition, error) {
	// open file
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return nil, fmt.Errorf("error opening instruction definitions (%s)", err)
	}
	defer df.Close()

	// treat the file as a CSV file
	csvr := csv.NewReader(df)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true
	csvr.ReuseRecord = true

	// instruction file can have a variable number of fields per definition.
	// instruction effect field is optional (defaulting to READ)
	csvr.FieldsPerRecord = -1

	// create new definitions table
	deftable := make(map[uint8]instructions.Definition)

	line := 0
	for {
		// loop through file until EOF is reached
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		// check for valid record length
		if !(len(rec) == 5 || len(rec) == 6) {
			return nil, fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		// manually trim trailing space from all fields in the record
		for i := 0; i < len(rec); i++ {
			rec[i] = strings.TrimSpace(rec[i])
		}

		newDef := instructions.Definition{}

		// field: parse opcode
		opcode := strings.TrimPrefix(rec[0], "0x")
		n, err := strconv.ParseUint(opcode, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		newDef.OpCode = uint8(n)

		if _, ok := deftable[newDef.OpCode]; ok {
			return nil, fmt.Errorf("duplicate definition for %#02x [line %d]", newDef.OpCode, line)
		}

		// field: opcode mnemonic
		newDef.Mnemonic = strings.ToUpper(rec[1])
		var ok bool
		newDef.Operator, ok = instructions.LookupOperator(newDef.Mnemonic)
		if !ok {
			return nil, fmt.Errorf("unknown mnemonic for %#02x (%s) [line %d]", newDef.OpCode, rec[1], line)
		}

		// field: cycle count
		newDef.Cycles, err = strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", newDef.OpCode, rec[2], line)
		}

		// field: addressing mode
		switch strings.ToUpper(rec[3]) {
		default:
			return nil, fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", newDef.OpCode, rec[3], line)
		case "IMPLIED":
			newDef.AddressingMode = instructions.Implied
		case "ACCUMULATOR":
			newDef.AddressingMode = instructions.Accumulator
		case "IMMEDIATE":
			newDef.AddressingMode = instructions.Immediate
		case "RELATIVE":
			newDef.AddressingMode = instructions.Relative
		case "ZERO_PAGE":
			newDef.AddressingMode = instructions.ZeroPage
		case "ZERO_PAGE_X":
			newDef.AddressingMode = instructions.ZeroPageX
		case "ZERO_PAGE_Y":
			newDef.AddressingMode = instructions.ZeroPageY
		case "ABSOLUTE":
			newDef.AddressingMode = instructions.Absolute
		case "ABSOLUTE_X":
			newDef.AddressingMode = instructions.AbsoluteX
		case "ABSOLUTE_Y":
			newDef.AddressingMode = instructions.AbsoluteY
		case "INDIRECT":
			newDef.AddressingMode = instructions.Indirect
		case "INDEXED_INDIRECT":
			newDef.AddressingMode = instructions.IndexedIndirect
		case "INDIRECT_INDEXED":
			newDef.AddressingMode = instructions.IndirectIndexed
		}

		// the addressing mode also defines how many bytes an opcode requires
		newDef.Bytes = 1 + newDef.AddressingMode.OperandBytes()

		// field: page sensitive
		switch strings.ToUpper(rec[4]) {
		default:
			return nil, fmt.Errorf("invalid page sensitivity switch for %#02x (%s) [line %d]", newDef.OpCode, rec[4], line)
		case "TRUE":
			newDef.PageSensitive = true
		case "FALSE":
			newDef.PageSensitive = false
		}

		// field: effect category
		if len(rec) == 5 {
			// effect field is optional. if it hasn't been included then
			// default instruction effect defaults to 'Read'
			newDef.Effect = instructions.Read
		} else {
			switch strings.ToUpper(rec[5]) {
			default:
				return nil, fmt.Errorf("unknown category for %#02x (%s) [line %d]", newDef.OpCode, rec[5], line)
			case "READ":
				newDef.Effect = instructions.Read
			case "WRITE":
				newDef.Effect = instructions.Write
			case "RMW":
				newDef.Effect = instructions.RMW
			case "FLOW":
				newDef.Effect = instructions.Flow
			case "SUB-ROUTINE":
				newDef.Effect = instructions.Subroutine
			case "INTERRUPT":
				newDef.Effect = instructions.Interrupt
			}
		}

		// add new definition to deftable, using opcode as the hash key
		deftable[newDef.OpCode] = newDef
	}

	return deftable, nil
}

func generate(deftable map[uint8]instructions.Definition) string {
	var s strings.Builder

	for opcode := 0; opcode < 256; opcode++ {
		defn, found := deftable[uint8(opcode)]
		if found {
			s.WriteString(fmt.Sprintf("{OpCode: 0x%02x, Operator: %s, Mnemonic: %q, Bytes: %d, Cycles: %d, AddressingMode: %s, PageSensitive: %t, Effect: %s},\n",
				defn.OpCode, operatorName(defn.Mnemonic), defn.Mnemonic, defn.Bytes, defn.Cycles,
				defn.AddressingMode, defn.PageSensitive, defn.Effect))
		} else {
			// unassigned opcodes are a single byte, two cycle no-operation
			s.WriteString(fmt.Sprintf("{OpCode: 0x%02x, Operator: Illegal, Mnemonic: \"???\", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Illegal: true},\n",
				opcode))
		}
	}

	return s.String()
}

func summary(deftable map[uint8]instructions.Definition) {
	fmt.Printf("%d opcodes defined, %d illegal\n", len(deftable), 256-len(deftable))
}

func main() {
	deftable, err := parseCSV()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	header, err := os.ReadFile(headerFile)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	// add boiler-plate to output
	output := fmt.Sprintf("%s\n%s%s%s", header, leadingBoilerPlate, generate(deftable), trailingBoilerPlate)

	// format code using standard Go formatted
	formattedOutput, err := format.Source([]byte(output))
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	// create output file (over-writing) if it already exists
	f, err := os.Create(generatedGoFile)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
	defer f.Close()

	_, err = f.Write(formattedOutput)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	summary(deftable)
}
