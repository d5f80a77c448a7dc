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

// Package logger is the central log for the emulation. Log entries are made up
// of a tag and a detail. The tag is usually the name of the component making
// the entry, for example "cpu" or "nes".
//
//	logger.Logf(logger.Allow, "cpu", "illegal opcode (%#02x) at (%#04x)", opcode, address)
//
// Consecutive entries that are identical are folded into a single entry with
// a repeat count. The number of entries in the log is capped.
//
// Every log request must be accompanied by a Permission. The Allow value can be
// used when the log entry should always be made. Components that are sometimes
// run speculatively (for example, a CPU with NoFlowControl set) can implement
// the Permission interface and decline logging.
package logger

import (
	"io"
)

// only allowing one central log for the entire application. there's no need to
// allow more than one log.
var central *Logger

// maximum number of entries in the central logger.
const maxCentral = 256

func init() {
	central = NewLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Clear all entries from central logger.
func Clear() {
	central.Clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.Write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho prints new log entries to io.Writer as they are made. A nil writer
// turns off echoing.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}
