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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern:
//
//	e := curated.Errorf(memory.LoadOutOfRange, origin, len(data))
//
//	if curated.Is(e, memory.LoadOutOfRange) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("nes: %v", e)
//
//	if curated.Has(f, memory.LoadOutOfRange) {
//		fmt.Println("true")
//	}
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For example, wrapping "cpu: illegal" in the pattern
// "cpu: %v" results in the message:
//
//	cpu: illegal
//
// and not:
//
//	cpu: cpu: illegal
//
// For the purposes of this package chains are composed of parts separated by
// the sub-string ": ".
//
// Sentinal patterns should be stored as a const string, suitably named and
// commented, in the package that creates the error.
//
// Any error value passed to Errorf() is available to the Unwrap() function, so
// the errors.Is() and errors.As() functions in the standard library work as
// expected for uncurated errors wrapped by a curated error.
package curated
