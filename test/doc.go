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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and return false
// so that the caller can decide whether to continue. The Demand*() functions
// are the same except that a failure is fatal.
//
// Success and failure values are decided by the type of the value being
// tested:
//
//	bool -> true is success
//	error -> nil is success
//
// The nil type is considered a success. This may not be how we want to
// interpret nil in all situations but because of how errors usually work (nil
// to indicate no error) we need to interpret nil in this way.
//
// All functions take an optional list of tags. The tags are prepended to any
// failure message and help identify which of many similar tests failed.
package test
