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

package test

import "testing"

// DemandEquality is ExpectEquality with a failure that stops the test. Use it
// when later checks depend on the value, such as a length that is about to be
// iterated over.
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	if !ExpectEquality(t, v, expectedValue, tags...) {
		t.FailNow()
	}
}

// DemandSuccess is ExpectSuccess with a failure that stops the test.
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	if !ExpectSuccess(t, v, tags...) {
		t.FailNow()
	}
}

// DemandFailure is ExpectFailure with a failure that stops the test.
func DemandFailure(t *testing.T, v any, tags ...any) {
	t.Helper()
	if !ExpectFailure(t, v, tags...) {
		t.FailNow()
	}
}
