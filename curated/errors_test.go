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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/test"
)

const testPattern = "test error: %s"
const wrapPattern = "wrapped: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectFailure(t, curated.Is(e, wrapPattern))

	// plain errors are not curated
	test.ExpectFailure(t, curated.IsAny(io.EOF))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	f := curated.Errorf(wrapPattern, e)
	test.ExpectEquality(t, f.Error(), "wrapped: test error: foo")
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, wrapPattern))
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectFailure(t, curated.Has(io.EOF, testPattern))
}

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("cpu: illegal")
	f := curated.Errorf("cpu: %v", e)
	test.ExpectEquality(t, f.Error(), "cpu: illegal")

	g := curated.Errorf("nes: %v", f)
	test.ExpectEquality(t, g.Error(), "nes: cpu: illegal")
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("load: %v", io.ErrUnexpectedEOF)
	test.ExpectSuccess(t, errors.Is(e, io.ErrUnexpectedEOF))
	test.ExpectFailure(t, errors.Is(e, io.EOF))
}
