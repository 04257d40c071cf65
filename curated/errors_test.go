// This file is part of Retrocore.
//
// Retrocore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Retrocore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Retrocore.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/retromachines/retrocore/curated"
	"github.com/retromachines/retrocore/test"
)

const testPattern = "test: %v"

func TestDeduplication(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectEquality(t, e.Error(), "test: foo")

	// packing errors of the same pattern next to each other causes one of
	// them to be dropped
	f := curated.Errorf(testPattern, e)
	test.ExpectEquality(t, f.Error(), "test: foo")
}

func TestIsAndHas(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))

	f := curated.Errorf("outer: %v", e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))

	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.Has(nil, testPattern))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("reading: %v", io.EOF)
	test.ExpectSuccess(t, errors.Is(e, io.EOF))

	e = curated.Errorf("reading: %v", "no error value")
	test.ExpectEquality(t, errors.Unwrap(e), nil)
}
