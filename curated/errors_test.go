// This file is part of Famisim.
//
// Famisim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famisim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famisim.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"errors"
	"os"
	"testing"

	"github.com/famisim/famisim/curated"
	"github.com/famisim/famisim/test"
)

const testPattern = "test: %v"
const otherPattern = "other: %v"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf(testPattern, curated.Errorf(testPattern, "value"))
	test.ExpectEquality(t, e.Error(), "test: value")

	e = curated.Errorf("a: b: b: c")
	test.ExpectEquality(t, e.Error(), "a: b: c")
}

func TestIsAndHas(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, otherPattern))
	test.ExpectSuccess(t, curated.IsAny(e))

	f := curated.Errorf(otherPattern, e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, otherPattern))

	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Has(nil, testPattern))
}

func TestUnwrap(t *testing.T) {
	_, err := os.Open("/this/path/does/not/exist")
	e := curated.Errorf(testPattern, err)
	test.ExpectSuccess(t, errors.Is(e, os.ErrNotExist))
}
