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

package test_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/famisim/famisim/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, !false)
	test.ExpectEquality(t, uint16(0xfffc), 0xfffc)
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
}

func TestExpectImplements(t *testing.T) {
	test.ExpectImplements[io.Writer](t, &test.Writer{})
	test.ExpectImplements[fmt.Stringer](t, &test.Writer{})
}

// the demand functions stop the test on failure. only the passing cases can
// be tested here.
func TestDemand(t *testing.T) {
	test.DemandEquality(t, uint8(0x42), 0x42)
	test.DemandInequality(t, "8000", "8001")
	test.DemandSuccess(t, true)
	test.DemandSuccess(t, nil)
	test.DemandFailure(t, errors.New("test"))
	test.DemandImplements[io.Writer](t, &test.Writer{})
}

func TestWriter(t *testing.T) {
	w := &test.Writer{}
	fmt.Fprintf(w, "abc")
	test.ExpectSuccess(t, w.Compare("abc"))
	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}
