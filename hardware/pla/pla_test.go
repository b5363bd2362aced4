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

package pla_test

import (
	"strings"
	"testing"

	"github.com/famisim/famisim/curated"
	"github.com/famisim/famisim/hardware/logic"
	"github.com/famisim/famisim/hardware/pla"
	"github.com/famisim/famisim/test"
)

const small = `
# two rows over four inputs
dimensions 4 3

1000  # NOT bit 0
0110
0000  # always high
`

func TestParse(t *testing.T) {
	p, err := pla.Parse(strings.NewReader(small))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Inputs(), 4)
	test.ExpectEquality(t, p.Rows(), 3)
	test.ExpectEquality(t, p.Row(0), "1000")
	test.ExpectEquality(t, p.Row(1), "0110")
	test.ExpectEquality(t, p.Row(2), "0000")
}

func TestDecode(t *testing.T) {
	p, err := pla.Parse(strings.NewReader(small))
	test.DemandSuccess(t, err)

	out := make([]logic.Signal, p.Rows())

	for in := uint64(0); in < 16; in++ {
		p.Decode(in, out)
		test.ExpectEquality(t, out[0], logic.FromBool(in&0x01 == 0), in)
		test.ExpectEquality(t, out[1], logic.FromBool(in&0x06 == 0), in)
		test.ExpectEquality(t, out[2], logic.One, in)
	}

	// bits beyond the width of the matrix are ignored
	p.Decode(0xf0, out)
	test.ExpectEquality(t, out[0], logic.One)
	test.ExpectEquality(t, out[1], logic.One)
}

func TestNew(t *testing.T) {
	masks := []uint64{0x01, 0x02}
	p, err := pla.New(2, masks)
	test.DemandSuccess(t, err)

	// changing the original slice does not change the matrix
	masks[0] = 0x02
	test.ExpectEquality(t, p.Row(0), "10")

	_, err = pla.New(2, []uint64{0x04})
	test.ExpectFailure(t, err)
	_, err = pla.New(0, masks)
	test.ExpectFailure(t, err)
	_, err = pla.New(65, masks)
	test.ExpectFailure(t, err)
	_, err = pla.New(2, nil)
	test.ExpectFailure(t, err)
}

func TestMalformed(t *testing.T) {
	tests := []string{
		"",
		"1000\n",
		"dimensions 4\n1000\n",
		"dimensions four 1\n1000\n",
		"dimensions 65 1\n",
		"dimensions 4 1\n100\n",
		"dimensions 4 1\n10x0\n",
		"dimensions 4 2\n1000\n",
		"dimensions 4 1\n1000\n0100\n",
	}

	for i, s := range tests {
		_, err := pla.Parse(strings.NewReader(s))
		if test.ExpectFailure(t, err, i) {
			test.ExpectEquality(t, curated.Is(err, pla.Malformed), true, i)
		}
	}
}
