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

package pla

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/famisim/famisim/curated"
	"github.com/famisim/famisim/hardware/logic"
)

// Malformed is the curated error pattern for a matrix that can not be used.
const Malformed = "pla: %v"

// MaxInputs is the widest input word supported by a PLA.
const MaxInputs = 64

// PLA is an immutable NOR matrix.
type PLA struct {
	inputs int
	masks  []uint64
}

// New creates a PLA from a list of row masks. Bit k of a mask selects input
// bit k. The masks slice is copied.
func New(inputs int, masks []uint64) (*PLA, error) {
	if inputs <= 0 || inputs > MaxInputs {
		return nil, curated.Errorf(Malformed, fmt.Errorf("unsupported number of inputs (%d)", inputs))
	}
	if len(masks) == 0 {
		return nil, curated.Errorf(Malformed, fmt.Errorf("no rows"))
	}

	var limit uint64
	if inputs < MaxInputs {
		limit = ^uint64(0) << inputs
	}

	p := &PLA{
		inputs: inputs,
		masks:  make([]uint64, len(masks)),
	}
	for i, m := range masks {
		if m&limit != 0 {
			return nil, curated.Errorf(Malformed, fmt.Errorf("row %d selects input outside of %d bits", i, inputs))
		}
		p.masks[i] = m
	}

	return p, nil
}

// Parse reads a matrix in the text format described in the package
// documentation.
func Parse(r io.Reader) (*PLA, error) {
	scanner := bufio.NewScanner(r)

	inputs := -1
	rows := -1
	var masks []uint64

	line := 0
	for scanner.Scan() {
		line++

		s := scanner.Text()
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}

		if inputs == -1 {
			f := strings.Fields(s)
			if len(f) != 3 || f[0] != "dimensions" {
				return nil, curated.Errorf(Malformed, fmt.Errorf("line %d: expected dimensions", line))
			}
			var err error
			inputs, err = strconv.Atoi(f[1])
			if err != nil || inputs <= 0 || inputs > MaxInputs {
				return nil, curated.Errorf(Malformed, fmt.Errorf("line %d: bad number of inputs (%s)", line, f[1]))
			}
			rows, err = strconv.Atoi(f[2])
			if err != nil || rows <= 0 {
				return nil, curated.Errorf(Malformed, fmt.Errorf("line %d: bad number of rows (%s)", line, f[2]))
			}
			masks = make([]uint64, 0, rows)
			continue
		}

		if len(s) != inputs {
			return nil, curated.Errorf(Malformed, fmt.Errorf("line %d: row is %d wide, expected %d", line, len(s), inputs))
		}

		var m uint64
		for k := 0; k < len(s); k++ {
			switch s[k] {
			case '0':
			case '1':
				m |= 1 << k
			default:
				return nil, curated.Errorf(Malformed, fmt.Errorf("line %d: unexpected character (%c)", line, s[k]))
			}
		}
		masks = append(masks, m)
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(Malformed, err)
	}

	if inputs == -1 {
		return nil, curated.Errorf(Malformed, fmt.Errorf("missing dimensions"))
	}
	if len(masks) != rows {
		return nil, curated.Errorf(Malformed, fmt.Errorf("%d rows found, expected %d", len(masks), rows))
	}

	return New(inputs, masks)
}

// Inputs returns the width of the input word.
func (p *PLA) Inputs() int {
	return p.inputs
}

// Rows returns the number of outputs.
func (p *PLA) Rows() int {
	return len(p.masks)
}

// Decode the packed input word. The out slice must be at least Rows() long.
// Input bits beyond the width of the PLA are ignored.
func (p *PLA) Decode(input uint64, out []logic.Signal) {
	for i, m := range p.masks {
		if input&m == 0 {
			out[i] = logic.One
		} else {
			out[i] = logic.Zero
		}
	}
}

// Row returns the mask for the row as a string in the resource format.
func (p *PLA) Row(i int) string {
	var b strings.Builder
	for k := 0; k < p.inputs; k++ {
		if p.masks[i]&(1<<k) != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
