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

package decoder

import (
	"bytes"
	_ "embed"
	"io"
	"sync"

	"github.com/famisim/famisim/hardware/logic"
	"github.com/famisim/famisim/hardware/pla"
	"github.com/famisim/famisim/logger"
)

// Dimensions of the decoder matrix.
const (
	Inputs  = 21
	Outputs = 130
)

//go:embed 6502.pla
var matrix []byte

// Lines is the output of the decoder.
type Lines [Outputs]logic.Signal

// Decoder wraps a PLA with the dimensions of the 6502 decoder.
type Decoder struct {
	pla *pla.PLA
}

// New creates a decoder from a matrix resource. The matrix must have exactly
// the dimensions of the 6502 decoder.
func New(r io.Reader) (*Decoder, error) {
	p, err := pla.Parse(r)
	if err != nil {
		return nil, err
	}
	if p.Inputs() != Inputs || p.Rows() != Outputs {
		return nil, curatedDimensions(p)
	}
	return &Decoder{pla: p}, nil
}

var (
	shared     *Decoder
	sharedOnce sync.Once
)

// Default returns the decoder built from the embedded matrix. The embedded
// matrix is reference data so failure to parse it is fatal.
func Default() *Decoder {
	sharedOnce.Do(func() {
		var err error
		shared, err = New(bytes.NewReader(matrix))
		if err != nil {
			panic(err)
		}
		logger.Logf(logger.Allow, "decoder", "%d lines from embedded matrix", Outputs)
	})
	return shared
}

// Decode the packed input word into the output lines.
func (dec *Decoder) Decode(input uint64, out *Lines) {
	dec.pla.Decode(input, out[:])
}

// Row returns the matrix row for the output line.
func (dec *Decoder) Row(line int) string {
	return dec.pla.Row(line)
}

// Pack the instruction register and the timing lines into the decoder input
// word. The timing lines are active low.
func Pack(ir uint8, nT0, nT1X, nT2, nT3, nT4, nT5 logic.Signal) uint64 {
	bit := func(v uint8, n int) uint64 {
		return uint64(v>>n) & 0x01
	}

	var in uint64
	in |= uint64(nT1X.Bit()) << 0
	in |= uint64(nT0.Bit()) << 1
	in |= (bit(ir, 5) ^ 1) << 2
	in |= bit(ir, 5) << 3
	in |= (bit(ir, 6) ^ 1) << 4
	in |= bit(ir, 6) << 5
	in |= (bit(ir, 2) ^ 1) << 6
	in |= bit(ir, 2) << 7
	in |= (bit(ir, 3) ^ 1) << 8
	in |= bit(ir, 3) << 9
	in |= (bit(ir, 4) ^ 1) << 10
	in |= bit(ir, 4) << 11
	in |= (bit(ir, 7) ^ 1) << 12
	in |= bit(ir, 7) << 13
	in |= (bit(ir, 0) ^ 1) << 14
	in |= (bit(ir, 0) | bit(ir, 1)) << 15
	in |= (bit(ir, 1) ^ 1) << 16
	in |= uint64(nT2.Bit()) << 17
	in |= uint64(nT3.Bit()) << 18
	in |= uint64(nT4.Bit()) << 19
	in |= uint64(nT5.Bit()) << 20
	return in
}
