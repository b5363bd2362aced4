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

package easyterm

import (
	"fmt"
	"io"

	"github.com/pkg/term"

	"github.com/famisim/famisim/curated"
)

// Error is the pattern for all errors raised by the package.
const Error = "easyterm: %v"

// Terminal is an input terminal in cbreak mode and an output writer.
type Terminal struct {
	input  *term.Term
	output io.Writer

	// bytes read but not yet decoded
	pending []byte
}

// Open the terminal device for input and put it into cbreak mode. Output is
// written to the writer.
func Open(device string, output io.Writer) (*Terminal, error) {
	if output == nil {
		return nil, curated.Errorf(Error, "an output writer is required")
	}

	t, err := term.Open(device)
	if err != nil {
		return nil, curated.Errorf(Error, err)
	}

	et := &Terminal{
		input:  t,
		output: output,
	}

	if err := et.CBreakMode(); err != nil {
		_ = t.Close()
		return nil, err
	}

	return et, nil
}

// Close restores the terminal to the mode it was in when opened.
func (et *Terminal) Close() error {
	if err := et.input.Restore(); err != nil {
		_ = et.input.Close()
		return curated.Errorf(Error, err)
	}
	if err := et.input.Close(); err != nil {
		return curated.Errorf(Error, err)
	}
	return nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (et *Terminal) CanonicalMode() error {
	if err := et.input.Restore(); err != nil {
		return curated.Errorf(Error, err)
	}
	return nil
}

// RawMode puts terminal into raw mode.
func (et *Terminal) RawMode() error {
	if err := et.input.SetRaw(); err != nil {
		return curated.Errorf(Error, err)
	}
	return nil
}

// CBreakMode puts terminal into cbreak mode.
func (et *Terminal) CBreakMode() error {
	if err := et.input.SetCbreak(); err != nil {
		return curated.Errorf(Error, err)
	}
	return nil
}

// Flush discards any unread input.
func (et *Terminal) Flush() error {
	et.pending = et.pending[:0]
	if err := et.input.Flush(); err != nil {
		return curated.Errorf(Error, err)
	}
	return nil
}

// ReadKey blocks until a key is pressed.
func (et *Terminal) ReadKey() (Key, error) {
	if len(et.pending) == 0 {
		buf := make([]byte, 8)
		n, err := et.input.Read(buf)
		if err != nil {
			return KeyUnknown, curated.Errorf(Error, err)
		}
		et.pending = append(et.pending, buf[:n]...)
	}

	k, n := DecodeKey(et.pending)
	et.pending = et.pending[n:]
	return k, nil
}

// Print writes the formatted string to the output.
func (et *Terminal) Print(s string, a ...any) {
	fmt.Fprintf(et.output, s, a...)
}
