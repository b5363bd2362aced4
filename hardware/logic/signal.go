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

package logic

// Signal is a four-valued logic level.
type Signal uint8

// List of valid Signal values. Zero and One are the only values that can
// take part in arithmetic. Values above One are never definite.
const (
	Zero Signal = iota
	One
	Floating
	Undefined
)

func (s Signal) String() string {
	switch s {
	case Zero:
		return "0"
	case One:
		return "1"
	case Floating:
		return "z"
	}
	return "x"
}

// Definite returns true if the signal is Zero or One.
func (s Signal) Definite() bool {
	return s <= One
}

// Bool returns true only if the signal is One.
func (s Signal) Bool() bool {
	return s == One
}

// Bit returns 1 if the signal is One and 0 otherwise.
func (s Signal) Bit() uint8 {
	if s == One {
		return 1
	}
	return 0
}

// FromBool converts a boolean to Zero or One.
func FromBool(b bool) Signal {
	if b {
		return One
	}
	return Zero
}

// FromBit converts the least significant bit of v to Zero or One.
func FromBit(v uint8) Signal {
	return Signal(v & 0x01)
}

// Pack the signals into a byte, with sig[0] in bit 0. Any signal that is not
// One is packed as a zero bit.
func Pack(sig [8]Signal) uint8 {
	var v uint8
	for i := 7; i >= 0; i-- {
		v <<= 1
		v |= sig[i].Bit()
	}
	return v
}

// Unpack a byte into eight signals, with bit 0 in sig[0].
func Unpack(v uint8) [8]Signal {
	var sig [8]Signal
	for i := range sig {
		sig[i] = Signal((v >> i) & 0x01)
	}
	return sig
}
