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

// Output lines referred to by name. Lines without a name are referred to by
// their number.
const (
	STY    = 0
	STX    = 12
	TXS    = 13
	BRK5   = 22
	RTI5   = 26
	ROR    = 27
	OpT2   = 28
	EOR    = 29
	OR     = 32
	STK2   = 35
	RET    = 47
	JSR2   = 48
	SBC0   = 51
	JSR5   = 56
	BR0    = 73
	BR2    = 80
	ABS2   = 83
	RTS5   = 84
	BR3    = 93
	STORE  = 97
	JMP4   = 101
	IR5I   = 108
	IR5C   = 110
	AVRV   = 112
	IR5D   = 120
	NotIR6 = 121
	NotIR7 = 126
	CLV    = 127
	IMPL   = 128
	PP     = 129
)
