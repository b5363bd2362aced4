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

// list of ASCII codes for non-alphanumeric characters
const (
	KeyCtrlC          = 3
	KeyTab            = 9
	KeyLineFeed       = 10
	KeyCarriageReturn = 13
	KeyEsc            = 27
	KeySpace          = 32
	KeyBackspace      = 127
)

// list of ASCII code for characters that can follow KeyEsc
const (
	EscDelete = 51
	EscCursor = 91
	EscHome   = 72
	EscEnd    = 70
)

// list of ASCII code for characters that can follow EscCursor
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
)

// Key is a single key press. Printable keys and the control codes above are
// their ASCII value. Cursor keys have values outside the ASCII range.
type Key rune

// Keys that are sent to the terminal as escape sequences.
const (
	KeyUnknown Key = -1
	KeyUp      Key = 0x10000 + iota
	KeyDown
	KeyForward
	KeyBackward
	KeyDelete
	KeyHome
	KeyEnd
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyForward:
		return "forward"
	case KeyBackward:
		return "backward"
	case KeyDelete:
		return "delete"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyCarriageReturn, KeyLineFeed:
		return "return"
	case KeySpace:
		return "space"
	case KeyEsc:
		return "esc"
	case KeyCtrlC:
		return "ctrl-c"
	case KeyUnknown:
		return "unknown"
	}
	return string(rune(k))
}

// DecodeKey returns the key at the start of b and the number of bytes used.
// An empty slice returns KeyUnknown and zero.
func DecodeKey(b []byte) (Key, int) {
	if len(b) == 0 {
		return KeyUnknown, 0
	}

	if b[0] != KeyEsc || len(b) == 1 {
		return Key(b[0]), 1
	}

	if b[1] != EscCursor || len(b) == 2 {
		return KeyEsc, 1
	}

	switch b[2] {
	case CursorUp:
		return KeyUp, 3
	case CursorDown:
		return KeyDown, 3
	case CursorForward:
		return KeyForward, 3
	case CursorBackward:
		return KeyBackward, 3
	case EscHome:
		return KeyHome, 3
	case EscEnd:
		return KeyEnd, 3
	case EscDelete:
		// delete is sent as ESC [ 3 ~
		if len(b) > 3 && b[3] == '~' {
			return KeyDelete, 4
		}
		return KeyDelete, 3
	}

	return KeyUnknown, 3
}
