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

package cpu

import "github.com/famisim/famisim/hardware/logic"

// shorthand for the gates used by the random logic.

func not(a logic.Signal) logic.Signal {
	return logic.Not(a)
}

func and(a, b logic.Signal) logic.Signal {
	return logic.And(a, b)
}

func or(a, b logic.Signal) logic.Signal {
	return logic.Or(a, b)
}

func nand(a, b logic.Signal) logic.Signal {
	return logic.Nand(a, b)
}

func nor(a, b logic.Signal) logic.Signal {
	return logic.Nor(a, b)
}

func xor(a, b logic.Signal) logic.Signal {
	return logic.Xor(a, b)
}

func mux(sel, in0, in1 logic.Signal) logic.Signal {
	return logic.Mux(sel, in0, in1)
}

func norN(in ...logic.Signal) logic.Signal {
	return logic.NorN(in...)
}

func orN(in ...logic.Signal) logic.Signal {
	return logic.OrN(in...)
}

// bit returns bit n of v as a signal.
func bit(v uint8, n int) logic.Signal {
	return logic.Signal((v >> n) & 0x01)
}

// sig converts a boolean to a signal.
func sig(b bool) logic.Signal {
	return logic.FromBool(b)
}
