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

// Not returns the complement of a definite signal. Floating and Undefined
// inputs produce Undefined.
func Not(a Signal) Signal {
	if a <= One {
		return a ^ One
	}
	return Undefined
}

// And returns One if both inputs are One. A Zero input decides the output
// regardless of the other input.
func And(a, b Signal) Signal {
	if a == Zero || b == Zero {
		return Zero
	}
	if a == One && b == One {
		return One
	}
	return Undefined
}

// Or returns One if either input is One. A One input decides the output
// regardless of the other input.
func Or(a, b Signal) Signal {
	if a == One || b == One {
		return One
	}
	if a == Zero && b == Zero {
		return Zero
	}
	return Undefined
}

// Nand is the complement of And.
func Nand(a, b Signal) Signal {
	return Not(And(a, b))
}

// Nor is the complement of Or.
func Nor(a, b Signal) Signal {
	return Not(Or(a, b))
}

// Xor returns One if exactly one input is One. Both inputs must be definite.
func Xor(a, b Signal) Signal {
	if a <= One && b <= One {
		return a ^ b
	}
	return Undefined
}

// Mux returns in0 when sel is Zero and in1 when sel is One. Any other value
// of sel produces Undefined.
func Mux(sel, in0, in1 Signal) Signal {
	switch sel {
	case Zero:
		return in0
	case One:
		return in1
	}
	return Undefined
}

// AndN is the n-input form of And.
func AndN(in ...Signal) Signal {
	r := One
	for _, s := range in {
		if s == Zero {
			return Zero
		}
		if s != One {
			r = Undefined
		}
	}
	return r
}

// OrN is the n-input form of Or.
func OrN(in ...Signal) Signal {
	r := Zero
	for _, s := range in {
		if s == One {
			return One
		}
		if s != Zero {
			r = Undefined
		}
	}
	return r
}

// NandN is the n-input form of Nand.
func NandN(in ...Signal) Signal {
	return Not(AndN(in...))
}

// NorN is the n-input form of Nor. Most of the CPU's random logic is built
// from NOR gates of between three and nine inputs.
func NorN(in ...Signal) Signal {
	return Not(OrN(in...))
}
