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

// Bus is an 8-bit bus register shared by several drivers. The first driver in
// a half-cycle overwrites the value and marks the bus as dirty. Every
// subsequent driver in the same half-cycle is combined with the existing value
// by a bitwise AND, which is how the NMOS bus lines resolve a conflict.
//
// The Clean() function must be called at the beginning of every half-cycle.
type Bus struct {
	Value uint8
	Dirty bool
}

// Write a value to the bus.
func (b *Bus) Write(v uint8) {
	if b.Dirty {
		b.Value &= v
	} else {
		b.Value = v
		b.Dirty = true
	}
}

// Precharge the bus so that every line is high.
func (b *Bus) Precharge() {
	b.Value = 0xff
}

// Clean resets the dirty flag. The value is unchanged.
func (b *Bus) Clean() {
	b.Dirty = false
}

// Ground pulls the lines selected by mask low. The dirty flag is not changed.
// This is how the constant generators of the address bus work.
func (b *Bus) Ground(mask uint8) {
	b.Value &^= mask
}

// Bit returns the value of the bus line as a Signal.
func (b *Bus) Bit(n int) Signal {
	return Signal((b.Value >> n) & 0x01)
}
