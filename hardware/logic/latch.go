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

// Latch is a level-sensitive storage cell. It is transparent while the gate
// is One and holds its value otherwise. A gate that is Floating or Undefined
// holds.
//
// The zero value is a latch holding Zero.
type Latch struct {
	value Signal
}

// Set the value of the latch, if the gate is One.
func (l *Latch) Set(value, gate Signal) {
	if gate == One {
		l.value = value
	}
}

// Get the value of the latch.
func (l *Latch) Get() Signal {
	return l.value
}

// NGet returns the complement of the latch value.
func (l *Latch) NGet() Signal {
	return Not(l.value)
}

// FF is a storage bit that is set and read without a gate. It is used for the
// static flip-flops of the CPU, where the surrounding logic decides when the
// value changes.
type FF struct {
	value Signal
}

// Set the value of the flip-flop.
func (ff *FF) Set(value Signal) {
	ff.value = value
}

// Get the value of the flip-flop.
func (ff *FF) Get() Signal {
	return ff.value
}

// FlipFlop is an edge-stable bit made from two latches. The value captured in
// one phase is only presented after Hold() is called in the complementary
// phase. Combinational logic that reads Get() can therefore feed Capture()
// without creating a loop that settles within a single phase.
type FlipFlop struct {
	capture Latch
	hold    Latch
}

// Capture the value into the first stage, if the gate is One.
func (ff *FlipFlop) Capture(value, gate Signal) {
	ff.capture.Set(value, gate)
}

// Hold transfers the captured value to the output stage, if the gate is One.
func (ff *FlipFlop) Hold(gate Signal) {
	ff.hold.Set(ff.capture.Get(), gate)
}

// Get the presented value.
func (ff *FlipFlop) Get() Signal {
	return ff.hold.Get()
}

// Captured returns the value held by the first stage.
func (ff *FlipFlop) Captured() Signal {
	return ff.capture.Get()
}
