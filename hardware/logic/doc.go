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

// Package logic is the substrate for the gate-level simulation. It defines
// the four-valued Signal type and the operators that combine signals, the
// Latch and flip-flop storage primitives, and the Bus type which resolves
// multiple drivers with the wired-AND convention.
//
// The operators follow the propagation rules of real gates. A Floating or
// Undefined operand makes the output Undefined unless another operand
// decides the output on its own. For example, And() with a Zero operand is
// always Zero and Or() with a One operand is always One. Mux() with a
// select that is not Zero or One is a modelling error and the output is
// Undefined.
//
// Latches are transparent while their gate is One and hold their value
// otherwise. They start life holding Zero so that a newly created circuit is
// in a known state.
//
// Nothing in this package allocates once a value has been created.
package logic
