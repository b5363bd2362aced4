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

// Package pla implements the programmable logic array used by the decoders
// of the simulated chips. A PLA is a matrix of rows over a packed input
// word. Each row selects a subset of the input bits and the output for that
// row is the NOR of the selected bits.
//
// The matrix is read from a text resource with Parse(). The resource starts
// with a dimensions line and then lists one row per line:
//
//	# comment
//	dimensions 4 2
//	1000
//	0110
//
// Character k of a row selects input bit k. Once created a PLA is never
// changed and can be shared by any number of chip instances.
package pla
