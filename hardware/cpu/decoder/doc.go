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

// Package decoder is the opcode decoder of the 6502. The decoder is a PLA of
// 130 rows over 21 inputs. The inputs are the instruction register bits (and
// their complements) together with the timing lines from the dispatcher.
//
// The matrix is embedded in the binary from the 6502.pla resource. The
// resource is reference data and is never altered or approximated at run
// time. The matrix is parsed once, on first use of Default(), and the
// resulting Decoder is shared by every CPU in the process.
//
// Output lines are referred to by number. The lines that the random logic of
// the CPU uses by name have constants in this package.
package decoder
