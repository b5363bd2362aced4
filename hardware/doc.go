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

// Package hardware is the base package for the simulation. Its sub-packages
// contain everything required to run the 6502 core without a front end.
//
// The logic package is the signal algebra used throughout. The pla package
// holds the decode matrix and the cpu package is the core itself. The core is
// stepped one half-cycle at a time and does not know about memory. The bench
// package connects the core to a flat RAM and drives the clock and the input
// pads. The preferences package selects the configuration of the core.
package hardware
