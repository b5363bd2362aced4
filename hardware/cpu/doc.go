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

// Package cpu simulates the 6502 microprocessor at the level of its latches,
// buses and control lines. The simulation is advanced one half-cycle at a
// time and the behaviour of the pins is the behaviour of the real chip,
// including the timing of every memory access.
//
// The core is divided in two, as the chip itself is. The top part contains
// the dispatcher, the instruction register, the decoder and the random logic.
// The random logic produces a set of commands for the bottom part, which
// contains the registers, the ALU and the program counter, and which moves
// values between the internal buses under the direction of those commands.
//
// The internal buses are precharged during PHI2. Any unit that drives a bus
// pulls bits to ground and so when two units drive the same bus in the same
// half-cycle the result is the wired-AND of the two values.
//
// A core is created with NewCore() and clocked by alternating the PHI0 input
// pad.
//
//	c := cpu.NewCore(cpu.Config{})
//
//	in := cpu.InputPads{
//		NotNMI: logic.One,
//		NotIRQ: logic.One,
//		NotRES: logic.Zero,
//		RDY:    logic.One,
//	}
//
//	var addr uint16
//	var data uint8
//
//	for {
//		in.PHI0 = logic.Not(in.PHI0)
//		out := c.Step(in, &addr, &data)
//		if out.RnW == logic.One {
//			data = memory[addr]
//		} else {
//			memory[addr] = data
//		}
//	}
//
// The bench package provides a test harness of exactly this kind.
//
// Parts of the random logic depend only on the opcode, the timing lines and a
// small number of other signals. These parts are computed once for every
// combination and shared by all cores.
//
// The Config type allows some of the bit level circuits to be replaced with
// faster integer forms that produce the same results.
package cpu
