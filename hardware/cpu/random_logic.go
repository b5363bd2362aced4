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

import "github.com/famisim/famisim/hardware/cpu/decoder"

// bundle is the set of handles shared by the generators of the random logic.
type bundle struct {
	w   *Wires
	cmd *Commands
	d   *decoder.Lines
}

// randomLogic produces the commands for the execution units. it is made of
// six generators and the flags.
type randomLogic struct {
	bundle

	ir     *instructionRegister
	disp   *dispatcher
	tables *tables

	regsControl  regsControl
	aluControl   aluControl
	pcControl    pcControl
	busControl   busControl
	flagsControl flagsControl
	branchLogic  branchLogic
	flags        flags
}

func (rl *randomLogic) sim() {
	// opcode and timing lines in the low bits of the table keys
	key := uint32(rl.ir.out) | uint32(txBits(rl.w))<<8

	rl.regsControl.sim(rl.tables.regs, key)
	rl.aluControl.sim(rl.tables.alu, key, rl.flags.notC(), rl.flags.notD(), rl.branchLogic.brfw(), rl.disp.t1())
	rl.pcControl.sim(rl.disp.t1())
	rl.busControl.sim(rl.ir.out, rl.disp.t1())
	rl.flagsControl.sim(rl.tables.flags, key)
	rl.branchLogic.sim(&rl.flags)
}
