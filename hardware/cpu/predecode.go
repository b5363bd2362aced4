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

// the predecode tables depend only on the predecode byte.
var (
	predecodeTwoCycle [256]logic.Signal
	predecodeImplied  [256]logic.Signal
)

func init() {
	for i := range predecodeTwoCycle {
		pd := uint8(i)
		pd0 := bit(pd, 0)
		pd1 := bit(pd, 1)
		pd2 := bit(pd, 2)
		pd3 := bit(pd, 3)
		pd4 := bit(pd, 4)
		pd7 := bit(pd, 7)

		implied := norN(pd0, pd2, not(pd3))
		res2 := norN(pd1, pd4, pd7)
		res3 := norN(not(pd0), pd2, not(pd3), pd4)
		res4 := norN(pd0, pd2, pd3, pd4, not(pd7))

		predecodeTwoCycle[i] = and(nand(implied, not(res2)), nor(res3, res4))
		predecodeImplied[i] = not(implied)
	}
}

// predecode sits between the data bus and the instruction register. it
// classifies the incoming opcode as implied and/or two-cycle.
type predecode struct {
	w *Wires

	latch uint8

	// PD is the opcode as seen by the instruction register. it is forced to
	// zero (the BRK opcode) by the Z_IR wire
	pd  uint8
	npd uint8
}

func (p *predecode) sim(data uint8) {
	if p.w.PHI2 != logic.One {
		p.resolve()
		return
	}

	p.latch = ^data
	p.resolve()

	p.w.NotTwoCycle = predecodeTwoCycle[p.pd]
	p.w.NotImplied = predecodeImplied[p.pd]
}

func (p *predecode) resolve() {
	if p.w.ZIR == logic.One {
		p.pd = 0
	} else {
		p.pd = ^p.latch
	}
	p.npd = ^p.pd
}

// instructionRegister captures the opcode during PHI1 of the fetch cycle.
type instructionRegister struct {
	w  *Wires
	pd *predecode

	latch uint8
	out   uint8
}

func (ir *instructionRegister) sim() {
	if ir.w.PHI1 == logic.One && ir.w.FETCH == logic.One {
		ir.latch = ir.pd.npd
		ir.out = ^ir.latch
	}
}
