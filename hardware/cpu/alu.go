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

// alu is the arithmetic and logic unit, its two input latches (AI and BI),
// the result latch (ADD) and the accumulator (AC). the result latch holds the
// complement of the result.
//
// the computation happens during PHI2. during PHI1 the previous result, after
// decimal correction, can be moved into the accumulator while new operands
// are loaded.
type alu struct {
	w     *Wires
	cmd   *Commands
	buses *Buses

	// decimal correction circuitry is not simulated and the n_DAA and n_DSA
	// commands are ignored
	decimalDisabled bool

	// the integer form of the ALU. only used when decimalDisabled is also true
	accelerated bool

	ai   uint8
	bi   uint8
	nADD uint8
	ac   uint8

	dcLatch  logic.Latch
	acLatch  logic.Latch
	avrLatch logic.Latch

	daalLatch logic.Latch
	daahLatch logic.Latch
	dsalLatch logic.Latch
	dsahLatch logic.Latch
}

// busMux joins SB to DB and to ADH. a bus that has not been written to takes
// the value of the other, two written buses resolve as a wired-AND.
func (a *alu) busMux() {
	if a.cmd.SBDB == logic.One {
		joinBuses(&a.buses.SB, &a.buses.DB)
	}
	if a.cmd.SBADH == logic.One {
		joinBuses(&a.buses.SB, &a.buses.ADH)
	}
}

func joinBuses(p, q *logic.Bus) {
	switch {
	case p.Dirty && !q.Dirty:
		q.Value = p.Value
		q.Dirty = true
	case !p.Dirty && q.Dirty:
		p.Value = q.Value
		p.Dirty = true
	case p.Dirty && q.Dirty:
		v := p.Value & q.Value
		p.Value = v
		q.Value = v
	}
}

func (a *alu) load() {
	sb := &a.buses.SB

	// only seen after power up
	if a.cmd.SBADD == logic.One && a.cmd.ZADD == logic.One {
		sb.Value = 0
		sb.Dirty = true
	}

	if a.cmd.SBADD == logic.One {
		a.ai = sb.Value
	}
	if a.cmd.ZADD == logic.One {
		a.ai = 0
	}
	if a.cmd.DBADD == logic.One {
		a.bi = a.buses.DB.Value
	}
	if a.cmd.NDBADD == logic.One {
		a.bi = ^a.buses.DB.Value
	}
	if a.cmd.ADLADD == logic.One {
		a.bi = a.buses.ADL.Value
	}
}

func (a *alu) storeADD() {
	if a.cmd.ADDADL == logic.One {
		a.buses.ADL.Write(^a.nADD)
	}

	sb := &a.buses.SB
	if a.cmd.ADDSB06 == logic.One {
		sb.Value &= 0x80
		sb.Value |= ^a.nADD & 0x7f
		sb.Dirty = true
	}
	if a.cmd.ADDSB7 == logic.One {
		sb.Value &= 0x7f
		sb.Value |= ^a.nADD & 0x80
		sb.Dirty = true
	}
}

func (a *alu) storeAC() {
	if a.cmd.ACSB == logic.One {
		a.buses.SB.Write(a.ac)
	}
	if a.cmd.ACDB == logic.One {
		a.buses.DB.Write(a.ac)
	}
}

func (a *alu) sim() {
	if a.accelerated && a.decimalDisabled {
		a.simAccelerated()
		return
	}

	if a.w.PHI2 == logic.One {
		a.compute()
		return
	}

	if a.cmd.SBAC != logic.One {
		return
	}

	if a.decimalDisabled {
		a.ac = a.buses.SB.Value
		return
	}

	a.ac = a.decimalCorrection()
}

// compute is the gate level form of the ALU. the carry chain alternates
// between active-low and active-high carries on the even and odd bits.
func (a *alu) compute() {
	ndaa := a.cmd.NotDAA
	ndsa := a.cmd.NotDSA
	if a.decimalDisabled {
		ndaa = logic.One
		ndsa = logic.One
	}

	var nands, nors, eors, sums, carry [8]logic.Signal
	for n := 0; n < 8; n++ {
		x := bit(a.ai, n)
		y := bit(a.bi, n)
		nands[n] = nand(x, y)
		nors[n] = nor(x, y)
		eors[n] = xor(x, y)
	}

	var dc7 logic.Signal

	cin := a.cmd.NotACIN
	for n := 0; n < 8; n++ {
		if n&0x01 == 1 {
			carry[n] = and(nand(cin, not(nors[n])), not(not(nands[n])))
			sums[n] = xor(not(cin), eors[n])
		} else {
			carry[n] = and(nand(cin, nands[n]), not(nors[n]))
			sums[n] = xor(not(cin), not(eors[n]))
		}

		// decimal carry out of the low nibble
		if n == 3 && !a.decimalDisabled {
			n4 := [4]logic.Signal{
				and(nand(a.cmd.NotACIN, nands[0]), not(nors[0])),
				nor(not(nands[2]), nors[2]),
				not(nands[1]),
				eors[1],
			}
			t1 := nor(nor(not(nands[2]), eors[3]), norN(n4[:]...))
			t2 := nor(nors[2], nand(not(nands[1]), n4[0]))
			dc3 := and(or(t1, t2), not(ndaa))
			carry[n] = and(carry[n], not(dc3))
		}

		cin = carry[n]
	}

	if !a.decimalDisabled {
		n4 := [4]logic.Signal{carry[4], not(nands[5]), eors[5], eors[6]}
		t1 := nor(nor(eors[7], not(nands[6])), norN(n4[:]...))
		t2 := nor(not(eors[6]), nand(not(nands[5]), carry[4]))
		dc7 = and(or(t1, t2), not(ndaa))
	}

	var nres [8]logic.Signal
	var selected bool
	for n := 0; n < 8; n++ {
		if a.cmd.ANDS == logic.One {
			nres[n] = nands[n]
			selected = true
		}
		if a.cmd.EORS == logic.One {
			nres[n] = not(eors[n])
			selected = true
		}
		if a.cmd.ORS == logic.One {
			nres[n] = nors[n]
			selected = true
		}
		if a.cmd.SRS == logic.One {
			if n < 7 {
				nres[n] = nands[n+1]
			} else {
				nres[n] = logic.One
			}
			selected = true
		}
		if a.cmd.SUMS == logic.One {
			nres[n] = sums[n]
			selected = true
		}
	}

	// with no operation selected the result latch keeps its value
	if selected {
		a.nADD = logic.Pack(nres)
	}

	phi2 := a.w.PHI2
	a.dcLatch.Set(dc7, phi2)
	a.acLatch.Set(not(carry[7]), phi2)
	a.avrLatch.Set(nor(nor(carry[6], nands[7]), and(carry[6], nors[7])), phi2)

	if !a.decimalDisabled {
		a.daalLatch.Set(nand(not(ndaa), not(carry[3])), phi2)
		a.daahLatch.Set(not(ndaa), phi2)
		a.dsalLatch.Set(nor(not(carry[3]), ndsa), phi2)
		a.dsahLatch.Set(not(ndsa), phi2)
	}
}

// decimalCorrection adjusts the value on SB according to the correction
// latches. the result is not always a valid BCD value when the operands were
// not.
func (a *alu) decimalCorrection() uint8 {
	acr := a.acr()
	daal := a.daalLatch.NGet()
	daah := nor(not(acr), a.daahLatch.NGet())
	dsal := a.dsalLatch.Get()
	dsah := nor(acr, a.dsahLatch.NGet())

	sb := a.buses.SB.Value
	nadd1 := bit(a.nADD, 1)
	nadd2 := bit(a.nADD, 2)
	nadd5 := bit(a.nADD, 5)
	nadd6 := bit(a.nADD, 6)

	var out [8]logic.Signal
	out[0] = bit(sb, 0)
	out[1] = xor(nor(dsal, daal), not(bit(sb, 1)))
	out[2] = xor(and(nand(nadd1, daal), nand(not(nadd1), dsal)), not(bit(sb, 2)))
	out[3] = xor(and(nand(not(nor(nadd1, nadd2)), dsal), nand(nand(nadd1, nadd2), daal)), not(bit(sb, 3)))
	out[4] = bit(sb, 4)
	out[5] = xor(nor(daah, dsah), not(bit(sb, 5)))
	out[6] = xor(and(nand(nadd5, daah), nand(not(nadd5), dsah)), not(bit(sb, 6)))
	out[7] = xor(and(nand(nand(nadd5, nadd6), daah), nand(not(nor(nadd5, nadd6)), dsah)), not(bit(sb, 7)))

	return logic.Pack(out)
}

// simAccelerated produces the same result, carry and overflow as the gate
// level form for every input but without decimal correction.
func (a *alu) simAccelerated() {
	if a.w.PHI2 != logic.One {
		if a.cmd.SBAC == logic.One {
			a.ac = a.buses.SB.Value
		}
		return
	}

	var cin uint16
	if a.cmd.NotACIN == logic.Zero {
		cin = 1
	}
	sum := uint16(a.ai) + uint16(a.bi) + cin

	var res uint8
	var selected bool
	if a.cmd.ANDS == logic.One {
		res = a.ai & a.bi
		selected = true
	}
	if a.cmd.EORS == logic.One {
		res = a.ai ^ a.bi
		selected = true
	}
	if a.cmd.ORS == logic.One {
		res = a.ai | a.bi
		selected = true
	}
	if a.cmd.SRS == logic.One {
		res = (a.ai & a.bi) >> 1
		selected = true
	}
	if a.cmd.SUMS == logic.One {
		res = uint8(sum)
		selected = true
	}

	if selected {
		a.nADD = ^res
	}

	phi2 := a.w.PHI2
	a.dcLatch.Set(logic.Zero, phi2)
	a.acLatch.Set(sig(sum>>8 != 0), phi2)
	a.avrLatch.Set(sig(^(a.ai^a.bi)&(a.ai^uint8(sum))&0x80 == 0), phi2)
}

// acr is the carry out of the ALU, including the decimal carry.
func (a *alu) acr() logic.Signal {
	return not(nor(a.dcLatch.Get(), a.acLatch.Get()))
}

// avr is the overflow out of the ALU.
func (a *alu) avr() logic.Signal {
	return a.avrLatch.NGet()
}
