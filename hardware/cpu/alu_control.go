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

import (
	"github.com/famisim/famisim/hardware/cpu/decoder"
	"github.com/famisim/famisim/hardware/logic"
)

// aluControl produces the commands for the ALU: the carry input, decimal
// correction, operand selection, the operation and the destination of the
// result.
type aluControl struct {
	bundle

	// values computed during PHI2 and used until the next PHI2
	stkop   logic.Signal
	nadladd logic.Signal
	incsb   logic.Signal
	brx     logic.Signal
	naddsb7 logic.Signal

	nreadyLatch logic.Latch

	// carry and decimal correction
	acinLatch1 logic.Latch
	acinLatch2 logic.Latch
	acinLatch3 logic.Latch
	acinLatch4 logic.Latch
	acinLatch5 logic.Latch
	daaLatch1  logic.Latch
	daaLatch2  logic.Latch
	dsaLatch1  logic.Latch
	dsaLatch2  logic.Latch

	// operands
	ndbaddLatch logic.Latch
	dbaddLatch  logic.Latch
	zaddLatch   logic.Latch
	sbaddLatch  logic.Latch
	adladdLatch logic.Latch

	// operation
	andsLatch1 logic.Latch
	andsLatch2 logic.Latch
	eorsLatch1 logic.Latch
	eorsLatch2 logic.Latch
	orsLatch1  logic.Latch
	orsLatch2  logic.Latch
	srsLatch1  logic.Latch
	srsLatch2  logic.Latch
	sumsLatch1 logic.Latch
	sumsLatch2 logic.Latch

	// shift right carry into bit 7. the carry is held across the half-cycle
	// boundary by the ff latches
	coutLatch logic.Latch
	muxLatch1 logic.Latch
	srLatch1  logic.Latch
	srLatch2  logic.Latch
	ffLatch1  logic.Latch
	ffLatch2  logic.Latch

	// result
	addsb06Latch logic.Latch
	addsb7Latch  logic.Latch
	addadlLatch  logic.Latch
}

func (ac *aluControl) sim(table []uint8, key uint32, ncout, ndout, brfw, t1 logic.Signal) {
	d := ac.d
	phi1 := ac.w.PHI1
	phi2 := ac.w.PHI2
	rmwt6 := ac.w.RMWT6

	ac.nreadyLatch.Set(ac.w.NotReady, phi1)

	if phi2 == logic.One {
		ac.stkop = nor(ac.nreadyLatch.Get(), norN(d[21], d[22], d[23], d[24], d[25], d[26]))
	}

	ac.simCarryBCD(table, key, ncout, ndout, brfw)
	ac.simInput()
	ac.simOps()

	sr := not(nor(d[75], and(d[76], rmwt6)))
	nror := not(d[decoder.ROR])
	ac.coutLatch.Set(not(ncout), phi2)
	ac.muxLatch1.Set(nor(ac.nreadyLatch.Get(), not(sr)), phi2)
	ac.srLatch1.Set(sr, phi2)
	ac.srLatch2.Set(ac.srLatch1.NGet(), phi1)
	ac.ffLatch1.Set(not(mux(ac.muxLatch1.Get(), ac.ffLatch2.Get(), ac.coutLatch.NGet())), phi1)
	ac.ffLatch2.Set(ac.ffLatch1.NGet(), phi2)
	ac.naddsb7 = norN(ac.ffLatch1.NGet(), ac.srLatch2.Get(), nror)

	ac.simOutput(t1)

	if phi2 == logic.One {
		ac.cmd.NDBADD = logic.Zero
		ac.cmd.DBADD = logic.Zero
		ac.cmd.ZADD = logic.Zero
		ac.cmd.SBADD = logic.Zero
		ac.cmd.ADLADD = logic.Zero
	} else {
		ac.cmd.NDBADD = not(ac.ndbaddLatch.Get())
		ac.cmd.DBADD = not(ac.dbaddLatch.Get())
		ac.cmd.ZADD = not(ac.zaddLatch.Get())
		ac.cmd.SBADD = not(ac.sbaddLatch.Get())
		ac.cmd.ADLADD = not(ac.adladdLatch.Get())
	}

	// ADD_SB7 is the direct output of its latch, unlike every other command
	ac.cmd.ADDSB7 = ac.addsb7Latch.Get()
	ac.cmd.ADDSB06 = ac.addsb06Latch.NGet()
	ac.cmd.ADDADL = ac.addadlLatch.NGet()

	ac.cmd.ANDS = ac.andsLatch2.NGet()
	ac.cmd.EORS = ac.eorsLatch2.NGet()
	ac.cmd.ORS = ac.orsLatch2.NGet()
	ac.cmd.SRS = ac.srsLatch2.NGet()
	ac.cmd.SUMS = ac.sumsLatch2.NGet()

	ac.cmd.NotACIN = not(ac.acinLatch5.NGet())
	ac.cmd.NotDAA = ac.daaLatch2.NGet()
	ac.cmd.NotDSA = ac.dsaLatch2.NGet()
}

func (ac *aluControl) simCarryBCD(table []uint8, key uint32, ncout, ndout, brfw logic.Signal) {
	phi1 := ac.w.PHI1
	phi2 := ac.w.PHI2
	sbc0 := ac.d[decoder.SBC0]

	if phi2 == logic.One {
		key |= uint32(ac.w.NotReady.Bit())<<14 |
			uint32(ac.w.T0.Bit())<<15 |
			uint32(ac.w.RMWT6.Bit())<<16 |
			uint32(brfw.Bit())<<17 |
			uint32(ncout.Bit())<<18
		v := table[key]

		ac.acinLatch1.Set(sig(v&aluNotADLADDDerived != 0), phi2)
		ac.acinLatch2.Set(sig(v&aluINCSB != 0), phi2)
		ac.acinLatch3.Set(sig(v&aluBRX != 0), phi2)
		ac.acinLatch4.Set(sig(v&aluCSET != 0), phi2)

		ac.nadladd = sig(v&aluNotADLADD != 0)
		ac.incsb = sig(v&aluINCSB != 0)
		ac.brx = sig(v&aluBRX != 0)
	} else {
		ac.acinLatch5.Set(norN(ac.acinLatch1.Get(), ac.acinLatch2.Get(), ac.acinLatch3.Get(), ac.acinLatch4.Get()), phi1)
	}

	dout := not(ndout)
	ac.daaLatch1.Set(not(nor(nand(ac.d[52], dout), sbc0)), phi2)
	ac.daaLatch2.Set(ac.daaLatch1.NGet(), phi1)
	ac.dsaLatch1.Set(nand(sbc0, dout), phi2)
	ac.dsaLatch2.Set(ac.dsaLatch1.NGet(), phi1)
}

func (ac *aluControl) simInput() {
	d := ac.d
	phi2 := ac.w.PHI2
	nready := ac.w.NotReady

	if phi2 != logic.One {
		return
	}

	nndbadd := nand(orN(ac.brx, d[decoder.JSR5], d[decoder.SBC0]), not(nready))
	ac.ndbaddLatch.Set(nndbadd, phi2)
	ac.dbaddLatch.Set(nand(nndbadd, ac.nadladd), phi2)
	ac.adladdLatch.Set(ac.nadladd, phi2)

	sbadd := norN(ac.stkop, d[30], d[31], d[45], d[decoder.JSR2], ac.incsb, d[decoder.RET], ac.w.BRK6E, nready)
	ac.sbaddLatch.Set(not(sbadd), phi2)
	ac.zaddLatch.Set(sbadd, phi2)
}

func (ac *aluControl) simOps() {
	d := ac.d
	phi1 := ac.w.PHI1
	phi2 := ac.w.PHI2

	eor := d[decoder.EOR]
	orOp := not(nor(d[decoder.OR], ac.w.NotReady))
	andOp := not(nor(d[69], d[70]))
	sr := not(nor(d[75], and(d[76], ac.w.RMWT6)))

	if phi2 == logic.One {
		ac.andsLatch1.Set(andOp, phi2)
		ac.eorsLatch1.Set(eor, phi2)
		ac.orsLatch1.Set(orOp, phi2)
		ac.srsLatch1.Set(sr, phi2)
		ac.sumsLatch1.Set(norN(andOp, eor, orOp, sr), phi2)
	} else {
		ac.andsLatch2.Set(ac.andsLatch1.NGet(), phi1)
		ac.eorsLatch2.Set(ac.eorsLatch1.NGet(), phi1)
		ac.orsLatch2.Set(ac.orsLatch1.NGet(), phi1)
		ac.srsLatch2.Set(ac.srsLatch1.NGet(), phi1)
		ac.sumsLatch2.Set(ac.sumsLatch1.NGet(), phi1)
	}
}

func (ac *aluControl) simOutput(t1 logic.Signal) {
	d := ac.d
	phi2 := ac.w.PHI2

	if phi2 != logic.One {
		return
	}

	pg := pgx(d, ac.w.NotPRDY)

	naddsb06 := norN(ac.w.RMWT7, ac.stkop, d[decoder.JSR5], t1, pg)
	ac.addsb06Latch.Set(naddsb06, phi2)
	ac.addsb7Latch.Set(nor(naddsb06, ac.naddsb7), phi2)

	noadl := norN(d[decoder.RTS5], d[85], d[86], d[87], d[88], d[89], d[decoder.RTI5])
	ac.addadlLatch.Set(not(nor(noadl, pg)), phi2)
}

// pgx is the page crossing term shared by the ALU and bus control.
func pgx(d *decoder.Lines, nprdy logic.Signal) logic.Signal {
	br0 := and(d[decoder.BR0], not(nprdy))
	return nand(nor(d[71], d[72]), not(br0))
}
