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

// busControl produces the commands that connect the internal buses to each
// other, to the accumulator and to the external buses.
type busControl struct {
	bundle

	// set inside the PHI2 block and so it keeps its power-up value
	nreadyLatch logic.Latch

	adlABLLatch logic.Latch
	adhABHLatch logic.Latch
	sbACLatch   logic.Latch
	acSBLatch   logic.Latch
	acDBLatch   logic.Latch
	zADH0Latch  logic.Latch
	zADH17Latch logic.Latch
	sbDBLatch   logic.Latch
	sbADHLatch  logic.Latch
	dlADHLatch  logic.Latch
	dlADLLatch  logic.Latch
	dlDBLatch   logic.Latch
}

func (bc *busControl) sim(ir uint8, t1 logic.Signal) {
	d := bc.d
	phi2 := bc.w.PHI2

	if phi2 == logic.One {
		phi1 := bc.w.PHI1
		nready := bc.w.NotReady
		t0 := bc.w.T0
		rmwt6 := bc.w.RMWT6
		rmwt7 := bc.w.RMWT7

		andOp := not(nor(d[69], d[70]))
		nsbx := norN(d[14], d[15], d[16])
		nsby := norN(d[18], d[19], d[20])
		nsbxy := nand(nsbx, nsby)
		pg := pgx(d, bc.w.NotPRDY)

		st := stor(d)
		stxy := nor(and(st, d[decoder.STY]), and(st, d[decoder.STX]))

		jb := norN(d[94], d[95], d[96])
		dlpch := nor(not(t0), jb)

		incsb := not(norN(d[39], d[40], d[41], d[42], d[43], and(rmwt6, d[44])))

		ndladl := nor(d[81], d[82])
		rts5 := d[decoder.RTS5]
		br2 := d[decoder.BR2]
		br3 := d[decoder.BR3]
		pp := d[decoder.PP]
		jsxy := nand(not(d[decoder.JSR2]), stxy)

		ind := not(norN(d[89], and(d[90], not(pp)), d[91], rts5))

		implied := and(and(d[decoder.IMPL], not(pp)), not(bit(ir, 0)))
		abs2 := and(d[decoder.ABS2], not(pp))
		impAbs := nor(nor(abs2, t0), implied)

		nadhpch := norN(rts5, abs2, t0, t1, br2, br3)
		npchpch := not(nadhpch)

		bc.nreadyLatch.Set(nready, phi1)
		nsbadh := nor(pg, br3)
		sba := nor(nsbadh, nand(bc.w.ACRL2, bc.nreadyLatch.NGet()))

		// external address bus
		bc.adlABLLatch.Set(nand(nor(rmwt6, rmwt7), nor(not(nor(d[71], d[72])), nready)), phi2)

		n1 := norN(ind, d[decoder.OpT2], npchpch, d[decoder.JSR5])
		bc.adhABHLatch.Set(nor(bc.cmd.ZADL0, and(or(sba, nor(nready, n1)), not(br3))), phi2)

		// accumulator
		nsbac := norN(d[58], d[59], d[60], d[61], d[62], d[63], d[64])
		bc.sbACLatch.Set(nsbac, phi2)
		bc.acSBLatch.Set(norN(and(not(d[64]), d[65]), d[66], d[67], d[68], andOp), phi2)
		bc.acDBLatch.Set(nor(d[74], and(d[79], st)), phi2)

		// internal buses
		bc.zADH0Latch.Set(ndladl, phi2)
		bc.zADH17Latch.Set(nor(d[57], not(ndladl)), phi2)

		nztst := norN(nsbxy, not(nsbac), rmwt7, andOp)
		bc.sbDBLatch.Set(norN(not(nand(rmwt6, d[55])), nor(nztst, andOp), d[67], t1, br2, jsxy), phi2)
		bc.sbADHLatch.Set(nsbadh, phi2)

		// external data bus
		bc.dlADHLatch.Set(nor(dlpch, ind), phi2)
		bc.dlADLLatch.Set(ndladl, phi2)

		n2 := norN(incsb, d[45], bc.w.BRK6E, d[46], d[decoder.RET], d[decoder.JSR2])
		bc.dlDBLatch.Set(norN(br2, impAbs, not(n2), d[decoder.JMP4], rmwt6), phi2)
	}

	bc.cmd.ADLABL = bc.adlABLLatch.NGet()
	bc.cmd.ADHABH = bc.adhABHLatch.NGet()

	bc.cmd.ACDB = nor(bc.acDBLatch.Get(), phi2)
	bc.cmd.SBAC = nor(bc.sbACLatch.Get(), phi2)
	bc.cmd.ACSB = nor(bc.acSBLatch.Get(), phi2)

	bc.cmd.SBDB = bc.sbDBLatch.NGet()
	bc.cmd.SBADH = bc.sbADHLatch.NGet()
	bc.cmd.ZADH0 = bc.zADH0Latch.NGet()
	bc.cmd.ZADH17 = bc.zADH17Latch.NGet()

	bc.cmd.DLADL = bc.dlADLLatch.NGet()
	bc.cmd.DLADH = bc.dlADHLatch.NGet()
	bc.cmd.DLDB = bc.dlDBLatch.NGet()
}
