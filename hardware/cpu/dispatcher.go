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

// dispatcher is the instruction cycle state machine. there is no explicit
// state. the current cycle is the combination of the latched timing lines.
//
// simulation is split into three stages: before the decoder, before the
// random logic and after the random logic. the order of the stages matters
// because the later stages use signals produced by the random logic.
type dispatcher struct {
	w   *Wires
	d   *decoder.Lines
	brk *interrupts
	alu *alu

	// readiness
	wrLatch     logic.Latch
	readyLatch1 logic.Latch
	readyLatch2 logic.Latch

	rdyDelayLatch1 logic.Latch
	rdyDelayLatch2 logic.Latch

	acrLatch1 logic.Latch
	acrLatch2 logic.Latch

	// short cycle counter
	t0Latch  logic.Latch
	t1xLatch logic.Latch

	fetchLatch logic.Latch

	// read-modify-write cycles
	t6Latch1 logic.Latch
	t6Latch2 logic.Latch
	t7Latch1 logic.Latch
	t7Latch2 logic.Latch
	t67Latch logic.Latch

	// increment PC
	brLatch1  logic.Latch
	brLatch2  logic.Latch
	ipcLatch1 logic.Latch
	ipcLatch2 logic.Latch
	ipcLatch3 logic.Latch

	// step T1
	nreadyLatch logic.Latch
	stepLatch1  logic.Latch
	stepLatch2  logic.Latch

	// instruction completion
	t1Latch     logic.Latch
	endsLatch1  logic.Latch
	endsLatch2  logic.Latch
	tresxLatch1 logic.Latch
	tresxLatch2 logic.Latch
	tres2Latch  logic.Latch
	compLatch1  logic.Latch
	compLatch2  logic.Latch
	compLatch3  logic.Latch
}

// readiness is recomputed before the decoder and again after the random
// logic.
func (disp *dispatcher) readiness() logic.Signal {
	wr := norN(not(disp.readyLatch1.NGet()), disp.wrLatch.Get(), disp.brk.dores())
	disp.readyLatch2.Set(wr, disp.w.PHI1)
	disp.readyLatch1.Set(nor(disp.w.RDY, disp.readyLatch2.Get()), disp.w.PHI2)
	return wr
}

func (disp *dispatcher) simBeforeDecoder() {
	phi1 := disp.w.PHI1
	phi2 := disp.w.PHI2
	acr := disp.alu.acr()

	disp.readiness()
	nready := not(disp.readyLatch1.NGet())

	// ready delay
	disp.rdyDelayLatch1.Set(nready, phi1)
	disp.rdyDelayLatch2.Set(disp.rdyDelayLatch1.NGet(), phi2)
	notReadyPhi1 := disp.rdyDelayLatch2.NGet()

	// ACR latch
	acrl1 := nor(and(not(acr), not(notReadyPhi1)), nor(not(notReadyPhi1), disp.acrLatch2.NGet()))
	disp.acrLatch1.Set(acrl1, phi1)
	disp.acrLatch2.Set(disp.acrLatch1.NGet(), phi2)
	acrl2 := disp.acrLatch2.NGet()

	// short cycle counter
	disp.t1xLatch.Set(nor(disp.t0Latch.Get(), nready), phi1)
	nt0 := nor(
		nor(disp.compLatch1.Get(), and(disp.compLatch2.Get(), disp.compLatch3.Get())),
		nor(disp.t0Latch.Get(), disp.t1xLatch.Get()),
	)
	disp.t0Latch.Set(nt0, phi2)

	// opcode fetch
	brk6e := nor(disp.brk.notBRK6Latch2(), nready)
	bout := disp.brk.bOut(brk6e)

	disp.fetchLatch.Set(disp.t1(), phi2)
	fetch := nor(disp.fetchLatch.NGet(), nready)

	disp.w.T0 = not(nt0)
	disp.w.NotT0 = nt0
	disp.w.NotT1X = disp.t1xLatch.NGet()
	disp.w.ZIR = nand(bout, fetch)
	disp.w.FETCH = fetch
	disp.w.NotReady = nready
	disp.w.ACRL1 = acrl1
	disp.w.ACRL2 = acrl2
}

func (disp *dispatcher) simBeforeRandomLogic() {
	phi1 := disp.w.PHI1
	phi2 := disp.w.PHI2
	nready := disp.w.NotReady

	nshift := nor(disp.d[106], disp.d[107])
	nmemop := notMemOp(disp.d)

	disp.t6Latch1.Set(nor(and(disp.t6Latch2.Get(), nready), disp.t67Latch.Get()), phi1)
	disp.t7Latch2.Set(disp.t7Latch1.NGet(), phi1)
	disp.t67Latch.Set(norN(nshift, nmemop, nready), phi2)
	disp.t6Latch2.Set(disp.t6Latch1.NGet(), phi2)
	rmwt6 := disp.t6Latch1.NGet()
	disp.t7Latch1.Set(nand(rmwt6, not(nready)), phi2)

	disp.w.RMWT6 = rmwt6
	disp.w.RMWT7 = not(disp.t7Latch2.NGet())
}

func (disp *dispatcher) simAfterRandomLogic() {
	d := disp.d
	phi1 := disp.w.PHI1
	phi2 := disp.w.PHI2
	brk6e := disp.w.BRK6E
	resp := disp.w.RESP
	nready := disp.w.NotReady
	nbrtaken := disp.w.NotBRTaken
	acr := disp.alu.acr()
	bout := disp.brk.bOut(brk6e)

	br2 := d[decoder.BR2]
	br3 := d[decoder.BR3]

	nshift := nor(d[106], d[107])
	nstore := not(d[decoder.STORE])
	rest := nand(nshift, nstore)

	notReadyPhi1 := disp.rdyDelayLatch2.NGet()

	// increment PC
	disp.brLatch1.Set(nor(and(nbrtaken, br2), nor(disp.w.NotADLPCL, not(nor(br2, br3)))), phi2)
	disp.brLatch2.Set(nor(not(br3), notReadyPhi1), phi2)
	ipc := and(xor(disp.w.BRFW, not(acr)), not(disp.brLatch2.NGet()))
	disp.ipcLatch1.Set(bout, phi1)
	disp.ipcLatch2.Set(ipc, phi1)
	disp.ipcLatch3.Set(norN(nready, disp.brLatch1.Get(), not(disp.w.NotImplied)), phi1)
	n1pc := nand(disp.ipcLatch1.Get(), or(disp.ipcLatch2.Get(), disp.ipcLatch3.Get()))

	// step T1
	disp.nreadyLatch.Set(not(nready), phi1)
	disp.stepLatch2.Set(nor(disp.stepLatch1.Get(), ipc), phi1)
	disp.stepLatch1.Set(norN(disp.nreadyLatch.Get(), resp, disp.stepLatch2.Get()), phi2)

	// instruction completion
	ends := nor(disp.endsLatch1.Get(), disp.endsLatch2.Get())
	ntres1 := nor(nor(nor(disp.stepLatch1.Get(), ipc), nready), ends)
	disp.t1Latch.Set(ntres1, phi1)
	disp.endsLatch1.Set(mux(nready, nor(disp.w.T0, and(nbrtaken, br2)), not(disp.t1())), phi2)
	disp.endsLatch2.Set(resp, phi2)

	disp.tresxLatch1.Set(nor(d[91], d[92]), phi2)

	endx := disp.w.ENDX
	if phi2 == logic.One {
		endx = norN(
			norN(d[96], not(nshift), notMemOp(d)),
			disp.w.RMWT7,
			not(norN(d[100], d[101], d[102], d[103], d[104], d[105])),
			br3,
		)
		disp.tresxLatch2.Set(norN(resp, ends, nor(nready, endx)), phi2)
	}

	ntresx := norN(
		norN(disp.w.ACRL1, disp.tresxLatch1.Get(), nready, rest),
		brk6e,
		disp.tresxLatch2.NGet(),
	)
	disp.tres2Latch.Set(ntresx, phi1)

	disp.compLatch1.Set(not(ntres1), phi1)
	disp.compLatch2.Set(disp.w.NotTwoCycle, phi1)
	disp.compLatch3.Set(ntresx, phi1)

	// write strobe
	if phi2 == logic.One {
		disp.wrLatch.Set(norN(stor(d), disp.w.PCDB, d[98], d[100], disp.w.RMWT6, disp.w.RMWT7), phi2)
	}

	wr := disp.readiness()

	disp.w.Not1PC = n1pc
	disp.w.WR = wr
	disp.w.ENDS = ends
	disp.w.ENDX = endx
	disp.w.TRES1 = not(ntres1)
	disp.w.NotTRESX = ntresx
}

func (disp *dispatcher) tres2() logic.Signal {
	return disp.tres2Latch.NGet()
}

func (disp *dispatcher) t1() logic.Signal {
	return disp.t1Latch.NGet()
}

// notMemOp is low for the memory operation lines of the decoder.
func notMemOp(d *decoder.Lines) logic.Signal {
	return norN(d[111], d[122], d[123], d[124], d[125])
}

// stor is high for store instructions.
func stor(d *decoder.Lines) logic.Signal {
	return nor(notMemOp(d), not(d[decoder.STORE]))
}
