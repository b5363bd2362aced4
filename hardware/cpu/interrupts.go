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

// interruptPads are the flip-flops that sample the interrupt pads. NMI is
// sampled during PHI2. IRQ and RES are sampled during PHI2 and held during
// PHI1.
type interruptPads struct {
	w *Wires

	nmip logic.FF
	irqp logic.FlipFlop
	resp logic.FlipFlop
}

func (ip *interruptPads) sim() {
	phi1 := ip.w.PHI1
	phi2 := ip.w.PHI2

	if phi2 == logic.One {
		ip.nmip.Set(not(ip.w.NotNMI))
	}
	ip.w.NotNMIP = not(ip.nmip.Get())

	ip.irqp.Capture(not(ip.w.NotIRQ), phi2)
	ip.irqp.Hold(phi1)
	ip.w.NotIRQP = not(ip.irqp.Get())

	ip.resp.Capture(ip.w.NotRES, phi2)
	ip.resp.Hold(phi1)
	ip.w.RESP = not(ip.resp.Get())
}

// interrupts is the BRK sequencer. it handles the interrupt cycles, the reset
// flip-flop, edge detection of NMI and the generation of the interrupt
// vector address.
type interrupts struct {
	w   *Wires
	cmd *Commands
	d   *decoder.Lines

	brk5Latch  logic.Latch
	brk6Latch1 logic.Latch
	brk6Latch2 logic.Latch

	resLatch1 logic.Latch
	resLatch2 logic.Latch

	brk6eLatch  logic.Latch
	brk7Latch   logic.Latch
	nmipLatch   logic.Latch
	donmiLatch  logic.Latch
	ff1Latch    logic.Latch
	ff2Latch    logic.Latch
	delayLatch1 logic.Latch
	delayLatch2 logic.Latch

	zadlLatch [3]logic.Latch

	bLatch1 logic.Latch
	bLatch2 logic.Latch
}

func (brk *interrupts) simBeforeRandom() {
	phi1 := brk.w.PHI1
	phi2 := brk.w.PHI2
	nready := brk.w.NotReady
	nnmip := brk.w.NotNMIP

	// interrupt cycles 6 and 7
	brk5rdy := and(brk.d[decoder.BRK5], not(nready))
	brk.brk5Latch.Set(brk5rdy, phi2)
	brk.brk6Latch1.Set(and(not(brk.brk5Latch.Get()), nand(nready, brk.brk6Latch1.NGet())), phi1)
	brk.brk6Latch2.Set(brk.brk6Latch1.NGet(), phi2)
	brk6e := nor(brk.brk6Latch2.NGet(), nready)
	brk7 := nor(brk.brk6Latch1.NGet(), brk5rdy)

	// reset flip-flop
	brk.resLatch1.Set(brk.w.RESP, phi2)
	brk.resLatch2.Set(nor(nor(brk.resLatch1.Get(), brk.resLatch2.Get()), brk6e), phi1)
	dores := not(nor(brk.resLatch1.Get(), brk.resLatch2.Get()))

	// NMI edge detection
	brk.brk6eLatch.Set(brk6e, phi1)
	brk.brk7Latch.Set(brk7, phi2)
	brk.nmipLatch.Set(nnmip, phi1)

	brk.donmiLatch.Set(norN(brk.brk7Latch.NGet(), nnmip, nor(brk.nmipLatch.Get(), nor(brk.ff2Latch.Get(), brk.delayLatch2.Get()))), phi1)

	brk.ff1Latch.Set(nor(brk.donmiLatch.Get(), nor(brk.ff1Latch.Get(), brk.brk6eLatch.Get())), phi2)
	ndonmi := nor(brk.donmiLatch.Get(), nor(brk.ff1Latch.Get(), brk.brk6eLatch.Get()))

	brk.delayLatch1.Set(ndonmi, phi2)
	brk.delayLatch2.Set(brk.delayLatch1.NGet(), phi1)

	brk.ff2Latch.Set(nor(brk.nmipLatch.Get(), nor(brk.ff2Latch.Get(), brk.delayLatch2.Get())), phi2)

	// interrupt vector
	brk.zadlLatch[0].Set(not(brk5rdy), phi2)
	brk.zadlLatch[1].Set(not(nor(brk7, not(dores))), phi2)
	brk.zadlLatch[2].Set(norN(brk7, dores, ndonmi), phi2)

	brk.w.BRK6E = brk6e
	brk.w.BRK7 = brk7
	brk.w.DORES = dores
	brk.w.NotDONMI = ndonmi
	brk.w.BRK5RDY = brk5rdy
	brk.cmd.ZADL0 = brk.zadlLatch[0].NGet()
	brk.cmd.ZADL1 = brk.zadlLatch[1].NGet()
	brk.cmd.ZADL2 = not(brk.zadlLatch[2].NGet())
}

func (brk *interrupts) simAfterRandom(nIOut logic.Signal) {
	phi1 := brk.w.PHI1
	phi2 := brk.w.PHI2
	brk6e := brk.w.BRK6E

	intSet := nand(
		or(brk.d[decoder.BR2], brk.w.T0),
		nand(brk.w.NotDONMI, or(brk.w.NotIRQP, not(nIOut))),
	)

	brk.bLatch2.Set(nor(brk.bLatch1.Get(), brk6e), phi1)
	brk.bLatch1.Set(and(intSet, not(brk.bLatch2.Get())), phi2)

	brk.w.BOUT = nor(brk.w.DORES, nor(brk.bLatch1.Get(), brk6e))
}

func (brk *interrupts) dores() logic.Signal {
	return not(nor(brk.resLatch1.Get(), brk.resLatch2.Get()))
}

func (brk *interrupts) bOut(brk6e logic.Signal) logic.Signal {
	return nor(brk.dores(), nor(brk.bLatch1.Get(), brk6e))
}

func (brk *interrupts) notBRK6Latch2() logic.Signal {
	return brk.brk6Latch2.NGet()
}
