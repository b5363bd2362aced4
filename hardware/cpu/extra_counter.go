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

// extraCounter is the short cycle counter for T2 to T5. it is a shift
// register clocked by the two phases. the counter holds while the CPU is not
// ready and is cleared by TRES2.
type extraCounter struct {
	w *Wires

	// accelerated selects the packed form of the shift register
	accelerated bool

	t1Latch logic.Latch

	t2Latch1 logic.Latch
	t2Latch2 logic.Latch
	t3Latch1 logic.Latch
	t3Latch2 logic.Latch
	t4Latch1 logic.Latch
	t4Latch2 logic.Latch
	t5Latch1 logic.Latch
	t5Latch2 logic.Latch

	// packed shift register. bit 0 is T2
	packed1 uint8
	packed2 uint8
}

func (ec *extraCounter) sim(t1, tres2 logic.Signal) {
	if ec.accelerated {
		ec.simAccelerated(t1, tres2)
		return
	}

	phi1 := ec.w.PHI1
	phi2 := ec.w.PHI2

	var t2, t3, t4, t5 logic.Signal

	if phi1 == logic.One {
		nready := ec.w.NotReady

		ec.t2Latch1.Set(mux(nready, ec.t1Latch.NGet(), ec.t2Latch2.NGet()), phi1)
		ec.t3Latch1.Set(mux(nready, ec.t2Latch2.NGet(), ec.t3Latch2.NGet()), phi1)
		ec.t4Latch1.Set(mux(nready, ec.t3Latch2.NGet(), ec.t4Latch2.NGet()), phi1)
		ec.t5Latch1.Set(mux(nready, ec.t4Latch2.NGet(), ec.t5Latch2.NGet()), phi1)

		t2 = nor(ec.t2Latch1.Get(), tres2)
		t3 = nor(ec.t3Latch1.Get(), tres2)
		t4 = nor(ec.t4Latch1.Get(), tres2)
		t5 = nor(ec.t5Latch1.Get(), tres2)
	} else {
		ec.t1Latch.Set(t1, phi2)

		t2 = nor(ec.t2Latch1.Get(), tres2)
		ec.t2Latch2.Set(t2, phi2)
		t3 = nor(ec.t3Latch1.Get(), tres2)
		ec.t3Latch2.Set(t3, phi2)
		t4 = nor(ec.t4Latch1.Get(), tres2)
		ec.t4Latch2.Set(t4, phi2)
		t5 = nor(ec.t5Latch1.Get(), tres2)
		ec.t5Latch2.Set(t5, phi2)
	}

	ec.w.NotT2 = not(t2)
	ec.w.NotT3 = not(t3)
	ec.w.NotT4 = not(t4)
	ec.w.NotT5 = not(t5)
}

// the packed form does not store the inverted values that the latches of
// the shift register hold.
func (ec *extraCounter) simAccelerated(t1, tres2 logic.Signal) {
	if ec.w.PHI1 == logic.One {
		if ec.w.NotReady == logic.One {
			ec.packed1 = ec.packed2
		} else {
			ec.packed1 = (ec.packed2 << 1) | ec.t1Latch.Get().Bit()
		}
	} else {
		ec.t1Latch.Set(t1, logic.One)
		if tres2 == logic.One {
			ec.packed2 = 0
		} else {
			ec.packed2 = ec.packed1
		}
	}

	tx := ec.packed1
	if tres2 == logic.One {
		tx = 0
	}

	ec.w.NotT2 = sig(tx&0x01 == 0)
	ec.w.NotT3 = sig(tx&0x02 == 0)
	ec.w.NotT4 = sig(tx&0x04 == 0)
	ec.w.NotT5 = sig(tx&0x08 == 0)
}
