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

// branchLogic decides whether a branch is taken and the direction of the
// branch.
type branchLogic struct {
	bundle

	buses *Buses

	br2Latch   logic.Latch
	brfwLatch1 logic.Latch
	brfwLatch2 logic.Latch
}

func (bl *branchLogic) sim(f *flags) {
	d := bl.d
	phi1 := bl.w.PHI1
	phi2 := bl.w.PHI2

	nir6 := d[decoder.NotIR6]
	nir7 := d[decoder.NotIR7]

	resC := norN(f.notC(), not(nir6), nir7)
	resV := norN(f.notV(), nir6, not(nir7))
	resN := norN(f.notN(), not(nir6), not(nir7))
	resZ := norN(f.notZ(), nir6, nir7)
	nbrtaken := xor(norN(resC, resV, resN, resZ), bl.w.NotIR5)

	ndb7 := not(bl.buses.DB.Bit(7))
	bl.brfwLatch1.Set(not(mux(bl.br2Latch.Get(), bl.brfwLatch2.Get(), ndb7)), phi1)
	bl.br2Latch.Set(d[decoder.BR2], phi2)
	bl.brfwLatch2.Set(bl.brfwLatch1.NGet(), phi2)

	bl.w.NotBRTaken = nbrtaken
	bl.w.BRFW = bl.brfw()
}

func (bl *branchLogic) brfw() logic.Signal {
	return not(bl.brfwLatch1.NGet())
}
