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

// regsControl produces the commands for the X, Y and S registers.
type regsControl struct {
	bundle

	nreadyLatch logic.Latch

	ysbLatch  logic.Latch
	xsbLatch  logic.Latch
	sbxLatch  logic.Latch
	sbyLatch  logic.Latch
	sbsLatch  logic.Latch
	ssLatch   logic.Latch
	sadlLatch logic.Latch
	ssbLatch  logic.Latch
}

func (rc *regsControl) sim(table []uint8, key uint32) {
	phi1 := rc.w.PHI1
	phi2 := rc.w.PHI2
	nready := rc.w.NotReady

	rc.nreadyLatch.Set(nready, phi1)

	if phi2 == logic.One {
		key |= uint32(nready.Bit())<<14 | uint32(rc.nreadyLatch.Get().Bit())<<15
		v := table[key]

		rc.ysbLatch.Set(sig(v&regsNotYSB != 0), phi2)
		rc.xsbLatch.Set(sig(v&regsNotXSB != 0), phi2)
		rc.sbxLatch.Set(sig(v&regsNotSBX != 0), phi2)
		rc.sbyLatch.Set(sig(v&regsNotSBY != 0), phi2)
		rc.sbsLatch.Set(sig(v&regsNotSBS != 0), phi2)
		rc.ssLatch.Set(sig(v&regsNotSBS == 0), phi2)
		rc.sadlLatch.Set(sig(v&regsNotSADL != 0), phi2)

		rc.ssbLatch.Set(not(rc.d[17]), phi2)

		rc.cmd.YSB = logic.Zero
		rc.cmd.XSB = logic.Zero
		rc.cmd.SBX = logic.Zero
		rc.cmd.SBY = logic.Zero
		rc.cmd.SBS = logic.Zero
		rc.cmd.SS = logic.Zero
	} else {
		rc.cmd.YSB = not(rc.ysbLatch.Get())
		rc.cmd.XSB = not(rc.xsbLatch.Get())
		rc.cmd.SBX = not(rc.sbxLatch.Get())
		rc.cmd.SBY = not(rc.sbyLatch.Get())
		rc.cmd.SBS = not(rc.sbsLatch.Get())
		rc.cmd.SS = not(rc.ssLatch.Get())
	}

	rc.cmd.SSB = rc.ssbLatch.NGet()
	rc.cmd.SADL = rc.sadlLatch.NGet()
}
