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

// pcControl produces the commands for the program counter.
type pcControl struct {
	bundle

	nreadyLatch logic.Latch

	pclDBLatch1 logic.Latch
	pclDBLatch2 logic.Latch
	pchDBLatch1 logic.Latch
	pchDBLatch2 logic.Latch
	pclADLLatch logic.Latch
	pchADHLatch logic.Latch
	pclPCLLatch logic.Latch
	adlPCLLatch logic.Latch
	adhPCHLatch logic.Latch
	pchPCHLatch logic.Latch
}

func (pc *pcControl) sim(t1 logic.Signal) {
	d := pc.d
	phi1 := pc.w.PHI1
	phi2 := pc.w.PHI2

	// the two wires used by the dispatcher are only needed during PHI2
	pcdb := logic.Zero
	nadlpcl := logic.Zero

	if phi2 == logic.One {
		t0 := pc.w.T0
		br0 := and(d[decoder.BR0], not(pc.w.NotPRDY))
		br2 := d[decoder.BR2]
		br3 := d[decoder.BR3]
		abs2 := and(d[decoder.ABS2], not(d[decoder.PP]))
		jb := norN(d[94], d[95], d[96])

		// DB
		npchdb := nor(d[77], d[78])
		pc.pchDBLatch1.Set(npchdb, phi2)
		npcldb := pc.pclDBLatch1.NGet()
		pcdb = nand(npcldb, npchdb)
		pc.pclDBLatch2.Set(npcldb, phi2)
		pc.pchDBLatch2.Set(npchdb, phi2)

		// ADL
		npcladl := norN(t1, d[decoder.JSR5], abs2, nor(nor(jb, pc.nreadyLatch.Get()), not(t0)), br2)
		pc.pclADLLatch.Set(npcladl, phi2)

		nadlpcl = norN(not(npcladl), d[decoder.RTS5], t0, and(not(pc.nreadyLatch.Get()), br3))
		pc.pclPCLLatch.Set(not(nadlpcl), phi2)
		pc.adlPCLLatch.Set(nadlpcl, phi2)

		// ADH
		dlpch := nor(not(t0), jb)
		pc.pchADHLatch.Set(nor(norN(npcladl, dlpch, br0), br3), phi2)

		nadhpch := norN(d[decoder.RTS5], abs2, t0, t1, br2, br3)
		pc.adhPCHLatch.Set(nadhpch, phi2)
		pc.pchPCHLatch.Set(not(nadhpch), phi2)
	} else {
		pc.nreadyLatch.Set(pc.w.NotReady, phi1)
		pc.pclDBLatch1.Set(nor(pc.pchDBLatch1.Get(), pc.w.NotReady), phi1)
	}

	pc.cmd.PCLDB = pc.pclDBLatch2.NGet()
	pc.cmd.PCHDB = pc.pchDBLatch2.NGet()
	pc.cmd.PCLADL = pc.pclADLLatch.NGet()
	pc.cmd.PCHADH = pc.pchADHLatch.NGet()

	if phi2 == logic.One {
		pc.cmd.PCLPCL = logic.Zero
		pc.cmd.ADLPCL = logic.Zero
		pc.cmd.ADHPCH = logic.Zero
		pc.cmd.PCHPCH = logic.Zero
	} else {
		pc.cmd.PCLPCL = not(pc.pclPCLLatch.Get())
		pc.cmd.ADLPCL = not(pc.adlPCLLatch.Get())
		pc.cmd.ADHPCH = not(pc.adhPCHLatch.Get())
		pc.cmd.PCHPCH = not(pc.pchPCHLatch.Get())
	}

	pc.w.PCDB = pcdb
	pc.w.NotADLPCL = nadlpcl
}
