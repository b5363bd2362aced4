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

// flagsControl produces the commands for the flags.
type flagsControl struct {
	bundle

	pdbLatch  logic.Latch
	acrcLatch logic.Latch
	pinLatch  logic.Latch
	iriLatch  logic.Latch
	ircLatch  logic.Latch
	irdLatch  logic.Latch
	zvLatch   logic.Latch
	dbzLatch  logic.Latch
	dbnLatch  logic.Latch
	dbcLatch  logic.Latch
	bitLatch  logic.Latch
}

func (fc *flagsControl) sim(table []uint8, key uint32) {
	d := fc.d
	phi2 := fc.w.PHI2
	nready := fc.w.NotReady

	var dbp logic.Signal

	if phi2 == logic.One {
		key |= uint32(fc.w.RMWT6.Bit())<<14 | uint32(fc.w.RMWT7.Bit())<<15
		v := table[key]

		fc.pdbLatch.Set(sig(v&flagsNotPOUT != 0), phi2)
		fc.acrcLatch.Set(sig(v&flagsNotARIT != 0), phi2)
		fc.pinLatch.Set(sig(v&flagsNotPIN != 0), phi2)

		fc.iriLatch.Set(not(d[decoder.IR5I]), phi2)
		fc.ircLatch.Set(not(d[decoder.IR5C]), phi2)
		fc.irdLatch.Set(not(d[decoder.IR5D]), phi2)
		fc.zvLatch.Set(not(d[decoder.CLV]), phi2)
		fc.dbzLatch.Set(norN(fc.acrcLatch.NGet(), sig(v&flagsZTST != 0), d[109]), phi2)
		fc.dbnLatch.Set(d[109], phi2)
		dbp = nor(fc.pinLatch.Get(), nready)
		fc.dbcLatch.Set(nor(dbp, sig(v&flagsSR != 0)), phi2)
		fc.bitLatch.Set(not(d[113]), phi2)
	} else {
		dbp = nor(fc.pinLatch.Get(), nready)
	}

	fc.cmd.PDB = fc.pdbLatch.NGet()
	fc.cmd.IR5I = fc.iriLatch.NGet()
	fc.cmd.IR5C = fc.ircLatch.NGet()
	fc.cmd.IR5D = fc.irdLatch.NGet()
	fc.cmd.AVRV = d[decoder.AVRV]
	fc.cmd.ZV = fc.zvLatch.NGet()
	fc.cmd.ACRC = fc.acrcLatch.NGet()
	fc.cmd.DBZZ = fc.dbzLatch.NGet()
	fc.cmd.DBN = nor(and(fc.dbzLatch.Get(), fc.pinLatch.Get()), fc.dbnLatch.Get())
	fc.cmd.DBP = dbp
	fc.cmd.DBC = fc.dbcLatch.NGet()
	fc.cmd.DBV = nand(fc.pinLatch.Get(), fc.bitLatch.Get())
}
