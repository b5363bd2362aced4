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

// flags is the status register. each flag is a pair of latches, the first
// loaded during PHI1 and the second refreshing the first during PHI2. the
// value of a flag is the value of its first latch.
type flags struct {
	w     *Wires
	cmd   *Commands
	buses *Buses
	alu   *alu

	zLatch1 logic.Latch
	zLatch2 logic.Latch
	nLatch1 logic.Latch
	nLatch2 logic.Latch
	cLatch1 logic.Latch
	cLatch2 logic.Latch
	dLatch1 logic.Latch
	dLatch2 logic.Latch
	iLatch1 logic.Latch
	iLatch2 logic.Latch
	vLatch1 logic.Latch
	vLatch2 logic.Latch

	avrLatch  logic.Latch
	soLatch1  logic.Latch
	soLatch2  logic.Latch
	soLatch3  logic.Latch
	vsetLatch logic.Latch
}

func (f *flags) simLoad() {
	phi1 := f.w.PHI1
	phi2 := f.w.PHI2
	nir5 := f.w.NotIR5
	acr := f.alu.acr()
	avr := f.alu.avr()
	dbp := f.cmd.DBP
	db := &f.buses.DB

	if phi1 == logic.One {
		dbzz := f.cmd.DBZZ
		ndbz := sig(db.Value != 0)
		f.zLatch1.Set(norN(
			and(not(db.Bit(1)), dbp),
			and(ndbz, dbzz),
			and(nor(dbp, dbzz), f.zLatch2.Get()),
		), phi1)

		dbn := f.cmd.DBN
		f.nLatch1.Set(nor(
			and(not(db.Bit(7)), dbn),
			and(not(dbn), f.nLatch2.Get()),
		), phi1)

		ir5c := f.cmd.IR5C
		dbc := f.cmd.DBC
		acrc := f.cmd.ACRC
		f.cLatch1.Set(norN(
			and(nir5, ir5c),
			and(not(acr), acrc),
			and(not(db.Bit(0)), dbc),
			and(norN(dbc, ir5c, acrc), f.cLatch2.Get()),
		), phi1)

		ir5d := f.cmd.IR5D
		f.dLatch1.Set(norN(
			and(ir5d, nir5),
			and(not(db.Bit(3)), dbp),
			and(nor(ir5d, dbp), f.dLatch2.Get()),
		), phi1)

		ir5i := f.cmd.IR5I
		f.iLatch1.Set(norN(
			and(nir5, ir5i),
			and(not(db.Bit(2)), dbp),
			and(nor(dbp, ir5i), f.iLatch2.Get()),
		), phi1)
	} else {
		f.zLatch2.Set(f.zLatch1.NGet(), phi2)
		f.nLatch2.Set(f.nLatch1.NGet(), phi2)
		f.cLatch2.Set(f.cLatch1.NGet(), phi2)
		f.dLatch2.Set(f.dLatch1.NGet(), phi2)
		f.iLatch2.Set(and(f.iLatch1.NGet(), not(f.w.BRK6E)), phi2)
	}

	// overflow, including the edge detector of the SO pad
	f.avrLatch.Set(f.cmd.AVRV, phi2)
	f.soLatch1.Set(not(f.w.SO), phi1)
	f.soLatch2.Set(f.soLatch1.NGet(), phi2)
	f.soLatch3.Set(f.soLatch2.NGet(), phi1)
	f.vsetLatch.Set(nor(f.soLatch1.NGet(), f.soLatch3.Get()), phi2)

	if phi1 == logic.One {
		dbv := f.cmd.DBV
		f.vLatch1.Set(norN(
			and(not(avr), f.avrLatch.Get()),
			and(not(db.Bit(6)), dbv),
			and(norN(dbv, f.avrLatch.Get(), f.vsetLatch.Get()), f.vLatch2.Get()),
			f.cmd.ZV,
		), phi1)
	} else {
		f.vLatch2.Set(f.vLatch1.NGet(), phi2)
	}
}

// simStore places the flags on the DB bus. bit 5 is whatever is already on
// the bus.
func (f *flags) simStore(bout logic.Signal) {
	if f.cmd.PDB != logic.One {
		return
	}

	db := &f.buses.DB
	db.Value &= 0x20
	db.Value |= not(f.notC()).Bit() << 0
	db.Value |= not(f.notZ()).Bit() << 1
	db.Value |= not(f.notI(f.w.BRK6E)).Bit() << 2
	db.Value |= not(f.notD()).Bit() << 3
	db.Value |= bout.Bit() << 4
	db.Value |= not(f.notV()).Bit() << 6
	db.Value |= not(f.notN()).Bit() << 7
	db.Dirty = true
}

func (f *flags) notZ() logic.Signal {
	return f.zLatch1.NGet()
}

func (f *flags) notN() logic.Signal {
	return f.nLatch1.NGet()
}

func (f *flags) notC() logic.Signal {
	return f.cLatch1.NGet()
}

func (f *flags) notD() logic.Signal {
	return f.dLatch1.NGet()
}

func (f *flags) notI(brk6e logic.Signal) logic.Signal {
	return and(f.iLatch1.NGet(), not(brk6e))
}

func (f *flags) notV() logic.Signal {
	return f.vLatch1.NGet()
}
