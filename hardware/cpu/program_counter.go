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

// programCounter is the two halves of the program counter. each half has an
// input stage (PCLS and PCHS) and an output stage (PCL and PCH) separated by
// the incrementer.
//
// the output stage stores alternating bits inverted, the inversion follows
// the carry chain of the incrementer. the PCH incrementer is arranged the
// other way round to the PCL incrementer.
type programCounter struct {
	w     *Wires
	cmd   *Commands
	buses *Buses

	accelerated bool

	pcls [8]logic.Latch
	pchs [8]logic.Latch
	pcl  [8]logic.Latch
	pch  [8]logic.Latch
}

func (pc *programCounter) evenBit(in, out *logic.Latch, cin logic.Signal) (sout, cout logic.Signal) {
	sout = in.NGet()
	cout = nor(cin, sout)
	out.Set(nor(and(sout, cin), cout), pc.w.PHI2)
	return sout, cout
}

func (pc *programCounter) oddBit(in, out *logic.Latch, cin logic.Signal) (sout, cout logic.Signal) {
	sout = in.NGet()
	cout = nand(cin, not(sout))
	out.Set(nand(or(not(sout), cin), cout), pc.w.PHI2)
	return sout, cout
}

// sim is the incrementer. Not1PC is the active-low increment request and is
// the carry into bit zero.
func (pc *programCounter) sim() {
	if pc.w.PHI2 != logic.One {
		return
	}

	if pc.accelerated {
		pc.simAccelerated()
		return
	}

	cin := pc.w.Not1PC

	var souts [9]logic.Signal
	souts[0] = cin
	for n := 0; n < 8; n++ {
		var sout logic.Signal
		if n&0x01 == 1 {
			sout, cin = pc.oddBit(&pc.pcls[n], &pc.pcl[n], cin)
		} else {
			sout, cin = pc.evenBit(&pc.pcls[n], &pc.pcl[n], cin)
		}
		souts[n+1] = sout
	}
	pclc := norN(souts[:]...)

	cin = pclc

	var pchc [5]logic.Signal
	pchc[0] = not(pclc)
	for n := 0; n < 4; n++ {
		var sout logic.Signal
		if n&0x01 == 1 {
			sout, cin = pc.evenBit(&pc.pchs[n], &pc.pch[n], cin)
		} else {
			sout, cin = pc.oddBit(&pc.pchs[n], &pc.pch[n], cin)
		}
		pchc[n+1] = sout
	}
	cin = norN(pchc[:]...)
	for n := 4; n < 8; n++ {
		if n&0x01 == 1 {
			_, cin = pc.evenBit(&pc.pchs[n], &pc.pch[n], cin)
		} else {
			_, cin = pc.oddBit(&pc.pchs[n], &pc.pch[n], cin)
		}
	}
}

func (pc *programCounter) simAccelerated() {
	v := uint16(pc.getPCHS())<<8 | uint16(pc.getPCLS())
	if pc.w.Not1PC == logic.Zero {
		v++
	}
	pc.setPCL(uint8(v))
	pc.setPCH(uint8(v >> 8))
}

func (pc *programCounter) load() {
	if pc.accelerated {
		pc.loadAccelerated()
		return
	}

	pclpcl := pc.cmd.PCLPCL
	pchpch := pc.cmd.PCHPCH
	adlpcl := pc.cmd.ADLPCL
	adhpch := pc.cmd.ADHPCH
	adl := pc.buses.ADL.Value
	adh := pc.buses.ADH.Value

	for n := 0; n < 8; n++ {
		if n&0x01 == 1 {
			pc.pcls[n].Set(pc.pcl[n].NGet(), pclpcl)
			pc.pchs[n].Set(not(pc.pch[n].NGet()), pchpch)
		} else {
			pc.pcls[n].Set(not(pc.pcl[n].NGet()), pclpcl)
			pc.pchs[n].Set(pc.pch[n].NGet(), pchpch)
		}
		pc.pcls[n].Set(bit(adl, n), adlpcl)
		pc.pchs[n].Set(bit(adh, n), adhpch)
	}
}

func (pc *programCounter) loadAccelerated() {
	if pc.cmd.PCLPCL == logic.One {
		pc.setPCLS(pc.getPCL())
	}
	if pc.cmd.PCHPCH == logic.One {
		pc.setPCHS(pc.getPCH())
	}
	if pc.cmd.ADLPCL == logic.One {
		pc.setPCLS(pc.buses.ADL.Value)
	}
	if pc.cmd.ADHPCH == logic.One {
		pc.setPCHS(pc.buses.ADH.Value)
	}
}

func (pc *programCounter) store() {
	if pc.cmd.PCLDB == logic.One {
		pc.buses.DB.Write(pc.getPCL())
	}
	if pc.cmd.PCLADL == logic.One {
		pc.buses.ADL.Write(pc.getPCL())
	}
	if pc.cmd.PCHDB == logic.One {
		pc.buses.DB.Write(pc.getPCH())
	}
	if pc.cmd.PCHADH == logic.One {
		pc.buses.ADH.Write(pc.getPCH())
	}
}

func (pc *programCounter) getPCL() uint8 {
	var v uint8
	for n := 0; n < 8; n++ {
		s := pc.pcl[n].NGet()
		if n&0x01 == 0 {
			s = not(s)
		}
		v |= s.Bit() << n
	}
	return v
}

func (pc *programCounter) getPCH() uint8 {
	var v uint8
	for n := 0; n < 8; n++ {
		s := pc.pch[n].NGet()
		if n&0x01 == 1 {
			s = not(s)
		}
		v |= s.Bit() << n
	}
	return v
}

func (pc *programCounter) getPCLS() uint8 {
	return packLatches(&pc.pcls)
}

func (pc *programCounter) getPCHS() uint8 {
	return packLatches(&pc.pchs)
}

func (pc *programCounter) setPCL(v uint8) {
	for n := 0; n < 8; n++ {
		s := bit(v, n)
		if n&0x01 == 1 {
			s = not(s)
		}
		pc.pcl[n].Set(s, logic.One)
	}
}

func (pc *programCounter) setPCH(v uint8) {
	for n := 0; n < 8; n++ {
		s := bit(v, n)
		if n&0x01 == 0 {
			s = not(s)
		}
		pc.pch[n].Set(s, logic.One)
	}
}

func (pc *programCounter) setPCLS(v uint8) {
	unpackLatches(&pc.pcls, v)
}

func (pc *programCounter) setPCHS(v uint8) {
	unpackLatches(&pc.pchs, v)
}

func packLatches(l *[8]logic.Latch) uint8 {
	var v uint8
	for n := range l {
		v |= l[n].Get().Bit() << n
	}
	return v
}

func unpackLatches(l *[8]logic.Latch, v uint8) {
	for n := range l {
		l[n].Set(bit(v, n), logic.One)
	}
}
