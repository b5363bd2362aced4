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
	"fmt"
	"testing"

	"github.com/famisim/famisim/hardware/logic"
	"github.com/famisim/famisim/test"
)

type aluOp int

const (
	opAND aluOp = iota
	opEOR
	opOR
	opSR
	opSUM
)

func (op aluOp) String() string {
	return [...]string{"AND", "EOR", "OR", "SR", "SUM"}[op]
}

func newTestALU(decimalDisabled, accelerated bool) *alu {
	a := &alu{
		w:               &Wires{},
		cmd:             &Commands{},
		buses:           &Buses{},
		decimalDisabled: decimalDisabled,
		accelerated:     accelerated,
		nADD:            0xff,
	}
	a.cmd.NotDAA = logic.One
	a.cmd.NotDSA = logic.One
	return a
}

func (a *alu) selectOp(op aluOp) {
	a.cmd.ANDS = sig(op == opAND)
	a.cmd.EORS = sig(op == opEOR)
	a.cmd.ORS = sig(op == opOR)
	a.cmd.SRS = sig(op == opSR)
	a.cmd.SUMS = sig(op == opSUM)
}

// phi2 runs the computational half of the ALU.
func (a *alu) phi2(ai, bi uint8, carry bool) {
	a.ai = ai
	a.bi = bi
	a.cmd.NotACIN = sig(!carry)
	a.w.PHI1 = logic.Zero
	a.w.PHI2 = logic.One
	a.sim()
}

// phi1 moves the result latch to the accumulator by way of SB.
func (a *alu) phi1() uint8 {
	a.w.PHI1 = logic.One
	a.w.PHI2 = logic.Zero
	a.buses.SB.Value = ^a.nADD
	a.cmd.SBAC = logic.One
	a.sim()
	a.cmd.SBAC = logic.Zero
	return a.ac
}

func reference(op aluOp, ai, bi uint8, carry bool) uint8 {
	switch op {
	case opAND:
		return ai & bi
	case opEOR:
		return ai ^ bi
	case opOR:
		return ai | bi
	case opSR:
		return (ai & bi) >> 1
	}
	s := uint16(ai) + uint16(bi)
	if carry {
		s++
	}
	return uint8(s)
}

func referenceFlags(ai, bi uint8, carry bool) (logic.Signal, logic.Signal) {
	s := uint16(ai) + uint16(bi)
	if carry {
		s++
	}
	v := ^(ai^bi)&(ai^uint8(s))&0x80 != 0
	return sig(s > 0xff), sig(v)
}

func TestALUBinary(t *testing.T) {
	for _, accelerated := range []bool{false, true} {
		a := newTestALU(true, accelerated)
		for op := opAND; op <= opSUM; op++ {
			a.selectOp(op)
			for ai := 0; ai <= 0xff; ai++ {
				for bi := 0; bi <= 0xff; bi++ {
					for _, carry := range []bool{false, true} {
						a.phi2(uint8(ai), uint8(bi), carry)

						id := fmt.Sprintf("%s accelerated=%v %02x %02x %v", op, accelerated, ai, bi, carry)
						if !test.ExpectEquality(t, ^a.nADD, reference(op, uint8(ai), uint8(bi), carry), id) {
							return
						}

						// carry and overflow are produced for every operation
						acr, avr := referenceFlags(uint8(ai), uint8(bi), carry)
						if !test.ExpectEquality(t, a.acr(), acr, id) {
							return
						}
						if !test.ExpectEquality(t, a.avr(), avr, id) {
							return
						}
					}
				}
			}
		}
	}
}

// the gate level ALU with the decimal circuitry present but not enabled
// produces the same result as with the circuitry removed.
func TestALUDecimalInactive(t *testing.T) {
	a := newTestALU(false, false)
	b := newTestALU(true, false)
	a.selectOp(opSUM)
	b.selectOp(opSUM)

	for ai := 0; ai <= 0xff; ai++ {
		for bi := 0; bi <= 0xff; bi++ {
			for _, carry := range []bool{false, true} {
				a.phi2(uint8(ai), uint8(bi), carry)
				b.phi2(uint8(ai), uint8(bi), carry)
				id := fmt.Sprintf("%02x %02x %v", ai, bi, carry)
				if !test.ExpectEquality(t, a.nADD, b.nADD, id) {
					return
				}
				test.ExpectEquality(t, a.acr(), b.acr(), id)
				test.ExpectEquality(t, a.avr(), b.avr(), id)
				test.ExpectEquality(t, a.phi1(), b.phi1(), id)
			}
		}
	}
}

func toBCD(v int) uint8 {
	return uint8((v/10)<<4 | v%10)
}

func TestALUDecimalAdd(t *testing.T) {
	a := newTestALU(false, false)
	a.selectOp(opSUM)
	a.cmd.NotDAA = logic.Zero

	for x := 0; x < 100; x++ {
		for y := 0; y < 100; y++ {
			for _, carry := range []bool{false, true} {
				s := x + y
				if carry {
					s++
				}

				a.phi2(toBCD(x), toBCD(y), carry)
				id := fmt.Sprintf("%d+%d %v", x, y, carry)
				test.ExpectEquality(t, a.acr(), sig(s >= 100), id)
				if !test.ExpectEquality(t, a.phi1(), toBCD(s%100), id) {
					return
				}
			}
		}
	}
}

func TestALUDecimalSubtract(t *testing.T) {
	a := newTestALU(false, false)
	a.selectOp(opSUM)
	a.cmd.NotDSA = logic.Zero

	for x := 0; x < 100; x++ {
		for y := 0; y < 100; y++ {
			for _, carry := range []bool{false, true} {
				s := x - y
				if !carry {
					s--
				}

				// subtraction is the addition of the complement of BI
				a.phi2(toBCD(x), ^toBCD(y), carry)
				id := fmt.Sprintf("%d-%d %v", x, y, carry)
				test.ExpectEquality(t, a.acr(), sig(s >= 0), id)
				if !test.ExpectEquality(t, a.phi1(), toBCD((s+100)%100), id) {
					return
				}
			}
		}
	}
}

// nmosDecimalAdd is the decimal addition of the NMOS 6502, including the
// results for operands that are not valid BCD.
func nmosDecimalAdd(ai, bi uint8, carry bool) (uint8, bool) {
	lo := int(ai&0x0f) + int(bi&0x0f)
	if carry {
		lo++
	}
	if lo >= 0x0a {
		lo = ((lo + 0x06) & 0x0f) + 0x10
	}
	s := int(ai&0xf0) + int(bi&0xf0) + lo
	if s >= 0xa0 {
		s += 0x60
	}
	return uint8(s), s >= 0x100
}

// nmosDecimalSubtract is the decimal subtraction of the NMOS 6502. the carry
// out is the same as for binary subtraction.
func nmosDecimalSubtract(ai, bi uint8, carry bool) (uint8, bool) {
	borrow := 1
	if carry {
		borrow = 0
	}
	lo := int(ai&0x0f) - int(bi&0x0f) - borrow
	if lo < 0 {
		lo = ((lo - 0x06) & 0x0f) - 0x10
	}
	s := int(ai&0xf0) - int(bi&0xf0) + lo
	if s < 0 {
		s -= 0x60
	}
	return uint8(s), int(ai)-int(bi)-borrow >= 0
}

func TestALUDecimalAddAllOperands(t *testing.T) {
	a := newTestALU(false, false)
	a.selectOp(opSUM)
	a.cmd.NotDAA = logic.Zero

	for ai := 0; ai <= 0xff; ai++ {
		for bi := 0; bi <= 0xff; bi++ {
			for _, carry := range []bool{false, true} {
				r, c := nmosDecimalAdd(uint8(ai), uint8(bi), carry)
				a.phi2(uint8(ai), uint8(bi), carry)
				id := fmt.Sprintf("%02x+%02x %v", ai, bi, carry)
				test.ExpectEquality(t, a.acr(), sig(c), id)
				if !test.ExpectEquality(t, a.phi1(), r, id) {
					return
				}
			}
		}
	}
}

func TestALUDecimalSubtractAllOperands(t *testing.T) {
	a := newTestALU(false, false)
	a.selectOp(opSUM)
	a.cmd.NotDSA = logic.Zero

	for ai := 0; ai <= 0xff; ai++ {
		for bi := 0; bi <= 0xff; bi++ {
			for _, carry := range []bool{false, true} {
				r, c := nmosDecimalSubtract(uint8(ai), uint8(bi), carry)
				a.phi2(uint8(ai), ^uint8(bi), carry)
				id := fmt.Sprintf("%02x-%02x %v", ai, bi, carry)
				test.ExpectEquality(t, a.acr(), sig(c), id)
				if !test.ExpectEquality(t, a.phi1(), r, id) {
					return
				}
			}
		}
	}
}

func TestALUNoOperation(t *testing.T) {
	for _, accelerated := range []bool{false, true} {
		a := newTestALU(true, accelerated)
		a.selectOp(opSUM)
		a.phi2(0x12, 0x34, false)
		test.ExpectEquality(t, ^a.nADD, uint8(0x46))

		// result latch keeps its value when no operation is selected
		a.cmd.SUMS = logic.Zero
		a.phi2(0xff, 0xff, true)
		test.ExpectEquality(t, ^a.nADD, uint8(0x46))
	}
}

func TestALULoad(t *testing.T) {
	a := newTestALU(true, false)
	a.buses.SB.Write(0x3c)
	a.buses.DB.Write(0x0f)
	a.buses.ADL.Write(0xa5)

	a.cmd.SBADD = logic.One
	a.cmd.NDBADD = logic.One
	a.load()
	test.ExpectEquality(t, a.ai, uint8(0x3c))
	test.ExpectEquality(t, a.bi, uint8(0xf0))

	a.cmd.SBADD = logic.Zero
	a.cmd.NDBADD = logic.Zero
	a.cmd.ZADD = logic.One
	a.cmd.ADLADD = logic.One
	a.load()
	test.ExpectEquality(t, a.ai, uint8(0x00))
	test.ExpectEquality(t, a.bi, uint8(0xa5))

	// SB is grounded when both SB/ADD and 0/ADD are active
	a.cmd.SBADD = logic.One
	a.load()
	test.ExpectEquality(t, a.buses.SB.Value, uint8(0x00))
	test.ExpectEquality(t, a.ai, uint8(0x00))
}

func TestBusMux(t *testing.T) {
	a := newTestALU(true, false)
	a.cmd.SBDB = logic.One

	// undriven DB takes the value of SB
	a.buses.precharge()
	a.buses.clean()
	a.buses.SB.Write(0x81)
	a.busMux()
	test.ExpectEquality(t, a.buses.DB.Value, uint8(0x81))
	test.ExpectEquality(t, a.buses.DB.Dirty, true)

	// undriven SB takes the value of DB
	a.buses.precharge()
	a.buses.clean()
	a.buses.DB.Write(0x42)
	a.busMux()
	test.ExpectEquality(t, a.buses.SB.Value, uint8(0x42))

	// both driven resolve as wired-AND
	a.buses.precharge()
	a.buses.clean()
	a.buses.SB.Write(0xf0)
	a.buses.DB.Write(0x3c)
	a.busMux()
	test.ExpectEquality(t, a.buses.SB.Value, uint8(0x30))
	test.ExpectEquality(t, a.buses.DB.Value, uint8(0x30))

	// neither driven leaves the precharged value
	a.buses.precharge()
	a.buses.clean()
	a.busMux()
	test.ExpectEquality(t, a.buses.SB.Value, uint8(0xff))
	test.ExpectEquality(t, a.buses.SB.Dirty, false)
}

func TestStoreADD(t *testing.T) {
	a := newTestALU(true, false)
	a.nADD = ^uint8(0x5a)

	a.buses.precharge()
	a.buses.clean()
	a.buses.SB.Value = 0x80
	a.cmd.ADDSB06 = logic.One
	a.storeADD()
	test.ExpectEquality(t, a.buses.SB.Value, uint8(0xda))

	a.cmd.ADDSB06 = logic.Zero
	a.cmd.ADDSB7 = logic.One
	a.buses.SB.Value = 0xff
	a.storeADD()
	test.ExpectEquality(t, a.buses.SB.Value, uint8(0x7f))

	a.cmd.ADDSB7 = logic.Zero
	a.cmd.ADDADL = logic.One
	a.buses.ADL.Write(0x0f)
	a.storeADD()
	test.ExpectEquality(t, a.buses.ADL.Value, uint8(0x0a))
}
