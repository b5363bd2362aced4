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
	"strings"

	"github.com/famisim/famisim/hardware/cpu/decoder"
	"github.com/famisim/famisim/hardware/logic"
)

// the functions in this file allow the internal state of the core to be
// inspected and altered between calls to Step(). none of them advance the
// simulation.

// A returns the accumulator.
func (c *Core) A() uint8 {
	return c.alu.ac
}

// SetA sets the accumulator.
func (c *Core) SetA(v uint8) {
	c.alu.ac = v
}

// X returns the X register.
func (c *Core) X() uint8 {
	return c.regs.x
}

// SetX sets the X register.
func (c *Core) SetX(v uint8) {
	c.regs.x = v
}

// Y returns the Y register.
func (c *Core) Y() uint8 {
	return c.regs.y
}

// SetY sets the Y register.
func (c *Core) SetY(v uint8) {
	c.regs.y = v
}

// S returns the stack pointer.
func (c *Core) S() uint8 {
	return c.regs.getS()
}

// SetS sets the stack pointer.
func (c *Core) SetS(v uint8) {
	c.regs.setS(v)
}

// Flags bits in the order of the status register.
const (
	FlagC uint8 = 1 << iota
	FlagZ
	FlagI
	FlagD
	FlagB
	FlagUnused
	FlagV
	FlagN
)

// P returns the status register as it would be pushed to the stack by PHP.
func (c *Core) P() uint8 {
	f := &c.random.flags
	p := FlagUnused
	p |= not(f.notC()).Bit() << 0
	p |= not(f.notZ()).Bit() << 1
	p |= not(f.notI(c.w.BRK6E)).Bit() << 2
	p |= not(f.notD()).Bit() << 3
	p |= c.brk.bOut(c.w.BRK6E).Bit() << 4
	p |= not(f.notV()).Bit() << 6
	p |= not(f.notN()).Bit() << 7
	return p
}

// SetFlags sets the C, Z, I, D, V and N flags from a value in the layout of
// the status register. the B flag is not a stored flag and is ignored.
func (c *Core) SetFlags(p uint8) {
	f := &c.random.flags
	f.cLatch1.Set(sig(p&FlagC != 0), logic.One)
	f.zLatch1.Set(sig(p&FlagZ != 0), logic.One)
	f.iLatch1.Set(sig(p&FlagI != 0), logic.One)
	f.dLatch1.Set(sig(p&FlagD != 0), logic.One)
	f.vLatch1.Set(sig(p&FlagV != 0), logic.One)
	f.nLatch1.Set(sig(p&FlagN != 0), logic.One)
}

// PC returns the output stage of the program counter.
func (c *Core) PC() uint16 {
	return uint16(c.pc.getPCH())<<8 | uint16(c.pc.getPCL())
}

// PCL returns the low half of the output stage of the program counter.
func (c *Core) PCL() uint8 {
	return c.pc.getPCL()
}

// SetPCL sets the low half of the output stage of the program counter.
func (c *Core) SetPCL(v uint8) {
	c.pc.setPCL(v)
}

// PCH returns the high half of the output stage of the program counter.
func (c *Core) PCH() uint8 {
	return c.pc.getPCH()
}

// SetPCH sets the high half of the output stage of the program counter.
func (c *Core) SetPCH(v uint8) {
	c.pc.setPCH(v)
}

// PCLS returns the low half of the input stage of the program counter.
func (c *Core) PCLS() uint8 {
	return c.pc.getPCLS()
}

// SetPCLS sets the low half of the input stage of the program counter.
func (c *Core) SetPCLS(v uint8) {
	c.pc.setPCLS(v)
}

// PCHS returns the high half of the input stage of the program counter.
func (c *Core) PCHS() uint8 {
	return c.pc.getPCHS()
}

// SetPCHS sets the high half of the input stage of the program counter.
func (c *Core) SetPCHS(v uint8) {
	c.pc.setPCHS(v)
}

// IR returns the opcode in the instruction register.
func (c *Core) IR() uint8 {
	return c.ir.out
}

// SetIR sets the opcode in the instruction register.
func (c *Core) SetIR(v uint8) {
	c.ir.out = v
	c.ir.latch = ^v
}

// AI returns the A input of the ALU.
func (c *Core) AI() uint8 {
	return c.alu.ai
}

// SetAI sets the A input of the ALU.
func (c *Core) SetAI(v uint8) {
	c.alu.ai = v
}

// BI returns the B input of the ALU.
func (c *Core) BI() uint8 {
	return c.alu.bi
}

// SetBI sets the B input of the ALU.
func (c *Core) SetBI(v uint8) {
	c.alu.bi = v
}

// ADD returns the ALU result latch.
func (c *Core) ADD() uint8 {
	return ^c.alu.nADD
}

// SetADD sets the ALU result latch.
func (c *Core) SetADD(v uint8) {
	c.alu.nADD = ^v
}

// ACR returns the carry out of the ALU.
func (c *Core) ACR() logic.Signal {
	return c.alu.acr()
}

// AVR returns the overflow out of the ALU.
func (c *Core) AVR() logic.Signal {
	return c.alu.avr()
}

// DL returns the data latch.
func (c *Core) DL() uint8 {
	return ^c.dataBus.dl
}

// SetDL sets the data latch.
func (c *Core) SetDL(v uint8) {
	c.dataBus.dl = ^v
}

// DOR returns the data output register.
func (c *Core) DOR() uint8 {
	return ^c.dataBus.dor
}

// Buses returns a copy of the internal buses as they were left by the last
// half-cycle.
func (c *Core) Buses() Buses {
	return c.buses
}

// Commands returns a copy of the commands issued by the random logic in the
// last half-cycle.
func (c *Core) Commands() Commands {
	return c.cmd
}

// Wires returns a copy of the internal wires.
func (c *Core) Wires() Wires {
	return c.w
}

// DecoderOut returns a copy of the decoder output lines.
func (c *Core) DecoderOut() decoder.Lines {
	return c.d
}

func (c *Core) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%04x A=%02x X=%02x Y=%02x S=%02x P=%s IR=%02x",
		c.PC(), c.A(), c.X(), c.Y(), c.S(), statusString(c.P()), c.IR()))
	if c.disp.t1() == logic.One {
		s.WriteString(" T1")
	}
	if c.w.T0 == logic.One {
		s.WriteString(" T0")
	}
	for i, t := range []logic.Signal{c.w.NotT2, c.w.NotT3, c.w.NotT4, c.w.NotT5} {
		if t == logic.Zero {
			s.WriteString(fmt.Sprintf(" T%d", i+2))
		}
	}
	return s.String()
}

// statusString uses upper case for set flags and lower case for clear flags.
func statusString(p uint8) string {
	const labels = "czidb-vn"
	var s [8]byte
	for i := 0; i < 8; i++ {
		l := labels[i]
		if p&(1<<i) != 0 && l != '-' {
			l -= 'a' - 'A'
		}
		s[7-i] = l
	}
	return string(s[:])
}
