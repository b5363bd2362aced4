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

	"github.com/famisim/famisim/hardware/cpu/decoder"
	"github.com/famisim/famisim/hardware/logic"
	"github.com/famisim/famisim/logger"
)

// Config selects the optional parts of the simulation.
type Config struct {
	// Accelerated replaces the bit level forms of the extra cycle counter,
	// the program counter and the ALU with integer forms. the ALU is only
	// replaced if DecimalDisabled is also true.
	Accelerated bool

	// DecimalDisabled removes the decimal correction circuitry, as found in
	// the 2A03 variant of the CPU.
	DecimalDisabled bool
}

func (cfg Config) String() string {
	return fmt.Sprintf("accelerated=%v decimal=%v", cfg.Accelerated, !cfg.DecimalDisabled)
}

// InputPads are the input pins of the CPU. interrupt and reset pads are
// active low.
type InputPads struct {
	NotNMI logic.Signal
	NotIRQ logic.Signal
	NotRES logic.Signal
	PHI0   logic.Signal
	RDY    logic.Signal
	SO     logic.Signal
}

// OutputPads are the output pins of the CPU, other than the address and data
// buses.
type OutputPads struct {
	PHI1 logic.Signal
	PHI2 logic.Signal
	RnW  logic.Signal
	SYNC logic.Signal
}

// Core is the 6502 core at the level of its latches and buses. it is advanced
// one half-cycle at a time with the Step() function.
type Core struct {
	cfg Config

	w     Wires
	cmd   Commands
	buses Buses
	d     decoder.Lines

	dec *decoder.Decoder

	prdyLatch1 logic.Latch
	prdyLatch2 logic.Latch
	rwLatch    logic.Latch

	pads    interruptPads
	disp    dispatcher
	pd      predecode
	ir      instructionRegister
	ext     extraCounter
	brk     interrupts
	random  randomLogic
	alu     alu
	regs    regs
	pc      programCounter
	addrBus addressBus
	dataBus dataBus
}

// NewCore is the preferred method of initialisation for the Core type. the
// core starts in the power-up state, with every latch low, and must be
// reset by holding the RES pad low for several cycles.
func NewCore(cfg Config) *Core {
	c := &Core{
		cfg: cfg,
		dec: decoder.Default(),
	}

	b := bundle{w: &c.w, cmd: &c.cmd, d: &c.d}

	c.pads = interruptPads{w: &c.w}
	c.pd = predecode{w: &c.w}
	c.ir = instructionRegister{w: &c.w, pd: &c.pd}
	c.ext = extraCounter{w: &c.w, accelerated: cfg.Accelerated}
	c.brk = interrupts{w: &c.w, cmd: &c.cmd, d: &c.d}
	c.alu = alu{
		w:               &c.w,
		cmd:             &c.cmd,
		buses:           &c.buses,
		decimalDisabled: cfg.DecimalDisabled,
		accelerated:     cfg.Accelerated,
		nADD:            0xff,
	}
	c.disp = dispatcher{w: &c.w, d: &c.d, brk: &c.brk, alu: &c.alu}
	c.regs = regs{w: &c.w, cmd: &c.cmd, buses: &c.buses}
	c.pc = programCounter{w: &c.w, cmd: &c.cmd, buses: &c.buses, accelerated: cfg.Accelerated}
	c.addrBus = addressBus{w: &c.w, cmd: &c.cmd, buses: &c.buses}
	c.dataBus = dataBus{w: &c.w, cmd: &c.cmd, buses: &c.buses}

	c.random = randomLogic{
		bundle: b,
		ir:     &c.ir,
		disp:   &c.disp,
		tables: memoTables(),
	}
	c.random.regsControl.bundle = b
	c.random.aluControl.bundle = b
	c.random.pcControl.bundle = b
	c.random.busControl.bundle = b
	c.random.flagsControl.bundle = b
	c.random.branchLogic.bundle = b
	c.random.branchLogic.buses = &c.buses
	c.random.flags = flags{w: &c.w, cmd: &c.cmd, buses: &c.buses, alu: &c.alu}

	logger.Logf(logger.Allow, "cpu", "new core: %s", cfg)

	return c
}

// Config returns the configuration the core was created with.
func (c *Core) Config() Config {
	return c.cfg
}

// Step advances the core by one half-cycle. the value of PHI0 in the input
// pads decides which half.
//
// the address bus is updated on every call. the data bus is read when the
// core is reading and written to when the core is writing.
func (c *Core) Step(in InputPads, addr *uint16, data *uint8) OutputPads {
	// precharge happens during PHI2. ground wins on the precharged buses
	if in.PHI0 == logic.One {
		c.buses.precharge()
	}
	c.buses.clean()

	// the two halves are each simulated twice so that the latches settle
	c.top(in, *data)
	c.bottom(addr, data)
	c.top(in, *data)
	c.bottom(addr, data)

	return OutputPads{
		PHI1: c.w.PHI1,
		PHI2: c.w.PHI2,
		RnW:  c.rwLatch.NGet(),
		SYNC: c.disp.t1(),
	}
}

// top is the control half of the core: the pads, dispatcher, decoder and
// random logic.
func (c *Core) top(in InputPads, data uint8) {
	w := &c.w

	w.NotNMI = in.NotNMI
	w.NotIRQ = in.NotIRQ
	w.NotRES = in.NotRES
	w.PHI0 = in.PHI0
	w.RDY = in.RDY
	w.SO = in.SO

	w.PHI1 = not(w.PHI0)
	w.PHI2 = w.PHI0

	c.prdyLatch1.Set(not(w.RDY), w.PHI2)
	c.prdyLatch2.Set(c.prdyLatch1.NGet(), w.PHI1)
	w.NotPRDY = c.prdyLatch2.NGet()

	c.pads.sim()

	c.disp.simBeforeDecoder()
	c.pd.sim(data)
	c.ir.sim()
	c.ext.sim(c.disp.t1(), c.disp.tres2())

	w.NotIR5 = not(bit(c.ir.out, 5))
	c.dec.Decode(decoder.Pack(c.ir.out, w.NotT0, w.NotT1X, w.NotT2, w.NotT3, w.NotT4, w.NotT5), &c.d)

	c.brk.simBeforeRandom()
	c.disp.simBeforeRandomLogic()
	c.random.sim()
	c.brk.simAfterRandom(c.random.flags.notI(w.BRK6E))
	c.disp.simAfterRandomLogic()
}

// bottom is the execution half of the core. values are moved between the
// registers and the buses in the order of the schematic.
func (c *Core) bottom(addr *uint16, data *uint8) {
	c.dataBus.simGetExternal(data)

	c.regs.storeSB()
	c.alu.storeADD()
	c.alu.storeAC()
	c.random.flags.simStore(c.brk.bOut(c.w.BRK6E))
	c.regs.storeOldS()

	c.pc.sim()
	c.pc.store()

	c.alu.busMux()
	c.addrBus.constGen()

	c.alu.load()
	c.alu.sim()

	c.random.flags.simLoad()
	c.regs.loadSB()
	c.pc.load()

	c.dataBus.simSetExternal(data)
	c.addrBus.output(addr)

	c.rwLatch.Set(c.w.WR, c.w.PHI1)
}
