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

package bench

import (
	"os"

	"github.com/famisim/famisim/curated"
	"github.com/famisim/famisim/hardware/cpu"
	"github.com/famisim/famisim/hardware/logic"
	"github.com/famisim/famisim/hardware/preferences"
	"github.com/famisim/famisim/logger"
)

// Addresses of the interrupt vectors.
const (
	NMIVector   = uint16(0xfffa)
	ResetVector = uint16(0xfffc)
	IRQVector   = uint16(0xfffe)
)

// MemorySize is the size of the bench RAM.
const MemorySize = 0x10000

// DefaultResetCycles is the number of full cycles the RES pad is held low by
// Reset() unless changed with SetResetCycles().
const DefaultResetCycles = 8

// Sentinal errors.
const (
	LoadError = "bench: load: %v"
	NoSync    = "bench: no SYNC after %d cycles"
)

// PinState is the state of the CPU pins at the end of a half-cycle.
type PinState struct {
	HalfCycle uint64
	Address   uint16
	Data      uint8
	PHI2      logic.Signal
	RnW       logic.Signal
	SYNC      logic.Signal
}

// Observer is called after every half-cycle.
type Observer func(PinState)

// Bench connects a CPU core to a flat RAM.
type Bench struct {
	CPU *cpu.Core
	RAM [MemorySize]uint8

	pads cpu.InputPads
	out  cpu.OutputPads
	addr uint16
	data uint8

	halfCycles  uint64
	resetCycles int

	observers []Observer

	// permission for the entries the bench adds to the log
	perm logger.Permission
}

// NewBench is the preferred method of initialisation for the Bench type.
func NewBench(cfg cpu.Config) *Bench {
	b := &Bench{
		CPU:         cpu.NewCore(cfg),
		resetCycles: DefaultResetCycles,
		perm:        logger.Allow,
	}

	// the first call to HalfStep() is PHI1
	b.pads = cpu.InputPads{
		NotNMI: logic.One,
		NotIRQ: logic.One,
		NotRES: logic.One,
		PHI0:   logic.One,
		RDY:    logic.One,
		SO:     logic.One,
	}

	return b
}

// NewBenchFromPreferences creates a bench with the CPU configuration and reset
// length taken from the hardware preferences.
func NewBenchFromPreferences(p *preferences.Preferences) *Bench {
	b := NewBench(p.Config())
	b.resetCycles = p.ResetCycles.Get().(int)
	return b
}

// SetResetCycles changes the number of full cycles the RES pad is held low.
// Values less than preferences.MinResetCycles are increased to that value.
func (b *Bench) SetResetCycles(n int) {
	if n < preferences.MinResetCycles {
		n = preferences.MinResetCycles
	}
	b.resetCycles = n
}

// SetLogPermission sets the permission used when the bench adds entries to the
// log. The default permission is logger.Allow.
func (b *Bench) SetLogPermission(perm logger.Permission) {
	b.perm = perm
}

// AddObserver adds a function to be called after every half-cycle.
func (b *Bench) AddObserver(o Observer) {
	b.observers = append(b.observers, o)
}

// Load copies data into RAM starting at the origin address.
func (b *Bench) Load(origin uint16, data []uint8) error {
	if len(data) == 0 {
		return curated.Errorf(LoadError, "no data")
	}
	if int(origin)+len(data) > MemorySize {
		return curated.Errorf(LoadError, "data does not fit in memory")
	}
	copy(b.RAM[origin:], data)
	logger.Logf(b.perm, "bench", "loaded %d bytes at $%04x", len(data), origin)
	return nil
}

// LoadFile copies the contents of the named file into RAM starting at the
// origin address.
func (b *Bench) LoadFile(origin uint16, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}
	return b.Load(origin, data)
}

// SetVector writes the address to the vector in little-endian order.
func (b *Bench) SetVector(vector uint16, address uint16) {
	b.RAM[vector] = uint8(address)
	b.RAM[vector+1] = uint8(address >> 8)
}

// SetIRQ asserts or releases the IRQ pad.
func (b *Bench) SetIRQ(asserted bool) {
	b.pads.NotIRQ = logic.FromBool(!asserted)
}

// SetNMI asserts or releases the NMI pad.
func (b *Bench) SetNMI(asserted bool) {
	b.pads.NotNMI = logic.FromBool(!asserted)
}

// SetRDY sets the RDY pad. The core stalls on read cycles when RDY is low.
func (b *Bench) SetRDY(ready bool) {
	b.pads.RDY = logic.FromBool(ready)
}

// SetSO sets the SO pad. The overflow flag is set on the falling edge.
func (b *Bench) SetSO(high bool) {
	b.pads.SO = logic.FromBool(high)
}

// Reset holds the RES pad low for the number of reset cycles. The reset
// sequence begins when the next instruction fetch would happen.
func (b *Bench) Reset() {
	b.pads.NotRES = logic.Zero
	b.Run(b.resetCycles)
	b.pads.NotRES = logic.One
	logger.Logf(b.perm, "bench", "reset held for %d cycles", b.resetCycles)
}

// HalfStep advances the CPU by one half-cycle. The RAM is read before a PHI2
// half-cycle when the CPU is reading and written to after a PHI2 half-cycle
// when the CPU is writing.
func (b *Bench) HalfStep() {
	b.pads.PHI0 = logic.Not(b.pads.PHI0)

	phi2 := b.pads.PHI0 == logic.One

	if phi2 && b.out.RnW == logic.One {
		b.data = b.RAM[b.addr]
	}

	b.out = b.CPU.Step(b.pads, &b.addr, &b.data)
	b.halfCycles++

	if phi2 && b.out.RnW == logic.Zero {
		b.RAM[b.addr] = b.data
	}

	if len(b.observers) > 0 {
		ps := b.Pins()
		for _, o := range b.observers {
			o(ps)
		}
	}
}

// Step advances the CPU by one full cycle. A full cycle is a PHI1 half-cycle
// followed by a PHI2 half-cycle.
func (b *Bench) Step() {
	b.HalfStep()
	b.HalfStep()
}

// Run advances the CPU by the number of full cycles.
func (b *Bench) Run(cycles int) {
	for i := 0; i < cycles; i++ {
		b.Step()
	}
}

// RunUntilSync advances the CPU one full cycle at a time until the SYNC pin
// is high at the end of the cycle, which is the fetch of the next opcode.
// Returns the number of cycles run.
func (b *Bench) RunUntilSync(limit int) (int, error) {
	for i := 1; i <= limit; i++ {
		b.Step()
		if b.out.SYNC == logic.One {
			return i, nil
		}
	}
	return limit, curated.Errorf(NoSync, limit)
}

// Pins returns the current state of the CPU pins.
func (b *Bench) Pins() PinState {
	return PinState{
		HalfCycle: b.halfCycles,
		Address:   b.addr,
		Data:      b.data,
		PHI2:      b.out.PHI2,
		RnW:       b.out.RnW,
		SYNC:      b.out.SYNC,
	}
}

// Cycles returns the number of full cycles since the bench was created.
func (b *Bench) Cycles() uint64 {
	return b.halfCycles / 2
}
