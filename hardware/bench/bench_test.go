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

package bench_test

import (
	"fmt"
	"testing"

	"github.com/famisim/famisim/curated"
	"github.com/famisim/famisim/hardware/bench"
	"github.com/famisim/famisim/hardware/cpu"
	"github.com/famisim/famisim/hardware/logic"
	"github.com/famisim/famisim/logger"
	"github.com/famisim/famisim/test"
)

var configs = []cpu.Config{
	{},
	{Accelerated: true},
	{DecimalDisabled: true},
	{Accelerated: true, DecimalDisabled: true},
}

const origin = uint16(0x8000)

func newBench(t *testing.T, cfg cpu.Config, program []uint8) *bench.Bench {
	t.Helper()
	b := bench.NewBench(cfg)
	test.DemandSuccess(t, b.Load(origin, program))
	b.SetVector(bench.ResetVector, origin)
	return b
}

type access struct {
	address uint16
	rnw     logic.Signal
}

// the pins at the end of every PHI2 half-cycle.
func recordAccesses(b *bench.Bench) *[]access {
	var acc []access
	b.AddObserver(func(ps bench.PinState) {
		if ps.PHI2 == logic.One {
			acc = append(acc, access{address: ps.Address, rnw: ps.RnW})
		}
	})
	return &acc
}

func TestLoad(t *testing.T) {
	b := bench.NewBench(cpu.Config{})

	err := b.Load(0xfffe, []uint8{0x01, 0x02, 0x03})
	test.ExpectSuccess(t, curated.Is(err, bench.LoadError))

	err = b.Load(0x0000, nil)
	test.ExpectSuccess(t, curated.Is(err, bench.LoadError))

	err = b.LoadFile(0x0000, "this file does not exist")
	test.ExpectSuccess(t, curated.Is(err, bench.LoadError))

	test.ExpectSuccess(t, b.Load(0xfffe, []uint8{0x01, 0x02}))
	test.ExpectEquality(t, b.RAM[0xffff], uint8(0x02))

	b.SetVector(bench.NMIVector, 0x1234)
	test.ExpectEquality(t, b.RAM[0xfffa], uint8(0x34))
	test.ExpectEquality(t, b.RAM[0xfffb], uint8(0x12))
}

// the reset sequence starts with the fetch of a BRK and takes seven cycles
// before the first opcode is fetched from the address in the reset vector.
func TestReset(t *testing.T) {
	for _, cfg := range configs {
		b := newBench(t, cfg, []uint8{0xea, 0xea})
		b.Reset()

		acc := recordAccesses(b)

		n, err := b.RunUntilSync(10)
		test.DemandSuccess(t, err, cfg)
		test.ExpectEquality(t, n, 3, cfg)

		n, err = b.RunUntilSync(10)
		test.DemandSuccess(t, err, cfg)
		test.ExpectEquality(t, n, 7, cfg)
		test.ExpectEquality(t, b.Pins().Address, origin, cfg)
		test.ExpectEquality(t, b.CPU.S(), uint8(0xfd), cfg)
		test.ExpectEquality(t, b.CPU.P()&cpu.FlagI, cpu.FlagI, cfg)

		// the stack is read rather than written during reset
		expected := []access{
			{0x00ff, logic.One},
			{0x00ff, logic.One},
			{0x00ff, logic.One},
			{0x00ff, logic.One},
			{0x0100, logic.One},
			{0x01ff, logic.One},
			{0x01fe, logic.One},
			{0xfffc, logic.One},
			{0xfffd, logic.One},
			{0x8000, logic.One},
		}
		test.ExpectEquality(t, len(*acc), len(expected), cfg)
		for i := range expected {
			if i < len(*acc) {
				test.ExpectEquality(t, (*acc)[i], expected[i], cfg, i)
			}
		}
	}
}

func TestLoadImmediate(t *testing.T) {
	for _, cfg := range configs {
		b := newBench(t, cfg, []uint8{0xa9, 0x42, 0xea, 0xea})
		b.Reset()

		_, err := b.RunUntilSync(10)
		test.DemandSuccess(t, err, cfg)
		_, err = b.RunUntilSync(10)
		test.DemandSuccess(t, err, cfg)

		// LDA #$42 takes two cycles
		n, err := b.RunUntilSync(10)
		test.DemandSuccess(t, err, cfg)
		test.ExpectEquality(t, n, 2, cfg)
		test.ExpectEquality(t, b.Pins().Address, origin+2, cfg)
		test.ExpectEquality(t, b.CPU.A(), uint8(0x42), cfg)
		test.ExpectEquality(t, b.CPU.P()&cpu.FlagZ, 0, cfg)
		test.ExpectEquality(t, b.CPU.P()&cpu.FlagN, 0, cfg)
	}
}

func TestAddWithCarry(t *testing.T) {
	for _, cfg := range configs {
		// LDA #$42; LDA #$FF; CLC; ADC #$01; NOP; NOP
		b := newBench(t, cfg, []uint8{0xa9, 0x42, 0xa9, 0xff, 0x18, 0x69, 0x01, 0xea, 0xea, 0xea})
		b.Reset()

		var syncs []uint16
		for len(syncs) < 7 {
			_, err := b.RunUntilSync(10)
			test.DemandSuccess(t, err, cfg)
			syncs = append(syncs, b.Pins().Address)
		}
		test.ExpectEquality(t, fmt.Sprintf("%04x", syncs), "[00ff 8000 8002 8004 8005 8007 8008]", cfg)

		test.ExpectEquality(t, b.CPU.A(), uint8(0x00), cfg)
		test.ExpectEquality(t, b.CPU.P(), uint8(0x37), cfg)
		test.ExpectEquality(t, b.CPU.P()&cpu.FlagC, cpu.FlagC, cfg)
		test.ExpectEquality(t, b.CPU.P()&cpu.FlagZ, cpu.FlagZ, cfg)
		test.ExpectEquality(t, b.CPU.P()&cpu.FlagV, 0, cfg)
	}
}

// a program exercising stack, branch, subroutine, decimal, indexed and
// read-modify-write instructions. results are stored to zero page.
func TestProgram(t *testing.T) {
	program := []uint8{
		0xa9, 0xff,       // LDA #$FF
		0x18,             // CLC
		0x69, 0x01,       // ADC #$01
		0x85, 0x10,       // STA $10
		0x08,             // PHP
		0x68,             // PLA
		0x85, 0x11,       // STA $11
		0xa2, 0x05,       // LDX #$05
		0xca,             // DEX
		0xd0, 0xfd,       // BNE -3
		0x86, 0x12,       // STX $12
		0x20, 0x40, 0x80, // JSR $8040
		0x85, 0x13,       // STA $13
		0xf8,             // SED
		0xa9, 0x19,       // LDA #$19
		0x18,             // CLC
		0x69, 0x28,       // ADC #$28
		0x85, 0x14,       // STA $14
		0x38,             // SEC
		0xa9, 0x50,       // LDA #$50
		0xe9, 0x01,       // SBC #$01
		0x85, 0x15,       // STA $15
		0xd8,             // CLD
		0xa0, 0x07,       // LDY #$07
		0xb9, 0x00, 0x90, // LDA $9000,Y
		0x85, 0x16,       // STA $16
		0xa9, 0x81,       // LDA #$81
		0x4a,             // LSR A
		0x85, 0x17,       // STA $17
		0x2a,             // ROL A
		0x85, 0x18,       // STA $18
		0xe6, 0x18,       // INC $18
		0x4c, 0x38, 0x80, // JMP $8038
	}
	subroutine := []uint8{
		0xa9, 0x77, // LDA #$77
		0x60,       // RTS
	}

	for _, cfg := range configs {
		b := newBench(t, cfg, program)
		test.DemandSuccess(t, b.Load(0x8040, subroutine))
		b.RAM[0x9007] = 0x5a

		b.Reset()

		// RnW and SYNC are never undefined once the core has been reset
		var undefined int
		b.AddObserver(func(ps bench.PinState) {
			if !ps.RnW.Definite() || !ps.SYNC.Definite() {
				undefined++
			}
		})

		b.Run(300)
		test.ExpectEquality(t, undefined, 0, cfg)

		expected := "00 37 00 77 47 49 5a 40 82"
		if cfg.DecimalDisabled {
			expected = "00 37 00 77 41 4f 5a 40 82"
		}
		test.ExpectEquality(t, fmt.Sprintf("% x", b.RAM[0x10:0x19]), expected, cfg)
		test.ExpectEquality(t, b.CPU.S(), uint8(0xfd), cfg)

		// return address pushed by JSR is the last byte of the instruction
		test.ExpectEquality(t, b.RAM[0x01fd], uint8(0x80), cfg)
		test.ExpectEquality(t, b.RAM[0x01fc], uint8(0x14), cfg)
	}
}

func TestInterrupts(t *testing.T) {
	for _, cfg := range configs {
		// CLI; INX; JMP $8001
		b := newBench(t, cfg, []uint8{0x58, 0xe8, 0x4c, 0x01, 0x80})
		b.SetVector(bench.IRQVector, 0x9000)
		b.SetVector(bench.NMIVector, 0x9100)

		// INC $20; RTI
		test.DemandSuccess(t, b.Load(0x9000, []uint8{0xe6, 0x20, 0x40}))

		// INC $21; RTI
		test.DemandSuccess(t, b.Load(0x9100, []uint8{0xe6, 0x21, 0x40}))

		b.Reset()
		b.Run(30)

		// IRQ is level sensitive. it is held long enough for the handler to
		// start and then released before the handler returns
		b.SetIRQ(true)
		b.Run(12)
		b.SetIRQ(false)
		b.Run(30)
		test.ExpectEquality(t, b.RAM[0x20], uint8(0x01), cfg)
		test.ExpectEquality(t, b.RAM[0x21], uint8(0x00), cfg)
		test.ExpectEquality(t, b.CPU.S(), uint8(0xfd), cfg)

		// NMI is edge sensitive
		b.SetNMI(true)
		b.Run(3)
		b.SetNMI(false)
		b.Run(30)
		test.ExpectEquality(t, b.RAM[0x20], uint8(0x01), cfg)
		test.ExpectEquality(t, b.RAM[0x21], uint8(0x01), cfg)
		test.ExpectEquality(t, b.CPU.S(), uint8(0xfd), cfg)
	}
}

// a read cycle is repeated for as long as RDY is low. writes are not
// affected.
func TestRDY(t *testing.T) {
	// LDA #$11; LDX #$22; LDY #$33; STA $10; STX $11; STY $12
	program := []uint8{0xa9, 0x11, 0xa2, 0x22, 0xa0, 0x33, 0x85, 0x10, 0x86, 0x11, 0x84, 0x12, 0xea, 0xea, 0xea, 0xea}

	for _, cfg := range configs {
		b := newBench(t, cfg, program)
		b.Reset()

		// stop at the fetch of LDX
		for i := 0; i < 3; i++ {
			_, err := b.RunUntilSync(10)
			test.DemandSuccess(t, err, cfg)
		}
		test.ExpectEquality(t, b.Pins().Address, origin+2, cfg)

		acc := recordAccesses(b)
		b.SetRDY(false)
		b.Run(5)
		b.SetRDY(true)
		b.Run(14)

		var trace []string
		for _, a := range *acc {
			rw := "w"
			if a.rnw == logic.One {
				rw = "r"
			}
			trace = append(trace, fmt.Sprintf("%04x%s", a.address, rw))
		}
		test.ExpectEquality(t, fmt.Sprintf("%s", trace),
			"[8003r 8003r 8003r 8003r 8003r 8003r 8004r 8005r 8006r 8007r 0010w 8008r 8009r 0011w 800ar 800br 0012w 800cr 800dr]", cfg)

		test.ExpectEquality(t, b.RAM[0x10], uint8(0x11), cfg)
		test.ExpectEquality(t, b.RAM[0x11], uint8(0x22), cfg)
		test.ExpectEquality(t, b.RAM[0x12], uint8(0x33), cfg)
	}
}

// a falling edge on SO sets the overflow flag. the flag is inspected by
// pushing the status register to the stack.
func TestSO(t *testing.T) {
	// CLV; NOP x 8; PHP; NOP x 16
	program := []uint8{0xb8}
	for i := 0; i < 8; i++ {
		program = append(program, 0xea)
	}
	program = append(program, 0x08)
	for i := 0; i < 16; i++ {
		program = append(program, 0xea)
	}

	for _, cfg := range configs {
		for _, pulse := range []bool{false, true} {
			b := newBench(t, cfg, program)
			b.Reset()

			for i := 0; i < 6; i++ {
				_, err := b.RunUntilSync(10)
				test.DemandSuccess(t, err, cfg, pulse)
			}

			b.SetSO(!pulse)
			b.Run(2)
			b.SetSO(true)
			b.Run(16)

			// B and the unused bit are always set in the pushed value
			if pulse {
				test.ExpectEquality(t, b.RAM[0x01fd], uint8(0x76), cfg, pulse)
				test.ExpectEquality(t, b.RAM[0x01fd]&cpu.FlagV, cpu.FlagV, cfg, pulse)
			} else {
				test.ExpectEquality(t, b.RAM[0x01fd], uint8(0x36), cfg, pulse)
			}
			test.ExpectEquality(t, b.Pins().Address, uint16(0x800d), cfg, pulse)
		}
	}
}

// the accelerated forms of the units produce the same pin activity as the
// bit level forms.
func TestAcceleratedEquivalence(t *testing.T) {
	program := []uint8{0xa2, 0x10, 0xca, 0x8a, 0x69, 0x13, 0x95, 0x40, 0xd0, 0xf8, 0x4c, 0x0a, 0x80}

	for _, dd := range []bool{false, true} {
		a := newBench(t, cpu.Config{DecimalDisabled: dd}, program)
		b := newBench(t, cpu.Config{DecimalDisabled: dd, Accelerated: true}, program)
		a.Reset()
		b.Reset()

		for i := 0; i < 400; i++ {
			a.HalfStep()
			b.HalfStep()
			pa := a.Pins()
			pb := b.Pins()
			if !test.ExpectEquality(t, pa, pb, dd, i) {
				return
			}
		}

		test.ExpectEquality(t, a.RAM, b.RAM, dd)
	}
}

func TestNoSync(t *testing.T) {
	// JAM halts the core without a further opcode fetch
	b := newBench(t, cpu.Config{}, []uint8{0x02})
	b.Reset()
	_, err := b.RunUntilSync(10)
	test.DemandSuccess(t, err)
	_, err = b.RunUntilSync(10)
	test.DemandSuccess(t, err)

	_, err = b.RunUntilSync(20)
	test.ExpectSuccess(t, curated.Is(err, bench.NoSync))
}

func TestCycles(t *testing.T) {
	b := newBench(t, cpu.Config{}, []uint8{0xea})
	b.SetResetCycles(0)
	b.Reset()
	test.ExpectEquality(t, b.Cycles(), uint64(2))
	b.HalfStep()
	test.ExpectEquality(t, b.Cycles(), uint64(2))
	b.HalfStep()
	test.ExpectEquality(t, b.Cycles(), uint64(3))
}

func TestLogPermission(t *testing.T) {
	benchEntries := func() []string {
		var d []string
		logger.BorrowLog(func(entries []logger.Entry) {
			for _, e := range entries {
				if e.Tag == "bench" {
					d = append(d, e.Detail)
				}
			}
		})
		return d
	}

	b := newBench(t, cpu.Config{}, []uint8{0xea})
	logger.Clear()

	b.SetLogPermission(logger.Deny)
	b.Reset()
	test.ExpectEquality(t, len(benchEntries()), 0)

	b.SetLogPermission(logger.Allow)
	b.Reset()
	d := benchEntries()
	test.DemandEquality(t, len(d), 1)
	test.ExpectEquality(t, d[0], "reset held for 8 cycles")
}
