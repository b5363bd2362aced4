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

package cpu_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/famisim/famisim/hardware/bench"
	"github.com/famisim/famisim/hardware/cpu"
	"github.com/famisim/famisim/hardware/logic"
	"github.com/famisim/famisim/test"
)

func TestConfig(t *testing.T) {
	cfg := cpu.Config{Accelerated: true}
	c := cpu.NewCore(cfg)
	test.ExpectEquality(t, c.Config(), cfg)
	test.ExpectEquality(t, cfg.String(), "accelerated=true decimal=true")

	cfg = cpu.Config{DecimalDisabled: true}
	test.ExpectEquality(t, cfg.String(), "accelerated=false decimal=false")
}

func TestRegisters(t *testing.T) {
	c := cpu.NewCore(cpu.Config{})

	c.SetA(0x12)
	c.SetX(0x34)
	c.SetY(0x56)
	c.SetS(0x78)
	test.ExpectEquality(t, c.A(), uint8(0x12))
	test.ExpectEquality(t, c.X(), uint8(0x34))
	test.ExpectEquality(t, c.Y(), uint8(0x56))
	test.ExpectEquality(t, c.S(), uint8(0x78))

	c.SetPCL(0xcd)
	c.SetPCH(0xab)
	c.SetPCLS(0x01)
	c.SetPCHS(0x02)
	test.ExpectEquality(t, c.PC(), uint16(0xabcd))
	test.ExpectEquality(t, c.PCLS(), uint8(0x01))
	test.ExpectEquality(t, c.PCHS(), uint8(0x02))

	c.SetIR(0xa9)
	test.ExpectEquality(t, c.IR(), uint8(0xa9))

	c.SetAI(0x0f)
	c.SetBI(0xf0)
	c.SetADD(0x99)
	c.SetDL(0x42)
	test.ExpectEquality(t, c.AI(), uint8(0x0f))
	test.ExpectEquality(t, c.BI(), uint8(0xf0))
	test.ExpectEquality(t, c.ADD(), uint8(0x99))
	test.ExpectEquality(t, c.DL(), uint8(0x42))

	// the B flag is not stored and the unused bit is always set
	c.SetFlags(0xff)
	test.ExpectEquality(t, c.P()&^cpu.FlagB, uint8(0xef))
	c.SetFlags(0x00)
	test.ExpectEquality(t, c.P()&^cpu.FlagB, cpu.FlagUnused)
}

func TestString(t *testing.T) {
	for _, cfg := range []cpu.Config{{}, {Accelerated: true, DecimalDisabled: true}} {
		b := bench.NewBench(cfg)
		test.DemandSuccess(t, b.Load(0x8000, []uint8{0xa9, 0x42, 0xa2, 0x07, 0xea, 0xea}))
		b.SetVector(bench.ResetVector, 0x8000)
		b.Reset()

		// the reset sequence and LDA #$42
		b.Run(12)
		test.ExpectEquality(t, b.CPU.String(), "PC=8003 A=42 X=00 Y=00 S=fd P=nv-BdIzc IR=a9 T1", cfg)

		// fetch of the operand of LDX #$07
		b.Step()
		test.ExpectEquality(t, b.CPU.String(), "PC=8004 A=42 X=00 Y=00 S=fd P=nv-BdIzc IR=a2 T0 T2", cfg)

		b.Step()
		test.ExpectEquality(t, b.CPU.String(), "PC=8005 A=42 X=07 Y=00 S=fd P=nv-BdIzc IR=a2 T1", cfg)
	}
}

// the wires and commands of the core are the same whether or not the
// accelerated forms of the units are used.
func TestAcceleratedSnapshots(t *testing.T) {
	program := []uint8{0xa2, 0x10, 0xca, 0x8a, 0x69, 0x13, 0x95, 0x40, 0xd0, 0xf8, 0x4c, 0x0a, 0x80}

	var cores [2]*bench.Bench
	for i, cfg := range []cpu.Config{{DecimalDisabled: true}, {Accelerated: true, DecimalDisabled: true}} {
		cores[i] = bench.NewBench(cfg)
		test.DemandSuccess(t, cores[i].Load(0x8000, program))
		cores[i].SetVector(bench.ResetVector, 0x8000)
		cores[i].Reset()
	}

	for i := 0; i < 400; i++ {
		cores[0].HalfStep()
		cores[1].HalfStep()

		if diff := cmp.Diff(cores[0].CPU.Wires(), cores[1].CPU.Wires()); diff != "" {
			t.Fatalf("wires differ at half-cycle %d (-gate +accelerated):\n%s", i, diff)
		}
		if diff := cmp.Diff(cores[0].CPU.Commands(), cores[1].CPU.Commands()); diff != "" {
			t.Fatalf("commands differ at half-cycle %d (-gate +accelerated):\n%s", i, diff)
		}
		if diff := cmp.Diff(cores[0].CPU.Buses(), cores[1].CPU.Buses()); diff != "" {
			t.Fatalf("buses differ at half-cycle %d (-gate +accelerated):\n%s", i, diff)
		}
	}
}

// at most one of the ALU operations is selected in any half-cycle.
func TestALUOperationsExclusive(t *testing.T) {
	b := bench.NewBench(cpu.Config{})
	program := []uint8{
		0xa9, 0x5a, 0x29, 0x0f, 0x49, 0xff, 0x09, 0x01, 0x4a, 0x69, 0x10,
		0xe9, 0x01, 0x0a, 0x6a, 0x2a, 0xe6, 0x10, 0xc6, 0x10, 0x4c, 0x00, 0x80,
	}
	test.DemandSuccess(t, b.Load(0x8000, program))
	b.SetVector(bench.ResetVector, 0x8000)
	b.Reset()

	for i := 0; i < 400; i++ {
		b.HalfStep()
		cmd := b.CPU.Commands()
		var n int
		for _, s := range []logic.Signal{cmd.ANDS, cmd.EORS, cmd.ORS, cmd.SRS, cmd.SUMS} {
			if s == logic.One {
				n++
			}
		}
		if !test.ExpectSuccess(t, n <= 1, i) {
			return
		}
	}
}
