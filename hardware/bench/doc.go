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

// Package bench is a test bench for the CPU core. It connects the address and
// data buses of the core to a flat 64KiB RAM and drives the PHI0 pad, one
// half-cycle at a time.
//
// There is no memory mapped hardware. The reset, NMI and IRQ vectors are at
// the usual addresses at the top of the RAM and must be set before the bench
// is reset:
//
//	b := bench.NewBench(cpu.Config{})
//	_ = b.Load(0x8000, program)
//	b.SetVector(bench.ResetVector, 0x8000)
//	b.Reset()
//	b.Run(100)
//
// The interrupt pads are controlled with the SetIRQ(), SetNMI() and SetRDY()
// functions. Observers added with AddObserver() are called after every
// half-cycle with the state of the pins.
package bench
