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
	"sync"

	"github.com/famisim/famisim/hardware/cpu/decoder"
	"github.com/famisim/famisim/hardware/logic"
	"github.com/famisim/famisim/logger"
)

// parts of the random logic depend only on the opcode, the timing lines and
// a small number of other signals. the results for every combination are
// computed once per process and shared by every core.
//
// the low 14 bits of every key are the opcode and the six timing lines
// (packed as in txBits).

// results of the register control table.
const (
	regsNotYSB = 1 << iota
	regsNotXSB
	regsNotSBX
	regsNotSBY
	regsNotSBS
	regsNotSADL
)

// results of the ALU control table.
const (
	aluNotADLADD = 1 << iota
	aluINCSB
	aluBRX
	aluCSET
	aluNotADLADDDerived
)

// results of the flags control table.
const (
	flagsZTST = 1 << iota
	flagsSR
	flagsNotPOUT
	flagsNotPIN
	flagsNotARIT
)

// key sizes in bits.
const (
	regsKeyBits  = 16
	aluKeyBits   = 19
	flagsKeyBits = 16
)

type tables struct {
	regs  []uint8
	alu   []uint8
	flags []uint8
}

var (
	sharedTables     *tables
	sharedTablesOnce sync.Once
)

// memoTables returns the shared tables, building them on first use.
func memoTables() *tables {
	sharedTablesOnce.Do(func() {
		sharedTables = buildTables(decoder.Default())
		logger.Logf(logger.Allow, "cpu", "random logic tables: %d entries",
			len(sharedTables.regs)+len(sharedTables.alu)+len(sharedTables.flags))
	})
	return sharedTables
}

func buildTables(dec *decoder.Decoder) *tables {
	t := &tables{
		regs:  make([]uint8, 1<<regsKeyBits),
		alu:   make([]uint8, 1<<aluKeyBits),
		flags: make([]uint8, 1<<flagsKeyBits),
	}

	var d decoder.Lines

	for ir := 0; ir < 256; ir++ {
		for tx := uint8(0); tx < 64; tx++ {
			decodeKey(dec, uint8(ir), tx, &d)

			base := uint32(ir) | uint32(tx)<<8

			for x := uint32(0); x < 1<<(regsKeyBits-14); x++ {
				t.regs[base|x<<14] = regsPrecalc(&d, logic.FromBit(uint8(x)), logic.FromBit(uint8(x>>1)))
			}

			for x := uint32(0); x < 1<<(aluKeyBits-14); x++ {
				t.alu[base|x<<14] = aluPrecalc(&d,
					logic.FromBit(uint8(x)), logic.FromBit(uint8(x>>1)),
					logic.FromBit(uint8(x>>2)), logic.FromBit(uint8(x>>3)),
					logic.FromBit(uint8(x>>4)))
			}

			for x := uint32(0); x < 1<<(flagsKeyBits-14); x++ {
				t.flags[base|x<<14] = flagsPrecalc(&d, logic.FromBit(uint8(x)), logic.FromBit(uint8(x>>1)))
			}
		}
	}

	return t
}

// txBits packs the six timing lines into the order used by the table keys.
func txBits(w *Wires) uint8 {
	return w.NotT0.Bit() | w.NotT1X.Bit()<<1 | w.NotT2.Bit()<<2 |
		w.NotT3.Bit()<<3 | w.NotT4.Bit()<<4 | w.NotT5.Bit()<<5
}

// decodeKey runs the decoder for an opcode and packed timing lines.
func decodeKey(dec *decoder.Decoder, ir uint8, tx uint8, d *decoder.Lines) {
	dec.Decode(decoder.Pack(ir,
		logic.FromBit(tx), logic.FromBit(tx>>1), logic.FromBit(tx>>2),
		logic.FromBit(tx>>3), logic.FromBit(tx>>4), logic.FromBit(tx>>5)), d)
}

func pack(v logic.Signal, mask uint8) uint8 {
	if v == logic.One {
		return mask
	}
	return 0
}

func regsPrecalc(d *decoder.Lines, nready, nreadyLatch logic.Signal) uint8 {
	st := stor(d)
	txs := d[decoder.TXS]

	nysb := norN(d[1], d[2], d[3], d[4], d[5], and(d[6], d[7]), and(d[decoder.STY], st))
	nxsb := norN(and(st, d[decoder.STX]), and(d[6], not(d[7])), d[8], d[9], d[10], d[11], txs)
	nsbx := norN(d[14], d[15], d[16])
	nsby := norN(d[18], d[19], d[20])

	stkop := nor(nreadyLatch, norN(d[21], d[22], d[23], d[24], d[25], d[26]))
	nsbs := norN(txs, nor(not(d[decoder.JSR2]), nready), stkop)
	nsadl := nor(and(d[21], not(nreadyLatch)), d[decoder.STK2])

	return pack(nysb, regsNotYSB) | pack(nxsb, regsNotXSB) |
		pack(nsbx, regsNotSBX) | pack(nsby, regsNotSBY) |
		pack(nsbs, regsNotSBS) | pack(nsadl, regsNotSADL)
}

func aluPrecalc(d *decoder.Lines, nready, t0, rmwt6, brfw, ncout logic.Signal) uint8 {
	nadladd := norN(and(d[33], not(d[34])), d[decoder.STK2], d[36], d[37], d[38], d[39], nready)
	incsb := not(norN(d[39], d[40], d[41], d[42], d[43], and(rmwt6, d[44])))
	brx := not(norN(d[49], d[50], nor(not(d[decoder.BR3]), brfw)))
	cset := nand(nand(nor(ncout, nor(t0, rmwt6)), or(d[52], d[53])), not(d[54]))
	derived := nor(nadladd, not(d[decoder.RET]))

	return pack(nadladd, aluNotADLADD) | pack(incsb, aluINCSB) |
		pack(brx, aluBRX) | pack(cset, aluCSET) |
		pack(derived, aluNotADLADDDerived)
}

func flagsPrecalc(d *decoder.Lines, rmwt6, rmwt7 logic.Signal) uint8 {
	nsbac := norN(d[58], d[59], d[60], d[61], d[62], d[63], d[64])
	andOp := not(nor(d[69], d[70]))
	nsbxy := nand(norN(d[14], d[15], d[16]), norN(d[18], d[19], d[20]))

	ztst := not(norN(nsbxy, not(nsbac), rmwt7, andOp))
	sr := not(nor(d[75], and(d[76], rmwt6)))
	npout := nor(d[98], d[99])
	npin := nor(d[114], d[115])
	narit := norN(and(d[107], rmwt7), d[decoder.AVRV], d[116], d[117], d[118], d[119])

	return pack(ztst, flagsZTST) | pack(sr, flagsSR) |
		pack(npout, flagsNotPOUT) | pack(npin, flagsNotPIN) |
		pack(narit, flagsNotARIT)
}
