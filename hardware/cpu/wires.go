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

// Wires are the auxiliary and intermediate connections inside the CPU. Most
// are recomputed every half-cycle. Names beginning with Not are active low.
type Wires struct {
	// input pads
	NotNMI logic.Signal
	NotIRQ logic.Signal
	NotRES logic.Signal
	PHI0   logic.Signal
	RDY    logic.Signal
	SO     logic.Signal

	PHI1 logic.Signal
	PHI2 logic.Signal

	NotPRDY logic.Signal
	NotNMIP logic.Signal
	NotIRQP logic.Signal
	RESP    logic.Signal

	// global internal readiness
	NotReady logic.Signal

	T0      logic.Signal
	NotT0   logic.Signal
	NotT1X  logic.Signal
	NotT2   logic.Signal
	NotT3   logic.Signal
	NotT4   logic.Signal
	NotT5   logic.Signal
	FETCH   logic.Signal
	ZIR     logic.Signal
	ACRL1   logic.Signal
	ACRL2   logic.Signal
	WR      logic.Signal
	RMWT6   logic.Signal
	RMWT7   logic.Signal
	Not1PC  logic.Signal
	ENDS    logic.Signal
	ENDX    logic.Signal
	TRES1   logic.Signal

	NotTRESX logic.Signal

	NotImplied  logic.Signal
	NotTwoCycle logic.Signal

	BRK6E    logic.Signal
	BRK7     logic.Signal
	DORES    logic.Signal
	NotDONMI logic.Signal
	BRK5RDY  logic.Signal
	BOUT     logic.Signal

	// branch forward and branch taken
	BRFW       logic.Signal
	NotBRTaken logic.Signal

	PCDB      logic.Signal
	NotADLPCL logic.Signal
	NotIR5    logic.Signal
}

// Commands are the control lines produced by the random logic for the
// execution units and the flags.
type Commands struct {
	YSB  logic.Signal // Y => SB
	SBY  logic.Signal // SB => Y
	XSB  logic.Signal // X => SB
	SBX  logic.Signal // SB => X
	SADL logic.Signal // S => ADL
	SSB  logic.Signal // S => SB
	SBS  logic.Signal // SB => S
	SS   logic.Signal // refresh S when SB => S is inactive

	NDBADD logic.Signal // ~DB => BI
	DBADD  logic.Signal // DB => BI
	ZADD   logic.Signal // 0 => AI
	SBADD  logic.Signal // SB => AI
	ADLADD logic.Signal // ADL => BI

	NotACIN logic.Signal
	ANDS    logic.Signal
	EORS    logic.Signal
	ORS     logic.Signal
	SRS     logic.Signal
	SUMS    logic.Signal
	NotDAA  logic.Signal
	NotDSA  logic.Signal

	ADDSB7  logic.Signal // ADD[7] => SB[7]
	ADDSB06 logic.Signal // ADD[0-6] => SB[0-6]
	ADDADL  logic.Signal // ADD => ADL
	SBAC    logic.Signal // SB (with decimal correction) => AC
	ACSB    logic.Signal // AC => SB
	ACDB    logic.Signal // AC => DB

	ADHPCH logic.Signal // ADH => PCH
	PCHPCH logic.Signal // refresh PCH
	PCHADH logic.Signal // PCH => ADH
	PCHDB  logic.Signal // PCH => DB
	ADLPCL logic.Signal // ADL => PCL
	PCLPCL logic.Signal // refresh PCL
	PCLADL logic.Signal // PCL => ADL
	PCLDB  logic.Signal // PCL => DB

	ADHABH logic.Signal // ADH => external address bus high
	ADLABL logic.Signal // ADL => external address bus low

	ZADL0  logic.Signal // clear ADL[0]
	ZADL1  logic.Signal // clear ADL[1]
	ZADL2  logic.Signal // clear ADL[2]
	ZADH0  logic.Signal // clear ADH[0]
	ZADH17 logic.Signal // clear ADH[1-7]

	SBDB  logic.Signal // connect SB and DB
	SBADH logic.Signal // connect SB and ADH
	DLADL logic.Signal // DL => ADL
	DLADH logic.Signal // DL => ADH
	DLDB  logic.Signal // DL <=> DB

	PDB  logic.Signal // P => DB
	DBP  logic.Signal // DB => P
	DBZZ logic.Signal // zero test of DB => Z
	DBN  logic.Signal // DB7 => N
	IR5C logic.Signal // IR5 => C
	DBC  logic.Signal // DB0 => C
	ACRC logic.Signal // ACR => C
	IR5D logic.Signal // IR5 => D
	IR5I logic.Signal // IR5 => I
	DBV  logic.Signal // DB6 => V
	AVRV logic.Signal // AVR => V
	ZV   logic.Signal // 0 => V
}

// Buses are the internal buses of the CPU.
type Buses struct {
	SB  logic.Bus
	DB  logic.Bus
	ADL logic.Bus
	ADH logic.Bus
}

func (b *Buses) precharge() {
	b.SB.Precharge()
	b.DB.Precharge()
	b.ADL.Precharge()
	b.ADH.Precharge()
}

func (b *Buses) clean() {
	b.SB.Clean()
	b.DB.Clean()
	b.ADL.Clean()
	b.ADH.Clean()
}
