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

// regs are the X, Y and S registers. the stack pointer is a pair of latches,
// the output stage holding the complement of the value.
type regs struct {
	w     *Wires
	cmd   *Commands
	buses *Buses

	y    uint8
	x    uint8
	sIn  uint8
	sOut uint8
}

func (r *regs) loadSB() {
	if r.w.PHI2 == logic.One {
		r.sOut = ^r.sIn
		return
	}

	sb := r.buses.SB.Value
	if r.cmd.SBY == logic.One {
		r.y = sb
	}
	if r.cmd.SBX == logic.One {
		r.x = sb
	}
	if r.cmd.SS == logic.One {
		r.sIn = ^r.sOut
	}
	if r.cmd.SBS == logic.One {
		r.sIn = sb
	}
}

func (r *regs) storeSB() {
	if r.w.PHI2 == logic.One {
		r.sOut = ^r.sIn
	}

	if r.cmd.SSB == logic.One {
		r.buses.SB.Write(^r.sOut)
	}
	if r.cmd.YSB == logic.One {
		r.buses.SB.Write(r.y)
	}
	if r.cmd.XSB == logic.One {
		r.buses.SB.Write(r.x)
	}
}

func (r *regs) storeOldS() {
	if r.cmd.SADL == logic.One {
		r.buses.ADL.Write(^r.sOut)
	}
}

func (r *regs) getS() uint8 {
	return ^r.sOut
}

func (r *regs) setS(v uint8) {
	r.sOut = ^v
}
