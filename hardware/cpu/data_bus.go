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

// dataBus connects the external data lines to the internal buses. input is
// held in the data latch (DL) and output in the data output register (DOR).
// both hold the complement of the value.
type dataBus struct {
	w     *Wires
	cmd   *Commands
	buses *Buses

	rdLatch logic.Latch
	dl      uint8
	dor     uint8
}

func (db *dataBus) simGetExternal(data *uint8) {
	phi1 := db.w.PHI1
	phi2 := db.w.PHI2

	db.rdLatch.Set(db.w.WR, phi1)

	if phi2 == logic.One {
		db.dl = ^*data
	}

	if phi1 == logic.One {
		if db.cmd.DLADL == logic.One {
			db.buses.ADL.Write(^db.dl)
		}
		if db.cmd.DLADH == logic.One {
			db.buses.ADH.Write(^db.dl)
		}
		if db.cmd.DLDB == logic.One {
			db.buses.DB.Write(^db.dl)
		}
	}
}

func (db *dataBus) simSetExternal(data *uint8) {
	phi1 := db.w.PHI1
	phi2 := db.w.PHI2

	db.rdLatch.Set(db.w.WR, phi1)
	rd := not(nor(not(phi2), db.rdLatch.NGet()))

	if phi1 == logic.One {
		db.dor = ^db.buses.DB.Value
	}

	if rd == logic.Zero {
		*data = ^db.dor
	}
}
