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

// addressBus drives the external address lines from the ADL and ADH buses.
type addressBus struct {
	w     *Wires
	cmd   *Commands
	buses *Buses

	abl uint8
	abh uint8
}

// constGen pulls bits of the internal address buses to ground. used to form
// the interrupt vectors and the zero and stack page addresses.
func (ab *addressBus) constGen() {
	if ab.cmd.ZADL0 == logic.One {
		ab.buses.ADL.Ground(0x01)
	}
	if ab.cmd.ZADL1 == logic.One {
		ab.buses.ADL.Ground(0x02)
	}
	if ab.cmd.ZADL2 == logic.One {
		ab.buses.ADL.Ground(0x04)
	}
	if ab.cmd.ZADH0 == logic.One {
		ab.buses.ADH.Ground(0x01)
	}
	if ab.cmd.ZADH17 == logic.One {
		ab.buses.ADH.Ground(0xfe)
	}
}

func (ab *addressBus) output(addr *uint16) {
	if ab.w.PHI1 == logic.One {
		if ab.cmd.ADLABL == logic.One {
			ab.abl = ab.buses.ADL.Value
		}
		if ab.cmd.ADHABH == logic.One {
			ab.abh = ab.buses.ADH.Value
		}
	}
	*addr = uint16(ab.abh)<<8 | uint16(ab.abl)
}
