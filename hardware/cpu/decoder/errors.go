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

package decoder

import (
	"fmt"

	"github.com/famisim/famisim/curated"
	"github.com/famisim/famisim/hardware/pla"
)

func curatedDimensions(p *pla.PLA) error {
	return curated.Errorf(pla.Malformed, fmt.Errorf("decoder must be %dx%d not %dx%d", Inputs, Outputs, p.Inputs(), p.Rows()))
}
