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

//go:build !statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/famisim/famisim/logger"
)

// Launch does nothing in builds without the statsview tag other than
// checking the address.
func Launch(output io.Writer, addr string) error {
	addr, err := resolveAddress(addr)
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "statsview", "not available in this build (%s)", addr)
	fmt.Fprintln(output, "stats server not available in this build")

	return nil
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
