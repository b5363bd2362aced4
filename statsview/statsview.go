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

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/famisim/famisim/logger"
)

// Launch a new goroutine running the statsview on the address. An empty
// address is the DefaultAddress.
func Launch(output io.Writer, addr string) error {
	addr, err := resolveAddress(addr)
	if err != nil {
		return err
	}

	go func() {
		viewer.SetConfiguration(viewer.WithAddr(addr))
		mgr := statsview.New()
		mgr.Start()
	}()

	logger.Logf(logger.Allow, "statsview", "launched on %s", addr)
	fmt.Fprintf(output, "stats server available at %s%s\n", addr, pagePath)

	return nil
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
