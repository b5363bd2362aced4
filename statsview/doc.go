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

// Package statsview offers runtime statistics of the simulator over a local
// HTTP server. The server is only present when the statsview build tag is
// used:
//
//	go build -tags statsview .
//
// The underlying functionality is provided by "github.com/go-echarts/statsview".
// The server listens on the address given to Launch(), or DefaultAddress if
// the address is empty. After launch, graphical statistics are viewable at:
//
//	localhost:12600/debug/statsview
//
// And the standard Go pprof statistics at:
//
//	localhost:12600/debug/pprof/
//
// Long runs of the gate-level core allocate nothing per half-cycle. The heap
// graph should be flat once the program has been loaded.
package statsview
