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

package statsview

import (
	"net"

	"github.com/famisim/famisim/curated"
)

// Sentinal errors.
const (
	AddressError = "statsview: address: %v"
)

// DefaultAddress is used when Launch() is given an empty address.
const DefaultAddress = "localhost:12600"

// path of the statistics page on the server.
const pagePath = "/debug/statsview"

// resolveAddress returns the address the server listens on. The host may be
// omitted, as in ":12600", but the port may not.
func resolveAddress(addr string) (string, error) {
	if addr == "" {
		return DefaultAddress, nil
	}

	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", curated.Errorf(AddressError, err)
	}
	if port == "" {
		return "", curated.Errorf(AddressError, "no port")
	}

	return addr, nil
}
