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

package logger

// Permission implementations indicate whether the environment making a log
// request is allowed to create new log entries. The bench, for example, is
// given a permission so that its entries can be silenced while a text trace
// is being written to the same output as the log echo.
type Permission interface {
	AllowLogging() bool
}

// PermissionFunc adapts a function to the Permission interface. The function
// is called for every log request.
type PermissionFunc func() bool

// AllowLogging implements the Permission interface.
func (f PermissionFunc) AllowLogging() bool {
	return f()
}

type fixed bool

func (p fixed) AllowLogging() bool {
	return bool(p)
}

// Allow indicates that the logging request should always be allowed.
var Allow Permission = fixed(true)

// Deny indicates that the logging request should never be allowed.
var Deny Permission = fixed(false)
