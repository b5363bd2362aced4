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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions report with t.Fatalf() and should be used
// when the value is needed by subsequent parts of the test. For example,
// checking the length of two slices before iterating over them in unison.
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions. Supported types are bool (true is success) and error
// (nil is success). An untyped nil is considered a success because that is
// how a nil error arrives at the function.
//
// Each function accepts optional tags. Tags are printed with the failure
// message and are useful in loops to identify the failing iteration.
//
// The Writer type implements io.Writer and should be used to capture output
// for comparison.
package test
