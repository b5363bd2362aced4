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

package test

import "testing"

// The Demand functions are the same as the Expect function of the same name
// except that a failed test is fatal. Use them when the remainder of the test
// makes no sense after the failure, for example when a bench cannot be
// created or a program has not reached the expected address.

// DemandEquality is used to test equality between one value and another.
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	if !ExpectEquality(t, v, expectedValue, tags...) {
		t.FailNow()
	}
}

// DemandInequality is used to test inequality between one value and another.
func DemandInequality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	if !ExpectInequality(t, v, expectedValue, tags...) {
		t.FailNow()
	}
}

// DemandSuccess tests argument v for a success condition. See ExpectSuccess()
// for the success values of each type.
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	if !ExpectSuccess(t, v, tags...) {
		t.FailNow()
	}
}

// DemandFailure tests argument v for a failure condition.
func DemandFailure(t *testing.T, v any, tags ...any) {
	t.Helper()
	if !ExpectFailure(t, v, tags...) {
		t.FailNow()
	}
}

// DemandImplements tests whether an instance is an implementation of type T.
func DemandImplements[T any](t *testing.T, instance any, tags ...any) {
	t.Helper()
	if !ExpectImplements[T](t, instance, tags...) {
		t.FailNow()
	}
}
