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

package prefs_test

import (
	"testing"

	"github.com/famisim/famisim/prefs"
	"github.com/famisim/famisim/test"
)

func TestCommandLineUnused(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	cases := []struct {
		push   string
		unused string
	}{
		{"cpu.accelerated::true", "cpu.accelerated::true"},
		{"   cpu.accelerated:: true ", "cpu.accelerated::true"},
		{"cpu.accelerated::true; bench.resetcycles::4", "bench.resetcycles::4; cpu.accelerated::true"},
		{"cpu.accelerated", ""},
		{"cpu.accelerated;bench.resetcycles::4", "bench.resetcycles::4"},
		{"cpu.accelerated::true::false", ""},
		{"", ""},
	}

	for _, c := range cases {
		prefs.PushCommandLineStack(c.push)
		test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1, c.push)
		test.ExpectEquality(t, prefs.PopCommandLineStack(), c.unused, c.push)
	}
}

func TestCommandLineGet(t *testing.T) {
	ok, _ := prefs.GetCommandLinePref("cpu.accelerated")
	test.ExpectFailure(t, ok)

	prefs.PushCommandLineStack("cpu.accelerated::true;bench_resetcycles")

	ok, _ = prefs.GetCommandLinePref("bench_resetcycles")
	test.ExpectFailure(t, ok)

	ok, v := prefs.GetCommandLinePref("cpu.accelerated")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "true")

	// the value is used up
	ok, _ = prefs.GetCommandLinePref("cpu.accelerated")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineStack(t *testing.T) {
	prefs.PushCommandLineStack("cpu.accelerated::true")
	prefs.PushCommandLineStack("cpu.decimaldisabled::true")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the top group is consulted
	ok, _ := prefs.GetCommandLinePref("cpu.accelerated")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.decimaldisabled::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.accelerated::true")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
