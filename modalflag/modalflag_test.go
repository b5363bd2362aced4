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

package modalflag_test

import (
	"os"
	"testing"

	"github.com/famisim/famisim/modalflag"
	"github.com/famisim/famisim/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"-log", "prog.bin", "extra"})
	logFlag := md.AddBool("log", false, "echo log")
	test.ExpectFailure(t, *logFlag)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectSuccess(t, *logFlag)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "prog.bin")
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"trace", "-cycles", "50", "prog.bin"})
	md.AddSubModes("RUN", "STEP", "TRACE")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "TRACE")

	md.NewMode()
	cycles := md.AddInt("cycles", 100, "number of cycles")
	wav := md.AddString("wav", "", "wav file")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *cycles, 50)
	test.ExpectEquality(t, *wav, "")
	test.ExpectEquality(t, md.GetArg(0), "prog.bin")
	test.ExpectEquality(t, md.Path(), "TRACE")

	// no mode on the command line selects the default mode
	md.NewArgs([]string{"prog.bin"})
	md.AddSubModes("RUN", "STEP", "TRACE")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.GetArg(0), "prog.bin")
}

func TestAddress(t *testing.T) {
	for _, arg := range []string{"c000", "$c000", "0xC000"} {
		md := modalflag.Modes{Output: os.Stdout}
		md.NewArgs([]string{"-org", arg})
		org := md.AddAddress("org", 0x8000, "origin")
		test.ExpectEquality(t, *org, uint16(0x8000))

		p, err := md.Parse()
		test.ExpectEquality(t, p, modalflag.ParseContinue, arg)
		test.ExpectSuccess(t, err, arg)
		test.ExpectEquality(t, *org, uint16(0xc000), arg)
	}

	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"-org", "10000"})
	org := md.AddAddress("org", 0x8000, "origin")
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, *org, uint16(0x8000))
}

func TestVisit(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"-log", "-cycles", "10"})
	md.AddBool("log", false, "echo log")
	md.AddInt("cycles", 100, "number of cycles")
	md.AddString("wav", "", "wav file")
	_, err := md.Parse()
	test.DemandSuccess(t, err)

	var visited []string
	md.Visit(func(flag string) {
		visited = append(visited, flag)
	})
	test.ExpectEquality(t, len(visited), 2)
	test.ExpectEquality(t, visited[0], "cycles")
	test.ExpectEquality(t, visited[1], "log")
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"))
}

func TestHelpFlags(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("log", true, "echo log")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -log\n" +
		"    	echo log (default true)\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}

func TestHelpModes(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("RUN", "STEP", "TRACE")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: RUN, STEP, TRACE\n" +
		"    default: RUN\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("log", true, "echo log")
	md.AddSubModes("RUN", "STEP", "TRACE")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -log\n" +
		"    	echo log (default true)\n" +
		"\n" +
		"  available sub-modes: RUN, STEP, TRACE\n" +
		"    default: RUN\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}
