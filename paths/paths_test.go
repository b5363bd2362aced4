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

package paths_test

import (
	"os"
	"strings"
	"testing"

	"github.com/famisim/famisim/paths"
	"github.com/famisim/famisim/test"
)

func TestPaths(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	test.DemandSuccess(t, os.Mkdir(".famisim", 0o700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".famisim/foo/bar/baz")

	// the subdirectory has been created but not the file
	_, err = os.Stat(".famisim/foo/bar")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(".famisim/foo/bar/baz")
	test.ExpectFailure(t, err)

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".famisim/foo/bar")

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".famisim/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".famisim")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("trace", "prog")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "trace_prog_"))

	fn = paths.UniqueFilename("trace", "  ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "trace_2"))
}
