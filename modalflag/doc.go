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

// Package modalflag wraps the flag package in the standard library and adds
// program modes. Each mode has its own set of flags.
//
// The arguments are given once with NewArgs(). Each call to Parse() then
// consumes the flags of the current mode and, if sub-modes have been added,
// the name of the selected sub-mode:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP", "TRACE")
//
//	p, err := md.Parse()
//	if err != nil || p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "TRACE":
//		md.NewMode()
//		cycles := md.AddInt("cycles", 100, "number of cycles to trace")
//		p, err := md.Parse()
//		if err != nil || p != modalflag.ParseContinue {
//			return err
//		}
//		return trace(*cycles, md.RemainingArgs())
//	}
//
// The first sub-mode is the default and is selected when the next argument
// does not name a sub-mode. Sub-mode names are not case sensitive.
//
// The -help flag is handled by Parse(). The flags and sub-modes of the current
// mode are written to Output and ParseHelp is returned.
package modalflag
