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

// Package prefs facilitates the storage of preference values on disk.
//
// Values are of the Bool, Int, String or Generic type and are added to a Disk
// instance with a key. The key is the name of the value in the preferences
// file, which is a plain text file of key/value pairs:
//
//	cpu.accelerated :: true
//	bench.resetcycles :: 8
//
// Values can be overridden from the command line with a prefs string of the
// same form, but using "::" with no spaces and ";" between entries. For
// example:
//
//	famisim RUN -prefs "cpu.accelerated::true; cpu.decimaldisabled::true" prog.bin
//
// The command line string is pushed onto a stack with
// PushCommandLineStack(). Values are taken from the top of the stack when the
// preference is added to a Disk instance.
package prefs
