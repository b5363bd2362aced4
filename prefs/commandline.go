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

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// command line groups are pushed and popped by the front end. a Disk consults
// the top group when a value is added.
var commandLine struct {
	crit  sync.Mutex
	stack []map[string]Value
}

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	return len(commandLine.stack)
}

// PushCommandLineStack parses a prefs string and adds it as a new group. The
// string is a list of key::value pairs separated by semi-colons:
//
//	cpu.accelerated::true; bench.resetcycles::4
//
// Pairs that cannot be parsed are ignored.
func PushCommandLineStack(prefs string) {
	group := make(map[string]Value)

	for _, p := range strings.Split(prefs, ";") {
		key, value, ok := strings.Cut(p, "::")
		if !ok || strings.Contains(value, "::") {
			continue
		}
		group[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	commandLine.stack = append(commandLine.stack, group)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack(). Returns the values of the group that were never
// used, as a sorted prefs string.
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	n := len(commandLine.stack)
	if n == 0 {
		return ""
	}

	popped := commandLine.stack[n-1]
	commandLine.stack = commandLine.stack[:n-1]

	unused := make([]string, 0, len(popped))
	for key, value := range popped {
		unused = append(unused, fmt.Sprintf("%s::%v", key, value))
	}
	sort.Strings(unused)

	return strings.Join(unused, "; ")
}

// GetCommandLinePref returns the value for the key from the most recent
// group. The value is removed from the group.
func GetCommandLinePref(key string) (bool, Value) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	n := len(commandLine.stack)
	if n == 0 {
		return false, nil
	}

	v, ok := commandLine.stack[n-1][key]
	if ok {
		delete(commandLine.stack[n-1], key)
	}
	return ok, v
}
