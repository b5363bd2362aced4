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
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/famisim/famisim/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file while famisim is running ***"

// the separator between key and value in the preferences file.
const diskSeparator = " :: "

// Sentinal errors.
const (
	NoPrefsFile = "prefs: no prefs file (%s)"
	DiskError   = "prefs: %v"
)

// Disk represents preference values as stored on disk. Keys not added to a
// Disk instance are preserved in the file when it is saved, which means that
// more than one Disk instance can share the same file.
type Disk struct {
	path    string
	entries map[string]pref

	// values taken from the command line stack. they take priority over the
	// values in the file
	overrides map[string]Value
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, diskSeparator, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:      path,
		entries:   make(map[string]pref),
		overrides: make(map[string]Value),
	}
	return dsk, nil
}

// Add preference value to list of values to store/load from disk. If the key
// is present in the current command line group the value is set from there
// and that value survives subsequent calls to Load().
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, diskSeparator) || strings.Contains(key, "::") {
		return curated.Errorf(DiskError, fmt.Sprintf("illegal key: %s", key))
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf(DiskError, err)
		}
		dsk.overrides[key] = v
	}

	return nil
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	// values already in the file and not in this Disk instance are kept
	entries, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for k, p := range dsk.entries {
		entries[k] = p.String()
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, diskSeparator, entries[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. If saveOnFail is true and the file does
// not exist then it is created with the current values. The NoPrefsFile
// error is returned in either case.
func (dsk *Disk) Load(saveOnFail bool) error {
	entries, err := dsk.read()
	if err != nil {
		if curated.Is(err, NoPrefsFile) && saveOnFail {
			if err := dsk.Save(); err != nil {
				return err
			}
		}
		return err
	}

	for k, v := range entries {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}

	for k, v := range dsk.overrides {
		if err := dsk.entries[k].Set(v); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}

	return nil
}

// read the preferences file into a map of key/value strings.
func (dsk *Disk) read() (map[string]string, error) {
	entries := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entries, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return entries, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line is the boilerplate warning
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return entries, curated.Errorf(DiskError, fmt.Sprintf("not a prefs file (%s)", dsk.path))
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), diskSeparator, 2)
		if len(kv) != 2 {
			continue
		}
		entries[kv[0]] = kv[1]
	}

	if err := scanner.Err(); err != nil {
		return entries, curated.Errorf(DiskError, err)
	}

	return entries, nil
}
