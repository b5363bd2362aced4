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

// Package preferences collates the preference values of the simulated
// hardware. The values are stored on disk with the prefs package and can be
// overridden from the command line.
//
//	cpu.accelerated       integer forms of the ALU, program counter and extra
//	                      cycle counter
//	cpu.decimaldisabled   decimal correction circuitry removed (2A03)
//	bench.resetcycles     number of full cycles the RES pad is held low
package preferences

import (
	"fmt"

	"github.com/famisim/famisim/curated"
	"github.com/famisim/famisim/hardware/cpu"
	"github.com/famisim/famisim/logger"
	"github.com/famisim/famisim/paths"
	"github.com/famisim/famisim/prefs"
)

// MinResetCycles is the fewest number of cycles the RES pad must be held for
// the reset to be recognised by the core.
const MinResetCycles = 2

// the default number of reset cycles.
const defaultResetCycles = 8

// Sentinal errors.
const (
	InvalidResetCycles = "preferences: reset cycles must be at least %d (got %d)"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// integer forms of the bit level units
	Accelerated prefs.Bool

	// decimal correction circuitry removed
	DecimalDisabled prefs.Bool

	// number of full cycles to hold RES low
	ResetCycles prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences() but values are loaded from
// the named file. The file is created if it does not exist.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.ResetCycles.SetHookPre(func(v prefs.Value) error {
		if v.(int) < MinResetCycles {
			return curated.Errorf(InvalidResetCycles, MinResetCycles, v.(int))
		}
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.accelerated", &p.Accelerated)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.decimaldisabled", &p.DecimalDisabled)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("bench.resetcycles", &p.ResetCycles)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	logger.Logf(logger.Allow, "preferences", "%s", p.Config())

	return p, nil
}

// SetDefaults reverts all values to the default value. Values are not saved
// to disk.
func (p *Preferences) SetDefaults() {
	// errors are not possible with these values
	_ = p.Accelerated.Set(false)
	_ = p.DecimalDisabled.Set(false)
	_ = p.ResetCycles.Set(defaultResetCycles)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	err := p.dsk.Save()
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "preferences", "saved: %s", p.Config())
	return nil
}

// Config returns the CPU configuration described by the preferences.
func (p *Preferences) Config() cpu.Config {
	return cpu.Config{
		Accelerated:     p.Accelerated.Get().(bool),
		DecimalDisabled: p.DecimalDisabled.Get().(bool),
	}
}

// Summary is a single line description of the preferences.
func (p *Preferences) Summary() string {
	return fmt.Sprintf("%s resetcycles=%d", p.Config(), p.ResetCycles.Get().(int))
}
