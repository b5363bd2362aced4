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
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooked is the storage and the callbacks shared by the Bool, String and Int
// types. the zero value of T is returned if nothing has been stored.
type hooked[T any] struct {
	value    atomic.Value
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

func (h *hooked[T]) load() T {
	if v, ok := h.value.Load().(T); ok {
		return v
	}
	var z T
	return z
}

func (h *hooked[T]) store(v T) error {
	if h.hookPre != nil {
		if err := h.hookPre(v); err != nil {
			return err
		}
	}

	h.value.Store(v)

	if h.hookPost != nil {
		return h.hookPost(v)
	}
	return nil
}

// SetHookPre sets the callback function to be called just before the value is
// stored. The value is not stored if the callback returns an error. The
// callback is called even if the value is unchanged.
func (h *hooked[T]) SetHookPre(f func(value Value) error) {
	h.hookPre = f
}

// SetHookPost sets the callback function to be called just after the value is
// stored. The callback is called even if the value is unchanged.
func (h *hooked[T]) SetHookPost(f func(value Value) error) {
	h.hookPost = f
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	hooked[bool]
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.load())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(v)
	case string:
		return p.store(strings.EqualFold(v, "true"))
	}
	return fmt.Errorf("set: cannot convert %T to prefs.Bool", v)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.load()
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String implements a string type in the prefs system.
type String struct {
	hooked[string]
	maxLen int
}

func (p *String) String() string {
	return p.load()
}

// SetMaxLen sets the maximum length for a string when it is set. To set no
// limit use a value less than or equal to zero. The existing string is cropped
// if necessary and the cropped part is lost.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
	if s := p.load(); p.maxLen > 0 && len(s) > p.maxLen {
		p.value.Store(s[:p.maxLen])
	}
}

// Set new value to String type. Values that are not strings are formatted
// with the %v verb.
func (p *String) Set(v Value) error {
	s := fmt.Sprintf("%v", v)
	if p.maxLen > 0 && len(s) > p.maxLen {
		s = s[:p.maxLen]
	}
	return p.store(s)
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.load()
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int implements an integer type in the prefs system.
type Int struct {
	hooked[int]
}

func (p *Int) String() string {
	return strconv.Itoa(p.load())
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(v)
	case int32:
		return p.store(int(v))
	case int64:
		return p.store(int(v))
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("set: cannot convert %T to prefs.Int: %w", v, err)
		}
		return p.store(n)
	}
	return fmt.Errorf("set: cannot convert %T to prefs.Int", v)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return p.load()
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// Generic is a preferences type for values that cannot be represented by a
// single stored value. The value is kept by the caller and is set and
// retrieved with the functions given to NewGeneric(). Generic values have no
// hooks.
type Generic struct {
	crit sync.Mutex
	set  func(Value) error
	get  func() Value

	// the last value sent to set() function
	recent Value
}

// GenericGetValueUndefined is a special return value for the get() function
// (see NewGeneric()). It indicates that the value is currently unavailable and
// the most recent previous value should be used.
const GenericGetValueUndefined = "GenericGetValueUndefined"

// NewGeneric is the preferred method of initialisation for the Generic type.
func NewGeneric(set func(Value) error, get func() Value) *Generic {
	return &Generic{
		set: set,
		get: get,
	}
}

func (p *Generic) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set triggers the set value procedure for the generic type. The value is
// always passed to the set function as a string.
func (p *Generic) Set(v Value) error {
	p.crit.Lock()
	defer p.crit.Unlock()

	s := fmt.Sprintf("%v", v)
	p.recent = s
	return p.set(s)
}

// Get triggers the get value procedure for the generic type.
func (p *Generic) Get() Value {
	p.crit.Lock()
	defer p.crit.Unlock()

	v := p.get()
	if v == GenericGetValueUndefined {
		return p.recent
	}
	p.recent = v
	return v
}

// Reset sets the generic value to the empty string.
func (p *Generic) Reset() error {
	return p.Set("")
}
