// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package prefs implements typed, defaulted preference cells. Gopher2600's
// own prefs package persists values to disk and answers to a command line;
// vcscore has no CLI and no save-states, so this is trimmed to the in-memory
// cell types only - Bool and Int. The core's construction-time options
// (hardware.NewVCS's functional options) are plain fields and do not use
// these cells.
package prefs

// Bool is a boolean preference cell with a default value.
type Bool struct {
	value bool
}

// NewBool creates a Bool preference with the given default.
func NewBool(def bool) Bool {
	return Bool{value: def}
}

// Get returns the current value.
func (b Bool) Get() bool {
	return b.value
}

// Set changes the value.
func (b *Bool) Set(v bool) {
	b.value = v
}

// Int is an integer preference cell with a default value.
type Int struct {
	value int
}

// NewInt creates an Int preference with the given default.
func NewInt(def int) Int {
	return Int{value: def}
}

// Get returns the current value.
func (i Int) Get() int {
	return i.value
}

// Set changes the value.
func (i *Int) Set(v int) {
	i.value = v
}
