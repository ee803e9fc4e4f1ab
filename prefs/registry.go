// This file is part of Gopherdrive.
//
// Gopherdrive is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherdrive is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherdrive.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// Registry associates preference values with a key. Keys are dot separated
// paths, for example "hardware.m68k.logImprecise".
//
// Preferences are not saved between sessions. Values can be supplied for the
// session through the command line preference stack, see ApplyCommandLine().
type Registry struct {
	entries map[string]Pref
}

// NewRegistry is the preferred method of initialisation for the Registry type.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Pref),
	}
}

// Add preference value to registry.
func (reg *Registry) Add(key string, p Pref) error {
	if _, ok := reg.entries[key]; ok {
		return fmt.Errorf("prefs: key already in use (%s)", key)
	}
	reg.entries[key] = p
	return nil
}

// Set the preference value for the key.
func (reg *Registry) Set(key string, v Value) error {
	p, ok := reg.entries[key]
	if !ok {
		return fmt.Errorf("prefs: unknown key (%s)", key)
	}
	return p.Set(v)
}

// Get the preference for the key.
func (reg *Registry) Get(key string) (Pref, bool) {
	p, ok := reg.entries[key]
	return p, ok
}

// ApplyCommandLine sets any preference value for which there is an entry in
// the top of the command line stack.
func (reg *Registry) ApplyCommandLine() error {
	for _, k := range reg.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := reg.entries[k].Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}
	return nil
}

func (reg *Registry) keys() []string {
	keys := make([]string, 0, len(reg.entries))
	for k := range reg.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (reg *Registry) String() string {
	s := strings.Builder{}
	for _, k := range reg.keys() {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, reg.entries[k]))
	}
	return s.String()
}
