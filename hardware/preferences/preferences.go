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

package preferences

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherdrive/prefs"
)

// Preferences for the emulated hardware.
type Preferences struct {
	reg *prefs.Registry

	// television specification. one of "NTSC" or "PAL". the specification
	// decides the master clock and therefore the number of 68000 cycles in a
	// frame
	TV prefs.String

	// log every execution burst in which the CPU engine could not report the
	// number of cycles it consumed
	LogImprecise prefs.Bool

	// map cartridge SRAM into the address space from the start, rather than
	// waiting for the cartridge to enable it through the control register
	SRAMEnabled prefs.Bool

	// limit the stepping driver to the frame rate of the television
	// specification
	FPSCap prefs.Bool
}

func (p *Preferences) String() string {
	return p.reg.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		reg: prefs.NewRegistry(),
	}
	p.SetDefaults()

	p.TV.SetHookPre(func(v prefs.Value) error {
		switch strings.ToUpper(v.(string)) {
		case "NTSC", "PAL":
			return nil
		}
		return fmt.Errorf("preferences: unsupported television specification (%v)", v)
	})

	for _, e := range []struct {
		key string
		p   prefs.Pref
	}{
		{key: "hardware.tv", p: &p.TV},
		{key: "hardware.m68k.logImprecise", p: &p.LogImprecise},
		{key: "hardware.memory.sramEnabled", p: &p.SRAMEnabled},
		{key: "emulation.fpsCap", p: &p.FPSCap},
	} {
		if err := p.reg.Add(e.key, e.p); err != nil {
			return nil, fmt.Errorf("preferences: %w", err)
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.TV.Set("NTSC")
	p.LogImprecise.Set(false)
	p.SRAMEnabled.Set(false)
	p.FPSCap.Set(true)
}

// ApplyCommandLine sets preferences from the top of the command line
// preferences stack.
func (p *Preferences) ApplyCommandLine() error {
	return p.reg.ApplyCommandLine()
}
