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

// Package clocks defines the constant values that define the speed of the
// master clock in the console and the rate at which the 68000 is driven by it.
package clocks

import (
	"fmt"
	"strings"
)

// Master clock frequencies in Hz.
const (
	NTSC = 53693175
	PAL  = 53203424
)

// The 68000 is clocked at one seventh of the master clock.
const M68KDivider = 7

// Number of master clock cycles in a scanline. This is the same for both
// television specifications.
const MasterCyclesPerLine = 3420

// Number of 68000 cycles in a scanline. The fractional part of the division is
// dropped.
const M68KCyclesPerLine = MasterCyclesPerLine / M68KDivider

// Number of scanlines in a frame for each television specification.
const (
	LinesNTSC = 262
	LinesPAL  = 313
)

// Spec describes the timing of a television specification.
type Spec struct {
	ID     string
	Master int
	Lines  int
}

// The supported television specifications.
var (
	SpecNTSC = Spec{ID: "NTSC", Master: NTSC, Lines: LinesNTSC}
	SpecPAL  = Spec{ID: "PAL", Master: PAL, Lines: LinesPAL}
)

// SpecByID returns the television specification for the ID. The comparison
// is not case sensitive.
func SpecByID(id string) (Spec, error) {
	switch strings.ToUpper(id) {
	case "NTSC":
		return SpecNTSC, nil
	case "PAL":
		return SpecPAL, nil
	}
	return Spec{}, fmt.Errorf("clocks: unknown television specification (%s)", id)
}

// M68K returns the frequency of the 68000 in Hz.
func (s Spec) M68K() int {
	return s.Master / M68KDivider
}

// CyclesPerFrame returns the number of 68000 cycles in one frame.
func (s Spec) CyclesPerFrame() int {
	return M68KCyclesPerLine * s.Lines
}

// RefreshRate returns the number of frames per second.
func (s Spec) RefreshRate() float64 {
	return float64(s.Master) / float64(MasterCyclesPerLine*s.Lines)
}
