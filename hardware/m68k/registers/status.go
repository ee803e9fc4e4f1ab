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

package registers

import (
	"fmt"
	"strings"
)

// Bits of the 68000 status register.
const (
	Carry      = uint16(0x0001)
	Overflow   = uint16(0x0002)
	Zero       = uint16(0x0004)
	Negative   = uint16(0x0008)
	Extend     = uint16(0x0010)
	Mask       = uint16(0x0700)
	Supervisor = uint16(0x2000)
	Trace      = uint16(0x8000)
)

// the interrupt mask occupies bits 8 to 10
const maskShift = 8

// StatusRegister is the 16bit status register of the 68000. The top byte is
// the system byte and the bottom byte is the condition code register.
type StatusRegister uint16

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// IsSupervisor returns true if the supervisor bit is set. When the bit is set
// A7 is the supervisor stack pointer.
func (sr StatusRegister) IsSupervisor() bool {
	return uint16(sr)&Supervisor == Supervisor
}

// InterruptMask returns the value of the three bit interrupt mask.
func (sr StatusRegister) InterruptMask() int {
	return int((uint16(sr) & Mask) >> maskShift)
}

// WithInterruptMask returns a copy of the status register with the interrupt
// mask replaced.
func (sr StatusRegister) WithInterruptMask(level int) StatusRegister {
	v := uint16(sr) &^ Mask
	v |= (uint16(level) << maskShift) & Mask
	return StatusRegister(v)
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(bit uint16, set, unset rune) {
		if uint16(sr)&bit == bit {
			s.WriteRune(set)
		} else {
			s.WriteRune(unset)
		}
	}

	flag(Trace, 'T', 't')
	flag(Supervisor, 'S', 's')
	s.WriteString(fmt.Sprintf("%d", sr.InterruptMask()))
	s.WriteRune('-')
	flag(Extend, 'X', 'x')
	flag(Negative, 'N', 'n')
	flag(Zero, 'Z', 'z')
	flag(Overflow, 'V', 'v')
	flag(Carry, 'C', 'c')

	return s.String()
}
