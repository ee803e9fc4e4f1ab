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

package cartridge

import (
	"fmt"

	"github.com/jetsetilly/gopherdrive/hardware/memory/memorymap"
)

// SRAM is the battery backed memory of a cartridge. It is only visible on the
// bus when enabled through the control register.
type SRAM struct {
	Start uint32
	End   uint32

	// write protection is controlled by bit 1 of the control register
	Protected bool

	Data []byte
}

func newSRAM(start uint32, end uint32) *SRAM {
	return &SRAM{
		Start: start,
		End:   end,
		Data:  make([]byte, end-start+1),
	}
}

func (s *SRAM) String() string {
	return fmt.Sprintf("SRAM %06x-%06x", s.Start, s.End)
}

// Label is an implementation of the memory.Device interface.
func (s *SRAM) Label() string {
	return "SRAM"
}

// Banks returns the first and last bank spanned by the SRAM.
func (s *SRAM) Banks() (int, int) {
	return memorymap.Bank(s.Start), memorymap.Bank(s.End)
}

func (s *SRAM) offset(address uint32) (int, bool) {
	address &= memorymap.AddressMask
	if address < s.Start || address > s.End {
		return 0, false
	}
	return int(address - s.Start), true
}

// Read8 is an implementation of the bus.Reader interface. Addresses outside
// the SRAM read as 0xff.
func (s *SRAM) Read8(address uint32) uint8 {
	if i, ok := s.offset(address); ok {
		return s.Data[i]
	}
	return 0xff
}

// Read16 is an implementation of the bus.Reader interface.
func (s *SRAM) Read16(address uint32) uint16 {
	return uint16(s.Read8(address))<<8 | uint16(s.Read8(address+1))
}

// Write8 is an implementation of the bus.Writer interface.
func (s *SRAM) Write8(address uint32, data uint8) {
	if s.Protected {
		return
	}
	if i, ok := s.offset(address); ok {
		s.Data[i] = data
	}
}

// Write16 is an implementation of the bus.Writer interface.
func (s *SRAM) Write16(address uint32, data uint16) {
	s.Write8(address, uint8(data>>8))
	s.Write8(address+1, uint8(data))
}
