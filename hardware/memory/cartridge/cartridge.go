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
	"crypto/sha1"
	"errors"
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherdrive/hardware/memory/memorymap"
)

// Sentinel errors returned by NewCartridge().
var (
	EmptyROM    = errors.New("empty ROM")
	ROMTooLarge = errors.New("ROM too large")
)

// MaxROMSize is the largest ROM that can be mapped without a bank switching
// mapper. It covers the ROM area of the address map.
const MaxROMSize = int(memorymap.MemtopROM-memorymap.OriginROM) + 1

// Cartridge is a ROM image padded to a whole number of banks, plus the SRAM
// described by the ROM header, if any.
type Cartridge struct {
	Filename string
	Hash     string

	rom    []byte
	header Header
	sram   *SRAM
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The data is copied and padded with 0xff to the next bank boundary.
func NewCartridge(filename string, data []byte) (*Cartridge, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("cartridge: %w", EmptyROM)
	}
	if len(data) > MaxROMSize {
		return nil, fmt.Errorf("cartridge: %w: %d bytes", ROMTooLarge, len(data))
	}

	cart := &Cartridge{
		Filename: filename,
		Hash:     fmt.Sprintf("%x", sha1.Sum(data)),
	}

	size := (len(data) + memorymap.BankMask) &^ memorymap.BankMask
	cart.rom = make([]byte, size)
	copy(cart.rom, data)
	for i := len(data); i < size; i++ {
		cart.rom[i] = 0xff
	}

	cart.header = parseHeader(cart.rom)
	if cart.header.HasSRAM {
		cart.sram = newSRAM(cart.header.SRAMStart, cart.header.SRAMEnd)
	}

	return cart, nil
}

func (cart *Cartridge) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s [%d banks]", cart.header.Title, cart.NumBanks()))
	if cart.sram != nil {
		s.WriteString(fmt.Sprintf(" %s", cart.sram))
	}
	return s.String()
}

// Label is an implementation of the memory.Device interface.
func (cart *Cartridge) Label() string {
	return "ROM"
}

// ROM returns the padded ROM data. The length is always a multiple of the bank
// size. The slice should not be modified.
func (cart *Cartridge) ROM() []byte {
	return cart.rom
}

// NumBanks returns the number of 64KiB banks occupied by the ROM.
func (cart *Cartridge) NumBanks() int {
	return len(cart.rom) >> memorymap.BankShift
}

// Header returns the information parsed from the ROM header.
func (cart *Cartridge) Header() Header {
	return cart.header
}

// SRAM returns the cartridge SRAM. Returns nil if the cartridge has no SRAM.
func (cart *Cartridge) SRAM() *SRAM {
	return cart.sram
}

// Read8 is an implementation of the bus.Reader interface. Addresses outside
// the ROM read as 0xff.
func (cart *Cartridge) Read8(address uint32) uint8 {
	i := int(address & memorymap.AddressMask)
	if i >= len(cart.rom) {
		return 0xff
	}
	return cart.rom[i]
}

// Read16 is an implementation of the bus.Reader interface.
func (cart *Cartridge) Read16(address uint32) uint16 {
	return uint16(cart.Read8(address))<<8 | uint16(cart.Read8(address+1))
}

// Write8 is an implementation of the bus.Writer interface. Writes to ROM are
// ignored.
func (cart *Cartridge) Write8(_ uint32, _ uint8) {
}

// Write16 is an implementation of the bus.Writer interface. Writes to ROM are
// ignored.
func (cart *Cartridge) Write16(_ uint32, _ uint16) {
}
