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

package memorymap

import (
	"fmt"
	"strings"
)

// SysID identifies the console configuration that is currently plugged into
// the 68000 bus. Exactly one SysID is active at any one time.
type SysID int

// List of valid SysID values. SysNone is the zero value and indicates that no
// system has been initialised.
const (
	SysNone SysID = iota
	SysMD
	SysMCD
	Sys32X
	SysPico
)

func (id SysID) String() string {
	switch id {
	case SysNone:
		return "None"
	case SysMD:
		return "MD"
	case SysMCD:
		return "MCD"
	case Sys32X:
		return "32X"
	case SysPico:
		return "Pico"
	}
	return "undefined"
}

// ParseSysID converts a system name into a SysID. The comparison is not case
// sensitive and accepts the common regional names for each system.
func ParseSysID(s string) (SysID, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "NONE":
		return SysNone, nil
	case "MD", "GENESIS", "MEGADRIVE":
		return SysMD, nil
	case "MCD", "SEGACD", "MEGACD":
		return SysMCD, nil
	case "32X":
		return Sys32X, nil
	case "PICO":
		return SysPico, nil
	}
	return SysNone, fmt.Errorf("memorymap: unrecognised system (%s)", s)
}

// The 68000 address space is divided into 64KiB banks. The dispatch table has
// one entry for each bank.
const (
	BankShift   = 16
	BankSize    = 1 << BankShift
	BankMask    = BankSize - 1
	NumBanks    = 256
	AddressMask = uint32(0xffffff)
)

// Bank returns the index of the bank containing address. The result is not
// clamped to NumBanks.
func Bank(address uint32) int {
	return int(address >> BankShift)
}

// BankOrigin returns the first address of bank.
func BankOrigin(bank int) uint32 {
	return uint32(bank) << BankShift
}

// Origins and memtops of the main areas of the 68000 address space.
//
// Work RAM is 64KiB in size but is visible through 32 mirrors, from
// OriginRAMMirror to MemtopRAM. The canonical copy is the final mirror at
// OriginRAM.
const (
	OriginROM = uint32(0x000000)
	MemtopROM = uint32(0x3fffff)

	OriginZ80 = uint32(0xa00000)
	MemtopZ80 = uint32(0xa0ffff)

	OriginIO = uint32(0xa10000)
	MemtopIO = uint32(0xa1ffff)

	OriginVDP = uint32(0xc00000)
	MemtopVDP = uint32(0xdfffff)

	OriginRAMMirror = uint32(0xe00000)
	OriginRAM       = uint32(0xff0000)
	MemtopRAM       = uint32(0xffffff)

	// the generic handlers cover everything except the canonical RAM bank
	MemtopGeneric = uint32(0xfeffff)
)

// RAMSize is the size of 68000 work RAM.
const RAMSize = 0x10000

// NumRAMMirrors is the number of 64KiB windows onto work RAM.
const NumRAMMirrors = 32

// BankSysBanking is the first bank patched by the system specific banking
// profiles. Cartridge ROM beyond the first 2MiB and the expansion windows of
// the add-on systems start here.
const BankSysBanking = 0x20

// Cartridge control registers in the I/O area.
const (
	SRAMControl = uint32(0xa130f1)
)
