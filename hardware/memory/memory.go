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

package memory

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/gopherdrive/environment"
	"github.com/jetsetilly/gopherdrive/hardware/memory/bus"
	"github.com/jetsetilly/gopherdrive/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdrive/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdrive/logger"
)

// Sentinel errors returned by the memory package.
var (
	NoSystem        = errors.New("no system")
	OverlappingArea = errors.New("overlapping area")
)

// Device is a memory mapped peripheral. The VDP, the I/O ports and the Z80
// window are all supplied to the memory subsystem as devices.
type Device interface {
	bus.ReadWriter
	Label() string
}

type area struct {
	low  uint32
	high uint32
	dev  Device
}

func (a area) contains(address uint32) bool {
	return address >= a.low && address <= a.high
}

// Memory is the peripheral memory subsystem of the console. It decides what
// is visible in the cartridge area of the address space and dispatches
// accesses that are not served directly from the bus table.
//
// Memory implements the bus.ReadWriter interface. These are the generic
// handlers, installed over the address space that is not covered by a more
// specific handler.
type Memory struct {
	env *environment.Environment

	sys  memorymap.SysID
	cart *cartridge.Cartridge

	// memory mapped devices in the order they were added
	areas []area

	// SRAM control register
	sramEnabled bool

	// called when a write to the SRAM control register changes the mapping
	// of the cartridge area
	onBankingChange func()
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(env *environment.Environment) *Memory {
	return &Memory{
		env: env,
	}
}

func (mem *Memory) String() string {
	return "memory"
}

// Attach a cartridge. A nil cartridge removes the current cartridge. The
// change is not visible on the bus until the next call to InitSys().
func (mem *Memory) Attach(cart *cartridge.Cartridge) {
	mem.cart = cart
}

// Cartridge returns the attached cartridge. Can be nil.
func (mem *Memory) Cartridge() *cartridge.Cartridge {
	return mem.cart
}

// OnBankingChange registers a function that will be called when the mapping
// of the cartridge area changes outside of a call to InitSys(). The function
// should reapply the system banking.
func (mem *Memory) OnBankingChange(f func()) {
	mem.onBankingChange = f
}

// MapIO adds a device to the address space. The device will receive every
// access in the range that reaches the generic handlers. Ranges cannot
// overlap.
func (mem *Memory) MapIO(low uint32, high uint32, dev Device) error {
	low &= memorymap.AddressMask
	high &= memorymap.AddressMask
	if low > high {
		return fmt.Errorf("memory: empty area for %s (%06x-%06x)", dev.Label(), low, high)
	}
	for _, a := range mem.areas {
		if low <= a.high && high >= a.low {
			return fmt.Errorf("memory: %w: %s and %s", OverlappingArea, dev.Label(), a.dev.Label())
		}
	}
	mem.areas = append(mem.areas, area{low: low, high: high, dev: dev})
	return nil
}

func (mem *Memory) device(address uint32) Device {
	for _, a := range mem.areas {
		if a.contains(address) {
			return a.dev
		}
	}
	return nil
}

// SRAMEnabled returns true if cartridge SRAM is currently mapped.
func (mem *Memory) SRAMEnabled() bool {
	return mem.sramEnabled
}

// InitSys installs the ROM banks for the system into the banking table. Only
// the banks below memorymap.BankSysBanking are installed. The remaining
// cartridge banks are installed by UpdateSysBanking().
func (mem *Memory) InitSys(sys memorymap.SysID, banking *bus.Table) error {
	if sys == memorymap.SysNone {
		return fmt.Errorf("memory: %w", NoSystem)
	}

	mem.sys = sys
	mem.sramEnabled = false
	if mem.env != nil {
		mem.sramEnabled = mem.env.Prefs.SRAMEnabled.Get().(bool)
	}

	if mem.cart == nil {
		logger.Logf(mem.env, "memory", "%s: no cartridge", sys)
		return nil
	}

	if mem.cart.SRAM() != nil {
		mem.cart.SRAM().Protected = false
	}

	n := mem.cart.NumBanks()
	if n > memorymap.BankSysBanking {
		n = memorymap.BankSysBanking
	}
	memtop := memorymap.BankOrigin(n) - 1
	banking.SetFetch(memorymap.OriginROM, memtop, mem.cart.ROM())
	banking.SetMemReadFunc(memorymap.OriginROM, memtop, mem.cart)
	banking.SetMemWriteFunc(memorymap.OriginROM, memtop, mem.cart)

	logger.Logf(mem.env, "memory", "%s: %s", sys, mem.cart)

	return nil
}

// UpdateSysBanking patches the cartridge area from bank onwards, according to
// the size of the ROM and the state of the SRAM control register. Returns the
// number of banks that have been claimed.
//
// Banks from bank to the end of the ROM area are returned to the generic
// handlers before the ROM and SRAM are installed, so the result depends only
// on the cartridge and the SRAM control register.
func (mem *Memory) UpdateSysBanking(banking *bus.Table, bank int) int {
	lastROMBank := memorymap.Bank(memorymap.MemtopROM)
	if bank > lastROMBank {
		return 0
	}

	origin := memorymap.BankOrigin(bank)
	banking.SetFetch(origin, memorymap.MemtopROM, nil)
	banking.SetMemReadFunc(origin, memorymap.MemtopROM, mem)
	banking.SetMemWriteFunc(origin, memorymap.MemtopROM, mem)

	if mem.cart == nil {
		return 0
	}

	claimed := 0

	if n := mem.cart.NumBanks(); n > bank {
		memtop := memorymap.BankOrigin(n) - 1
		banking.SetFetch(origin, memtop, mem.cart.ROM()[origin:])
		banking.SetMemReadFunc(origin, memtop, mem.cart)
		banking.SetMemWriteFunc(origin, memtop, mem.cart)
		claimed = n - bank
	}

	if sram := mem.cart.SRAM(); sram != nil && mem.sramEnabled {
		first, last := sram.Banks()
		if first >= bank {
			low := memorymap.BankOrigin(first)
			high := memorymap.BankOrigin(last+1) - 1
			banking.SetMemReadFunc(low, high, sram)
			banking.SetMemWriteFunc(low, high, sram)
			if last+1-bank > claimed {
				claimed = last + 1 - bank
			}
		}
	}

	return claimed
}

// the value of the SRAM control register
func (mem *Memory) sramControl() uint8 {
	var v uint8
	if mem.sramEnabled {
		v |= 0x01
	}
	if mem.cart != nil && mem.cart.SRAM() != nil && mem.cart.SRAM().Protected {
		v |= 0x02
	}
	return v
}

func (mem *Memory) writeSRAMControl(data uint8) {
	if mem.cart != nil && mem.cart.SRAM() != nil {
		mem.cart.SRAM().Protected = data&0x02 == 0x02
	}

	enabled := data&0x01 == 0x01
	if enabled == mem.sramEnabled {
		return
	}
	mem.sramEnabled = enabled

	logger.Logf(mem.env, "memory", "SRAM enabled: %v", enabled)

	if mem.onBankingChange != nil {
		mem.onBankingChange()
	}
}

// Read8 is an implementation of the bus.Reader interface. Unmapped addresses
// read as 0xff.
func (mem *Memory) Read8(address uint32) uint8 {
	address &= memorymap.AddressMask

	if address <= memorymap.MemtopROM {
		if mem.cart == nil {
			return 0xff
		}
		return mem.cart.Read8(address)
	}

	if address == memorymap.SRAMControl {
		return mem.sramControl()
	}

	if dev := mem.device(address); dev != nil {
		return dev.Read8(address)
	}

	return 0xff
}

// Read16 is an implementation of the bus.Reader interface.
func (mem *Memory) Read16(address uint32) uint16 {
	address &= memorymap.AddressMask

	if address <= memorymap.MemtopROM {
		if mem.cart == nil {
			return 0xffff
		}
		return mem.cart.Read16(address)
	}

	// the control register is the low byte of the word
	if address == memorymap.SRAMControl-1 {
		return uint16(mem.sramControl())
	}

	if dev := mem.device(address); dev != nil {
		return dev.Read16(address)
	}

	return 0xffff
}

// Write8 is an implementation of the bus.Writer interface. Writes to unmapped
// addresses are discarded.
func (mem *Memory) Write8(address uint32, data uint8) {
	address &= memorymap.AddressMask

	if address == memorymap.SRAMControl {
		mem.writeSRAMControl(data)
		return
	}

	if dev := mem.device(address); dev != nil {
		dev.Write8(address, data)
	}
}

// Write16 is an implementation of the bus.Writer interface.
func (mem *Memory) Write16(address uint32, data uint16) {
	address &= memorymap.AddressMask

	if address == memorymap.SRAMControl-1 {
		mem.writeSRAMControl(uint8(data))
		return
	}

	if dev := mem.device(address); dev != nil {
		dev.Write16(address, data)
	}
}
