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

package m68k

import (
	"fmt"

	"github.com/jetsetilly/gopherdrive/environment"
	"github.com/jetsetilly/gopherdrive/hardware/memory/bus"
	"github.com/jetsetilly/gopherdrive/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdrive/logger"
)

// Memory is the peripheral memory subsystem. It supplies the generic handlers
// for the address space and installs the system specific banks.
type Memory interface {
	bus.ReadWriter

	// InitSys installs the banks for the system. Called by M68K.InitSys()
	// before work RAM is installed.
	InitSys(sys memorymap.SysID, banking *bus.Table) error

	// UpdateSysBanking installs the cartridge and expansion banks from bank
	// onwards. Returns the number of banks claimed.
	UpdateSysBanking(banking *bus.Table, bank int) int
}

// M68K integrates a 68000 engine with the bus of the console. It owns the bus
// dispatch table, the interrupt vector table, the cycle odometer and work
// RAM.
//
// All methods must be called from the same goroutine. The engine calls back
// into the M68K through the Host interface during Exec().
type M68K struct {
	env *environment.Environment

	engine Engine
	mem    Memory

	banking *bus.Table
	ram     *ram

	// the system selected by the most recent call to InitSys()
	sys memorymap.SysID

	// vectors recorded by Interrupt(). index zero is unused
	vectors [8]int

	odometer  int
	imprecise int

	// true while the engine is executing
	executing bool

	ended bool

	videoAck  func()
	resetHook func()
}

// NewM68K is the preferred method of initialisation for the M68K type. The
// engine is attached to the new M68K and the generic handlers of the memory
// subsystem are installed over the address space, except for the canonical
// RAM bank. The memory subsystem can be nil but InitSys() will fail until one
// is plumbed in with Plumb().
func NewM68K(env *environment.Environment, engine Engine, mem Memory) (*M68K, error) {
	if engine == nil {
		return nil, fmt.Errorf("m68k: %w", NoEngine)
	}

	m := &M68K{
		env:     env,
		engine:  engine,
		banking: bus.NewTable(),
		ram:     newRAM(),
	}

	for i := range m.vectors {
		m.vectors[i] = AutoVector
	}

	m.Plumb(mem)

	m.banking.SetFetch(memorymap.OriginRAM, memorymap.MemtopRAM, m.ram.data)
	m.banking.SetMemReadFunc(memorymap.OriginRAM, memorymap.MemtopRAM, m.ram)
	m.banking.SetMemWriteFunc(memorymap.OriginRAM, memorymap.MemtopRAM, m.ram)

	m.engine.Attach(m)

	return m, nil
}

// Plumb a new memory subsystem into the M68K. The generic handlers are
// installed immediately but the system banks are not installed until the
// next call to InitSys().
func (m *M68K) Plumb(mem Memory) {
	m.mem = mem
	if mem == nil {
		return
	}

	m.installGeneric()

	// memory subsystems that can change the cartridge mapping by themselves
	// (the SRAM control register) need to be able to reapply the banking
	if n, ok := mem.(interface{ OnBankingChange(func()) }); ok {
		n.OnBankingChange(func() {
			m.UpdateSysBanking()
		})
	}
}

// installGeneric points every bank except the canonical RAM bank at the
// generic handlers of the memory subsystem. fetch memory is not changed
func (m *M68K) installGeneric() {
	m.banking.SetMemReadFunc(memorymap.OriginROM, memorymap.MemtopGeneric, m.mem)
	m.banking.SetMemWriteFunc(memorymap.OriginROM, memorymap.MemtopGeneric, m.mem)
}

func (m *M68K) String() string {
	return fmt.Sprintf("%s odometer=%d", m.sys, m.odometer)
}

// End detaches the engine and stubs the bus dispatch table. The M68K cannot be
// used again.
func (m *M68K) End() {
	if m.ended {
		return
	}
	m.engine.Detach()
	m.banking.Stub()
	m.sys = memorymap.SysNone
	m.ended = true
}

// SysID returns the system selected by the most recent call to InitSys().
func (m *M68K) SysID() memorymap.SysID {
	return m.sys
}

// Banking returns a snapshot of the bus dispatch table. Changes to the
// snapshot do not affect the M68K.
func (m *M68K) Banking() *bus.Table {
	return m.banking.Snapshot()
}

// InitSys brings up the system. In order:
//
//  1. work RAM is cleared and every bank below 0xff0000 is reset to the
//     generic handlers with no fetch memory
//  2. the memory subsystem installs the banks for the system
//  3. work RAM is installed over the 32 mirror banks
//  4. UpdateSysBanking() is called
//  5. the engine is reset
//
// If the memory subsystem fails, the dispatch table is stubbed and no system
// is selected.
func (m *M68K) InitSys(sys memorymap.SysID) error {
	if m.ended {
		return fmt.Errorf("m68k: %w", Ended)
	}
	if m.mem == nil {
		return fmt.Errorf("m68k: %w", NoMemory)
	}

	m.ram.clear()

	// nothing installed by a previous system survives. the generic handlers
	// are also lost if EndSys() has been called
	m.installGeneric()
	m.banking.SetFetch(memorymap.OriginROM, memorymap.MemtopGeneric, nil)
	m.banking.SetMemReadFunc(memorymap.OriginRAM, memorymap.MemtopRAM, m.ram)
	m.banking.SetMemWriteFunc(memorymap.OriginRAM, memorymap.MemtopRAM, m.ram)

	if err := m.mem.InitSys(sys, m.banking); err != nil {
		m.EndSys()
		return fmt.Errorf("m68k: %w", err)
	}

	// the fetch offset increases by one bank for each bank in a range so each
	// mirror must be installed separately
	for i := 0; i < memorymap.NumRAMMirrors; i++ {
		low := memorymap.OriginRAMMirror | uint32(i)<<memorymap.BankShift
		m.banking.SetFetch(low, low|memorymap.BankMask, m.ram.data)
	}
	m.banking.SetMemReadFunc(memorymap.OriginRAMMirror, memorymap.MemtopRAM, m.ram)
	m.banking.SetMemWriteFunc(memorymap.OriginRAMMirror, memorymap.MemtopRAM, m.ram)

	m.sys = sys
	next := m.UpdateSysBanking()

	m.Reset()

	logger.Logf(m.env, "m68k", "%s initialised (next free bank %#02x)", sys, next)

	return nil
}

// EndSys stubs every entry of the bus dispatch table. Reads return all ones
// and writes are discarded until the next call to InitSys().
func (m *M68K) EndSys() {
	m.banking.Stub()
	m.sys = memorymap.SysNone
}

// banking profiles patch the table from the bank given to them and return the
// next free bank
type bankingProfile func(m *M68K, bank int) int

var profiles = map[memorymap.SysID]bankingProfile{
	memorymap.SysMD:   cartridgeBanking,
	memorymap.SysPico: cartridgeBanking,
	memorymap.SysMCD:  addonBanking,
	memorymap.Sys32X:  addonBanking,
}

func cartridgeBanking(m *M68K, bank int) int {
	return bank + m.mem.UpdateSysBanking(m.banking, bank)
}

// the CD and 32X windows are not emulated. the profile exists so that the
// banks can be claimed here when they are
func addonBanking(m *M68K, bank int) int {
	logger.Logf(m.env, "m68k", "%s: expansion banks are not emulated", m.sys)
	return bank
}

// UpdateSysBanking reapplies the banking profile of the current system from
// memorymap.BankSysBanking. Returns the next free bank.
//
// The result depends only on the current system and the state of the memory
// subsystem. Calling UpdateSysBanking() twice in a row leaves the dispatch
// table unchanged. An unknown system has no additional banking.
func (m *M68K) UpdateSysBanking() int {
	bank := memorymap.BankSysBanking
	if m.ended || m.mem == nil {
		return bank
	}
	if p, ok := profiles[m.sys]; ok {
		bank = p(m, bank)
	}
	return bank
}

// Reset pulses the reset line of the engine.
func (m *M68K) Reset() {
	if m.ended {
		return
	}
	m.engine.PulseReset()
}
