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

package m68k_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopherdrive/environment"
	"github.com/jetsetilly/gopherdrive/hardware/m68k"
	"github.com/jetsetilly/gopherdrive/hardware/m68k/registers"
	"github.com/jetsetilly/gopherdrive/hardware/memory/bus"
	"github.com/jetsetilly/gopherdrive/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdrive/test"
)

// calls to the mock engine and mock memory are recorded in a shared journal
// so that the order of operations can be checked
type journal []string

func (j *journal) add(s string) {
	*j = append(*j, s)
}

// mockEngine is a register file with the stack pointer banking of the 68000.
// it does not execute instructions
type mockEngine struct {
	journal *journal
	host    m68k.Host

	detached bool
	resets   int
	pending  [8]bool

	// called by Execute(). if nil all requested cycles are consumed
	execute func(host m68k.Host, cycles int) int

	d   [8]uint32
	a   [8]uint32
	pc  uint32
	sr  uint16
	usp uint32
	ssp uint32
}

func (e *mockEngine) supervisor() bool {
	return e.sr&registers.Supervisor == registers.Supervisor
}

func (e *mockEngine) Attach(host m68k.Host) {
	e.host = host
	e.journal.add("attach")
}

func (e *mockEngine) Detach() {
	e.detached = true
	e.journal.add("detach")
}

func (e *mockEngine) PulseReset() {
	e.resets++
	e.sr = 0x2700
	e.journal.add("reset")
}

func (e *mockEngine) SetIRQ(level int) {
	e.pending[level] = true
}

func (e *mockEngine) ClearIRQ(level int) {
	e.pending[level] = false
}

func (e *mockEngine) Execute(cycles int) int {
	if e.execute == nil {
		return cycles
	}
	return e.execute(e.host, cycles)
}

func (e *mockEngine) Register(reg m68k.Register) uint32 {
	switch {
	case reg >= m68k.D0 && reg <= m68k.D7:
		return e.d[reg-m68k.D0]
	case reg >= m68k.A0 && reg <= m68k.A7:
		return e.a[reg-m68k.A0]
	}
	switch reg {
	case m68k.PC:
		return e.pc
	case m68k.SR:
		return uint32(e.sr)
	case m68k.USP:
		if e.supervisor() {
			return e.usp
		}
		return e.a[7]
	case m68k.SSPShadow:
		return e.ssp
	}
	return 0
}

func (e *mockEngine) SetRegister(reg m68k.Register, value uint32) {
	switch {
	case reg >= m68k.D0 && reg <= m68k.D7:
		e.d[reg-m68k.D0] = value
		return
	case reg >= m68k.A0 && reg <= m68k.A7:
		e.a[reg-m68k.A0] = value
		return
	}
	switch reg {
	case m68k.PC:
		e.pc = value
	case m68k.SR:
		was := e.supervisor()
		e.sr = uint16(value)
		is := e.supervisor()
		if was && !is {
			e.ssp = e.a[7]
			e.a[7] = e.usp
		} else if !was && is {
			e.usp = e.a[7]
			e.a[7] = e.ssp
		}
	case m68k.USP:
		if e.supervisor() {
			e.usp = value
		} else {
			e.a[7] = value
		}
	case m68k.SSPShadow:
		e.ssp = value
	}
}

// marker is installed by the mock memory so that the banks it claims can be
// identified
type marker struct {
	value uint8
}

func (m *marker) Read8(_ uint32) uint8 {
	return m.value
}

func (m *marker) Read16(_ uint32) uint16 {
	return uint16(m.value)<<8 | uint16(m.value)
}

func (m *marker) Write8(_ uint32, _ uint8) {
}

func (m *marker) Write16(_ uint32, _ uint16) {
}

var mockFailure = errors.New("mock failure")

// mockMemory installs a ROM over the first bank and claims a configurable
// number of banks from the banking bank
type mockMemory struct {
	journal *journal

	fail    bool
	claim   int
	updates int

	// called for writes that reach the generic handlers
	onWrite func(address uint32)

	rom     []byte
	generic marker
	banked  marker
}

func newMockMemory(j *journal) *mockMemory {
	mem := &mockMemory{
		journal: j,
		claim:   0x10,
		rom:     make([]byte, memorymap.BankSize),
		generic: marker{value: 0x11},
		banked:  marker{value: 0x22},
	}

	// reset vectors. SSP=00fffe00 PC=00000200
	copy(mem.rom, []byte{0x00, 0xff, 0xfe, 0x00, 0x00, 0x00, 0x02, 0x00})

	return mem
}

func (mem *mockMemory) Read8(address uint32) uint8 {
	return mem.generic.Read8(address)
}

func (mem *mockMemory) Read16(address uint32) uint16 {
	return mem.generic.Read16(address)
}

func (mem *mockMemory) Write8(address uint32, _ uint8) {
	if mem.onWrite != nil {
		mem.onWrite(address)
	}
}

func (mem *mockMemory) Write16(address uint32, _ uint16) {
	if mem.onWrite != nil {
		mem.onWrite(address)
	}
}

func (mem *mockMemory) InitSys(sys memorymap.SysID, banking *bus.Table) error {
	mem.journal.add("initsys " + sys.String())
	if mem.fail {
		return mockFailure
	}

	// anything the memory subsystem installs over the RAM mirrors must be
	// replaced by M68K.InitSys()
	banking.SetMemReadFunc(memorymap.OriginRAMMirror, memorymap.MemtopRAM, &mem.banked)

	banking.SetFetch(0, memorymap.BankMask, mem.rom)
	return nil
}

func (mem *mockMemory) UpdateSysBanking(banking *bus.Table, bank int) int {
	mem.updates++
	mem.journal.add("banking")
	low := memorymap.BankOrigin(bank)
	high := memorymap.BankOrigin(bank+mem.claim) - 1
	banking.SetMemReadFunc(low, high, &mem.banked)
	banking.SetMemWriteFunc(low, high, &mem.banked)
	return mem.claim
}

type fixture struct {
	journal journal
	engine  *mockEngine
	mem     *mockMemory
	m       *m68k.M68K
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)

	f := &fixture{}
	f.engine = &mockEngine{journal: &f.journal}
	f.mem = newMockMemory(&f.journal)

	f.m, err = m68k.NewM68K(env, f.engine, f.mem)
	test.DemandSuccess(t, err)

	return f
}
