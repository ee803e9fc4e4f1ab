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
	"strings"
	"testing"

	"github.com/jetsetilly/gopherdrive/environment"
	"github.com/jetsetilly/gopherdrive/hardware/m68k"
	"github.com/jetsetilly/gopherdrive/hardware/m68k/idle"
	"github.com/jetsetilly/gopherdrive/hardware/memory"
	"github.com/jetsetilly/gopherdrive/hardware/memory/bus"
	"github.com/jetsetilly/gopherdrive/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdrive/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdrive/test"
)

func TestNoEngine(t *testing.T) {
	_, err := m68k.NewM68K(nil, nil, nil)
	test.ExpectSuccess(t, errors.Is(err, m68k.NoEngine))
}

func TestNoMemory(t *testing.T) {
	var j journal
	m, err := m68k.NewM68K(nil, &mockEngine{journal: &j}, nil)
	test.DemandSuccess(t, err)

	err = m.InitSys(memorymap.SysMD)
	test.ExpectSuccess(t, errors.Is(err, m68k.NoMemory))

	// the canonical RAM bank is always available
	m.Write16(0xff0000, 0x1234)
	test.ExpectEquality(t, m.Read16(0xff0000), uint16(0x1234))

	// everything else is stubbed
	test.ExpectEquality(t, m.Read16(0x000000), uint16(0xffff))
}

func TestInit(t *testing.T) {
	f := newFixture(t)

	test.ExpectEquality(t, strings.Join(f.journal, ","), "attach")
	test.ExpectEquality(t, f.engine.host != nil, true)
	test.ExpectEquality(t, f.m.SysID(), memorymap.SysNone)

	// generic handlers over everything except the canonical RAM bank
	test.ExpectEquality(t, f.m.Read8(0x000000), uint8(0x11))
	test.ExpectEquality(t, f.m.Read8(0xc00000), uint8(0x11))
	test.ExpectEquality(t, f.m.Read8(0xfeffff), uint8(0x11))

	_, ok := f.m.Fetch16(0xff0000)
	test.ExpectSuccess(t, ok)
	_, ok = f.m.Fetch16(0xfe0000)
	test.ExpectFailure(t, ok)
}

func TestInitSysOrder(t *testing.T) {
	f := newFixture(t)
	f.journal = nil

	test.DemandSuccess(t, f.m.InitSys(memorymap.SysMD))
	test.ExpectEquality(t, strings.Join(f.journal, ","), "initsys MD,banking,reset")
	test.ExpectEquality(t, f.m.SysID(), memorymap.SysMD)
}

func TestInitSysRAM(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.m.InitSys(memorymap.SysMD))

	f.m.Write16(0xff1000, 0xbeef)

	// every mirror fetches and reads the same memory
	for i := 0; i < memorymap.NumRAMMirrors; i++ {
		address := memorymap.OriginRAMMirror | uint32(i)<<16 | 0x1000
		v, ok := f.m.Fetch16(address)
		test.ExpectSuccess(t, ok, i)
		test.ExpectEquality(t, v, uint16(0xbeef), i)
		test.ExpectEquality(t, f.m.Read16(address), uint16(0xbeef), i)
	}

	// writes through a mirror
	f.m.Write8(0xe01001, 0x00)
	test.ExpectEquality(t, f.m.Read16(0xff1000), uint16(0xbe00))

	// InitSys clears RAM
	test.DemandSuccess(t, f.m.InitSys(memorymap.SysMD))
	test.ExpectEquality(t, f.m.Read16(0xff1000), uint16(0x0000))
}

func TestInitSysHandlers(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.m.InitSys(memorymap.SysMD))

	tbl := f.m.Banking()
	for i := 0; i < memorymap.NumBanks; i++ {
		e := tbl.Entry(i)
		test.ExpectEquality(t, e.Reader != nil, true, i)
		test.ExpectEquality(t, e.Writer != nil, true, i)
	}

	// system fetch installed by the memory subsystem
	v, ok := f.m.Fetch16(0x000006)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint16(0x0200))
}

func TestInitSysFailure(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.m.InitSys(memorymap.SysMD))

	f.mem.fail = true
	err := f.m.InitSys(memorymap.Sys32X)
	test.ExpectSuccess(t, errors.Is(err, mockFailure))
	test.ExpectEquality(t, f.m.SysID(), memorymap.SysNone)

	// a failed bring up leaves nothing live on the bus
	stubbed := bus.NewTable()
	test.ExpectSuccess(t, f.m.Banking().Equal(stubbed))
}

func TestUpdateSysBanking(t *testing.T) {
	for _, sys := range []memorymap.SysID{memorymap.SysMD, memorymap.SysPico} {
		f := newFixture(t)
		test.DemandSuccess(t, f.m.InitSys(sys), sys)

		test.ExpectEquality(t, f.m.Read8(0x200000), uint8(0x22), sys)
		test.ExpectEquality(t, f.m.Read8(0x2fffff), uint8(0x22), sys)
		test.ExpectEquality(t, f.m.Read8(0x300000), uint8(0x11), sys)

		before := f.m.Banking()
		test.ExpectEquality(t, f.m.UpdateSysBanking(), 0x30, sys)
		test.ExpectSuccess(t, f.m.Banking().Equal(before), sys)
	}
}

func TestUpdateSysBankingAddons(t *testing.T) {
	for _, sys := range []memorymap.SysID{memorymap.SysMCD, memorymap.Sys32X} {
		f := newFixture(t)
		test.DemandSuccess(t, f.m.InitSys(sys), sys)
		test.ExpectEquality(t, f.mem.updates, 0, sys)

		before := f.m.Banking()
		test.ExpectEquality(t, f.m.UpdateSysBanking(), memorymap.BankSysBanking, sys)
		test.ExpectSuccess(t, f.m.Banking().Equal(before), sys)
	}
}

func TestUpdateSysBankingUnknown(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.m.InitSys(memorymap.SysID(99)))
	test.ExpectEquality(t, f.mem.updates, 0)
	test.ExpectEquality(t, f.m.UpdateSysBanking(), memorymap.BankSysBanking)
}

func TestEndSys(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.m.InitSys(memorymap.SysMD))
	f.m.Write16(0xff0000, 0x1234)

	f.m.EndSys()

	for address := uint32(0); address < 0x1000000; address += 0x7f01 {
		f.m.Write8(address, 0x00)
		f.m.Write16(address&^1, 0x0000)
		test.ExpectEquality(t, f.m.Read8(address), uint8(0xff), address)
		test.ExpectEquality(t, f.m.Read16(address&^1), uint16(0xffff), address)
		_, ok := f.m.Fetch16(address &^ 1)
		test.ExpectFailure(t, ok, address)
	}

	test.ExpectEquality(t, f.m.Read16(0xff0000), uint16(0xffff))
	test.ExpectEquality(t, f.m.SysID(), memorymap.SysNone)
	test.ExpectEquality(t, f.m.UpdateSysBanking(), memorymap.BankSysBanking)
}

func TestInitSysAfterEndSys(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.m.InitSys(memorymap.SysMD))
	before := f.m.Banking()

	f.m.EndSys()
	test.DemandSuccess(t, f.m.InitSys(memorymap.SysMD))
	test.ExpectSuccess(t, f.m.Banking().Equal(before))

	test.ExpectEquality(t, f.m.Read8(0x100000), uint8(0x11))
	f.m.Write16(0xff0000, 0x1234)
	test.ExpectEquality(t, f.m.Read16(0xe00000), uint16(0x1234))
}

func TestSwitchSystem(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.m.InitSys(memorymap.SysMCD))
	mcd := f.m.Banking()

	test.DemandSuccess(t, f.m.InitSys(memorymap.SysMD))
	test.ExpectFailure(t, f.m.Banking().Equal(mcd))

	test.DemandSuccess(t, f.m.InitSys(memorymap.SysMCD))
	test.ExpectSuccess(t, f.m.Banking().Equal(mcd))
	test.ExpectEquality(t, f.m.Read8(0x200000), uint8(0x11))
}

// newCartridge creates a cartridge of the specified size. every byte of the
// ROM is set to the fill value
func newCartridge(t *testing.T, size int, fill uint8) *cartridge.Cartridge {
	t.Helper()
	rom := make([]byte, size)
	for i := range rom {
		rom[i] = fill
	}
	cart, err := cartridge.NewCartridge("test", rom)
	test.DemandSuccess(t, err)
	return cart
}

func newMemorySystem(t *testing.T) (*m68k.M68K, *memory.Memory) {
	t.Helper()
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	mem := memory.NewMemory(env)
	m, err := m68k.NewM68K(env, idle.NewEngine(), mem)
	test.DemandSuccess(t, err)
	return m, mem
}

func TestSwitchSystemWithCartridge(t *testing.T) {
	m, mem := newMemorySystem(t)
	mem.Attach(newCartridge(t, 0x300000, 0x25))

	test.DemandSuccess(t, m.InitSys(memorymap.SysMCD))
	mcd := m.Banking()
	_, ok := m.Fetch16(0x250000)
	test.ExpectFailure(t, ok)

	// the cartridge is visible beyond bank 0x20 for the MD
	test.DemandSuccess(t, m.InitSys(memorymap.SysMD))
	v, ok := m.Fetch16(0x250000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint16(0x2525))

	test.DemandSuccess(t, m.InitSys(memorymap.SysMCD))
	test.ExpectSuccess(t, m.Banking().Equal(mcd))
	_, ok = m.Fetch16(0x250000)
	test.ExpectFailure(t, ok)
}

func TestSmallerCartridge(t *testing.T) {
	m, mem := newMemorySystem(t)
	small := newCartridge(t, 0x10000, 0x33)

	mem.Attach(small)
	test.DemandSuccess(t, m.InitSys(memorymap.SysMD))
	fresh := m.Banking()

	mem.Attach(newCartridge(t, 0x300000, 0x25))
	test.DemandSuccess(t, m.InitSys(memorymap.SysMD))
	_, ok := m.Fetch16(0x100000)
	test.ExpectSuccess(t, ok)

	// nothing of the larger cartridge remains in banks beyond the end of the
	// smaller cartridge
	mem.Attach(small)
	test.DemandSuccess(t, m.InitSys(memorymap.SysMD))
	test.ExpectSuccess(t, m.Banking().Equal(fresh))
	for address := uint32(0x010000); address < 0x400000; address += 0x10000 {
		_, ok := m.Fetch16(address)
		test.ExpectFailure(t, ok, address)
	}
	v, ok := m.Fetch16(0x000100)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint16(0x3333))
}

func TestEnd(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.m.InitSys(memorymap.SysMD))

	f.m.End()
	test.ExpectSuccess(t, f.engine.detached)
	test.ExpectEquality(t, f.m.Read8(0xff0000), uint8(0xff))

	err := f.m.InitSys(memorymap.SysMD)
	test.ExpectSuccess(t, errors.Is(err, m68k.Ended))

	_, err = f.m.SaveRegisters()
	test.ExpectSuccess(t, errors.Is(err, m68k.Ended))

	test.ExpectEquality(t, f.m.Exec(1000), 0)

	// ending twice is harmless
	f.m.End()
}

func TestResetHook(t *testing.T) {
	f := newFixture(t)

	// no hook
	f.m.ResetHandler()

	var n int
	f.m.SetResetHook(func() { n++ })
	f.m.ResetHandler()
	test.ExpectEquality(t, n, 1)

	f.m.SetResetHook(nil)
	f.m.ResetHandler()
	test.ExpectEquality(t, n, 1)
}

func TestRegisterString(t *testing.T) {
	test.ExpectEquality(t, m68k.D3.String(), "D3")
	test.ExpectEquality(t, m68k.A7.String(), "A7")
	test.ExpectEquality(t, m68k.SSPShadow.String(), "SSP")
	test.ExpectEquality(t, m68k.NumRegisters, 20)
}
