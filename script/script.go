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

package script

import (
	"fmt"
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/gopherdrive/environment"
	"github.com/jetsetilly/gopherdrive/hardware/m68k"
	"github.com/jetsetilly/gopherdrive/hardware/m68k/registers"
	"github.com/jetsetilly/gopherdrive/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdrive/logger"
)

// Script runs Lua programs against an M68K. The Lua state has the following
// functions in addition to the base library:
//
//	initsys(system)          bring up the system ("MD", "MCD", "32X", "PICO")
//	endsys()                 stub the bus
//	exec(target)             run until the odometer reaches target
//	odometer()               read the odometer
//	trip()                   reset the odometer and return the previous value
//	addcycles(n)             advance the odometer without executing
//	interrupt(level, vector) raise an interrupt. vector is optional
//	save()                   table of registers
//	restore(table)           restore registers from a table made by save()
//	peek(address)            8bit read
//	peek16(address)          16bit read
//	poke(address, value)     8bit write
//	poke16(address, value)   16bit write
//	banking()                next free bank after reapplying the banking
//	log(message)             add an entry to the central log
//
// The print function writes to the output given to NewScript().
type Script struct {
	env    *environment.Environment
	cpu    *m68k.M68K
	output io.Writer
	state  *lua.LState
}

// NewScript is the preferred method of initialisation for the Script type.
func NewScript(env *environment.Environment, cpu *m68k.M68K, output io.Writer) *Script {
	scr := &Script{
		env:    env,
		cpu:    cpu,
		output: output,
		state:  lua.NewState(),
	}

	for name, fn := range map[string]lua.LGFunction{
		"initsys":   scr.initsys,
		"endsys":    scr.endsys,
		"exec":      scr.exec,
		"odometer":  scr.odometer,
		"trip":      scr.trip,
		"addcycles": scr.addcycles,
		"interrupt": scr.interrupt,
		"save":      scr.save,
		"restore":   scr.restore,
		"peek":      scr.peek,
		"peek16":    scr.peek16,
		"poke":      scr.poke,
		"poke16":    scr.poke16,
		"banking":   scr.banking,
		"log":       scr.log,
		"print":     scr.print,
	} {
		scr.state.SetGlobal(name, scr.state.NewFunction(fn))
	}

	return scr
}

// Close the Lua state. The Script cannot be used again.
func (scr *Script) Close() {
	scr.state.Close()
}

// RunString runs the Lua program in src.
func (scr *Script) RunString(src string) error {
	if err := scr.state.DoString(src); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// RunFile runs the Lua program in the named file.
func (scr *Script) RunFile(filename string) error {
	if err := scr.state.DoFile(filename); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

func (scr *Script) initsys(L *lua.LState) int {
	sys, err := memorymap.ParseSysID(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	if err := scr.cpu.InitSys(sys); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) endsys(L *lua.LState) int {
	scr.cpu.EndSys()
	return 0
}

func (scr *Script) exec(L *lua.LState) int {
	L.Push(lua.LNumber(scr.cpu.Exec(L.CheckInt(1))))
	return 1
}

func (scr *Script) odometer(L *lua.LState) int {
	L.Push(lua.LNumber(scr.cpu.ReadOdometer()))
	return 1
}

func (scr *Script) trip(L *lua.LState) int {
	L.Push(lua.LNumber(scr.cpu.TripOdometer()))
	return 1
}

func (scr *Script) addcycles(L *lua.LState) int {
	scr.cpu.AddCycles(L.CheckInt(1))
	return 0
}

func (scr *Script) interrupt(L *lua.LState) int {
	level := L.CheckInt(1)
	vector := L.OptInt(2, m68k.AutoVector)
	if err := scr.cpu.Interrupt(level, vector); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

// names of the fields in the table used by save() and restore()
func dataField(i int) string    { return fmt.Sprintf("d%d", i) }
func addressField(i int) string { return fmt.Sprintf("a%d", i) }

func (scr *Script) save(L *lua.LState) int {
	s, err := scr.cpu.SaveRegisters()
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}

	t := L.NewTable()
	for i, v := range s.D {
		t.RawSetString(dataField(i), lua.LNumber(v))
	}
	for i, v := range s.A {
		t.RawSetString(addressField(i), lua.LNumber(v))
	}
	t.RawSetString("ssp", lua.LNumber(s.SSP))
	t.RawSetString("usp", lua.LNumber(s.USP))
	t.RawSetString("pc", lua.LNumber(s.PC))
	t.RawSetString("sr", lua.LNumber(s.SR))
	t.RawSetString("a7", lua.LNumber(s.A7()))

	L.Push(t)
	return 1
}

func (scr *Script) restore(L *lua.LState) int {
	t := L.CheckTable(1)

	field := func(name string) uint32 {
		v, ok := t.RawGetString(name).(lua.LNumber)
		if !ok {
			L.ArgError(1, fmt.Sprintf("missing register %s", name))
		}
		return uint32(v)
	}

	var s registers.Snapshot
	for i := range s.D {
		s.D[i] = field(dataField(i))
	}
	for i := range s.A {
		s.A[i] = field(addressField(i))
	}
	s.SSP = field("ssp")
	s.USP = field("usp")
	s.PC = field("pc")
	s.SR = registers.StatusRegister(field("sr"))

	if err := scr.cpu.RestoreRegisters(s); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) peek(L *lua.LState) int {
	L.Push(lua.LNumber(scr.cpu.Read8(uint32(L.CheckInt(1)))))
	return 1
}

func (scr *Script) peek16(L *lua.LState) int {
	L.Push(lua.LNumber(scr.cpu.Read16(uint32(L.CheckInt(1)))))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	scr.cpu.Write8(uint32(L.CheckInt(1)), uint8(L.CheckInt(2)))
	return 0
}

func (scr *Script) poke16(L *lua.LState) int {
	scr.cpu.Write16(uint32(L.CheckInt(1)), uint16(L.CheckInt(2)))
	return 0
}

func (scr *Script) banking(L *lua.LState) int {
	L.Push(lua.LNumber(scr.cpu.UpdateSysBanking()))
	return 1
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(scr.env, "script", L.CheckString(1))
	return 0
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	return 0
}
