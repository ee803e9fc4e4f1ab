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

package idle

import (
	"fmt"

	"github.com/jetsetilly/gopherdrive/hardware/m68k"
	"github.com/jetsetilly/gopherdrive/hardware/m68k/registers"
)

// Number of cycles taken by the 68000 to accept an interrupt.
const InterruptCycles = 44

// Number of cycles taken by the reset sequence.
const ResetCycles = 40

// first autovector. the autovector for a level is AutoVectorBase + level
const AutoVectorBase = 24

// Engine is an implementation of the m68k.Engine interface for a 68000 that
// is held in the STOP state. It executes no instructions but it does model
// the reset sequence and interrupt acceptance, including the exchange of the
// stack pointers.
//
// After accepting an interrupt the engine returns to the STOP state, as though
// the first instruction of every handler were STOP.
type Engine struct {
	host m68k.Host

	d   [8]uint32
	a   [8]uint32
	pc  uint32
	sr  registers.StatusRegister
	usp uint32
	ssp uint32

	// pending interrupt requests. index zero is unused
	pending [8]bool

	// cycles owed by the reset sequence
	owed int

	// Imprecise causes Execute() to return a negative number rather than the
	// number of cycles consumed
	Imprecise bool

	// number of interrupts accepted
	Accepted int
}

// NewEngine is the preferred method of initialisation for the Engine type.
func NewEngine() *Engine {
	return &Engine{
		sr: registers.StatusRegister(0x2700),
	}
}

func (e *Engine) String() string {
	return fmt.Sprintf("PC=%08x SR=%s A7=%08x", e.pc, e.sr, e.a[7])
}

// Attach implements the m68k.Engine interface.
func (e *Engine) Attach(host m68k.Host) {
	e.host = host
}

// Detach implements the m68k.Engine interface.
func (e *Engine) Detach() {
	e.host = nil
}

func (e *Engine) read32(address uint32) uint32 {
	return uint32(e.host.Read16(address))<<16 | uint32(e.host.Read16(address+2))
}

func (e *Engine) push16(v uint16) {
	e.a[7] -= 2
	e.host.Write16(e.a[7], v)
}

func (e *Engine) push32(v uint32) {
	e.push16(uint16(v))
	e.push16(uint16(v >> 16))
}

// PulseReset implements the m68k.Engine interface. The supervisor stack
// pointer and the program counter are loaded from the first two vectors.
func (e *Engine) PulseReset() {
	e.pending = [8]bool{}
	e.owed = ResetCycles
	e.setSR(registers.StatusRegister(0x2700))
	if e.host == nil {
		return
	}
	e.a[7] = e.read32(0)
	e.pc = e.read32(4)
}

// SetIRQ implements the m68k.Engine interface.
func (e *Engine) SetIRQ(level int) {
	if level > 0 && level < len(e.pending) {
		e.pending[level] = true
	}
}

// ClearIRQ implements the m68k.Engine interface.
func (e *Engine) ClearIRQ(level int) {
	if level > 0 && level < len(e.pending) {
		e.pending[level] = false
	}
}

// the highest pending level that is not masked. level 7 cannot be masked
func (e *Engine) interruptLevel() int {
	mask := e.sr.InterruptMask()
	for level := 7; level > 0; level-- {
		if e.pending[level] && (level > mask || level == 7) {
			return level
		}
	}
	return 0
}

func (e *Engine) accept(level int) {
	vector, err := e.host.AcknowledgeInterrupt(level)
	if err != nil || vector == m68k.AutoVector {
		vector = AutoVectorBase + level
	}

	// the host lowers the request during acknowledgement but the engine
	// cannot rely on that
	e.pending[level] = false

	old := e.sr
	e.setSR((old | registers.StatusRegister(registers.Supervisor)).WithInterruptMask(level) &^ registers.StatusRegister(registers.Trace))

	e.push32(e.pc)
	e.push16(uint16(old))

	e.pc = e.read32(uint32(vector) * 4)
	e.Accepted++
}

// Execute implements the m68k.Engine interface. All requested cycles are
// consumed. Accepting an interrupt can take the engine beyond the requested
// number of cycles.
func (e *Engine) Execute(cycles int) int {
	consumed := e.owed
	e.owed = 0

	if e.host != nil {
		for level := e.interruptLevel(); level > 0; level = e.interruptLevel() {
			e.accept(level)
			consumed += InterruptCycles
		}
	}

	if consumed < cycles {
		consumed = cycles
	}

	if e.Imprecise {
		return -1
	}
	return consumed
}

// setSR exchanges the stack pointers if the S bit changes
func (e *Engine) setSR(sr registers.StatusRegister) {
	was := e.sr.IsSupervisor()
	e.sr = sr
	is := e.sr.IsSupervisor()
	if was && !is {
		e.ssp = e.a[7]
		e.a[7] = e.usp
	} else if !was && is {
		e.usp = e.a[7]
		e.a[7] = e.ssp
	}
}

// Register implements the m68k.Engine interface.
func (e *Engine) Register(reg m68k.Register) uint32 {
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
		if e.sr.IsSupervisor() {
			return e.usp
		}
		return e.a[7]
	case m68k.SSPShadow:
		return e.ssp
	}

	return 0
}

// SetRegister implements the m68k.Engine interface. Setting SR exchanges the
// stack pointers if the S bit changes.
func (e *Engine) SetRegister(reg m68k.Register, value uint32) {
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
		e.setSR(registers.StatusRegister(value))
	case m68k.USP:
		if e.sr.IsSupervisor() {
			e.usp = value
		} else {
			e.a[7] = value
		}
	case m68k.SSPShadow:
		e.ssp = value
	}
}
