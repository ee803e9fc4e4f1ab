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

// Register identifies a register of the 68000 in the Engine interface.
type Register int

// List of valid Register values.
//
// A7 is the active stack pointer. Which of the two stack pointers is active
// depends on the S bit of SR. USP is the user stack pointer regardless of the
// mode. SSPShadow is the slot that holds the supervisor stack pointer while
// the CPU is in user mode. The slot is stale while in supervisor mode.
const (
	D0 Register = iota
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	A0
	A1
	A2
	A3
	A4
	A5
	A6
	A7
	PC
	SR
	USP
	SSPShadow
)

// NumRegisters is the number of valid Register values.
const NumRegisters = int(SSPShadow) + 1

func (r Register) String() string {
	switch {
	case r >= D0 && r <= D7:
		return "D" + string(rune('0'+int(r-D0)))
	case r >= A0 && r <= A7:
		return "A" + string(rune('0'+int(r-A0)))
	}
	switch r {
	case PC:
		return "PC"
	case SR:
		return "SR"
	case USP:
		return "USP"
	case SSPShadow:
		return "SSP"
	}
	return "undefined"
}

// AutoVector can be recorded for an interrupt level to indicate that the
// engine should use the autovector for the level (24 + level).
const AutoVector = -1

// Host is the interface the engine uses to reach the rest of the emulation.
// It is implemented by the M68K type and is given to the engine with
// Engine.Attach().
type Host interface {
	Read8(address uint32) uint8
	Read16(address uint32) uint16
	Write8(address uint32, data uint8)
	Write16(address uint32, data uint16)

	// Fetch16 reads an instruction word directly from fetch memory. Returns
	// false if the address has no fetch memory. The engine should fall back
	// to Read16() in that case.
	Fetch16(address uint32) (uint16, bool)

	// ResetHandler is called by the engine when it executes the RESET
	// instruction.
	ResetHandler()

	// AcknowledgeInterrupt is called by the engine when it accepts an
	// interrupt. It returns the vector number to use, or AutoVector.
	AcknowledgeInterrupt(level int) (int, error)
}

// Engine is the instruction execution engine. The engine decodes and executes
// 68000 instructions and accesses memory through the Host.
type Engine interface {
	// Attach the engine to the host. Called once by NewM68K().
	Attach(host Host)

	// Detach the engine from the host. Called by End().
	Detach()

	// PulseReset asserts the reset line. The engine loads the stack pointer
	// and program counter from the reset vectors.
	PulseReset()

	// SetIRQ and ClearIRQ raise and lower the interrupt request at level.
	SetIRQ(level int)
	ClearIRQ(level int)

	// Execute runs the engine for at least the number of cycles. Returns the
	// number of cycles consumed, or a negative number if the engine cannot
	// report the number of cycles precisely.
	Execute(cycles int) int

	Register(reg Register) uint32
	SetRegister(reg Register, value uint32)
}
