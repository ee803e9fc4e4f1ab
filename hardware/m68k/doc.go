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

// Package m68k integrates a 68000 instruction execution engine with the bus of
// the console.
//
// The engine is supplied by the caller as an implementation of the Engine
// interface. The M68K type gives the engine access to memory through a bus
// dispatch table with one entry for each 64KiB bank of the 24bit address
// space, and services the callbacks the engine makes for the RESET
// instruction and for interrupt acknowledgement.
//
// The life of an M68K:
//
//	m, err := m68k.NewM68K(env, engine, mem)
//	err = m.InitSys(memorymap.SysMD)
//	for running {
//		m.Exec(cyclesPerFrame)
//		m.TripOdometer()
//	}
//	m.EndSys()
//	m.End()
//
// Peripherals raise interrupts with Interrupt(). The vector recorded for the
// level is returned to the engine when it acknowledges the interrupt. Levels 4
// and 6 belong to the video subsystem, which is told of the acknowledgement
// through the function given to SetVideoAcknowledge().
//
// The odometer counts the cycles executed since the last call to
// TripOdometer(). Exec() takes a target for the odometer rather than a number
// of cycles, so that a scheduler can run several processors to the same point
// in time.
//
// SaveRegisters() and RestoreRegisters() copy the registers of the engine to
// and from a registers.Snapshot. Neither can be called while the engine is
// executing.
package m68k
