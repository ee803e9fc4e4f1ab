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

	"github.com/jetsetilly/gopherdrive/hardware/m68k/registers"
)

func (m *M68K) canSnapshot() error {
	if m.ended {
		return fmt.Errorf("m68k: %w", Ended)
	}
	if m.executing {
		return fmt.Errorf("m68k: %w", Busy)
	}
	return nil
}

// SaveRegisters takes a copy of the registers of the engine. The supervisor
// stack pointer is read from A7 if the CPU is in supervisor mode and from the
// shadow slot otherwise.
func (m *M68K) SaveRegisters() (registers.Snapshot, error) {
	var s registers.Snapshot

	if err := m.canSnapshot(); err != nil {
		return s, err
	}

	for i := range s.D {
		s.D[i] = m.engine.Register(D0 + Register(i))
	}
	for i := range s.A {
		s.A[i] = m.engine.Register(A0 + Register(i))
	}

	s.PC = m.engine.Register(PC)
	s.SR = registers.StatusRegister(m.engine.Register(SR))
	s.USP = m.engine.Register(USP)

	if s.SR.IsSupervisor() {
		s.SSP = m.engine.Register(A7)
	} else {
		s.SSP = m.engine.Register(SSPShadow)
	}

	return s, nil
}

// RestoreRegisters writes the snapshot into the engine. The restoration is in
// two phases. The stack pointers are restored after the status register so
// that the S bit in the engine is the S bit of the snapshot.
//
// The result of restoring a snapshot with an invalid status register depends
// on the engine.
func (m *M68K) RestoreRegisters(s registers.Snapshot) error {
	if err := m.canSnapshot(); err != nil {
		return err
	}
	m.restoreGeneral(s)
	m.restoreStackPointers(s)
	return nil
}

// the data and address registers, the program counter and the status
// register. changing the S bit of the status register may cause the engine to
// exchange the stack pointers
func (m *M68K) restoreGeneral(s registers.Snapshot) {
	for i, v := range s.D {
		m.engine.SetRegister(D0+Register(i), v)
	}
	for i, v := range s.A {
		m.engine.SetRegister(A0+Register(i), v)
	}
	m.engine.SetRegister(PC, s.PC)
	m.engine.SetRegister(SR, uint32(s.SR))
}

// the stack pointers. must be called after restoreGeneral() because the slot
// for the supervisor stack pointer depends on the S bit now in the engine
func (m *M68K) restoreStackPointers(s registers.Snapshot) {
	m.engine.SetRegister(USP, s.USP)
	if registers.StatusRegister(m.engine.Register(SR)).IsSupervisor() {
		m.engine.SetRegister(A7, s.SSP)
	} else {
		m.engine.SetRegister(SSPShadow, s.SSP)
	}
}
