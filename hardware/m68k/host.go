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

// Read8 implements the Host interface.
func (m *M68K) Read8(address uint32) uint8 {
	return m.banking.Read8(address)
}

// Read16 implements the Host interface.
func (m *M68K) Read16(address uint32) uint16 {
	return m.banking.Read16(address)
}

// Write8 implements the Host interface.
func (m *M68K) Write8(address uint32, data uint8) {
	m.banking.Write8(address, data)
}

// Write16 implements the Host interface.
func (m *M68K) Write16(address uint32, data uint16) {
	m.banking.Write16(address, data)
}

// Fetch16 implements the Host interface.
func (m *M68K) Fetch16(address uint32) (uint16, bool) {
	return m.banking.Fetch16(address)
}

// ResetHandler implements the Host interface. It calls the function
// registered with SetResetHook(), if any. Reinitialisation of memory is the
// job of InitSys().
func (m *M68K) ResetHandler() {
	if m.resetHook != nil {
		m.resetHook()
	}
}

// SetResetHook registers a function to be called when the engine executes the
// RESET instruction. A nil function removes the hook.
func (m *M68K) SetResetHook(f func()) {
	m.resetHook = f
}
