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

// Package script drives the emulation from Lua programs. It is used for
// regression testing of the bus and the interrupt controller without the need
// for a presentation layer.
//
// Example program:
//
//	initsys("MD")
//	interrupt(6, 0x78)
//	exec(1000)
//	print(odometer())
//	local r = save()
//	print(string.format("%08x", r.pc))
package script
