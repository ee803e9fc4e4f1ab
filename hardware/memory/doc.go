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

// Package memory is the peripheral memory subsystem of the console. It owns
// the cartridge, the SRAM control register and the list of memory mapped
// devices, and it populates the cartridge area of a bus.Table when a system
// is initialised.
//
// Work RAM is not part of this package. It is owned by the CPU integration,
// which installs it over the RAM mirror banks after calling InitSys().
//
// The Memory type provides the generic handlers for the address space. An
// access that reaches the generic handlers is served by the cartridge, by the
// SRAM control register or by a device added with MapIO(). Anything else
// reads as all ones and discards writes.
package memory
