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

// Package memorymap describes the layout of the 68000 address space: the
// identifiers of the console systems that can be plugged into the bus, the
// size and number of banks, and the origin and memtop of each memory area.
//
// Banks are 64KiB in size and are identified by the top eight bits of a 24bit
// address:
//
//	bank := memorymap.Bank(address)
//
// The bus package uses the bank index to select the handlers for an access.
package memorymap
