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

// Package cartridge holds the ROM image of a cartridge and any SRAM described
// by its header.
//
// The ROM is padded to a whole number of 64KiB banks so that it can be
// installed directly into the fetch memory of the dispatch table. SRAM is
// described by the "RA" record at offset $1B0 of the ROM header:
//
//	$1B0 "RA"
//	$1B4 start address (32bit big-endian)
//	$1B8 end address (32bit big-endian)
//
// Both Cartridge and SRAM implement the bus.ReadWriter interface.
package cartridge
