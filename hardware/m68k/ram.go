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

import "github.com/jetsetilly/gopherdrive/hardware/memory/memorymap"

// work RAM. the 64KiB is visible through every one of the 32 mirror banks and
// is stored in the 68000's big-endian byte order
type ram struct {
	data []byte
}

func newRAM() *ram {
	return &ram{
		data: make([]byte, memorymap.RAMSize),
	}
}

func (r *ram) String() string {
	return "RAM"
}

func (r *ram) clear() {
	clear(r.data)
}

func (r *ram) Read8(address uint32) uint8 {
	return r.data[address&memorymap.BankMask]
}

func (r *ram) Read16(address uint32) uint16 {
	i := address & memorymap.BankMask
	return uint16(r.data[i])<<8 | uint16(r.data[(i+1)&memorymap.BankMask])
}

func (r *ram) Write8(address uint32, data uint8) {
	r.data[address&memorymap.BankMask] = data
}

func (r *ram) Write16(address uint32, data uint16) {
	i := address & memorymap.BankMask
	r.data[i] = uint8(data >> 8)
	r.data[(i+1)&memorymap.BankMask] = uint8(data)
}
