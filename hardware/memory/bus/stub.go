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

package bus

type stub struct{}

func (stub) Read8(_ uint32) uint8 {
	return 0xff
}

func (stub) Read16(_ uint32) uint16 {
	return 0xffff
}

func (stub) Write8(_ uint32, _ uint8) {
}

func (stub) Write16(_ uint32, _ uint16) {
}

func (stub) String() string {
	return "stub"
}

// Stubbed is the handler installed in entries that have no device. Reads
// return all ones and writes are discarded.
var Stubbed ReadWriter = stub{}
