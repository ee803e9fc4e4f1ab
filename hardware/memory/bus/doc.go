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

// Package bus implements the dispatch table of the 68000 bus. The table
// simulates the address decoding of the hardware at a granularity of 64KiB
// banks.
//
// Each entry in the table holds memory for instruction fetch and the Reader
// and Writer that service all other accesses. Devices are installed over a
// range of addresses with SetFetch(), SetMemReadFunc() and SetMemWriteFunc().
// A device may be installed over many banks and many devices may share one
// bank, in which case the device must decode the address further itself.
//
// Entries with no device are stubbed. Reading from a stubbed entry returns all
// ones and writing to one has no effect.
package bus
