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

// Package registers defines the Snapshot type, a copy of the registers of the
// 68000 taken between execution bursts. Snapshots can be encoded into the
// fixed 80 byte layout used by saved states and decoded again.
//
// The StatusRegister type gives access to the fields of the status register
// that matter when saving and restoring, the supervisor bit in particular.
package registers
