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

// Package idle provides an engine for the m68k package that never executes an
// instruction. The 68000 is held in the STOP state, waking only to accept
// interrupts.
//
// The engine is useful when the bus, the banking and the interrupt controller
// are of interest but a full instruction set is not. It is the engine used by
// the command line tool and by the script harness.
package idle
