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

import "errors"

// Sentinel errors returned by the m68k package. Errors are wrapped and should
// be tested with errors.Is().
var (
	// interrupt levels must be in the range 1 to 7
	InvalidInterruptLevel = errors.New("invalid interrupt level")

	// InitSys() requires a memory subsystem
	NoMemory = errors.New("no memory subsystem")

	// register snapshots cannot be taken or restored while the engine is
	// executing
	Busy = errors.New("engine is executing")

	// NewM68K() requires an engine
	NoEngine = errors.New("no engine")

	// the M68K has been ended and can no longer be used
	Ended = errors.New("ended")
)
