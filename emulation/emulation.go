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

package emulation

// State indicates the state of the stepping driver.
type State int

// List of possible driver states.
//
// Values are ordered so that order comparisons are meaningful. For example,
// Running is "greater than" Initialising.
const (
	EmulatorStart State = iota
	Initialising
	Stopped
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case EmulatorStart:
		return "start"
	case Initialising:
		return "initialising"
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	case Ending:
		return "ending"
	}
	return "undefined"
}

// FeatureReq is used to request something of the stepping driver from another
// goroutine. While the driver is running requests are serviced between
// frames.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData interface{}

// List of valid feature requests.
const (
	// take a snapshot of the CPU registers. no arguments
	ReqSaveRegisters FeatureReq = "ReqSaveRegisters"

	// restore the CPU registers. registers.Snapshot
	ReqRestoreRegisters FeatureReq = "ReqRestoreRegisters"

	// raise an interrupt. int (level), int (vector)
	ReqInterrupt FeatureReq = "ReqInterrupt"
)
