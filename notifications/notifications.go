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

package notifications

// Notice describes events that the presentation of the emulation might be
// interested in. The emulation only starts and stops the stepping driver and
// tells the presentation about the events listed here.
type Notice string

// List of defined notifications.
const (
	// a frame of emulation has completed
	NotifyFrameDone Notice = "NotifyFrameDone"

	// the system has been initialised with InitSys(). also sent when the
	// system has been ended
	NotifySystemChanged Notice = "NotifySystemChanged"

	// the stepping driver has started or stopped
	NotifyStarted Notice = "NotifyStarted"
	NotifyStopped Notice = "NotifyStopped"

	// the registers have been restored from a snapshot
	NotifyRestored Notice = "NotifyRestored"
)

// Notify is implemented by the presentation layer. Returning an error from
// Notify() stops the stepping driver.
type Notify interface {
	Notify(notice Notice) error
}

// Discard is a Notify implementation that ignores all notices.
var Discard Notify = discard{}

type discard struct{}

func (discard) Notify(_ Notice) error {
	return nil
}
