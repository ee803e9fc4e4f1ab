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

package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Sentinel errors returned by Initialise().
var (
	NotATerminal = errors.New("not a terminal")
	NoFile       = errors.New("no file")
)

// Terminal wraps the input of a posix terminal. The terminal is put into
// cbreak mode while the emulation is running so that single key presses can
// be detected without waiting for a newline.
type Terminal struct {
	input  *os.File
	output io.Writer

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// Initialise the terminal with the input and output files. Returns
// NotATerminal if the input is not connected to a terminal.
func (pt *Terminal) Initialise(input *os.File, output io.Writer) error {
	if input == nil || output == nil {
		return fmt.Errorf("terminal: %w", NoFile)
	}

	if !term.IsTerminal(int(input.Fd())) {
		return fmt.Errorf("terminal: %w: %s", NotATerminal, input.Name())
	}

	pt.input = input
	pt.output = output

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}

	// cbreak attributes start from a copy of the canonical attributes so
	// that output processing is unchanged
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return nil
}

// CanonicalMode restores the terminal to the mode it was in when Initialise()
// was called.
func (pt *Terminal) CanonicalMode() {
	if pt.input == nil {
		return
	}
	termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// CBreakMode puts the terminal into cbreak mode.
func (pt *Terminal) CBreakMode() {
	if pt.input == nil {
		return
	}
	termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}

// Print writes the formatted string to the output.
func (pt *Terminal) Print(s string, a ...any) {
	fmt.Fprintf(pt.output, s, a...)
}

// WatchStop puts the terminal into cbreak mode and calls stop when a stop key
// is pressed. The terminal is returned to canonical mode when the context is
// cancelled or when a stop key is pressed.
//
// The goroutine reading the input cannot be interrupted and will remain
// blocked until the next key press after the context is cancelled.
func (pt *Terminal) WatchStop(ctx context.Context, stop func()) {
	pt.CBreakMode()

	keys := make(chan byte)
	go func() {
		b := make([]byte, 1)
		for {
			if n, err := pt.input.Read(b); err != nil || n == 0 {
				return
			}
			select {
			case keys <- b[0]:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		defer pt.CanonicalMode()
		for {
			select {
			case <-ctx.Done():
				return
			case k := <-keys:
				if IsStopKey(k) {
					stop()
					return
				}
			}
		}
	}()
}
