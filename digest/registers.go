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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/gopherdrive/hardware/m68k/registers"
	"github.com/jetsetilly/gopherdrive/notifications"
)

// Source of register snapshots.
type Source interface {
	SaveRegisters() (registers.Snapshot, error)
}

// Registers is a Digest of the 68000 registers at the end of every frame. The
// hash of each frame is chained to the hash of the previous frame.
//
// It is an implementation of notifications.Notify and should be given to the
// emulation driver as its notifier.
type Registers struct {
	src    Source
	digest [sha1.Size]byte
	buffer []byte
	frames int
}

// NewRegisters is the preferred method of initialisation for the Registers
// type.
func NewRegisters(src Source) *Registers {
	return &Registers{
		src:    src,
		buffer: make([]byte, sha1.Size+registers.EncodedSize),
	}
}

// Hash implements the Digest interface.
func (dig *Registers) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Registers) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Frames returns the number of frames that have contributed to the hash.
func (dig *Registers) Frames() int {
	return dig.frames
}

// Notify implements the notifications.Notify interface. The hash is updated
// on NotifyFrameDone and all other notices are ignored.
func (dig *Registers) Notify(notice notifications.Notice) error {
	if notice != notifications.NotifyFrameDone {
		return nil
	}

	s, err := dig.src.SaveRegisters()
	if err != nil {
		return fmt.Errorf("digest: %w", err)
	}

	n := copy(dig.buffer, dig.digest[:])
	copy(dig.buffer[n:], s.Encode(binary.BigEndian))
	dig.digest = sha1.Sum(dig.buffer)
	dig.frames++

	return nil
}
