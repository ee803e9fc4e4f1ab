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

import "fmt"

// the video subsystem must be told when one of its interrupts is acknowledged
const (
	levelHBlank = 4
	levelVBlank = 6
)

func validLevel(level int) error {
	if level < 1 || level > 7 {
		return fmt.Errorf("m68k: %w: %d", InvalidInterruptLevel, level)
	}
	return nil
}

// SetVideoAcknowledge registers the function called when the engine
// acknowledges an interrupt at level 4 or 6. A nil function removes the hook.
func (m *M68K) SetVideoAcknowledge(f func()) {
	m.videoAck = f
}

// Interrupt records the vector for level and raises the interrupt request in
// the engine. The vector can be AutoVector.
//
// Interrupt can be called by a peripheral from inside a bus handler while the
// engine is executing.
func (m *M68K) Interrupt(level int, vector int) error {
	if err := validLevel(level); err != nil {
		return err
	}
	m.vectors[level] = vector
	m.engine.SetIRQ(level)
	return nil
}

// AcknowledgeInterrupt implements the Host interface. It lowers the interrupt
// request and returns the vector recorded for the level by Interrupt().
func (m *M68K) AcknowledgeInterrupt(level int) (int, error) {
	if err := validLevel(level); err != nil {
		return AutoVector, err
	}
	if (level == levelHBlank || level == levelVBlank) && m.videoAck != nil {
		m.videoAck()
	}
	m.engine.ClearIRQ(level)
	return m.vectors[level], nil
}
