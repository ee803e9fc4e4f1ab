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

import (
	"github.com/jetsetilly/gopherdrive/logger"
)

// Exec runs the engine until the odometer reaches target. Returns the number
// of cycles the odometer advanced by. If the odometer is already at or past
// target then nothing happens.
//
// If the engine cannot report the number of cycles it consumed then the
// odometer is advanced to target. Any difference between the target and the
// cycles actually executed is lost. The number of times this has happened is
// returned by ImpreciseBursts().
func (m *M68K) Exec(target int) int {
	if m.ended {
		return 0
	}

	remaining := target - m.odometer
	if remaining <= 0 {
		return 0
	}

	m.executing = true
	consumed := m.engine.Execute(remaining)
	m.executing = false

	if consumed < 0 {
		consumed = remaining
		m.imprecise++
		if m.env != nil && m.env.Prefs.LogImprecise.Get().(bool) {
			logger.Logf(m.env, "m68k", "imprecise cycle count (%d)", remaining)
		}
	}

	m.odometer += consumed

	return consumed
}

// AddCycles advances the odometer without running the engine. Used when the
// 68000 is held off the bus, by a DMA transfer for example. Negative values
// are ignored.
func (m *M68K) AddCycles(n int) {
	if n > 0 {
		m.odometer += n
	}
}

// ReadOdometer returns the number of cycles since the last call to
// TripOdometer().
func (m *M68K) ReadOdometer() int {
	return m.odometer
}

// TripOdometer resets the odometer to zero. Returns the value of the odometer
// before it was reset.
func (m *M68K) TripOdometer() int {
	o := m.odometer
	m.odometer = 0
	return o
}

// ImpreciseBursts returns the number of calls to Exec() in which the engine
// could not report the number of cycles consumed.
func (m *M68K) ImpreciseBursts() int {
	return m.imprecise
}
