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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	lim, _ := limiter.NewLimiter(59.92)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		runFrame()
//	}
package limiter

import (
	"fmt"
	"sync"
	"time"
)

// Limiter will trigger at a fixed rate.
type Limiter struct {
	mu        sync.Mutex
	perSecond float64
	interval  time.Duration

	tick chan bool
	quit chan bool
	once sync.Once
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The ticker goroutine runs until Stop() is called.
func NewLimiter(perSecond float64) (*Limiter, error) {
	lim := &Limiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}

	if err := lim.SetLimit(perSecond); err != nil {
		return nil, err
	}

	go func() {
		adjusted := lim.Interval()
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}

			time.Sleep(adjusted)

			// correct for the time lost in the previous sleep
			nt := time.Now()
			interval := lim.Interval()
			adjusted -= nt.Sub(t) - interval
			if adjusted < 0 || adjusted > interval*2 {
				adjusted = interval
			}
			t = nt
		}
	}()

	return lim, nil
}

// SetLimit changes the rate at which the Limiter triggers.
func (lim *Limiter) SetLimit(perSecond float64) error {
	if perSecond <= 0 {
		return fmt.Errorf("limiter: rate must be positive (%f)", perSecond)
	}
	lim.mu.Lock()
	defer lim.mu.Unlock()
	lim.perSecond = perSecond
	lim.interval = time.Duration(float64(time.Second) / perSecond)
	return nil
}

// Interval returns the time between triggers.
func (lim *Limiter) Interval() time.Duration {
	lim.mu.Lock()
	defer lim.mu.Unlock()
	return lim.interval
}

// Wait will block until trigger.
func (lim *Limiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if the trigger has already happened and false if
// it is still yet to happen. Does not block.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// Stop the ticker goroutine. Wait() must not be called after Stop().
func (lim *Limiter) Stop() {
	lim.once.Do(func() {
		close(lim.quit)
	})
}
