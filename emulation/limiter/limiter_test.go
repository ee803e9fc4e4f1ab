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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopherdrive/emulation/limiter"
	"github.com/jetsetilly/gopherdrive/test"
)

func TestLimiter(t *testing.T) {
	_, err := limiter.NewLimiter(0)
	test.ExpectFailure(t, err)

	lim, err := limiter.NewLimiter(100)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	test.ExpectEquality(t, lim.Interval(), 10*time.Millisecond)

	start := time.Now()
	for i := 0; i < 5; i++ {
		lim.Wait()
	}

	// the first tick is immediate
	test.ExpectSuccess(t, time.Since(start) >= 30*time.Millisecond)
}

func TestSetLimit(t *testing.T) {
	lim, err := limiter.NewLimiter(50)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	test.ExpectSuccess(t, lim.SetLimit(200))
	test.ExpectEquality(t, lim.Interval(), 5*time.Millisecond)
	test.ExpectFailure(t, lim.SetLimit(-1))
	test.ExpectEquality(t, lim.Interval(), 5*time.Millisecond)
}
