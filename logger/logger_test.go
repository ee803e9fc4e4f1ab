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

package logger_test

import (
	"testing"

	"github.com/jetsetilly/gopherdrive/logger"
	"github.com/jetsetilly/gopherdrive/test"
)

type deny struct{}

func (deny) AllowLogging() bool {
	return false
}

func TestLogger(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare(""))

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\n"))

	// clear the test.Writer buffer before continuing, makes comparisons easier
	// to manage
	tw.Clear()

	logger.Log(logger.Allow, "test2", "this is another test")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for fewer entries is okay too
	tw.Clear()
	logger.Tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("test2: this is another test\n"))

	// and no entries
	tw.Clear()
	logger.Tail(tw, 0)
	test.ExpectSuccess(t, tw.Compare(""))
}

func TestRepeatedEntries(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Logf(logger.Allow, "m68k", "imprecise cycle count (%d)", 100)
	logger.Logf(logger.Allow, "m68k", "imprecise cycle count (%d)", 100)
	logger.Logf(logger.Allow, "m68k", "imprecise cycle count (%d)", 100)
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("m68k: imprecise cycle count (100) (repeat x3)\n"))
}

func TestPermission(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Log(deny{}, "test", "should not appear")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare(""))
}

func TestWriteRecent(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Log(logger.Allow, "a", "first")
	logger.WriteRecent(tw)
	test.ExpectSuccess(t, tw.Compare("a: first\n"))

	tw.Clear()
	logger.Log(logger.Allow, "b", "second")
	logger.WriteRecent(tw)
	test.ExpectSuccess(t, tw.Compare("b: second\n"))

	tw.Clear()
	logger.WriteRecent(tw)
	test.ExpectSuccess(t, tw.Compare(""))
}
