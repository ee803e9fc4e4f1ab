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

package prefs_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopherdrive/prefs"
	"github.com/jetsetilly/gopherdrive/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectSuccess(t, v.Set("false"))
	test.ExpectEquality(t, v.String(), "false")
	test.ExpectFailure(t, v.Set("maybe"))
	test.ExpectFailure(t, v.Set(10))
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectSuccess(t, v.Set(" 20 "))
	test.ExpectEquality(t, v.Get().(int), 20)
	test.ExpectFailure(t, v.Set("twenty"))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "0")
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectSuccess(t, v.Set("NTSC"))
	test.ExpectEquality(t, v.String(), "NTSC")
	v.SetMaxLen(2)
	test.ExpectEquality(t, v.String(), "NT")
	test.ExpectSuccess(t, v.Set("PAL"))
	test.ExpectEquality(t, v.String(), "PA")
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectEquality(t, v.Get().(float64), 0.0)
	test.ExpectSuccess(t, v.Set("59.92"))
	test.ExpectApproximate(t, v.Get().(float64), 59.92, 0.0001)
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)

	// pre hook prevents the value from being stored
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 5)
	test.ExpectEquality(t, post, 5)
}

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// single value
	prefs.PushCommandLineStack("foo::bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// single value but with additional space
	prefs.PushCommandLineStack("   foo:: bar ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// remaining string will be sorted
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	// invalid prefs string
	prefs.PushCommandLineStack("foo_bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// partially invalid prefs string
	prefs.PushCommandLineStack("foo::bar;baz_qux")
	ok, _ := prefs.GetCommandLinePref("baz")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestRegistry(t *testing.T) {
	reg := prefs.NewRegistry()

	var tv prefs.String
	var logImprecise prefs.Bool
	test.DemandSuccess(t, reg.Add("hardware.tv", &tv))
	test.DemandSuccess(t, reg.Add("hardware.m68k.logImprecise", &logImprecise))
	test.ExpectFailure(t, reg.Add("hardware.tv", &tv))

	test.ExpectSuccess(t, reg.Set("hardware.tv", "NTSC"))
	test.ExpectFailure(t, reg.Set("hardware.none", "NTSC"))

	prefs.PushCommandLineStack("hardware.tv::PAL; hardware.m68k.logImprecise::true; other::1")
	test.ExpectSuccess(t, reg.ApplyCommandLine())
	test.ExpectEquality(t, tv.String(), "PAL")
	test.ExpectEquality(t, logImprecise.Get().(bool), true)

	// the unused entry remains on the stack
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "other::1")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
