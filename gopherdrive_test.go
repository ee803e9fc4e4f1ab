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

package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherdrive/test"
)

func writeROM(t *testing.T) string {
	t.Helper()

	rom := make([]byte, 0x20000)
	binary.BigEndian.PutUint32(rom[0x000:], 0x00fffe00)
	binary.BigEndian.PutUint32(rom[0x004:], 0x00000200)

	fn := filepath.Join(t.TempDir(), "test.bin")
	test.DemandSuccess(t, os.WriteFile(fn, rom, 0o600))
	return fn
}

func TestNoMode(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-bad"}, w), exitModeError)
	test.ExpectEquality(t, launch([]string{"dump"}, w), exitModeError)
	test.ExpectEquality(t, launch([]string{"-help"}, w), exitOK)
}

func TestDump(t *testing.T) {
	fn := writeROM(t)

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"dump", fn}, w), exitOK)

	lines := w.Lines()
	test.DemandSuccess(t, len(lines) > 2)
	test.ExpectSuccess(t, strings.HasSuffix(lines[0], " on MD"), lines[0])
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "000000-01ffff"), lines[1])

	w.Clear()
	test.ExpectEquality(t, launch([]string{"dump", "-dot", fn}, w), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "digraph"))
}

func TestDumpSystem(t *testing.T) {
	fn := writeROM(t)

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"dump", "-sys", "32X", fn}, w), exitOK)
	test.ExpectSuccess(t, strings.HasSuffix(w.Lines()[0], " on 32X"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"dump", "-sys", "SATURN", fn}, w), exitModeError)
}

func TestScript(t *testing.T) {
	fn := writeROM(t)

	lua := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(lua, []byte(`
initsys("MD")
exec(500)
print(odometer())
print(save().pc)
`), 0o600))

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"script", fn, lua}, w), exitOK)
	test.ExpectEquality(t, w.String(), "500\n512\n")

	w.Clear()
	test.ExpectEquality(t, launch([]string{"script", fn}, w), exitModeError)
}

func TestRun(t *testing.T) {
	fn := writeROM(t)

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"run", "-frames", "3", "-tv", "PAL", "-prefs", "emulation.fpsCap::false", fn}, w), exitOK)

	lines := w.Lines()
	test.DemandSuccess(t, len(lines) >= 3, w.String())
	test.ExpectSuccess(t, strings.Contains(w.String(), "on MD (PAL)"), w.String())
	test.ExpectSuccess(t, strings.Contains(w.String(), "frames: 3 "), w.String())
}

func TestVersion(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-version"}, w), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "Gopherdrive "))
}

func TestRunDigest(t *testing.T) {
	fn := writeROM(t)

	digestLine := func() string {
		w := &test.CompareWriter{}
		test.DemandEquality(t, launch([]string{"run", "-frames", "5", "-prefs", "emulation.fpsCap::false", fn}, w), exitOK)
		for _, l := range w.Lines() {
			if strings.HasPrefix(l, "digest: ") {
				return l
			}
		}
		t.Fatalf("no digest in output: %s", w.String())
		return ""
	}

	test.ExpectEquality(t, digestLine(), digestLine())
}
