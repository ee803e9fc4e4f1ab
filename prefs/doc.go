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

// Package prefs implements the typed preference values used by the emulation.
// Values are safe to read from any goroutine.
//
// Preferences are collected in a Registry. The Registry does not persist
// values between sessions. Instead, values for a session can be supplied on
// the command line in the form:
//
//	-prefs "hardware.m68k.logImprecise::true; hardware.tv::PAL"
//
// The string is pushed onto the command line stack with
// PushCommandLineStack() and applied with Registry.ApplyCommandLine().
package prefs
