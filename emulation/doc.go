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

// Package emulation contains the stepping driver. The driver initialises the
// system, runs the CPU one frame at a time and tells the presentation about
// completed frames through the notifications package.
//
// While the driver is running it owns the CPU. Other goroutines stop the
// driver with Stop() and make requests of the CPU with Request(), which is
// serviced between frames.
package emulation
