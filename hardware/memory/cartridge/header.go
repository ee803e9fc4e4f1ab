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

package cartridge

import (
	"encoding/binary"
	"strings"
)

// offsets into the ROM header
const (
	headerConsole   = 0x100
	headerTitle     = 0x150
	headerTitleLen  = 48
	headerSRAMID    = 0x1b0
	headerSRAMStart = 0x1b4
	headerSRAMEnd   = 0x1b8
	headerEnd       = 0x1bc
)

// the SRAM window must fall inside the upper half of the cartridge area
const (
	sramOrigin = 0x200000
	sramMemtop = 0x3fffff
)

// Header is the information in the ROM header used by the emulation.
type Header struct {
	Console string
	Title   string

	HasSRAM   bool
	SRAMStart uint32
	SRAMEnd   uint32
}

func headerString(rom []byte, offset int, length int) string {
	if len(rom) < offset+length {
		return ""
	}
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return -1
		}
		return r
	}, string(rom[offset:offset+length])))
}

func parseHeader(rom []byte) Header {
	var h Header

	h.Console = headerString(rom, headerConsole, 16)
	h.Title = headerString(rom, headerTitle, headerTitleLen)

	if len(rom) < headerEnd {
		return h
	}

	if rom[headerSRAMID] != 'R' || rom[headerSRAMID+1] != 'A' {
		return h
	}

	start := binary.BigEndian.Uint32(rom[headerSRAMStart:])
	end := binary.BigEndian.Uint32(rom[headerSRAMEnd:])
	if start < sramOrigin || end < start || end > sramMemtop {
		return h
	}

	h.HasSRAM = true
	h.SRAMStart = start
	h.SRAMEnd = end

	return h
}
