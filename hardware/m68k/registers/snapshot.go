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

package registers

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// ShortData is returned by Decode() when the data is smaller than the encoded
// size of a Snapshot.
var ShortData = errors.New("short data")

// Snapshot is a copy of the programmer visible registers of the 68000.
//
// A7 is not stored in the A array. The two stack pointers are stored
// separately in SSP and USP and the S bit of the status register decides
// which of them is the active A7.
//
// Snapshot is a value type and can be compared with the == operator.
type Snapshot struct {
	D   [8]uint32
	A   [7]uint32
	SSP uint32
	USP uint32
	PC  uint32
	SR  StatusRegister

	// always zero when created by the emulation. preserved by Encode() and
	// Decode() so that saved states from elsewhere round trip unchanged
	Reserved1 uint16
	Reserved2 uint32
}

// EncodedSize is the number of bytes produced by Encode().
const EncodedSize = (8+7+3)*4 + 2 + 2 + 4

// Encode the snapshot into the fixed layout used by saved states:
//
//	D0..D7, A0..A6, SSP, USP, PC (32bit each)
//	SR (16bit), reserved (16bit), reserved (32bit)
//
// The byte order is chosen by the caller.
func (s Snapshot) Encode(order binary.ByteOrder) []byte {
	b := make([]byte, EncodedSize)
	i := 0

	put32 := func(v uint32) {
		order.PutUint32(b[i:], v)
		i += 4
	}
	put16 := func(v uint16) {
		order.PutUint16(b[i:], v)
		i += 2
	}

	for _, v := range s.D {
		put32(v)
	}
	for _, v := range s.A {
		put32(v)
	}
	put32(s.SSP)
	put32(s.USP)
	put32(s.PC)
	put16(uint16(s.SR))
	put16(s.Reserved1)
	put32(s.Reserved2)

	return b
}

// Decode a snapshot from data in the layout produced by Encode(). Data beyond
// EncodedSize is ignored.
func Decode(data []byte, order binary.ByteOrder) (Snapshot, error) {
	var s Snapshot

	if len(data) < EncodedSize {
		return s, fmt.Errorf("registers: %w: %d bytes of %d", ShortData, len(data), EncodedSize)
	}

	i := 0
	get32 := func() uint32 {
		v := order.Uint32(data[i:])
		i += 4
		return v
	}
	get16 := func() uint16 {
		v := order.Uint16(data[i:])
		i += 2
		return v
	}

	for j := range s.D {
		s.D[j] = get32()
	}
	for j := range s.A {
		s.A[j] = get32()
	}
	s.SSP = get32()
	s.USP = get32()
	s.PC = get32()
	s.SR = StatusRegister(get16())
	s.Reserved1 = get16()
	s.Reserved2 = get32()

	return s, nil
}

// A7 returns the value of the active stack pointer, as selected by the S bit
// of the status register.
func (s Snapshot) A7() uint32 {
	if s.SR.IsSupervisor() {
		return s.SSP
	}
	return s.USP
}

func (s Snapshot) String() string {
	b := strings.Builder{}
	for i, v := range s.D {
		b.WriteString(fmt.Sprintf("D%d=%08x ", i, v))
	}
	b.WriteRune('\n')
	for i, v := range s.A {
		b.WriteString(fmt.Sprintf("A%d=%08x ", i, v))
	}
	b.WriteString(fmt.Sprintf("A7=%08x\n", s.A7()))
	b.WriteString(fmt.Sprintf("PC=%08x SR=%04x [%s] SSP=%08x USP=%08x", s.PC, uint16(s.SR), s.SR, s.SSP, s.USP))
	return b.String()
}
