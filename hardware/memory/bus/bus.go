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

package bus

import (
	"reflect"

	"github.com/jetsetilly/gopherdrive/hardware/memory/memorymap"
)

// Reader is implemented by anything that responds to 8 and 16 bit reads from
// the CPU. The address is the full address and not normalised to the bank.
type Reader interface {
	Read8(address uint32) uint8
	Read16(address uint32) uint16
}

// Writer is implemented by anything that responds to 8 and 16 bit writes from
// the CPU. The address is the full address and not normalised to the bank.
type Writer interface {
	Write8(address uint32, data uint8)
	Write16(address uint32, data uint16)
}

// ReadWriter combines the Reader and Writer interfaces. Most devices on the
// bus implement both.
type ReadWriter interface {
	Reader
	Writer
}

// Entry is a single entry in the dispatch table, covering one 64KiB bank.
//
// The Fetch slice is used for instruction fetches and is indexed by the low
// sixteen bits of the address plus FetchOffset:
//
//	v := entry.Fetch[entry.FetchOffset+int(address&memorymap.BankMask)]
//
// FetchOffset can be negative for the first bank of a range that does not
// start on a bank boundary. Addresses in that bank below the start of the
// range fall outside the Fetch slice.
type Entry struct {
	Fetch       []byte
	FetchOffset int

	Reader Reader
	Writer Writer
}

// Equal returns true if both entries fetch from the same memory with the same
// offset and dispatch to the same Reader and Writer. The offsets of entries
// with no fetch memory are not compared.
//
// A handler with a dynamic type that is not comparable is never equal to any
// other handler, including itself. Install such handlers by pointer.
func (e Entry) Equal(o Entry) bool {
	if !sameHandler(e.Reader, o.Reader) || !sameHandler(e.Writer, o.Writer) {
		return false
	}
	if len(e.Fetch) != len(o.Fetch) {
		return false
	}
	if len(e.Fetch) == 0 {
		return true
	}
	return e.FetchOffset == o.FetchOffset && &e.Fetch[0] == &o.Fetch[0]
}

// sameHandler compares two handlers without panicking. handlers with a
// dynamic type that is not comparable (a struct value containing a slice, for
// example) are never the same as anything
func sameHandler(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// Table is the dispatch table of the 68000 bus. It has one entry for every
// bank in the 24bit address space. Addresses wider than 24bits are aliased
// onto the table by discarding the top bits.
//
// The zero value is not usable. Use NewTable().
type Table struct {
	entries [memorymap.NumBanks]Entry
}

// NewTable is the preferred method of initialisation for the Table type. All
// entries in the new table are stubbed.
func NewTable() *Table {
	t := &Table{}
	t.Stub()
	return t
}

// Snapshot creates a copy of the Table. Fetch memory and handlers are shared
// with the original.
func (t *Table) Snapshot() *Table {
	n := *t
	return &n
}

// Entry returns a copy of the dispatch table entry for the bank.
func (t *Table) Entry(bank int) Entry {
	return t.entries[bank&(memorymap.NumBanks-1)]
}

// Equal returns true if every entry in the two tables is equal.
func (t *Table) Equal(o *Table) bool {
	for i := range t.entries {
		if !t.entries[i].Equal(o.entries[i]) {
			return false
		}
	}
	return true
}

// bankRange returns the first and last bank spanned by the address range.
// the last bank is clamped to the size of the table. the returned range is
// empty (first > last) if low is greater than high.
func bankRange(low, high uint32) (int, int) {
	if low > high {
		return 1, 0
	}
	first := memorymap.Bank(low)
	last := memorymap.Bank(high)
	if last >= memorymap.NumBanks {
		last = memorymap.NumBanks - 1
	}
	return first, last
}

// SetFetch installs memory for instruction fetch across every bank spanned by
// the address range. The base slice is mapped so that the byte at index zero
// corresponds to the low address.
//
// Banks beyond the end of the table are not written. A range with low greater
// than high installs nothing. A nil base removes fetch memory from the range.
func (t *Table) SetFetch(low, high uint32, base []byte) {
	first, last := bankRange(low, high)
	if base == nil {
		for i := first; i <= last; i++ {
			t.entries[i].Fetch = nil
			t.entries[i].FetchOffset = 0
		}
		return
	}
	offset := -int(low & memorymap.BankMask)
	for i := first; i <= last; i++ {
		t.entries[i].Fetch = base
		t.entries[i].FetchOffset = offset
		offset += memorymap.BankSize
	}
}

// SetMemReadFunc installs the Reader for every bank spanned by the address
// range. The same clamping rules as SetFetch() apply.
func (t *Table) SetMemReadFunc(low, high uint32, r Reader) {
	first, last := bankRange(low, high)
	for i := first; i <= last; i++ {
		t.entries[i].Reader = r
	}
}

// SetMemWriteFunc installs the Writer for every bank spanned by the address
// range. The same clamping rules as SetFetch() apply.
func (t *Table) SetMemWriteFunc(low, high uint32, w Writer) {
	first, last := bankRange(low, high)
	for i := first; i <= last; i++ {
		t.entries[i].Writer = w
	}
}

// Stub reverts every entry in the table to the stub handlers and removes all
// fetch memory. After a call to Stub() reads return all ones and writes are
// discarded.
func (t *Table) Stub() {
	for i := range t.entries {
		t.entries[i] = Entry{
			Reader: Stubbed,
			Writer: Stubbed,
		}
	}
}

func index(address uint32) int {
	return int(address>>memorymap.BankShift) & (memorymap.NumBanks - 1)
}

// Read8 dispatches an 8bit read to the Reader for the bank.
func (t *Table) Read8(address uint32) uint8 {
	return t.entries[index(address)].Reader.Read8(address)
}

// Read16 dispatches a 16bit read to the Reader for the bank.
func (t *Table) Read16(address uint32) uint16 {
	return t.entries[index(address)].Reader.Read16(address)
}

// Write8 dispatches an 8bit write to the Writer for the bank.
func (t *Table) Write8(address uint32, data uint8) {
	t.entries[index(address)].Writer.Write8(address, data)
}

// Write16 dispatches a 16bit write to the Writer for the bank.
func (t *Table) Write16(address uint32, data uint16) {
	t.entries[index(address)].Writer.Write16(address, data)
}

// Fetch16 reads a big-endian word from the fetch memory of the bank. Returns
// false if the bank has no fetch memory or if the address falls outside of it.
func (t *Table) Fetch16(address uint32) (uint16, bool) {
	e := &t.entries[index(address)]
	i := e.FetchOffset + int(address&memorymap.BankMask)
	if i < 0 || i+1 >= len(e.Fetch) {
		return 0, false
	}
	return uint16(e.Fetch[i])<<8 | uint16(e.Fetch[i+1]), true
}

// FetchIndex returns the index into the fetch memory of the bank for the
// address. Returns false if the bank has no fetch memory or if the address
// falls outside of it.
func (t *Table) FetchIndex(address uint32) (int, bool) {
	e := &t.entries[index(address)]
	i := e.FetchOffset + int(address&memorymap.BankMask)
	if i < 0 || i >= len(e.Fetch) {
		return 0, false
	}
	return i, true
}
