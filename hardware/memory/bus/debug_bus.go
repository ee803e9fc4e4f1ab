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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherdrive/hardware/memory/memorymap"
)

// Region is a run of consecutive banks that share handlers and whose fetch
// memory, if any, is contiguous.
type Region struct {
	First int
	Last  int

	Reader Reader
	Writer Writer

	// size of the fetch memory. zero if the region has none
	FetchSize int
}

func (r Region) String() string {
	fetch := "-"
	if r.FetchSize > 0 {
		fetch = fmt.Sprintf("%#x", r.FetchSize)
	}
	return fmt.Sprintf("%06x-%06x  fetch %s  read %s  write %s",
		memorymap.BankOrigin(r.First), memorymap.BankOrigin(r.Last)|memorymap.BankMask,
		fetch, handlerName(r.Reader), handlerName(r.Writer))
}

func handlerName(h interface{}) string {
	if s, ok := h.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", h)
}

// continues returns true if bank i of the table continues the region.
func (t *Table) continues(r Region, i int) bool {
	e := t.entries[i]
	p := t.entries[i-1]
	if !sameHandler(e.Reader, r.Reader) || !sameHandler(e.Writer, r.Writer) {
		return false
	}
	if len(e.Fetch) != r.FetchSize {
		return false
	}
	if len(e.Fetch) == 0 {
		return true
	}
	return &e.Fetch[0] == &p.Fetch[0] && e.FetchOffset == p.FetchOffset+memorymap.BankSize
}

// Summary describes the table as a list of regions. Mirrored memory (for
// example, the work RAM mirrors) appears as one region per mirror because
// the fetch offsets of the mirrors are not contiguous.
func (t *Table) Summary() []Region {
	var s []Region

	r := Region{
		Reader:    t.entries[0].Reader,
		Writer:    t.entries[0].Writer,
		FetchSize: len(t.entries[0].Fetch),
	}

	for i := 1; i < memorymap.NumBanks; i++ {
		if t.continues(r, i) {
			r.Last = i
			continue
		}
		s = append(s, r)
		r = Region{
			First:     i,
			Last:      i,
			Reader:    t.entries[i].Reader,
			Writer:    t.entries[i].Writer,
			FetchSize: len(t.entries[i].Fetch),
		}
	}

	return append(s, r)
}

func (t *Table) String() string {
	s := strings.Builder{}
	for _, r := range t.Summary() {
		s.WriteString(r.String())
		s.WriteString("\n")
	}
	return s.String()
}
