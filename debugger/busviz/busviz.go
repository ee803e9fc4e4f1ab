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

package busviz

import (
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopherdrive/hardware/memory/bus"
	"github.com/jetsetilly/gopherdrive/hardware/memory/memorymap"
)

// Handler is a node in the graph for a Reader or Writer on the bus. Regions
// that share a handler point to the same Handler.
type Handler struct {
	Name string
}

// Region is a node in the graph for a run of banks.
type Region struct {
	Range     string
	FetchSize int
	Read      *Handler
	Write     *Handler
}

// Graph is the structure passed to memviz.
type Graph struct {
	Regions []*Region
}

func name(h any) string {
	if s, ok := h.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", h)
}

// NewGraph builds a Graph from the summary of the dispatch table.
func NewGraph(t *bus.Table) *Graph {
	g := &Graph{}
	handlers := make(map[any]*Handler)

	node := func(h any) *Handler {
		if n, ok := handlers[h]; ok {
			return n
		}
		n := &Handler{Name: name(h)}
		handlers[h] = n
		return n
	}

	for _, r := range t.Summary() {
		g.Regions = append(g.Regions, &Region{
			Range: fmt.Sprintf("%06x-%06x",
				memorymap.BankOrigin(r.First),
				memorymap.BankOrigin(r.Last)|memorymap.BankMask),
			FetchSize: r.FetchSize,
			Read:      node(r.Reader),
			Write:     node(r.Writer),
		})
	}

	return g
}

// Write the dispatch table as a graphviz dot file.
func Write(w io.Writer, t *bus.Table) {
	memviz.Map(w, NewGraph(t))
}
