// Copyright 2025 go-staticsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package staticsort

import "sync"

// An Edge is one compare-exchange of a sorting network: if the element at J
// precedes the element at I, the two are exchanged. I < J always holds, and
// the pair is fixed for a given length before any input is seen.
type Edge struct {
	I, J int
}

// A Network is the ordered edge list for one fixed length N. Executing the
// edges in order sorts any permutation of N elements (verifiable via the
// zero-one principle). Networks are immutable once built and safe for
// concurrent use; the data they are applied to is not protected.
type Network struct {
	n     int
	edges []Edge
}

// N returns the sequence length the network sorts.
func (nw *Network) N() int { return nw.n }

// Size returns the number of compare-exchanges the network performs. It does
// not depend on input values.
func (nw *Network) Size() int { return len(nw.edges) }

// Edges returns a copy of the network's edge list, in execution order.
func (nw *Network) Edges() []Edge {
	out := make([]Edge, len(nw.edges))
	copy(out, nw.edges)
	return out
}

// networks caches one *Network per distinct length, built lazily.
var networks sync.Map

// For returns the sorting network for sequences of length n, building and
// memoizing it on first use. Lengths 2 through 8 resolve to the precomputed
// optimal tables; every other length resolves to the Bose-Nelson
// construction. For lengths below 2 the network is empty.
func For(n int) *Network {
	if v, ok := networks.Load(n); ok {
		return v.(*Network)
	}
	var edges []Edge
	if n >= 2 && n < len(smallNetworks) {
		edges = smallNetworks[n]
	} else {
		edges = Generate(n)
	}
	v, _ := networks.LoadOrStore(n, &Network{n: n, edges: edges})
	return v.(*Network)
}

// Generate builds a sorting network for length n with the Bose-Nelson
// construction. The recursion below, including the three-way merge split, is
// what keeps the comparator count near minimal; both the count and the edge
// order are fixed for a given n.
func Generate(n int) []Edge {
	if n < 2 {
		return nil
	}
	var g generator
	g.split(0, n)
	return g.edges
}

type generator struct {
	edges []Edge
}

// split emits edges sorting the block of length m starting at i: sort both
// halves, then merge them.
func (g *generator) split(i, m int) {
	if m <= 1 {
		return
	}
	l := m / 2
	g.split(i, l)
	g.split(i+l, m-l)
	g.merge(i, i+l, l, m-l)
}

// merge emits edges merging two already-sorted blocks, length x at i and
// length y at j. The blocks never overlap and never differ in length by more
// than the recursion's own splits produce, so the three base cases below are
// the only ones ever reached.
func (g *generator) merge(i, j, x, y int) {
	switch {
	case x == 1 && y == 1:
		g.edges = append(g.edges, Edge{i, j})
	case x == 1 && y == 2:
		g.edges = append(g.edges, Edge{i, j + 1}, Edge{i, j})
	case x == 2 && y == 1:
		g.edges = append(g.edges, Edge{i, j}, Edge{i + 1, j})
	default:
		l := x / 2
		m := y
		if x%2 == 0 {
			m = y + 1
		}
		m >>= 1
		// The three-way split. Replacing it with a plain two-way merge
		// still sorts but loses the near-minimal comparator count.
		g.merge(i, j, l, m)
		g.merge(i+l, j+m, x-l, y-m)
		g.merge(i+l, j, x-l, m)
	}
}
