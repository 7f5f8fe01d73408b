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

import (
	"math/rand"
	"slices"
	"testing"
)

// binaryInput expands the low n bits of pattern into a 0/1 slice.
func binaryInput(n, pattern int) []int {
	data := make([]int, n)
	for k := range data {
		data[k] = (pattern >> k) & 1
	}
	return data
}

// TestGenerateZeroOne exhaustively verifies the Bose-Nelson construction on
// every binary input up to length 12 (the zero-one principle).
func TestGenerateZeroOne(t *testing.T) {
	for n := 2; n <= 12; n++ {
		edges := Generate(n)
		for pattern := 0; pattern < 1<<n; pattern++ {
			data := binaryInput(n, pattern)
			runOrdered(edges, data)
			if !slices.IsSorted(data) {
				t.Fatalf("Generate(%d) failed on pattern %b: %v", n, pattern, data)
			}
		}
	}
}

// TestSortZeroOne exhaustively verifies the selected network behind Sort for
// every length with a specialized table, plus one length on the general
// generator path.
func TestSortZeroOne(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 6, 7, 8, 10} {
		for pattern := 0; pattern < 1<<n; pattern++ {
			data := binaryInput(n, pattern)
			Sort(data)
			if !slices.IsSorted(data) {
				t.Fatalf("Sort(n=%d) failed on pattern %b: %v", n, pattern, data)
			}
		}
	}
}

// TestSpecializedComparatorCounts verifies the proven-optimal counts and that
// the comparator is invoked exactly once per compare-exchange, independent of
// the input values.
func TestSpecializedComparatorCounts(t *testing.T) {
	want := map[int]int{2: 1, 3: 3, 4: 5, 5: 9, 6: 12, 7: 16, 8: 19}
	for n, wantCalls := range want {
		if got := For(n).Size(); got != wantCalls {
			t.Errorf("For(%d).Size() = %d, want %d", n, got, wantCalls)
		}
		for trial := 0; trial < 10; trial++ {
			data := make([]int, n)
			for i := range data {
				data[i] = rand.Intn(100)
			}
			calls := 0
			SortFunc(data, func(a, b int) bool { calls++; return a < b })
			if calls != wantCalls {
				t.Errorf("SortFunc(n=%d) made %d comparator calls, want %d", n, calls, wantCalls)
			}
		}
	}
}

// TestGenerateCounts pins the comparator counts of the exact recursion; any
// deviation in the merge split changes these before it changes correctness.
func TestGenerateCounts(t *testing.T) {
	want := map[int]int{9: 27, 12: 42, 16: 65, 32: 211}
	for n, count := range want {
		if got := len(Generate(n)); got != count {
			t.Errorf("len(Generate(%d)) = %d, want %d", n, got, count)
		}
	}
}

func TestGenerateEdgeBounds(t *testing.T) {
	for _, n := range []int{2, 3, 9, 16, 33} {
		for _, e := range Generate(n) {
			if e.I < 0 || e.I >= e.J || e.J >= n {
				t.Fatalf("Generate(%d): edge {%d, %d} out of range", n, e.I, e.J)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	if !slices.Equal(Generate(9), Generate(9)) {
		t.Errorf("Generate(9) is not deterministic")
	}
}

func TestGenerateTiny(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		if edges := Generate(n); len(edges) != 0 {
			t.Errorf("Generate(%d) = %v, want no edges", n, edges)
		}
	}
}

// TestForMemoized verifies the once-per-length lifecycle: repeated lookups
// return the same immutable network.
func TestForMemoized(t *testing.T) {
	if For(10) != For(10) {
		t.Errorf("For(10) built two networks for one length")
	}
}

func TestForSelectsSpecializedTables(t *testing.T) {
	for n := 2; n <= 8; n++ {
		if !slices.Equal(For(n).Edges(), smallNetworks[n]) {
			t.Errorf("For(%d) did not resolve to the specialized table", n)
		}
	}
	if got, want := For(9).Size(), len(Generate(9)); got != want {
		t.Errorf("For(9).Size() = %d, want generator fallback size %d", got, want)
	}
}

func TestNetworkEdgesIsACopy(t *testing.T) {
	nw := For(4)
	edges := nw.Edges()
	edges[0] = Edge{3, 3}
	if !slices.Equal(nw.Edges(), smallNetworks[4]) {
		t.Errorf("mutating the Edges() result changed the network")
	}
}
