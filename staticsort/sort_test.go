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
	"math"
	"math/rand"
	"slices"
	"sort"
	"testing"
)

func TestSortEmpty(t *testing.T) {
	var empty []int
	Sort(empty)
	if len(empty) != 0 {
		t.Errorf("Sort(empty) should not modify empty slice")
	}
}

func TestSortSingle(t *testing.T) {
	data := []float64{42.0}
	Sort(data)
	if data[0] != 42.0 {
		t.Errorf("Sort([42]) = %v, want [42]", data)
	}
}

func TestSortConcrete(t *testing.T) {
	data := []int{5, 2, 8, 1, 9, 3}
	Sort(data)
	want := []int{1, 2, 3, 5, 8, 9}
	if !slices.Equal(data, want) {
		t.Errorf("Sort([5 2 8 1 9 3]) = %v, want %v", data, want)
	}
}

// TestSortRandomInt sweeps every length through 33 so both the unrolled
// networks and the generator fallback are exercised, cross-checking against
// the standard library.
func TestSortRandomInt(t *testing.T) {
	for n := 0; n <= 33; n++ {
		for trial := 0; trial < 20; trial++ {
			data := make([]int, n)
			for i := range data {
				data[i] = rand.Intn(50) - 25
			}
			want := slices.Clone(data)
			slices.Sort(want)

			Sort(data)
			if !slices.Equal(data, want) {
				t.Fatalf("Sort(n=%d) = %v, want %v", n, data, want)
			}
		}
	}
}

func TestSortRandomFloat64(t *testing.T) {
	sizes := []int{2, 5, 8, 13, 16, 27}
	for _, n := range sizes {
		data := make([]float64, n)
		for i := range data {
			data[i] = rand.Float64() * 1000
		}
		want := slices.Clone(data)
		slices.Sort(want)

		Sort(data)
		if !slices.Equal(data, want) {
			t.Errorf("Sort(random float64, n=%d) = %v, want %v", n, data, want)
		}
	}
}

func TestSortStrings(t *testing.T) {
	data := []string{"pear", "apple", "fig", "plum", "kiwi"}
	Sort(data)
	if !slices.IsSorted(data) {
		t.Errorf("Sort(strings) produced unsorted result: %v", data)
	}
}

func TestSortAllSame(t *testing.T) {
	data := []int{7, 7, 7, 7, 7, 7}
	Sort(data)
	want := []int{7, 7, 7, 7, 7, 7}
	if !slices.Equal(data, want) {
		t.Errorf("Sort(allSame) = %v, want %v", data, want)
	}
}

func TestSortIdempotent(t *testing.T) {
	for _, n := range []int{4, 8, 17} {
		data := make([]int, n)
		for i := range data {
			data[i] = rand.Intn(100)
		}
		Sort(data)
		want := slices.Clone(data)
		Sort(data)
		if !slices.Equal(data, want) {
			t.Errorf("Sort(sorted, n=%d) changed the slice: %v, want %v", n, data, want)
		}
	}
}

func TestSortFuncDescending(t *testing.T) {
	data := []int{1, 2, 3, 4, 5}
	SortFunc(data, func(a, b int) bool { return a > b })
	want := []int{5, 4, 3, 2, 1}
	if !slices.Equal(data, want) {
		t.Errorf("SortFunc(ascending, greater) = %v, want %v", data, want)
	}
}

func TestSortFuncStructKey(t *testing.T) {
	type event struct {
		seq  int
		name string
	}
	sizes := []int{3, 6, 8, 11, 16}
	for _, n := range sizes {
		data := make([]event, n)
		for i, seq := range rand.Perm(n) {
			data[i] = event{seq: seq, name: string(rune('a' + seq%26))}
		}
		SortFunc(data, func(a, b event) bool { return a.seq < b.seq })
		for i := range data {
			if data[i].seq != i {
				t.Fatalf("SortFunc(events, n=%d): position %d holds seq %d", n, i, data[i].seq)
			}
		}
	}
}

// TestSortNaN documents behavior under a non-total ordering: no panic, no
// element lost. The arrangement of NaNs themselves is unspecified.
func TestSortNaN(t *testing.T) {
	nan := math.NaN()
	data := []float64{3, nan, 1, nan, 2, 5, 4, nan}
	Sort(data)

	nans := 0
	var rest []float64
	for _, v := range data {
		if math.IsNaN(v) {
			nans++
		} else {
			rest = append(rest, v)
		}
	}
	if nans != 3 {
		t.Errorf("Sort(NaN) kept %d NaNs, want 3", nans)
	}
	slices.Sort(rest)
	if !slices.Equal(rest, []float64{1, 2, 3, 4, 5}) {
		t.Errorf("Sort(NaN) lost finite elements: %v", rest)
	}
}

func TestApplyMatchesSort(t *testing.T) {
	for _, n := range []int{2, 6, 8, 12} {
		nw := For(n)
		data1 := make([]int, n)
		for i := range data1 {
			data1[i] = rand.Intn(100)
		}
		data2 := slices.Clone(data1)

		if !Apply(nw, data1) {
			t.Fatalf("Apply(For(%d)) reported a length mismatch on a matching slice", n)
		}
		Sort(data2)
		if !slices.Equal(data1, data2) {
			t.Errorf("Apply(n=%d) = %v, Sort = %v", n, data1, data2)
		}
	}
}

// TestApplyLengthMismatch pins the silent no-op: a network applied to a
// slice of the wrong length mutates nothing.
func TestApplyLengthMismatch(t *testing.T) {
	nw := For(6)
	for _, n := range []int{0, 5, 7} {
		data := make([]int, n)
		for i := range data {
			data[i] = n - i
		}
		want := slices.Clone(data)

		if Apply(nw, data) {
			t.Errorf("Apply(For(6), len %d) reported success", n)
		}
		if ApplyFunc(nw, data, func(a, b int) bool { return a < b }) {
			t.Errorf("ApplyFunc(For(6), len %d) reported success", n)
		}
		if ApplyInterface(nw, sort.IntSlice(data)) {
			t.Errorf("ApplyInterface(For(6), len %d) reported success", n)
		}
		if !slices.Equal(data, want) {
			t.Errorf("length mismatch mutated the slice: %v, want %v", data, want)
		}
	}
}

func TestApplyInterface(t *testing.T) {
	data := sort.IntSlice{5, 2, 8, 1, 9, 3}
	if !ApplyInterface(For(6), data) {
		t.Fatalf("ApplyInterface reported a length mismatch")
	}
	want := []int{1, 2, 3, 5, 8, 9}
	if !slices.Equal(data, want) {
		t.Errorf("ApplyInterface = %v, want %v", []int(data), want)
	}
}

func TestApplyFuncReverseComparator(t *testing.T) {
	data := []string{"b", "d", "a", "c"}
	if !ApplyFunc(For(4), data, func(a, b string) bool { return a > b }) {
		t.Fatalf("ApplyFunc reported a length mismatch")
	}
	want := []string{"d", "c", "b", "a"}
	if !slices.Equal(data, want) {
		t.Errorf("ApplyFunc(greater) = %v, want %v", data, want)
	}
}
