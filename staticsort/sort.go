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
	"cmp"
	"sort"
)

//go:generate go run ../cmd/netgen -output .

// Sort sorts data in place with the sorting network for its length:
// the unrolled optimal network for lengths 2 through 8, the memoized
// Bose-Nelson network otherwise. Not stable.
func Sort[T cmp.Ordered](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}
	if sortSmall(data) {
		return
	}
	runOrdered(For(n).edges, data)
}

// SortFunc is Sort under a caller-supplied comparator. less must define a
// strict weak ordering ("a precedes b"); this is not checked. The network
// performs exactly one comparator call per compare-exchange, so the call
// count depends only on the length, never on the values.
func SortFunc[T any](data []T, less func(a, b T) bool) {
	n := len(data)
	if n <= 1 {
		return
	}
	if sortSmallFunc(data, less) {
		return
	}
	runFunc(For(n).edges, data, less)
}

// AdaptiveSort sorts like Sort but pre-scans inputs of length 8 or more:
// already-ascending data (all-equal included) is left untouched,
// strictly-descending data is reversed in place with len(data)/2 exchanges,
// and anything else falls through to the network. Output is always identical
// to Sort's; only the path taken differs.
func AdaptiveSort[T cmp.Ordered](data []T) {
	if len(data) < adaptiveMinLen {
		Sort(data)
		return
	}
	hasIncreasing, hasDecreasing := scanRuns(data, cmp.Less[T])
	switch {
	case !hasDecreasing:
		// Already ascending.
	case !hasIncreasing:
		reverse(data)
	default:
		Sort(data)
	}
}

// AdaptiveSortFunc is AdaptiveSort under a caller-supplied comparator.
func AdaptiveSortFunc[T any](data []T, less func(a, b T) bool) {
	if len(data) < adaptiveMinLen {
		SortFunc(data, less)
		return
	}
	hasIncreasing, hasDecreasing := scanRuns(data, less)
	switch {
	case !hasDecreasing:
		// Already ascending.
	case !hasIncreasing:
		reverse(data)
	default:
		SortFunc(data, less)
	}
}

// Apply runs a prebuilt network against data. If len(data) differs from
// nw.N() nothing is mutated and Apply reports false; there is no error.
// This is the entry point for callers that resolve the network once and
// sort many same-length slices with it.
func Apply[T cmp.Ordered](nw *Network, data []T) bool {
	if len(data) != nw.n {
		return false
	}
	runOrdered(nw.edges, data)
	return true
}

// ApplyFunc is Apply under a caller-supplied comparator.
func ApplyFunc[T any](nw *Network, data []T, less func(a, b T) bool) bool {
	if len(data) != nw.n {
		return false
	}
	runFunc(nw.edges, data, less)
	return true
}

// ApplyInterface runs a prebuilt network against any indexable collection,
// so one network serves call shapes that are not slices. Same length rule as
// Apply: on mismatch nothing is mutated and the call reports false.
func ApplyInterface(nw *Network, v sort.Interface) bool {
	if v.Len() != nw.n {
		return false
	}
	for _, e := range nw.edges {
		if v.Less(e.J, e.I) {
			v.Swap(e.I, e.J)
		}
	}
	return true
}

func runOrdered[T cmp.Ordered](edges []Edge, data []T) {
	for _, e := range edges {
		swapIf(data, e.I, e.J)
	}
}

func runFunc[T any](edges []Edge, data []T, less func(a, b T) bool) {
	for _, e := range edges {
		swapIfFunc(data, e.I, e.J, less)
	}
}
