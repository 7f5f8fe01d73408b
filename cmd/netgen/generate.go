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

package main

// generate builds the Bose-Nelson network for length n. The staticsort
// package carries the same recursion as its runtime fallback for lengths
// outside the tables; having it here lets netgen verify the construction
// exhaustively ahead of time without importing the package it generates
// into.
func generate(n int) [][2]int {
	if n < 2 {
		return nil
	}
	var edges [][2]int
	var merge func(i, j, x, y int)
	merge = func(i, j, x, y int) {
		switch {
		case x == 1 && y == 1:
			edges = append(edges, [2]int{i, j})
		case x == 1 && y == 2:
			edges = append(edges, [2]int{i, j + 1}, [2]int{i, j})
		case x == 2 && y == 1:
			edges = append(edges, [2]int{i, j}, [2]int{i + 1, j})
		default:
			l := x / 2
			m := y
			if x%2 == 0 {
				m = y + 1
			}
			m >>= 1
			// Three-way merge split; the source of the near-minimal
			// comparator counts.
			merge(i, j, l, m)
			merge(i+l, j+m, x-l, y-m)
			merge(i+l, j, x-l, m)
		}
	}
	var split func(i, m int)
	split = func(i, m int) {
		if m <= 1 {
			return
		}
		l := m / 2
		split(i, l)
		split(i+l, m-l)
		merge(i, i+l, l, m-l)
	}
	split(0, n)
	return edges
}

// sortsAllBinary reports whether edges sorts every binary input of length n.
// By the zero-one principle that proves edges sorts every input of length n,
// with 2^n cases instead of n! permutations.
func sortsAllBinary(n int, edges [][2]int) bool {
	buf := make([]uint8, n)
	for bits := 0; bits < 1<<n; bits++ {
		for k := range buf {
			buf[k] = uint8(bits>>k) & 1
		}
		for _, e := range edges {
			if buf[e[1]] < buf[e[0]] {
				buf[e[0]], buf[e[1]] = buf[e[1]], buf[e[0]]
			}
		}
		for k := 1; k < n; k++ {
			if buf[k] < buf[k-1] {
				return false
			}
		}
	}
	return true
}
