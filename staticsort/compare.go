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

import "cmp"

// swapIf is the compare-exchange primitive for naturally ordered types:
// after the call the lesser of data[i], data[j] is at i. Written in the
// min/max select form to nudge the compiler toward conditional moves. The
// predicate is evaluated exactly once, so the outcome matches the branching
// form on every input, NaN included (an incomparable pair is left in place).
func swapIf[T cmp.Ordered](data []T, i, j int) {
	a, b := data[i], data[j]
	if b < a {
		a, b = b, a
	}
	data[i], data[j] = a, b
}

// swapIfFunc is the compare-exchange primitive under a caller comparator:
// if data[j] precedes data[i], the two are exchanged. One comparator call
// per edge, always.
func swapIfFunc[T any](data []T, i, j int, less func(a, b T) bool) {
	if less(data[j], data[i]) {
		data[i], data[j] = data[j], data[i]
	}
}
