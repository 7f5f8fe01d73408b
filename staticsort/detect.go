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

// Thresholds for the adaptive pre-scan.
const (
	// adaptiveMinLen: below this length the network costs no more than the
	// scan itself, so AdaptiveSort runs the network unconditionally.
	adaptiveMinLen = 8

	// earlyExitMinLen: once both run flags are set nothing further can be
	// learned, but testing for that each step only pays off on longer
	// inputs. Shorter scans always run to completion.
	earlyExitMinLen = 23
)

// scanRuns walks adjacent pairs and reports whether data contains an
// increasing pair and whether it contains a decreasing pair under less.
// (false, false) means every pair compared equal. Two comparator calls per
// pair, one in each direction.
func scanRuns[T any](data []T, less func(a, b T) bool) (hasIncreasing, hasDecreasing bool) {
	n := len(data)
	prev := data[0]
	for i := 1; i < n; i++ {
		curr := data[i]
		if less(curr, prev) {
			hasDecreasing = true
		}
		if less(prev, curr) {
			hasIncreasing = true
		}
		prev = curr
		if n >= earlyExitMinLen && hasIncreasing && hasDecreasing {
			return
		}
	}
	return
}

// reverse exchanges data end-to-end in place: len(data)/2 exchanges.
func reverse[T any](data []T) {
	for left, right := 0, len(data)-1; left < right; left, right = left+1, right-1 {
		data[left], data[right] = data[right], data[left]
	}
}
