// Package staticsort sorts fixed-size sequences with sorting networks.
//
// A sorting network is a fixed list of compare-exchange operations between
// predetermined index pairs that sorts any input of a given length,
// independent of the actual values. Because the length is known where the
// call is written, the network is selected (or generated) once per distinct
// length and the sort itself is nothing but its compare-exchanges: no
// allocation, no recursion, no data-dependent control flow beyond the
// comparisons themselves.
//
// # Networks
//
// Lengths 2 through 8 use precomputed networks with proven-optimal
// comparator counts (1, 3, 5, 9, 12, 16, 19). Those are emitted at build
// time by cmd/netgen, which verifies every table against the zero-one
// principle before writing it. All other lengths use the Bose-Nelson
// construction, built once per length and memoized process-wide.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-staticsort/staticsort"
//
//	func Median5(v []float64) float64 {
//	    staticsort.Sort(v) // v has length 5; 9 compare-exchanges
//	    return v[2]
//	}
//
// AdaptiveSort adds a pre-scan that detects already-ascending input (left
// untouched) and strictly-descending input (reversed in place), falling back
// to the network otherwise. Sort and AdaptiveSort always produce identical
// output; only the path taken differs.
//
// # Contract
//
// Comparators must define a strict weak ordering; this is not checked. The
// sort is not stable. Calls are synchronous, keep no reference to caller
// storage afterward, and never sort concurrently on the caller's behalf; two
// calls on the same slice at once are a caller-level data race.
package staticsort
