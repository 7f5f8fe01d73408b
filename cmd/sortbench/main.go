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

// Command sortbench times the fixed-size sorts against the standard library
// across lengths and input shapes, verifying every result. It is a consumer
// of the public entry points only; nothing in the library depends on it.
//
// Usage:
//
//	sortbench -rounds 2000 -sizes 4,6,8,16,32
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-staticsort/staticsort"
)

var (
	rounds   = flag.Int("rounds", 5000, "Timed repetitions per size and shape")
	sizeList = flag.String("sizes", "4,6,8,12,16,24,32", "Comma-separated sequence lengths")
	seed     = flag.Int64("seed", 1, "Seed for the random input shape")
)

type shape struct {
	name  string
	build func(n int) []int
}

var shapes = []shape{
	{"random", func(n int) []int {
		data := make([]int, n)
		for i := range data {
			data[i] = rand.Intn(10000)
		}
		return data
	}},
	{"ascending", func(n int) []int {
		data := make([]int, n)
		for i := range data {
			data[i] = i
		}
		return data
	}},
	{"descending", func(n int) []int {
		data := make([]int, n)
		for i := range data {
			data[i] = n - i
		}
		return data
	}},
	{"all_equal", func(n int) []int {
		data := make([]int, n)
		for i := range data {
			data[i] = 7
		}
		return data
	}},
}

func main() {
	flag.Parse()
	rand.Seed(*seed)

	sizes, err := parseSizes(*sizeList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== go-staticsort benchmark ===")
	fmt.Printf("GOOS/GOARCH: %s/%s, CPUs: %d, %s\n", runtime.GOOS, runtime.GOARCH, runtime.NumCPU(), cpuFeatures())
	fmt.Printf("%-6s %-12s %14s %14s %14s\n", "n", "shape", "Sort", "AdaptiveSort", "slices.Sort")

	for _, n := range sizes {
		net := staticsort.For(n)
		_ = net.Size() // force the one-time build outside the timed region
		for _, sh := range shapes {
			ref := sh.build(n)
			sortNs := timeSort(ref, func(d []int) { staticsort.Sort(d) })
			adaptNs := timeSort(ref, func(d []int) { staticsort.AdaptiveSort(d) })
			stdNs := timeSort(ref, func(d []int) { slices.Sort(d) })
			fmt.Printf("%-6d %-12s %12.1fns %12.1fns %12.1fns\n", n, sh.name, sortNs, adaptNs, stdNs)
		}
	}
}

func parseSizes(list string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(list, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid size %q", field)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// timeSort times fn over *rounds repetitions of a fresh copy of ref and
// verifies each result against the standard library.
func timeSort(ref []int, fn func([]int)) float64 {
	want := slices.Clone(ref)
	slices.Sort(want)

	data := make([]int, len(ref))
	var total time.Duration
	for r := 0; r < *rounds; r++ {
		copy(data, ref)
		start := time.Now()
		fn(data)
		total += time.Since(start)
		if !slices.Equal(data, want) {
			fmt.Fprintf(os.Stderr, "Error: sort mismatch at n=%d: got %v, want %v\n", len(ref), data, want)
			os.Exit(1)
		}
	}
	return float64(total.Nanoseconds()) / float64(*rounds)
}

// cpuFeatures summarizes the vector features of the host, for the record:
// the library itself is scalar, so differences across hosts come from the
// compiler's use of conditional moves and autovectorization.
func cpuFeatures() string {
	var have []string
	if cpu.X86.HasAVX512F {
		have = append(have, "AVX512")
	} else if cpu.X86.HasAVX2 {
		have = append(have, "AVX2")
	} else if cpu.X86.HasSSE42 {
		have = append(have, "SSE4.2")
	}
	if cpu.ARM64.HasASIMD {
		have = append(have, "NEON")
	}
	if cpu.ARM64.HasSVE {
		have = append(have, "SVE")
	}
	if len(have) == 0 {
		return "no vector features detected"
	}
	return "features: " + strings.Join(have, ",")
}
