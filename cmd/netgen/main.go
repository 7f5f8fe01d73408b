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

// Command netgen generates the specialized sorting-network files of the
// staticsort package.
//
// Usage:
//
//	netgen -output ../../staticsort
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/netgen -output .
//
// netgen embeds the proven-optimal networks for lengths 2 through 8 and
// verifies every table, plus the Bose-Nelson construction itself, against
// the zero-one principle before writing anything. It then emits:
//  1. z_tables.go - the edge tables, indexed by length
//  2. z_sortordered.go - unrolled sorts for naturally ordered types
//  3. z_sortfunc.go - unrolled sorts under a caller comparator
//
// A verification failure aborts emission; a typo in a table is a generation
// error, never a wrong sort.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputDir = flag.String("output", ".", "Output directory (default: current directory)")
	checkUpTo = flag.Int("check", 12, "Exhaustively verify Bose-Nelson networks up to this length (2^n inputs each)")
)

func main() {
	flag.Parse()

	gen := &Generator{
		OutputDir: *outputDir,
		CheckUpTo: *checkUpTo,
		Tables:    optimalNetworks,
	}
	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
