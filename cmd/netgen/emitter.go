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

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/imports"
)

const genHeader = "// Code generated by netgen. DO NOT EDIT.\n\n"

// Generator verifies the embedded tables and the Bose-Nelson construction,
// then emits the generated files of the staticsort package.
type Generator struct {
	OutputDir string
	CheckUpTo int
	Tables    map[int][][2]int
}

// Run performs verification and emission. Nothing is written if any network
// fails the zero-one check.
func (g *Generator) Run() error {
	if err := g.verify(); err != nil {
		return err
	}

	files := []struct {
		name string
		body func(*bytes.Buffer)
	}{
		{"z_tables.go", g.emitTables},
		{"z_sortordered.go", g.emitSortOrdered},
		{"z_sortfunc.go", g.emitSortFunc},
	}
	for _, f := range files {
		if err := g.emit(f.name, f.body); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) verify() error {
	for _, n := range g.lengths() {
		edges := g.Tables[n]
		for _, e := range edges {
			if e[0] < 0 || e[0] >= e[1] || e[1] >= n {
				return fmt.Errorf("table for n=%d: edge {%d, %d} out of range", n, e[0], e[1])
			}
		}
		if !sortsAllBinary(n, edges) {
			return fmt.Errorf("table for n=%d is not a sorting network", n)
		}
	}
	for n := 2; n <= g.CheckUpTo; n++ {
		if !sortsAllBinary(n, generate(n)) {
			return fmt.Errorf("generated network for n=%d is not a sorting network", n)
		}
	}
	return nil
}

// lengths returns the table lengths in increasing order.
func (g *Generator) lengths() []int {
	ns := make([]int, 0, len(g.Tables))
	for n := range g.Tables {
		ns = append(ns, n)
	}
	sort.Ints(ns)
	return ns
}

// emit writes one generated file through the formatter.
func (g *Generator) emit(name string, body func(*bytes.Buffer)) error {
	var buf bytes.Buffer
	buf.WriteString(genHeader)
	body(&buf)

	path := filepath.Join(g.OutputDir, name)
	formatted, err := imports.Process(path, buf.Bytes(), nil)
	if err != nil {
		return fmt.Errorf("format %s: %w", name, err)
	}
	if err := os.WriteFile(path, formatted, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (g *Generator) emitTables(buf *bytes.Buffer) {
	ns := g.lengths()
	first, last := ns[0], ns[len(ns)-1]
	counts := make([]string, 0, len(ns))
	for _, n := range ns {
		counts = append(counts, fmt.Sprintf("%d", len(g.Tables[n])))
	}

	fmt.Fprintf(buf, "package staticsort\n\n")
	fmt.Fprintf(buf, "// smallNetworks holds the optimal sorting networks for lengths %d through %d,\n", first, last)
	fmt.Fprintf(buf, "// indexed by length. Comparator counts: %s.\n", strings.Join(counts, ", "))
	fmt.Fprintf(buf, "var smallNetworks = [%d][]Edge{\n", last+1)
	for _, n := range ns {
		pairs := make([]string, 0, len(g.Tables[n]))
		for _, e := range g.Tables[n] {
			pairs = append(pairs, fmt.Sprintf("{%d, %d}", e[0], e[1]))
		}
		fmt.Fprintf(buf, "\t%d: {%s},\n", n, strings.Join(pairs, ", "))
	}
	fmt.Fprintf(buf, "}\n")
}

func (g *Generator) emitSortOrdered(buf *bytes.Buffer) {
	ns := g.lengths()
	first, last := ns[0], ns[len(ns)-1]

	fmt.Fprintf(buf, "package staticsort\n\n")
	fmt.Fprintf(buf, "import \"cmp\"\n\n")
	fmt.Fprintf(buf, "// sortSmall dispatches to the unrolled optimal network for lengths %d\n", first)
	fmt.Fprintf(buf, "// through %d and reports whether one applied.\n", last)
	fmt.Fprintf(buf, "func sortSmall[T cmp.Ordered](data []T) bool {\n")
	fmt.Fprintf(buf, "\tswitch len(data) {\n")
	for _, n := range ns {
		fmt.Fprintf(buf, "\tcase %d:\n\t\tsort%d(data)\n", n, n)
	}
	fmt.Fprintf(buf, "\tdefault:\n\t\treturn false\n\t}\n\treturn true\n}\n")
	for _, n := range ns {
		fmt.Fprintf(buf, "\n// sort%d sorts data[:%d] with %s.\n", n, n, countNoun(len(g.Tables[n])))
		fmt.Fprintf(buf, "func sort%d[T cmp.Ordered](data []T) {\n", n)
		for _, e := range g.Tables[n] {
			fmt.Fprintf(buf, "\tswapIf(data, %d, %d)\n", e[0], e[1])
		}
		fmt.Fprintf(buf, "}\n")
	}
}

func (g *Generator) emitSortFunc(buf *bytes.Buffer) {
	ns := g.lengths()
	first, last := ns[0], ns[len(ns)-1]

	fmt.Fprintf(buf, "package staticsort\n\n")
	fmt.Fprintf(buf, "// sortSmallFunc dispatches to the unrolled optimal network for lengths %d\n", first)
	fmt.Fprintf(buf, "// through %d under a caller comparator and reports whether one applied.\n", last)
	fmt.Fprintf(buf, "func sortSmallFunc[T any](data []T, less func(a, b T) bool) bool {\n")
	fmt.Fprintf(buf, "\tswitch len(data) {\n")
	for _, n := range ns {
		fmt.Fprintf(buf, "\tcase %d:\n\t\tsortFunc%d(data, less)\n", n, n)
	}
	fmt.Fprintf(buf, "\tdefault:\n\t\treturn false\n\t}\n\treturn true\n}\n")
	for _, n := range ns {
		fmt.Fprintf(buf, "\n// sortFunc%d sorts data[:%d] with %s.\n", n, n, countNoun(len(g.Tables[n])))
		fmt.Fprintf(buf, "func sortFunc%d[T any](data []T, less func(a, b T) bool) {\n", n)
		for _, e := range g.Tables[n] {
			fmt.Fprintf(buf, "\tswapIfFunc(data, %d, %d, less)\n", e[0], e[1])
		}
		fmt.Fprintf(buf, "}\n")
	}
}

func countNoun(c int) string {
	if c == 1 {
		return "1 compare-exchange"
	}
	return fmt.Sprintf("%d compare-exchanges", c)
}
