// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jmhtab combines JMH result files into a single table.
//
// Each file contributes one row per data record, plus the columns
// derived from the file itself: the JVM heap size found in its free
// text and, optionally, a version label derived from its name. Rows
// are buffered as they are read and materialized as a
// github.com/aclements/go-gg/table.Table once all files are in.
package jmhtab

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/dbg-codes/jmhplot/internal/numconv"
	"github.com/dbg-codes/jmhplot/jmhfmt"
)

// ErrUnknownColumn is returned when a named column does not exist.
var ErrUnknownColumn = errors.New("unknown column")

const (
	// VersionColumn holds the label derived from each file's name.
	VersionColumn = "java_version"

	// MemoryColumn holds each file's heap size.
	MemoryColumn = "memory"

	// DefaultValueColumn is JMH's measurement column.
	DefaultValueColumn = "Score"
)

// Options configure a Builder.
type Options struct {
	// ValueColumn names the measurement column. Rows where it is
	// null are dropped, and every file must have it. If empty, no
	// rows are dropped.
	ValueColumn string

	// VersionLabels adds VersionColumn to every row and sorts the
	// table by it.
	VersionLabels bool

	// HeapMarker is the marker of the heap size in each file. If
	// empty, jmhfmt.HeapMarker is used.
	HeapMarker string
}

// Stats summarizes what a Builder has read.
type Stats struct {
	Files   int // files added
	Rows    int // rows kept
	Dropped int // rows dropped for a null ValueColumn
}

// A Builder accumulates the rows of many results files.
type Builder struct {
	opts     Options
	cols     []string
	colIndex map[string]int
	rows     []row
	stats    Stats
}

// A row is one buffered record. cells may be shorter than the
// Builder's column list; missing trailing cells are null.
type row struct {
	sep   byte // decimal separator of the source file
	cells []Value
}

func (r *row) cell(i int) Value {
	if i < len(r.cells) {
		return r.cells[i]
	}
	return Value{}
}

// NewBuilder returns a Builder with the given options.
func NewBuilder(opts Options) *Builder {
	if opts.HeapMarker == "" {
		opts.HeapMarker = jmhfmt.HeapMarker
	}
	return &Builder{opts: opts, colIndex: make(map[string]int)}
}

// AddDir adds every file under root whose name matches filter. A nil
// filter matches every file.
func (b *Builder) AddDir(ctx context.Context, root string, filter *regexp.Regexp) error {
	return b.AddFiles(ctx, &jmhfmt.Files{Root: root, Filter: filter})
}

// AddFiles adds every file read from files. It stops at the first
// file that fails.
func (b *Builder) AddFiles(ctx context.Context, files *jmhfmt.Files) error {
	for files.Scan(ctx) {
		if err := b.AddSource(files.Source()); err != nil {
			return err
		}
	}
	return files.Err()
}

// AddSource adds the rows of one results file. If the file cannot be
// read in full, AddSource adds nothing and returns an error that
// identifies the file.
func (b *Builder) AddSource(src jmhfmt.Source) (err error) {
	r := jmhfmt.NewReader(src.Data, src.Path)
	if err := r.Err(); err != nil {
		return err
	}

	heap, err := jmhfmt.LookupSize(src.Data, b.opts.HeapMarker)
	if err != nil {
		return &jmhfmt.FileError{Path: src.Path, Err: err}
	}

	header := dedupe(r.Header())
	valueIdx := -1
	for i, name := range header {
		if name == b.opts.ValueColumn {
			valueIdx = i
			break
		}
	}
	if b.opts.ValueColumn != "" && valueIdx < 0 {
		return &jmhfmt.FileError{Path: src.Path, Err: fmt.Errorf("%w %q", ErrUnknownColumn, b.opts.ValueColumn)}
	}

	// Map the file's columns onto the table's, forgetting any new
	// ones if the file turns out to be bad.
	ncols := len(b.cols)
	defer func() {
		if err != nil {
			for _, name := range b.cols[ncols:] {
				delete(b.colIndex, name)
			}
			b.cols = b.cols[:ncols]
		}
	}()
	idx := make([]int, len(header))
	for i, name := range header {
		idx[i] = b.column(name)
	}
	versionIdx := -1
	var version Value
	if b.opts.VersionLabels {
		versionIdx = b.column(VersionColumn)
		version = Str(VersionLabel(src.Name))
	}
	memoryIdx := b.column(MemoryColumn)

	sep := r.Separator()
	var rows []row
	dropped := 0
	for r.Scan() {
		rec := r.Record()
		if valueIdx >= 0 && parseCell(rec.Fields[valueIdx], sep).IsNull() {
			dropped++
			continue
		}
		cells := make([]Value, len(b.cols))
		for i, f := range rec.Fields {
			cells[idx[i]] = parseCell(f, sep)
		}
		if versionIdx >= 0 {
			cells[versionIdx] = version
		}
		cells[memoryIdx] = Num(heap)
		rows = append(rows, row{sep, cells})
	}
	if err := r.Err(); err != nil {
		return err
	}

	b.rows = append(b.rows, rows...)
	b.stats.Files++
	b.stats.Rows += len(rows)
	b.stats.Dropped += dropped
	return nil
}

// column returns the index of the named column, adding it if needed.
func (b *Builder) column(name string) int {
	if i, ok := b.colIndex[name]; ok {
		return i
	}
	b.colIndex[name] = len(b.cols)
	b.cols = append(b.cols, name)
	return len(b.cols) - 1
}

// dedupe renames repeated column names to "name.1", "name.2", and so
// on, so that every column of a file stays addressable. A new name
// never reuses a name that appears elsewhere in the header.
func dedupe(header []string) []string {
	used := make(map[string]bool, len(header))
	for _, name := range header {
		used[name] = true
	}
	seen := make(map[string]int, len(header))
	out := make([]string, len(header))
	for i, name := range header {
		n := seen[name]
		seen[name] = n + 1
		if n > 0 {
			for {
				alt := fmt.Sprintf("%s.%d", name, n)
				if !used[alt] {
					used[alt] = true
					name = alt
					break
				}
				n++
			}
			seen[header[i]] = n + 1
		}
		out[i] = name
	}
	return out
}

// Stats returns counts of what has been added so far.
func (b *Builder) Stats() Stats {
	return b.stats
}

// Columns returns the names of the columns seen so far, in the order
// they were first seen.
func (b *Builder) Columns() []string {
	return b.cols
}

// Table returns the rows added so far as a table.
//
// A column whose non-null cells are all numbers is a []float64 with
// NaN for null. Any other column is a []string with "" for null; a
// number in such a column keeps the decimal separator of its file. If
// VersionLabels is set, rows are stably sorted by VersionColumn.
func (b *Builder) Table() *table.Table {
	var tb table.Builder
	for ci, name := range b.cols {
		numeric := true
		for i := range b.rows {
			if b.rows[i].cell(ci).Kind == String {
				numeric = false
				break
			}
		}
		if numeric {
			col := make([]float64, len(b.rows))
			for i := range b.rows {
				v := b.rows[i].cell(ci)
				if v.IsNull() {
					col[i] = math.NaN()
				} else {
					col[i] = v.Num
				}
			}
			tb.Add(name, col)
			continue
		}
		col := make([]string, len(b.rows))
		for i := range b.rows {
			switch v := b.rows[i].cell(ci); v.Kind {
			case Number:
				col[i] = numconv.FormatFloat(v.Num, b.rows[i].sep)
			case String:
				col[i] = v.Str
			}
		}
		tb.Add(name, col)
	}
	t := tb.Done()
	if b.opts.VersionLabels {
		t = table.Flatten(table.SortBy(t, VersionColumn))
	}
	return t
}

// VersionLabel derives a version label from a result file name such
// as "benchmark_jdk-17.scsv" by removing the "benchmark_" and ".scsv"
// tokens and every '-'.
func VersionLabel(name string) string {
	name = strings.ReplaceAll(name, "benchmark_", "")
	name = strings.ReplaceAll(name, ".scsv", "")
	return strings.ReplaceAll(name, "-", "")
}
