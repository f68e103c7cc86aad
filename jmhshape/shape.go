// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jmhshape reshapes a combined results table for plotting.
//
// An Axes value names the table columns that play each role in a
// chart. A Grid lays the value column out over two categorical
// dimensions, as a heatmap needs. A SeriesSet splits the table into
// one series per value of the second dimension, as a multi-line
// chart needs.
package jmhshape

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/dbg-codes/jmhplot/jmhtab"
)

var (
	// ErrShapeMismatch is returned when a table is not a complete
	// cross product of a grid's two dimensions.
	ErrShapeMismatch = errors.New("table is not a complete grid")

	// ErrUnknownColumn is returned when an axis names a column the
	// table does not have.
	ErrUnknownColumn = jmhtab.ErrUnknownColumn
)

// Axes assigns table columns to chart dimensions.
type Axes struct {
	First  string // grid rows, or series x values
	Second string // grid columns, or series keys
	Value  string // cell values, or series y values

	// Error selects the error column: the first column whose name
	// contains Error. If empty, there are no error values.
	Error string
}

// ErrorColumn returns the column selected by a.Error, or "" if
// a.Error is empty.
func (a Axes) ErrorColumn(t *table.Table) (string, error) {
	if a.Error == "" {
		return "", nil
	}
	for _, col := range t.Columns() {
		if strings.Contains(col, a.Error) {
			return col, nil
		}
	}
	return "", fmt.Errorf("%w: no column name contains %q", ErrUnknownColumn, a.Error)
}

// axisValues returns the cells of column name, naming the axis in any
// error.
func axisValues(t *table.Table, axis, name string) ([]jmhtab.Value, error) {
	vs, err := jmhtab.Values(t, name)
	if err != nil {
		return nil, fmt.Errorf("%s axis: %w", axis, err)
	}
	return vs, nil
}

func axisFloats(t *table.Table, axis, name string) ([]float64, error) {
	vs, err := jmhtab.Floats(t, name)
	if err != nil {
		return nil, fmt.Errorf("%s axis: %w", axis, err)
	}
	return vs, nil
}

// Unique returns the distinct values of vs in order of first
// occurrence.
func Unique(vs []jmhtab.Value) []jmhtab.Value {
	if len(vs) == 0 {
		return nil
	}
	return slice.Nub(vs).([]jmhtab.Value)
}

// labels formats vs for display, stripping their common prefix if
// strip is set.
func labels(vs []jmhtab.Value, strip bool) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	if strip {
		out = StripPrefix(out)
	}
	return out
}

// index maps each value to its position in vs.
func index(vs []jmhtab.Value) map[jmhtab.Value]int {
	m := make(map[jmhtab.Value]int, len(vs))
	for i, v := range vs {
		m[v] = i
	}
	return m
}
