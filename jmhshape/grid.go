// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhshape

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"github.com/dbg-codes/jmhplot/jmhtab"
)

// GridOptions control NewGrid.
type GridOptions struct {
	StripFirst  bool // strip the common prefix of the row labels
	StripSecond bool // strip the common prefix of the column labels
}

// A Grid is a dense matrix of values indexed by the distinct values
// of two dimensions.
type Grid struct {
	Axes Axes

	// RowKeys and ColKeys are the distinct values of the first and
	// second dimensions in order of first occurrence. Rows and Cols
	// are their display labels.
	RowKeys, ColKeys []jmhtab.Value
	Rows, Cols       []string

	// Cells[i][j] is the value at RowKeys[i] and ColKeys[j].
	Cells [][]float64
}

// NewGrid lays the Value column of t out over the First and Second
// dimensions.
//
// t must hold exactly one row for every combination of a First value
// and a Second value; otherwise NewGrid returns an error wrapping
// ErrShapeMismatch.
func NewGrid(t *table.Table, axes Axes, opts GridOptions) (*Grid, error) {
	first, err := axisValues(t, "first", axes.First)
	if err != nil {
		return nil, err
	}
	second, err := axisValues(t, "second", axes.Second)
	if err != nil {
		return nil, err
	}
	vals, err := axisFloats(t, "value", axes.Value)
	if err != nil {
		return nil, err
	}

	g := &Grid{
		Axes:    axes,
		RowKeys: Unique(first),
		ColKeys: Unique(second),
	}
	nr, nc := len(g.RowKeys), len(g.ColKeys)
	if len(vals) != nr*nc {
		return nil, fmt.Errorf("%w: %d %q values for %d %q by %d %q cells",
			ErrShapeMismatch, len(vals), axes.Value, nr, axes.First, nc, axes.Second)
	}

	g.Cells = make([][]float64, nr)
	filled := make([][]bool, nr)
	for i := range g.Cells {
		g.Cells[i] = make([]float64, nc)
		filled[i] = make([]bool, nc)
	}
	ri, ci := index(g.RowKeys), index(g.ColKeys)
	for k, v := range vals {
		r, c := ri[first[k]], ci[second[k]]
		if filled[r][c] {
			// With the count check above, a repeat also means
			// some other combination is missing.
			return nil, fmt.Errorf("%w: more than one row for %s=%s, %s=%s",
				ErrShapeMismatch, axes.First, first[k], axes.Second, second[k])
		}
		filled[r][c] = true
		g.Cells[r][c] = v
	}

	g.Rows = labels(g.RowKeys, opts.StripFirst)
	g.Cols = labels(g.ColKeys, opts.StripSecond)
	return g, nil
}
