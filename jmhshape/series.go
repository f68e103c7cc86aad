// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhshape

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-gg/table"
	"github.com/dbg-codes/jmhplot/jmhtab"
)

// SeriesOptions control NewSeriesSet.
type SeriesOptions struct {
	// Single puts every row in one series, in table order, instead
	// of splitting by the Second dimension, which is then ignored.
	Single bool

	StripFirst  bool // strip the common prefix of the x labels
	StripSecond bool // strip the common prefix of the series labels
}

// A Point is one observation in a series.
type Point struct {
	X      jmhtab.Value
	XLabel string
	Y      float64
	Err    float64 // NaN if there is no error value
}

// A Series is the sequence of points sharing one Second value.
type Series struct {
	Key    jmhtab.Value
	Label  string
	Points []Point
}

// A SeriesSet is a set of series ready to be drawn on one chart.
type SeriesSet struct {
	Axes Axes

	// ErrorColumn is the column error values come from, or "".
	ErrorColumn string

	// XKeys are the distinct x values across all series in order of
	// first occurrence.
	XKeys []jmhtab.Value

	Series []*Series
}

// NewSeriesSet splits t into one series per distinct value of the
// Second dimension, in order of first occurrence. Rows with no Second
// value form a single series of their own. Within a series, points
// are ordered by the position of their First value in XKeys, and rows
// with equal First values keep their table order.
func NewSeriesSet(t *table.Table, axes Axes, opts SeriesOptions) (*SeriesSet, error) {
	errCol, err := axes.ErrorColumn(t)
	if err != nil {
		return nil, fmt.Errorf("error axis: %w", err)
	}
	cols := seriesColumns{}
	if cols.x, err = axisValues(t, "first", axes.First); err != nil {
		return nil, err
	}
	if cols.y, err = axisFloats(t, "value", axes.Value); err != nil {
		return nil, err
	}
	if errCol != "" {
		if cols.err, err = axisFloats(t, "error", errCol); err != nil {
			return nil, err
		}
	}

	s := &SeriesSet{Axes: axes, ErrorColumn: errCol, XKeys: Unique(cols.x)}
	cols.rank = index(s.XKeys)
	cols.xlabels = labels(s.XKeys, opts.StripFirst)

	if opts.Single {
		rows := make([]int, len(cols.x))
		for i := range rows {
			rows[i] = i
		}
		ser := cols.series(jmhtab.Value{}, rows)
		ser.Label = axes.Value
		s.Series = []*Series{ser}
		return s, nil
	}

	second, err := axisValues(t, "second", axes.Second)
	if err != nil {
		return nil, err
	}
	keys := Unique(second)
	ki := index(keys)
	rows := make([][]int, len(keys))
	for i, k := range second {
		rows[ki[k]] = append(rows[ki[k]], i)
	}
	for i, k := range keys {
		ser := cols.series(k, rows[i])
		sort.SliceStable(ser.Points, func(a, b int) bool {
			return cols.rank[ser.Points[a].X] < cols.rank[ser.Points[b].X]
		})
		s.Series = append(s.Series, ser)
	}
	for i, l := range labels(keys, opts.StripSecond) {
		s.Series[i].Label = l
	}
	return s, nil
}

// seriesColumns holds the table columns that series points are built
// from.
type seriesColumns struct {
	x       []jmhtab.Value
	y, err  []float64 // err is nil if there is no error column
	rank    map[jmhtab.Value]int
	xlabels []string
}

// series builds a series from the given rows, in order.
func (c *seriesColumns) series(key jmhtab.Value, rows []int) *Series {
	ser := &Series{Key: key, Points: make([]Point, len(rows))}
	for i, r := range rows {
		x := c.x[r]
		p := Point{X: x, XLabel: c.xlabels[c.rank[x]], Y: c.y[r], Err: math.NaN()}
		if c.err != nil {
			p.Err = c.err[r]
		}
		ser.Points[i] = p
	}
	return ser
}
