// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhchart

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/dbg-codes/jmhplot/jmhshape"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// heatColors is the number of palette steps in a heatmap.
const heatColors = 255

// gridXYZ adapts a Grid to plotter.GridXYZ. Grid row 0 is drawn at
// the top.
type gridXYZ struct {
	g *jmhshape.Grid
}

func (x gridXYZ) Dims() (c, r int) { return len(x.g.Cols), len(x.g.Rows) }
func (x gridXYZ) X(c int) float64  { return float64(c) }
func (x gridXYZ) Y(r int) float64  { return float64(r) }

func (x gridXYZ) Z(c, r int) float64 {
	return x.g.Cells[len(x.g.Rows)-1-r][c]
}

// Heatmap draws g with one coloured, annotated cell per value. The x
// axis is the second dimension and the y axis the first.
func Heatmap(g *jmhshape.Grid, l Labels) (*plot.Plot, error) {
	nr, nc := len(g.Rows), len(g.Cols)
	if nr == 0 || nc == 0 {
		return nil, ErrNothingToPlot
	}

	var vals []float64
	for _, row := range g.Cells {
		for _, v := range row {
			if !math.IsNaN(v) {
				vals = append(vals, v)
			}
		}
	}
	lo, hi := stats.Bounds(vals)
	if math.IsNaN(lo) {
		return nil, ErrNothingToPlot
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	cmap := moreland.SmoothBlueRed()
	cmap.SetMin(lo)
	cmap.SetMax(hi)
	h := plotter.NewHeatMap(gridXYZ{g}, cmap.Palette(heatColors))
	h.Min, h.Max = lo, hi

	var cells plotter.XYLabels
	for i, row := range g.Cells {
		for j, v := range row {
			if math.IsNaN(v) {
				continue
			}
			cells.XYs = append(cells.XYs, plotter.XY{X: float64(j), Y: float64(nr - 1 - i)})
			cells.Labels = append(cells.Labels, fmt.Sprintf("%.3g", v))
		}
	}
	ann, err := plotter.NewLabels(cells)
	if err != nil {
		return nil, err
	}
	for i := range ann.TextStyle {
		ann.TextStyle[i].XAlign = draw.XCenter
		ann.TextStyle[i].YAlign = draw.YCenter
	}

	p := newPlot(l, g.Axes.Second, g.Axes.First)
	p.Add(h, ann)
	p.NominalX(g.Cols...)
	rows := make([]string, nr)
	for i, r := range g.Rows {
		rows[nr-1-i] = r
	}
	p.NominalY(rows...)
	verticalTicks(p)
	return p, nil
}
