// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhchart

import (
	"image/color"
	"math"

	"github.com/dbg-codes/jmhplot/jmhshape"
	"github.com/dbg-codes/jmhplot/jmhtab"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

// Lines draws each series in s as a line through its points, with
// error bars if s has an error column.
//
// If every x value is a number labelled as itself, the x axis is
// numeric. Otherwise x values are placed at their position in s.XKeys
// and labelled with their XLabel.
func Lines(s *jmhshape.SeriesSet, l Labels) (*plot.Plot, error) {
	n := 0
	for _, ser := range s.Series {
		n += len(ser.Points)
	}
	if n == 0 {
		return nil, ErrNothingToPlot
	}

	numeric := true
	for _, k := range s.XKeys {
		if k.Kind != jmhtab.Number {
			numeric = false
			break
		}
	}
	// Relabelled x values, such as stripped ones, need a nominal axis
	// to show their labels.
	for _, ser := range s.Series {
		for _, pt := range ser.Points {
			if pt.XLabel != pt.X.String() {
				numeric = false
			}
		}
	}
	pos := make(map[jmhtab.Value]float64, len(s.XKeys))
	for i, k := range s.XKeys {
		if numeric {
			pos[k] = k.Num
		} else {
			pos[k] = float64(i)
		}
	}

	colors, err := seriesColors(len(s.Series))
	if err != nil {
		return nil, err
	}

	p := newPlot(l, s.Axes.First, s.Axes.Value)
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	for i, ser := range s.Series {
		pts := errorPoints{
			XYs:     make(plotter.XYs, len(ser.Points)),
			YErrors: make(plotter.YErrors, len(ser.Points)),
		}
		for j, pt := range ser.Points {
			pts.XYs[j] = plotter.XY{X: pos[pt.X], Y: pt.Y}
			e := pt.Err
			if math.IsNaN(e) {
				e = 0
			}
			pts.YErrors[j].Low, pts.YErrors[j].High = e, e
		}

		c := colors[i%len(colors)]
		line, glyphs, err := plotter.NewLinePoints(pts.XYs)
		if err != nil {
			return nil, err
		}
		line.Color = c
		glyphs.Color = c
		glyphs.Radius = vg.Points(2.5)
		p.Add(line, glyphs)
		p.Legend.Add(ser.Label, line, glyphs)

		if s.ErrorColumn != "" {
			bars, err := plotter.NewYErrorBars(pts)
			if err != nil {
				return nil, err
			}
			bars.Color = c
			p.Add(bars)
		}
	}

	if !numeric {
		labels := make([]string, len(s.XKeys))
		for _, ser := range s.Series {
			for _, pt := range ser.Points {
				labels[int(pos[pt.X])] = pt.XLabel
			}
		}
		p.NominalX(labels...)
	}
	verticalTicks(p)
	return p, nil
}

// seriesColors returns a qualitative palette with at least n colours
// where possible. Beyond twelve series colours repeat.
func seriesColors(n int) ([]color.Color, error) {
	if n < 3 {
		n = 3
	}
	if n > 12 {
		n = 12
	}
	pal, err := brewer.GetPalette(brewer.TypeQualitative, "Paired", n)
	if err != nil {
		return nil, err
	}
	return pal.Colors(), nil
}
