// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jmhchart draws reshaped benchmark results with gonum/plot.
//
// Heatmap draws a jmhshape.Grid; Lines draws a jmhshape.SeriesSet.
// Both return a *plot.Plot that Save writes to a file.
package jmhchart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrNothingToPlot is returned when the input has no values.
var ErrNothingToPlot = errors.New("nothing to plot")

// DPI is the resolution of PNG output.
const DPI = 150

// Labels are the texts placed around a chart. An empty X or Y label
// defaults to the name of the column on that axis.
type Labels struct {
	Title string
	X, Y  string
}

func newPlot(l Labels, x, y string) *plot.Plot {
	p := plot.New()
	p.Title.Text = l.Title
	p.X.Label.Text = or(l.X, x)
	p.Y.Label.Text = or(l.Y, y)
	return p
}

func or(s, def string) string {
	if s != "" {
		return s
	}
	return def
}

// verticalTicks turns the x tick labels on their side.
func verticalTicks(p *plot.Plot) {
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
}

// Save draws p at the given size and writes it to path. The format
// follows the extension of path: png, svg, pdf, eps, jpg, tif or tex.
//
// The image is written to a temporary file that is renamed to path
// only once complete, so on error path is left untouched.
func Save(p *plot.Plot, width, height vg.Length, path string) (err error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	var w io.WriterTo
	if format == "png" {
		c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(DPI), vgimg.UseBackgroundColor(color.White))
		p.Draw(draw.New(c))
		w = vgimg.PngCanvas{Canvas: c}
	} else {
		if w, err = p.WriterTo(width, height, format); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	f, err := os.CreateTemp(filepath.Dir(path), ".jmhplot-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()
	if _, err = w.WriteTo(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return err
	}
	// CreateTemp makes the file private.
	if err = os.Chmod(f.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// ParseLength parses a length such as "16cm", "6in" or "400pt".
func ParseLength(s string) (vg.Length, error) {
	l, err := vg.ParseLength(s)
	if err != nil {
		return 0, err
	}
	if l <= 0 {
		return 0, fmt.Errorf("length %q is not positive", s)
	}
	return l, nil
}
