// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhchart

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/dbg-codes/jmhplot/jmhshape"
	"github.com/dbg-codes/jmhplot/jmhtab"
	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func testGrid(t *testing.T) *jmhshape.Grid {
	t.Helper()
	tab := new(table.Builder).
		Add("java_version", []string{"v_11", "v_11", "v_17", "v_17"}).
		Add("memory", []float64{2, 4, 2, 4}).
		Add("Score", []float64{1.25, 2.5, 1.5, 3}).
		Done()
	g, err := jmhshape.NewGrid(tab, jmhshape.Axes{First: "java_version", Second: "memory", Value: "Score"}, jmhshape.GridOptions{StripFirst: true})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func testSeries(t *testing.T, errAxis string) *jmhshape.SeriesSet {
	t.Helper()
	tab := new(table.Builder).
		Add("Benchmark", []string{"b.if", "b.if", "b.else", "b.else"}).
		Add("Param: size", []string{"small", "large", "small", "large"}).
		Add("Score", []float64{10, 20, 12, 18}).
		Add("Score Error (99.9%)", []float64{1, 2, 1.5, 0.5}).
		Done()
	axes := jmhshape.Axes{First: "Param: size", Second: "Benchmark", Value: "Score", Error: errAxis}
	s, err := jmhshape.NewSeriesSet(tab, axes, jmhshape.SeriesOptions{StripSecond: true})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func checkPNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Errorf("%s is not a PNG file", path)
	}
}

func TestHeatmap(t *testing.T) {
	p, err := Heatmap(testGrid(t), Labels{Title: "heap"})
	if err != nil {
		t.Fatal(err)
	}
	if p.X.Label.Text != "memory" || p.Y.Label.Text != "java_version" {
		t.Errorf("axis labels = %q, %q; want %q, %q", p.X.Label.Text, p.Y.Label.Text, "memory", "java_version")
	}
	out := filepath.Join(t.TempDir(), "heat.png")
	if err := Save(p, 10*vg.Centimeter, 8*vg.Centimeter, out); err != nil {
		t.Fatal(err)
	}
	checkPNG(t, out)
}

func TestHeatmapConstant(t *testing.T) {
	g := testGrid(t)
	for _, row := range g.Cells {
		for j := range row {
			row[j] = 7
		}
	}
	p, err := Heatmap(g, Labels{})
	if err != nil {
		t.Fatal(err)
	}
	if err := Save(p, 8*vg.Centimeter, 8*vg.Centimeter, filepath.Join(t.TempDir(), "c.svg")); err != nil {
		t.Fatal(err)
	}
}

func TestGridXYZ(t *testing.T) {
	g := testGrid(t)
	xyz := gridXYZ{g}
	c, r := xyz.Dims()
	if c != 2 || r != 2 {
		t.Fatalf("Dims() = %d, %d; want 2, 2", c, r)
	}
	// The first grid row is drawn at the top.
	if z := xyz.Z(0, 1); z != 1.25 {
		t.Errorf("Z(0, 1) = %v, want 1.25", z)
	}
	if z := xyz.Z(1, 0); z != 3 {
		t.Errorf("Z(1, 0) = %v, want 3", z)
	}
}

func TestHeatmapEmpty(t *testing.T) {
	if _, err := Heatmap(&jmhshape.Grid{}, Labels{}); !errors.Is(err, ErrNothingToPlot) {
		t.Errorf("Heatmap of empty grid error = %v, want %v", err, ErrNothingToPlot)
	}
}

func TestLines(t *testing.T) {
	for _, errAxis := range []string{"", "Score Error"} {
		p, err := Lines(testSeries(t, errAxis), Labels{X: "size", Y: "ops/ms"})
		if err != nil {
			t.Fatalf("error axis %q: %v", errAxis, err)
		}
		if p.X.Label.Text != "size" || p.Y.Label.Text != "ops/ms" {
			t.Errorf("axis labels = %q, %q", p.X.Label.Text, p.Y.Label.Text)
		}
		out := filepath.Join(t.TempDir(), "lines.png")
		if err := Save(p, 12*vg.Centimeter, 8*vg.Centimeter, out); err != nil {
			t.Fatal(err)
		}
		checkPNG(t, out)
	}
}

func TestLinesNumeric(t *testing.T) {
	s := &jmhshape.SeriesSet{
		Axes:  jmhshape.Axes{First: "threads", Second: "Benchmark", Value: "Score"},
		XKeys: []jmhtab.Value{jmhtab.Num(1), jmhtab.Num(4), jmhtab.Num(16)},
		Series: []*jmhshape.Series{{
			Key:   jmhtab.Str("b"),
			Label: "b",
			Points: []jmhshape.Point{
				{X: jmhtab.Num(1), XLabel: "1", Y: 1, Err: math.NaN()},
				{X: jmhtab.Num(4), XLabel: "4", Y: 3, Err: math.NaN()},
				{X: jmhtab.Num(16), XLabel: "16", Y: 9, Err: math.NaN()},
			},
		}},
	}
	p, err := Lines(s, Labels{})
	if err != nil {
		t.Fatal(err)
	}
	if p.X.Max < 16 {
		t.Errorf("x axis ends at %v, want at least 16", p.X.Max)
	}
}

func TestLinesEmpty(t *testing.T) {
	if _, err := Lines(&jmhshape.SeriesSet{}, Labels{}); !errors.Is(err, ErrNothingToPlot) {
		t.Errorf("Lines of empty set error = %v, want %v", err, ErrNothingToPlot)
	}
}

func TestLinesStrippedNumeric(t *testing.T) {
	tab := new(table.Builder).
		Add("Param: size", []float64{1000, 1500}).
		Add("Score", []float64{3, 4}).
		Done()
	axes := jmhshape.Axes{First: "Param: size", Value: "Score"}
	for _, test := range []struct {
		strip bool
		ticks []string // nil for a numeric axis
	}{
		{false, nil},
		{true, []string{"000", "500"}},
	} {
		s, err := jmhshape.NewSeriesSet(tab, axes, jmhshape.SeriesOptions{Single: true, StripFirst: test.strip})
		if err != nil {
			t.Fatal(err)
		}
		p, err := Lines(s, Labels{})
		if err != nil {
			t.Fatal(err)
		}
		ticks, nominal := p.X.Tick.Marker.(plot.ConstantTicks)
		if test.ticks == nil {
			if nominal {
				t.Errorf("strip=%v: x axis is nominal, want numeric", test.strip)
			}
			continue
		}
		if !nominal {
			t.Fatalf("strip=%v: x axis is numeric, want nominal", test.strip)
		}
		var got []string
		for _, tk := range ticks {
			got = append(got, tk.Label)
		}
		if diff := cmp.Diff(test.ticks, got); diff != "" {
			t.Errorf("strip=%v: tick labels mismatch (-want +got):\n%s", test.strip, diff)
		}
	}
}

func TestSeriesColors(t *testing.T) {
	for _, n := range []int{1, 3, 12, 40} {
		cs, err := seriesColors(n)
		if err != nil {
			t.Fatalf("seriesColors(%d): %v", n, err)
		}
		if len(cs) < 3 || len(cs) > 12 {
			t.Errorf("seriesColors(%d) has %d colours", n, len(cs))
		}
	}
}

func TestSaveBadFormat(t *testing.T) {
	p, err := Heatmap(testGrid(t), Labels{})
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := Save(p, vg.Inch, vg.Inch, filepath.Join(dir, "out.bmp")); err == nil {
		t.Errorf("Save to .bmp succeeded")
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 0 {
		t.Errorf("failed Save left %d files behind", len(ents))
	}
}

func TestParseLength(t *testing.T) {
	for _, test := range []struct {
		in   string
		want vg.Length
		ok   bool
	}{
		{"16cm", 16 * vg.Centimeter, true},
		{"2in", 2 * vg.Inch, true},
		{"300", 300, true},
		{"0cm", 0, false},
		{"-1in", 0, false},
		{"wide", 0, false},
	} {
		got, err := ParseLength(test.in)
		if (err == nil) != test.ok {
			t.Errorf("ParseLength(%q) error = %v, want ok=%v", test.in, err, test.ok)
			continue
		}
		if test.ok && math.Abs(float64(got-test.want)) > 1e-9 {
			t.Errorf("ParseLength(%q) = %v, want %v", test.in, got, test.want)
		}
	}
}
