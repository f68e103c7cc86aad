// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Jmhplot draws charts from JMH benchmark results.
//
// Usage:
//
//	jmhplot -o out.png [-mode heatmap|single|multi] -first col [-second col] [options] dir
//
// Jmhplot reads every result file under dir whose name matches
// -filter (by default, .csv and .scsv files). Each file holds the
// output of a JMH run in its semicolon-separated format, possibly
// mixed with other text such as the run log. Lines without a
// semicolon are ignored, except that the JVM heap size is taken from
// the first -Xmx flag in the file and added to every row as the
// "memory" column. Numbers may use either a period or a comma as the
// decimal separator; each file is checked separately.
//
// With -version-labels, every row also gets a "java_version" column
// derived from its file name: "benchmark_jdk-17.scsv" becomes "jdk17".
// Rows are then ordered by that column.
//
// The rows of all files form one table, which is drawn according to
// -mode:
//
//	heatmap  one cell per pair of -first and -second values,
//	         coloured by the -third column
//	multi    one line per -second value, plotting -third over -first
//	single   one line plotting -third over -first
//
// In heatmap mode the table must hold exactly one row for every
// pair of -first and -second values.
//
// The -error flag names a column by substring, such as "Score Error",
// whose values are drawn as error bars in the line modes.
//
// The output format follows the extension of -o: png, svg, pdf, eps,
// jpg or tif. On failure jmhplot prints an error, exits with status 1
// and does not write the output file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dbg-codes/jmhplot/jmhchart"
	"github.com/dbg-codes/jmhplot/jmhfmt"
	"github.com/dbg-codes/jmhplot/jmhshape"
	"github.com/dbg-codes/jmhplot/jmhtab"
	"gonum.org/v1/plot"
)

func main() {
	log.SetPrefix("jmhplot: ")
	log.SetFlags(0)
	if err := jmhplot(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// errUsage is returned after a usage message has been printed.
var errUsage = errors.New("bad usage")

// jmhplot runs the command with the given arguments.
func jmhplot(stdout, stderr io.Writer, args []string) error {
	flags := flag.NewFlagSet("jmhplot", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: jmhplot -o out.png [options] dir\n")
		fmt.Fprintf(flags.Output(), "options:\n")
		flags.PrintDefaults()
	}

	flagOut := flags.String("o", "", "write the chart to `file`; the extension selects the format")
	flagMode := flags.String("mode", "multi", "chart `mode`: heatmap, single or multi")
	flagFirst := flags.String("first", "", "`column` for heatmap rows or line x values")
	flagSecond := flags.String("second", "", "`column` for heatmap columns or line series")
	flagThird := flags.String("third", jmhtab.DefaultValueColumn, "value `column`; rows where it is empty are dropped")
	flagError := flags.String("error", "", "draw error bars from the first column whose name contains `substr`")
	flagFilter := flags.String("filter", jmhfmt.DefaultFilter, "read only files whose names match `regexp`")
	flagVersions := flags.Bool("version-labels", false, "add a java_version column derived from file names")
	flagStripFirst := flags.Bool("strip-first", false, "strip the common prefix of -first labels; a numeric x axis becomes categorical")
	flagStripSecond := flags.Bool("strip-second", false, "strip the common prefix of -second labels")
	flagTitle := flags.String("title", "", "chart `title`")
	flagXLabel := flags.String("xlabel", "", "x axis `label` (default the x column name)")
	flagYLabel := flags.String("ylabel", "", "y axis `label` (default the y column name)")
	flagWidth := flags.String("width", "16cm", "image `width`")
	flagHeight := flags.String("height", "10cm", "image `height`")
	flagVerbose := flags.Bool("v", false, "report files and rows read")
	if err := flags.Parse(args); err != nil {
		return errUsage
	}

	usage := func(format string, args ...interface{}) error {
		fmt.Fprintf(stderr, format+"\n", args...)
		flags.Usage()
		return errUsage
	}
	if flags.NArg() != 1 {
		return usage("expected one directory, got %d arguments", flags.NArg())
	}
	if *flagOut == "" {
		return usage("missing -o")
	}
	if *flagFirst == "" {
		return usage("missing -first")
	}
	switch *flagMode {
	case "heatmap", "multi":
		if *flagSecond == "" {
			return usage("-mode %s needs -second", *flagMode)
		}
	case "single":
	default:
		return usage("unknown -mode %q", *flagMode)
	}
	width, err := jmhchart.ParseLength(*flagWidth)
	if err != nil {
		return fmt.Errorf("-width: %w", err)
	}
	height, err := jmhchart.ParseLength(*flagHeight)
	if err != nil {
		return fmt.Errorf("-height: %w", err)
	}
	re, err := jmhfmt.CompileFilter(*flagFilter)
	if err != nil {
		return fmt.Errorf("-filter: %w", err)
	}

	b := jmhtab.NewBuilder(jmhtab.Options{
		ValueColumn:   *flagThird,
		VersionLabels: *flagVersions,
	})
	if err := b.AddDir(context.Background(), flags.Arg(0), re); err != nil {
		return err
	}
	if *flagVerbose {
		st := b.Stats()
		fmt.Fprintf(stderr, "read %d files: %d rows, %d dropped without %s\n", st.Files, st.Rows, st.Dropped, *flagThird)
	}
	t := b.Table()

	axes := jmhshape.Axes{First: *flagFirst, Second: *flagSecond, Value: *flagThird, Error: *flagError}
	labels := jmhchart.Labels{Title: *flagTitle, X: *flagXLabel, Y: *flagYLabel}
	var p *plot.Plot
	if *flagMode == "heatmap" {
		g, err := jmhshape.NewGrid(t, axes, jmhshape.GridOptions{
			StripFirst:  *flagStripFirst,
			StripSecond: *flagStripSecond,
		})
		if err != nil {
			return err
		}
		if p, err = jmhchart.Heatmap(g, labels); err != nil {
			return err
		}
	} else {
		s, err := jmhshape.NewSeriesSet(t, axes, jmhshape.SeriesOptions{
			Single:      *flagMode == "single",
			StripFirst:  *flagStripFirst,
			StripSecond: *flagStripSecond,
		})
		if err != nil {
			return err
		}
		if p, err = jmhchart.Lines(s, labels); err != nil {
			return err
		}
	}

	if err := jmhchart.Save(p, width, height, *flagOut); err != nil {
		return err
	}
	if *flagVerbose {
		fmt.Fprintf(stdout, "wrote %s\n", *flagOut)
	}
	return nil
}
