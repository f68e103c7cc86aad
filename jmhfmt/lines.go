// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jmhfmt reads JMH benchmark results written in the
// semicolon-separated ("scsv") result format.
//
// Such files are rarely clean. Besides the header and data records,
// they usually carry free-text lines added by the harness or by
// scripts that drive it: JVM flags, environment notes, blank lines.
// This package separates the records from that noise, works out
// which decimal point the numbers use, and looks up individual
// metadata values (such as the -Xmx heap size) in the free text.
package jmhfmt

import "bytes"

// FieldSeparator separates the fields of a record. A line is a
// record if and only if it contains FieldSeparator.
const FieldSeparator = ';'

// A Line is a single line of input together with its 1-based line
// number in the original file.
type Line struct {
	Num  int
	Text []byte
}

// splitLines splits data into lines. Line terminators, including a
// '\r' before the '\n', are not part of the returned lines. A final
// empty line after a trailing newline is dropped.
func splitLines(data []byte) []Line {
	var lines []Line
	for num := 1; len(data) > 0; num++ {
		text := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			text, data = data[:i], data[i+1:]
		} else {
			data = nil
		}
		text = bytes.TrimSuffix(text, []byte{'\r'})
		lines = append(lines, Line{num, text})
	}
	return lines
}

// RecordLines returns the lines of data that contain FieldSeparator,
// in order. All other lines are commentary and are dropped.
func RecordLines(data []byte) []Line {
	var recs []Line
	for _, l := range splitLines(data) {
		if bytes.IndexByte(l.Text, FieldSeparator) >= 0 {
			recs = append(recs, l)
		}
	}
	return recs
}

// DetectSeparator returns the decimal separator used by the numbers
// in data, either ',' or '.'.
//
// The first line is assumed to be a header and is skipped. The
// remaining lines are scanned in order: the first line containing a
// ',' decides for ',', and otherwise the first line containing a '.'
// decides for '.'. Within one line ',' takes precedence. This is a
// heuristic rather than a locale detector. In particular, a comma in
// free text before the first number wins. If no line decides,
// DetectSeparator returns ErrSeparatorUndetectable.
func DetectSeparator(data []byte) (byte, error) {
	lines := splitLines(data)
	if len(lines) > 0 {
		lines = lines[1:]
	}
	for _, l := range lines {
		if bytes.IndexByte(l.Text, ',') >= 0 {
			return ',', nil
		}
		if bytes.IndexByte(l.Text, '.') >= 0 {
			return '.', nil
		}
	}
	return 0, ErrSeparatorUndetectable
}
