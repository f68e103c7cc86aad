// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhfmt

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// HeapMarker marks the JVM maximum heap size in a results file.
const HeapMarker = "-Xmx"

// metaText returns the text following the first occurrence of marker
// up to the end of its line.
func metaText(data []byte, marker string) (string, bool) {
	i := bytes.Index(data, []byte(marker))
	if i < 0 {
		return "", false
	}
	rest := data[i+len(marker):]
	if j := bytes.IndexByte(rest, '\n'); j >= 0 {
		rest = rest[:j]
	}
	return strings.TrimSpace(string(rest)), true
}

// Lookup finds the first line of data containing marker and parses
// the rest of that line, after the marker, as a number.
//
// Lookup is independent of record extraction: the marker may appear
// on any line, including a record line.
func Lookup(data []byte, marker string) (float64, error) {
	text, ok := metaText(data, marker)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMetadataNotFound, marker)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s%s", ErrMetadataParse, marker, text)
	}
	return v, nil
}

// sizeSuffixes maps JVM memory size suffixes to their size in
// gigabytes.
var sizeSuffixes = map[byte]float64{
	'k': 1.0 / (1 << 20),
	'm': 1.0 / (1 << 10),
	'g': 1,
	't': 1 << 10,
}

// LookupSize is like Lookup, but also accepts JVM memory sizes such
// as "4g" or "512M". A value with a size suffix is converted to
// gigabytes; a bare number is returned unchanged.
func LookupSize(data []byte, marker string) (float64, error) {
	text, ok := metaText(data, marker)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMetadataNotFound, marker)
	}
	if v, err := strconv.ParseFloat(text, 64); err == nil {
		return v, nil
	}
	if len(text) > 1 {
		scale, ok := sizeSuffixes[lower(text[len(text)-1])]
		if ok {
			if v, err := strconv.ParseFloat(text[:len(text)-1], 64); err == nil {
				return v * scale, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %s%s", ErrMetadataParse, marker, text)
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
