// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numconv parses and formats decimal numbers whose decimal
// point is either '.' or ','.
package numconv

import (
	"strconv"
	"strings"
)

// ParseFloat parses s as a decimal number that uses sep as its
// decimal point. The accepted syntax is an optional sign, digits with
// at most one sep, and an optional exponent. Thousands grouping and
// the other separator are rejected, as are "Inf" and "NaN".
func ParseFloat(s string, sep byte) (float64, bool) {
	if !valid(s, sep) {
		return 0, false
	}
	if sep != '.' {
		s = strings.Replace(s, string(sep), ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out of range.
		return 0, false
	}
	return v, true
}

func valid(s string, sep byte) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		digits++
	}
	if i < len(s) && s[i] == sep {
		i++
		for ; i < len(s) && isDigit(s[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for ; i < len(s) && isDigit(s[i]); i++ {
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// FormatFloat formats v in the shortest form that ParseFloat maps
// back to v, using sep as the decimal point and no exponent.
func FormatFloat(v float64, sep byte) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if sep != '.' {
		s = strings.Replace(s, ".", string(sep), 1)
	}
	return s
}
