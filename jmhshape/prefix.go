// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhshape

import (
	"strings"
	"unicode/utf8"

	"github.com/aclements/go-gg/generic/slice"
)

// CommonPrefix returns the longest prefix shared by all labels.
//
// Only the lexicographically smallest and largest labels need to be
// compared: any label sorts between them and so shares every byte
// they have in common.
func CommonPrefix(labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	lo := slice.Min(labels).(string)
	hi := slice.Max(labels).(string)
	i := 0
	for i < len(lo) && lo[i] == hi[i] {
		i++
	}
	// Don't split a rune.
	for i > 0 && i < len(lo) && !utf8.RuneStart(lo[i]) {
		i--
	}
	return lo[:i]
}

// StripPrefix returns labels with their common prefix removed.
func StripPrefix(labels []string) []string {
	p := CommonPrefix(labels)
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = strings.TrimPrefix(l, p)
	}
	return out
}
