// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhfmt

import (
	"errors"
	"fmt"
)

var (
	// ErrSeparatorUndetectable is returned when no line after the
	// first contains a ',' or a '.'.
	ErrSeparatorUndetectable = errors.New("decimal separator cannot be detected")

	// ErrMetadataNotFound is returned when a metadata marker does
	// not occur in a file.
	ErrMetadataNotFound = errors.New("metadata marker not found")

	// ErrMetadataParse is returned when the text following a
	// metadata marker is not a number.
	ErrMetadataParse = errors.New("metadata value is not a number")

	// ErrEmptyOrMalformedFile is returned when a file does not
	// contain a header record followed by at least one data record.
	ErrEmptyOrMalformedFile = errors.New("no header and data records")

	// ErrMalformedRecord is returned when a record's field count
	// differs from the header's.
	ErrMalformedRecord = errors.New("wrong number of fields")

	// ErrNoMatchingFiles is returned when a walk visits no files.
	ErrNoMatchingFiles = errors.New("no matching files")
)

// A FileError records an error and the file (and, if known, line)
// that caused it.
type FileError struct {
	Path string
	Line int // 0 if the error is not tied to a line
	Err  error
}

func (e *FileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Pos returns the file name and line of e, in the manner of
// benchmark syntax errors.
func (e *FileError) Pos() (fileName string, line int) {
	return e.Path, e.Line
}
