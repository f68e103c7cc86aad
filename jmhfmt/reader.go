// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhfmt

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// A Record is one data record of a results file.
type Record struct {
	// Fields are the unquoted field values, one per header column.
	Fields []string

	// Line is the 1-based line number of the record in its file.
	Line int
}

// A Reader reads the records of a single results file.
//
// Its API is modeled on bufio.Scanner. The Record returned by Record
// is owned by the caller.
type Reader struct {
	fileName string
	lines    []Line
	csv      *csv.Reader
	sep      byte
	header   []string
	rec      Record
	n        int // data records read
	err      error
}

// NewReader returns a Reader for the results file contents data.
// fileName is used in error messages; it is purely diagnostic.
//
// NewReader detects the file's decimal separator and reads the
// header record. If either fails, the error is reported by Err and
// Scan returns false.
func NewReader(data []byte, fileName string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	r := &Reader{fileName: fileName}

	sep, err := DetectSeparator(data)
	if err != nil {
		r.err = &FileError{Path: fileName, Err: err}
		return r
	}
	r.sep = sep

	r.lines = RecordLines(data)
	if len(r.lines) < 2 {
		r.err = &FileError{Path: fileName, Err: ErrEmptyOrMalformedFile}
		return r
	}
	texts := make([][]byte, len(r.lines))
	for i, l := range r.lines {
		texts[i] = l.Text
	}
	r.csv = csv.NewReader(bytes.NewReader(bytes.Join(texts, []byte{'\n'})))
	r.csv.Comma = FieldSeparator
	r.csv.FieldsPerRecord = -1
	r.csv.LazyQuotes = true

	header, err := r.csv.Read()
	if err != nil {
		r.err = r.wrap(err)
		return r
	}
	r.header = header
	return r
}

// Separator returns the decimal separator detected for the file.
func (r *Reader) Separator() byte {
	return r.sep
}

// Header returns the column names from the file's header record.
func (r *Reader) Header() []string {
	return r.header
}

// Scan advances to the next data record and reports whether one was
// read. If Scan reaches the end of the input or an error occurs, it
// returns false, and the caller should use Err to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	fields, err := r.csv.Read()
	if err == io.EOF {
		if r.n == 0 {
			r.err = &FileError{Path: r.fileName, Err: ErrEmptyOrMalformedFile}
		}
		return false
	}
	if err != nil {
		r.err = r.wrap(err)
		return false
	}
	line, _ := r.csv.FieldPos(0)
	r.rec = Record{Fields: fields, Line: r.origLine(line)}
	if len(fields) != len(r.header) {
		r.err = &FileError{
			Path: r.fileName,
			Line: r.rec.Line,
			Err:  fmt.Errorf("%w: got %d, header has %d", ErrMalformedRecord, len(fields), len(r.header)),
		}
		return false
	}
	r.n++
	return true
}

// Record returns the record read by the most recent call to Scan.
func (r *Reader) Record() Record {
	return r.rec
}

// Err returns the first error encountered by the Reader, if any. Err
// wraps one of this package's sentinel errors in a *FileError.
func (r *Reader) Err() error {
	return r.err
}

// origLine maps a line of the joined record text back to its line in
// the original file.
func (r *Reader) origLine(line int) int {
	if line < 1 {
		return 0
	}
	if line > len(r.lines) {
		line = len(r.lines)
	}
	return r.lines[line-1].Num
}

func (r *Reader) wrap(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &FileError{Path: r.fileName, Line: r.origLine(perr.Line), Err: fmt.Errorf("%w: %v", ErrMalformedRecord, perr.Err)}
	}
	return &FileError{Path: r.fileName, Err: err}
}
