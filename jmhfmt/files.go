// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhfmt

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
)

// DefaultFilter matches the names of JMH CSV and SCSV result files.
const DefaultFilter = `.*\.(s){0,1}csv`

// CompileFilter compiles a file name filter. The pattern must match
// at the start of the name but need not match all of it.
func CompileFilter(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		return nil, fmt.Errorf("bad file filter %q: %w", pattern, err)
	}
	return re, nil
}

// A Source is the raw contents of one results file.
type Source struct {
	// Path is the file's location as reported in errors.
	Path string

	// Name is the file's base name.
	Name string

	Data []byte
}

// A Files reads the results files found under a root directory.
//
// Files are visited in lexical order of their location, so the same
// tree always yields the same sequence.
type Files struct {
	// Root is the directory (or afs URL) to walk.
	Root string

	// Filter, if non-nil, selects files by base name.
	Filter *regexp.Regexp

	// FS is the file system service to walk. If nil, a default
	// afs service is used, which handles local paths.
	FS afs.Service

	// inputs is the sequence of remaining file URLs, or nil if this
	// Files has not started yet. Note that this distinguishes nil
	// from length 0.
	inputs []input

	src Source
	err error
}

type input struct {
	url, name string
}

// init walks f.Root and collects the files to read.
func (f *Files) init(ctx context.Context) error {
	if f.FS == nil {
		f.FS = afs.New()
	}
	f.inputs = []input{}

	var visit storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return true, nil
		}
		if f.Filter != nil && !f.Filter.MatchString(info.Name()) {
			return true, nil
		}
		u := url.Join(baseURL, path.Join(parent, info.Name()))
		f.inputs = append(f.inputs, input{u, info.Name()})
		return true, nil
	}
	if err := f.FS.Walk(ctx, f.Root, visit); err != nil {
		return &FileError{Path: f.Root, Err: err}
	}
	if len(f.inputs) == 0 {
		if f.Filter != nil {
			return &FileError{Path: f.Root, Err: fmt.Errorf("%w for filter %s", ErrNoMatchingFiles, f.Filter)}
		}
		return &FileError{Path: f.Root, Err: ErrNoMatchingFiles}
	}
	sort.Slice(f.inputs, func(i, j int) bool {
		return f.inputs[i].url < f.inputs[j].url
	})
	return nil
}

// Scan advances to the next file and reports whether one was read.
// The caller should use the Source method to get its contents. If
// Scan runs out of files, or if an I/O error occurs, it returns
// false. In this case, the caller should use the Err method to check
// for errors.
func (f *Files) Scan(ctx context.Context) bool {
	if f.err != nil {
		return false
	}
	if f.inputs == nil {
		if f.err = f.init(ctx); f.err != nil {
			return false
		}
	}
	if len(f.inputs) == 0 {
		return false
	}
	inp := f.inputs[0]
	f.inputs = f.inputs[1:]

	data, err := f.FS.DownloadWithURL(ctx, inp.url)
	p := displayPath(inp.url)
	if err != nil {
		f.err = &FileError{Path: p, Err: err}
		return false
	}
	f.src = Source{Path: p, Name: inp.name, Data: data}
	return true
}

// Source returns the file read by the most recent call to Scan.
func (f *Files) Source() Source {
	return f.src
}

// Err returns the error that stopped Scan, if any. If Scan stopped
// because every file was read, Err returns nil. A walk that matches
// no files is an error wrapping ErrNoMatchingFiles.
func (f *Files) Err() error {
	return f.err
}

// displayPath returns the local path for file URLs and the URL
// itself for any other storage.
func displayPath(u string) string {
	if !strings.HasPrefix(u, "file://") {
		return u
	}
	return strings.TrimPrefix(strings.TrimPrefix(u, "file://"), "localhost")
}
