// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhtab

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/dbg-codes/jmhplot/internal/numconv"
)

// A Kind is the type of a Value.
type Kind uint8

const (
	Null Kind = iota
	Number
	String
)

// A Value is a single table cell: null, a number, or a string.
//
// Values are comparable and can be used as map keys.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
}

// Num returns a numeric Value. NaN is null.
func Num(v float64) Value {
	if math.IsNaN(v) {
		return Value{}
	}
	return Value{Kind: Number, Num: v}
}

// Str returns a string Value.
func Str(s string) Value {
	return Value{Kind: String, Str: s}
}

// IsNull reports whether v is null.
func (v Value) IsNull() bool {
	return v.Kind == Null
}

// String formats v for display. Numbers use '.' as the decimal point
// and never use an exponent. Null formats as "".
func (v Value) String() string {
	switch v.Kind {
	case Number:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case String:
		return v.Str
	}
	return ""
}

// nullTokens are field values treated as missing.
var nullTokens = map[string]bool{
	"":     true,
	"NaN":  true,
	"NA":   true,
	"N/A":  true,
	"null": true,
}

// parseCell converts a raw field to a Value using the decimal
// separator sep.
func parseCell(field string, sep byte) Value {
	f := strings.TrimSpace(field)
	if nullTokens[f] {
		return Value{}
	}
	if v, ok := numconv.ParseFloat(f, sep); ok {
		return Num(v)
	}
	return Str(field)
}

// Values returns the cells of column name of t. Numeric columns
// yield Number values (NaN as null) and string columns String values
// ("" as null).
func Values(t *table.Table, name string) ([]Value, error) {
	switch col := t.Column(name).(type) {
	case nil:
		return nil, fmt.Errorf("%w %q", ErrUnknownColumn, name)
	case []float64:
		out := make([]Value, len(col))
		for i, v := range col {
			out[i] = Num(v)
		}
		return out, nil
	case []string:
		out := make([]Value, len(col))
		for i, v := range col {
			if v != "" {
				out[i] = Str(v)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("column %q has unsupported type %T", name, col)
	}
}

// Floats returns the numeric column name of t.
func Floats(t *table.Table, name string) ([]float64, error) {
	switch col := t.Column(name).(type) {
	case nil:
		return nil, fmt.Errorf("%w %q", ErrUnknownColumn, name)
	case []float64:
		return col, nil
	default:
		return nil, fmt.Errorf("column %q is not numeric", name)
	}
}
