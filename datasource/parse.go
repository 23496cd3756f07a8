// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package datasource loads chart data into go-gg tables.
//
// Every loader produces a *table.Table whose columns are typed slices
// ([]int, []float64, []time.Time, []bool or []string), so the result
// can be passed directly to axis.Assemble as its DataSource.
package datasource

import (
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/vlaxis/temporal"
)

// ValueParser is a function that parses a string cell into a
// structured value or returns an error if the string cannot be parsed.
type ValueParser func(string) (interface{}, error)

// DefaultValueParsers is the default sequence of value parsers used to
// type text columns.
var DefaultValueParsers = []ValueParser{
	func(s string) (interface{}, error) { return strconv.Atoi(strings.TrimSpace(s)) },
	func(s string) (interface{}, error) {
		s = strings.TrimSpace(s)
		if s == "" {
			// Missing numbers are NaN so scales skip them.
			return math.NaN(), nil
		}
		return strconv.ParseFloat(s, 64)
	},
	func(s string) (interface{}, error) { return temporal.ParseISO(s) },
}

// TypeColumn converts raw text cells into a typed column using
// best-effort pattern-based parsing.
//
// If every cell can be parsed by one of the valueParsers, the column
// holds the results of the earliest such parser. Otherwise the column
// is the raw []string. A column of only empty cells is a []string.
//
// If valueParsers is nil, it uses DefaultValueParsers.
func TypeColumn(raw []string, valueParsers []ValueParser) interface{} {
	if valueParsers == nil {
		valueParsers = DefaultValueParsers
	}
	if allEmpty(raw) {
		return raw
	}

tryParsers:
	for _, vp := range valueParsers {
		var col reflect.Value
		for i, s := range raw {
			res, err := vp(s)
			if err != nil {
				// Parse error. Fail this parser.
				continue tryParsers
			}
			if i == 0 {
				col = reflect.MakeSlice(reflect.SliceOf(reflect.TypeOf(res)), len(raw), len(raw))
			}
			rv := reflect.ValueOf(res)
			if rv.Type() != col.Type().Elem() {
				continue tryParsers
			}
			col.Index(i).Set(rv)
		}
		// This ValueParser converted all of the values.
		return col.Interface()
	}
	// All of the value parsers failed. Fall back to strings.
	return raw
}

func allEmpty(raw []string) bool {
	for _, s := range raw {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}

// FromColumns builds a table from text columns in the given order,
// typing each with TypeColumn.
func FromColumns(names []string, cols [][]string) *table.Table {
	tab := table.NewBuilder(nil)
	for i, name := range names {
		tab.Add(name, TypeColumn(cols[i], nil))
	}
	return tab.Done()
}

// FromRecords builds a table from inline records, such as the values
// of a chart's data block.
//
// Columns are the union of record keys, in sorted order. Numeric
// columns become []float64 with NaN for missing cells. String columns
// are typed with TypeColumn. Boolean columns become []bool. Any other
// column, including one that mixes kinds, is a []interface{} with nil
// for missing cells.
func FromRecords(recs []map[string]interface{}) *table.Table {
	keys := map[string]bool{}
	for _, rec := range recs {
		for k := range rec {
			keys[k] = true
		}
	}
	names := make([]string, 0, len(keys))
	for k := range keys {
		names = append(names, k)
	}
	sort.Strings(names)

	tab := table.NewBuilder(nil)
	for _, name := range names {
		vals := make([]interface{}, len(recs))
		for i, rec := range recs {
			vals[i] = rec[name]
		}
		tab.Add(name, recordColumn(vals))
	}
	return tab.Done()
}

func recordColumn(vals []interface{}) interface{} {
	kind := reflect.Invalid
	for _, v := range vals {
		if v == nil {
			continue
		}
		k := cellKind(v)
		if kind != reflect.Invalid && k != kind {
			return vals
		}
		kind = k
	}

	switch kind {
	case reflect.Float64:
		out := make([]float64, len(vals))
		for i, v := range vals {
			if v == nil {
				out[i] = math.NaN()
			} else {
				out[i] = reflect.ValueOf(v).Convert(reflect.TypeOf(float64(0))).Float()
			}
		}
		return out
	case reflect.String:
		raw := make([]string, len(vals))
		for i, v := range vals {
			if v != nil {
				raw[i] = v.(string)
			}
		}
		return TypeColumn(raw, nil)
	case reflect.Bool:
		out := make([]bool, len(vals))
		for i, v := range vals {
			if v == nil {
				return vals
			}
			out[i] = v.(bool)
		}
		return out
	}
	return vals
}

// cellKind classifies a decoded cell. All numbers are Float64.
func cellKind(v interface{}) reflect.Kind {
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return reflect.Float64
	case reflect.String:
		if _, ok := v.(string); ok {
			return reflect.String
		}
	case reflect.Bool:
		if _, ok := v.(bool); ok {
			return reflect.Bool
		}
	}
	return reflect.Interface
}
