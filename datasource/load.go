// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datasource

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/vlaxis/axiserr"
	"github.com/xuri/excelize/v2"
)

// Load reads the data file at path, choosing the format by its
// extension: .csv, .json, .xlsx or .bench (Go benchmark results).
// Other extensions fail with axiserr.NotSupported.
func Load(path string) (*table.Table, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xlsx":
		return LoadXLSX(path, "")
	case ".csv", ".json", ".bench":
	default:
		return nil, axiserr.Errorf(axiserr.NotSupported, "data files must be .csv, .json, .xlsx or .bench").At("data.url", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var tab *table.Table
	switch ext {
	case ".csv":
		tab, err = LoadCSV(f)
	case ".json":
		tab, err = LoadJSON(f)
	case ".bench":
		tab, err = LoadBench(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tab, nil
}

// LoadCSV reads comma-separated values with a header row.
func LoadCSV(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return fromRows(rows)
}

// LoadJSON reads a JSON array of records.
func LoadJSON(r io.Reader) (*table.Table, error) {
	var recs []map[string]interface{}
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, err
	}
	return FromRecords(recs), nil
}

// LoadXLSX reads a worksheet of an Excel workbook. The first row is
// the header. If sheet is "", the first sheet is read.
func LoadXLSX(path, sheet string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: workbook has no sheets", path)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tab, err := fromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: sheet %s: %w", path, sheet, err)
	}
	return tab, nil
}

// fromRows builds a table from a header row followed by data rows.
// Short rows are padded with empty cells.
func fromRows(rows [][]string) (*table.Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	header := rows[0]
	seen := map[string]bool{}
	for i, name := range header {
		if name == "" {
			return nil, fmt.Errorf("column %d has no name", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = true
	}

	cols := make([][]string, len(header))
	for i := range cols {
		cols[i] = make([]string, len(rows)-1)
	}
	for r, row := range rows[1:] {
		if len(row) > len(header) {
			return nil, fmt.Errorf("row %d has %d cells but there are %d columns", r+2, len(row), len(header))
		}
		for c, cell := range row {
			cols[c][r] = cell
		}
	}
	return FromColumns(header, cols), nil
}
