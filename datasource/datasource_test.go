// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datasource

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aclements/vlaxis/axiserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestTypeColumn(t *testing.T) {
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	for _, test := range []struct {
		raw  []string
		want interface{}
	}{
		{[]string{"1", "2", " 3"}, []int{1, 2, 3}},
		{[]string{"1", "2.5"}, []float64{1, 2.5}},
		{[]string{"1e3", "-4"}, []float64{1000, -4}},
		{[]string{"2015-01-01", "2015-02-01"}, []time.Time{day("2015-01-01"), day("2015-02-01")}},
		{[]string{"a", "1"}, []string{"a", "1"}},
		{[]string{"2015-01-01", ""}, []string{"2015-01-01", ""}},
		{[]string{"", ""}, []string{"", ""}},
	} {
		assert.Equal(t, test.want, TypeColumn(test.raw, nil), "TypeColumn(%q)", test.raw)
	}

	// Missing numbers become NaN.
	col, ok := TypeColumn([]string{"1", "", "3"}, nil).([]float64)
	require.True(t, ok)
	assert.Equal(t, 1.0, col[0])
	assert.True(t, math.IsNaN(col[1]))
	assert.Equal(t, 3.0, col[2])
}

func TestFromRecords(t *testing.T) {
	tab := FromRecords([]map[string]interface{}{
		{"a": 1, "b": "2015-03-07", "c": "x", "d": true, "e": 1},
		{"a": 2.5, "b": "2015-03-08", "c": "y", "d": false, "e": "one"},
		{"b": "2015-03-09", "c": "z", "d": true},
	})
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, tab.Columns())

	a := tab.Column("a").([]float64)
	assert.Equal(t, []float64{1, 2.5}, a[:2])
	assert.True(t, math.IsNaN(a[2]))

	assert.IsType(t, []time.Time{}, tab.Column("b"))
	assert.Equal(t, []string{"x", "y", "z"}, tab.Column("c"))
	assert.Equal(t, []bool{true, false, true}, tab.Column("d"))
	assert.Equal(t, []interface{}{1, "one", nil}, tab.Column("e"))
	assert.Nil(t, tab.Column("missing"))
}

func TestLoadCSV(t *testing.T) {
	tab, err := LoadCSV(strings.NewReader(`a,c,date,label
1,7,2015-01-01,p
2,5,2015-01-02,q
3,-3.5,2015-01-03,r
`))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, tab.Column("a"))
	assert.Equal(t, []float64{7, 5, -3.5}, tab.Column("c"))
	assert.IsType(t, []time.Time{}, tab.Column("date"))
	assert.Equal(t, []string{"p", "q", "r"}, tab.Column("label"))
}

func TestLoadCSVErrors(t *testing.T) {
	for _, test := range []struct {
		src string
		msg string
	}{
		{"", "missing header row"},
		{"a,a\n1,2\n", `duplicate column "a"`},
		{"a,\n1,2\n", "column 2 has no name"},
	} {
		_, err := LoadCSV(strings.NewReader(test.src))
		if assert.Error(t, err, "%q", test.src) {
			assert.Contains(t, err.Error(), test.msg)
		}
	}
}

func TestLoadJSON(t *testing.T) {
	tab, err := LoadJSON(strings.NewReader(`[
  {"date": "2021-01-05T10:00:00Z", "price": 10},
  {"date": "2021-01-06T10:00:00Z", "price": 12.5}
]`))
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 12.5}, tab.Column("price"))
	dates := tab.Column("date").([]time.Time)
	assert.Equal(t, 6, dates[1].Day())

	_, err = LoadJSON(strings.NewReader(`{"not": "an array"}`))
	assert.Error(t, err)
}

func writeXLSX(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "A1", "n")
	f.SetCellValue(sheet, "B1", "v")
	f.SetCellValue(sheet, "C1", "name")
	f.SetCellValue(sheet, "A2", 1)
	f.SetCellValue(sheet, "B2", 11.5)
	f.SetCellValue(sheet, "C2", "first")
	f.SetCellValue(sheet, "A3", 2)
	f.SetCellValue(sheet, "B3", 100)
	f.SetCellValue(sheet, "C3", "second")
	require.NoError(t, f.SaveAs(path))
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")
	writeXLSX(t, path)

	tab, err := LoadXLSX(path, "")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, tab.Column("n"))
	assert.Equal(t, []float64{11.5, 100}, tab.Column("v"))
	assert.Equal(t, []string{"first", "second"}, tab.Column("name"))

	_, err = LoadXLSX(path, "NoSuchSheet")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("x,y\n1,2\n3,4\n"), 0o666))
	tab, err := Load(csvPath)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, tab.Column("x"))

	jsonPath := filepath.Join(dir, "data.JSON")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"x": 1}, {"x": 2}]`), 0o666))
	tab, err = Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, tab.Column("x"))

	xlsxPath := filepath.Join(dir, "data.xlsx")
	writeXLSX(t, xlsxPath)
	tab, err = Load(xlsxPath)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, tab.Column("n"))

	_, err = Load(filepath.Join(dir, "data.tsv"))
	assert.True(t, errors.Is(err, axiserr.NotSupported), "got %v", err)

	_, err = Load(filepath.Join(dir, "missing.csv"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestLoadBench(t *testing.T) {
	tab, err := LoadBench(strings.NewReader(`
goos: linux
commit: abc123
BenchmarkEncode-8	1000	1500 ns/op	64 B/op
BenchmarkDecode-8	2000	700 ns/op
Benchmarkx	1	2 ns/op
BenchmarkSort/size:10	500	250 ns/op
PASS
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Encode", "Decode", "Sort"}, tab.Column("name"))
	assert.Equal(t, []float64{1000, 2000, 500}, tab.Column("iterations"))
	assert.Equal(t, []float64{1500, 700, 250}, tab.Column("ns/op"))
	assert.Equal(t, []string{"linux", "linux", "linux"}, tab.Column("goos"))
	assert.Equal(t, []int{8, 8, 1}, tab.Column("gomaxprocs"))

	bop := tab.Column("B/op").([]float64)
	assert.Equal(t, 64.0, bop[0])
	assert.True(t, math.IsNaN(bop[1]))

	// Benchmarks without a size have a missing, NaN, size.
	size := tab.Column("size").([]float64)
	assert.True(t, math.IsNaN(size[0]))
	assert.Equal(t, 10.0, size[2])
}
