// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datasource

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aclements/go-gg/table"
)

var benchConfigRe = regexp.MustCompile(`^(\p{Ll}[^\p{Lu}\s\x85\xa0\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}]*):(?:[ \t]+(.*))?$`)

// LoadBench reads Go benchmark results [1] as chart data. Each
// benchmark result line is one row with columns:
//
//   - "name": the benchmark name, without the "Benchmark" prefix and
//     trailing GOMAXPROCS
//   - "iterations"
//   - one column per configuration key, from configuration lines,
//     name/key:value components or the -N GOMAXPROCS suffix
//   - one column per result unit, such as "ns/op"
//
// Configuration values are typed like any other text column.
//
// [1] https://github.com/golang/proposal/blob/master/design/14313-benchmark-format.md
func LoadBench(r io.Reader) (*table.Table, error) {
	var recs []map[string]interface{}
	config := map[string]string{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if m := benchConfigRe.FindStringSubmatch(line); m != nil {
			config[m[1]] = m[2]
			continue
		}
		if rec := benchRecord(line, config); rec != nil {
			recs = append(recs, rec)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return FromRecords(recs), nil
}

// benchRecord parses one benchmark line, or returns nil if line is not
// a benchmark result.
func benchRecord(line string, config map[string]string) map[string]interface{} {
	f := strings.Fields(line)
	if len(f) < 4 || !strings.HasPrefix(f[0], "Benchmark") {
		return nil
	}
	if f[0] != "Benchmark" {
		next, _ := utf8.DecodeRuneInString(f[0][len("Benchmark"):])
		if !unicode.IsUpper(next) {
			return nil
		}
	}
	iters, err := strconv.Atoi(f[1])
	if err != nil || iters <= 0 {
		return nil
	}

	rec := map[string]interface{}{"iterations": iters}
	for k, v := range config {
		rec[k] = v
	}

	name := strings.TrimPrefix(f[0], "Benchmark")
	procs := "1"
	if parts := strings.Split(name, "/"); len(parts) > 1 {
		name = parts[0]
		for _, part := range parts[1:] {
			if k, v, ok := strings.Cut(part, ":"); ok {
				rec[k] = v
			}
		}
	} else if i := strings.LastIndex(name, "-"); i >= 0 {
		if _, err := strconv.Atoi(name[i+1:]); err == nil {
			name, procs = name[:i], name[i+1:]
		}
	}
	rec["name"] = name
	if _, ok := rec["gomaxprocs"]; !ok {
		rec["gomaxprocs"] = procs
	}

	for i := 2; i+2 <= len(f); i += 2 {
		val, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			continue
		}
		rec[f[i+1]] = val
	}
	return rec
}
