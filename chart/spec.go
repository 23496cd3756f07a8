// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart reads declarative chart specifications.
//
// A Spec is the chart exactly as written: a mark, inline or external
// data, and one Encoding per channel. Compile validates a Spec once
// and produces a Chart whose Bindings have typed, defaulted options.
// Nothing downstream of Compile looks at a Spec again.
package chart

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Spec is a declarative chart specification as decoded.
type Spec struct {
	Mark     MarkSpec             `yaml:"mark"`
	Data     *Data                `yaml:"data,omitempty"`
	Encoding map[string]*Encoding `yaml:"encoding"`
}

// MarkSpec is a mark given either as a bare string ("line") or as an
// object with a type key ({type: line}).
type MarkSpec struct {
	Type string `yaml:"type"`
}

func (m *MarkSpec) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		return n.Decode(&m.Type)
	}
	type plain MarkSpec
	return n.Decode((*plain)(m))
}

// Data is the data a chart draws from. At most one of Values and URL
// should be set.
type Data struct {
	// Values are inline records, one map per row.
	Values []map[string]interface{} `yaml:"values,omitempty"`

	// URL is a local path to a CSV, JSON or XLSX file.
	URL string `yaml:"url,omitempty"`
}

// Encoding is the binding of one channel.
type Encoding struct {
	Field     string      `yaml:"field,omitempty"`
	Value     interface{} `yaml:"value,omitempty"`
	Aggregate string      `yaml:"aggregate,omitempty"`
	TimeUnit  string      `yaml:"timeUnit,omitempty"`
	Type      string      `yaml:"type,omitempty"`

	// Shorthand is a compact form of field, type, aggregate and
	// time unit, such as "price:Q", "month(date):T" or "count()".
	Shorthand string `yaml:"shorthand,omitempty"`

	Scale *Scale `yaml:"scale,omitempty"`
	Axis  *Axis  `yaml:"axis,omitempty"`
}

// Scale holds the scale options of an encoding.
type Scale struct {
	// Domain is either a two-element list [min, max] or the
	// string "unaggregated".
	Domain   interface{} `yaml:"domain,omitempty"`
	Zero     *bool       `yaml:"zero,omitempty"`
	Type     string      `yaml:"type,omitempty"`
	Base     *float64    `yaml:"base,omitempty"`
	Exponent *float64    `yaml:"exponent,omitempty"`
}

// Axis holds the axis options of an encoding.
type Axis struct {
	Values    []interface{} `yaml:"values,omitempty"`
	TickCount *int          `yaml:"tickCount,omitempty"`
	Format    *string       `yaml:"format,omitempty"`
	Labels    *bool         `yaml:"labels,omitempty"`
}

// Decode reads a chart specification in YAML or JSON from r.
//
// JSON is read as YAML flow style, so numbers decode the same way in
// both. The one JSON escape YAML lacks, "\/", is rewritten first.
func Decode(r io.Reader) (*Spec, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading chart: %w", err)
	}
	if t := bytes.TrimLeft(src, " \t\r\n"); len(t) > 0 && t[0] == '{' {
		src = unescapeSlashes(src)
	}
	var s Spec
	if err := yaml.NewDecoder(bytes.NewReader(src)).Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding chart: %w", err)
	}
	return &s, nil
}

// unescapeSlashes replaces each JSON "\/" escape in src with "/".
// Other escapes are copied unchanged.
func unescapeSlashes(src []byte) []byte {
	if !bytes.Contains(src, []byte(`\/`)) {
		return src
	}
	out := make([]byte, 0, len(src))
	for i := 0; i < len(src); i++ {
		if src[i] == '\\' && i+1 < len(src) {
			if src[i+1] == '/' {
				out = append(out, '/')
			} else {
				out = append(out, src[i], src[i+1])
			}
			i++
			continue
		}
		out = append(out, src[i])
	}
	return out
}
