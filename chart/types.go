// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "fmt"

// DataType is the declared measurement type of a channel.
type DataType int

const (
	// TypeUnset means the encoding did not declare a type.
	TypeUnset DataType = iota
	Quantitative
	Ordinal
	Nominal
	Temporal
)

var dataTypeNames = map[string]DataType{
	"quantitative": Quantitative,
	"ordinal":      Ordinal,
	"nominal":      Nominal,
	"temporal":     Temporal,
}

// Shorthand type codes, as in "price:Q".
var dataTypeCodes = map[string]DataType{
	"Q": Quantitative,
	"O": Ordinal,
	"N": Nominal,
	"T": Temporal,
}

func (t DataType) String() string {
	switch t {
	case TypeUnset:
		return "unset"
	case Quantitative:
		return "quantitative"
	case Ordinal:
		return "ordinal"
	case Nominal:
		return "nominal"
	case Temporal:
		return "temporal"
	}
	return fmt.Sprintf("DataType(%d)", int(t))
}

// ScaleType is the declared scale transform of a channel.
type ScaleType int

const (
	// ScaleDefault means no scale type was given. It means linear
	// for quantitative channels and time for temporal channels.
	ScaleDefault ScaleType = iota
	ScaleLinear
	ScaleLog
	ScalePow
	ScaleSqrt
	ScaleTime
	ScaleUTC
	ScaleSequential
)

var scaleTypeNames = map[string]ScaleType{
	"linear":     ScaleLinear,
	"log":        ScaleLog,
	"pow":        ScalePow,
	"sqrt":       ScaleSqrt,
	"time":       ScaleTime,
	"utc":        ScaleUTC,
	"sequential": ScaleSequential,
}

func (s ScaleType) String() string {
	if s == ScaleDefault {
		return "default"
	}
	for name, v := range scaleTypeNames {
		if v == s {
			return name
		}
	}
	return fmt.Sprintf("ScaleType(%d)", int(s))
}

// Mark is the visual primitive a chart draws.
type Mark string

const (
	MarkPoint  Mark = "point"
	MarkLine   Mark = "line"
	MarkBar    Mark = "bar"
	MarkArea   Mark = "area"
	MarkRect   Mark = "rect"
	MarkRule   Mark = "rule"
	MarkTick   Mark = "tick"
	MarkCircle Mark = "circle"
	MarkSquare Mark = "square"
	MarkText   Mark = "text"
)

// Ranged reports whether m may use the x2 and y2 channels.
func (m Mark) Ranged() bool {
	switch m {
	case MarkArea, MarkBar, MarkRect, MarkRule:
		return true
	}
	return false
}
