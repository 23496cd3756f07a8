// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"reflect"
	"sort"

	"github.com/aclements/vlaxis/axiserr"
)

const (
	defaultLogBase  = 10
	defaultExponent = 2
	sqrtExponent    = 0.5

	// DefaultTemporalFormat is the strftime format of temporal tick
	// labels when the axis does not give one.
	DefaultTemporalFormat = "%b %d, %Y"
)

// Chart is a validated chart specification.
type Chart struct {
	Mark     Mark
	Data     *Data
	Bindings map[string]*Binding
}

// Binding is the validated binding of one channel. Exactly one of
// HasValue and Field is set.
type Binding struct {
	Channel string
	Mark    Mark

	Field string

	// Value is a literal value binding. HasValue distinguishes a
	// literal nil or zero from no literal.
	Value    interface{}
	HasValue bool

	Type  DataType
	Scale ScaleOptions
	Axis  AxisOptions
}

// ScaleOptions are the validated scale options of a channel.
type ScaleOptions struct {
	// Domain is the explicit [min, max] domain, or nil. Its
	// endpoints are numbers for quantitative channels and any
	// date shape for temporal channels.
	Domain []interface{}

	// Unaggregated records domain: "unaggregated".
	Unaggregated bool

	// Zero is the zero-inclusion flag, or nil if unset. Unset means
	// true.
	Zero *bool

	Type ScaleType

	// Base is the log base. It defaults to 10.
	Base float64

	// Exponent is the pow exponent. It defaults to 2, and is 0.5
	// for sqrt scales.
	Exponent float64
}

// IncludeZero reports whether the zero flag asks for zero-inclusion.
func (o ScaleOptions) IncludeZero() bool {
	return o.Zero == nil || *o.Zero
}

// AxisOptions are the validated axis options of a channel.
type AxisOptions struct {
	// Values are explicit tick positions, or nil.
	Values []interface{}

	// TickCount is the approximate desired number of ticks, or 0.
	TickCount int

	// Format is the label format string, or "".
	Format string

	LabelsVisible bool
}

// Compile validates s. Every channel is checked, not only the axis
// channels, so a chart using an unsupported feature anywhere is
// rejected before any resolution work starts.
func Compile(s *Spec) (*Chart, error) {
	if len(s.Encoding) == 0 {
		return nil, axiserr.Errorf(axiserr.ResolutionFailure, "chart has no encoding")
	}
	c := &Chart{
		Mark:     Mark(s.Mark.Type),
		Data:     s.Data,
		Bindings: make(map[string]*Binding, len(s.Encoding)),
	}

	// Visit channels in a fixed order so the reported error does
	// not depend on map iteration.
	names := make([]string, 0, len(s.Encoding))
	for name := range s.Encoding {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if (name == "x2" || name == "y2") && !c.Mark.Ranged() {
			return nil, &axiserr.Error{Kind: axiserr.Invalid, Channel: name, Option: "mark", Value: string(c.Mark), Msg: "ranged channels need an area, bar, rect or rule mark"}
		}
		b, err := compileEncoding(name, c.Mark, s.Encoding[name])
		if err != nil {
			return nil, axiserr.WithChannel(err, name)
		}
		c.Bindings[name] = b
	}
	return c, nil
}

func compileEncoding(name string, mark Mark, enc *Encoding) (*Binding, error) {
	if enc == nil {
		return nil, axiserr.Errorf(axiserr.ResolutionFailure, "empty encoding")
	}
	e := *enc
	if e.Shorthand != "" {
		if err := expandShorthand(&e); err != nil {
			return nil, err
		}
	}

	b := &Binding{Channel: name, Mark: mark}

	// A literal wins over everything else. Otherwise aggregates and
	// time units are rejected before a field is even looked at.
	switch {
	case e.Value != nil:
		b.Value, b.HasValue = e.Value, true
	case e.Aggregate != "":
		return nil, axiserr.Errorf(axiserr.NotSupported, "aggregation").At("aggregate", e.Aggregate)
	case e.TimeUnit != "":
		return nil, axiserr.Errorf(axiserr.NotSupported, "relative time units").At("timeUnit", e.TimeUnit)
	case e.Field != "":
		b.Field = e.Field
	default:
		return nil, axiserr.Errorf(axiserr.ResolutionFailure, "no value, aggregate or field to resolve")
	}

	if e.Type != "" {
		t, ok := dataTypeNames[e.Type]
		if !ok {
			return nil, axiserr.Errorf(axiserr.Invalid, "unknown data type").At("type", e.Type)
		}
		b.Type = t
	}

	var err error
	if b.Scale, err = compileScale(e.Scale); err != nil {
		return nil, err
	}
	if b.Axis, err = compileAxis(e.Axis); err != nil {
		return nil, err
	}
	return b, nil
}

func compileScale(s *Scale) (ScaleOptions, error) {
	o := ScaleOptions{Base: defaultLogBase, Exponent: defaultExponent}
	if s == nil {
		return o, nil
	}
	o.Zero = s.Zero

	if s.Type != "" {
		t, ok := scaleTypeNames[s.Type]
		if !ok {
			return o, axiserr.Errorf(axiserr.NotSupported, "unrecognized scale type").At("scale.type", s.Type)
		}
		o.Type = t
	}
	if s.Base != nil {
		if b := *s.Base; b <= 0 || b == 1 || math.IsNaN(b) || math.IsInf(b, 0) {
			return o, axiserr.Errorf(axiserr.Invalid, "log base must be positive and not 1").At("scale.base", b)
		}
		o.Base = *s.Base
	}
	switch {
	case s.Exponent != nil:
		o.Exponent = *s.Exponent
	case o.Type == ScaleSqrt:
		o.Exponent = sqrtExponent
	}

	switch d := s.Domain.(type) {
	case nil:
	case string:
		if d != "unaggregated" {
			return o, axiserr.Errorf(axiserr.Invalid, `domain must be [min, max] or "unaggregated"`).At("scale.domain", d)
		}
		o.Unaggregated = true
	default:
		rv := reflect.ValueOf(d)
		if rv.Kind() != reflect.Slice || rv.Len() != 2 {
			return o, axiserr.Errorf(axiserr.Invalid, "domain must be [min, max]").At("scale.domain", d)
		}
		o.Domain = []interface{}{rv.Index(0).Interface(), rv.Index(1).Interface()}
	}
	return o, nil
}

func compileAxis(a *Axis) (AxisOptions, error) {
	o := AxisOptions{LabelsVisible: true}
	if a == nil {
		return o, nil
	}
	o.Values = a.Values
	if a.TickCount != nil {
		if *a.TickCount < 1 {
			return o, axiserr.Errorf(axiserr.Invalid, "tick count must be at least 1").At("axis.tickCount", *a.TickCount)
		}
		o.TickCount = *a.TickCount
	}
	if a.Format != nil {
		o.Format = *a.Format
	}
	if a.Labels != nil {
		o.LabelsVisible = *a.Labels
	}
	return o, nil
}
