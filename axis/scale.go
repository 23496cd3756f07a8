// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/vlaxis/axiserr"
	"github.com/aclements/vlaxis/chart"
	"github.com/aclements/vlaxis/temporal"
)

// TransformKind is a coordinate transform the render surface applies
// to an axis.
type TransformKind int

const (
	TransformLinear TransformKind = iota
	TransformLog
	TransformPow
)

func (k TransformKind) String() string {
	switch k {
	case TransformLinear:
		return "linear"
	case TransformLog:
		return "log"
	case TransformPow:
		return "pow"
	}
	return fmt.Sprintf("TransformKind(%d)", int(k))
}

// Transform is a coordinate transform and its parameter.
type Transform struct {
	Kind TransformKind

	// Base is the logarithm base of a log transform.
	Base float64

	// Exponent is the exponent of a pow transform.
	Exponent float64
}

func (t Transform) String() string {
	switch t.Kind {
	case TransformLog:
		return fmt.Sprintf("log(base %g)", t.Base)
	case TransformPow:
		return fmt.Sprintf("pow(exponent %g)", t.Exponent)
	}
	return t.Kind.String()
}

// Scale is a resolved axis scale: its bounds and transform.
type Scale struct {
	Min, Max  float64
	Transform Transform
}

// ResolveScale computes the bounds and transform of ch.
//
// Only quantitative and temporal channels have scales. An explicit
// domain always wins over the zero flag, and the zero flag only
// applies to linear scales.
func ResolveScale(ch *Channel) (Scale, error) {
	var s Scale
	var err error
	switch ch.Type {
	case chart.Quantitative:
		s, err = quantitativeScale(ch)
	case chart.Temporal:
		s, err = temporalScale(ch)
	case chart.Ordinal, chart.Nominal:
		err = axiserr.Errorf(axiserr.NotSupported, "%s axes are not implemented", ch.Type).At("type", ch.Type.String())
	default:
		err = axiserr.Errorf(axiserr.Invalid, "unknown data type").At("type", ch.Type.String())
	}
	if err != nil {
		return Scale{}, axiserr.WithChannel(err, ch.Name)
	}
	return s, nil
}

func quantitativeScale(ch *Channel) (Scale, error) {
	opts := ch.Scale
	var s Scale
	switch opts.Type {
	case chart.ScaleDefault, chart.ScaleLinear:
		s.Transform = Transform{Kind: TransformLinear}
	case chart.ScaleLog:
		s.Transform = Transform{Kind: TransformLog, Base: opts.Base}
	case chart.ScalePow, chart.ScaleSqrt:
		return s, axiserr.Errorf(axiserr.NotSupported, "power scales are not implemented").At("scale.type", opts.Type.String())
	case chart.ScaleTime, chart.ScaleUTC, chart.ScaleSequential:
		return s, axiserr.Errorf(axiserr.NotSupported, "%s scales do not apply to quantitative data", opts.Type).At("scale.type", opts.Type.String())
	default:
		return s, axiserr.Errorf(axiserr.NotSupported, "unrecognized scale type").At("scale.type", opts.Type.String())
	}

	if opts.Unaggregated {
		return s, axiserr.Errorf(axiserr.NotSupported, "unaggregated domains").At("scale.domain", "unaggregated")
	}

	if opts.Domain != nil {
		lo, err := domainEndpoint(opts.Domain[0])
		if err != nil {
			return s, err
		}
		hi, err := domainEndpoint(opts.Domain[1])
		if err != nil {
			return s, err
		}
		if s.Transform.Kind == TransformLog && (lo <= 0 || hi <= 0) {
			return s, axiserr.Errorf(axiserr.Invalid, "log domain must be positive").At("scale.domain", opts.Domain)
		}
		s.Min, s.Max = lo, hi
		return s, nil
	}

	lo, hi, err := dataBounds(ch)
	if err != nil {
		return s, err
	}

	if s.Transform.Kind == TransformLog {
		if lo <= 0 {
			return s, axiserr.Errorf(axiserr.Invalid, "log scale over non-positive data (minimum %g)", lo).At("scale.type", "log")
		}
		s.Min, s.Max = logFloor(lo, s.Transform.Base), hi
		return s, nil
	}

	if opts.IncludeZero() && !skipsZeroInclusion(ch.Mark, ch.Name) {
		if lo > 0 {
			lo = 0
		}
		if hi < 0 {
			hi = 0
		}
	}
	s.Min, s.Max = lo, hi
	return s, nil
}

func domainEndpoint(v interface{}) (float64, error) {
	x, err := toFloat(v)
	if err != nil {
		return 0, axiserr.Errorf(axiserr.TypeMismatch, "quantitative domain endpoints must be numbers").At("scale.domain", v)
	}
	return x, nil
}

// skipsZeroInclusion reports whether the default zero-inclusion rule
// is suspended for this mark and channel.
//
// Line marks never extend the x axis to zero. The declarative grammar
// documents zero-inclusion as the default for every quantitative
// linear scale, so this contradicts it. Existing charts depend on it;
// do not remove it without product confirmation.
func skipsZeroInclusion(mark chart.Mark, channel string) bool {
	return mark == chart.MarkLine && channel == "x"
}

// logFloor returns the largest integer power of base that is <= x.
func logFloor(x, base float64) float64 {
	k := math.Floor(math.Log(x) / math.Log(base))
	// Correct for rounding in the logarithm.
	for math.Pow(base, k+1) <= x {
		k++
	}
	for math.Pow(base, k) > x {
		k--
	}
	return math.Pow(base, k)
}

func temporalScale(ch *Channel) (Scale, error) {
	opts := ch.Scale
	s := Scale{Transform: Transform{Kind: TransformLinear}}
	switch opts.Type {
	case chart.ScaleDefault, chart.ScaleTime:
	default:
		return s, axiserr.Errorf(axiserr.NotSupported, "only the default time scale is implemented for temporal data").At("scale.type", opts.Type.String())
	}

	if opts.Unaggregated {
		return s, axiserr.Errorf(axiserr.NotSupported, "unaggregated domains").At("scale.domain", "unaggregated")
	}

	if opts.Domain != nil {
		lo, err := temporal.Days(opts.Domain[0])
		if err != nil {
			return s, err
		}
		hi, err := temporal.Days(opts.Domain[1])
		if err != nil {
			return s, err
		}
		s.Min, s.Max = lo, hi
		return s, nil
	}

	lo, hi, err := dataBounds(ch)
	if err != nil {
		return s, err
	}
	s.Min, s.Max = lo, hi
	return s, nil
}

// dataBounds returns the minimum and maximum finite values of ch.
func dataBounds(ch *Channel) (lo, hi float64, err error) {
	xs := ch.finite()
	if len(xs) == 0 {
		return 0, 0, axiserr.Errorf(axiserr.ResolutionFailure, "no finite %s values to bound the axis", ch.Type)
	}
	lo, hi = stats.Bounds(xs)
	return lo, hi, nil
}
