// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"
	"strings"

	"github.com/aclements/vlaxis/axiserr"
	"github.com/aclements/vlaxis/chart"
	"github.com/aclements/vlaxis/temporal"
	"github.com/lestrrat-go/strftime"
)

// temporalXRotation is the label rotation, in degrees, of temporal x
// axes. Date labels are long enough to collide when horizontal.
const temporalXRotation = 30

// Labels describes how an axis renders its tick labels.
type Labels struct {
	// Format renders a tick position as a label.
	Format func(float64) string

	// Default is set if Format is the render surface's default
	// numeric formatting rather than one derived from the chart.
	Default bool

	// Rotation is the label rotation in degrees. Align is the
	// horizontal anchor of rotated labels ("right"), or "".
	Rotation float64
	Align    string
}

// defaultNumberFormat is the default label of a numeric tick.
func defaultNumberFormat(x float64) string {
	return fmt.Sprintf("%.6g", x)
}

// labelFunc renders a tick position, or reports why it cannot.
type labelFunc func(float64) (string, error)

// orDefault returns a label function that uses the default numeric
// label for positions f cannot render.
func (f labelFunc) orDefault() func(float64) string {
	return func(x float64) string {
		s, err := f(x)
		if err != nil {
			return defaultNumberFormat(x)
		}
		return s
	}
}

// ResolveFormatter builds the tick label formatter of ch, whose
// resolved scale is s.
//
// The formatter is tried on a representative value before it is
// returned, so a format that cannot render fails here with
// InvalidFormatString rather than at draw time. Positions the
// returned formatter cannot render later get the default numeric
// label.
func ResolveFormatter(ch *Channel, s Scale) (Labels, error) {
	var l Labels
	var f labelFunc
	var err error
	switch ch.Type {
	case chart.Temporal:
		l, f, err = temporalLabels(ch.Axis.Format)
		if ch.Name == "x" {
			l.Rotation, l.Align = temporalXRotation, "right"
		}
	case chart.Quantitative:
		if ch.Axis.Format == "" {
			return Labels{Format: defaultNumberFormat, Default: true}, nil
		}
		l, f, err = numberLabels(ch.Axis.Format)
	default:
		err = axiserr.Errorf(axiserr.NotSupported, "%s label formatting is not implemented", ch.Type).At("type", ch.Type.String())
	}
	if err == nil {
		err = checkLabels(f, representative(s), ch.Axis.Format)
	}
	if err != nil {
		return Labels{}, axiserr.WithChannel(err, ch.Name)
	}
	return l, nil
}

func representative(s Scale) float64 {
	switch {
	case !math.IsNaN(s.Max) && !math.IsInf(s.Max, 0):
		return s.Max
	case !math.IsNaN(s.Min) && !math.IsInf(s.Min, 0):
		return s.Min
	}
	return 1
}

// checkLabels formats x with f.
func checkLabels(f labelFunc, x float64, format string) error {
	if _, err := f(x); err != nil {
		return axiserr.Errorf(axiserr.InvalidFormatString, "%v", err).At("axis.format", format)
	}
	return nil
}

// strftimeVerbs are the date directives the label renderer supports.
const strftimeVerbs = "AaBbCcDdeFHIjklMmnpRrSTtUuVvWwXxYyZz%"

func temporalLabels(format string) (Labels, labelFunc, error) {
	if format == "" {
		format = chart.DefaultTemporalFormat
	}
	if err := checkStrftime(format); err != nil {
		return Labels{}, nil, err
	}
	sf, err := strftime.New(format)
	if err != nil {
		return Labels{}, nil, axiserr.Errorf(axiserr.InvalidFormatString, "%v", err).At("axis.format", format)
	}
	f := func(x float64) (string, error) {
		if math.IsNaN(x) || math.IsInf(x, 0) || math.Abs(x) > maxTimelineDays {
			return "", fmt.Errorf("%g is not a representable date", x)
		}
		return sf.FormatString(temporal.Time(x)), nil
	}
	return Labels{Format: labelFunc(f).orDefault()}, f, nil
}

// maxTimelineDays bounds timeline positions that fit in a time.Time
// by way of Unix seconds.
const maxTimelineDays = math.MaxInt64 / (24 * 60 * 60) / 2

// checkStrftime reports the first directive in format that is not a
// supported strftime directive.
func checkStrftime(format string) error {
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		if i+1 == len(format) {
			return axiserr.Errorf(axiserr.InvalidFormatString, "format ends in a bare %%").At("axis.format", format)
		}
		i++
		if !strings.ContainsRune(strftimeVerbs, rune(format[i])) {
			return axiserr.Errorf(axiserr.InvalidFormatString,
				"unsupported date directive %%%c; use strftime-style directives such as %%Y %%m %%d %%H %%M %%S",
				format[i]).At("axis.format", format)
		}
	}
	return nil
}
