// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ggrender draws resolved charts with go-gg.
//
// go-gg has no power scales, its log scales take an integer base, and
// it does not rotate tick labels. Charts that need the first two are
// rejected. Rotated labels are drawn horizontally.
package ggrender

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/vlaxis/axis"
	"github.com/aclements/vlaxis/axiserr"
	"github.com/aclements/vlaxis/chart"
)

// Apply binds the x and y scales of p to axes. Like gg.Plot.SetScale,
// it must be called before any layer is added to p.
func Apply(p *gg.Plot, axes *axis.Axes) error {
	for _, cfg := range []*axis.Config{axes.X, axes.Y} {
		s, err := Scaler(cfg)
		if err != nil {
			return err
		}
		p.SetScale(cfg.Channel, s)
	}
	return nil
}

// Scaler returns a go-gg scaler with cfg's bounds, ticks and labels.
func Scaler(cfg *axis.Config) (gg.ContinuousScaler, error) {
	var s gg.ContinuousScaler
	switch t := cfg.Transform; t.Kind {
	case axis.TransformLinear:
		s = gg.NewLinearScaler()
	case axis.TransformLog:
		if t.Base < 2 || t.Base != math.Trunc(t.Base) {
			return nil, &axiserr.Error{Kind: axiserr.NotSupported, Channel: cfg.Channel, Option: "scale.base", Value: t.Base, Msg: "go-gg log scales need an integer base of at least 2"}
		}
		s = gg.NewLogScaler(int(t.Base))
	default:
		return nil, &axiserr.Error{Kind: axiserr.NotSupported, Channel: cfg.Channel, Option: "scale.type", Value: t.Kind.String(), Msg: "go-gg draws only linear and log scales"}
	}
	s.SetMin(cfg.Min)
	s.SetMax(cfg.Max)

	// Default labels are left to go-gg, which formats the same way.
	format := cfg.Labels.Format
	switch {
	case !cfg.LabelsVisible:
		format = func(float64) string { return "" }
		s.SetFormatter(format)
	case format == nil:
		format = func(x float64) string { return fmt.Sprintf("%.6g", x) }
	case !cfg.Labels.Default:
		s.SetFormatter(format)
	}

	if !cfg.Ticks.Auto {
		lo, hi := cfg.Min, cfg.Max
		if lo > hi {
			lo, hi = hi, lo
		}
		// go-gg draws every tick it is given, so drop ticks
		// that are off the axis.
		var major []float64
		for _, x := range cfg.Ticks.Positions {
			if x >= lo && x <= hi {
				major = append(major, x)
			}
		}
		s = &fixedTicks{s, major, format}
	}
	return s, nil
}

// fixedTicks is a scaler with predetermined major ticks.
type fixedTicks struct {
	gg.ContinuousScaler
	major  []float64
	format func(float64) string
}

func (s *fixedTicks) Ticks(max int, pred func(major, minor table.Slice, labels []string) bool) (major, minor table.Slice, labels []string) {
	labels = make([]string, len(s.major))
	for i, x := range s.major {
		labels[i] = s.format(x)
	}
	return s.major, nil, labels
}

func (s *fixedTicks) CloneScaler() gg.Scaler {
	return &fixedTicks{s.ContinuousScaler.CloneScaler().(gg.ContinuousScaler), s.major, s.format}
}

// NewPlot returns a plot of the data in axes drawn with c's mark.
//
// Point-like marks are drawn as points and line marks as lines. Other
// marks fail with axiserr.NotSupported.
func NewPlot(c *chart.Chart, axes *axis.Axes) (*gg.Plot, error) {
	xs, ys, err := pairs(axes.X, axes.Y)
	if err != nil {
		return nil, err
	}
	xname, yname := columnName(c, "x"), columnName(c, "y")
	if xname == yname {
		yname += " (y)"
	}
	tab := table.NewBuilder(nil).Add(xname, xs).Add(yname, ys).Done()

	var layer gg.Plotter
	switch c.Mark {
	case chart.MarkPoint, chart.MarkCircle, chart.MarkSquare, chart.MarkTick, chart.MarkText:
		layer = gg.LayerPoints{X: xname, Y: yname}
	case chart.MarkLine:
		layer = gg.LayerLines{X: xname, Y: yname}
	default:
		return nil, axiserr.Errorf(axiserr.NotSupported, "go-gg rendering of this mark is not implemented").At("mark", string(c.Mark))
	}

	p := gg.NewPlot(tab)
	if err := Apply(p, axes); err != nil {
		return nil, err
	}
	p.Add(layer, gg.AxisLabel("x", xname), gg.AxisLabel("y", yname))
	return p, nil
}

// pairs returns the x and y data as equal-length columns. A literal
// binding is repeated to match the other axis.
func pairs(x, y *axis.Config) (xs, ys []float64, err error) {
	xs, ys = x.Data, y.Data
	switch {
	case x.Scalar && !y.Scalar:
		xs = repeat(xs[0], len(ys))
	case y.Scalar && !x.Scalar:
		ys = repeat(ys[0], len(xs))
	}
	if len(xs) != len(ys) {
		return nil, nil, fmt.Errorf("x has %d values but y has %d", len(xs), len(ys))
	}
	return xs, ys, nil
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func columnName(c *chart.Chart, channel string) string {
	if b := c.Bindings[channel]; b != nil && b.Field != "" {
		return b.Field
	}
	return channel
}
