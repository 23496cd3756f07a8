// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"context"
	"log/slog"

	"github.com/aclements/vlaxis/axiserr"
	"github.com/aclements/vlaxis/chart"
)

// Config is the renderer-agnostic configuration of one axis.
type Config struct {
	Channel string
	Type    chart.DataType

	// Min and Max are the axis bounds, in timeline days for
	// temporal axes.
	Min, Max  float64
	Transform Transform

	Ticks  Ticks
	Labels Labels

	LabelsVisible bool

	// Data is the numeric data bound to the axis: plain numbers, or
	// timeline days for temporal axes. A literal binding has one
	// element.
	Data   []float64
	Scalar bool
}

// Axes is the configuration of both axes of a chart.
type Axes struct {
	X, Y *Config
}

// Assemble resolves the x and y axes of c against src.
//
// Either both axes are returned or neither: the first failure of
// either axis aborts assembly.
func Assemble(c *chart.Chart, src DataSource) (*Axes, error) {
	var axes Axes
	for _, name := range []string{"x", "y"} {
		b := c.Bindings[name]
		if b == nil {
			return nil, &axiserr.Error{Kind: axiserr.ResolutionFailure, Channel: name, Msg: "chart has no binding for this axis"}
		}
		cfg, err := assembleAxis(b, src)
		if err != nil {
			return nil, err
		}
		if name == "x" {
			axes.X = cfg
		} else {
			axes.Y = cfg
		}
	}
	return &axes, nil
}

// AssembleSpec compiles s and resolves its axes against src.
func AssembleSpec(s *chart.Spec, src DataSource) (*Axes, error) {
	c, err := chart.Compile(s)
	if err != nil {
		return nil, err
	}
	return Assemble(c, src)
}

func assembleAxis(b *chart.Binding, src DataSource) (*Config, error) {
	d, err := ResolveData(b, src)
	if err != nil {
		return nil, err
	}
	ch, err := NewChannel(b, d)
	if err != nil {
		return nil, err
	}
	s, err := ResolveScale(ch)
	if err != nil {
		return nil, err
	}
	ticks, err := PlanTicks(ch, s)
	if err != nil {
		return nil, err
	}
	labels, err := ResolveFormatter(ch, s)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Channel:       ch.Name,
		Type:          ch.Type,
		Min:           s.Min,
		Max:           s.Max,
		Transform:     s.Transform,
		Ticks:         ticks,
		Labels:        labels,
		LabelsVisible: ch.Axis.LabelsVisible,
		Data:          ch.Data,
		Scalar:        ch.Scalar,
	}
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("resolved axis",
			slog.String("channel", cfg.Channel),
			slog.String("type", cfg.Type.String()),
			slog.Float64("min", cfg.Min),
			slog.Float64("max", cfg.Max),
			slog.String("transform", cfg.Transform.String()),
			slog.String("ticks", cfg.Ticks.String()))
	}
	return cfg, nil
}
