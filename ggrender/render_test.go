// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ggrender

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/vlaxis/axis"
	"github.com/aclements/vlaxis/axiserr"
	"github.com/aclements/vlaxis/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, src *table.Table, spec string) (*chart.Chart, *axis.Axes) {
	t.Helper()
	s, err := chart.Decode(strings.NewReader(spec))
	require.NoError(t, err)
	c, err := chart.Compile(s)
	require.NoError(t, err)
	axes, err := axis.Assemble(c, src)
	require.NoError(t, err)
	return c, axes
}

func TestScalerFixedTicks(t *testing.T) {
	cfg := &axis.Config{
		Channel:       "x",
		Min:           0,
		Max:           3,
		Ticks:         axis.Ticks{Positions: []float64{-1, 1, 1.5, 2.125, 3}},
		Labels:        axis.Labels{Format: func(x float64) string { return "<" + strings.Repeat("|", int(x)) + ">" }},
		LabelsVisible: true,
	}
	s, err := Scaler(cfg)
	require.NoError(t, err)
	major, _, labels := s.Ticks(10, nil)
	assert.Equal(t, []float64{1, 1.5, 2.125, 3}, major)
	assert.Equal(t, []string{"<|>", "<|>", "<||>", "<|||>"}, labels)

	clone := s.CloneScaler()
	require.IsType(t, &fixedTicks{}, clone)
	major, _, _ = clone.Ticks(10, nil)
	assert.Equal(t, []float64{1, 1.5, 2.125, 3}, major)

	cfg.LabelsVisible = false
	s, err = Scaler(cfg)
	require.NoError(t, err)
	_, _, labels = s.Ticks(10, nil)
	assert.Equal(t, []string{"", "", "", ""}, labels)
}

func TestScalerTransform(t *testing.T) {
	cfg := &axis.Config{Channel: "y", Min: 1, Max: 1000, Ticks: axis.Ticks{Auto: true}, LabelsVisible: true}

	cfg.Transform = axis.Transform{Kind: axis.TransformLog, Base: 10}
	_, err := Scaler(cfg)
	assert.NoError(t, err)

	cfg.Transform = axis.Transform{Kind: axis.TransformLog, Base: 2.5}
	_, err = Scaler(cfg)
	assert.True(t, errors.Is(err, axiserr.NotSupported), "got %v", err)
	assert.Contains(t, err.Error(), "y: scale.base")

	cfg.Transform = axis.Transform{Kind: axis.TransformPow, Exponent: 2}
	_, err = Scaler(cfg)
	assert.True(t, errors.Is(err, axiserr.NotSupported), "got %v", err)
	assert.Contains(t, err.Error(), "y: scale.type")
}

func TestNewPlot(t *testing.T) {
	src := table.NewBuilder(nil).
		Add("date", []string{"2021-01-05", "2021-02-01", "2021-03-01"}).
		Add("price", []float64{10, 12, 11}).
		Done()
	c, axes := resolve(t, src, `
mark: line
encoding:
  x: {field: date, type: temporal, axis: {values: ["2021-02-01"]}}
  y: {field: price, type: quantitative, axis: {format: ".1f"}}
`)
	p, err := NewPlot(c, axes)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.WriteSVG(&buf, 400, 300))
	out := buf.String()
	assert.Contains(t, out, "<svg")
	// The resolved ticks and labels replace go-gg's own.
	assert.Contains(t, out, "Feb 01, 2021")
	assert.NotContains(t, out, ">18650<")
	assert.Contains(t, out, "10.0")
}

func TestNewPlotLog(t *testing.T) {
	src := table.NewBuilder(nil).
		Add("n", []float64{1, 2, 3}).
		Add("v", []float64{11, 100, 1000}).
		Done()
	c, axes := resolve(t, src, `
mark: point
encoding:
  x: {field: n, type: quantitative}
  y: {field: v, type: quantitative, scale: {type: log}, axis: {tickCount: 4}}
`)
	p, err := NewPlot(c, axes)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, p.WriteSVG(&buf, 300, 300))
	assert.Contains(t, buf.String(), ">100<")
}

func TestNewPlotLiteral(t *testing.T) {
	src := table.NewBuilder(nil).Add("a", []float64{1, 2, 3}).Done()
	c, axes := resolve(t, src, `
mark: point
encoding:
  x: {field: a, type: quantitative}
  y: {value: 2, type: quantitative}
`)
	p, err := NewPlot(c, axes)
	require.NoError(t, err)
	var buf bytes.Buffer
	assert.NoError(t, p.WriteSVG(&buf, 200, 200))
}

func TestNewPlotMark(t *testing.T) {
	src := table.NewBuilder(nil).Add("a", []float64{1, 2, 3}).Add("c", []float64{7, 5, -3}).Done()
	c, axes := resolve(t, src, `
mark: bar
encoding:
  x: {field: a, type: quantitative}
  y: {field: c, type: quantitative}
`)
	_, err := NewPlot(c, axes)
	assert.True(t, errors.Is(err, axiserr.NotSupported), "got %v", err)
}
