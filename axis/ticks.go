// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/vlaxis/axiserr"
	"github.com/aclements/vlaxis/chart"
	"github.com/aclements/vlaxis/temporal"
)

// Ticks is a tick placement policy. If Auto is set, the render
// surface uses its own tick locator and Positions is nil.
type Ticks struct {
	Auto      bool
	Positions []float64
}

func (t Ticks) String() string {
	if t.Auto {
		return "auto"
	}
	return vecString(t.Positions)
}

// PlanTicks computes the tick positions of ch, whose resolved scale
// is s.
//
// Explicit axis values are used verbatim, after temporal
// normalization. Otherwise a tick count asks for approximately that
// many ticks. With neither, the render surface's default locator is
// used.
func PlanTicks(ch *Channel, s Scale) (Ticks, error) {
	if ch.Type != chart.Quantitative && ch.Type != chart.Temporal {
		return Ticks{}, &axiserr.Error{Kind: axiserr.NotSupported, Channel: ch.Name, Option: "type", Value: ch.Type.String(), Msg: "ticks for this type are not implemented"}
	}

	if vals := ch.Axis.Values; vals != nil {
		pos, err := explicitTicks(ch, vals)
		if err != nil {
			return Ticks{}, axiserr.WithChannel(err, ch.Name)
		}
		return Ticks{Positions: pos}, nil
	}

	if n := ch.Axis.TickCount; n > 0 {
		lo, hi := s.Min, s.Max
		if lo > hi {
			lo, hi = hi, lo
		}
		switch {
		case ch.Type == chart.Temporal:
			return Ticks{Positions: calendarTicks(lo, hi, n)}, nil
		case s.Transform.Kind == TransformLog:
			return Ticks{Positions: logTicks(lo, hi, s.Transform.Base, n)}, nil
		}
		return Ticks{Positions: niceTicks(lo, hi, n)}, nil
	}

	return Ticks{Auto: true}, nil
}

func explicitTicks(ch *Channel, vals []interface{}) ([]float64, error) {
	if ch.Type == chart.Temporal {
		return temporal.Values(vals)
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		x, err := toFloat(v)
		if err != nil {
			return nil, axiserr.Errorf(axiserr.TypeMismatch, "quantitative tick values must be numbers").At("axis.values", v)
		}
		out[i] = x
	}
	return out, nil
}

// niceSteps are the preferred tick step mantissas. Together with
// powers of ten they give steps of 1, 2, 5, 10, 20, 50, ...
var niceSteps = [...]float64{1, 2, 5}

// maxCount bounds tick counts so they fit in an int even for
// degenerate levels.
const maxCount = 1 << 30

// niceTicks returns approximately n ticks over [lo, hi] at multiples
// of a nice step. The step is the smallest that gives at most n+1
// ticks (n bins), decreased if needed so that there are at least n
// ticks.
func niceTicks(lo, hi float64, n int) []float64 {
	if lo == hi {
		return []float64{lo}
	}
	step := func(level int) float64 {
		e := floorDiv(level, len(niceSteps))
		return niceSteps[level-e*len(niceSteps)] * math.Pow(10, float64(e))
	}
	span := func(level int) (first, last float64) {
		st := step(level)
		// Tolerate rounding in the division.
		return math.Ceil(lo/st - 1e-9), math.Floor(hi/st + 1e-9)
	}
	count := func(level int) int {
		first, last := span(level)
		if c := last - first + 1; c < maxCount {
			return int(c)
		}
		return maxCount
	}
	ticks := func(level int) []float64 {
		first, last := span(level)
		st := step(level)
		return vec.Linspace(first*st, last*st, count(level))
	}

	guess := int(math.Floor(float64(len(niceSteps)) * math.Log10((hi-lo)/float64(n))))
	o := scale.TickOptions{Max: n + 1}
	level, ok := o.FindLevel(ticker{count, ticks}, guess)
	if !ok {
		return []float64{lo, hi}
	}
	for count(level) < n && count(level-1) < maxCount {
		level--
	}
	return ticks(level)
}

// logTicks returns ticks at integer powers of base over [lo, hi],
// thinned to every k'th power so there are at most n+1 of them.
func logTicks(lo, hi, base float64, n int) []float64 {
	kmin := math.Log(logFloor(lo, base)) / math.Log(base)
	kmax := math.Log(logFloor(hi, base)) / math.Log(base)
	kmin, kmax = math.Round(kmin), math.Round(kmax)
	if math.Pow(base, kmin) < lo {
		kmin++
	}
	if kmax < kmin {
		// No power of base falls in [lo, hi].
		return niceTicks(lo, hi, n)
	}

	count := func(stride int) int {
		s := float64(stride)
		return int(math.Floor(kmax/s) - math.Ceil(kmin/s) + 1)
	}
	ticks := func(stride int) []float64 {
		s := float64(stride)
		var out []float64
		for k := math.Ceil(kmin/s) * s; k <= kmax; k += s {
			out = append(out, math.Pow(base, k))
		}
		return out
	}
	o := scale.TickOptions{Max: n + 1, MinLevel: 1, MaxLevel: int(kmax-kmin) + 1}
	stride, ok := o.FindLevel(ticker{count, ticks}, 1)
	if !ok {
		stride = o.MaxLevel
	}
	return ticks(stride)
}

// ticker adapts a pair of per-level functions to scale.Ticker.
type ticker struct {
	count func(level int) int
	ticks func(level int) []float64
}

func (t ticker) CountTicks(level int) int           { return t.count(level) }
func (t ticker) TicksAtLevel(level int) interface{} { return t.ticks(level) }

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func vecString(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
