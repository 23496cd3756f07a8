// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"time"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/vlaxis/temporal"
)

type calUnit int

const (
	calSecond calUnit = iota
	calMinute
	calHour
	calDay
	calMonth
	calYear
)

// calInterval is a calendar tick spacing of n units.
type calInterval struct {
	unit calUnit
	n    int
	days float64 // approximate length
}

// calIntervals are the calendar tick spacings in increasing order.
// Each index is a tick level.
var calIntervals = func() []calInterval {
	var out []calInterval
	add := func(unit calUnit, unitDays float64, ns ...int) {
		for _, n := range ns {
			out = append(out, calInterval{unit, n, unitDays * float64(n)})
		}
	}
	const sec = 1.0 / (24 * 60 * 60)
	add(calSecond, sec, 1, 5, 10, 15, 30)
	add(calMinute, 60*sec, 1, 5, 10, 15, 30)
	add(calHour, 1.0/24, 1, 2, 3, 4, 6, 12)
	add(calDay, 1, 1, 2, 3, 7, 14)
	add(calMonth, 365.25/12, 1, 2, 3, 4, 6)
	add(calYear, 365.25, 1, 2, 5, 10, 20, 50, 100, 200, 500, 1000)
	return out
}()

// calendarTicks returns approximately n ticks over the timeline
// interval [lo, hi], aligned to calendar boundaries: whole minutes,
// hours, days, month starts or year starts, depending on the span.
func calendarTicks(lo, hi float64, n int) []float64 {
	if lo == hi {
		return []float64{lo}
	}
	count := func(level int) int {
		return int((hi-lo)/calIntervals[level].days) + 1
	}
	ticks := func(level int) []float64 {
		return calIntervals[level].ticks(lo, hi)
	}

	// Guess the level whose spacing is closest to span/n.
	guess, want := 0, (hi-lo)/float64(n)
	for guess < len(calIntervals)-1 && calIntervals[guess].days < want {
		guess++
	}
	o := scale.TickOptions{Max: n + 1, MinLevel: 0, MaxLevel: len(calIntervals) - 1}
	level, ok := o.FindLevel(ticker{count, ticks}, guess)
	if !ok {
		level = o.MaxLevel
	}
	for level > 0 && len(ticks(level)) < n {
		level--
	}
	return ticks(level)
}

// ticks returns the timeline positions of every boundary of iv in
// [lo, hi].
func (iv calInterval) ticks(lo, hi float64) []float64 {
	t0 := temporal.Time(lo)
	y, mo, d := t0.Date()
	h, mi, s := t0.Clock()

	var t time.Time
	switch iv.unit {
	case calSecond:
		t = time.Date(y, mo, d, h, mi, s-s%iv.n, 0, time.UTC)
	case calMinute:
		t = time.Date(y, mo, d, h, mi-mi%iv.n, 0, 0, time.UTC)
	case calHour:
		t = time.Date(y, mo, d, h-h%iv.n, 0, 0, 0, time.UTC)
	case calDay:
		t = time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
	case calMonth:
		t = time.Date(y, mo-time.Month((int(mo)-1)%iv.n), 1, 0, 0, 0, 0, time.UTC)
	case calYear:
		t = time.Date(y-y%iv.n, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	var out []float64
	for {
		x := temporal.FromTime(t)
		if x > hi {
			break
		}
		if x >= lo {
			out = append(out, x)
		}
		t = iv.next(t)
	}
	return out
}

func (iv calInterval) next(t time.Time) time.Time {
	switch iv.unit {
	case calSecond:
		return t.Add(time.Duration(iv.n) * time.Second)
	case calMinute:
		return t.Add(time.Duration(iv.n) * time.Minute)
	case calHour:
		return t.Add(time.Duration(iv.n) * time.Hour)
	case calDay:
		return t.AddDate(0, 0, iv.n)
	case calMonth:
		return t.AddDate(0, iv.n, 0)
	}
	return t.AddDate(iv.n, 0, 0)
}
