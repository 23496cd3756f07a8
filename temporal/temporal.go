// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package temporal converts date representations to a numeric
// timeline.
//
// The timeline counts days since 1970-01-01T00:00, with sub-day
// precision in the fractional part. Values are placed on the
// timeline by their wall clock: a time in any location maps to the
// same number as the same wall-clock time without a location. No
// timezone shift is ever applied.
//
// Recognized date shapes are:
//
//   - ISO-like strings ("2015-03-07", "2015-03-07 12:32:17",
//     "2015-03-07T12:32:17Z", "2015-03", "2015", ...)
//   - time.Time values
//   - calendar-component objects, either as a DateTime or as a
//     map[string]interface{} with the same keys (year, month, date,
//     hours, minutes, seconds, milliseconds)
//
// Anything else is rejected. In particular, numbers are not dates, so
// normalizing already-normalized output fails with TypeMismatch.
package temporal

import (
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/aclements/vlaxis/axiserr"
)

const (
	nsPerDay  = float64(24 * time.Hour)
	secPerDay = 24 * 60 * 60
)

// Days returns the timeline position of a single date value.
func Days(v interface{}) (float64, error) {
	switch v := v.(type) {
	case time.Time:
		return FromTime(v), nil
	case *time.Time:
		if v == nil {
			return 0, axiserr.Errorf(axiserr.TypeMismatch, "nil *time.Time is not a date")
		}
		return FromTime(*v), nil
	case string:
		t, err := ParseISO(v)
		if err != nil {
			return 0, err
		}
		return FromTime(t), nil
	case DateTime:
		t, err := v.Time()
		if err != nil {
			return 0, err
		}
		return FromTime(t), nil
	case *DateTime:
		if v == nil {
			return 0, axiserr.Errorf(axiserr.TypeMismatch, "nil *DateTime is not a date")
		}
		return Days(*v)
	case map[string]interface{}:
		dt, err := ParseDateTime(v)
		if err != nil {
			return 0, err
		}
		return Days(dt)
	case nil:
		return 0, axiserr.Errorf(axiserr.TypeMismatch, "nil is not a date")
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return 0, &axiserr.Error{Kind: axiserr.TypeMismatch, Value: v, Msg: "a " + reflect.TypeOf(v).String() + " is not a date"}
	}
	return 0, &axiserr.Error{Kind: axiserr.UnsupportedDateRepresentation, Msg: "unrecognized date shape " + reflect.TypeOf(v).String()}
}

// Values normalizes each element of seq, which must be a slice or
// array. An empty sequence yields an empty, non-nil result.
func Values(seq interface{}) ([]float64, error) {
	switch seq := seq.(type) {
	case []time.Time:
		out := make([]float64, len(seq))
		for i, t := range seq {
			out[i] = FromTime(t)
		}
		return out, nil
	case []string:
		out := make([]float64, len(seq))
		for i, s := range seq {
			t, err := ParseISO(s)
			if err != nil {
				return nil, err
			}
			out[i] = FromTime(t)
		}
		return out, nil
	}

	rv := reflect.ValueOf(seq)
	if !IsSequence(seq) {
		return nil, &axiserr.Error{Kind: axiserr.TypeMismatch, Value: seq, Msg: "not a sequence of dates"}
	}
	out := make([]float64, rv.Len())
	for i := range out {
		d, err := Days(rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// IsSequence reports whether v is a slice or array. Strings are not
// sequences.
func IsSequence(v interface{}) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// Time returns the wall-clock instant at timeline position days, in
// UTC. It is the inverse of Days for the values Days accepts, to the
// nearest microsecond.
func Time(days float64) time.Time {
	whole := math.Floor(days)
	// Positions near the present carry about a third of a
	// microsecond of float64 error.
	us := math.Round((days - whole) * nsPerDay / 1e3)
	return time.Unix(int64(whole)*secPerDay, 0).UTC().Add(time.Duration(us) * time.Microsecond)
}

// FromTime returns the timeline position of t's wall clock.
func FromTime(t time.Time) float64 {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	wall := time.Date(y, mo, d, h, mi, s, t.Nanosecond(), time.UTC)
	sec := wall.Unix()
	days := math.Floor(float64(sec) / secPerDay)
	rem := sec - int64(days)*secPerDay
	return days + (float64(rem)*1e9+float64(wall.Nanosecond()))/nsPerDay
}

// Fractional seconds are accepted after any seconds field.
var isoLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01",
	"2006",
}

// ParseISO parses an ISO-like date or date-time string. A zone
// offset, if any, is kept on the result.
func ParseISO(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &axiserr.Error{Kind: axiserr.UnsupportedDateRepresentation, Value: s, Msg: "not an ISO-like date string"}
}
