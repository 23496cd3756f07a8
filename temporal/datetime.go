// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package temporal

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/aclements/vlaxis/axiserr"
)

// DateTime is a calendar-component object: a partial date given as
// named components.
//
// Year is required. A missing Month is January and a zero Date is the
// 1st. Quarter, Day (day of week) and UTC are recognized but not
// supported; setting any of them makes Time fail with NotSupported.
type DateTime struct {
	Year *int

	// Quarter is 1-4.
	Quarter *int

	// Month is nil, a 1-based month number, or an English month
	// name or three-letter abbreviation ("March", "Mar").
	// Names are case-sensitive.
	Month interface{}

	// Date is the day of the month.
	Date int

	// Day is the day of the week, as a number or name.
	Day interface{}

	Hours, Minutes, Seconds, Milliseconds int

	UTC *bool
}

// Date returns a DateTime for the given year, month and day of month.
func Date(year int, month interface{}, date int) DateTime {
	return DateTime{Year: &year, Month: month, Date: date}
}

var monthNames = map[string]time.Month{}

func init() {
	for m := time.January; m <= time.December; m++ {
		monthNames[m.String()] = m
		monthNames[m.String()[:3]] = m
	}
}

// Time combines the components of d into a single instant, in UTC.
func (d DateTime) Time() (time.Time, error) {
	switch {
	case d.Quarter != nil:
		return time.Time{}, axiserr.Errorf(axiserr.NotSupported, "quarter-based dates").At("quarter", *d.Quarter)
	case d.Day != nil:
		return time.Time{}, axiserr.Errorf(axiserr.NotSupported, "day-of-week dates").At("day", d.Day)
	case d.UTC != nil:
		return time.Time{}, axiserr.Errorf(axiserr.NotSupported, "explicit UTC flags").At("utc", *d.UTC)
	case d.Year == nil:
		return time.Time{}, axiserr.Errorf(axiserr.MissingRequiredField, "calendar date has no year").At("year", nil)
	}

	month := time.January
	switch m := d.Month.(type) {
	case nil:
	case string:
		var ok bool
		if month, ok = monthNames[m]; !ok {
			return time.Time{}, axiserr.Errorf(axiserr.UnsupportedDateRepresentation, "unknown month name").At("month", m)
		}
	default:
		n, ok := asInt(m)
		if !ok || n < 1 || n > 12 {
			return time.Time{}, axiserr.Errorf(axiserr.UnsupportedDateRepresentation, "month must be 1-12 or a month name").At("month", m)
		}
		month = time.Month(n)
	}

	date := d.Date
	if date == 0 {
		date = 1
	}
	// time.Date would silently carry out-of-range components into
	// the next larger unit.
	if last := time.Date(*d.Year, month+1, 0, 0, 0, 0, 0, time.UTC).Day(); date < 1 || date > last {
		return time.Time{}, axiserr.Errorf(axiserr.UnsupportedDateRepresentation, "date must be 1-%d in %s %d", last, month, *d.Year).At("date", date)
	}
	for _, c := range []struct {
		name     string
		val, max int
	}{
		{"hours", d.Hours, 23},
		{"minutes", d.Minutes, 59},
		{"seconds", d.Seconds, 59},
		{"milliseconds", d.Milliseconds, 999},
	} {
		if c.val < 0 || c.val > c.max {
			return time.Time{}, axiserr.Errorf(axiserr.UnsupportedDateRepresentation, "%s must be 0-%d", c.name, c.max).At(c.name, c.val)
		}
	}

	ns := d.Milliseconds * int(time.Millisecond)
	return time.Date(*d.Year, month, date, d.Hours, d.Minutes, d.Seconds, ns, time.UTC), nil
}

// ParseDateTime builds a DateTime from a decoded calendar-component
// object such as {"year": 2015, "month": "March", "date": 7}.
func ParseDateTime(m map[string]interface{}) (DateTime, error) {
	var d DateTime
	for key, val := range m {
		var dst *int
		switch key {
		case "year":
			n, err := component(key, val)
			if err != nil {
				return d, err
			}
			d.Year = &n
			continue
		case "quarter":
			n, err := component(key, val)
			if err != nil {
				return d, err
			}
			d.Quarter = &n
			continue
		case "month":
			d.Month = val
			continue
		case "day":
			d.Day = val
			continue
		case "utc":
			b, ok := val.(bool)
			if !ok {
				return d, axiserr.Errorf(axiserr.TypeMismatch, "utc must be a boolean").At(key, val)
			}
			d.UTC = &b
			continue
		case "date":
			dst = &d.Date
		case "hours":
			dst = &d.Hours
		case "minutes":
			dst = &d.Minutes
		case "seconds":
			dst = &d.Seconds
		case "milliseconds":
			dst = &d.Milliseconds
		default:
			return d, axiserr.Errorf(axiserr.UnsupportedDateRepresentation, "unknown calendar component").At(key, val)
		}
		n, err := component(key, val)
		if err != nil {
			return d, err
		}
		*dst = n
	}
	return d, nil
}

func component(key string, val interface{}) (int, error) {
	n, ok := asInt(val)
	if !ok {
		return 0, axiserr.Errorf(axiserr.TypeMismatch, "%s must be an integer, not %T", key, val).At(key, val)
	}
	return n, nil
}

// asInt converts integral numbers of any Go numeric type to int.
func asInt(v interface{}) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}

func (d DateTime) String() string {
	if d.Year == nil {
		return "DateTime{}"
	}
	return fmt.Sprintf("DateTime{%d %v %d}", *d.Year, d.Month, d.Date)
}
