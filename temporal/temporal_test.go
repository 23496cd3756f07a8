// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package temporal

import (
	"errors"
	"testing"
	"time"

	"github.com/aclements/vlaxis/axiserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysEpoch(t *testing.T) {
	d, err := Days("1970-01-01")
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	d, err = Days("1970-01-02T12:00:00")
	require.NoError(t, err)
	assert.Equal(t, 1.5, d)

	d, err = Days("1969-12-31T18:00:00")
	require.NoError(t, err)
	assert.Equal(t, -0.25, d)
}

func TestDaysShapes(t *testing.T) {
	want, err := Days("2015-03-07")
	require.NoError(t, err)

	for _, test := range []struct {
		name string
		v    interface{}
	}{
		{"time", time.Date(2015, 3, 7, 0, 0, 0, 0, time.UTC)},
		{"time ptr", func() *time.Time { t := time.Date(2015, 3, 7, 0, 0, 0, 0, time.UTC); return &t }()},
		{"datetime", Date(2015, "March", 7)},
		{"datetime abbrev", Date(2015, "Mar", 7)},
		{"datetime number", Date(2015, 3, 7)},
		{"map", map[string]interface{}{"year": 2015, "month": "March", "date": 7}},
		{"map floats", map[string]interface{}{"year": 2015.0, "month": 3.0, "date": 7.0}},
		{"rfc3339", "2015-03-07T00:00:00Z"},
		{"padded", " 2015-03-07 "},
	} {
		got, err := Days(test.v)
		if assert.NoError(t, err, test.name) {
			assert.Equal(t, want, got, test.name)
		}
	}
}

func TestTimezoneKeepsWallClock(t *testing.T) {
	eastern := time.FixedZone("EST", -5*60*60)
	aware, err := Days(time.Date(2015, 1, 1, 1, 0, 0, 0, eastern))
	require.NoError(t, err)
	naive, err := Days("2015-01-01 01:00")
	require.NoError(t, err)
	assert.Equal(t, naive, aware)

	offset, err := Days("2015-01-01T01:00:00-05:00")
	require.NoError(t, err)
	assert.Equal(t, naive, offset)
}

func TestDateTimeDefaults(t *testing.T) {
	year := 2014
	d, err := Days(DateTime{Year: &year})
	require.NoError(t, err)
	want, _ := Days("2014-01-01")
	assert.Equal(t, want, d)

	d, err = Days(map[string]interface{}{
		"year": 2015, "month": 1, "date": 1,
		"hours": 6, "minutes": 0, "seconds": 0, "milliseconds": 500,
	})
	require.NoError(t, err)
	want, _ = Days("2015-01-01T06:00:00.5")
	assert.InDelta(t, want, d, 1e-9)
}

func TestDateTimeErrors(t *testing.T) {
	for _, test := range []struct {
		name string
		v    map[string]interface{}
		kind axiserr.Kind
	}{
		{"no year", map[string]interface{}{"month": 3}, axiserr.MissingRequiredField},
		{"quarter", map[string]interface{}{"year": 2015, "quarter": 2}, axiserr.NotSupported},
		{"day", map[string]interface{}{"year": 2015, "day": "Mon"}, axiserr.NotSupported},
		{"utc", map[string]interface{}{"year": 2015, "utc": true}, axiserr.NotSupported},
		{"lowercase month", map[string]interface{}{"year": 2015, "month": "march"}, axiserr.UnsupportedDateRepresentation},
		{"month 13", map[string]interface{}{"year": 2015, "month": 13}, axiserr.UnsupportedDateRepresentation},
		{"unknown key", map[string]interface{}{"year": 2015, "week": 3}, axiserr.UnsupportedDateRepresentation},
		{"fractional year", map[string]interface{}{"year": 2015.5}, axiserr.TypeMismatch},
		{"february 31", map[string]interface{}{"year": 2021, "month": 2, "date": 31}, axiserr.UnsupportedDateRepresentation},
		{"february 29", map[string]interface{}{"year": 2021, "month": "Feb", "date": 29}, axiserr.UnsupportedDateRepresentation},
		{"negative date", map[string]interface{}{"year": 2021, "date": -1}, axiserr.UnsupportedDateRepresentation},
		{"hours 30", map[string]interface{}{"year": 2021, "hours": 30}, axiserr.UnsupportedDateRepresentation},
		{"minutes -90", map[string]interface{}{"year": 2021, "minutes": -90}, axiserr.UnsupportedDateRepresentation},
		{"seconds 60", map[string]interface{}{"year": 2021, "seconds": 60}, axiserr.UnsupportedDateRepresentation},
		{"milliseconds 1000", map[string]interface{}{"year": 2021, "milliseconds": 1000}, axiserr.UnsupportedDateRepresentation},
	} {
		_, err := Days(test.v)
		assert.True(t, errors.Is(err, test.kind), "%s: got %v", test.name, err)
	}

	// The error names the offending component.
	_, err := Days(map[string]interface{}{"year": 2021, "hours": 30})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), `hours "30"`)
	}

	// Leap days exist in leap years.
	d, err := Days(map[string]interface{}{"year": 2020, "month": 2, "date": 29})
	require.NoError(t, err)
	assert.Equal(t, 2020, Time(d).Year())
	assert.Equal(t, time.February, Time(d).Month())
}

func TestDaysRejects(t *testing.T) {
	for _, test := range []struct {
		v    interface{}
		kind axiserr.Kind
	}{
		{1.5, axiserr.TypeMismatch},
		{42, axiserr.TypeMismatch},
		{true, axiserr.TypeMismatch},
		{nil, axiserr.TypeMismatch},
		{"yesterday", axiserr.UnsupportedDateRepresentation},
		{"03/07/2015", axiserr.UnsupportedDateRepresentation},
		{struct{}{}, axiserr.UnsupportedDateRepresentation},
	} {
		_, err := Days(test.v)
		assert.True(t, errors.Is(err, test.kind), "%v: got %v", test.v, err)
	}
}

func TestValues(t *testing.T) {
	out, err := Values([]string{})
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	out, err = Values([]interface{}{})
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = Values([]interface{}{"1970-01-02", Date(1970, 1, 3), time.Unix(0, 0).UTC()})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 0}, out)

	_, err = Values("1970-01-02")
	assert.True(t, errors.Is(err, axiserr.TypeMismatch))
}

func TestValuesNotIdempotent(t *testing.T) {
	out, err := Values([]string{"2015-03-07", "2015-03-08"})
	require.NoError(t, err)
	_, err = Values(out)
	assert.True(t, errors.Is(err, axiserr.TypeMismatch), "got %v", err)
}

func TestTimeInverse(t *testing.T) {
	for _, want := range []time.Time{
		time.Date(2015, 3, 7, 0, 0, 0, 0, time.UTC),
		time.Date(1969, 7, 20, 20, 17, 40, 0, time.UTC),
		time.Date(2016, 1, 4, 10, 0, 0, 0, time.UTC),
		time.Date(1900, 2, 28, 23, 59, 59, 0, time.UTC),
	} {
		d, err := Days(want)
		require.NoError(t, err)
		assert.WithinDuration(t, want, Time(d), time.Microsecond)
	}
}
