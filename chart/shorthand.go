// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"regexp"

	"github.com/aclements/vlaxis/axiserr"
)

// shorthandRe matches "field", "field:T", "fn(field)", "fn(field):T"
// and "count()".
var shorthandRe = regexp.MustCompile(`^(?:(\w+)\((.*)\)|(.+?))(?::(Q|O|N|T|quantitative|ordinal|nominal|temporal))?$`)

var timeUnits = map[string]bool{
	"year": true, "quarter": true, "month": true, "date": true, "week": true,
	"day": true, "dayofyear": true, "hours": true, "minutes": true,
	"seconds": true, "milliseconds": true, "yearmonth": true,
	"yearmonthdate": true, "yearmonthdatehours": true, "monthdate": true,
	"hoursminutes": true, "hoursminutesseconds": true, "minutesseconds": true,
}

// expandShorthand fills e's field, type, aggregate and time unit from
// e.Shorthand. Explicitly set attributes take precedence.
func expandShorthand(e *Encoding) error {
	m := shorthandRe.FindStringSubmatch(e.Shorthand)
	if m == nil {
		return axiserr.Errorf(axiserr.Invalid, "malformed shorthand").At("shorthand", e.Shorthand)
	}
	fn, arg, field, typ := m[1], m[2], m[3], m[4]

	switch {
	case fn == "":
		setDefault(&e.Field, field)
	case timeUnits[fn]:
		setDefault(&e.TimeUnit, fn)
		setDefault(&e.Field, arg)
	default:
		setDefault(&e.Aggregate, fn)
		setDefault(&e.Field, arg)
		if fn == "count" {
			setDefault(&e.Type, "quantitative")
		}
	}

	if t, ok := dataTypeCodes[typ]; ok {
		setDefault(&e.Type, t.String())
	} else if typ != "" {
		setDefault(&e.Type, typ)
	}
	return nil
}

func setDefault(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}
