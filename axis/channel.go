// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/vlaxis/axiserr"
	"github.com/aclements/vlaxis/chart"
	"github.com/aclements/vlaxis/temporal"
)

// DataSource is a source of named columns. *table.Table implements
// DataSource. Column must return nil if there is no such column.
type DataSource interface {
	Column(name string) table.Slice
}

// Data is the raw data bound to a channel.
type Data struct {
	// Values is a column slice, or the literal value if Scalar.
	Values interface{}
	Scalar bool

	Type chart.DataType
}

// ResolveData returns the raw data bound to b and b's declared type.
//
// A literal value is returned as-is. Otherwise b's field is looked up
// in src. Aggregates and time units never reach here; chart.Compile
// rejects them.
func ResolveData(b *chart.Binding, src DataSource) (Data, error) {
	var d Data
	switch {
	case b.HasValue:
		d.Values, d.Scalar = b.Value, true
	case b.Field != "":
		var col table.Slice
		if src != nil {
			col = src.Column(b.Field)
		}
		if col == nil {
			return d, &axiserr.Error{Kind: axiserr.FieldNotFound, Channel: b.Channel, Option: "field", Value: b.Field, Msg: "no such column in the data source"}
		}
		d.Values = col
	default:
		return d, &axiserr.Error{Kind: axiserr.ResolutionFailure, Channel: b.Channel, Msg: "no value or field to resolve"}
	}

	if b.Type == chart.TypeUnset {
		if d.Scalar {
			return d, &axiserr.Error{Kind: axiserr.NotSupported, Channel: b.Channel, Option: "type", Msg: "the type of a literal value cannot be inferred"}
		}
		return d, &axiserr.Error{Kind: axiserr.ResolutionFailure, Channel: b.Channel, Option: "type", Msg: "channel declares no type"}
	}
	d.Type = b.Type
	return d, nil
}

// Channel is one resolved axis binding. It is built once per
// resolution and never modified.
type Channel struct {
	Name string
	Type chart.DataType
	Mark chart.Mark

	// Raw is the data as resolved, before normalization.
	Raw    interface{}
	Scalar bool

	// Data is the numeric form of Raw: plain numbers for
	// quantitative channels and timeline days for temporal
	// channels. It is nil for ordinal and nominal channels.
	Data []float64

	Scale chart.ScaleOptions
	Axis  chart.AxisOptions
}

// NewChannel builds the Channel for b from its resolved data. Temporal
// data is normalized to the numeric timeline here, so nothing
// downstream sees raw dates.
func NewChannel(b *chart.Binding, d Data) (*Channel, error) {
	ch := &Channel{
		Name:   b.Channel,
		Type:   d.Type,
		Mark:   b.Mark,
		Raw:    d.Values,
		Scalar: d.Scalar,
		Scale:  b.Scale,
		Axis:   b.Axis,
	}

	var err error
	switch d.Type {
	case chart.Quantitative:
		if d.Scalar {
			var x float64
			x, err = toFloat(d.Values)
			ch.Data = []float64{x}
		} else {
			ch.Data, err = toFloats(d.Values)
		}
	case chart.Temporal:
		if d.Scalar {
			var x float64
			x, err = temporal.Days(d.Values)
			ch.Data = []float64{x}
		} else {
			ch.Data, err = temporal.Values(d.Values)
		}
	case chart.Ordinal, chart.Nominal:
		// Kept raw. Scale resolution rejects these types.
	default:
		return nil, &axiserr.Error{Kind: axiserr.Invalid, Channel: b.Channel, Option: "type", Value: d.Type}
	}
	if err != nil {
		return nil, axiserr.WithChannel(err, b.Channel)
	}
	return ch, nil
}

// finite returns the finite values of ch.Data.
func (ch *Channel) finite() []float64 {
	out := make([]float64, 0, len(ch.Data))
	for _, x := range ch.Data {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			out = append(out, x)
		}
	}
	return out
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// toFloat converts a single number of any numeric type.
func toFloat(v interface{}) (float64, error) {
	if v != nil {
		rv := reflect.ValueOf(v)
		if isNumericKind(rv.Kind()) {
			return rv.Convert(reflect.TypeOf(float64(0))).Float(), nil
		}
	}
	return 0, &axiserr.Error{Kind: axiserr.TypeMismatch, Value: v, Msg: fmt.Sprintf("%T is not a number", v)}
}

// toFloats converts a column of numbers to []float64.
func toFloats(col interface{}) ([]float64, error) {
	rv := reflect.ValueOf(col)
	if col == nil || rv.Kind() != reflect.Slice {
		return nil, &axiserr.Error{Kind: axiserr.TypeMismatch, Msg: fmt.Sprintf("%T is not a column", col)}
	}
	if isNumericKind(rv.Type().Elem().Kind()) {
		var out []float64
		slice.Convert(&out, col)
		if out == nil {
			out = []float64{}
		}
		return out, nil
	}

	// Mixed columns, such as []interface{} from decoded records.
	out := make([]float64, rv.Len())
	for i := range out {
		x, err := toFloat(rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}
