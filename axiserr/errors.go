// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axiserr defines the errors returned while resolving chart
// axes.
//
// Every failure is an *Error carrying a Kind. A Kind is itself an
// error, so callers can classify a failure with errors.Is:
//
//	if errors.Is(err, axiserr.NotSupported) { ... }
package axiserr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an axis resolution failure.
type Kind int

const (
	// Other is the zero Kind. It is never produced by this module.
	Other Kind = iota

	// FieldNotFound means a field reference names a column the
	// data source does not have.
	FieldNotFound

	// NotSupported means a recognized declarative feature that is
	// intentionally not implemented.
	NotSupported

	// UnsupportedDateRepresentation means a value does not have any
	// recognized date shape.
	UnsupportedDateRepresentation

	// TypeMismatch means a value has the wrong Go type for where it
	// was used.
	TypeMismatch

	// MissingRequiredField means a calendar-component object has no
	// year.
	MissingRequiredField

	// InvalidFormatString means a tick label format cannot be
	// rendered.
	InvalidFormatString

	// ResolutionFailure means a channel has no data to resolve.
	ResolutionFailure

	// Invalid means the declarative input is malformed.
	Invalid
)

var kindNames = [...]string{
	Other:                         "error",
	FieldNotFound:                 "field not found",
	NotSupported:                  "not supported",
	UnsupportedDateRepresentation: "unsupported date representation",
	TypeMismatch:                  "type mismatch",
	MissingRequiredField:          "missing required field",
	InvalidFormatString:           "invalid format string",
	ResolutionFailure:             "resolution failure",
	Invalid:                       "invalid",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Error makes k usable as an errors.Is target.
func (k Kind) Error() string {
	return k.String()
}

// Error is a single axis resolution failure.
type Error struct {
	Kind Kind

	// Channel is the axis channel being resolved ("x", "y", ...),
	// if known.
	Channel string

	// Option is the declarative option at fault, such as
	// "scale.type" or "axis.format". It may be empty.
	Option string

	// Value is the offending value, if any.
	Value interface{}

	// Msg is a human-readable detail.
	Msg string
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Channel != "" {
		b.WriteString(e.Channel)
		b.WriteString(": ")
	}
	if e.Option != "" {
		b.WriteString(e.Option)
		if e.Value != nil {
			fmt.Fprintf(&b, " %q", fmt.Sprint(e.Value))
		}
		b.WriteString(": ")
	} else if e.Value != nil {
		fmt.Fprintf(&b, "%q: ", fmt.Sprint(e.Value))
	}
	b.WriteString(e.Kind.String())
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	return b.String()
}

// Is reports whether target is e's Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// Errorf returns an *Error of kind k with a formatted detail message.
func Errorf(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// At returns a copy of e that blames option and value.
func (e *Error) At(option string, value interface{}) *Error {
	e2 := *e
	e2.Option, e2.Value = option, value
	return &e2
}

// KindOf returns the Kind of err, or Other if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Other
}

// WithChannel attaches channel to err if err is an *Error that does
// not already name a channel. Other errors are returned unchanged.
func WithChannel(err error, channel string) error {
	var e *Error
	if !errors.As(err, &e) || e.Channel != "" {
		return err
	}
	e2 := *e
	e2.Channel = channel
	return &e2
}
