// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aclements/vlaxis/axiserr"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// numberFormatRe matches d3-style number format specifiers:
//
//	[[fill]align][sign][symbol][0][width][,][.precision][~][type]
var numberFormatRe = regexp.MustCompile(`^(?:(.)?([<>=^]))?([+\-( ])?([$#])?(0)?(\d+)?(,)?(\.\d+)?(~)?([a-zA-Z%])?$`)

// numberFormat is a parsed numeric label format.
type numberFormat struct {
	sign     byte // 0, '+', '-' or ' '
	currency bool
	zero     bool
	width    int
	group    bool
	prec     int // -1 if unset
	verb     byte
}

var groupPrinter = message.NewPrinter(language.English)

func numberLabels(format string) (Labels, labelFunc, error) {
	f, err := parseNumberFormat(format)
	if err != nil {
		return Labels{}, nil, err
	}
	return Labels{Format: labelFunc(f.format).orDefault()}, f.format, nil
}

func parseNumberFormat(format string) (*numberFormat, error) {
	bad := func(construct, msg string) error {
		return axiserr.Errorf(axiserr.InvalidFormatString,
			"%s %s; use number formats like \",.2f\", \".1%%\" or \"+e\"", construct, msg).At("axis.format", format)
	}

	m := numberFormatRe.FindStringSubmatch(format)
	if m == nil {
		return nil, bad("format", "is not a number format")
	}
	fill, align, sign, symbol, zero, width, group, prec, trim, verb := m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8], m[9], m[10]

	switch {
	case fill != "" || align != "":
		return nil, bad("fill and alignment "+strconv.Quote(fill+align), "are not supported")
	case sign == "(":
		return nil, bad(`sign "("`, "is not supported")
	case symbol == "#":
		return nil, bad(`symbol "#"`, "is not supported")
	case trim != "":
		return nil, bad(`trim flag "~"`, "is not supported")
	}

	f := &numberFormat{currency: symbol == "$", zero: zero != "", group: group != "", prec: -1}
	if sign != "" {
		f.sign = sign[0]
	}
	if width != "" {
		f.width, _ = strconv.Atoi(width)
	}
	if prec != "" {
		f.prec, _ = strconv.Atoi(prec[1:])
	}
	if verb != "" {
		f.verb = verb[0]
		if !strings.ContainsRune("defg%xXob", rune(f.verb)) {
			return nil, bad("type "+strconv.Quote(verb), "is not supported")
		}
	}
	return f, nil
}

// format renders x. Signs, the currency symbol and padding are
// applied around the formatted magnitude.
func (f *numberFormat) format(x float64) (string, error) {
	neg := math.Signbit(x) && !math.IsNaN(x)
	body, err := f.body(math.Abs(x))
	if err != nil {
		return "", err
	}

	// Negative values that round to zero print as zero.
	if neg && strings.Trim(body, "0.,%e+-") == "" {
		neg = false
	}

	var prefix string
	switch {
	case neg:
		prefix = "-"
	case f.sign == '+':
		prefix = "+"
	case f.sign == ' ':
		prefix = " "
	}
	if f.currency {
		prefix += "$"
	}

	n := utf8.RuneCountInString(prefix) + utf8.RuneCountInString(body)
	if pad := f.width - n; pad > 0 {
		if f.zero {
			return prefix + strings.Repeat("0", pad) + body, nil
		}
		return strings.Repeat(" ", pad) + prefix + body, nil
	}
	return prefix + body, nil
}

// maxUint is 2^64, the smallest magnitude the integer radix types
// cannot show.
const maxUint = 1 << 64

// body formats the magnitude a.
func (f *numberFormat) body(a float64) (string, error) {
	radix := f.verb == 'x' || f.verb == 'X' || f.verb == 'o' || f.verb == 'b'
	switch {
	case radix && (math.IsNaN(a) || math.Round(a) >= maxUint):
		return "", fmt.Errorf("%g is out of range for type %q; use type \"d\" or \"e\"", a, f.verb)
	case math.IsNaN(a):
		return "NaN", nil
	case math.IsInf(a, 0):
		return "Infinity", nil
	}
	prec := func(def int) int {
		if f.prec >= 0 {
			return f.prec
		}
		return def
	}

	var s string
	switch f.verb {
	case 0:
		s = strconv.FormatFloat(a, 'g', prec(12), 64)
		s = shortExponent(s)
	case 'd':
		s = strconv.FormatFloat(math.Round(a), 'f', 0, 64)
	case 'e':
		s = shortExponent(strconv.FormatFloat(a, 'e', prec(6), 64))
	case 'f':
		s = strconv.FormatFloat(a, 'f', prec(6), 64)
	case 'g':
		p := prec(6)
		if p == 0 {
			p = 1
		}
		s = shortExponent(strconv.FormatFloat(a, 'g', p, 64))
		s = padSignificant(s, p)
	case '%':
		s = strconv.FormatFloat(a*100, 'f', prec(6), 64)
	case 'x', 'X', 'o', 'b':
		base := map[byte]int{'x': 16, 'X': 16, 'o': 8, 'b': 2}[f.verb]
		s = strconv.FormatUint(uint64(math.Round(a)), base)
		if f.verb == 'X' {
			s = strings.ToUpper(s)
		}
	}

	if f.group && (f.verb == 0 || f.verb == 'd' || f.verb == 'f' || f.verb == '%') {
		var err error
		if s, err = groupDigits(s); err != nil {
			return "", err
		}
	}
	if f.verb == '%' {
		s += "%"
	}
	return s, nil
}

// groupDigits inserts thousands separators into the integer part of a
// plain decimal. Integer parts beyond int64 are an error.
func groupDigits(s string) (string, error) {
	if strings.ContainsAny(s, "e") {
		return s, nil
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return "", fmt.Errorf("cannot group the digits of %s; drop the \",\" flag or use type \"e\"", intPart)
	}
	return groupPrinter.Sprintf("%d", n) + frac, nil
}

// shortExponent rewrites "e+05" as "e+5".
func shortExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	exp := strings.TrimLeft(s[i+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return s[:i+2] + exp
}

// padSignificant restores trailing zeros that strconv trims, so s
// shows p significant digits.
func padSignificant(s string, p int) string {
	mant, exp := s, ""
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		mant, exp = s[:i], s[i:]
	}
	digits := strings.TrimLeft(strings.Replace(mant, ".", "", 1), "0")
	if digits == "" {
		// Zero: every shown digit counts.
		digits = "0"
	}
	need := p - len(digits)
	if need <= 0 {
		return s
	}
	if !strings.Contains(mant, ".") {
		mant += "."
	}
	return mant + strings.Repeat("0", need) + exp
}
