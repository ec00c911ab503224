package shell

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders a result for display. Numbers below 1e40 in
// magnitude are written in fixed notation with precision digits after the
// point, larger ones in scientific notation. Trailing zeros after the point
// are dropped, and so is the point if nothing follows it. If separate is
// set, digit groups of the integer part are separated by apostrophes:
// 1'234'567.5.
func FormatNumber(v float64, precision int, separate bool) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	verb := byte('f')
	if math.Abs(v) >= 1e40 {
		verb = 'e'
	}
	s := strconv.FormatFloat(v, verb, precision, 64)
	mant, exp := s, ""
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		mant, exp = s[:i], s[i:]
	}
	if strings.IndexByte(mant, '.') >= 0 {
		mant = strings.TrimRight(mant, "0")
		mant = strings.TrimSuffix(mant, ".")
	}
	if mant == "-0" {
		mant = "0"
	}
	if separate {
		mant = group(mant)
	}
	return mant + exp
}

// group inserts apostrophes between groups of three digits in the integer
// part of a decimal number.
func group(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i:]
	}
	if len(whole) <= 3 {
		return sign + whole + frac
	}
	var b strings.Builder
	b.WriteString(sign)
	head := len(whole) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(whole[:head])
	for i := head; i < len(whole); i += 3 {
		b.WriteByte('\'')
		b.WriteString(whole[i : i+3])
	}
	b.WriteString(frac)
	return b.String()
}
