// Package money provides currency formatting and parsing for monetary
// values handled by the storefront. All display formatting uses the
// Brazilian Real (pt-BR) convention; internal arithmetic keeps full
// float64 precision and rounding happens only at formatting time.
package money

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned when a monetary value cannot be parsed.
var ErrInvalidAmount = errors.New("money: invalid amount")

// FormatBRL renders a value as Brazilian Real currency, e.g. "R$ 1.234,56".
// Two fraction digits, comma as the decimal separator, dot as the
// thousands separator.
func FormatBRL(v float64) string {
	neg := v < 0
	s := strconv.FormatFloat(math.Abs(v), 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("R$ ")
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

// ParseDecimal parses user-entered decimal text. A decimal comma is
// accepted as the fractional separator and normalized to a dot before
// parsing. NaN and infinities are rejected.
func ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}
	return v, nil
}
