// Package money formats and parses Brazilian Real amounts.
//
// Amounts are carried as float64 reais throughout the system, matching
// how they are stored. Formatting follows pt-BR conventions: thousands
// separated by periods, cents by a comma, prefixed with "R$ ".
package money

import (
	"math"
	"strconv"
	"strings"
)

// Format renders an amount as a pt-BR currency string, e.g. 1234.56
// becomes "R$ 1.234,56". Non-finite values render as zero.
func Format(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	negative := amount < 0
	cents := int64(math.Round(math.Abs(amount) * 100))

	intPart := strconv.FormatInt(cents/100, 10)
	fracPart := cents % 100

	var b strings.Builder
	b.WriteString("R$ ")
	if negative {
		b.WriteByte('-')
	}

	// Group integer digits in threes with period separators.
	n := len(intPart)
	for i, d := range intPart {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	b.WriteByte(',')
	if fracPart < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(fracPart, 10))

	return b.String()
}

// ParseInput converts free-form price input into reais. Every non-digit
// character is stripped and the remaining digits are read as cents, so
// "1.234,56", "1234,56" and "123456" all yield 1234.56. Input with no
// digits yields zero.
func ParseInput(s string) float64 {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	cents, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		// All-digit input can only fail on range; saturate instead of
		// collapsing absurdly long input to zero.
		cents = math.MaxInt64
	}
	return float64(cents) / 100
}
