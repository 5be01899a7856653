package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatUSD formats a decimal amount as a string like "$1,234.56".
// Uses comma as thousands separator and always two decimal places.
func FormatUSD(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	if neg {
		amount = amount.Neg()
	}

	s := amount.StringFixed(2)
	dot := strings.IndexByte(s, '.')
	whole, cents := s[:dot], s[dot:]

	if len(whole) <= 3 {
		if neg {
			return "-$" + whole + cents
		}
		return "$" + whole + cents
	}

	var b strings.Builder
	// Pre-allocate: digits + separators + $ + cents
	b.Grow(len(s) + len(whole)/3 + 2)
	if neg {
		b.WriteString("-$")
	} else {
		b.WriteString("$")
	}

	// Insert separators from the left.
	rem := len(whole) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(whole[:rem])
	for i := rem; i < len(whole); i += 3 {
		b.WriteByte(',')
		b.WriteString(whole[i : i+3])
	}
	b.WriteString(cents)

	return b.String()
}
