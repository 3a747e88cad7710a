package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount as a US-dollar string with two
// decimals and thousands separators, e.g. 1234.5 -> "$1,234.50".
// Purely presentational; the stored financial values stay unrounded.
func FormatCurrency(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	negative := d.IsNegative()
	fixed := d.Abs().StringFixed(2)

	dot := strings.IndexByte(fixed, '.')
	intPart, frac := fixed[:dot], fixed[dot:]

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}

	out := "$" + b.String() + frac
	if negative {
		out = "-" + out
	}
	return out
}
