package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBaht renders an amount as #,##0.00, the layout of the printed statements.
// Example: 1234567.891 returns "1,234,567.89"
func FormatBaht(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + "." + frac
}
