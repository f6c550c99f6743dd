package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a captured monetary value after stripping thousands
// separators: "1,23,456.50" -> 123456.50.
func ParseAmount(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(raw), ",", ""))
}

// AmountOrZero parses like ParseAmount but degrades malformed or missing
// values to zero. Used for the TDS tax-breakup sub-fields.
func AmountOrZero(raw string) decimal.Decimal {
	d, err := ParseAmount(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}
