package services

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RupeeSymbol prefixes every monetary value shown by the calculator.
const RupeeSymbol = "₹"

// FormatINR formats an amount as whole Indian Rupees using the Indian
// numbering system: after the rightmost 3 digits, digits are grouped in
// pairs (e.g., ₹1,23,45,679). Halves round away from zero.
func FormatINR(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(0)

	negative := d.IsNegative()
	if negative {
		d = d.Neg()
	}

	result := RupeeSymbol + applyIndianGrouping(d.String())
	if negative {
		result = "-" + result
	}
	return result
}

// FormatPercent renders a whole-number share as "27%".
func FormatPercent(share int) string {
	return fmt.Sprintf("%d%%", share)
}

// ClipboardText is the plain string produced by the share/copy action.
func ClipboardText(total float64) string {
	return FormatINR(total)
}

// applyIndianGrouping inserts commas into an integer string using the
// Indian numbering system: the rightmost 3 digits form the first group,
// then every 2 digits form subsequent groups.
func applyIndianGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	// The last 3 digits stay together.
	result := s[n-3:]
	remaining := s[:n-3]

	// Group remaining digits in pairs from the right.
	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}

	return result
}
