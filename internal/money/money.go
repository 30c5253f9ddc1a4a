// Package money holds the decimal helpers shared by the normalizer and the
// document layout: lenient parsing of loosely typed amounts, GST rate
// back-calculation, and display formatting.
package money

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// FromFloat creates decimal from float with rounding to 2 places
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// SafeParse converts a loosely typed amount to a decimal, never failing.
// Accepts string (thousands separators stripped), json.Number, int, and
// float values. nil, empty string, and anything unparseable yield def.
func SafeParse(v any, def decimal.Decimal) decimal.Decimal {
	switch val := v.(type) {
	case nil:
		return def
	case decimal.Decimal:
		return val
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(val), ",", "")
		if s == "" {
			return def
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return def
		}
		return d
	case json.Number:
		d, err := decimal.NewFromString(val.String())
		if err != nil {
			return def
		}
		return d
	case int:
		return decimal.NewFromInt(int64(val))
	case int64:
		return decimal.NewFromInt(val)
	case float64:
		return decimal.NewFromFloat(val)
	case float32:
		return decimal.NewFromFloat32(val)
	default:
		return def
	}
}

// SafeFloat is the float64 view of SafeParse, for callers that only need a
// plain number.
func SafeFloat(v any, def float64) float64 {
	f, _ := SafeParse(v, decimal.NewFromFloat(def)).Float64()
	return f
}

// TaxRate back-computes a GST rate from its amount: amount/taxable*100,
// rounded to 2 places. Falls back to defaultRate unless both operands are
// positive, so an amount of exactly 0 is treated the same as an absent one.
func TaxRate(amount, taxable, defaultRate decimal.Decimal) decimal.Decimal {
	if taxable.GreaterThan(Zero) && amount.GreaterThan(Zero) {
		return amount.Div(taxable).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return defaultRate
}

// RoundRupee rounds to a whole rupee using round-half-to-even, the rule the
// round-off line on the invoice is pinned to (100.50 -> 100, 101.50 -> 102).
func RoundRupee(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(0)
}

// Format renders an amount for display: two decimal places when there is a
// fractional part, a bare integer otherwise (never a trailing ".00").
func Format(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return d.Truncate(0).String()
	}
	return d.StringFixed(2)
}

// FormatRate renders a percentage label like "9%"; zero yields "" so the
// tax summary can leave unused rows blank.
func FormatRate(d decimal.Decimal) string {
	if d.LessThanOrEqual(Zero) {
		return ""
	}
	return d.Round(0).String() + "%"
}

// FormatOptional is Format, but zero renders as "" instead of "0".
func FormatOptional(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return Format(d)
}

// IsPositive returns true if decimal is greater than zero
func IsPositive(d decimal.Decimal) bool {
	return d.GreaterThan(Zero)
}
