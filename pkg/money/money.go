package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var centsPerUnit = decimal.NewFromInt(100)

// ParseMajorUnits converts a decimal string in major currency units ("95.00")
// into integer cents. Submissions carry money as decimal strings at the
// boundary; everything internal is integer cents.
func ParseMajorUnits(value string) (int, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", value, err)
	}
	cents := d.Mul(centsPerUnit)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("amount %q has sub-cent precision", value)
	}
	if !cents.BigInt().IsInt64() {
		return 0, fmt.Errorf("amount %q out of range", value)
	}
	return int(cents.IntPart()), nil
}

// FormatCents renders integer cents as a major-unit decimal string.
func FormatCents(cents int) string {
	return decimal.NewFromInt(int64(cents)).Div(centsPerUnit).StringFixed(2)
}

// RoundPct applies pct (0-100) to cents with half-up rounding.
func RoundPct(cents int, pct float64) int {
	d := decimal.NewFromInt(int64(cents)).
		Mul(decimal.NewFromFloat(pct)).
		Div(decimal.NewFromInt(100))
	return int(d.Round(0).IntPart())
}
