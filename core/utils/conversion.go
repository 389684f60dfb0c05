package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FloatOrZero parses a numeric feed cell, returning 0 for anything that
// is not a finite number. Supplier exports routinely carry blanks or
// stray text in numeric columns; a single bad cell must never abort a
// run.
func FloatOrZero(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// IntOrZero parses a quantity cell. Fractional values are truncated
// toward zero ("12.9" becomes 12), matching how the supplier rounds its
// own unit counts.
func IntOrZero(raw string) int {
	return int(FloatOrZero(raw))
}

// DecimalOrZero parses a money cell into a fixed-point decimal,
// returning zero on malformed input.
func DecimalOrZero(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FlagSet reports whether a supplier flag cell is set. The feed encodes
// boolean columns as "1" / "0" (or blank).
func FlagSet(raw string) bool {
	return strings.TrimSpace(raw) == "1"
}
