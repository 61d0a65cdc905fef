package checkout

import "math"

// Round2 rounds a major-unit amount to two decimal places. All monetary
// values pass through here before minor-unit conversion to avoid
// floating-point drift.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MinorUnits converts a major-unit amount to integer minor units (kopiykas).
func MinorUnits(major float64) int64 {
	return int64(math.Round(Round2(major) * 100))
}

// UnitPrice derives the per-unit major price from a line total.
func UnitPrice(lineTotal float64, quantity int) float64 {
	if quantity <= 0 {
		return 0
	}
	return Round2(lineTotal / float64(quantity))
}

// Quantity normalizes a raw quantity to a positive integer: max(1, floor(q)).
func Quantity(raw float64) int {
	q := int(math.Floor(raw))
	if q < 1 {
		return 1
	}
	return q
}
