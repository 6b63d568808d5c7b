package utils

import "math"

// MinorUnits converts a major-unit amount (e.g. 420.50 USD) into the
// integer minor units the payment processor expects (42050 cents).
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
