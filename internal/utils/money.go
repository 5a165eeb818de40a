package utils

import "math"

// RoundSatang rounds a baht amount half-up to two decimals. All monetary
// amounts crossing the API boundary go through this.
func RoundSatang(amount float64) float64 {
	return math.Round(amount*100) / 100
}
