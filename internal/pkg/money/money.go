// Package money holds currency rounding helpers. Amounts are plain float64
// dollars; every value that leaves the service boundary is rounded here, never
// earlier.
package money

import "math"

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
