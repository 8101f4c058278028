package utils

import "math"

// RoundToNearest rounds x to the nearest multiple of unit, halves away from
// zero.
func RoundToNearest(x, unit float64) float64 {
	return math.Round(x/unit) * unit
}
