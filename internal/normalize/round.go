package normalize

import "math"

// RoundTo rounds v to the given number of decimal places, half away from
// zero. Mod values round to 3 places by rating-plan contract; report dollar
// amounts round to 2. Rounding happens before any downstream comparison.
func RoundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
