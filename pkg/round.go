package pkg

import "math"

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Float64Ptr is a small helper for optional fields.
func Float64Ptr(v float64) *float64 {
	return &v
}
