// Package delta compares a metric value against a reference value.
package delta

import (
	"math"

	"github.com/2beens/bodystats/pkg"
)

// Delta is the change from a reference value. Difference and Percentage are
// kept at 2 decimal places.
type Delta struct {
	Difference float64 `json:"difference"`
	Percentage float64 `json:"percentage"`
	IsGain     bool    `json:"isGain"`
}

// Compare returns nil when the reference is zero or not a number, the
// percentage is undefined there.
func Compare(newValue, oldValue float64) *Delta {
	if oldValue == 0 || math.IsNaN(oldValue) || math.IsInf(oldValue, 0) || math.IsNaN(newValue) {
		return nil
	}
	difference := newValue - oldValue
	return &Delta{
		Difference: pkg.Round(difference, 2),
		Percentage: pkg.Round(difference/oldValue*100, 2),
		IsGain:     difference > 0,
	}
}

// CompareOptional is Compare for values that may be absent.
func CompareOptional(newValue, oldValue *float64) *Delta {
	if newValue == nil || oldValue == nil {
		return nil
	}
	return Compare(*newValue, *oldValue)
}

// DisplayPercentage is the percentage at display precision.
func (d Delta) DisplayPercentage() float64 {
	return pkg.Round(d.Percentage, 1)
}

func (d Delta) DisplayDifference() float64 {
	return pkg.Round(d.Difference, 1)
}
