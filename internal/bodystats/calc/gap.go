package calc

import (
	"math"

	"github.com/2beens/bodystats/pkg"
)

// weight differences within this many kg of the ideal count as on target
const idealWeightToleranceKg = 2

type WeightStatus string

const (
	WeightAboveIdeal  WeightStatus = "above_ideal"
	WeightBelowIdeal  WeightStatus = "below_ideal"
	WeightWithinIdeal WeightStatus = "within_ideal"
)

type WeightGapResult struct {
	Difference    float64      `json:"difference"`
	NeedsToChange float64      `json:"needsToChange"`
	IsOverweight  bool         `json:"isOverweight"`
	IsUnderweight bool         `json:"isUnderweight"`
	Status        WeightStatus `json:"status"`
}

// WeightGap tells how far the current weight is from the ideal one.
func WeightGap(currentKg, idealKg float64) WeightGapResult {
	difference := currentKg - idealKg
	status := WeightWithinIdeal
	switch {
	case difference > idealWeightToleranceKg:
		status = WeightAboveIdeal
	case difference < -idealWeightToleranceKg:
		status = WeightBelowIdeal
	}
	return WeightGapResult{
		Difference:    pkg.Round(difference, 1),
		NeedsToChange: math.Abs(pkg.Round(difference, 1)),
		IsOverweight:  difference > 0,
		IsUnderweight: difference < 0,
		Status:        status,
	}
}

type MeasurementGapResult struct {
	Current              float64 `json:"current"`
	Ideal                float64 `json:"ideal"`
	Difference           float64 `json:"difference"`
	NeedsToChange        float64 `json:"needsToChange"`
	IsAboveIdeal         bool    `json:"isAboveIdeal"`
	IsBelowIdeal         bool    `json:"isBelowIdeal"`
	PercentageDifference float64 `json:"percentageDifference"`
}

// MeasurementGap compares a circumference with its ideal. Values are rounded to 0.1.
// ok is false for a non-positive ideal, the percentage would be undefined.
func MeasurementGap(current, ideal float64) (MeasurementGapResult, bool) {
	if ideal <= 0 {
		return MeasurementGapResult{}, false
	}
	difference := current - ideal
	return MeasurementGapResult{
		Current:              pkg.Round(current, 1),
		Ideal:                pkg.Round(ideal, 1),
		Difference:           pkg.Round(difference, 1),
		NeedsToChange:        math.Abs(pkg.Round(difference, 1)),
		IsAboveIdeal:         difference > 0,
		IsBelowIdeal:         difference < 0,
		PercentageDifference: pkg.Round(difference/ideal*100, 1),
	}, true
}
