package calc

import (
	"math"

	"github.com/2beens/bodystats/pkg"
)

// BodyFatCircumference estimates body fat % with the Navy circumference formula.
// Men need waist and neck, women additionally need hip. ok is false when a
// required circumference is missing, or when the circumferences cannot be fed
// to the logarithm (waist not larger than neck).
// The estimate is rounded to 0.1 and floored at 0.
func BodyFatCircumference(gender Gender, waistCm, neckCm *float64, heightCm float64, hipCm *float64) (_ float64, ok bool) {
	if !present(waistCm) || !present(neckCm) {
		return 0, false
	}

	var bodyFat float64
	if gender.IsMale() {
		span := *waistCm - *neckCm
		if span <= 0 {
			return 0, false
		}
		bodyFat = 86.010*math.Log10(span) - 70.041*math.Log10(heightCm) + 36.76
	} else {
		if !present(hipCm) {
			return 0, false
		}
		span := *waistCm + *hipCm - *neckCm
		if span <= 0 {
			return 0, false
		}
		bodyFat = 163.205*math.Log10(span) - 97.684*math.Log10(heightCm) - 78.387
	}

	return math.Max(0, pkg.Round(bodyFat, 1)), true
}

// BodyFatFromBMI is the Deurenberg estimate: 1.20*bmi + 0.23*age - 10.8*male - 5.4,
// rounded to 0.1 and clamped to [0, 100].
func BodyFatFromBMI(bmi float64, gender Gender, age float64) float64 {
	male := 0.0
	if gender.IsMale() {
		male = 1
	}
	bodyFat := 1.20*bmi + 0.23*age - 10.8*male - 5.4
	return clamp(pkg.Round(bodyFat, 1), 0, 100)
}

// LeanMass is the fat free mass in kg.
func LeanMass(weightKg, bodyFatPercent float64) float64 {
	return weightKg * (1 - bodyFatPercent/100)
}

func present(v *float64) bool {
	return v != nil && *v > 0
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(hi, math.Max(lo, v))
}
