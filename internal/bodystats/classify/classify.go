// Package classify maps continuous body metrics to qualitative bands.
//
// Every band is closed on its lower bound and open on its upper bound; the last
// band is open-ended.
package classify

import "github.com/2beens/bodystats/internal/bodystats/calc"

// Severity orders classifications, lower is healthier.
type Severity int

const (
	SeverityHealthy Severity = iota
	SeverityMild
	SeverityElevated
	SeverityHigh
	SeveritySevere
)

func (s Severity) String() string {
	switch s {
	case SeverityHealthy:
		return "healthy"
	case SeverityMild:
		return "mild"
	case SeverityElevated:
		return "elevated"
	case SeverityHigh:
		return "high"
	default:
		return "severe"
	}
}

type Classification struct {
	Label    string   `json:"label"`
	Severity Severity `json:"severity"`
}

const (
	BMIUnderweight = "underweight"
	BMINormal      = "normal"
	BMIOverweight  = "overweight"
	BMIObeseI      = "obese_i"
	BMIObeseII     = "obese_ii_plus"

	BodyFatEssential = "essential"
	BodyFatAthletic  = "athletic"
	BodyFatFit       = "fit"
	BodyFatNormal    = "normal"
	BodyFatObese     = "obese"

	RiskLow      = "low"
	RiskModerate = "moderate"
	RiskHigh     = "high"
)

type band struct {
	upper          float64 // exclusive, ignored on the last band
	classification Classification
}

func lookup(bands []band, v float64) Classification {
	last := len(bands) - 1
	for _, b := range bands[:last] {
		if v < b.upper {
			return b.classification
		}
	}
	return bands[last].classification
}

var bmiBands = []band{
	{18.5, Classification{BMIUnderweight, SeverityMild}},
	{25, Classification{BMINormal, SeverityHealthy}},
	{30, Classification{BMIOverweight, SeverityElevated}},
	{35, Classification{BMIObeseI, SeverityHigh}},
	{0, Classification{BMIObeseII, SeveritySevere}},
}

func BMI(bmi float64) Classification {
	return lookup(bmiBands, bmi)
}

func bodyFatBands(essential, athletic, fit, normal float64) []band {
	return []band{
		{essential, Classification{BodyFatEssential, SeverityHigh}},
		{athletic, Classification{BodyFatAthletic, SeverityHealthy}},
		{fit, Classification{BodyFatFit, SeverityHealthy}},
		{normal, Classification{BodyFatNormal, SeverityMild}},
		{0, Classification{BodyFatObese, SeverityHigh}},
	}
}

var (
	maleBodyFatBands   = bodyFatBands(6, 13, 17, 25)
	femaleBodyFatBands = bodyFatBands(13, 20, 24, 32)
)

// BodyFat classifies a body fat percentage. Anything but male uses the female bands.
func BodyFat(percent float64, gender calc.Gender) Classification {
	if gender.IsMale() {
		return lookup(maleBodyFatBands, percent)
	}
	return lookup(femaleBodyFatBands, percent)
}

var waistToHeightBands = []band{
	{0.5, Classification{RiskLow, SeverityHealthy}},
	{0.57, Classification{RiskModerate, SeverityElevated}},
	{0, Classification{RiskHigh, SeverityHigh}},
}

// WaistToHeightRisk classifies the waist-to-height ratio.
func WaistToHeightRisk(ratio float64) Classification {
	return lookup(waistToHeightBands, ratio)
}
