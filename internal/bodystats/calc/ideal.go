package calc

const (
	devineBaseHeightCm = 152.4
	cmPerInch          = 2.54
	devineKgPerInch    = 2.3
)

// body proportions, as fractions of height (or of the ideal waist, for the neck)
var (
	waistRatio = map[Gender]float64{GenderMale: 0.37, GenderFemale: 0.36}
	neckRatio  = map[Gender]float64{GenderMale: 0.37, GenderFemale: 0.35}
	armRatio   = map[Gender]float64{GenderMale: 0.125, GenderFemale: 0.11}
	thighRatio = map[Gender]float64{GenderMale: 0.29, GenderFemale: 0.28}
	calfRatio  = map[Gender]float64{GenderMale: 0.14, GenderFemale: 0.133}
)

const femaleHipRatio = 0.45

// IdealWeight is the Devine formula: a base weight plus 2.3 kg per inch above 5 feet.
func IdealWeight(gender Gender, heightCm float64) float64 {
	base := 45.5
	if gender.IsMale() {
		base = 50
	}
	inchesAbove := (heightCm - devineBaseHeightCm) / cmPerInch
	return base + devineKgPerInch*inchesAbove
}

func IdealWaist(gender Gender, heightCm float64) float64 {
	return heightCm * ratioFor(waistRatio, gender)
}

// IdealHip is only defined for women.
func IdealHip(gender Gender, heightCm float64) (float64, bool) {
	if gender != GenderFemale {
		return 0, false
	}
	return heightCm * femaleHipRatio, true
}

// IdealNeck is derived from the ideal waist, not from the height.
func IdealNeck(gender Gender, idealWaistCm float64) float64 {
	return idealWaistCm * ratioFor(neckRatio, gender)
}

func IdealArm(gender Gender, heightCm float64) float64 {
	return heightCm * ratioFor(armRatio, gender)
}

func IdealThigh(gender Gender, heightCm float64) float64 {
	return heightCm * ratioFor(thighRatio, gender)
}

func IdealCalf(gender Gender, heightCm float64) float64 {
	return heightCm * ratioFor(calfRatio, gender)
}

// anything that is not male gets the female proportions, same as the formulas above
func ratioFor(ratios map[Gender]float64, gender Gender) float64 {
	if gender.IsMale() {
		return ratios[GenderMale]
	}
	return ratios[GenderFemale]
}

// Range is a closed [Min, Max] interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

type ageBand struct {
	below   float64
	percent Range
}

// healthy body fat bands (%) per gender for ages <20, <30, <40, <50; the last entry covers 50+
var bodyFatBands = map[Gender][]ageBand{
	GenderMale: {
		{below: 20, percent: Range{Min: 6, Max: 17}},
		{below: 30, percent: Range{Min: 8, Max: 18}},
		{below: 40, percent: Range{Min: 10, Max: 20}},
		{below: 50, percent: Range{Min: 12, Max: 22}},
		{percent: Range{Min: 13, Max: 24}},
	},
	GenderFemale: {
		{below: 20, percent: Range{Min: 16, Max: 26}},
		{below: 30, percent: Range{Min: 17, Max: 27}},
		{below: 40, percent: Range{Min: 18, Max: 29}},
		{below: 50, percent: Range{Min: 19, Max: 30}},
		{percent: Range{Min: 20, Max: 32}},
	},
}

// IdealBodyFatRange returns the healthy body fat band for the gender and age.
func IdealBodyFatRange(gender Gender, age float64) Range {
	bands := bodyFatBands[GenderFemale]
	if gender.IsMale() {
		bands = bodyFatBands[GenderMale]
	}
	last := len(bands) - 1
	for _, band := range bands[:last] {
		if age < band.below {
			return band.percent
		}
	}
	return bands[last].percent
}
