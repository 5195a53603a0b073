// Package bodystats turns a measurement history, a profile and a goal into a
// progress report. Everything here is a pure function of its arguments; the
// caller owns persistence and passes in immutable snapshots.
package bodystats

import (
	"github.com/2beens/bodystats/internal/bodystats/calc"
	"github.com/2beens/bodystats/internal/bodystats/classify"
	"github.com/2beens/bodystats/internal/bodystats/delta"
	"github.com/2beens/bodystats/internal/bodystats/projection"
	"github.com/2beens/bodystats/pkg"
)

type MetricReport struct {
	Metric            Metric                     `json:"metric"`
	Unit              string                     `json:"unit"`
	Current           *float64                   `json:"current"`
	Date              pkg.Date                   `json:"date"`
	Classification    *classify.Classification   `json:"classification"`
	DeltaFromBaseline *delta.Delta               `json:"deltaFromBaseline"`
	DeltaFromPrevious *delta.Delta               `json:"deltaFromPrevious"`
	IdealTarget       *float64                   `json:"idealTarget"`
	IdealRange        *calc.Range                `json:"idealRange,omitempty"`
	Gap               *calc.MeasurementGapResult `json:"gap,omitempty"`
	Target            *float64                   `json:"target"`
	Projection        *projection.Projection     `json:"projection"`
}

// Summary describes the latest valid measurement as a whole.
type Summary struct {
	Date              pkg.Date                 `json:"date"`
	Weight            float64                  `json:"weight"`
	Height            float64                  `json:"height"`
	BMI               float64                  `json:"bmi"`
	BMIClass          classify.Classification  `json:"bmiClass"`
	WaistToHeight     *float64                 `json:"waistToHeight"`
	WaistToHeightRisk *classify.Classification `json:"waistToHeightRisk"`
	BodyFat           float64                  `json:"bodyFat"`
	BodyFatSource     BodyFatSource            `json:"bodyFatSource"`
	BodyFatClass      classify.Classification  `json:"bodyFatClass"`
	IdealBodyFatRange calc.Range               `json:"idealBodyFatRange"`
	LeanMass          float64                  `json:"leanMass"`
	LeanMassDelta     *delta.Delta             `json:"leanMassDelta"`
	BMR               float64                  `json:"bmr"`
	TDEE              float64                  `json:"tdee"`
	ActivityLevel     string                   `json:"activityLevel"`
	IdealWeight       float64                  `json:"idealWeight"`
	WeightGap         calc.WeightGapResult     `json:"weightGap"`
}

type Report struct {
	Profile          UserProfile    `json:"profile"`
	Goal             Goal           `json:"goal"`
	MeasurementCount int            `json:"measurementCount"`
	SkippedCount     int            `json:"skippedCount"`
	Baseline         pkg.Date       `json:"baseline"`
	Latest           pkg.Date       `json:"latest"`
	Summary          *Summary       `json:"summary"`
	Metrics          []MetricReport `json:"metrics"`
}

// Metric returns the report of a single metric.
func (r Report) Metric(metric Metric) (MetricReport, bool) {
	for _, mr := range r.Metrics {
		if mr.Metric == metric {
			return mr, true
		}
	}
	return MetricReport{}, false
}

// point is one metric value from one measurement
type point struct {
	date        pkg.Date
	value       float64
	measurement Measurement
}

// Analyze builds the progress report. Invalid measurements are skipped and the
// rest ordered by date, so the history may arrive in any order.
func Analyze(history []Measurement, profile UserProfile, goal Goal) Report {
	valid, skipped := Sanitize(history)

	report := Report{
		Profile:          profile,
		Goal:             goal,
		MeasurementCount: len(valid),
		SkippedCount:     skipped,
		Metrics:          make([]MetricReport, 0, len(TrackedMetrics)),
	}
	if len(valid) > 0 {
		report.Baseline = valid[0].Date
		report.Latest = valid[len(valid)-1].Date
		report.Summary = summarize(valid, profile)
	}

	for _, metric := range TrackedMetrics {
		report.Metrics = append(report.Metrics, metricReport(metric, series(metric, valid, profile), profile, goal))
	}

	return report
}

func series(metric Metric, valid []Measurement, profile UserProfile) []point {
	points := make([]point, 0, len(valid))
	for _, m := range valid {
		var value float64
		if metric == MetricBodyFat {
			value, _ = ResolveBodyFat(m, profile)
		} else if v := metric.Value(m); v != nil {
			value = *v
		} else {
			continue
		}
		points = append(points, point{date: m.Date, value: value, measurement: m})
	}
	return points
}

func metricReport(metric Metric, points []point, profile UserProfile, goal Goal) MetricReport {
	mr := MetricReport{
		Metric: metric,
		Unit:   metric.Unit(),
		Target: goal.Target(metric),
	}
	ideal(&mr, profile)

	if len(points) == 0 {
		return mr
	}

	latest := points[len(points)-1]
	baseline := points[0]
	mr.Current = pkg.Float64Ptr(latest.value)
	mr.Date = latest.date
	mr.Classification = classification(metric, latest, profile)

	if len(points) > 1 {
		previous := points[len(points)-2]
		mr.DeltaFromBaseline = delta.Compare(latest.value, baseline.value)
		mr.DeltaFromPrevious = delta.Compare(latest.value, previous.value)

		first := projection.Observation{Date: baseline.date, Value: baseline.value}
		last := projection.Observation{Date: latest.date, Value: latest.value}
		mr.Projection = projection.ProjectArrival(latest.value, mr.Target, &first, last)
	}

	if mr.IdealTarget != nil && metric != MetricBodyFat {
		if gap, ok := calc.MeasurementGap(latest.value, *mr.IdealTarget); ok {
			mr.Gap = &gap
		}
	}

	return mr
}

func ideal(mr *MetricReport, profile UserProfile) {
	gender, height := profile.Gender, profile.Height
	var target float64
	switch mr.Metric {
	case MetricWeight:
		target = calc.IdealWeight(gender, height)
	case MetricBodyFat:
		r := calc.IdealBodyFatRange(gender, float64(profile.Age))
		mr.IdealRange = &r
		target = r.Midpoint()
	case MetricWaist:
		target = calc.IdealWaist(gender, height)
	case MetricNeck:
		target = calc.IdealNeck(gender, calc.IdealWaist(gender, height))
	case MetricHip:
		hip, ok := calc.IdealHip(gender, height)
		if !ok {
			return
		}
		target = hip
	case MetricArm:
		target = calc.IdealArm(gender, height)
	case MetricThigh:
		target = calc.IdealThigh(gender, height)
	case MetricCalf:
		target = calc.IdealCalf(gender, height)
	default:
		return
	}
	mr.IdealTarget = pkg.Float64Ptr(pkg.Round(target, 1))
}

func classification(metric Metric, latest point, profile UserProfile) *classify.Classification {
	var c classify.Classification
	switch metric {
	case MetricWeight:
		c = classify.BMI(calc.BMI(latest.value, latest.measurement.Height))
	case MetricBodyFat:
		c = classify.BodyFat(latest.value, profile.Gender)
	case MetricWaist:
		c = classify.WaistToHeightRisk(calc.WaistToHeightRatio(latest.value, latest.measurement.Height))
	default:
		return nil
	}
	return &c
}

func summarize(valid []Measurement, profile UserProfile) *Summary {
	latest := valid[len(valid)-1]
	age := float64(profile.Age)

	bmi := calc.BMI(latest.Weight, latest.Height)
	bodyFat, source := ResolveBodyFat(latest, profile)
	leanMass := calc.LeanMass(latest.Weight, bodyFat)
	idealWeight := calc.IdealWeight(profile.Gender, profile.Height)
	bmr := calc.BasalMetabolicRate(profile.Gender, latest.Weight, latest.Height, age)

	s := &Summary{
		Date:              latest.Date,
		Weight:            latest.Weight,
		Height:            latest.Height,
		BMI:               pkg.Round(bmi, 1),
		BMIClass:          classify.BMI(bmi),
		BodyFat:           bodyFat,
		BodyFatSource:     source,
		BodyFatClass:      classify.BodyFat(bodyFat, profile.Gender),
		IdealBodyFatRange: calc.IdealBodyFatRange(profile.Gender, age),
		LeanMass:          pkg.Round(leanMass, 1),
		BMR:               pkg.Round(bmr, 0),
		TDEE:              pkg.Round(bmr*float64(profile.ActivityLevel), 0),
		ActivityLevel:     profile.ActivityLevel.Name(),
		IdealWeight:       pkg.Round(idealWeight, 1),
		WeightGap:         calc.WeightGap(latest.Weight, idealWeight),
	}

	if latest.Waist != nil {
		ratio := calc.WaistToHeightRatio(*latest.Waist, latest.Height)
		risk := classify.WaistToHeightRisk(ratio)
		s.WaistToHeight = pkg.Float64Ptr(pkg.Round(ratio, 2))
		s.WaistToHeightRisk = &risk
	}

	if len(valid) > 1 {
		baseline := valid[0]
		baselineFat, _ := ResolveBodyFat(baseline, profile)
		s.LeanMassDelta = delta.Compare(leanMass, calc.LeanMass(baseline.Weight, baselineFat))
	}

	return s
}
