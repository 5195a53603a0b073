package bodystats

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/bodystats/internal/bodystats/calc"
	"github.com/2beens/bodystats/pkg"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

var ErrInvalidMeasurement = errors.New("invalid measurement")

// plausibility bounds, values outside are treated as entry mistakes
var (
	weightBounds        = calc.Range{Min: 20, Max: 300}
	heightBounds        = calc.Range{Min: 100, Max: 250}
	bodyFatBounds       = calc.Range{Min: 0, Max: 100}
	circumferenceBounds = calc.Range{Min: 20, Max: 200}
)

type BodyFatSource string

const (
	BodyFatSourceCircumference BodyFatSource = "circumference"
	BodyFatSourceBMI           BodyFatSource = "bmi"
	// BodyFatSourceStored marks a stored value of unknown origin.
	BodyFatSourceStored BodyFatSource = "stored"
)

// Measurement is one body snapshot. It is never modified after creation.
type Measurement struct {
	ID            string        `json:"id"`
	Date          pkg.Date      `json:"date"`
	Weight        float64       `json:"weight"`
	Height        float64       `json:"height"`
	Waist         *float64      `json:"waist,omitempty"`
	Neck          *float64      `json:"neck,omitempty"`
	Hip           *float64      `json:"hip,omitempty"`
	Arm           *float64      `json:"arm,omitempty"`
	Thigh         *float64      `json:"thigh,omitempty"`
	Calf          *float64      `json:"calf,omitempty"`
	BodyFat       *float64      `json:"bodyFat,omitempty"`
	BodyFatSource BodyFatSource `json:"bodyFatSource,omitempty"`
	MuscleMass    *float64      `json:"muscleMass,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// MeasurementInput is what a user submits. A zero Date means today, a zero
// Height falls back to the profile height.
type MeasurementInput struct {
	Date   pkg.Date `json:"date"`
	Weight float64  `json:"weight"`
	Height float64  `json:"height"`
	Waist  *float64 `json:"waist,omitempty"`
	Neck   *float64 `json:"neck,omitempty"`
	Hip    *float64 `json:"hip,omitempty"`
	Arm    *float64 `json:"arm,omitempty"`
	Thigh  *float64 `json:"thigh,omitempty"`
	Calf   *float64 `json:"calf,omitempty"`
}

// NewMeasurement validates the input and derives body fat and muscle mass
// for the given profile.
func NewMeasurement(input MeasurementInput, profile UserProfile, now time.Time) (Measurement, error) {
	m := Measurement{
		ID:        uuid.NewString(),
		Date:      input.Date,
		Weight:    input.Weight,
		Height:    input.Height,
		Waist:     input.Waist,
		Neck:      input.Neck,
		Hip:       input.Hip,
		Arm:       input.Arm,
		Thigh:     input.Thigh,
		Calf:      input.Calf,
		CreatedAt: now.UTC(),
	}
	if m.Date.IsZero() {
		m.Date = pkg.DateOf(now)
	}
	if m.Height == 0 {
		m.Height = profile.Height
	}
	if err := m.Validate(); err != nil {
		return Measurement{}, err
	}

	bodyFat, source := EstimateBodyFat(m, profile)
	m.BodyFat = pkg.Float64Ptr(bodyFat)
	m.BodyFatSource = source
	m.MuscleMass = pkg.Float64Ptr(pkg.Round(calc.LeanMass(m.Weight, bodyFat), 1))

	// derived values are checked too, a stored record must stay valid for reports
	if err := m.Validate(); err != nil {
		return Measurement{}, err
	}

	return m, nil
}

// Validate reports every implausible field, each error wraps ErrInvalidMeasurement.
func (m Measurement) Validate() error {
	var errs error
	if m.Date.IsZero() {
		errs = multierr.Append(errs, fmt.Errorf("%w: missing date", ErrInvalidMeasurement))
	}
	errs = multierr.Append(errs, checkBounds("weight", m.Weight, weightBounds))
	errs = multierr.Append(errs, checkBounds("height", m.Height, heightBounds))

	for _, metric := range circumferenceMetrics {
		if v := metric.Value(m); v != nil {
			errs = multierr.Append(errs, checkBounds(string(metric), *v, circumferenceBounds))
		}
	}
	if m.BodyFat != nil {
		errs = multierr.Append(errs, checkBounds("bodyFat", *m.BodyFat, bodyFatBounds))
	}
	if m.MuscleMass != nil && *m.MuscleMass <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: muscleMass must be positive", ErrInvalidMeasurement))
	}
	return errs
}

func checkBounds(field string, v float64, bounds calc.Range) error {
	if !bounds.Contains(v) {
		return fmt.Errorf("%w: %s %g outside [%g, %g]", ErrInvalidMeasurement, field, v, bounds.Min, bounds.Max)
	}
	return nil
}

// EstimateBodyFat applies the circumference estimator when waist and neck
// (and hip for women) are present, the BMI estimator otherwise. A circumference
// estimate that leaves no lean mass (100% or more) falls back to the BMI estimator.
func EstimateBodyFat(m Measurement, profile UserProfile) (float64, BodyFatSource) {
	bodyFat, ok := calc.BodyFatCircumference(profile.Gender, m.Waist, m.Neck, m.Height, m.Hip)
	if ok && bodyFat < bodyFatBounds.Max {
		return bodyFat, BodyFatSourceCircumference
	}
	bmi := calc.BMI(m.Weight, m.Height)
	return calc.BodyFatFromBMI(bmi, profile.Gender, float64(profile.Age)), BodyFatSourceBMI
}

// ResolveBodyFat prefers the value stored at submission time and re-derives
// it when absent.
func ResolveBodyFat(m Measurement, profile UserProfile) (float64, BodyFatSource) {
	if m.BodyFat != nil {
		source := m.BodyFatSource
		if source == "" {
			source = BodyFatSourceStored
		}
		return *m.BodyFat, source
	}
	return EstimateBodyFat(m, profile)
}
