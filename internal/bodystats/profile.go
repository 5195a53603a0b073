package bodystats

import (
	"errors"
	"fmt"

	"github.com/2beens/bodystats/internal/bodystats/calc"

	"go.uber.org/multierr"
)

var (
	ErrInvalidProfile = errors.New("invalid profile")
	ErrInvalidGoal    = errors.New("invalid goal")
)

var (
	ageBounds           = calc.Range{Min: 13, Max: 120}
	targetWeightBounds  = calc.Range{Min: 30, Max: 300}
	targetBodyFatBounds = calc.Range{Min: 5, Max: 50}
	targetWaistBounds   = calc.Range{Min: 40, Max: 200}
)

type UserProfile struct {
	Gender        calc.Gender        `json:"gender"`
	Age           int                `json:"age"`
	Height        float64            `json:"height"`
	ActivityLevel calc.ActivityLevel `json:"activityLevel"`
}

func DefaultProfile() UserProfile {
	return UserProfile{
		Gender:        calc.GenderMale,
		Age:           25,
		Height:        175,
		ActivityLevel: calc.ActivityModerate,
	}
}

func (p UserProfile) Validate() error {
	var errs error
	if !p.Gender.IsValid() {
		errs = multierr.Append(errs, fmt.Errorf("%w: unknown gender [%s]", ErrInvalidProfile, p.Gender))
	}
	if !ageBounds.Contains(float64(p.Age)) {
		errs = multierr.Append(errs, fmt.Errorf("%w: age %d outside [13, 120]", ErrInvalidProfile, p.Age))
	}
	if !heightBounds.Contains(p.Height) {
		errs = multierr.Append(errs, fmt.Errorf("%w: height %g outside [100, 250]", ErrInvalidProfile, p.Height))
	}
	if !p.ActivityLevel.IsValid() {
		errs = multierr.Append(errs, fmt.Errorf("%w: unsupported activity level %g", ErrInvalidProfile, float64(p.ActivityLevel)))
	}
	return errs
}

// Goal holds the optional targets, any of them may be unset.
type Goal struct {
	TargetWeight  *float64 `json:"targetWeight"`
	TargetBodyFat *float64 `json:"targetBodyFat"`
	TargetWaist   *float64 `json:"targetWaist"`
}

func (g Goal) IsEmpty() bool {
	return g.TargetWeight == nil && g.TargetBodyFat == nil && g.TargetWaist == nil
}

// Target returns the goal value for the metric, nil if none is set.
func (g Goal) Target(metric Metric) *float64 {
	switch metric {
	case MetricWeight:
		return g.TargetWeight
	case MetricBodyFat:
		return g.TargetBodyFat
	case MetricWaist:
		return g.TargetWaist
	default:
		return nil
	}
}

// Validate checks a goal being saved, at least one target must be set.
func (g Goal) Validate() error {
	if g.IsEmpty() {
		return fmt.Errorf("%w: at least one target is required", ErrInvalidGoal)
	}
	var errs error
	errs = multierr.Append(errs, checkTarget("targetWeight", g.TargetWeight, targetWeightBounds))
	errs = multierr.Append(errs, checkTarget("targetBodyFat", g.TargetBodyFat, targetBodyFatBounds))
	errs = multierr.Append(errs, checkTarget("targetWaist", g.TargetWaist, targetWaistBounds))
	return errs
}

func checkTarget(field string, v *float64, bounds calc.Range) error {
	if v == nil || bounds.Contains(*v) {
		return nil
	}
	return fmt.Errorf("%w: %s %g outside [%g, %g]", ErrInvalidGoal, field, *v, bounds.Min, bounds.Max)
}
