// Package projection extrapolates when a goal value will be reached.
//
// The rate is a straight line through two observations, the earliest and the
// latest, not a regression over the whole history.
package projection

import (
	"math"

	"github.com/2beens/bodystats/pkg"
)

const (
	// projections at or beyond this many days are flagged unrealistic
	realisticHorizonDays = 365
	// beyond this there is no projection at all, the trend is effectively flat
	maxHorizonDays = 100 * 365
)

type Observation struct {
	Date  pkg.Date `json:"date"`
	Value float64  `json:"value"`
}

type Projection struct {
	ArrivalDate   pkg.Date `json:"arrivalDate"`
	DaysRemaining int      `json:"daysRemaining"`
	ChangePerDay  float64  `json:"changePerDay"`
	IsRealistic   bool     `json:"isRealistic"`
}

// ProjectArrival returns nil whenever there is nothing to project: no target,
// the target already met, a single observation, no elapsed time, no progress,
// a trend moving away from the target, or one too flat to arrive within a century.
func ProjectArrival(current float64, target *float64, first *Observation, last Observation) *Projection {
	if target == nil || current == *target || first == nil {
		return nil
	}
	if !finite(current) || !finite(*target) || !finite(first.Value) {
		return nil
	}
	if first.Date.IsZero() || last.Date.IsZero() || first.Date.SameDay(last.Date) {
		return nil
	}

	daysElapsed := last.Date.DaysSince(first.Date)
	if daysElapsed <= 0 {
		return nil
	}

	changePerDay := (current - first.Value) / float64(daysElapsed)
	if changePerDay == 0 {
		return nil
	}

	remaining := *target - current
	if math.Signbit(remaining) != math.Signbit(changePerDay) {
		return nil
	}

	days := math.Abs(remaining / changePerDay)
	if !finite(days) || days > maxHorizonDays {
		return nil
	}
	// float noise must not push an exact day count to the next day,
	// and a target not yet met is at least a day away
	daysRemaining := max(1, int(math.Ceil(pkg.Round(days, 6))))

	return &Projection{
		ArrivalDate:   last.Date.AddDays(daysRemaining),
		DaysRemaining: daysRemaining,
		ChangePerDay:  pkg.Round(changePerDay, 3),
		IsRealistic:   days < realisticHorizonDays,
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
