package bodystats

import (
	"slices"
)

// Sanitize returns a new slice with the valid measurements sorted by date,
// oldest first, and the number of dropped ones. The input is not modified.
func Sanitize(measurements []Measurement) ([]Measurement, int) {
	valid := make([]Measurement, 0, len(measurements))
	for _, m := range measurements {
		if m.Validate() != nil {
			continue
		}
		valid = append(valid, m)
	}

	slices.SortStableFunc(valid, func(a, b Measurement) int {
		if c := a.Date.Compare(b.Date.Time); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return valid, len(measurements) - len(valid)
}
