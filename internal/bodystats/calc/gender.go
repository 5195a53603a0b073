// Package calc holds the pure body-composition formulas: BMI, body fat
// estimators, energy expenditure and the height based ideal measurements.
//
// Functions assume positive physical inputs. Validation is the caller's job.
package calc

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

func (g Gender) IsMale() bool {
	return g == GenderMale
}

func (g Gender) String() string {
	return string(g)
}
