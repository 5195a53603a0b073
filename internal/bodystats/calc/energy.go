package calc

import "fmt"

// ActivityLevel is the TDEE multiplier applied on top of the basal rate.
type ActivityLevel float64

const (
	ActivitySedentary  ActivityLevel = 1.2
	ActivityLight      ActivityLevel = 1.375
	ActivityModerate   ActivityLevel = 1.55
	ActivityActive     ActivityLevel = 1.725
	ActivityVeryActive ActivityLevel = 1.9
)

var ActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityActive,
	ActivityVeryActive,
}

func (a ActivityLevel) IsValid() bool {
	for _, level := range ActivityLevels {
		if a == level {
			return true
		}
	}
	return false
}

func (a ActivityLevel) Name() string {
	switch a {
	case ActivitySedentary:
		return "sedentary"
	case ActivityLight:
		return "light"
	case ActivityModerate:
		return "moderate"
	case ActivityActive:
		return "active"
	case ActivityVeryActive:
		return "very_active"
	default:
		return fmt.Sprintf("custom(%g)", float64(a))
	}
}

// BasalMetabolicRate uses the Mifflin-St Jeor equation, kcal/day.
func BasalMetabolicRate(gender Gender, weightKg, heightCm, age float64) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*age
	if gender.IsMale() {
		return bmr + 5
	}
	return bmr - 161
}

func TotalDailyEnergyExpenditure(gender Gender, weightKg, heightCm, age float64, activityLevel ActivityLevel) float64 {
	return BasalMetabolicRate(gender, weightKg, heightCm, age) * float64(activityLevel)
}
