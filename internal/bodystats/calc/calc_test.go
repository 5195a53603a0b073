package calc_test

import (
	"math"
	"testing"

	"github.com/2beens/bodystats/internal/bodystats/calc"
	"github.com/2beens/bodystats/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBMI(t *testing.T) {
	bmi := calc.BMI(70, 175)
	assert.InDelta(t, 70/(1.75*1.75), bmi, 1e-9)
	assert.InDelta(t, 22.86, bmi, 0.005)
}

func TestWaistToHeightRatio(t *testing.T) {
	assert.InDelta(t, 0.4857, calc.WaistToHeightRatio(85, 175), 0.0001)
	assert.Equal(t, 0.5, calc.WaistToHeightRatio(90, 180))
}

func TestBodyFatCircumference(t *testing.T) {
	t.Run("male", func(t *testing.T) {
		bf, ok := calc.BodyFatCircumference(calc.GenderMale, pkg.Float64Ptr(85), pkg.Float64Ptr(38), 175, nil)
		require.True(t, ok)
		assert.Equal(t, 23.5, bf)
	})

	t.Run("female", func(t *testing.T) {
		bf, ok := calc.BodyFatCircumference(calc.GenderFemale, pkg.Float64Ptr(70), pkg.Float64Ptr(32), 165, pkg.Float64Ptr(95))
		require.True(t, ok)
		assert.Equal(t, 51.6, bf)
	})

	t.Run("female without hip", func(t *testing.T) {
		_, ok := calc.BodyFatCircumference(calc.GenderFemale, pkg.Float64Ptr(70), pkg.Float64Ptr(32), 165, nil)
		assert.False(t, ok)
	})

	t.Run("missing neck or waist", func(t *testing.T) {
		_, ok := calc.BodyFatCircumference(calc.GenderMale, pkg.Float64Ptr(85), nil, 175, nil)
		assert.False(t, ok)
		_, ok = calc.BodyFatCircumference(calc.GenderMale, nil, pkg.Float64Ptr(38), 175, nil)
		assert.False(t, ok)
		_, ok = calc.BodyFatCircumference(calc.GenderMale, pkg.Float64Ptr(0), pkg.Float64Ptr(38), 175, nil)
		assert.False(t, ok)
	})

	t.Run("neck not smaller than waist", func(t *testing.T) {
		_, ok := calc.BodyFatCircumference(calc.GenderMale, pkg.Float64Ptr(38), pkg.Float64Ptr(38), 175, nil)
		assert.False(t, ok)
	})

	t.Run("negative estimate floored", func(t *testing.T) {
		bf, ok := calc.BodyFatCircumference(calc.GenderMale, pkg.Float64Ptr(41), pkg.Float64Ptr(40), 200, nil)
		require.True(t, ok)
		assert.Equal(t, 0.0, bf)
	})
}

func TestBodyFatFromBMI(t *testing.T) {
	assert.Equal(t, 17.0, calc.BodyFatFromBMI(calc.BMI(70, 175), calc.GenderMale, 25))
	assert.Equal(t, 27.9, calc.BodyFatFromBMI(calc.BMI(60, 165), calc.GenderFemale, 30))

	// always clamped, whatever the input
	for _, gender := range []calc.Gender{calc.GenderMale, calc.GenderFemale} {
		for _, bmi := range []float64{0, 5, 18.5, 40, 120, 1e6} {
			for _, age := range []float64{0, 13, 50, 120, 1e6} {
				bf := calc.BodyFatFromBMI(bmi, gender, age)
				assert.GreaterOrEqual(t, bf, 0.0, "bmi %v age %v", bmi, age)
				assert.LessOrEqual(t, bf, 100.0, "bmi %v age %v", bmi, age)
			}
		}
	}
	assert.Equal(t, 0.0, calc.BodyFatFromBMI(0, calc.GenderMale, 0))
	assert.Equal(t, 22.2, calc.BodyFatFromBMI(0, calc.GenderFemale, 120))
	assert.Equal(t, 100.0, calc.BodyFatFromBMI(200, calc.GenderFemale, 120))
}

func TestLeanMass(t *testing.T) {
	assert.InDelta(t, 61.6, calc.LeanMass(77, 20), 1e-9)
	assert.Equal(t, 80.0, calc.LeanMass(80, 0))
}

func TestEnergyExpenditure(t *testing.T) {
	assert.Equal(t, 1673.75, calc.BasalMetabolicRate(calc.GenderMale, 70, 175, 25))
	assert.Equal(t, 1507.75, calc.BasalMetabolicRate(calc.GenderFemale, 70, 175, 25))
	assert.InDelta(t, 2594.3125, calc.TotalDailyEnergyExpenditure(calc.GenderMale, 70, 175, 25, calc.ActivityModerate), 1e-9)
	assert.InDelta(t, 1673.75*1.2, calc.TotalDailyEnergyExpenditure(calc.GenderMale, 70, 175, 25, calc.ActivitySedentary), 1e-9)
}

func TestActivityLevel(t *testing.T) {
	for _, level := range calc.ActivityLevels {
		assert.True(t, level.IsValid())
		assert.NotContains(t, level.Name(), "custom")
	}
	assert.False(t, calc.ActivityLevel(1.4).IsValid())
	assert.Equal(t, "custom(1.4)", calc.ActivityLevel(1.4).Name())
	assert.Equal(t, "moderate", calc.ActivityModerate.Name())
}

func TestIdealMeasurements(t *testing.T) {
	assert.InDelta(t, 70.46, calc.IdealWeight(calc.GenderMale, 175), 0.01)
	assert.InDelta(t, 65.96, calc.IdealWeight(calc.GenderFemale, 175), 0.01)
	assert.Equal(t, 50.0, calc.IdealWeight(calc.GenderMale, 152.4))

	assert.InDelta(t, 64.75, calc.IdealWaist(calc.GenderMale, 175), 1e-9)
	assert.InDelta(t, 59.4, calc.IdealWaist(calc.GenderFemale, 165), 1e-9)

	assert.InDelta(t, 64.75*0.37, calc.IdealNeck(calc.GenderMale, 64.75), 1e-9)
	assert.InDelta(t, 59.4*0.35, calc.IdealNeck(calc.GenderFemale, 59.4), 1e-9)

	assert.InDelta(t, 21.875, calc.IdealArm(calc.GenderMale, 175), 1e-9)
	assert.InDelta(t, 18.15, calc.IdealArm(calc.GenderFemale, 165), 1e-9)
	assert.InDelta(t, 50.75, calc.IdealThigh(calc.GenderMale, 175), 1e-9)
	assert.InDelta(t, 46.2, calc.IdealThigh(calc.GenderFemale, 165), 1e-9)
	assert.InDelta(t, 24.5, calc.IdealCalf(calc.GenderMale, 175), 1e-9)
	assert.InDelta(t, 21.945, calc.IdealCalf(calc.GenderFemale, 165), 1e-9)
}

func TestIdealHip_FemaleOnly(t *testing.T) {
	hip, ok := calc.IdealHip(calc.GenderFemale, 165)
	require.True(t, ok)
	assert.InDelta(t, 74.25, hip, 1e-9)

	hip, ok = calc.IdealHip(calc.GenderMale, 175)
	assert.False(t, ok)
	assert.Zero(t, hip)
}

func TestIdealBodyFatRange(t *testing.T) {
	assert.Equal(t, calc.Range{Min: 6, Max: 17}, calc.IdealBodyFatRange(calc.GenderMale, 15))
	assert.Equal(t, calc.Range{Min: 8, Max: 18}, calc.IdealBodyFatRange(calc.GenderMale, 20))
	assert.Equal(t, calc.Range{Min: 13, Max: 24}, calc.IdealBodyFatRange(calc.GenderMale, 50))
	assert.Equal(t, calc.Range{Min: 18, Max: 29}, calc.IdealBodyFatRange(calc.GenderFemale, 39))
	assert.Equal(t, calc.Range{Min: 20, Max: 32}, calc.IdealBodyFatRange(calc.GenderFemale, 120))

	// bands never shrink with age
	for _, gender := range []calc.Gender{calc.GenderMale, calc.GenderFemale} {
		prev := calc.IdealBodyFatRange(gender, 0)
		for age := 1.0; age <= 120; age++ {
			current := calc.IdealBodyFatRange(gender, age)
			assert.GreaterOrEqual(t, current.Min, prev.Min, "%s age %v", gender, age)
			assert.GreaterOrEqual(t, current.Max, prev.Max, "%s age %v", gender, age)
			prev = current
		}
	}
}

func TestRange(t *testing.T) {
	r := calc.Range{Min: 8, Max: 18}
	assert.True(t, r.Contains(8))
	assert.True(t, r.Contains(18))
	assert.False(t, r.Contains(18.1))
	assert.Equal(t, 13.0, r.Midpoint())
}

func TestWeightGap(t *testing.T) {
	gap := calc.WeightGap(80, 70.46)
	assert.Equal(t, 9.5, gap.Difference)
	assert.Equal(t, 9.5, gap.NeedsToChange)
	assert.True(t, gap.IsOverweight)
	assert.False(t, gap.IsUnderweight)
	assert.Equal(t, calc.WeightAboveIdeal, gap.Status)

	gap = calc.WeightGap(60, 70.46)
	assert.Equal(t, -10.5, gap.Difference)
	assert.Equal(t, 10.5, gap.NeedsToChange)
	assert.Equal(t, calc.WeightBelowIdeal, gap.Status)

	gap = calc.WeightGap(71.5, 70.46)
	assert.Equal(t, calc.WeightWithinIdeal, gap.Status)
	assert.True(t, gap.IsOverweight)
}

func TestMeasurementGap(t *testing.T) {
	gap, ok := calc.MeasurementGap(85, 64.75)
	require.True(t, ok)
	assert.Equal(t, 85.0, gap.Current)
	assert.Equal(t, 64.8, gap.Ideal)
	assert.Equal(t, 20.3, gap.Difference)
	assert.Equal(t, 20.3, gap.NeedsToChange)
	assert.True(t, gap.IsAboveIdeal)
	assert.False(t, gap.IsBelowIdeal)
	assert.Equal(t, 31.3, gap.PercentageDifference)

	_, ok = calc.MeasurementGap(85, 0)
	assert.False(t, ok)

	gap, ok = calc.MeasurementGap(30, 30)
	require.True(t, ok)
	assert.False(t, gap.IsAboveIdeal || gap.IsBelowIdeal)
	assert.False(t, math.Signbit(gap.Difference))
}
