package delta_test

import (
	"testing"

	"github.com/2beens/bodystats/internal/bodystats/delta"
	"github.com/2beens/bodystats/pkg"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCompare(t *testing.T) {
	d := delta.Compare(76, 80)
	require.NotNil(t, d)
	assert.Equal(t, -4.0, d.Difference)
	assert.Equal(t, -5.0, d.Percentage)
	assert.False(t, d.IsGain)

	d = delta.Compare(22.5, 21)
	require.NotNil(t, d)
	assert.Equal(t, 1.5, d.Difference)
	assert.Equal(t, 7.14, d.Percentage)
	assert.Equal(t, 7.1, d.DisplayPercentage())
	assert.True(t, d.IsGain)
}

func TestCompare_SameValue(t *testing.T) {
	faker := gofakeit.New(42)
	for i := 0; i < 100; i++ {
		x := faker.Float64Range(0.1, 300)
		d := delta.Compare(x, x)
		require.NotNil(t, d, "x = %v", x)
		assert.Equal(t, delta.Delta{}, *d, "x = %v", x)
	}
}

func TestCompare_UndefinedBase(t *testing.T) {
	assert.Nil(t, delta.Compare(5, 0))
	assert.Nil(t, delta.CompareOptional(pkg.Float64Ptr(5), nil))
	assert.Nil(t, delta.CompareOptional(nil, pkg.Float64Ptr(5)))
	assert.Nil(t, delta.CompareOptional(pkg.Float64Ptr(5), pkg.Float64Ptr(0)))

	d := delta.CompareOptional(pkg.Float64Ptr(90), pkg.Float64Ptr(85))
	require.NotNil(t, d)
	assert.Equal(t, 5.0, d.Difference)
	assert.Equal(t, 5.9, d.DisplayPercentage())
}
