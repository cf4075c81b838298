package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProjectIncome_Identity(t *testing.T) {
	growth := decimal.NewFromFloat(0.04)

	for _, income := range []int64{0, 40000, 80000, 250000} {
		base := decimal.NewFromInt(income)
		assert.True(t, ProjectIncome(base, growth, 0).Equal(base),
			"zero years must be the identity for %d", income)
	}
}

func TestProjectIncome_CompoundGrowth(t *testing.T) {
	growth := decimal.NewFromFloat(0.04)

	// 100000 * 1.04^2 = 108160 exactly.
	projected := ProjectIncome(decimal.NewFromInt(100000), growth, 2)
	assert.True(t, projected.Equal(decimal.NewFromInt(108160)),
		"expected 108160, got %s", projected)
}

func TestProjectIncome_NegativeYearsDiscounts(t *testing.T) {
	growth := decimal.NewFromFloat(0.04)

	// Discounting two years back inverts two years of growth.
	forward := ProjectIncome(decimal.NewFromInt(100000), growth, 2)
	back := ProjectIncome(forward, growth, -2)
	diff := back.Sub(decimal.NewFromInt(100000)).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(0.001)),
		"round trip should return the base income, got %s", back)
}
