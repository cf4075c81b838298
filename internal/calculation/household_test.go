package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/techridge/demand/internal/domain"
)

func TestExpandHousehold_Multipliers(t *testing.T) {
	role := &domain.Role{
		Title: "AE (Mid-Market)",
		HouseholdSplit: domain.HouseholdSplit{
			Single:       decimal.NewFromFloat(0.6),
			DualModerate: decimal.NewFromFloat(0.3),
			DualPeer:     decimal.NewFromFloat(0.1),
		},
	}

	variants := ExpandHousehold(role, decimal.NewFromInt(80000), decimal.NewFromInt(100))
	assert.Len(t, variants, 3)

	assert.Equal(t, domain.HouseholdSingle, variants[0].Type)
	assert.True(t, variants[0].Income.Equal(decimal.NewFromInt(80000)))
	assert.True(t, variants[0].Count.Equal(decimal.NewFromInt(60)))

	assert.Equal(t, domain.HouseholdDualModerate, variants[1].Type)
	assert.True(t, variants[1].Income.Equal(decimal.NewFromInt(136000)))
	assert.True(t, variants[1].Count.Equal(decimal.NewFromInt(30)))

	assert.Equal(t, domain.HouseholdDualPeer, variants[2].Type)
	assert.True(t, variants[2].Income.Equal(decimal.NewFromInt(160000)))
	assert.True(t, variants[2].Count.Equal(decimal.NewFromInt(10)))
}

func TestExpandHousehold_CountConservation(t *testing.T) {
	role := &domain.Role{
		Title: "Client Success",
		HouseholdSplit: domain.HouseholdSplit{
			Single:       decimal.NewFromFloat(0.5),
			DualModerate: decimal.NewFromFloat(0.3),
			DualPeer:     decimal.NewFromFloat(0.2),
		},
	}

	count := decimal.NewFromInt(7)
	variants := ExpandHousehold(role, decimal.NewFromInt(50000), count)

	total := decimal.Zero
	for _, v := range variants {
		total = total.Add(v.Count)
	}
	assert.True(t, total.Equal(count),
		"variant counts should sum to the role count, got %s", total)
}

func TestExpandHousehold_DropsZeroWeights(t *testing.T) {
	role := &domain.Role{
		Title: "Exec/C-Suite",
		HouseholdSplit: domain.HouseholdSplit{
			Single:   decimal.NewFromInt(1),
			DualPeer: decimal.Zero,
		},
	}

	variants := ExpandHousehold(role, decimal.NewFromInt(200000), decimal.NewFromInt(5))
	assert.Len(t, variants, 1)
	assert.Equal(t, domain.HouseholdSingle, variants[0].Type)
}
