package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBands_Schedule(t *testing.T) {
	bands := Bands()

	assert.Len(t, bands, 23, "Should have 23 bands")
	assert.True(t, bands[0].Min.IsZero(), "Bottom band should start at zero")
	assert.True(t, bands[len(bands)-1].Unbounded, "Top band should be unbounded")
	assert.Equal(t, "220k+", bands[len(bands)-1].Name)

	// Contiguous, non-overlapping partition: each band starts where the
	// previous one ends.
	for i := 1; i < len(bands); i++ {
		assert.True(t, bands[i].Min.Equal(bands[i-1].Max),
			"Band %s should start at %s", bands[i].Name, bands[i-1].Max)
	}
}

func TestBandOf_Partition(t *testing.T) {
	bands := Bands()

	// Every boundary and interior point maps to exactly one band.
	samples := []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromFloat(9999.99),
		decimal.NewFromInt(10000),
		decimal.NewFromInt(85000),
		decimal.NewFromInt(199999),
		decimal.NewFromInt(200000),
		decimal.NewFromInt(219999),
		decimal.NewFromInt(220000),
		decimal.NewFromInt(5000000),
	}
	for _, income := range samples {
		matches := 0
		for _, b := range bands {
			if b.Contains(income) {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "income %s should match exactly one band", income)
	}

	for _, b := range bands {
		assert.True(t, BandOf(b.Min).Index == b.Index,
			"lower bound of %s should map to itself", b.Name)
	}
}

func TestBandOf_TopAndBottom(t *testing.T) {
	top := BandOf(decimal.NewFromInt(1000000))
	assert.True(t, top.Unbounded)
	assert.Equal(t, "220k+", top.Name)

	// Degenerate negative income clamps to the bottom band instead of
	// failing.
	bottom := BandOf(decimal.NewFromInt(-5))
	assert.Equal(t, 0, bottom.Index)
}

func TestBand_Representative(t *testing.T) {
	band := BandOf(decimal.NewFromInt(80000))
	assert.Equal(t, "80k-90k", band.Name)
	assert.True(t, band.Representative().Equal(decimal.NewFromInt(85000)),
		"midpoint of [80k,90k) should be 85k, got %s", band.Representative())

	top := BandOf(decimal.NewFromInt(220000))
	assert.True(t, top.Representative().Equal(decimal.NewFromInt(220000)),
		"top band representative should be its lower bound")
}
