package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLookup_CoversAllBandsAndRates(t *testing.T) {
	mc := testCalculator()
	rates := []decimal.Decimal{decimal.NewFromFloat(0.0615), decimal.NewFromFloat(0.045)}

	table, err := mc.BuildLookup(rates)
	require.NoError(t, err)

	for _, band := range Bands() {
		for _, rate := range rates {
			result, err := table.Get(band, rate)
			require.NoError(t, err, "band %s rate %s should be present", band.Name, rate)
			assert.True(t, result.Income.Equal(band.Representative()),
				"entry should be computed at the band representative")
		}
	}
}

func TestLookupTable_MissIsAnError(t *testing.T) {
	mc := testCalculator()

	table, err := mc.BuildLookup([]decimal.Decimal{decimal.NewFromFloat(0.0615)})
	require.NoError(t, err)

	// A rate the table was not built for must fail loudly: a silent zero
	// would look like genuinely zero demand.
	_, err = table.Get(Bands()[0], decimal.NewFromFloat(0.0645))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not built")
}

func TestBuildLookup_Idempotent(t *testing.T) {
	mc := testCalculator()
	rates := []decimal.Decimal{decimal.NewFromFloat(0.0615)}

	first, err := mc.BuildLookup(rates)
	require.NoError(t, err)
	second, err := mc.BuildLookup(rates)
	require.NoError(t, err)

	for _, band := range Bands() {
		a, err := first.Get(band, rates[0])
		require.NoError(t, err)
		b, err := second.Get(band, rates[0])
		require.NoError(t, err)

		assert.True(t, a.MaxPrice.Equal(b.MaxPrice), "band %s prices should match", band.Name)
		assert.Equal(t, a.Products, b.Products, "band %s product sets should match", band.Name)
	}
}

func TestBuildLookup_RepresentativeProductSets(t *testing.T) {
	mc := testCalculator()
	rate := decimal.NewFromFloat(0.0615)

	table, err := mc.BuildLookup([]decimal.Decimal{rate})
	require.NoError(t, err)

	// Low band: nothing is reachable at a 25k representative income.
	low, err := table.Get(BandOf(decimal.NewFromInt(25000)), rate)
	require.NoError(t, err)
	assert.Empty(t, low.Products)

	// Top band representative (220k) reaches everything.
	top, err := table.Get(BandOf(decimal.NewFromInt(300000)), rate)
	require.NoError(t, err)
	assert.Len(t, top.Products, 4)
}
