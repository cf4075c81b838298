package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techridge/demand/internal/domain"
)

func testEmployer() domain.Employer {
	return domain.Employer{
		Name:          "busybusy / AlignOps",
		BaseYear:      2025,
		EmployeeCount: decimal.NewFromInt(100),
		Roles: []domain.Role{
			{
				Title:      "AE (Mid-Market)",
				Count:      decimal.NewFromInt(100),
				BaseSalary: decimal.NewFromInt(80000),
				OTE:        decimal.NewFromInt(95000),
				HouseholdSplit: domain.HouseholdSplit{
					Single:       decimal.NewFromFloat(0.6),
					DualModerate: decimal.NewFromFloat(0.3),
					DualPeer:     decimal.NewFromFloat(0.1),
				},
			},
		},
	}
}

func TestNewDefaultEngine(t *testing.T) {
	engine := NewDefaultEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Mortgage, "Should initialize mortgage calculator")
	assert.True(t, engine.GrowthRate.Equal(decimal.NewFromFloat(0.04)),
		"Should pick up the default growth rate")
}

func TestComputeHouseholdBandCounts_BaseYear(t *testing.T) {
	engine := NewDefaultEngine()
	employer := testEmployer()

	counts := engine.ComputeHouseholdBandCounts(&employer, 2025, domain.IncomeBasisBase)

	// Single earners at 80000 land in [80k,90k), moderate duals at 136000
	// in [130k,140k), peer duals at 160000 in [160k,170k).
	assert.True(t, counts[BandOf(decimal.NewFromInt(80000)).Index].Equal(decimal.NewFromInt(60)))
	assert.True(t, counts[BandOf(decimal.NewFromInt(136000)).Index].Equal(decimal.NewFromInt(30)))
	assert.True(t, counts[BandOf(decimal.NewFromInt(160000)).Index].Equal(decimal.NewFromInt(10)))

	assert.True(t, counts.Total().Equal(decimal.NewFromInt(100)),
		"band counts should sum to the role count, got %s", counts.Total())
}

func TestComputeHouseholdBandCounts_OTEBasis(t *testing.T) {
	engine := NewDefaultEngine()
	employer := testEmployer()

	counts := engine.ComputeHouseholdBandCounts(&employer, 2025, domain.IncomeBasisOTE)

	// Single earners at the 95000 OTE land in [90k,100k).
	assert.True(t, counts[BandOf(decimal.NewFromInt(95000)).Index].Equal(decimal.NewFromInt(60)))
	assert.True(t, counts.Total().Equal(decimal.NewFromInt(100)))
}

func TestComputeHouseholdBandCounts_ProjectedYear(t *testing.T) {
	engine := NewDefaultEngine()
	employer := testEmployer()

	counts := engine.ComputeHouseholdBandCounts(&employer, 2027, domain.IncomeBasisBase)

	// Incomes grow 4%/year: 80000 -> 86528 after two years, still in
	// [80k,90k). Headcount is unscaled without matching anchors.
	assert.True(t, counts[BandOf(decimal.NewFromInt(86528)).Index].Equal(decimal.NewFromInt(60)))
	assert.True(t, counts.Total().Equal(decimal.NewFromInt(100)))
}

func TestComputeHouseholdBandCounts_ScalesWithAnchors(t *testing.T) {
	engine := NewDefaultEngine()
	employer := testEmployer()
	employer.ProjectionYears = []domain.ProjectionAnchor{
		{Year: 2025, EmployeeCount: decimal.NewFromInt(100)},
		{Year: 2028, EmployeeCount: decimal.NewFromInt(150)},
	}

	counts := engine.ComputeHouseholdBandCounts(&employer, 2028, domain.IncomeBasisBase)
	assert.True(t, counts.Total().Equal(decimal.NewFromInt(150)),
		"headcount should scale by the anchor ratio, got %s", counts.Total())

	// A target year without an anchor falls back to scale 1.0; anchors are
	// not interpolated.
	counts = engine.ComputeHouseholdBandCounts(&employer, 2027, domain.IncomeBasisBase)
	assert.True(t, counts.Total().Equal(decimal.NewFromInt(100)))
}

func TestSummarizeDemandByProduct_EndToEnd(t *testing.T) {
	engine := NewDefaultEngine()
	employer := testEmployer()
	rate := decimal.NewFromFloat(0.0615)

	table, err := engine.Mortgage.BuildLookup([]decimal.Decimal{rate})
	require.NoError(t, err)

	counts := engine.ComputeHouseholdBandCounts(&employer, 2025, domain.IncomeBasisBase)
	summary, err := engine.SummarizeDemandByProduct(counts, table, rate)
	require.NoError(t, err)

	assert.True(t, summary.TotalHouseholds.Equal(decimal.NewFromInt(100)))

	// Band representatives at 6.15%: 85k reaches apartments + condos; 135k
	// and 165k add Blackridge; nothing reaches townhouses.
	assert.True(t, summary.ProductCount(domain.ProductApartments).Equal(decimal.NewFromInt(100)))
	assert.True(t, summary.ProductCount(domain.ProductCondos).Equal(decimal.NewFromInt(100)))
	assert.True(t, summary.ProductCount(domain.ProductBlackridge).Equal(decimal.NewFromInt(40)))
	assert.True(t, summary.ProductCount(domain.ProductTownhouse).IsZero())

	// Overlapping membership means product counts exceed the household
	// total; that is intentional.
	sum := decimal.Zero
	for _, pd := range summary.Products {
		sum = sum.Add(pd.Count)
	}
	assert.True(t, sum.GreaterThan(summary.TotalHouseholds))

	for _, pd := range summary.Products {
		switch pd.Product {
		case domain.ProductApartments, domain.ProductCondos:
			assert.True(t, pd.Percentage.Equal(decimal.NewFromInt(100)))
		case domain.ProductBlackridge:
			assert.True(t, pd.Percentage.Equal(decimal.NewFromInt(40)))
		case domain.ProductTownhouse:
			assert.True(t, pd.Percentage.IsZero())
		}
	}
}

func TestSummarizeDemandByProduct_LookupMissPropagates(t *testing.T) {
	engine := NewDefaultEngine()
	employer := testEmployer()

	table, err := engine.Mortgage.BuildLookup([]decimal.Decimal{decimal.NewFromFloat(0.0615)})
	require.NoError(t, err)

	counts := engine.ComputeHouseholdBandCounts(&employer, 2025, domain.IncomeBasisBase)
	_, err = engine.SummarizeDemandByProduct(counts, table, decimal.NewFromFloat(0.0645))
	assert.Error(t, err, "querying a rate outside the table must error")
}

func TestSummarizeDemandByProduct_EmptyCounts(t *testing.T) {
	engine := NewDefaultEngine()
	rate := decimal.NewFromFloat(0.0615)

	table, err := engine.Mortgage.BuildLookup([]decimal.Decimal{rate})
	require.NoError(t, err)

	summary, err := engine.SummarizeDemandByProduct(NewBandCounts(), table, rate)
	require.NoError(t, err)

	assert.True(t, summary.TotalHouseholds.IsZero())
	for _, pd := range summary.Products {
		assert.True(t, pd.Count.IsZero())
		assert.True(t, pd.Percentage.IsZero(), "zero total must yield zero percentages")
	}
}

func TestAggregateDemand_SumsEmployers(t *testing.T) {
	engine := NewDefaultEngine()
	first := testEmployer()
	second := testEmployer()
	second.Name = "Vasion"

	scenario := domain.Scenario{
		TargetYear:  2025,
		IncomeBasis: domain.IncomeBasisBase,
		Rate:        decimal.NewFromFloat(0.0615),
	}
	table, err := engine.Mortgage.BuildLookup([]decimal.Decimal{scenario.Rate})
	require.NoError(t, err)

	aggregate, err := engine.AggregateDemand([]domain.Employer{first, second}, scenario, table)
	require.NoError(t, err)

	assert.Equal(t, AggregateName, aggregate.Employer)
	assert.True(t, aggregate.TotalHouseholds.Equal(decimal.NewFromInt(200)))
	assert.True(t, aggregate.ProductCount(domain.ProductBlackridge).Equal(decimal.NewFromInt(80)))
}

func TestOverview_Shape(t *testing.T) {
	engine := NewDefaultEngine()
	employer := testEmployer()
	supply := &domain.SupplyConfig{
		Products: []domain.SupplyProduct{
			{Name: domain.ProductApartments, Units: decimal.NewFromInt(200), FirstDeliveryYear: 2026},
		},
	}

	years := []int{2025, 2026}
	bases := []domain.IncomeBasis{domain.IncomeBasisBase}
	report, err := engine.Overview([]domain.Employer{employer}, years, bases, domain.DefaultRateScenarios(), supply)
	require.NoError(t, err)

	assert.Len(t, report.Demand, len(years)*len(bases)*len(domain.DefaultRateScenarios()))
	assert.Len(t, report.Supply, 2)
	assert.True(t, report.Supply[0].Units.IsZero(), "no supply before first delivery year")
	assert.True(t, report.Supply[1].Units.Equal(decimal.NewFromInt(200)))

	for _, summary := range report.Demand {
		assert.Equal(t, AggregateName, summary.Employer)
	}
}

func TestOverview_NoEmployers(t *testing.T) {
	engine := NewDefaultEngine()

	_, err := engine.Overview(nil, []int{2025}, []domain.IncomeBasis{domain.IncomeBasisBase},
		domain.DefaultRateScenarios(), nil)
	assert.Error(t, err)
}
