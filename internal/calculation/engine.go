package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/techridge/demand/internal/domain"
)

// AggregateName labels demand summaries rolled up across all employers.
const AggregateName = "Techridge"

// Engine is the demand aggregation engine. It is stateless beyond its
// immutable configuration; every scenario parameter is passed explicitly, so
// concurrent calls with different scenarios are safe.
type Engine struct {
	Mortgage   *MortgageCalculator
	GrowthRate decimal.Decimal
}

// NewEngine creates an engine from lending assumptions and a product table.
func NewEngine(assumptions domain.LendingAssumptions, products []domain.Product) *Engine {
	return &Engine{
		Mortgage:   NewMortgageCalculator(assumptions, products),
		GrowthRate: assumptions.IncomeGrowthRate,
	}
}

// NewDefaultEngine creates an engine with the standard assumptions and
// product table.
func NewDefaultEngine() *Engine {
	return NewEngine(domain.DefaultAssumptions(), domain.DefaultProducts())
}

// BandCounts holds one weighted household count per band, aligned with the
// band schedule. Every band is present, zero-filled if empty.
type BandCounts []decimal.Decimal

// NewBandCounts returns a zero-filled count vector over the band schedule.
func NewBandCounts() BandCounts {
	counts := make(BandCounts, len(bandSchedule))
	for i := range counts {
		counts[i] = decimal.Zero
	}
	return counts
}

// Total sums the counts across all bands.
func (bc BandCounts) Total() decimal.Decimal {
	total := decimal.Zero
	for _, c := range bc {
		total = total.Add(c)
	}
	return total
}

// Add accumulates another count vector into this one.
func (bc BandCounts) Add(other BandCounts) {
	for i := range bc {
		bc[i] = bc[i].Add(other[i])
	}
}

// ComputeHouseholdBandCounts expands an employer's roles into weighted
// household incomes for the target year and accumulates them into per-band
// counts. Role counts are scaled by the employer's projection anchors,
// incomes are grown to the target year and split across household
// archetypes, and each variant is banded independently.
func (eng *Engine) ComputeHouseholdBandCounts(employer *domain.Employer, targetYear int, basis domain.IncomeBasis) BandCounts {
	yearsElapsed := targetYear - employer.BaseYear
	scale := employer.ScaleFactor(targetYear)

	counts := NewBandCounts()
	for i := range employer.Roles {
		role := &employer.Roles[i]
		scaledCount := role.Count.Mul(scale)
		projected := ProjectIncome(role.Income(basis), eng.GrowthRate, yearsElapsed)
		for _, variant := range ExpandHousehold(role, projected, scaledCount) {
			band := BandOf(variant.Income)
			counts[band.Index] = counts[band.Index].Add(variant.Count)
		}
	}
	return counts
}

// SummarizeDemandByProduct joins band counts against the lookup table at the
// given rate and totals the households that can reach each product. Product
// membership tests are independent, so the per-product counts can overlap
// and their sum may exceed the total household count.
func (eng *Engine) SummarizeDemandByProduct(counts BandCounts, table *LookupTable, rate decimal.Decimal) (*domain.DemandSummary, error) {
	productTotals := make(map[string]decimal.Decimal, len(eng.Mortgage.Products))
	for _, p := range eng.Mortgage.Products {
		productTotals[p.Name] = decimal.Zero
	}

	for i, count := range counts {
		if count.IsZero() {
			continue
		}
		result, err := table.Get(bandSchedule[i], rate)
		if err != nil {
			return nil, err
		}
		for _, name := range result.Products {
			productTotals[name] = productTotals[name].Add(count)
		}
	}

	total := counts.Total()
	summary := &domain.DemandSummary{
		TotalHouseholds: total,
		Products:        make([]domain.ProductDemand, 0, len(eng.Mortgage.Products)),
	}
	for _, p := range eng.Mortgage.Products {
		summary.Products = append(summary.Products, domain.ProductDemand{
			Product:    p.Name,
			Count:      productTotals[p.Name],
			Percentage: percentageOf(productTotals[p.Name], total),
		})
	}
	return summary, nil
}

// EmployerDemand computes the full pipeline for one employer under one
// scenario.
func (eng *Engine) EmployerDemand(employer *domain.Employer, scenario domain.Scenario, table *LookupTable) (*domain.DemandSummary, error) {
	counts := eng.ComputeHouseholdBandCounts(employer, scenario.TargetYear, scenario.IncomeBasis)
	summary, err := eng.SummarizeDemandByProduct(counts, table, scenario.Rate)
	if err != nil {
		return nil, fmt.Errorf("demand for %s: %w", employer.Name, err)
	}
	summary.Employer = employer.Name
	summary.Scenario = scenario
	return summary, nil
}

// AggregateDemand sums per-product demand across all employers before
// recomputing percentages. Products are the terminal output, so no
// band-level merging is needed at this level.
func (eng *Engine) AggregateDemand(employers []domain.Employer, scenario domain.Scenario, table *LookupTable) (*domain.DemandSummary, error) {
	total := decimal.Zero
	productTotals := make(map[string]decimal.Decimal, len(eng.Mortgage.Products))
	for _, p := range eng.Mortgage.Products {
		productTotals[p.Name] = decimal.Zero
	}

	for i := range employers {
		summary, err := eng.EmployerDemand(&employers[i], scenario, table)
		if err != nil {
			return nil, err
		}
		total = total.Add(summary.TotalHouseholds)
		for _, pd := range summary.Products {
			productTotals[pd.Product] = productTotals[pd.Product].Add(pd.Count)
		}
	}

	aggregate := &domain.DemandSummary{
		Employer:        AggregateName,
		Scenario:        scenario,
		TotalHouseholds: total,
		Products:        make([]domain.ProductDemand, 0, len(eng.Mortgage.Products)),
	}
	for _, p := range eng.Mortgage.Products {
		aggregate.Products = append(aggregate.Products, domain.ProductDemand{
			Product:    p.Name,
			Count:      productTotals[p.Name],
			Percentage: percentageOf(productTotals[p.Name], total),
		})
	}
	return aggregate, nil
}

// percentageOf returns count as a percentage of total, rounded to one
// decimal place, or zero when the total is zero.
func percentageOf(count, total decimal.Decimal) decimal.Decimal {
	if total.Sign() <= 0 {
		return decimal.Zero
	}
	return count.Div(total).Mul(oneHundred).Round(1)
}
