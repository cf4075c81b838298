package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/techridge/demand/internal/domain"
)

// Overview builds the development-wide demand-versus-supply report: one
// aggregate demand summary per (year, basis, rate scenario), joined with the
// supply schedule. The lookup table is built once for the supplied rate set
// and reused across every cell.
func (eng *Engine) Overview(employers []domain.Employer, years []int, bases []domain.IncomeBasis, rateScenarios []domain.RateScenario, supply *domain.SupplyConfig) (*domain.OverviewReport, error) {
	if len(employers) == 0 {
		return nil, fmt.Errorf("no employers supplied")
	}

	rates := make([]decimal.Decimal, 0, len(rateScenarios))
	for _, rs := range rateScenarios {
		rates = append(rates, rs.Rate)
	}
	table, err := eng.Mortgage.BuildLookup(rates)
	if err != nil {
		return nil, fmt.Errorf("building lookup table: %w", err)
	}

	report := &domain.OverviewReport{
		Years: years,
		Bases: bases,
		Rates: rateScenarios,
	}
	for _, year := range years {
		for _, basis := range bases {
			for _, rs := range rateScenarios {
				scenario := domain.Scenario{TargetYear: year, IncomeBasis: basis, Rate: rs.Rate}
				summary, err := eng.AggregateDemand(employers, scenario, table)
				if err != nil {
					return nil, err
				}
				report.Demand = append(report.Demand, *summary)
			}
		}
	}
	report.Supply = SupplyByYear(supply, years)
	return report, nil
}
