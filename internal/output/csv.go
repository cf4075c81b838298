package output

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/techridge/demand/internal/domain"
)

// CSVFormatter formats demand summaries as CSV, one row per
// (summary, product) pair.
type CSVFormatter struct{}

// Format generates CSV output for a set of demand summaries.
func (cf *CSVFormatter) Format(summaries []domain.DemandSummary) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Employer",
		"Year",
		"Income Basis",
		"Rate",
		"Total Households",
		"Product",
		"Households",
		"Percentage",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, summary := range summaries {
		for _, pd := range summary.Products {
			row := []string{
				summary.Employer,
				strconv.Itoa(summary.Scenario.TargetYear),
				string(summary.Scenario.IncomeBasis),
				summary.Scenario.Rate.String(),
				summary.TotalHouseholds.StringFixed(2),
				pd.Product,
				pd.Count.StringFixed(2),
				pd.Percentage.StringFixed(1),
			}
			if err := writer.Write(row); err != nil {
				return "", err
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ratePercent renders a decimal rate (0.0615) as a percentage string (6.15).
func ratePercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2)
}
