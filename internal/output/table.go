package output

import (
	"fmt"
	"strings"

	"github.com/techridge/demand/internal/domain"
)

// TableFormatter formats demand summaries as console tables.
type TableFormatter struct{}

// Format renders one block per demand summary: header with the scenario,
// then a product/count/percentage table. Percentages can sum past 100
// because a household may reach several products.
func (tf *TableFormatter) Format(summaries []domain.DemandSummary) string {
	var sb strings.Builder

	nameWidth := 14
	numWidth := 14

	for i, summary := range summaries {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s — %d, %s income, rate %s%%\n",
			summary.Employer,
			summary.Scenario.TargetYear,
			summary.Scenario.IncomeBasis,
			ratePercent(summary.Scenario.Rate)))
		sb.WriteString(strings.Repeat("=", 60) + "\n")
		sb.WriteString(fmt.Sprintf("Total households: %s\n", summary.TotalHouseholds.StringFixed(1)))
		sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n",
			nameWidth, "Product",
			numWidth, "Households",
			numWidth, "% of Total"))
		sb.WriteString(strings.Repeat("-", 60) + "\n")
		for _, pd := range summary.Products {
			sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n",
				nameWidth, pd.Product,
				numWidth, pd.Count.StringFixed(1),
				numWidth, pd.Percentage.StringFixed(1)+"%"))
		}
	}

	return sb.String()
}

// FormatAffordability renders affordability results, one row per income.
func (tf *TableFormatter) FormatAffordability(results []*domain.AffordabilityResult) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-12s %-8s %-14s %-14s %-13s %s\n",
		"Income", "Rate", "Mo. Budget", "Max Price", "Loan Type", "Affordable"))
	sb.WriteString(strings.Repeat("-", 90) + "\n")
	for _, r := range results {
		affordable := "none"
		if len(r.Products) > 0 {
			affordable = strings.Join(r.Products, ", ")
		}
		sb.WriteString(fmt.Sprintf("$%-11s %-8s $%-13s $%-13s %-13s %s\n",
			r.Income.StringFixed(0),
			ratePercent(r.Rate)+"%",
			r.MonthlyBudget.StringFixed(0),
			r.MaxPrice.StringFixed(0),
			r.LoanType,
			affordable))
	}

	return sb.String()
}
