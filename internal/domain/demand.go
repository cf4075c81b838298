package domain

import (
	"github.com/shopspring/decimal"
)

// LoanTerms describes the loan bucket a purchase price falls into.
type LoanTerms struct {
	LoanType    string          `json:"loan_type"` // "FHA" or "Conventional"
	Rate        decimal.Decimal `json:"rate"`
	DownPayment decimal.Decimal `json:"down_payment"`
}

// AffordabilityResult is the outcome of the affordability test for one
// income at one rate. Derived, never persisted.
type AffordabilityResult struct {
	Income        decimal.Decimal `json:"income"`
	Rate          decimal.Decimal `json:"rate"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	MaxPrice      decimal.Decimal `json:"max_price"`
	LoanType      string          `json:"loan_type"`
	Products      []string        `json:"products"` // names of reachable products, display order
}

// CanAfford reports whether the named product is in the reachable set.
func (ar *AffordabilityResult) CanAfford(product string) bool {
	for _, p := range ar.Products {
		if p == product {
			return true
		}
	}
	return false
}

// ProductDemand is one product's slice of a demand summary. Counts are
// fractional because household weights are fractional. Percentage is of the
// total household count; products overlap, so percentages need not sum
// to 100.
type ProductDemand struct {
	Product    string          `json:"product"`
	Count      decimal.Decimal `json:"count"`
	Percentage decimal.Decimal `json:"percentage"`
}

// DemandSummary is the per-product demand for one employer (or an aggregate)
// under one scenario.
type DemandSummary struct {
	Employer        string          `json:"employer"`
	Scenario        Scenario        `json:"scenario"`
	TotalHouseholds decimal.Decimal `json:"total_households"`
	Products        []ProductDemand `json:"products"`
}

// ProductCount returns the demand count for the named product, zero if the
// product is absent.
func (ds *DemandSummary) ProductCount(product string) decimal.Decimal {
	for _, pd := range ds.Products {
		if pd.Product == product {
			return pd.Count
		}
	}
	return decimal.Zero
}
