package domain

import (
	"github.com/shopspring/decimal"
)

// LendingAssumptions collects the financing and growth constants that
// parameterize the affordability math. They are configuration, not
// hard-coded into the algorithms.
type LendingAssumptions struct {
	FHARate          decimal.Decimal `yaml:"fha_rate" json:"fha_rate"`
	ConventionalRate decimal.Decimal `yaml:"conventional_rate" json:"conventional_rate"`
	DTILimit         decimal.Decimal `yaml:"dti_limit" json:"dti_limit"`
	FHALoanLimit     decimal.Decimal `yaml:"fha_loan_limit" json:"fha_loan_limit"`
	FHADownPayment   decimal.Decimal `yaml:"fha_down_payment" json:"fha_down_payment"`
	ConvDownPayment  decimal.Decimal `yaml:"conv_down_payment" json:"conv_down_payment"`
	TaxInsHOARate    decimal.Decimal `yaml:"tax_ins_hoa_rate" json:"tax_ins_hoa_rate"` // annual, on full price
	RentShare        decimal.Decimal `yaml:"rent_share" json:"rent_share"`             // of gross monthly income
	IncomeGrowthRate decimal.Decimal `yaml:"income_growth_rate" json:"income_growth_rate"`

	// TownhouseIncomeFloor is a hard income guardrail for the townhouse
	// product: below it a household is never counted as a townhouse buyer,
	// regardless of what the mortgage math says.
	TownhouseIncomeFloor decimal.Decimal `yaml:"townhouse_income_floor" json:"townhouse_income_floor"`
}

// DefaultAssumptions returns the model's standard constants.
func DefaultAssumptions() LendingAssumptions {
	return LendingAssumptions{
		FHARate:              decimal.NewFromFloat(0.0615),
		ConventionalRate:     decimal.NewFromFloat(0.0645),
		DTILimit:             decimal.NewFromFloat(0.45),
		FHALoanLimit:         decimal.NewFromInt(680000),
		FHADownPayment:       decimal.NewFromFloat(0.035),
		ConvDownPayment:      decimal.NewFromFloat(0.10),
		TaxInsHOARate:        decimal.NewFromFloat(0.012),
		RentShare:            decimal.NewFromFloat(0.35),
		IncomeGrowthRate:     decimal.NewFromFloat(0.04),
		TownhouseIncomeFloor: decimal.NewFromInt(200000),
	}
}

// RateScenario is a labelled candidate interest rate.
type RateScenario struct {
	Label string          `yaml:"label" json:"label"`
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
}

// DefaultRateScenarios returns the standard rate sweep used by the lookup
// builder and sensitivity reporting.
func DefaultRateScenarios() []RateScenario {
	return []RateScenario{
		{Label: "FHA_6.15", Rate: decimal.NewFromFloat(0.0615)},
		{Label: "Conv_6.45", Rate: decimal.NewFromFloat(0.0645)},
		{Label: "Alt_5.50", Rate: decimal.NewFromFloat(0.0550)},
		{Label: "Alt_4.50", Rate: decimal.NewFromFloat(0.0450)},
	}
}
