package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/techridge/demand/internal/domain"
)

// Loan term length is fixed at a standard 30-year mortgage.
const mortgageTermMonths = 360

var (
	twelve       = decimal.NewFromInt(12)
	oneHundred   = decimal.NewFromInt(100)
	termExponent = decimal.NewFromInt(mortgageTermMonths)
)

// MortgageCalculator converts incomes into maximum purchase prices and
// affordable product sets under a set of lending assumptions. All methods
// are pure; the calculator holds only immutable configuration.
type MortgageCalculator struct {
	Assumptions domain.LendingAssumptions
	Products    []domain.Product
}

// NewMortgageCalculator creates a calculator with the given assumptions and
// product table.
func NewMortgageCalculator(assumptions domain.LendingAssumptions, products []domain.Product) *MortgageCalculator {
	return &MortgageCalculator{Assumptions: assumptions, Products: products}
}

// mortgageFactor computes the level-payment factor for a 30-year fixed-rate
// mortgage: principal-and-interest per month per dollar borrowed. The zero
// rate is handled as the analytic limit (1/360) because the closed form
// divides by zero there.
func mortgageFactor(annualRate decimal.Decimal) decimal.Decimal {
	if annualRate.IsZero() {
		return decimal.NewFromInt(1).Div(termExponent)
	}
	monthly := annualRate.Div(twelve)
	growth := decimal.NewFromInt(1).Add(monthly).Pow(termExponent)
	return monthly.Mul(growth).Div(growth.Sub(decimal.NewFromInt(1)))
}

// MaxPurchasePrice returns the maximum price an annual income can finance at
// the given rate, down payment and DTI limit, floored to a whole dollar.
// The carrying-cost rate (tax/insurance/HOA) applies to the full price.
// Zero or negative income yields zero. A down payment of 1.0 or more is a
// caller error and is rejected.
func (mc *MortgageCalculator) MaxPurchasePrice(annualIncome, rate, downPayment, dtiLimit decimal.Decimal) (decimal.Decimal, error) {
	if downPayment.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("down payment fraction must be below 1, got %s", downPayment)
	}
	if annualIncome.Sign() <= 0 {
		return decimal.Zero, nil
	}

	maxMonthly := annualIncome.Div(twelve).Mul(dtiLimit)
	factor := mortgageFactor(rate)
	financed := decimal.NewFromInt(1).Sub(downPayment)
	denominator := financed.Mul(factor).Add(mc.Assumptions.TaxInsHOARate.Div(twelve))

	return maxMonthly.Div(denominator).Floor(), nil
}

// LoanTermsFor classifies a purchase price into a loan bucket: prices at or
// below the FHA loan limit get the FHA rate and low down payment, prices
// above it get conventional terms.
func (mc *MortgageCalculator) LoanTermsFor(price decimal.Decimal) domain.LoanTerms {
	if price.GreaterThan(mc.Assumptions.FHALoanLimit) {
		return domain.LoanTerms{
			LoanType:    "Conventional",
			Rate:        mc.Assumptions.ConventionalRate,
			DownPayment: mc.Assumptions.ConvDownPayment,
		}
	}
	return domain.LoanTerms{
		LoanType:    "FHA",
		Rate:        mc.Assumptions.FHARate,
		DownPayment: mc.Assumptions.FHADownPayment,
	}
}

// Affordability computes the maximum price and reachable product set for an
// annual income at a candidate rate. The same rate is used whether the loan
// classifies as FHA or conventional; only the down payment differs.
//
// Price resolution is deliberately two-step and non-iterative: the price is
// computed at FHA terms, and if it exceeds the FHA loan limit it is
// recomputed once at conventional terms. There is no further iteration even
// if the second price crosses back over the limit.
func (mc *MortgageCalculator) Affordability(annualIncome, rate decimal.Decimal) (*domain.AffordabilityResult, error) {
	result := &domain.AffordabilityResult{
		Income:   annualIncome,
		Rate:     rate,
		LoanType: "FHA",
	}
	if annualIncome.Sign() <= 0 {
		result.MonthlyBudget = decimal.Zero
		result.MaxPrice = decimal.Zero
		return result, nil
	}

	result.MonthlyBudget = annualIncome.Div(twelve).Mul(mc.Assumptions.DTILimit)

	price, err := mc.MaxPurchasePrice(annualIncome, rate, mc.Assumptions.FHADownPayment, mc.Assumptions.DTILimit)
	if err != nil {
		return nil, err
	}
	if price.GreaterThan(mc.Assumptions.FHALoanLimit) {
		price, err = mc.MaxPurchasePrice(annualIncome, rate, mc.Assumptions.ConvDownPayment, mc.Assumptions.DTILimit)
		if err != nil {
			return nil, err
		}
		result.LoanType = "Conventional"
	}
	result.MaxPrice = price

	monthlyGross := annualIncome.Div(twelve)
	for _, p := range mc.Products {
		if mc.canAfford(p, annualIncome, monthlyGross, price) {
			result.Products = append(result.Products, p.Name)
		}
	}
	return result, nil
}

// canAfford applies the product membership tests. Tests are independent: a
// household may qualify for several products at once.
func (mc *MortgageCalculator) canAfford(p domain.Product, annualIncome, monthlyGross, maxPrice decimal.Decimal) bool {
	if p.Kind == domain.ProductRent {
		return monthlyGross.Mul(mc.Assumptions.RentShare).GreaterThanOrEqual(p.MinPrice)
	}
	if maxPrice.LessThan(p.MinPrice) {
		return false
	}
	// Townhouse guardrail: the mortgage math alone can reach the townhouse
	// minimum at favorable rates, so a hard income floor applies on top of
	// the price test.
	if p.Name == domain.ProductTownhouse && annualIncome.LessThan(mc.Assumptions.TownhouseIncomeFloor) {
		return false
	}
	return true
}
