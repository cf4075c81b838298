package calculation

import (
	"github.com/shopspring/decimal"
)

// ProjectIncome applies compound annual growth to a base income.
// yearsElapsed may be zero (identity) or negative (discounting backward);
// the formula is symmetric and there is no special case for either.
// The result keeps full precision; rounding happens once at output time.
func ProjectIncome(baseIncome, growthRate decimal.Decimal, yearsElapsed int) decimal.Decimal {
	if yearsElapsed == 0 {
		return baseIncome
	}
	factor := decimal.NewFromInt(1).Add(growthRate).Pow(decimal.NewFromInt(int64(yearsElapsed)))
	return baseIncome.Mul(factor)
}
