package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/techridge/demand/internal/domain"
)

// HouseholdVariant is one weighted household income derived from a role:
// the role's individual income scaled by an archetype multiplier, carrying
// that archetype's share of the role's headcount.
type HouseholdVariant struct {
	Type   domain.HouseholdType
	Income decimal.Decimal
	Count  decimal.Decimal
}

// ExpandHousehold expands an individual income into the role's household
// variants. Zero-weight archetypes are dropped. The variants' counts sum to
// roleCount as long as the role's split weights sum to 1.0.
func ExpandHousehold(role *domain.Role, individualIncome, roleCount decimal.Decimal) []HouseholdVariant {
	variants := make([]HouseholdVariant, 0, 3)
	for _, ht := range domain.HouseholdTypes() {
		weight := role.HouseholdSplit.Weight(ht)
		if weight.Sign() <= 0 {
			continue
		}
		variants = append(variants, HouseholdVariant{
			Type:   ht,
			Income: individualIncome.Mul(ht.Multiplier()),
			Count:  roleCount.Mul(weight),
		})
	}
	return variants
}
