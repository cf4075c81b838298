package domain

import (
	"github.com/shopspring/decimal"
)

// HouseholdType identifies one of the three fixed household archetypes used
// to approximate household income from an individual income.
type HouseholdType string

const (
	// HouseholdSingle is a single-earner household.
	HouseholdSingle HouseholdType = "H1_single"
	// HouseholdDualModerate is a dual-earner household with a
	// moderate-earning partner.
	HouseholdDualModerate HouseholdType = "H2_dual_moderate"
	// HouseholdDualPeer is a dual-earner household with a peer-earning
	// partner.
	HouseholdDualPeer HouseholdType = "H3_dual_peer"
)

// HouseholdTypes lists the archetypes in canonical order.
func HouseholdTypes() []HouseholdType {
	return []HouseholdType{HouseholdSingle, HouseholdDualModerate, HouseholdDualPeer}
}

// Multiplier returns the fixed income multiplier for the archetype: the
// individual income is scaled by it to approximate total household income.
func (ht HouseholdType) Multiplier() decimal.Decimal {
	switch ht {
	case HouseholdSingle:
		return decimal.NewFromFloat(1.0)
	case HouseholdDualModerate:
		return decimal.NewFromFloat(1.7)
	case HouseholdDualPeer:
		return decimal.NewFromFloat(2.0)
	}
	return decimal.Zero
}
