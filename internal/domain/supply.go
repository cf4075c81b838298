package domain

import (
	"github.com/shopspring/decimal"
)

// SupplyProduct describes planned supply for one housing product: a unit
// count that becomes available in its first delivery year and stays
// available thereafter.
type SupplyProduct struct {
	Name              string          `yaml:"name" json:"name"`
	Units             decimal.Decimal `yaml:"units" json:"units"`
	FirstDeliveryYear int             `yaml:"first_delivery_year" json:"first_delivery_year"`
}

// SupplyConfig is the top-level supply configuration.
type SupplyConfig struct {
	Products []SupplyProduct `yaml:"products" json:"products"`
}

// UnitsInYear returns the units available in the given year (all units from
// the first delivery year onward, zero before).
func (sp *SupplyProduct) UnitsInYear(year int) decimal.Decimal {
	if year >= sp.FirstDeliveryYear {
		return sp.Units
	}
	return decimal.Zero
}
