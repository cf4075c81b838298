package domain

import (
	"github.com/shopspring/decimal"
)

// SupplyRow is the available supply for one product in one year.
type SupplyRow struct {
	Product string          `json:"product"`
	Year    int             `json:"year"`
	Units   decimal.Decimal `json:"units"`
}

// OverviewReport is the development-wide demand-versus-supply view consumed
// by frontends: aggregate demand per (year, basis, rate) plus the supply
// schedule per (product, year).
type OverviewReport struct {
	Years  []int           `json:"years"`
	Bases  []IncomeBasis   `json:"bases"`
	Rates  []RateScenario  `json:"rates"`
	Demand []DemandSummary `json:"demand_by_product"`
	Supply []SupplyRow     `json:"supply_by_product"`
}
