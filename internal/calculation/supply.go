package calculation

import (
	"github.com/techridge/demand/internal/domain"
)

// SupplyByYear expands the supply configuration into per-product,
// per-year rows: all of a product's units are available from its first
// delivery year onward and none before.
func SupplyByYear(cfg *domain.SupplyConfig, years []int) []domain.SupplyRow {
	if cfg == nil {
		return nil
	}
	rows := make([]domain.SupplyRow, 0, len(cfg.Products)*len(years))
	for i := range cfg.Products {
		sp := &cfg.Products[i]
		for _, year := range years {
			rows = append(rows, domain.SupplyRow{
				Product: sp.Name,
				Year:    year,
				Units:   sp.UnitsInYear(year),
			})
		}
	}
	return rows
}
