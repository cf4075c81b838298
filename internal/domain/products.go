package domain

import (
	"github.com/shopspring/decimal"
)

// ProductKind distinguishes rental products from purchase products.
type ProductKind string

const (
	ProductRent ProductKind = "Rent"
	ProductBuy  ProductKind = "Buy"
)

// Product is one of the development's housing products. Affordability is
// tested only against MinPrice (reaching the bottom of the range counts);
// MaxPrice is informational.
type Product struct {
	Name     string          `yaml:"name" json:"name"`
	Kind     ProductKind     `yaml:"kind" json:"kind"`
	MinPrice decimal.Decimal `yaml:"min_price" json:"min_price"` // monthly rent for rentals
	MaxPrice decimal.Decimal `yaml:"max_price" json:"max_price"`
}

// Product names. Blackridge is the single-family-home neighborhood.
const (
	ProductApartments = "Apartments"
	ProductCondos     = "Condos"
	ProductBlackridge = "Blackridge"
	ProductTownhouse  = "Townhouse"
)

// DefaultProducts returns the development's fixed product table, in display
// order.
func DefaultProducts() []Product {
	return []Product{
		{Name: ProductApartments, Kind: ProductRent, MinPrice: decimal.NewFromInt(1700), MaxPrice: decimal.NewFromInt(4500)},
		{Name: ProductCondos, Kind: ProductBuy, MinPrice: decimal.NewFromInt(450000), MaxPrice: decimal.NewFromInt(650000)},
		{Name: ProductBlackridge, Kind: ProductBuy, MinPrice: decimal.NewFromInt(620000), MaxPrice: decimal.NewFromInt(680000)},
		{Name: ProductTownhouse, Kind: ProductBuy, MinPrice: decimal.NewFromInt(1100000), MaxPrice: decimal.NewFromInt(2100000)},
	}
}
