package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// IncomeBasis selects which compensation figure a scenario uses.
type IncomeBasis string

const (
	// IncomeBasisBase uses the conservative base salary.
	IncomeBasisBase IncomeBasis = "base"
	// IncomeBasisOTE uses on-target earnings (base + typical variable comp).
	IncomeBasisOTE IncomeBasis = "ote"
)

// ParseIncomeBasis converts a string into an IncomeBasis.
func ParseIncomeBasis(s string) (IncomeBasis, error) {
	switch IncomeBasis(s) {
	case IncomeBasisBase, IncomeBasisOTE:
		return IncomeBasis(s), nil
	}
	return "", fmt.Errorf("income basis must be %q or %q, got %q", IncomeBasisBase, IncomeBasisOTE, s)
}

// Scenario is the tuple that parameterizes every aggregate demand
// computation. It is always passed explicitly; the engine holds no ambient
// scenario state.
type Scenario struct {
	TargetYear  int             `yaml:"target_year" json:"target_year"`
	IncomeBasis IncomeBasis     `yaml:"income_basis" json:"income_basis"`
	Rate        decimal.Decimal `yaml:"rate" json:"rate"`
}
