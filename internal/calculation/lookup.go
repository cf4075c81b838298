package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/techridge/demand/internal/domain"
)

type lookupKey struct {
	band string
	rate string
}

// LookupTable caches the affordability result for every (band, rate) pair of
// a fixed rate set. It is immutable once built; the caller owns invalidation
// and rebuilds it whenever the rate set changes.
type LookupTable struct {
	entries map[lookupKey]*domain.AffordabilityResult
	rates   []decimal.Decimal
}

// BuildLookup precomputes the affordability result for every band in the
// schedule crossed with every supplied rate, using each band's
// representative income. It is a pure function of its inputs.
func (mc *MortgageCalculator) BuildLookup(rates []decimal.Decimal) (*LookupTable, error) {
	table := &LookupTable{
		entries: make(map[lookupKey]*domain.AffordabilityResult, len(rates)*len(bandSchedule)),
		rates:   append([]decimal.Decimal(nil), rates...),
	}
	for _, band := range bandSchedule {
		rep := band.Representative()
		for _, rate := range rates {
			result, err := mc.Affordability(rep, rate)
			if err != nil {
				return nil, fmt.Errorf("affordability for band %s at rate %s: %w", band.Name, rate, err)
			}
			table.entries[lookupKey{band: band.Name, rate: rate.String()}] = result
		}
	}
	return table, nil
}

// Rates returns the rate set the table was built for.
func (lt *LookupTable) Rates() []decimal.Decimal {
	return append([]decimal.Decimal(nil), lt.rates...)
}

// Get returns the cached result for a band and rate. A rate the table was
// not built for is an explicit error: a silent zero would be
// indistinguishable from genuinely zero demand.
func (lt *LookupTable) Get(band Band, rate decimal.Decimal) (*domain.AffordabilityResult, error) {
	result, ok := lt.entries[lookupKey{band: band.Name, rate: rate.String()}]
	if !ok {
		return nil, fmt.Errorf("lookup table not built for band %s at rate %s", band.Name, rate)
	}
	return result, nil
}
