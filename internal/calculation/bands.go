package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Band is one cell of the fixed income partition: a half-open interval
// [Min, Max), except the top band which is unbounded above.
type Band struct {
	Index     int
	Name      string
	Min       decimal.Decimal
	Max       decimal.Decimal // meaningless when Unbounded
	Unbounded bool
}

// Contains reports whether the income falls in this band.
func (b Band) Contains(income decimal.Decimal) bool {
	if income.LessThan(b.Min) {
		return false
	}
	if b.Unbounded {
		return true
	}
	return income.LessThan(b.Max)
}

// Representative returns the income used as a stand-in for every income in
// the band: the midpoint, or the lower bound for the unbounded top band.
func (b Band) Representative() decimal.Decimal {
	if b.Unbounded {
		return b.Min
	}
	return b.Min.Add(b.Max).Div(decimal.NewFromInt(2))
}

// Band schedule parameters: $10k steps from zero up to the open-ended top
// band at $220k, 23 bands total. The step size must keep the townhouse
// income floor ($200k) on a band boundary.
const (
	bandStep     = 10000
	bandTopFloor = 220000
)

var bandSchedule = buildBands()

// Bands returns the fixed band schedule in ascending order. The slice is
// shared; callers must not modify it.
func Bands() []Band {
	return bandSchedule
}

func buildBands() []Band {
	n := bandTopFloor / bandStep
	bands := make([]Band, 0, n+1)
	for i := 0; i < n; i++ {
		min := decimal.NewFromInt(int64(i * bandStep))
		max := decimal.NewFromInt(int64((i + 1) * bandStep))
		bands = append(bands, Band{
			Index: i,
			Name:  fmt.Sprintf("%dk-%dk", i*bandStep/1000, (i+1)*bandStep/1000),
			Min:   min,
			Max:   max,
		})
	}
	bands = append(bands, Band{
		Index:     n,
		Name:      fmt.Sprintf("%dk+", bandTopFloor/1000),
		Min:       decimal.NewFromInt(bandTopFloor),
		Unbounded: true,
	})
	return bands
}

// BandOf returns the unique band containing the income. Incomes at or above
// the top band's lower bound always map to the top band; negative incomes
// (degenerate input) map to the bottom band rather than failing.
func BandOf(income decimal.Decimal) Band {
	bands := bandSchedule
	if income.Sign() < 0 {
		return bands[0]
	}
	for _, b := range bands {
		if b.Contains(income) {
			return b
		}
	}
	return bands[len(bands)-1]
}
