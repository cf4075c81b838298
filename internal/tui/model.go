package tui

import (
	"math"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/techridge/demand/internal/calculation"
	"github.com/techridge/demand/internal/config"
	"github.com/techridge/demand/internal/domain"
)

// Model is the rate explorer: a slider for the interest rate, year and
// income-basis controls, and a live aggregate demand table.
type Model struct {
	dataPath string
	engine   *calculation.Engine

	employers []domain.Employer
	year      int
	basis     domain.IncomeBasis
	slider    rateSlider

	results table.Model
	summary *domain.DemandSummary

	width  int
	height int

	loading bool
	err     error
}

// NewModel creates the explorer model for a roster directory.
func NewModel(dataPath string) Model {
	columns := []table.Column{
		{Title: "Product", Width: 14},
		{Title: "Households", Width: 12},
		{Title: "% of Total", Width: 12},
	}
	results := table.New(
		table.WithColumns(columns),
		table.WithHeight(6),
		table.WithStyles(table.DefaultStyles()),
	)

	return Model{
		dataPath: dataPath,
		engine:   calculation.NewDefaultEngine(),
		basis:    domain.IncomeBasisBase,
		slider:   newRateSlider(6.15),
		results:  results,
		loading:  true,
		width:    80,
		height:   24,
	}
}

// Init loads the roster (required by tea.Model).
func (m Model) Init() tea.Cmd {
	return loadRosterCmd(m.dataPath)
}

// loadRosterCmd returns a command that loads the roster directory.
func loadRosterCmd(path string) tea.Cmd {
	return func() tea.Msg {
		loader := config.NewRosterLoader()
		employers, err := loader.LoadDir(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return RosterLoadedMsg{Employers: employers}
	}
}

// rate converts the slider's percentage value to a decimal annual rate.
func (m *Model) rate() decimal.Decimal {
	return decimal.NewFromFloat(math.Round(m.slider.Value*100) / 10000)
}

// computeDemandCmd recomputes aggregate demand for the current controls.
func (m Model) computeDemandCmd() tea.Cmd {
	engine := m.engine
	employers := m.employers
	scenario := domain.Scenario{
		TargetYear:  m.year,
		IncomeBasis: m.basis,
		Rate:        m.rate(),
	}
	return func() tea.Msg {
		table, err := engine.Mortgage.BuildLookup([]decimal.Decimal{scenario.Rate})
		if err != nil {
			return DemandComputedMsg{Err: err}
		}
		summary, err := engine.AggregateDemand(employers, scenario, table)
		return DemandComputedMsg{Summary: summary, Err: err}
	}
}
