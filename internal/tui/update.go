package tui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/techridge/demand/internal/domain"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case RosterLoadedMsg:
		m.employers = msg.Employers
		m.loading = false
		if len(m.employers) > 0 {
			m.year = m.employers[0].BaseYear
		}
		return m, m.computeDemandCmd()

	case DemandComputedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.summary = msg.Summary
		m.results.SetRows(demandRows(msg.Summary))
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "left":
		m.slider.Decrement()
		return m, m.computeDemandCmd()

	case "right":
		m.slider.Increment()
		return m, m.computeDemandCmd()

	case "up":
		m.year++
		return m, m.computeDemandCmd()

	case "down":
		m.year--
		return m, m.computeDemandCmd()

	case "b":
		if m.basis == domain.IncomeBasisBase {
			m.basis = domain.IncomeBasisOTE
		} else {
			m.basis = domain.IncomeBasisBase
		}
		return m, m.computeDemandCmd()
	}

	return m, nil
}

// demandRows converts a demand summary into table rows.
func demandRows(summary *domain.DemandSummary) []table.Row {
	if summary == nil {
		return nil
	}
	rows := make([]table.Row, 0, len(summary.Products))
	for _, pd := range summary.Products {
		rows = append(rows, table.Row{
			pd.Product,
			pd.Count.StringFixed(1),
			pd.Percentage.StringFixed(1) + "%",
		})
	}
	return rows
}
