package tui

import (
	"fmt"
	"strings"
)

// View renders the explorer.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Techridge Demand Explorer"))
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		sb.WriteString("\n")
		sb.WriteString(helpStyle.Render("q to quit"))
		return sb.String()
	}

	if m.loading {
		sb.WriteString(mutedStyle.Render("Loading roster..."))
		return sb.String()
	}

	sb.WriteString(m.slider.Render())
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s %s    %s %s    %s %d\n",
		labelStyle.Render("Year:"), valueStyle.Render(fmt.Sprintf("%d", m.year)),
		labelStyle.Render("Basis:"), valueStyle.Render(string(m.basis)),
		labelStyle.Render("Employers:"), len(m.employers)))

	if m.summary != nil {
		sb.WriteString(fmt.Sprintf("%s %s\n\n",
			labelStyle.Render("Total households:"),
			valueStyle.Render(m.summary.TotalHouseholds.StringFixed(1))))
		sb.WriteString(m.results.View())
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render("← → rate • ↑ ↓ year • b basis • q quit"))
	return sb.String()
}
