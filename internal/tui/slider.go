package tui

import (
	"fmt"
	"math"
	"strings"
)

// rateSlider is an adjustable interest-rate control with a visual bar. The
// range mirrors the rates the model is exercised at in practice (4%–8%).
type rateSlider struct {
	Label string
	Value float64 // annual rate as a percentage, e.g. 6.15
	Min   float64
	Max   float64
	Step  float64
	Width int
}

func newRateSlider(value float64) rateSlider {
	return rateSlider{
		Label: "Interest Rate",
		Value: value,
		Min:   4.0,
		Max:   8.0,
		Step:  0.05,
		Width: 30,
	}
}

func (rs *rateSlider) Increment() {
	if v := rs.Value + rs.Step; v <= rs.Max+1e-9 {
		rs.Value = math.Round(v*100) / 100
	}
}

func (rs *rateSlider) Decrement() {
	if v := rs.Value - rs.Step; v >= rs.Min-1e-9 {
		rs.Value = math.Round(v*100) / 100
	}
}

func (rs *rateSlider) percentage() float64 {
	if rs.Max == rs.Min {
		return 0
	}
	return (rs.Value - rs.Min) / (rs.Max - rs.Min)
}

// Render returns the styled slider line.
func (rs *rateSlider) Render() string {
	filled := int(math.Round(float64(rs.Width) * rs.percentage()))
	if filled < 0 {
		filled = 0
	}
	if filled > rs.Width {
		filled = rs.Width
	}

	var bar strings.Builder
	bar.WriteString("[")
	if filled > 1 {
		bar.WriteString(sliderThumbStyle.Render(strings.Repeat("━", filled-1)))
	}
	bar.WriteString(sliderThumbStyle.Render("●"))
	if empty := rs.Width - filled; empty > 1 {
		bar.WriteString(sliderTrackStyle.Render(strings.Repeat("─", empty-1)))
	}
	bar.WriteString("]")

	return fmt.Sprintf("%s %s %s %s",
		labelStyle.Render(rs.Label+":"),
		valueStyle.Render(fmt.Sprintf("%.2f%%", rs.Value)),
		bar.String(),
		mutedStyle.Render(fmt.Sprintf("%.2f%% — %.2f%%", rs.Min, rs.Max)))
}
