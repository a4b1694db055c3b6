package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"quizdrill/internal/ui/theme"
)

// ProgressBar shows how much of the playlist has been answered.
type ProgressBar struct {
	Done  int
	Total int
	Width int
}

// View renders the bar with a done/total count.
func (p ProgressBar) View() string {
	count := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d/%d", p.Done, p.Total))

	barWidth := p.Width - lipgloss.Width(count) - 2
	if barWidth < 4 {
		barWidth = 4
	}

	var pct float64
	if p.Total > 0 {
		pct = float64(p.Done) / float64(p.Total)
	}
	filled := int(float64(barWidth) * pct)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	bar := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().
			Background(theme.Border).
			Render(strings.Repeat(" ", barWidth-filled))

	return bar + "  " + count
}
