package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hima/internal/ui/theme"
)

// StarRow renders n earned stars. Past max the row collapses to a count.
func StarRow(n, max int) string {
	if n <= 0 {
		return theme.Disabled.Render("☆ no stars yet")
	}
	if max > 0 && n > max {
		return theme.Star.Render(strings.Repeat("★", max)) +
			theme.Disabled.Render(fmt.Sprintf(" +%d", n-max))
	}
	return theme.Star.Render(strings.Repeat("★", n))
}

// ProgressBar displays how many letters have been started.
type ProgressBar struct {
	Label string
	Done  int
	Total int
	Width int
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string
	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}
	count := fmt.Sprintf("  %d/%d", p.Done, p.Total)

	barWidth := p.Width - lipgloss.Width(result) - len(count)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := 0
	if p.Total > 0 {
		filled = barWidth * p.Done / p.Total
	}
	filled = min(max(filled, 0), barWidth)

	result += lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))
	return result + lipgloss.NewStyle().Foreground(theme.TextDim).Render(count)
}
