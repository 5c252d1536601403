package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hima/internal/ui/theme"
)

// ButtonWidth is the fixed width of arcade menu buttons.
const ButtonWidth = 24

// ContentWidth returns the inner width shared by every boxed section so
// the boxes line up.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// CabinetFrame wraps content in a double-border cabinet frame,
// centering vertically and horizontally within the given dimensions.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeButton renders a fixed-width menu button.
func ArcadeButton(label string, selected, disabled bool) string {
	style := lipgloss.NewStyle().
		Width(ButtonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch {
	case disabled:
		return style.Foreground(theme.TextDim).BorderForeground(theme.Border).Render(label)
	case selected:
		return style.Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow).
			Render("▸ " + label)
	}
	return style.Foreground(theme.Text).BorderForeground(theme.Border).Render(label)
}

// ArcadeMenu renders a menu as a column of buttons. When compact it falls
// back to plain lines so small terminals do not overflow.
func ArcadeMenu(m Menu, cw int, compact bool) string {
	disabled := m.DisabledSet()
	var rows []string
	for i, label := range m.Labels() {
		if compact {
			switch {
			case disabled[i]:
				rows = append(rows, theme.Disabled.Render("   "+label))
			case i == m.Selected:
				rows = append(rows, lipgloss.NewStyle().
					Foreground(theme.BgDark).
					Background(theme.ArcadeYellow).
					Bold(true).
					Render(" ▸ "+label+" "))
			default:
				rows = append(rows, theme.Unselected.Render("   "+label))
			}
			continue
		}
		rows = append(rows, ArcadeButton(label, i == m.Selected, disabled[i]))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(rows, "\n"))
}
