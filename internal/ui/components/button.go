package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hima/internal/ui/theme"
)

// Button is a key-labelled action shown in a toolbar.
type Button struct {
	Key    string
	Label  string
	Active bool
}

// View renders the button.
func (b Button) View() string {
	label := "[" + b.Key + "] " + b.Label
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}

// Toolbar renders buttons on one line, wrapping to fit width.
func Toolbar(buttons []Button, width int) string {
	var lines []string
	var line string
	for _, b := range buttons {
		v := b.View()
		if line != "" && lipgloss.Width(line)+1+lipgloss.Width(v) > width {
			lines = append(lines, line)
			line = ""
		}
		if line != "" {
			line += " "
		}
		line += v
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
