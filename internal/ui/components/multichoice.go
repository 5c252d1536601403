package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hima/internal/ui/theme"
)

// MultiChoice renders up to four numbered options. It only moves the
// highlight; the owner decides what submitting means.
type MultiChoice struct {
	Question string
	Options  []string

	// Selected is the highlighted option, or -1.
	Selected int

	revealed bool
	correct  int
	chosen   int
}

// NewMultiChoice creates a choice list with nothing highlighted.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
		Selected: -1,
		correct:  -1,
		chosen:   -1,
	}
}

// Update moves the highlight with arrows or jumps to it with 1-4.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.revealed {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k", "left":
		if m.Selected > 0 {
			m.Selected--
		} else if m.Selected < 0 && len(m.Options) > 0 {
			m.Selected = len(m.Options) - 1
		}
	case "down", "j", "right", "tab":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.Options) {
				m.Selected = i
			}
		}
	}
	return m, nil
}

// Reveal marks the correct and chosen options.
func (m *MultiChoice) Reveal(correct, chosen int) {
	m.revealed = true
	m.correct = correct
	m.chosen = chosen
}

// Revealed reports whether the answer is shown.
func (m MultiChoice) Revealed() bool { return m.revealed }

// View renders the question and options.
func (m MultiChoice) View() string {
	var b strings.Builder
	if m.Question != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
		b.WriteString("\n\n")
	}

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		var style lipgloss.Style
		switch {
		case m.revealed && i == m.correct:
			style = theme.Correct
		case m.revealed && i == m.chosen:
			style = theme.Incorrect
		case m.revealed:
			style = theme.Disabled
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
