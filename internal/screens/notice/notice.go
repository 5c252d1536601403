// Package notice shows a titled message, used when a screen has nothing
// to work with.
package notice

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hima/internal/screen"
	"github.com/abhisek/hima/internal/ui/theme"
)

// Screen is a read-only message.
type Screen struct {
	title string
	body  string
}

var _ screen.Screen = (*Screen)(nil)

// New creates a notice.
func New(title, body string) *Screen {
	return &Screen{title: title, body: body}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *Screen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render("╌╌ " + s.title + " ╌╌\n\n" + s.body)
}

func (s *Screen) Title() string {
	return s.title
}
