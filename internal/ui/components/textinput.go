package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hima/internal/ui/theme"
)

// SearchInput wraps bubbles/textinput for letter search. It accepts
// Devanagari or a romanization such as "kha".
type SearchInput struct {
	Model textinput.Model
	miss  bool
}

// NewSearchInput creates a blurred search box.
func NewSearchInput(placeholder string, maxChars int) SearchInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/ "
	if maxChars > 0 {
		ti.CharLimit = maxChars
	}
	return SearchInput{Model: ti}
}

// Focus starts editing.
func (s *SearchInput) Focus() tea.Cmd {
	s.miss = false
	return s.Model.Focus()
}

// Blur stops editing and clears the text.
func (s *SearchInput) Blur() {
	s.Model.Blur()
	s.Model.SetValue("")
}

// Focused reports whether the box has focus.
func (s SearchInput) Focused() bool { return s.Model.Focused() }

// Update handles messages while focused.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	if _, ok := msg.(tea.KeyPressMsg); ok {
		s.miss = false
	}
	return s, cmd
}

// Miss marks the last search as not found.
func (s *SearchInput) Miss() { s.miss = true }

// View renders the input.
func (s SearchInput) View() string {
	view := s.Model.View()
	if s.miss {
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗ not found")
	}
	return view
}

// Value returns the current input value.
func (s SearchInput) Value() string {
	return s.Model.Value()
}
