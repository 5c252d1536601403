// Package combined plays consonant and vowel-sign syllables: क का कि की...
package combined

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hima/internal/audio"
	"github.com/abhisek/hima/internal/letters"
	"github.com/abhisek/hima/internal/screen"
	"github.com/abhisek/hima/internal/ui/layout"
	"github.com/abhisek/hima/internal/ui/theme"
)

// Screen lists the syllables of one consonant at a time.
type Screen struct {
	svc        screen.Services
	consonants []string
	current    int
	selected   int
	syllables  []string
}

var _ screen.Screen = (*Screen)(nil)

// New starts on the first consonant.
func New(svc screen.Services) *Screen {
	s := &Screen{svc: svc, consonants: letters.Consonants()}
	s.load()
	return s
}

func (s *Screen) load() {
	c := s.consonants[s.current]
	if s.svc.Library != nil {
		s.syllables = s.svc.Library.CombinationsFor(c)
	} else {
		s.syllables = letters.Combinations(c, nil)
	}
	if s.selected >= len(s.syllables) {
		s.selected = len(s.syllables) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

// Consonant returns the consonant being shown.
func (s *Screen) Consonant() string { return s.consonants[s.current] }

// Syllable returns the highlighted syllable.
func (s *Screen) Syllable() string {
	if len(s.syllables) == 0 {
		return ""
	}
	return s.syllables[s.selected]
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch key := kmsg.String(); key {
	case "left", "h":
		if s.selected > 0 {
			s.selected--
		}
	case "right", "l":
		if s.selected < len(s.syllables)-1 {
			s.selected++
		}
	case "up", "k", "[":
		s.current = (s.current + len(s.consonants) - 1) % len(s.consonants)
		s.load()
	case "down", "j", "]":
		s.current = (s.current + 1) % len(s.consonants)
		s.load()
	case "enter", "space":
		return s, s.play()
	case "a":
		return s, s.playAll()
	}
	return s, nil
}

func (s *Screen) play() tea.Cmd {
	if syl := s.Syllable(); syl != "" {
		return s.svc.Play(audio.Combined(syl))
	}
	return nil
}

// playAll plays the syllables in order, one after another.
func (s *Screen) playAll() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(s.syllables))
	for _, syl := range s.syllables {
		cmds = append(cmds, s.svc.Play(audio.Combined(syl)))
	}
	return tea.Sequence(cmds...)
}

func (s *Screen) View(width, height int) string {
	cells := make([]string, len(s.syllables))
	for i, syl := range s.syllables {
		style := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(theme.Border)
		if i == s.selected {
			style = style.BorderForeground(theme.ArcadeYellow).Foreground(theme.ArcadeYellow).Bold(true)
		}
		cells[i] = style.Render(syl)
	}

	rows := chunk(cells, 5)
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, r...)
	}

	c := s.Consonant()
	head := theme.Glyph.Render(c)
	if roman, ok := letters.Romanize(c); ok {
		head += theme.Hint.Render(roman)
	}
	body := head + "\n\n" + strings.Join(lines, "\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func chunk(items []string, n int) [][]string {
	var out [][]string
	for len(items) > n {
		out = append(out, items[:n])
		items = items[n:]
	}
	if len(items) > 0 {
		out = append(out, items)
	}
	return out
}

func (s *Screen) Title() string {
	return "Combined sounds"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Sound"},
		{Key: "↑↓", Description: "Letter"},
		{Key: "Enter", Description: "Play"},
		{Key: "a", Description: "Play all"},
		{Key: "Esc", Description: "Back"},
	}
}
