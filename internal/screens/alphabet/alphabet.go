// Package alphabet is the letter chart: vowels, consonant groups and
// conjuncts, with search by Devanagari or romanization.
package alphabet

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hima/internal/letters"
	"github.com/abhisek/hima/internal/router"
	"github.com/abhisek/hima/internal/screen"
	"github.com/abhisek/hima/internal/screens/practice"
	"github.com/abhisek/hima/internal/ui/components"
	"github.com/abhisek/hima/internal/ui/layout"
	"github.com/abhisek/hima/internal/ui/theme"
)

// Row is one line of the chart.
type Row struct {
	Name    string
	Letters []string
}

// Chart returns the rows in teaching order.
func Chart() []Row {
	rows := []Row{{Name: "Vowels", Letters: letters.Vowels}}
	for _, g := range letters.ConsonantGroups {
		rows = append(rows, Row{Name: g.Name, Letters: g.Letters})
	}
	return append(rows, Row{Name: "Conjuncts", Letters: letters.Conjuncts})
}

// Screen is the alphabet chart.
type Screen struct {
	svc    screen.Services
	rows   []Row
	row    int
	col    int
	stars  map[string]int
	search components.SearchInput
}

var (
	_ screen.Screen        = (*Screen)(nil)
	_ screen.EscapeHandler = (*Screen)(nil)
)

type starsMsg map[string]int

// New creates the chart with the cursor on the first vowel.
func New(svc screen.Services) *Screen {
	return &Screen{
		svc:    svc,
		rows:   Chart(),
		stars:  map[string]int{},
		search: components.NewSearchInput("type क or ka", 12),
	}
}

// Init loads star counts. It runs again when returning from practice.
func (s *Screen) Init() tea.Cmd {
	ledger := s.svc.Ledger
	if ledger == nil {
		return nil
	}
	return func() tea.Msg {
		all, err := ledger.All(context.Background())
		if err != nil {
			return nil
		}
		return starsMsg(all)
	}
}

// Current returns the letter under the cursor.
func (s *Screen) Current() string {
	return s.rows[s.row].Letters[s.col]
}

// WantsEscape is true while searching, so Esc closes the search box.
func (s *Screen) WantsEscape() bool { return s.search.Focused() }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case starsMsg:
		s.stars = msg
		return s, nil
	case tea.KeyPressMsg:
		if s.search.Focused() {
			return s.updateSearch(msg)
		}
		return s.updateGrid(msg)
	}
	if s.search.Focused() {
		var cmd tea.Cmd
		s.search, cmd = s.search.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) updateGrid(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.row > 0 {
			s.row--
			s.clampCol()
		}
	case "down", "j":
		if s.row < len(s.rows)-1 {
			s.row++
			s.clampCol()
		}
	case "left", "h":
		if s.col > 0 {
			s.col--
		}
	case "right", "l":
		if s.col < len(s.rows[s.row].Letters)-1 {
			s.col++
		}
	case "/":
		return s, s.search.Focus()
	case "enter", "space":
		return s, s.open(s.Current())
	}
	return s, nil
}

func (s *Screen) updateSearch(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.search.Blur()
		return s, nil
	case "enter":
		letter, ok := letters.Find(s.search.Value())
		if !ok {
			s.search.Miss()
			return s, nil
		}
		s.search.Blur()
		s.moveTo(letter)
		return s, s.open(letter)
	}
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	return s, cmd
}

func (s *Screen) moveTo(letter string) {
	for r, row := range s.rows {
		for c, l := range row.Letters {
			if l == letter {
				s.row, s.col = r, c
				return
			}
		}
	}
}

func (s *Screen) clampCol() {
	if n := len(s.rows[s.row].Letters); s.col >= n {
		s.col = n - 1
	}
}

func (s *Screen) open(letter string) tea.Cmd {
	return router.Push(practice.New(s.svc, letter))
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	for r, row := range s.rows {
		label := lipgloss.NewStyle().Width(11).Foreground(theme.TextDim).Render(row.Name)
		cells := make([]string, len(row.Letters))
		for c, l := range row.Letters {
			cells[c] = s.cell(l, r == s.row && c == s.col)
		}
		b.WriteString(label + " " + strings.Join(cells, " ") + "\n")
	}

	cur := s.Current()
	info := theme.Glyph.Render(cur)
	if roman, ok := letters.Romanize(cur); ok {
		info += theme.Hint.Render(roman)
	}
	info += "  " + components.StarRow(s.stars[cur], 10)
	if s.svc.Library != nil && len(s.svc.Library.Pool(cur)) == 0 {
		info += theme.Hint.Render("  (no examples yet)")
	}

	body := b.String() + "\n" + info + "\n\n" + s.search.View()
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(body)
}

func (s *Screen) cell(l string, selected bool) string {
	text := fmt.Sprintf(" %s ", l)
	if s.stars[l] > 0 {
		text = fmt.Sprintf(" %s★", l)
	}
	style := lipgloss.NewStyle().Width(5).Align(lipgloss.Center)
	switch {
	case selected:
		return style.Foreground(theme.BgDark).Background(theme.ArcadeYellow).Bold(true).Render(text)
	case s.stars[l] > 0:
		return style.Foreground(theme.StarGold).Render(text)
	}
	return style.Foreground(theme.Text).Render(text)
}

func (s *Screen) Title() string {
	return "Alphabet"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.search.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Go"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Move"},
		{Key: "Enter", Description: "Practice"},
		{Key: "/", Description: "Search"},
		{Key: "Esc", Description: "Back"},
	}
}
