package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hima/internal/letters"
	"github.com/abhisek/hima/internal/router"
	"github.com/abhisek/hima/internal/screen"
	"github.com/abhisek/hima/internal/screens/alphabet"
	"github.com/abhisek/hima/internal/screens/combined"
	"github.com/abhisek/hima/internal/screens/history"
	"github.com/abhisek/hima/internal/screens/notice"
	"github.com/abhisek/hima/internal/screens/preferences"
	"github.com/abhisek/hima/internal/ui/components"
	"github.com/abhisek/hima/internal/ui/layout"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	svc      screen.Services
	menu     components.Menu
	stars    int
	started  int
	problems int
}

var _ screen.Screen = (*HomeScreen)(nil)

type totalsMsg struct {
	stars   int
	started int
}

// New creates a new HomeScreen.
func New(svc screen.Services) *HomeScreen {
	h := &HomeScreen{svc: svc}
	if svc.Library != nil {
		h.problems = len(svc.Library.Problems())
	}

	hasLetters := svc.Library != nil && len(svc.Library.Letters()) > 0
	items := []components.MenuItem{
		{Label: "ALPHABET", Action: func() tea.Cmd {
			if !hasLetters {
				return router.Push(notice.New("Alphabet", emptyPack))
			}
			return router.Push(alphabet.New(svc))
		}},
		{Label: "COMBINED SOUNDS", Action: func() tea.Cmd {
			return router.Push(combined.New(svc))
		}},
		{Label: "HISTORY", Disabled: svc.Events == nil, Action: func() tea.Cmd {
			return router.Push(history.New(svc.Events))
		}},
		{Label: "SETTINGS", Action: func() tea.Cmd {
			return router.Push(preferences.New(svc))
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

const emptyPack = "No letters were found in the asset pack.\n\nRun hima assets validate to see what went wrong."

// Init reloads the star totals. It runs again whenever the learner comes
// back to this screen.
func (h *HomeScreen) Init() tea.Cmd {
	ledger := h.svc.Ledger
	if ledger == nil {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()
		all, err := ledger.All(ctx)
		if err != nil {
			return nil
		}
		var m totalsMsg
		for _, n := range all {
			if n > 0 {
				m.stars += n
				m.started++
			}
		}
		return m
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(totalsMsg); ok {
		h.stars, h.started = m.stars, m.started
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height excludes the header and footer; add them back to judge the
	// real terminal size.
	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	sections := []string{renderTitle(cw, compact)}
	if !compact {
		sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(RenderMascot(mascotFor(h.stars))))
	}
	sections = append(sections, renderStatsBar(h.stars, h.started, len(letters.All()), cw, compact))
	if h.problems > 0 {
		sections = append(sections, renderProblems(h.problems, cw))
	}
	sections = append(sections, components.ArcadeMenu(h.menu, cw, compact))

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return components.CabinetFrame(strings.Join(sections, sep), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
