// Package app is the root Bubble Tea model: a header, the active screen
// and a footer, with global keys and mouse mapping.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hima/internal/router"
	"github.com/abhisek/hima/internal/screen"
	"github.com/abhisek/hima/internal/screens/home"
	"github.com/abhisek/hima/internal/screens/welcome"
	"github.com/abhisek/hima/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	svc    screen.Services
	router *router.Router
	stars  int
	width  int
	height int
}

// totalMsg carries the re-read star total for the header.
type totalMsg int

// NewAppModel creates the model. The splash comes first and is replaced
// by the home screen.
func NewAppModel(svc screen.Services) AppModel {
	splash := welcome.New(svc, func() screen.Screen { return home.New(svc) })
	return AppModel{
		svc:    svc,
		router: router.New(splash),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.loadTotal())
}

func (m AppModel) loadTotal() tea.Cmd {
	ledger := m.svc.Ledger
	if ledger == nil {
		return nil
	}
	return func() tea.Msg {
		n, err := ledger.Total(context.Background())
		if err != nil {
			return nil
		}
		return totalMsg(n)
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case totalMsg:
		m.stars = int(msg)
		return m, nil

	case screen.StarsChangedMsg:
		return m, tea.Batch(m.loadTotal(), m.router.Update(msg))

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.WantsEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, router.Pop
			}
			return m, nil
		}

	case tea.MouseMsg:
		return m, m.router.Update(toContent(msg))
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// toContent moves a mouse event from terminal rows to content rows, so
// screens see positions relative to their own View.
func toContent(msg tea.MouseMsg) tea.Msg {
	ms := msg.Mouse()
	ms.Y -= layout.HeaderHeight
	switch msg.(type) {
	case tea.MouseClickMsg:
		return tea.MouseClickMsg(ms)
	case tea.MouseMotionMsg:
		return tea.MouseMotionMsg(ms)
	case tea.MouseReleaseMsg:
		return tea.MouseReleaseMsg(ms)
	case tea.MouseWheelMsg:
		return tea.MouseWheelMsg(ms)
	}
	return msg
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.stars, m.svc.Language().Label(), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(svc screen.Services) error {
	p := tea.NewProgram(NewAppModel(svc))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
