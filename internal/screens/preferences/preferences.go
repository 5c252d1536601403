// Package preferences is the settings screen: device speech and language.
package preferences

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hima/internal/screen"
	"github.com/abhisek/hima/internal/settings"
	"github.com/abhisek/hima/internal/ui/components"
	"github.com/abhisek/hima/internal/ui/layout"
	"github.com/abhisek/hima/internal/ui/theme"
)

// Screen toggles the learner's preferences. Each change is saved at once.
type Screen struct {
	svc     screen.Services
	current settings.Settings
	menu    components.Menu
	err     error
}

var _ screen.Screen = (*Screen)(nil)

type savedMsg struct {
	current settings.Settings
	err     error
}

// New creates the settings screen.
func New(svc screen.Services) *Screen {
	s := &Screen{svc: svc, current: settings.Default()}
	if svc.Settings != nil {
		s.current = svc.Settings.Current(context.Background())
	}
	s.menu = components.NewMenu([]components.MenuItem{
		{Action: s.toggleDeviceSpeech, Disabled: svc.Settings == nil},
		{Action: s.cycleLanguage, Disabled: svc.Settings == nil},
		{Label: "Listen to a sample", Action: s.sample},
	})
	s.relabel()
	return s
}

func (s *Screen) relabel() {
	voice := "off"
	if s.current.PreferDeviceSpeech {
		voice = "on"
	}
	s.menu.Items[0].Label = fmt.Sprintf("Device voice for letters: %s", voice)
	s.menu.Items[1].Label = fmt.Sprintf("Language: %s", s.current.Language.Label())
}

func (s *Screen) save(change func(ctx context.Context) error) tea.Cmd {
	store := s.svc.Settings
	return func() tea.Msg {
		ctx := context.Background()
		err := change(ctx)
		return savedMsg{current: store.Current(ctx), err: err}
	}
}

func (s *Screen) toggleDeviceSpeech() tea.Cmd {
	on := !s.current.PreferDeviceSpeech
	return s.save(func(ctx context.Context) error {
		return s.svc.Settings.SetPreferDeviceSpeech(ctx, on)
	})
}

func (s *Screen) cycleLanguage() tea.Cmd {
	next := s.current.Language.Next()
	return s.save(func(ctx context.Context) error {
		return s.svc.Settings.SetLanguage(ctx, next)
	})
}

func (s *Screen) sample() tea.Cmd {
	return s.svc.Play(audioSample(s.current.Language))
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		s.current, s.err = msg.current, msg.err
		s.relabel()
		return s, nil
	case tea.KeyPressMsg:
		switch msg.String() {
		case "left", "right", "h", "l":
			if s.menu.Selected == 1 && s.svc.Settings != nil {
				return s, s.cycleLanguage()
			}
		}
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Settings"))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Device voice speaks letters with the computer voice\ninstead of recorded audio."))
	if s.err != nil {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render("Could not save: " + s.err.Error()))
	}
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func (s *Screen) Title() string {
	return "Settings"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Change"},
		{Key: "Esc", Description: "Back"},
	}
}
