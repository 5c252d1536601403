// Package welcome is the splash shown at start: the owl, a cascade of
// vowels, the banner and a spoken greeting.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hima/internal/audio"
	"github.com/abhisek/hima/internal/letters"
	"github.com/abhisek/hima/internal/router"
	"github.com/abhisek/hima/internal/screen"
	"github.com/abhisek/hima/internal/settings"
	"github.com/abhisek/hima/internal/ui/layout"
	"github.com/abhisek/hima/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	cascadeStart = 500 * time.Millisecond
	bannerAt     = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const owlArt = `   ,___,
   (O,O)
   /)अ)
  --"-"--`

var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// WelcomeScreen animates for a few seconds and hands over to the next
// screen on any key.
type WelcomeScreen struct {
	svc          screen.Services
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates the splash. next builds the screen that replaces it.
func New(svc screen.Services, next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{svc: svc, next: next}
}

// Greeting is what the splash says and shows in lang.
func Greeting(lang settings.Language) string {
	if lang == settings.Marathi {
		return "नमस्कार! चला अक्षरे शिकूया!"
	}
	return "नमस्ते! चलो अक्षर सीखें!"
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Batch(tick(), w.svc.Play(audio.Speak(Greeting(w.svc.Language()))))
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()
	case tea.KeyPressMsg, tea.MouseClickMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	return router.Replace(w.next())
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Any key", Description: "Start"}}
}

// Done reports whether the animation has played out.
func (w *WelcomeScreen) Done() bool { return w.elapsed >= totalDur }

func (w *WelcomeScreen) View(width, height int) string {
	owl := lipgloss.NewStyle().Foreground(theme.Secondary).Render(owlArt)
	if w.elapsed >= cascadeStart {
		sparkle := sparkleFrames[w.tickCount%len(sparkleFrames)]
		a := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
		b := lipgloss.NewStyle().Foreground(theme.StarGold).Render(sparkle)
		lines := strings.Split(owl, "\n")
		lines[0] = a + " " + lines[0] + "  " + b
		lines[len(lines)-1] = b + " " + lines[len(lines)-1] + "  " + a
		owl = strings.Join(lines, "\n")
	}
	sections := []string{owl, "", w.cascade()}

	if w.elapsed >= bannerAt {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(Greeting(w.svc.Language())),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to start"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}

// cascade reveals one vowel per tick once the owl has appeared.
func (w *WelcomeScreen) cascade() string {
	if w.elapsed < cascadeStart {
		return ""
	}
	n := int((w.elapsed-cascadeStart)/tickInterval) + 1
	n = min(n, len(letters.Vowels))
	style := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	return style.Render(strings.Join(letters.Vowels[:n], "  "))
}
