package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hima/internal/router"
	"github.com/abhisek/hima/internal/screen"
	"github.com/abhisek/hima/internal/screen/screentest"
	"github.com/abhisek/hima/internal/screens/home"
	"github.com/abhisek/hima/internal/screens/welcome"
	"github.com/abhisek/hima/internal/ui/layout"
)

// feed applies msg and every message its commands produce, skipping
// timers so the splash does not block.
func feed(m AppModel, msg tea.Msg) AppModel {
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	for _, out := range screentest.Drain(cmd) {
		switch out.(type) {
		case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg, totalMsg, screen.StarsChangedMsg:
			m = feed(m, out)
		}
	}
	return m
}

func started(t *testing.T) (AppModel, *screentest.Fixture) {
	t.Helper()
	f := screentest.New(t)
	m := NewAppModel(f.Services)
	m = feed(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	require.IsType(t, &welcome.WelcomeScreen{}, m.router.Active())
	m = feed(m, screentest.Key(' '))
	require.IsType(t, &home.HomeScreen{}, m.router.Active())
	return m, f
}

func TestSplashHandsOverToHome(t *testing.T) {
	m, _ := started(t)
	assert.Equal(t, 1, m.router.Depth())
}

func TestEscPopsToHome(t *testing.T) {
	m, _ := started(t)
	m = feed(m, screentest.Special(tea.KeyEnter))
	assert.Equal(t, 2, m.router.Depth())

	m = feed(m, screentest.Special(tea.KeyEscape))
	assert.Equal(t, 1, m.router.Depth())

	// Esc at the root is ignored.
	m = feed(m, screentest.Special(tea.KeyEscape))
	assert.Equal(t, 1, m.router.Depth())
}

func TestEscGoesToScreenWhenWanted(t *testing.T) {
	m, _ := started(t)
	m = feed(m, screentest.Special(tea.KeyEnter)) // alphabet
	m = feed(m, screentest.Key('/'))
	m = feed(m, screentest.Special(tea.KeyEscape))

	assert.Equal(t, 2, m.router.Depth(), "Esc should close the search box, not the screen")
}

func TestStarsChangedReloadsTotal(t *testing.T) {
	m, f := started(t)
	require.NoError(t, f.Ledger.AddStar(context.Background(), "क"))
	require.NoError(t, f.Ledger.AddStar(context.Background(), "ख"))

	m = feed(m, screen.StarsChangedMsg{})
	assert.Equal(t, 2, m.stars)
}

func TestMouseIsShiftedBelowHeader(t *testing.T) {
	got := toContent(tea.MouseClickMsg{X: 5, Y: layout.HeaderHeight + 3, Button: tea.MouseLeft})
	click, ok := got.(tea.MouseClickMsg)
	require.True(t, ok)
	assert.Equal(t, 5, click.X)
	assert.Equal(t, 3, click.Y)

	_, ok = toContent(tea.MouseReleaseMsg{Y: 4}).(tea.MouseReleaseMsg)
	assert.True(t, ok)
}
