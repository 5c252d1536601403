package home

import (
	"context"
	"testing"
	"testing/fstest"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hima/internal/letters"
	"github.com/abhisek/hima/internal/router"
	"github.com/abhisek/hima/internal/screen/screentest"
	"github.com/abhisek/hima/internal/screens/alphabet"
	"github.com/abhisek/hima/internal/screens/combined"
	"github.com/abhisek/hima/internal/screens/history"
	"github.com/abhisek/hima/internal/screens/notice"
	"github.com/abhisek/hima/internal/screens/preferences"
	"github.com/abhisek/hima/internal/store"
)

type noEvents struct{}

func (noEvents) QueryStarEvents(context.Context, store.QueryOpts) ([]store.StarEventRecord, error) {
	return nil, nil
}

func (noEvents) QueryQuizEvents(context.Context, store.QueryOpts) ([]store.QuizEventRecord, error) {
	return nil, nil
}

func pushedScreen(t *testing.T, cmd tea.Cmd) any {
	t.Helper()
	msgs := screentest.Drain(cmd)
	require.Len(t, msgs, 1)
	push, ok := msgs[0].(router.PushScreenMsg)
	require.True(t, ok, "got %T", msgs[0])
	return push.Screen
}

func TestMenu(t *testing.T) {
	f := screentest.New(t)
	h := New(f.Services)
	assert.Equal(t, []string{"ALPHABET", "COMBINED SOUNDS", "HISTORY", "SETTINGS", "EXIT"}, h.menu.Labels())

	_, cmd := h.Update(screentest.Special(tea.KeyEnter))
	assert.IsType(t, &alphabet.Screen{}, pushedScreen(t, cmd))

	h.Update(screentest.Special(tea.KeyDown))
	_, cmd = h.Update(screentest.Special(tea.KeyEnter))
	assert.IsType(t, &combined.Screen{}, pushedScreen(t, cmd))

	h.Update(screentest.Special(tea.KeyDown))
	_, cmd = h.Update(screentest.Special(tea.KeyEnter))
	assert.IsType(t, &preferences.Screen{}, pushedScreen(t, cmd))

	h.Update(screentest.Special(tea.KeyDown))
	_, cmd = h.Update(screentest.Special(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHistoryNeedsEvents(t *testing.T) {
	f := screentest.New(t)
	h := New(f.Services)
	assert.True(t, h.menu.Items[2].Disabled)

	f.Services.Events = noEvents{}
	h = New(f.Services)
	require.False(t, h.menu.Items[2].Disabled)

	h.Update(screentest.Special(tea.KeyDown))
	h.Update(screentest.Special(tea.KeyDown))
	_, cmd := h.Update(screentest.Special(tea.KeyEnter))
	assert.IsType(t, &history.HistoryScreen{}, pushedScreen(t, cmd))
}

func TestEmptyPackShowsNotice(t *testing.T) {
	f := screentest.New(t)
	lib, err := letters.Load(fstest.MapFS{
		"manifest.json": {Data: []byte(`{"name":"empty","version":"v1.0.0"}`)},
	})
	require.NoError(t, err)
	f.Services.Library = lib

	h := New(f.Services)
	_, cmd := h.Update(screentest.Special(tea.KeyEnter))
	assert.IsType(t, &notice.Screen{}, pushedScreen(t, cmd))
}

func TestInitLoadsTotals(t *testing.T) {
	f := screentest.New(t)
	ctx := context.Background()
	require.NoError(t, f.Ledger.AddStar(ctx, "क"))
	require.NoError(t, f.Ledger.AddStar(ctx, "क"))
	require.NoError(t, f.Ledger.AddStar(ctx, "ग"))

	h := New(f.Services)
	for _, msg := range screentest.Drain(h.Init()) {
		h.Update(msg)
	}
	assert.Equal(t, 3, h.stars)
	assert.Equal(t, 2, h.started)
	assert.Contains(t, h.View(100, 40), "3")
}

func TestMascotFollowsStars(t *testing.T) {
	assert.Equal(t, MascotIdle, mascotFor(0))
	assert.Equal(t, MascotCelebrating, mascotFor(5))
}
