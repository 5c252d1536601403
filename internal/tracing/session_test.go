package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hima/internal/progress"
)

type failingLedger struct{}

func (failingLedger) Stars(context.Context, string) (int, error) { return 0, nil }
func (failingLedger) AddStar(context.Context, string) error      { return errors.New("disk full") }

func stars(t *testing.T, l progress.Ledger, letter string) int {
	t.Helper()
	n, err := l.Stars(context.Background(), letter)
	require.NoError(t, err)
	return n
}

func TestNewSessionIsEmpty(t *testing.T) {
	s := New("क", progress.NewMemory())
	assert.Equal(t, Empty, s.State())
	assert.False(t, s.HasStrokes())
	assert.Empty(t, s.Strokes())
}

func TestStrokesKeepOrder(t *testing.T) {
	s := New("क", progress.NewMemory())
	s.BeginStroke(Point{0, 0})
	s.ExtendStroke(Point{1, 0})
	s.ExtendStroke(Point{2, 0})
	s.EndStroke()
	s.BeginStroke(Point{5, 5})
	s.ExtendStroke(Point{5, 6})

	assert.Equal(t, Active, s.State())
	assert.Equal(t, [][]Point{
		{{0, 0}, {1, 0}, {2, 0}},
		{{5, 5}, {5, 6}},
	}, s.Strokes())
}

func TestExtendWithoutBeginIsNoop(t *testing.T) {
	s := New("क", progress.NewMemory())
	assert.False(t, s.ExtendStroke(Point{1, 1}))
	assert.False(t, s.HasStrokes())
	assert.Equal(t, Empty, s.State())

	s.BeginStroke(Point{0, 0})
	s.EndStroke()
	assert.False(t, s.ExtendStroke(Point{1, 1}))
	assert.Len(t, s.Strokes()[0], 1)
}

func TestClear(t *testing.T) {
	s := New("क", progress.NewMemory())
	s.BeginStroke(Point{0, 0})
	s.ExtendStroke(Point{1, 1})

	assert.True(t, s.Clear())
	assert.False(t, s.HasStrokes())
	assert.Equal(t, Empty, s.State())
	assert.Equal(t, 1, s.ClearEpoch())
	assert.Empty(t, s.Strokes())

	// Clearing an empty session still bumps the epoch.
	s.Clear()
	assert.Equal(t, 2, s.ClearEpoch())
}

func TestMarkCompleteAwardsOnce(t *testing.T) {
	ledger := progress.NewMemory()
	s := New("क", ledger)
	s.BeginStroke(Point{0, 0})

	ok, err := s.MarkComplete(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, Completed, s.State())
	assert.Equal(t, 1, stars(t, ledger, "क"))

	ok, err = s.MarkComplete(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, stars(t, ledger, "क"))

	require.Len(t, ledger.Awards(), 1)
	assert.Equal(t, progress.SourceTracing, ledger.Awards()[0].Source)
}

func TestMarkCompleteWithoutStrokesIsNoop(t *testing.T) {
	ledger := progress.NewMemory()
	s := New("क", ledger)

	ok, err := s.MarkComplete(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, Empty, s.State())
	assert.Equal(t, 0, stars(t, ledger, "क"))
}

func TestMarkCompleteAfterClearIsNoop(t *testing.T) {
	ledger := progress.NewMemory()
	s := New("क", ledger)

	s.BeginStroke(Point{0, 0})
	s.ExtendStroke(Point{1, 0})
	s.EndStroke()
	s.BeginStroke(Point{3, 3})
	s.ExtendStroke(Point{4, 4})
	s.Clear()

	ok, err := s.MarkComplete(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, stars(t, ledger, "क"))
}

func TestCompletedIsTerminal(t *testing.T) {
	s := New("क", progress.NewMemory())
	s.BeginStroke(Point{0, 0})
	_, _ = s.MarkComplete(context.Background())

	assert.False(t, s.BeginStroke(Point{1, 1}))
	assert.False(t, s.ExtendStroke(Point{1, 1}))
	assert.False(t, s.Clear())
	assert.Equal(t, Completed, s.State())
	assert.Len(t, s.Strokes(), 1)
}

func TestResetStartsFresh(t *testing.T) {
	ledger := progress.NewMemory()
	s := New("क", ledger)
	s.BeginStroke(Point{0, 0})
	_, _ = s.MarkComplete(context.Background())

	s.Reset()
	assert.Equal(t, Empty, s.State())
	assert.False(t, s.HasStrokes())
	assert.Equal(t, 1, s.ClearEpoch())
	assert.Equal(t, "क", s.Letter())

	s.BeginStroke(Point{0, 0})
	ok, err := s.MarkComplete(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, stars(t, ledger, "क"))
}

func TestLedgerFailureKeepsSessionOpen(t *testing.T) {
	s := New("क", failingLedger{})
	s.BeginStroke(Point{0, 0})

	ok, err := s.MarkComplete(context.Background())
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Equal(t, Active, s.State())
	assert.True(t, s.HasStrokes())
}

func TestCompleteWithoutLedger(t *testing.T) {
	s := New("क", nil)
	s.BeginStroke(Point{0, 0})
	s.ExtendStroke(Point{1, 1})

	ok, err := s.MarkComplete(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, Completed, s.State())
}
