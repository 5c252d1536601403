package progress

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hima/internal/store"
)

func newTestService(t *testing.T) (*Service, store.EventRepo) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewService(st.EventRepo(), st.SnapshotRepo()), st.EventRepo()
}

func TestUnseenLetterHasZeroStars(t *testing.T) {
	svc, _ := newTestService(t)
	n, err := svc.Stars(context.Background(), "ज")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestAddStarTwice(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddStar(ctx, "क"))
	require.NoError(t, svc.AddStar(ctx, "क"))

	n, err := svc.Stars(ctx, "क")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestAddStarRecordsSourceAndSession(t *testing.T) {
	svc, events := newTestService(t)
	ctx := WithSession(WithSource(context.Background(), SourceQuiz), "sess-1")

	require.NoError(t, svc.AddStar(ctx, "अ"))

	recs, err := events.QueryStarEvents(ctx, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, SourceQuiz, recs[0].Source)
	assert.Equal(t, "sess-1", recs[0].SessionID)
}

func TestAddStarRejectsEmptyLetter(t *testing.T) {
	svc, _ := newTestService(t)
	assert.ErrorIs(t, svc.AddStar(context.Background(), "  "), ErrEmptyLetter)
}

func TestCompactKeepsCounts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, l := range []string{"क", "क", "ख"} {
		require.NoError(t, svc.AddStar(ctx, l))
	}
	require.NoError(t, svc.Compact(ctx))
	require.NoError(t, svc.AddStar(ctx, "क"))

	n, err := svc.Stars(ctx, "क")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	all, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"क": 3, "ख": 1}, all)

	total, err := svc.Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
}

func TestReset(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddStar(ctx, "क"))
	require.NoError(t, svc.Compact(ctx))
	require.NoError(t, svc.Reset(ctx))

	n, err := svc.Stars(ctx, "क")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestMemoryRejectsEmptyLetter(t *testing.T) {
	m := NewMemory()
	assert.ErrorIs(t, m.AddStar(context.Background(), " "), ErrEmptyLetter)
	assert.Empty(t, m.Awards())

	total, _ := m.Total(context.Background())
	assert.Equal(t, 0, total)
}

func TestMemoryLedger(t *testing.T) {
	m := NewMemory()
	ctx := WithSource(context.Background(), SourceTracing)

	require.NoError(t, m.AddStar(ctx, "क"))
	require.NoError(t, m.AddStar(ctx, "क"))

	n, _ := m.Stars(ctx, "क")
	assert.Equal(t, 2, n)
	n, _ = m.Stars(ctx, "ख")
	assert.Equal(t, 0, n)

	awards := m.Awards()
	require.Len(t, awards, 2)
	assert.Equal(t, SourceTracing, awards[0].Source)
}

func TestSourceFromDefault(t *testing.T) {
	assert.Equal(t, "unknown", SourceFrom(context.Background()))
	assert.Equal(t, "", SessionFrom(context.Background()))
}
