package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, table := range []string{"star_events", "quiz_events", "llm_events", "snapshots", "settings", "global_sequence"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}

	last, err := s.seq.Last(ctx)
	if err != nil {
		t.Fatalf("last: %v", err)
	}
	if last != 5 {
		t.Errorf("last = %d, want 5", last)
	}
}

func TestStarEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, l := range []string{"क", "क", "ख"} {
		if err := repo.AppendStarEvent(ctx, StarEventData{Letter: l, Source: "quiz", SessionID: "s1"}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	n, err := repo.StarCount(ctx, "क", 0)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("StarCount(क) = %d, want 2", n)
	}

	// Only the third event is after sequence 2.
	counts, err := repo.StarCounts(ctx, 2)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if len(counts) != 1 || counts["ख"] != 1 {
		t.Errorf("StarCounts(after 2) = %v, want map[ख:1]", counts)
	}

	events, err := repo.QueryStarEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	if events[0].Letter != "ख" || events[0].Sequence != 3 {
		t.Errorf("newest = %+v, want ख at sequence 3", events[0])
	}
	if events[0].Source != "quiz" || events[0].SessionID != "s1" {
		t.Errorf("source/session = %q/%q", events[0].Source, events[0].SessionID)
	}
}

func TestQueryWindow(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, l := range []string{"अ", "आ", "इ", "ई", "उ"} {
		if err := repo.AppendStarEvent(ctx, StarEventData{Letter: l}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryStarEvents(ctx, QueryOpts{After: 1, Before: 5})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	var got []string
	for _, e := range events {
		got = append(got, e.Letter)
	}
	if strings.Join(got, " ") != "ई इ आ" {
		t.Errorf("window = %v, want [ई इ आ]", got)
	}

	future := time.Now().Add(time.Hour)
	events, err = repo.QueryStarEvents(ctx, QueryOpts{From: future})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("events from the future = %d, want 0", len(events))
	}

	events, err = repo.QueryStarEvents(ctx, QueryOpts{To: future, Limit: 1})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 || events[0].Letter != "उ" {
		t.Errorf("latest = %+v, want उ", events)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hima.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.EventRepo().AppendStarEvent(ctx, StarEventData{Letter: "क"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	n, err := s.EventRepo().StarCount(ctx, "क", 0)
	if err != nil || n != 1 {
		t.Errorf("StarCount after reopen = %d, %v; want 1", n, err)
	}
	seq, err := s.seq.Next(ctx)
	if err != nil || seq != 2 {
		t.Errorf("next sequence after reopen = %d, %v; want 2", seq, err)
	}
}

func TestQuizEventsAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []QuizEventData{
		{Letter: "अ", Target: "आम", Chosen: "आम", Correct: true},
		{Letter: "अ", Target: "आम", Chosen: "अनार", Correct: false},
		{Letter: "क", Target: "कमल", Chosen: "कमल", Correct: true},
	}
	for _, a := range answers {
		if err := repo.AppendQuizEvent(ctx, a); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.QuizStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("len = %d, want 2", len(stats))
	}
	if stats[0] != (QuizStat{Letter: "अ", Correct: 1, Total: 2}) {
		t.Errorf("stats[0] = %+v", stats[0])
	}

	events, err := repo.QueryQuizEvents(ctx, QueryOpts{After: 1})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("events after 1 = %d, want 2", len(events))
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "examples",
		InputTokens:  10,
		OutputTokens: 20,
		Success:      true,
		RequestBody:  "[user]\nhello",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len = %d, want 1", len(events))
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || !e.Success || e.Purpose != "examples" || e.RequestBody != "[user]\nhello" {
		t.Errorf("event = %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 999)
	if err != nil || missing != nil {
		t.Errorf("GetLLMEvent(999) = %v, %v; want nil, nil", missing, err)
	}
}

func TestSnapshotSaveLatestPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil || snap != nil {
		t.Fatalf("latest (empty) = %v, %v", snap, err)
	}

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1, Stars: map[string]int{"क": i}},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 || snap.Data.Stars["क"] != 6 {
		t.Errorf("latest = %+v, want sequence 7 with 6 stars", snap)
	}
}

func TestResetProgress(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	settings := s.SettingsRepo()
	ctx := context.Background()

	_ = repo.AppendStarEvent(ctx, StarEventData{Letter: "क"})
	_ = repo.AppendQuizEvent(ctx, QuizEventData{Letter: "क", Target: "a", Chosen: "a", Correct: true})
	_ = s.SnapshotRepo().Save(ctx, &Snapshot{Sequence: 2})
	_ = settings.SetSetting(ctx, "language", "marathi")

	if err := repo.ResetProgress(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	n, _ := repo.StarCount(ctx, "क", 0)
	if n != 0 {
		t.Errorf("stars after reset = %d, want 0", n)
	}
	snap, _ := s.SnapshotRepo().Latest(ctx)
	if snap != nil {
		t.Errorf("snapshot survived reset: %+v", snap)
	}
	v, ok, _ := settings.GetSetting(ctx, "language")
	if !ok || v != "marathi" {
		t.Errorf("settings should survive reset, got %q %v", v, ok)
	}
}

func TestSettingsUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.SettingsRepo()
	ctx := context.Background()

	if _, ok, err := repo.GetSetting(ctx, "use_tts"); ok || err != nil {
		t.Fatalf("unset key: ok=%v err=%v", ok, err)
	}

	for _, v := range []string{"true", "false"} {
		if err := repo.SetSetting(ctx, "use_tts", v); err != nil {
			t.Fatalf("set: %v", err)
		}
	}
	v, ok, err := repo.GetSetting(ctx, "use_tts")
	if err != nil || !ok || v != "false" {
		t.Errorf("GetSetting = %q, %v, %v; want false", v, ok, err)
	}
}

func TestDefaultDBPathEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HIMA_DB", dir+"/sub/test.db")

	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if p != dir+"/sub/test.db" {
		t.Errorf("path = %q", p)
	}
}

func TestDefaultDBPathXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HIMA_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if want := dir + "/hima/hima.db"; p != want {
		t.Errorf("path = %q, want %q", p, want)
	}
}
