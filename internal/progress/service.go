package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/hima/internal/letters"
	"github.com/abhisek/hima/internal/store"
)

const (
	snapshotVersion = 1
	snapshotsKept   = 5
)

// Service is the persistent Ledger. Stars are append-only events; the
// count for a letter is the latest snapshot plus the events after it.
type Service struct {
	events store.EventRepo
	snaps  store.SnapshotRepo
}

var _ Tally = (*Service)(nil)

// NewService creates a Service over the store repositories.
func NewService(events store.EventRepo, snaps store.SnapshotRepo) *Service {
	return &Service{events: events, snaps: snaps}
}

// Stars returns the number of stars earned for letter. Unseen letters
// have zero.
func (s *Service) Stars(ctx context.Context, letter string) (int, error) {
	base, seq, err := s.base(ctx)
	if err != nil {
		return 0, err
	}
	l := letters.Normalize(letter)
	n, err := s.events.StarCount(ctx, l, seq)
	if err != nil {
		return 0, err
	}
	return base[l] + n, nil
}

// AddStar records one star for letter. The source and session on ctx are
// stored with it.
func (s *Service) AddStar(ctx context.Context, letter string) error {
	l := letters.Normalize(letter)
	if l == "" {
		return fmt.Errorf("add star: %w", ErrEmptyLetter)
	}
	return s.events.AppendStarEvent(ctx, store.StarEventData{
		Letter:    l,
		Source:    SourceFrom(ctx),
		SessionID: SessionFrom(ctx),
	})
}

// All returns the star count of every letter that has any.
func (s *Service) All(ctx context.Context) (map[string]int, error) {
	base, seq, err := s.base(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.events.StarCounts(ctx, seq)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(base)+len(recent))
	for l, n := range base {
		out[l] = n
	}
	for l, n := range recent {
		out[l] += n
	}
	return out, nil
}

// Total returns the sum of all stars.
func (s *Service) Total(ctx context.Context) (int, error) {
	all, err := s.All(ctx)
	if err != nil {
		return 0, err
	}
	var total int
	for _, n := range all {
		total += n
	}
	return total, nil
}

// Compact folds current counts into a new snapshot and prunes old ones.
func (s *Service) Compact(ctx context.Context) error {
	seq, err := s.events.LatestSequence(ctx)
	if err != nil {
		return err
	}
	all, err := s.All(ctx)
	if err != nil {
		return err
	}
	err = s.snaps.Save(ctx, &store.Snapshot{
		Sequence:  seq,
		Timestamp: time.Now(),
		Data:      store.SnapshotData{Version: snapshotVersion, Stars: all},
	})
	if err != nil {
		return err
	}
	return s.snaps.Prune(ctx, snapshotsKept)
}

// Reset wipes all progress.
func (s *Service) Reset(ctx context.Context) error {
	return s.events.ResetProgress(ctx)
}

func (s *Service) base(ctx context.Context) (map[string]int, int64, error) {
	snap, err := s.snaps.Latest(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return map[string]int{}, 0, nil
	}
	stars := snap.Data.Stars
	if stars == nil {
		stars = map[string]int{}
	}
	return stars, snap.Sequence, nil
}
