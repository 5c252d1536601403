// Package progress tracks the stars a learner earns per letter.
package progress

import (
	"context"
	"errors"
	"sync"

	"github.com/abhisek/hima/internal/letters"
)

// ErrEmptyLetter is returned when a star is added for a blank letter.
var ErrEmptyLetter = errors.New("empty letter")

// Ledger is a per-letter star counter. AddStar always adds exactly one
// star; callers decide when a star is earned.
type Ledger interface {
	Stars(ctx context.Context, letter string) (int, error)
	AddStar(ctx context.Context, letter string) error
}

// Tally is a Ledger that can also report every letter at once.
type Tally interface {
	Ledger
	All(ctx context.Context) (map[string]int, error)
	Total(ctx context.Context) (int, error)
}

// Memory is an in-process Ledger.
type Memory struct {
	mu    sync.Mutex
	stars map[string]int
	log   []Award
}

// Award is one AddStar call seen by a Memory ledger.
type Award struct {
	Letter    string
	Source    string
	SessionID string
}

var _ Tally = (*Memory)(nil)

// NewMemory returns an empty in-memory ledger.
func NewMemory() *Memory {
	return &Memory{stars: make(map[string]int)}
}

func (m *Memory) Stars(_ context.Context, letter string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stars[letters.Normalize(letter)], nil
}

func (m *Memory) AddStar(ctx context.Context, letter string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l := letters.Normalize(letter)
	if l == "" {
		return ErrEmptyLetter
	}
	m.stars[l]++
	m.log = append(m.log, Award{Letter: l, Source: SourceFrom(ctx), SessionID: SessionFrom(ctx)})
	return nil
}

func (m *Memory) All(context.Context) (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int, len(m.stars))
	for l, n := range m.stars {
		out[l] = n
	}
	return out, nil
}

func (m *Memory) Total(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.log), nil
}

// Awards returns every AddStar call in order.
func (m *Memory) Awards() []Award {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Award(nil), m.log...)
}
