// Package tracing records freehand tracing of a letter and awards a star
// when the learner marks a non-empty tracing complete.
package tracing

import (
	"context"
	"fmt"

	"github.com/abhisek/hima/internal/progress"
)

// Point is a position on the tracing canvas.
type Point struct {
	X, Y float64
}

// State is the lifecycle position of a Session.
type State int

const (
	Empty State = iota
	Active
	Completed
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Active:
		return "active"
	case Completed:
		return "completed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Session is the tracing state for one letter. It is not safe for
// concurrent use; the UI loop owns it.
type Session struct {
	letter string
	ledger progress.Ledger

	strokes    [][]Point
	open       bool
	hasStrokes bool
	clearEpoch int
	state      State
}

// New starts an empty session for letter.
func New(letter string, ledger progress.Ledger) *Session {
	return &Session{letter: letter, ledger: ledger}
}

// BeginStroke opens a new stroke at p. It returns false on a completed
// session.
func (s *Session) BeginStroke(p Point) bool {
	if s.state == Completed {
		return false
	}
	s.strokes = append(s.strokes, []Point{p})
	s.open = true
	s.hasStrokes = true
	s.state = Active
	return true
}

// ExtendStroke appends p to the open stroke. Without an open stroke it
// does nothing and returns false.
func (s *Session) ExtendStroke(p Point) bool {
	if s.state == Completed || !s.open || len(s.strokes) == 0 {
		return false
	}
	last := len(s.strokes) - 1
	s.strokes[last] = append(s.strokes[last], p)
	return true
}

// EndStroke closes the open stroke. Later extends are ignored until the
// next BeginStroke.
func (s *Session) EndStroke() {
	s.open = false
}

// Clear drops every stroke and returns to Empty. It returns false on a
// completed session.
func (s *Session) Clear() bool {
	if s.state == Completed {
		return false
	}
	s.strokes = nil
	s.open = false
	s.hasStrokes = false
	s.clearEpoch++
	s.state = Empty
	return true
}

// MarkComplete awards one star for the letter and completes the session.
// It returns false without touching the ledger when there is nothing
// traced or the session is already complete. A ledger error leaves the
// session unchanged so the learner can try again. A session without a
// ledger completes without recording a star.
func (s *Session) MarkComplete(ctx context.Context) (bool, error) {
	if s.state == Completed || !s.hasStrokes {
		return false, nil
	}
	if s.ledger != nil {
		ctx = progress.WithSource(ctx, progress.SourceTracing)
		if err := s.ledger.AddStar(ctx, s.letter); err != nil {
			return false, fmt.Errorf("award tracing star: %w", err)
		}
	}
	s.open = false
	s.state = Completed
	return true, nil
}

// Reset replaces the session with a fresh empty one for the same letter.
// The clear epoch keeps counting so canvases can tell a reset happened.
func (s *Session) Reset() {
	epoch := s.clearEpoch + 1
	*s = Session{letter: s.letter, ledger: s.ledger, clearEpoch: epoch}
}

// Letter returns the letter being traced.
func (s *Session) Letter() string { return s.letter }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// HasStrokes reports whether anything was traced since the last clear.
func (s *Session) HasStrokes() bool { return s.hasStrokes }

// ClearEpoch counts clears and resets.
func (s *Session) ClearEpoch() int { return s.clearEpoch }

// Strokes returns a copy of the recorded strokes in drawing order.
func (s *Session) Strokes() [][]Point {
	out := make([][]Point, len(s.strokes))
	for i, st := range s.strokes {
		out[i] = append([]Point(nil), st...)
	}
	return out
}
