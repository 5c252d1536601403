// Package quiz runs "identify the word" rounds: the learner hears a word
// and picks it from up to four examples of the same letter.
package quiz

import (
	"errors"

	"github.com/abhisek/hima/internal/letters"
)

// MaxCandidates is the most choices a round offers.
const MaxCandidates = 4

var (
	// ErrNotEnoughExamples means the letter has no examples to quiz on.
	ErrNotEnoughExamples = errors.New("not enough examples for a quiz")

	// ErrTargetNotInPool means a forced target is not one of the examples.
	ErrTargetNotInPool = errors.New("target is not in the example pool")

	// ErrRoundClosed means the round was already answered.
	ErrRoundClosed = errors.New("round already answered")

	// ErrNoSelection means the submitted index names no candidate.
	ErrNoSelection = errors.New("no candidate selected")
)

// Outcome is the result of a submitted answer.
type Outcome int

const (
	Incorrect Outcome = iota
	Correct
)

func (o Outcome) String() string {
	if o == Correct {
		return "correct"
	}
	return "incorrect"
}

// Round is one question. Candidates are shuffled once when the round is
// built and keep that order for the life of the round.
type Round struct {
	ID         string
	Letter     string
	Target     letters.Example
	Candidates []letters.Example

	// Selected is the highlighted candidate, or -1.
	Selected int

	pool      []letters.Example
	displayed []letters.Example
	answered  bool
	outcome   Outcome
}

// Select highlights candidate i. Out of range clears the highlight.
func (r *Round) Select(i int) {
	if r.answered {
		return
	}
	if i < 0 || i >= len(r.Candidates) {
		r.Selected = -1
		return
	}
	r.Selected = i
}

// TargetIndex is the position of the target among the candidates.
func (r *Round) TargetIndex() int {
	for i, c := range r.Candidates {
		if c == r.Target {
			return i
		}
	}
	return -1
}

// Answered reports whether a submission was accepted.
func (r *Round) Answered() bool { return r.answered }

// Outcome returns the result once the round is answered.
func (r *Round) Outcome() (Outcome, bool) {
	return r.outcome, r.answered
}
