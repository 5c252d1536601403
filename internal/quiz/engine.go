package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/abhisek/hima/internal/letters"
	"github.com/abhisek/hima/internal/progress"
	"github.com/abhisek/hima/internal/settings"
	"github.com/abhisek/hima/internal/store"
)

// Recorder stores submitted answers. It is optional.
type Recorder interface {
	AppendQuizEvent(ctx context.Context, data store.QuizEventData) error
}

// Engine builds and scores rounds. All randomness comes from rng so a
// seeded source gives repeatable rounds.
type Engine struct {
	rng      *rand.Rand
	ledger   progress.Ledger
	recorder Recorder
}

// NewEngine creates an Engine. A nil rng is replaced with an entropy-seeded
// source; a nil recorder disables answer history. Without a ledger correct
// answers are scored but no star is kept.
func NewEngine(ledger progress.Ledger, rng *rand.Rand, recorder Recorder) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Engine{rng: rng, ledger: ledger, recorder: recorder}
}

// StartRound picks a target at random from the displayed examples that are
// in the pool, or from the whole pool when none are, and adds up to three
// other examples from the pool as distractors.
func (e *Engine) StartRound(letter string, pool, displayed []letters.Example) (*Round, error) {
	distinct := unique(pool)
	if len(distinct) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotEnoughExamples, letter)
	}

	var from []letters.Example
	for _, ex := range unique(displayed) {
		if contains(distinct, ex) {
			from = append(from, ex)
		}
	}
	if len(from) == 0 {
		from = distinct
	}
	target := from[e.rng.IntN(len(from))]

	return e.build(letter, target, distinct, displayed), nil
}

// StartRoundFor builds a round around a chosen target.
func (e *Engine) StartRoundFor(letter string, pool []letters.Example, target letters.Example) (*Round, error) {
	distinct := unique(pool)
	if len(distinct) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotEnoughExamples, letter)
	}
	if !contains(distinct, target) {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotInPool, target.Word)
	}
	return e.build(letter, target, distinct, nil), nil
}

func (e *Engine) build(letter string, target letters.Example, distinct, displayed []letters.Example) *Round {
	rest := make([]letters.Example, 0, len(distinct))
	for _, ex := range distinct {
		if ex != target {
			rest = append(rest, ex)
		}
	}
	e.rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	if len(rest) > MaxCandidates-1 {
		rest = rest[:MaxCandidates-1]
	}

	candidates := append([]letters.Example{target}, rest...)
	e.rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })

	return &Round{
		ID:         uuid.NewString(),
		Letter:     letter,
		Target:     target,
		Candidates: candidates,
		Selected:   -1,
		pool:       distinct,
		displayed:  append([]letters.Example(nil), displayed...),
	}
}

// Submit scores candidate index of round. A correct answer adds exactly one
// star. A round takes one accepted answer; if the star cannot be saved the
// round stays open so the answer can be resubmitted.
func (e *Engine) Submit(ctx context.Context, round *Round, index int) (Outcome, error) {
	if round.answered {
		return round.outcome, ErrRoundClosed
	}
	if index < 0 || index >= len(round.Candidates) {
		return Incorrect, fmt.Errorf("%w: index %d of %d", ErrNoSelection, index, len(round.Candidates))
	}

	chosen := round.Candidates[index]
	outcome := Incorrect
	if chosen == round.Target {
		outcome = Correct
		if e.ledger != nil {
			ctx := progress.WithSource(ctx, progress.SourceQuiz)
			if err := e.ledger.AddStar(ctx, round.Letter); err != nil {
				return Incorrect, fmt.Errorf("award quiz star: %w", err)
			}
		}
	}

	round.Selected = index
	round.answered = true
	round.outcome = outcome
	e.record(ctx, round, chosen, outcome)
	return outcome, nil
}

// Retry drops round and starts a fresh one from the same examples. The
// ledger is not touched.
func (e *Engine) Retry(round *Round) (*Round, error) {
	return e.StartRound(round.Letter, round.pool, round.displayed)
}

// Cheer picks praise for a correct answer.
func (e *Engine) Cheer(lang settings.Language) Cheer {
	return PickCheer(lang, e.rng)
}

func (e *Engine) record(ctx context.Context, round *Round, chosen letters.Example, outcome Outcome) {
	if e.recorder == nil {
		return
	}
	err := e.recorder.AppendQuizEvent(ctx, store.QuizEventData{
		SessionID: progress.SessionFrom(ctx),
		Letter:    round.Letter,
		Target:    round.Target.Word,
		Chosen:    chosen.Word,
		Correct:   outcome == Correct,
	})
	if err != nil {
		slog.Warn("record quiz answer", "round", round.ID, "error", err)
	}
}

// unique drops repeated examples, keeping the first of each.
func unique(pool []letters.Example) []letters.Example {
	out := make([]letters.Example, 0, len(pool))
	for _, ex := range pool {
		if !contains(out, ex) {
			out = append(out, ex)
		}
	}
	return out
}

func contains(pool []letters.Example, ex letters.Example) bool {
	for _, p := range pool {
		if p == ex {
			return true
		}
	}
	return false
}
