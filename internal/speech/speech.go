// Package speech synthesizes spoken text. A Queue fronts an Engine that may
// take a while to become ready; requests made before then are held in
// order and flushed once it is.
package speech

import (
	"context"
	"errors"

	"golang.org/x/text/language"
)

var (
	// ErrNotReady means the engine has not finished starting.
	ErrNotReady = errors.New("speech engine not ready")

	// ErrUnknownEngine means the configured engine name is not supported.
	ErrUnknownEngine = errors.New("unknown speech engine")
)

// Engine speaks one utterance at a time. Say blocks until the utterance is
// finished or ctx is cancelled.
type Engine interface {
	Init(ctx context.Context) error
	Say(ctx context.Context, text string, locale language.Tag) error
	Close() error
}

// Synthesizer renders text to mp3 bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, locale language.Tag) ([]byte, error)
	Close() error
}

// FilePlayer plays an audio file and returns when it ends.
type FilePlayer interface {
	PlayFile(ctx context.Context, path string) error
}

// Silent is an Engine that says nothing.
type Silent struct{}

func (Silent) Init(context.Context) error                      { return nil }
func (Silent) Say(context.Context, string, language.Tag) error { return nil }
func (Silent) Close() error                                    { return nil }
