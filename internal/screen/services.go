package screen

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hima/internal/audio"
	"github.com/abhisek/hima/internal/letters"
	"github.com/abhisek/hima/internal/progress"
	"github.com/abhisek/hima/internal/quiz"
	"github.com/abhisek/hima/internal/settings"
	"github.com/abhisek/hima/internal/store"
)

// Player plays a playback intent.
type Player interface {
	Play(ctx context.Context, in audio.Intent) audio.Result
}

// SettingsStore reads and changes the learner's preferences.
type SettingsStore interface {
	settings.Provider
	SetPreferDeviceSpeech(ctx context.Context, on bool) error
	SetLanguage(ctx context.Context, l settings.Language) error
}

// EventLog reads recorded stars and quiz answers, newest first.
type EventLog interface {
	QueryStarEvents(ctx context.Context, opts store.QueryOpts) ([]store.StarEventRecord, error)
	QueryQuizEvents(ctx context.Context, opts store.QueryOpts) ([]store.QuizEventRecord, error)
}

// Services are the collaborators screens share.
type Services struct {
	Library       *letters.Library
	Ledger        progress.Tally
	Audio         Player
	Quiz          *quiz.Engine
	Settings      SettingsStore
	Events        EventLog
	ExamplesLimit int
}

// StarsChangedMsg tells the app that a star was added or progress reset,
// so totals shown outside the screen are re-read.
type StarsChangedMsg struct{}

// PlayedMsg reports a finished playback.
type PlayedMsg struct {
	Intent audio.Intent
	Result audio.Result
}

// Play returns a command that plays in off the update loop.
func (s Services) Play(in audio.Intent) tea.Cmd {
	if s.Audio == nil {
		return nil
	}
	return func() tea.Msg {
		return PlayedMsg{Intent: in, Result: s.Audio.Play(context.Background(), in)}
	}
}

// PlayEach plays intents one after another in a single command and
// reports the last one.
func (s Services) PlayEach(ins ...audio.Intent) tea.Cmd {
	if s.Audio == nil || len(ins) == 0 {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()
		var msg PlayedMsg
		for _, in := range ins {
			msg = PlayedMsg{Intent: in, Result: s.Audio.Play(ctx, in)}
		}
		return msg
	}
}

// Language returns the current language, defaulting to Hindi.
func (s Services) Language() settings.Language {
	if s.Settings == nil {
		return settings.Hindi
	}
	return s.Settings.Current(context.Background()).Language
}

// Stars returns the star count of letter, or 0 when it cannot be read.
func (s Services) Stars(letter string) int {
	if s.Ledger == nil {
		return 0
	}
	n, err := s.Ledger.Stars(context.Background(), letter)
	if err != nil {
		return 0
	}
	return n
}

// StarsChanged is a command that emits StarsChangedMsg.
func StarsChanged() tea.Msg { return StarsChangedMsg{} }
