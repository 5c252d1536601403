// Package screentest provides fakes for testing screens without audio or
// a database.
package screentest

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hima/internal/audio"
	"github.com/abhisek/hima/internal/letters"
	"github.com/abhisek/hima/internal/progress"
	"github.com/abhisek/hima/internal/quiz"
	"github.com/abhisek/hima/internal/screen"
	"github.com/abhisek/hima/internal/settings"
)

// Player records every intent it is asked to play.
type Player struct {
	mu      sync.Mutex
	Intents []audio.Intent
}

func (p *Player) Play(_ context.Context, in audio.Intent) audio.Result {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Intents = append(p.Intents, in)
	return audio.Result{Spoke: true}
}

// Last returns the most recent intent, or the zero Intent.
func (p *Player) Last() audio.Intent {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.Intents) == 0 {
		return audio.Intent{}
	}
	return p.Intents[len(p.Intents)-1]
}

// Settings is an in-memory settings store.
type Settings struct {
	mu  sync.Mutex
	cur settings.Settings
	Err error
}

// NewSettings starts from the defaults.
func NewSettings() *Settings {
	return &Settings{cur: settings.Default()}
}

func (s *Settings) Current(context.Context) settings.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

func (s *Settings) SetPreferDeviceSpeech(_ context.Context, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.cur.PreferDeviceSpeech = on
	return nil
}

func (s *Settings) SetLanguage(_ context.Context, l settings.Language) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.cur.Language = l
	return nil
}

// Fixture bundles Services with the fakes behind them.
type Fixture struct {
	Services screen.Services
	Ledger   *progress.Memory
	Player   *Player
	Settings *Settings
}

// New builds services over the embedded sample pack with a seeded quiz.
func New(t *testing.T) *Fixture {
	t.Helper()
	lib, err := letters.Load(letters.Sample())
	if err != nil {
		t.Fatalf("load sample pack: %v", err)
	}
	f := &Fixture{
		Ledger:   progress.NewMemory(),
		Player:   &Player{},
		Settings: NewSettings(),
	}
	f.Services = screen.Services{
		Library:       lib,
		Ledger:        f.Ledger,
		Audio:         f.Player,
		Quiz:          quiz.NewEngine(f.Ledger, rand.New(rand.NewPCG(1, 2)), nil),
		Settings:      f.Settings,
		ExamplesLimit: 3,
	}
	return f
}

// Drain runs cmd and any batched commands it expands to, returning the
// messages produced.
func Drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, Drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// Key builds a key press for a printable key.
func Key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// Special builds a key press for a named key such as tea.KeyEnter.
func Special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}
