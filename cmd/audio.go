package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/text/language"

	"github.com/abhisek/hima/internal/audio"
	"github.com/abhisek/hima/internal/config"
	"github.com/abhisek/hima/internal/letters"
	"github.com/abhisek/hima/internal/player"
	"github.com/abhisek/hima/internal/settings"
	"github.com/abhisek/hima/internal/speech"
)

// audioStack is everything between a playback intent and the speakers.
type audioStack struct {
	player  *player.Player
	engine  speech.Engine
	queue   *speech.Queue
	service *audio.Service
}

// newAudioStack builds the player and speech engine from cfg. With queued
// set, speech goes through a background queue that never blocks the
// caller; otherwise each utterance is spoken before Play returns. An engine
// that cannot be built is replaced by silence.
func newAudioStack(ctx context.Context, cfg config.Config, lib *letters.Library, prefs settings.Provider, queued bool) (*audioStack, error) {
	fsys, dir := assetFS(cfg)
	p, err := player.New(cfg.Player, fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("audio player: %w", err)
	}

	opts := cfg.Speech
	if opts.CacheDir, err = cfg.SpeechCacheDir(); err != nil {
		return nil, fmt.Errorf("speech cache: %w", err)
	}
	engine, err := speech.New(ctx, opts, p)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Speech engine not available:", err)
		fmt.Fprintln(os.Stderr, "Text will not be spoken.")
		engine = speech.Silent{}
	}

	s := &audioStack{player: p, engine: engine}
	var speaker audio.Speaker
	if queued {
		s.queue = speech.NewQueue(engine)
		s.queue.Start(ctx)
		speaker = s.queue
	} else {
		if err := engine.Init(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "Speech engine not available:", err)
			s.engine = speech.Silent{}
		}
		speaker = directSpeaker{engine: s.engine}
	}

	s.service = audio.NewService(audio.NewResolver(lib), prefs, audio.NewExecutor(p, speaker))
	return s, nil
}

// Close stops playback and shuts the engine down.
func (s *audioStack) Close() error {
	var err error
	if s.queue != nil {
		err = s.queue.Close()
	} else {
		err = s.engine.Close()
	}
	if cerr := s.player.Close(); err == nil {
		err = cerr
	}
	return err
}

// directSpeaker speaks synchronously.
type directSpeaker struct {
	engine speech.Engine
}

func (d directSpeaker) Speak(ctx context.Context, text string, locale language.Tag) {
	if err := d.engine.Say(ctx, text, locale); err != nil {
		slog.Warn("speak", "text", text, "error", err)
		fmt.Fprintln(os.Stderr, "speech failed:", err)
	}
}
