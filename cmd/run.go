package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/abhisek/hima/internal/app"
	"github.com/abhisek/hima/internal/config"
	"github.com/abhisek/hima/internal/logging"
	"github.com/abhisek/hima/internal/progress"
	"github.com/abhisek/hima/internal/quiz"
	"github.com/abhisek/hima/internal/screen"
	"github.com/abhisek/hima/internal/settings"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}
	logs, err := logging.Setup(logPath, cfg.Level())
	if err != nil {
		return err
	}
	defer logs.Close()

	lib, err := loadLibrary(cfg)
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	events := st.EventRepo()
	ledger := progress.NewService(events, st.SnapshotRepo())
	prefs := settings.NewStore(st.SettingsRepo(), cfg.Settings())

	sound, err := newAudioStack(ctx, cfg, lib, prefs, true)
	if err != nil {
		return err
	}
	defer sound.Close()

	slog.Info("starting", "version", version, "letters", len(lib.Letters()), "problems", len(lib.Problems()))
	err = app.Run(screen.Services{
		Library:       lib,
		Ledger:        ledger,
		Audio:         sound.service,
		Quiz:          quiz.NewEngine(ledger, quizRand(cfg), events),
		Settings:      prefs,
		Events:        events,
		ExamplesLimit: cfg.ExamplesLimit,
	})

	// Fold this session's stars into a snapshot.
	if cerr := ledger.Compact(context.Background()); cerr != nil {
		slog.Warn("compact progress", "error", cerr)
	}
	return err
}

// quizRand returns a seeded source when the config pins one.
func quizRand(cfg config.Config) *rand.Rand {
	if cfg.QuizSeed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(cfg.QuizSeed, cfg.QuizSeed))
}
