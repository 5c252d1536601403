package speech

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
)

// CloudEngine speaks through a Synthesizer. Rendered audio is cached as mp3
// under cacheDir and played with a FilePlayer.
type CloudEngine struct {
	synth    Synthesizer
	player   FilePlayer
	cacheDir string
}

// NewCloudEngine creates a CloudEngine.
func NewCloudEngine(synth Synthesizer, player FilePlayer, cacheDir string) *CloudEngine {
	return &CloudEngine{synth: synth, player: player, cacheDir: cacheDir}
}

// Init prepares the cache directory.
func (e *CloudEngine) Init(context.Context) error {
	if e.player == nil {
		return fmt.Errorf("%w: no audio player", ErrNotReady)
	}
	if err := os.MkdirAll(e.cacheDir, 0o755); err != nil {
		return fmt.Errorf("create speech cache: %w", err)
	}
	return nil
}

// Say renders text if it is not cached yet and plays it.
func (e *CloudEngine) Say(ctx context.Context, text string, locale language.Tag) error {
	path, err := e.Render(ctx, text, locale)
	if err != nil {
		return err
	}
	return e.player.PlayFile(ctx, path)
}

// Render returns the cached mp3 for text, synthesizing it on a miss.
func (e *CloudEngine) Render(ctx context.Context, text string, locale language.Tag) (string, error) {
	path := filepath.Join(e.cacheDir, SafeFilename(locale.String()+" "+text)+".mp3")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	data, err := e.synth.Synthesize(ctx, text, locale)
	if err != nil {
		return "", fmt.Errorf("synthesize: %w", err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return "", fmt.Errorf("cache speech: %w", err)
	}
	slog.Debug("cached speech", "path", path)
	return path, nil
}

func (e *CloudEngine) Close() error {
	return e.synth.Close()
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".speech-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
