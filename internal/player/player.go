// Package player plays mp3 files through a local command line player.
// Logical asset paths such as "audio/letters/क.mp3" are resolved against
// the asset pack.
package player

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNoPlayer means no audio player command was found.
var ErrNoPlayer = errors.New("no audio player found")

// candidates are tried in order when no command is configured.
var candidates = [][]string{
	{"mpg123", "-q"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
	{"mpv", "--no-video", "--really-quiet"},
	{"afplay"},
}

// Options configures the player.
type Options struct {
	// Command is the player program and its leading arguments, for example
	// "mpg123 -q". The file path is appended.
	Command string `yaml:"command,omitempty"`
}

// Player plays one asset at a time. Starting an asset stops the previous
// one.
type Player struct {
	argv   []string
	assets fs.FS
	dir    string
	tmp    string

	mu      sync.Mutex
	current *exec.Cmd
	done    chan struct{}
}

// New creates a Player for the asset pack in assets. dir is the pack's
// directory on disk, or empty for a pack that is not on disk (such as the
// embedded sample), whose files are copied to a temporary directory before
// playback.
func New(opts Options, assets fs.FS, dir string) (*Player, error) {
	argv, err := command(opts.Command)
	if err != nil {
		return nil, err
	}
	return &Player{argv: argv, assets: assets, dir: dir}, nil
}

func command(configured string) ([]string, error) {
	if fields := strings.Fields(configured); len(fields) > 0 {
		if _, err := exec.LookPath(fields[0]); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNoPlayer, fields[0])
		}
		return fields, nil
	}
	for _, c := range candidates {
		if _, err := exec.LookPath(c[0]); err == nil {
			return c, nil
		}
	}
	return nil, ErrNoPlayer
}

// PlayAsset starts the asset at the logical path and reports whether it
// started. It never returns an error; a missing asset, a bad path and a
// failed player all report false.
func (p *Player) PlayAsset(ctx context.Context, logical string) bool {
	path, err := p.resolve(logical)
	if err != nil {
		slog.Debug("asset not playable", "path", logical, "error", err)
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()

	cmd := exec.Command(p.argv[0], append(p.argv[1:], path)...)
	if err := cmd.Start(); err != nil {
		slog.Warn("start audio player", "path", logical, "error", err)
		return false
	}
	done := make(chan struct{})
	p.current, p.done = cmd, done
	go func() {
		_ = cmd.Wait()
		close(done)
		p.mu.Lock()
		if p.current == cmd {
			p.current = nil
		}
		p.mu.Unlock()
	}()
	return true
}

// PlayFile plays a file on disk and waits for it to finish.
func (p *Player) PlayFile(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, p.argv[0], append(p.argv[1:], path)...)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("play %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Wait blocks until the asset started last has finished.
func (p *Player) Wait() {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Stop ends the asset that is playing, if any.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Player) stopLocked() {
	if p.current != nil && p.current.Process != nil {
		_ = p.current.Process.Kill()
	}
	p.current = nil
}

// Close stops playback and removes copied assets.
func (p *Player) Close() error {
	p.Stop()
	if p.tmp != "" {
		return os.RemoveAll(p.tmp)
	}
	return nil
}

func (p *Player) resolve(logical string) (string, error) {
	logical = strings.TrimPrefix(logical, "/")
	if !fs.ValidPath(logical) || logical == "." {
		return "", fmt.Errorf("invalid asset path %q", logical)
	}

	if p.dir != "" {
		path := filepath.Join(p.dir, filepath.FromSlash(logical))
		if _, err := os.Stat(path); err != nil {
			return "", err
		}
		return path, nil
	}
	if p.assets == nil {
		return "", fs.ErrNotExist
	}
	return p.materialize(logical)
}

// materialize copies an asset out of a pack that is not on disk.
func (p *Player) materialize(logical string) (string, error) {
	data, err := fs.ReadFile(p.assets, logical)
	if err != nil {
		return "", err
	}

	p.mu.Lock()
	if p.tmp == "" {
		dir, err := os.MkdirTemp("", "hima-assets-")
		if err != nil {
			p.mu.Unlock()
			return "", err
		}
		p.tmp = dir
	}
	root := p.tmp
	p.mu.Unlock()

	path := filepath.Join(root, filepath.FromSlash(logical))
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
