package speech

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"

	"golang.org/x/text/language"
)

// CommandEngine speaks through a local program such as espeak-ng or the
// macOS say command.
type CommandEngine struct {
	command string
	voice   string
	path    string
}

// NewCommandEngine creates a CommandEngine. An empty command picks the
// platform default.
func NewCommandEngine(command, voice string) *CommandEngine {
	if command == "" {
		command = defaultCommand()
	}
	return &CommandEngine{command: command, voice: voice}
}

func defaultCommand() string {
	if runtime.GOOS == "darwin" {
		return "say"
	}
	return "espeak-ng"
}

// Init looks the command up on PATH.
func (e *CommandEngine) Init(context.Context) error {
	p, err := exec.LookPath(e.command)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotReady, e.command, err)
	}
	e.path = p
	return nil
}

// Say runs the command and waits for it. Cancelling ctx kills it.
func (e *CommandEngine) Say(ctx context.Context, text string, locale language.Tag) error {
	if e.path == "" {
		return ErrNotReady
	}
	cmd := exec.CommandContext(ctx, e.path, e.args(text, locale)...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", e.command, err)
	}
	return nil
}

func (e *CommandEngine) args(text string, locale language.Tag) []string {
	switch filepath.Base(e.command) {
	case "espeak-ng", "espeak":
		voice := e.voice
		if voice == "" {
			base, _ := locale.Base()
			voice = base.String()
		}
		return []string{"-v", voice, text}
	case "say":
		if e.voice != "" {
			return []string{"-v", e.voice, text}
		}
		return []string{text}
	default:
		return []string{text}
	}
}

func (e *CommandEngine) Close() error { return nil }
