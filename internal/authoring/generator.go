// Package authoring drafts vocabulary examples for letter assets with an
// LLM and merges them into letter files.
package authoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abhisek/hima/internal/letters"
	"github.com/abhisek/hima/internal/llm"
)

// ErrNoUsableExamples means every generated example was rejected.
var ErrNoUsableExamples = errors.New("no usable examples generated")

// Config controls generation.
type Config struct {
	// Count is how many new words to ask for.
	Count int

	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the defaults.
func DefaultConfig() Config {
	return Config{Count: 5, MaxTokens: 1024, Temperature: 0.7}
}

// Generator drafts examples through an LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator.
func New(provider llm.Provider, cfg Config) *Generator {
	if cfg.Count < 1 {
		cfg.Count = DefaultConfig().Count
	}
	return &Generator{provider: provider, config: cfg}
}

type examplesOutput struct {
	Examples []letters.Example `json:"examples"`
}

// Generate asks for new examples of letter. Words that do not start with
// the letter, or that repeat an existing or earlier word, are dropped.
// At most Count examples are returned.
func (g *Generator) Generate(ctx context.Context, letter string, existing []letters.Example) ([]letters.Example, error) {
	letter = letters.Normalize(letter)
	ctx = llm.WithPurpose(ctx, llm.PurposeExamples)

	req := llm.UserPrompt(systemPrompt, buildUserMessage(letter, g.config.Count, existing), ExamplesSchema)
	req.MaxTokens = g.config.MaxTokens
	req.Temperature = g.config.Temperature

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate examples for %s: %w", letter, err)
	}

	var out examplesOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse examples: %w", err)
	}

	seen := make(map[string]bool, len(existing))
	for _, ex := range existing {
		seen[letters.Normalize(ex.Word)] = true
	}

	var kept []letters.Example
	for _, ex := range out.Examples {
		ex = clean(ex)
		if reason := reject(letter, ex, seen); reason != "" {
			slog.Debug("drop generated example", "letter", letter, "word", ex.Word, "reason", reason)
			continue
		}
		seen[ex.Word] = true
		kept = append(kept, ex)
		if len(kept) == g.config.Count {
			break
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoUsableExamples, letter)
	}
	return kept, nil
}

// clean normalizes every text field. Audio is never generated.
func clean(ex letters.Example) letters.Example {
	return letters.Example{
		Word:       letters.Normalize(ex.Word),
		Emoji:      strings.TrimSpace(ex.Emoji),
		Meaning:    strings.TrimSpace(ex.Meaning),
		Sentence:   letters.Normalize(ex.Sentence),
		SentenceMr: letters.Normalize(ex.SentenceMr),
	}
}

func reject(letter string, ex letters.Example, seen map[string]bool) string {
	switch {
	case ex.Word == "":
		return "empty word"
	case !strings.HasPrefix(ex.Word, letter):
		return "does not start with letter"
	case seen[ex.Word]:
		return "duplicate"
	case ex.Meaning == "":
		return "no meaning"
	}
	return ""
}
