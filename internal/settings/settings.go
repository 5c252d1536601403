// Package settings holds the learner-facing preferences that steer audio
// playback: which language to speak and whether the device voice is used
// for letters.
package settings

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is the learner's speaking language.
type Language string

const (
	Hindi   Language = "hindi"
	Marathi Language = "marathi"
)

// Languages lists the supported languages in cycle order.
var Languages = []Language{Hindi, Marathi}

// DefaultLocale is used when speaking raw letter tokens.
var DefaultLocale = language.Hindi

// ParseLanguage accepts a language name or a BCP 47 tag.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hindi", "hi", "hi-in":
		return Hindi, nil
	case "marathi", "mr", "mr-in":
		return Marathi, nil
	}
	return "", fmt.Errorf("unknown language %q", s)
}

// Locale returns the speech locale for the language.
func (l Language) Locale() language.Tag {
	if l == Marathi {
		return language.Marathi
	}
	return language.Hindi
}

// Next returns the language after l in cycle order.
func (l Language) Next() Language {
	for i, x := range Languages {
		if x == l {
			return Languages[(i+1)%len(Languages)]
		}
	}
	return Hindi
}

// Label is the display name.
func (l Language) Label() string {
	switch l {
	case Marathi:
		return "Marathi (मराठी)"
	default:
		return "Hindi (हिन्दी)"
	}
}

// Settings is a snapshot of the current preferences.
type Settings struct {
	PreferDeviceSpeech bool
	Language           Language
}

// Default returns the out-of-the-box preferences.
func Default() Settings {
	return Settings{PreferDeviceSpeech: true, Language: Hindi}
}

// Locale is shorthand for s.Language.Locale().
func (s Settings) Locale() language.Tag {
	return s.Language.Locale()
}

// Provider exposes the current preferences.
type Provider interface {
	Current(ctx context.Context) Settings
}

// Static is a fixed Provider.
type Static Settings

func (s Static) Current(context.Context) Settings { return Settings(s) }
