// Package examples picks the vocabulary shown for a letter and builds the
// text spoken for each word.
package examples

import (
	"strings"

	"github.com/abhisek/hima/internal/audio"
	"github.com/abhisek/hima/internal/letters"
	"github.com/abhisek/hima/internal/settings"
)

// DefaultLimit is how many examples a practice screen shows.
const DefaultLimit = 3

// Select returns the first limit examples in asset order. It never
// shuffles, so repeated calls on the same pool agree.
func Select(pool []letters.Example, limit int) []letters.Example {
	if limit <= 0 || len(pool) == 0 {
		return []letters.Example{}
	}
	if limit > len(pool) {
		limit = len(pool)
	}
	out := make([]letters.Example, limit)
	copy(out, pool[:limit])
	return out
}

// Sentence returns the example sentence for lang. Marathi prefers the
// dedicated translation when one exists.
func Sentence(ex letters.Example, lang settings.Language) string {
	if lang == settings.Marathi && strings.TrimSpace(ex.SentenceMr) != "" {
		return ex.SentenceMr
	}
	return ex.Sentence
}

// SpeechText is what gets spoken for an example: word, meaning, and
// sentence, skipping blanks.
func SpeechText(ex letters.Example, lang settings.Language) string {
	var parts []string
	for _, p := range []string{ex.Word, ex.Meaning, Sentence(ex, lang)} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ". ")
}

// ListenIntent builds the playback request for an example. Recorded audio
// is tried first when the asset names one.
func ListenIntent(ex letters.Example, lang settings.Language) audio.Intent {
	text := SpeechText(ex, lang)
	if strings.TrimSpace(ex.Audio) != "" {
		return audio.PlayAsset(ex.Audio, text)
	}
	return audio.Speak(text)
}
