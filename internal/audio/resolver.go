package audio

import (
	"path"
	"strings"

	"golang.org/x/text/language"

	"github.com/abhisek/hima/internal/letters"
	"github.com/abhisek/hima/internal/settings"
)

const (
	lettersDir  = "audio/letters"
	combinedDir = "audio/combined"
)

// Speech is an utterance and the locale to speak it in.
type Speech struct {
	Text   string
	Locale language.Tag
}

// Plan is the resolved playback decision: try each asset in order and stop
// at the first that plays; if none does, speak Speech. No assets means
// speak now. A nil Speech means stay silent when the assets fail.
type Plan struct {
	Assets []string
	Speech *Speech
}

// Silent reports whether the plan does nothing.
func (p Plan) Silent() bool {
	return len(p.Assets) == 0 && p.Speech == nil
}

// LetterAudio looks up the recorded audio declared for a letter.
type LetterAudio interface {
	LetterAudio(letter string) (string, bool)
}

// Resolver turns intents into plans. It performs no I/O beyond the injected
// lookup.
type Resolver struct {
	letters LetterAudio
}

// NewResolver creates a Resolver. A nil lookup skips the letter-file step
// for legacy tokens.
func NewResolver(lookup LetterAudio) *Resolver {
	return &Resolver{letters: lookup}
}

// Resolve decides how in is played under s.
func (r *Resolver) Resolve(in Intent, s settings.Settings) Plan {
	switch in.Kind {
	case KindPlayAsset:
		var p Plan
		if in.Path != "" {
			p.Assets = []string{in.Path}
		}
		p.Speech = speech(in.Text, s.Locale())
		return p

	case KindSpeak:
		return Plan{Speech: speech(in.Text, s.Locale())}

	case KindLegacy:
		token := letters.Normalize(in.Text)
		if token == "" {
			return Plan{}
		}
		if s.PreferDeviceSpeech {
			return Plan{Speech: speech(in.Text, settings.DefaultLocale)}
		}
		p := Plan{Assets: []string{LetterAssetPath(token)}}
		if r.letters != nil {
			if json, ok := r.letters.LetterAudio(token); ok && json != p.Assets[0] {
				p.Assets = append(p.Assets, json)
			}
		}
		p.Speech = speech(in.Text, settings.DefaultLocale)
		return p

	case KindCombined:
		phoneme := letters.Normalize(in.Text)
		if phoneme == "" {
			return Plan{}
		}
		return Plan{
			Assets: []string{CombinedAssetPath(phoneme)},
			Speech: speech(phoneme, settings.DefaultLocale),
		}
	}
	return Plan{}
}

// LetterAssetPath is the conventional recording for a letter.
func LetterAssetPath(letter string) string {
	return path.Join(lettersDir, letters.Normalize(letter)+".mp3")
}

// CombinedAssetPath is the conventional recording for a syllable.
func CombinedAssetPath(phoneme string) string {
	name := strings.ReplaceAll(letters.Normalize(phoneme), " ", "_")
	return path.Join(combinedDir, name+".mp3")
}

func speech(text string, locale language.Tag) *Speech {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return &Speech{Text: text, Locale: locale}
}
