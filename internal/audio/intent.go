// Package audio decides how a playback request is carried out. Resolve is a
// pure function from an Intent to a Plan; an Executor applies the Plan
// through an asset player and a speech engine.
package audio

import "strings"

// Kind tags an Intent.
type Kind int

const (
	KindNone Kind = iota
	KindPlayAsset
	KindSpeak
	KindLegacy
	KindCombined
)

func (k Kind) String() string {
	switch k {
	case KindPlayAsset:
		return "asset"
	case KindSpeak:
		return "speak"
	case KindLegacy:
		return "legacy"
	case KindCombined:
		return "combined"
	default:
		return "none"
	}
}

// Intent is a playback request raised by the UI. It is a comparable value.
type Intent struct {
	Kind Kind

	// Path is the asset to attempt for KindPlayAsset.
	Path string

	// Text is the fallback for KindPlayAsset, the utterance for KindSpeak,
	// the letter token for KindLegacy and the syllable for KindCombined.
	Text string
}

// PlayAsset attempts path and speaks fallback if it cannot be played. An
// empty fallback means silence on failure.
func PlayAsset(path, fallback string) Intent {
	return Intent{Kind: KindPlayAsset, Path: strings.TrimSpace(path), Text: fallback}
}

// Speak speaks text.
func Speak(text string) Intent {
	return Intent{Kind: KindSpeak, Text: text}
}

// Legacy plays a letter by its bare token.
func Legacy(token string) Intent {
	return Intent{Kind: KindLegacy, Text: token}
}

// Combined plays a consonant and matra syllable.
func Combined(phoneme string) Intent {
	return Intent{Kind: KindCombined, Text: phoneme}
}
