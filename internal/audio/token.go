package audio

import "strings"

const (
	prefixSpeak    = "tts:"
	prefixAsset    = "asset:"
	prefixCombined = "combined:"
	sepFallback    = "|fallback:"
)

// ParseToken decodes the compact string form used by "hima say" and by
// stored UI actions:
//
//	tts:<text>                     speak text
//	asset:<path>|fallback:<text>   play path, else speak text
//	asset:<path>                   play path, else stay silent
//	combined:<syllable>            play a combined sound
//
// Anything else is a legacy letter token.
func ParseToken(s string) Intent {
	switch {
	case strings.HasPrefix(s, prefixSpeak):
		return Speak(strings.TrimPrefix(s, prefixSpeak))
	case strings.HasPrefix(s, prefixAsset):
		rest := strings.TrimPrefix(s, prefixAsset)
		path, fallback, _ := strings.Cut(rest, sepFallback)
		return PlayAsset(path, fallback)
	case strings.HasPrefix(s, prefixCombined):
		return Combined(strings.TrimPrefix(s, prefixCombined))
	default:
		return Legacy(strings.TrimSpace(s))
	}
}

// String encodes the intent in the form ParseToken reads.
func (i Intent) String() string {
	switch i.Kind {
	case KindSpeak:
		return prefixSpeak + i.Text
	case KindPlayAsset:
		if i.Text == "" {
			return prefixAsset + i.Path
		}
		return prefixAsset + i.Path + sepFallback + i.Text
	case KindCombined:
		return prefixCombined + i.Text
	default:
		return i.Text
	}
}
