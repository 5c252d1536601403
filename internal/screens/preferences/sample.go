package preferences

import (
	"github.com/abhisek/hima/internal/audio"
	"github.com/abhisek/hima/internal/settings"
)

// audioSample is a short greeting in the chosen language.
func audioSample(l settings.Language) audio.Intent {
	if l == settings.Marathi {
		return audio.Speak("नमस्कार! चला अक्षरे शिकूया.")
	}
	return audio.Speak("नमस्ते! चलो अक्षर सीखें।")
}
