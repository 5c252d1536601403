package quiz

import (
	"math/rand/v2"
	"strings"

	"github.com/abhisek/hima/internal/settings"
)

// Cheer is feedback shown and spoken after an answer.
type Cheer struct {
	Text            string
	Transliteration string

	// Asset is an optional mascot sound played before Text is spoken.
	Asset string
}

var marathiCheers = []Cheer{
	{Text: "छान!", Transliteration: "Chhaan!"},
	{Text: "खूप छान!", Transliteration: "Khoop chhaan!"},
	{Text: "शाबाश!", Transliteration: "Shaabaash!"},
	{Text: "अतिशय छान!", Transliteration: "Atishay chhaan!"},
	{Text: "खूप छान प्रयत्न!", Transliteration: "Khoop chhaan prayatna!"},
	{Text: "उत्तम!", Transliteration: "Uttam!"},
	{Text: "अभिनंदन!", Transliteration: "Abhinandan!"},
	{Text: "अगदी बरोबर!", Transliteration: "Agadi barobar!"},
}

var hindiCheers = []Cheer{
	{Text: "बहुत बढ़िया!", Transliteration: "Bahut badhiya!"},
	{Text: "शाबाश!", Transliteration: "Shaabaash!"},
	{Text: "अच्छा किया!", Transliteration: "Achchha kiya!"},
	{Text: "बहुत अच्छा!", Transliteration: "Bahut achchha!"},
}

var mascotSounds = []string{
	"audio/mascot/cheer1.mp3",
	"audio/mascot/clap1.mp3",
}

// PickCheer chooses praise for lang. Hindi praise comes in a gentle, plain,
// or excited tone, and half the time brings a mascot sound.
func PickCheer(lang settings.Language, rng *rand.Rand) Cheer {
	if lang == settings.Marathi {
		return marathiCheers[rng.IntN(len(marathiCheers))]
	}

	c := hindiCheers[rng.IntN(len(hindiCheers))]
	switch rng.IntN(3) {
	case 0:
		c.Text = strings.ReplaceAll(c.Text, "!", ".")
		c.Transliteration = strings.ReplaceAll(c.Transliteration, "!", ".")
	case 2:
		c.Text += " 🎉"
	}
	if rng.IntN(2) == 0 {
		c.Asset = mascotSounds[rng.IntN(len(mascotSounds))]
	}
	return c
}

// TryAgain is the prompt after a wrong answer.
func TryAgain(lang settings.Language) Cheer {
	if lang == settings.Marathi {
		return Cheer{Text: "पुन्हा प्रयत्न करा", Transliteration: "Punha prayatna kara"}
	}
	return Cheer{Text: "फिर कोशिश करो", Transliteration: "Phir koshish karo"}
}
