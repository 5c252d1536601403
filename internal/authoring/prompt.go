package authoring

import (
	"fmt"
	"strings"

	"github.com/abhisek/hima/internal/letters"
)

const systemPrompt = `You write vocabulary for a Hindi and Marathi alphabet app used by children aged 3-6.

Rules:
- Every word must begin with the given letter exactly as written, in Devanagari.
- Prefer concrete nouns a small child can picture: fruits, animals, objects at home.
- Avoid words that are unkind, scary, religious or about adults only.
- The meaning is plain English, one to three words, first letter capitalized.
- Sentences are five words or fewer, in simple present tense.
- sentence_mr is the Marathi version of the Hindi sentence.
- Do not repeat any word from the "already taught" list.`

// buildUserMessage describes the letter and the words to avoid.
func buildUserMessage(letter string, count int, existing []letters.Example) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Letter: %s\n", letter)
	if r, ok := letters.Romanize(letter); ok {
		fmt.Fprintf(&b, "Romanized: %s\n", r)
	}
	switch {
	case letters.IsVowel(letter):
		b.WriteString("Kind: independent vowel\n")
	case letters.IsConsonant(letter):
		b.WriteString("Kind: consonant\n")
	}
	fmt.Fprintf(&b, "Words wanted: %d\n", count)

	b.WriteString("\nAlready taught:\n")
	if len(existing) == 0 {
		b.WriteString("None")
	}
	for i, ex := range existing {
		fmt.Fprintf(&b, "%d. %s\n", i+1, ex.Word)
	}
	return strings.TrimRight(b.String(), "\n")
}
