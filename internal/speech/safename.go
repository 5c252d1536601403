package speech

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// SafeFilename turns text into a file name stem that is safe on every
// platform. Characters other than letters, digits, '_', '-' and '.' are
// dropped, so the codepoints of the original text are appended to keep
// names built from matras distinct.
func SafeFilename(text string) string {
	nfc := norm.NFC.String(text)

	var b strings.Builder
	for _, r := range strings.ReplaceAll(nfc, " ", "_") {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.' {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" {
		name = "item"
	}

	points := make([]string, 0, len(text))
	for _, r := range text {
		points = append(points, fmt.Sprintf("%x", r))
	}
	return name + "_" + strings.Join(points, "-")
}
