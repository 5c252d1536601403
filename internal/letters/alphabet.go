package letters

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Group is a named row of the alphabet chart.
type Group struct {
	Name    string
	Letters []string
}

// Vowels are the independent vowels shown on the chart, in teaching order.
var Vowels = []string{"अ", "आ", "इ", "ई", "उ", "ऊ", "ए", "ऐ", "ओ", "औ"}

// ConsonantGroups lists consonants by place of articulation.
var ConsonantGroups = []Group{
	{Name: "Velar", Letters: []string{"क", "ख", "ग", "घ", "ङ"}},
	{Name: "Palatal", Letters: []string{"च", "छ", "ज", "झ", "ञ"}},
	{Name: "Retroflex", Letters: []string{"ट", "ठ", "ड", "ढ", "ण"}},
	{Name: "Dental", Letters: []string{"त", "थ", "द", "ध", "न"}},
	{Name: "Labial", Letters: []string{"प", "फ", "ब", "भ", "म"}},
	{Name: "Other", Letters: []string{"य", "र", "ल", "व", "श", "ष", "स", "ह"}},
}

// Conjuncts are shown on the chart but never paired with matras.
var Conjuncts = []string{"क्ष", "त्र", "ज्ञ"}

// matras maps each vowel to the dependent sign used after a consonant.
// अ is inherent and has no sign.
var matras = map[string]string{
	"अ": "",
	"आ": "ा",
	"इ": "ि",
	"ई": "ी",
	"उ": "ु",
	"ऊ": "ू",
	"ए": "े",
	"ऐ": "ै",
	"ओ": "ो",
	"औ": "ौ",
}

var romanizations = map[string]string{
	"अ": "a", "आ": "aa", "इ": "i", "ई": "ii", "उ": "u", "ऊ": "uu",
	"ए": "e", "ऐ": "ai", "ओ": "o", "औ": "au",
	"क": "ka", "ख": "kha", "ग": "ga", "घ": "gha", "ङ": "nga",
	"च": "cha", "छ": "chha", "ज": "ja", "झ": "jha", "ञ": "nya",
	"ट": "Ta", "ठ": "Tha", "ड": "Da", "ढ": "Dha", "ण": "Na",
	"त": "ta", "थ": "tha", "द": "da", "ध": "dha", "न": "na",
	"प": "pa", "फ": "pha", "ब": "ba", "भ": "bha", "म": "ma",
	"य": "ya", "र": "ra", "ल": "la", "व": "va",
	"श": "sha", "ष": "Sha", "स": "sa", "ह": "ha",
	"क्ष": "ksha", "त्र": "tra", "ज्ञ": "gya",
}

// Normalize returns the NFC form of a letter with surrounding space removed.
// Every lookup key in this package goes through it.
func Normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Consonants returns the pairable consonants in chart order.
func Consonants() []string {
	var out []string
	for _, g := range ConsonantGroups {
		out = append(out, g.Letters...)
	}
	return out
}

// All returns every letter on the chart: vowels, consonants, then conjuncts.
func All() []string {
	out := append([]string{}, Vowels...)
	out = append(out, Consonants()...)
	return append(out, Conjuncts...)
}

// IsVowel reports whether letter is an independent vowel.
func IsVowel(letter string) bool {
	_, ok := matras[Normalize(letter)]
	return ok
}

// IsConsonant reports whether letter is a pairable consonant.
func IsConsonant(letter string) bool {
	l := Normalize(letter)
	for _, c := range Consonants() {
		if c == l {
			return true
		}
	}
	return false
}

// Matra returns the dependent vowel sign for vowel.
func Matra(vowel string) (string, bool) {
	m, ok := matras[Normalize(vowel)]
	return m, ok
}

// Romanize returns the ASCII spelling used for search and file names.
func Romanize(letter string) (string, bool) {
	r, ok := romanizations[Normalize(letter)]
	return r, ok
}

// FromRoman finds the letter spelled by roman. An exact match wins over a
// case-insensitive one, so "Ta" and "ta" stay distinct.
func FromRoman(roman string) (string, bool) {
	roman = strings.TrimSpace(roman)
	if roman == "" {
		return "", false
	}
	var fold string
	for _, l := range All() {
		r := romanizations[l]
		if r == roman {
			return l, true
		}
		if fold == "" && strings.EqualFold(r, roman) {
			fold = l
		}
	}
	return fold, fold != ""
}

// Combinations returns the syllables practised with letter. An explicit
// override from the letter file wins. A vowel pairs with every consonant
// and a consonant pairs with every vowel sign. Anything else has none.
func Combinations(letter string, override []string) []string {
	if len(override) > 0 {
		out := make([]string, len(override))
		for i, c := range override {
			out[i] = Normalize(c)
		}
		return out
	}

	l := Normalize(letter)
	if m, ok := matras[l]; ok {
		cons := Consonants()
		out := make([]string, len(cons))
		for i, c := range cons {
			out[i] = c + m
		}
		return out
	}
	if IsConsonant(l) {
		out := make([]string, len(Vowels))
		for i, v := range Vowels {
			out[i] = l + matras[v]
		}
		return out
	}
	return nil
}

// Find resolves a search query to a chart letter. Devanagari is matched
// after NFC normalization; anything else is treated as a romanization.
func Find(query string) (string, bool) {
	q := Normalize(query)
	if q == "" {
		return "", false
	}
	for _, l := range All() {
		if l == q {
			return l, true
		}
	}
	return FromRoman(q)
}
