package letters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsonantCount(t *testing.T) {
	assert.Len(t, Consonants(), 33)
	assert.Len(t, All(), 10+33+3)
}

func TestCombinationsForVowel(t *testing.T) {
	got := Combinations("आ", nil)
	assert.Len(t, got, 33)
	assert.Equal(t, "का", got[0])
	assert.Equal(t, "हा", got[32])

	// The inherent vowel pairs with the bare consonant.
	assert.Equal(t, "क", Combinations("अ", nil)[0])
}

func TestCombinationsForConsonant(t *testing.T) {
	got := Combinations("क", nil)
	want := []string{"क", "का", "कि", "की", "कु", "कू", "के", "कै", "को", "कौ"}
	assert.Equal(t, want, got)
}

func TestCombinationsOverride(t *testing.T) {
	got := Combinations("क", []string{"का", "की"})
	assert.Equal(t, []string{"का", "की"}, got)
}

func TestCombinationsForConjunct(t *testing.T) {
	assert.Empty(t, Combinations("क्ष", nil))
}

func TestFromRoman(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"ka", "क", true},
		{"Ta", "ट", true},
		{"ta", "त", true},
		{"KSHA", "क्ष", true},
		{"aa", "आ", true},
		{"", "", false},
		{"zz", "", false},
	}
	for _, tt := range tests {
		got, ok := FromRoman(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("FromRoman(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNormalizeNFC(t *testing.T) {
	// U+0958 is a composition exclusion and decomposes under NFC.
	assert.Equal(t, "\u0915\u093c", Normalize("\u0958"))
	// Ordinary decomposed input is composed.
	assert.Equal(t, "\u00e9", Normalize("e\u0301"))
	assert.Equal(t, "क", Normalize("  क\n"))
}

func TestFind(t *testing.T) {
	tests := []struct {
		query string
		want  string
		ok    bool
	}{
		{"क", "क", true},
		{"  आ ", "आ", true},
		{"ka", "क", true},
		{"ksha", "क्ष", true},
		{"Sha", "ष", true},
		{"sha", "श", true},
		{"", "", false},
		{"zz", "", false},
	}
	for _, tt := range tests {
		got, ok := Find(tt.query)
		assert.Equal(t, tt.ok, ok, "query %q", tt.query)
		assert.Equal(t, tt.want, got, "query %q", tt.query)
	}
}

