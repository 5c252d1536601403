package settings

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/abhisek/hima/internal/store"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
		ok   bool
	}{
		{"hindi", Hindi, true},
		{"Marathi", Marathi, true},
		{"mr", Marathi, true},
		{"hi-IN", Hindi, true},
		{"tamil", "", false},
	}
	for _, tt := range tests {
		got, err := ParseLanguage(tt.in)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("ParseLanguage(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
		if !tt.ok && err == nil {
			t.Errorf("ParseLanguage(%q) should fail", tt.in)
		}
	}
}

func TestLocale(t *testing.T) {
	assert.Equal(t, language.Hindi, Hindi.Locale())
	assert.Equal(t, language.Marathi, Marathi.Locale())
	assert.Equal(t, "mr", Marathi.Locale().String())
	assert.Equal(t, "hi", Default().Locale().String())
}

func TestNext(t *testing.T) {
	assert.Equal(t, Marathi, Hindi.Next())
	assert.Equal(t, Hindi, Marathi.Next())
	assert.Equal(t, Hindi, Language("x").Next())
}

func TestDefault(t *testing.T) {
	d := Default()
	assert.True(t, d.PreferDeviceSpeech)
	assert.Equal(t, Hindi, d.Language)
}

func TestStoreRoundTrip(t *testing.T) {
	name := strings.ReplaceAll(t.Name(), "/", "_")
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	ctx := context.Background()
	s := NewStore(st.SettingsRepo(), Default())

	assert.Equal(t, Default(), s.Current(ctx))

	require.NoError(t, s.SetPreferDeviceSpeech(ctx, false))
	require.NoError(t, s.SetLanguage(ctx, Marathi))
	assert.Equal(t, Settings{PreferDeviceSpeech: false, Language: Marathi}, s.Current(ctx))

	assert.Error(t, s.SetLanguage(ctx, Language("klingon")))
}

func TestStoreIgnoresGarbage(t *testing.T) {
	name := strings.ReplaceAll(t.Name(), "/", "_")
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	ctx := context.Background()
	repo := st.SettingsRepo()
	require.NoError(t, repo.SetSetting(ctx, "use_tts", "maybe"))
	require.NoError(t, repo.SetSetting(ctx, "language", "??"))

	s := NewStore(repo, Settings{PreferDeviceSpeech: false, Language: Marathi})
	assert.Equal(t, Settings{PreferDeviceSpeech: false, Language: Marathi}, s.Current(ctx))
}

func TestStatic(t *testing.T) {
	p := Static{Language: Marathi}
	assert.Equal(t, Marathi, p.Current(context.Background()).Language)
}
