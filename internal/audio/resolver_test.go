package audio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/abhisek/hima/internal/settings"
)

type lookup map[string]string

func (l lookup) LetterAudio(letter string) (string, bool) {
	p, ok := l[letter]
	return p, ok
}

var (
	hindiAssets   = settings.Settings{PreferDeviceSpeech: false, Language: settings.Hindi}
	marathiAssets = settings.Settings{PreferDeviceSpeech: false, Language: settings.Marathi}
	hindiDevice   = settings.Settings{PreferDeviceSpeech: true, Language: settings.Hindi}
)

func TestResolve(t *testing.T) {
	r := NewResolver(lookup{"क": "audio/letters/h/ka.mp3", "ख": "audio/letters/ख.mp3"})

	tests := []struct {
		name     string
		intent   Intent
		settings settings.Settings
		want     Plan
	}{
		{
			name:     "asset with fallback",
			intent:   PlayAsset("a.mp3", "hello"),
			settings: hindiAssets,
			want:     Plan{Assets: []string{"a.mp3"}, Speech: &Speech{Text: "hello", Locale: language.Hindi}},
		},
		{
			name:     "asset fallback follows language",
			intent:   PlayAsset("a.mp3", "hello"),
			settings: marathiAssets,
			want:     Plan{Assets: []string{"a.mp3"}, Speech: &Speech{Text: "hello", Locale: language.Marathi}},
		},
		{
			name:     "asset without fallback is silent on failure",
			intent:   PlayAsset("audio/mascot/clap1.mp3", ""),
			settings: hindiAssets,
			want:     Plan{Assets: []string{"audio/mascot/clap1.mp3"}},
		},
		{
			name:     "asset ignores device preference",
			intent:   PlayAsset("a.mp3", "hello"),
			settings: hindiDevice,
			want:     Plan{Assets: []string{"a.mp3"}, Speech: &Speech{Text: "hello", Locale: language.Hindi}},
		},
		{
			name:     "speak",
			intent:   Speak("शाबाश!"),
			settings: marathiAssets,
			want:     Plan{Speech: &Speech{Text: "शाबाश!", Locale: language.Marathi}},
		},
		{
			name:     "speak blank",
			intent:   Speak("  "),
			settings: hindiAssets,
			want:     Plan{},
		},
		{
			name:     "legacy prefers device speech",
			intent:   Legacy("क"),
			settings: settings.Settings{PreferDeviceSpeech: true, Language: settings.Marathi},
			want:     Plan{Speech: &Speech{Text: "क", Locale: settings.DefaultLocale}},
		},
		{
			name:     "legacy tries conventional then json path",
			intent:   Legacy("क"),
			settings: hindiAssets,
			want: Plan{
				Assets: []string{"audio/letters/क.mp3", "audio/letters/h/ka.mp3"},
				Speech: &Speech{Text: "क", Locale: settings.DefaultLocale},
			},
		},
		{
			name:     "legacy json path equal to conventional is not repeated",
			intent:   Legacy("ख"),
			settings: hindiAssets,
			want: Plan{
				Assets: []string{"audio/letters/ख.mp3"},
				Speech: &Speech{Text: "ख", Locale: settings.DefaultLocale},
			},
		},
		{
			name:     "legacy without json audio",
			intent:   Legacy("ग"),
			settings: hindiAssets,
			want: Plan{
				Assets: []string{"audio/letters/ग.mp3"},
				Speech: &Speech{Text: "ग", Locale: settings.DefaultLocale},
			},
		},
		{
			name:     "combined",
			intent:   Combined("क ा"),
			settings: hindiDevice,
			want: Plan{
				Assets: []string{"audio/combined/क_ा.mp3"},
				Speech: &Speech{Text: "क ा", Locale: settings.DefaultLocale},
			},
		},
		{
			name:     "empty legacy",
			intent:   Legacy(""),
			settings: hindiAssets,
			want:     Plan{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.intent, tt.settings))
		})
	}
}

func TestResolveWithoutLookup(t *testing.T) {
	p := NewResolver(nil).Resolve(Legacy("क"), hindiAssets)
	assert.Equal(t, []string{"audio/letters/क.mp3"}, p.Assets)
}

func TestResolveIsPure(t *testing.T) {
	r := NewResolver(lookup{"क": "x.mp3"})
	a := r.Resolve(Legacy("क"), hindiAssets)
	b := r.Resolve(Legacy("क"), hindiAssets)
	assert.Equal(t, a, b)
}

func TestParseToken(t *testing.T) {
	tests := []struct {
		in   string
		want Intent
	}{
		{"tts:नमस्ते", Speak("नमस्ते")},
		{"asset:audio/a.mp3|fallback:अनार. pomegranate", PlayAsset("audio/a.mp3", "अनार. pomegranate")},
		{"asset:audio/mascot/cheer1.mp3", PlayAsset("audio/mascot/cheer1.mp3", "")},
		{"combined:कि", Combined("कि")},
		{"क", Legacy("क")},
		{" अ ", Legacy("अ")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseToken(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, ParseToken(got.String()))
		})
	}
}

type fakePlayer struct {
	ok    map[string]bool
	tried []string
}

func (f *fakePlayer) PlayAsset(_ context.Context, path string) bool {
	f.tried = append(f.tried, path)
	return f.ok[path]
}

type fakeSpeaker struct {
	said []Speech
}

func (f *fakeSpeaker) Speak(_ context.Context, text string, locale language.Tag) {
	f.said = append(f.said, Speech{Text: text, Locale: locale})
}

func TestExecute(t *testing.T) {
	plan := Plan{
		Assets: []string{"one.mp3", "two.mp3"},
		Speech: &Speech{Text: "hello", Locale: language.Hindi},
	}

	t.Run("first asset plays", func(t *testing.T) {
		p := &fakePlayer{ok: map[string]bool{"one.mp3": true}}
		s := &fakeSpeaker{}
		res := NewExecutor(p, s).Execute(context.Background(), plan)
		assert.Equal(t, Result{Asset: "one.mp3"}, res)
		assert.Equal(t, []string{"one.mp3"}, p.tried)
		assert.Empty(t, s.said)
	})

	t.Run("second asset plays", func(t *testing.T) {
		p := &fakePlayer{ok: map[string]bool{"two.mp3": true}}
		s := &fakeSpeaker{}
		res := NewExecutor(p, s).Execute(context.Background(), plan)
		assert.Equal(t, Result{Asset: "two.mp3"}, res)
		assert.Empty(t, s.said)
	})

	t.Run("falls back to speech", func(t *testing.T) {
		p := &fakePlayer{}
		s := &fakeSpeaker{}
		res := NewExecutor(p, s).Execute(context.Background(), plan)
		assert.True(t, res.Spoke)
		assert.Equal(t, []string{"one.mp3", "two.mp3"}, p.tried)
		assert.Equal(t, []Speech{{Text: "hello", Locale: language.Hindi}}, s.said)
	})

	t.Run("silent plan", func(t *testing.T) {
		p := &fakePlayer{}
		s := &fakeSpeaker{}
		res := NewExecutor(p, s).Execute(context.Background(), Plan{Assets: []string{"x.mp3"}})
		assert.Equal(t, Result{}, res)
		assert.Empty(t, s.said)
	})

	t.Run("no player", func(t *testing.T) {
		s := &fakeSpeaker{}
		res := NewExecutor(nil, s).Execute(context.Background(), plan)
		assert.True(t, res.Spoke)
	})
}

func TestServicePlaysWithCurrentSettings(t *testing.T) {
	p := &fakePlayer{}
	s := &fakeSpeaker{}
	svc := NewService(NewResolver(nil), settings.Static(marathiAssets), NewExecutor(p, s))

	res := svc.Play(context.Background(), PlayAsset("a.mp3", "hello"))
	assert.True(t, res.Spoke)
	assert.Equal(t, []Speech{{Text: "hello", Locale: language.Marathi}}, s.said)
}
