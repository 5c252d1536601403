package speech

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"क", "क_915"},
		{"ka sound", "ka_sound_6b-61-20-73-6f-75-6e-64"},
		{"ि", "item_93f"},
		{"a/b", "ab_61-2f-62"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SafeFilename(tt.in), tt.in)
	}
	assert.NotEqual(t, SafeFilename("कि"), SafeFilename("की"))
}

func TestTranslateSynthesizer(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("ID3mp3"))
	}))
	defer srv.Close()

	data, err := NewTranslateSynthesizer(srv.URL).Synthesize(context.Background(), "आम", language.Marathi)
	require.NoError(t, err)
	assert.Equal(t, []byte("ID3mp3"), data)

	q := got.URL.Query()
	assert.Equal(t, "आम", q.Get("q"))
	assert.Equal(t, "mr", q.Get("tl"))
	assert.Equal(t, "tw-ob", q.Get("client"))
	assert.Equal(t, "2", q.Get("textlen"))
	assert.NotEmpty(t, got.Header.Get("User-Agent"))
}

func TestTranslateSynthesizerStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewTranslateSynthesizer(srv.URL).Synthesize(context.Background(), "आम", language.Hindi)
	assert.ErrorContains(t, err, "429")
}

type countingSynth struct{ calls int }

func (c *countingSynth) Synthesize(context.Context, string, language.Tag) ([]byte, error) {
	c.calls++
	return []byte("mp3"), nil
}

func (c *countingSynth) Close() error { return nil }

type recordingPlayer struct{ played []string }

func (r *recordingPlayer) PlayFile(_ context.Context, path string) error {
	r.played = append(r.played, path)
	return nil
}

func TestCloudEngineCaches(t *testing.T) {
	synth := &countingSynth{}
	player := &recordingPlayer{}
	dir := filepath.Join(t.TempDir(), "cache")
	e := NewCloudEngine(synth, player, dir)
	ctx := context.Background()

	require.NoError(t, e.Init(ctx))
	require.NoError(t, e.Say(ctx, "शाबाश", language.Hindi))
	require.NoError(t, e.Say(ctx, "शाबाश", language.Hindi))

	assert.Equal(t, 1, synth.calls)
	require.Len(t, player.played, 2)
	assert.Equal(t, player.played[0], player.played[1])

	data, err := os.ReadFile(player.played[0])
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3"), data)

	require.NoError(t, e.Say(ctx, "शाबाश", language.Marathi))
	assert.Equal(t, 2, synth.calls)
}

func TestCommandEngineArgs(t *testing.T) {
	assert.Equal(t, []string{"-v", "mr", "नमस्ते"}, NewCommandEngine("espeak-ng", "").args("नमस्ते", language.Marathi))
	assert.Equal(t, []string{"-v", "hi+f3", "x"}, NewCommandEngine("/usr/bin/espeak", "hi+f3").args("x", language.Hindi))
	assert.Equal(t, []string{"-v", "Lekha", "x"}, NewCommandEngine("say", "Lekha").args("x", language.Hindi))
	assert.Equal(t, []string{"x"}, NewCommandEngine("festival-say", "").args("x", language.Hindi))
}

func TestCommandEngineMissing(t *testing.T) {
	e := NewCommandEngine("hima-no-such-speaker", "")
	assert.ErrorIs(t, e.Init(context.Background()), ErrNotReady)
	assert.ErrorIs(t, e.Say(context.Background(), "x", language.Hindi), ErrNotReady)
}

func TestOptions(t *testing.T) {
	assert.NoError(t, Options{Engine: "device"}.Validate())
	assert.NoError(t, Options{Engine: "Polly"}.Validate())
	assert.ErrorIs(t, Options{Engine: "festival"}.Validate(), ErrUnknownEngine)

	e, err := New(context.Background(), Options{Engine: EngineNone}, nil)
	require.NoError(t, err)
	assert.IsType(t, Silent{}, e)

	e, err = New(context.Background(), Options{Engine: EngineDevice, Command: "espeak-ng"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &CommandEngine{}, e)
}
