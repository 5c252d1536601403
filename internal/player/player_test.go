package player

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireTrue(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not on PATH")
	}
}

func TestPlayAssetFromFS(t *testing.T) {
	requireTrue(t)
	assets := fstest.MapFS{
		"audio/letters/क.mp3": {Data: []byte("mp3")},
	}
	p, err := New(Options{Command: "true"}, assets, "")
	require.NoError(t, err)
	defer p.Close()
	ctx := context.Background()

	assert.True(t, p.PlayAsset(ctx, "audio/letters/क.mp3"))
	assert.True(t, p.PlayAsset(ctx, "/audio/letters/क.mp3"))
	assert.False(t, p.PlayAsset(ctx, "audio/letters/ख.mp3"))
	assert.False(t, p.PlayAsset(ctx, "../etc/passwd"))
	assert.False(t, p.PlayAsset(ctx, ""))

	copied := filepath.Join(p.tmp, "audio", "letters", "क.mp3")
	data, err := os.ReadFile(copied)
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3"), data)

	require.NoError(t, p.Close())
	_, err = os.Stat(copied)
	assert.True(t, os.IsNotExist(err))
}

func TestPlayAssetFromDir(t *testing.T) {
	requireTrue(t)
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "audio"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "audio", "a.mp3"), []byte("x"), 0o644))

	p, err := New(Options{Command: "true"}, os.DirFS(dir), dir)
	require.NoError(t, err)

	assert.True(t, p.PlayAsset(context.Background(), "audio/a.mp3"))
	p.Wait()
	assert.False(t, p.PlayAsset(context.Background(), "audio/b.mp3"))
	assert.Empty(t, p.tmp)
}

func TestPlayFile(t *testing.T) {
	requireTrue(t)
	p, err := New(Options{Command: "true"}, nil, "")
	require.NoError(t, err)
	assert.NoError(t, p.PlayFile(context.Background(), "whatever.mp3"))

	if _, err := exec.LookPath("false"); err == nil {
		p, err := New(Options{Command: "false"}, nil, "")
		require.NoError(t, err)
		assert.Error(t, p.PlayFile(context.Background(), "whatever.mp3"))
	}
}

func TestMissingCommand(t *testing.T) {
	_, err := New(Options{Command: "hima-no-such-player -q"}, nil, "")
	assert.ErrorIs(t, err, ErrNoPlayer)
}
