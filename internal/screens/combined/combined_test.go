package combined

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hima/internal/audio"
	"github.com/abhisek/hima/internal/screen/screentest"
)

func TestNavigation(t *testing.T) {
	f := screentest.New(t)
	s := New(f.Services)

	assert.Equal(t, "क", s.Consonant())
	assert.Equal(t, "क", s.Syllable())

	s.Update(screentest.Special(tea.KeyRight))
	assert.Equal(t, "का", s.Syllable())

	s.Update(screentest.Special(tea.KeyDown))
	assert.Equal(t, "ख", s.Consonant())
	assert.Equal(t, "खा", s.Syllable())

	// Wraps around the consonant list.
	s.Update(screentest.Key('['))
	s.Update(screentest.Key('['))
	assert.Equal(t, "ह", s.Consonant())

	for range 20 {
		s.Update(screentest.Special(tea.KeyRight))
	}
	assert.Equal(t, "हौ", s.Syllable())
}

func TestPlay(t *testing.T) {
	f := screentest.New(t)
	s := New(f.Services)
	s.Update(screentest.Key('l'))

	_, cmd := s.Update(screentest.Special(tea.KeyEnter))
	screentest.Drain(cmd)

	require.Len(t, f.Player.Intents, 1)
	assert.Equal(t, audio.Combined("का"), f.Player.Intents[0])
}

func TestPlayAll(t *testing.T) {
	f := screentest.New(t)
	s := New(f.Services)

	_, cmd := s.Update(screentest.Key('a'))
	assert.NotNil(t, cmd)
	assert.Len(t, s.syllables, 10)
}

func TestView(t *testing.T) {
	f := screentest.New(t)
	out := New(f.Services).View(80, 24)
	assert.Contains(t, out, "की")
	assert.Contains(t, out, "ka")
}
