package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hima/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	inits   int
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPush(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	practice := &stubScreen{title: "practice"}
	r.Update(PushScreenMsg{Screen: practice})

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "practice" {
		t.Errorf("expected active 'practice', got %q", r.Active().Title())
	}
	if practice.inits != 1 {
		t.Errorf("expected Init() once on pushed screen, got %d", practice.inits)
	}
}

func TestPopReinitialisesScreenBelow(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)
	r.Push(&stubScreen{title: "practice"})

	r.Update(PopScreenMsg{})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
	if home.inits != 1 {
		t.Errorf("expected home to refresh on pop, got %d inits", home.inits)
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	if cmd := r.Pop(); cmd != nil {
		t.Error("expected nil command when popping the last screen")
	}
	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
	if home.inits != 0 {
		t.Errorf("expected no Init() at bottom, got %d", home.inits)
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "क"})

	next := &stubScreen{title: "ख"}
	r.Update(ReplaceScreenMsg{Screen: next})

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "ख" {
		t.Errorf("expected active 'ख', got %q", r.Active().Title())
	}
	if next.inits != 1 {
		t.Error("expected Init() on replaced screen")
	}
}

func TestPopToRoot(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)
	r.Push(&stubScreen{title: "alphabet"})
	r.Push(&stubScreen{title: "practice"})

	r.Update(PopToRootMsg{})

	if r.Depth() != 1 || r.Active() != home {
		t.Errorf("expected only home left, got depth %d", r.Depth())
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)
	practice := &stubScreen{title: "practice"}
	r.Push(practice)

	r.Update(tea.KeyPressMsg{Code: 'l', Text: "l"})

	if practice.updates != 1 || home.updates != 0 {
		t.Errorf("expected only the active screen updated, got practice=%d home=%d", practice.updates, home.updates)
	}
}

func TestCommandsProduceMessages(t *testing.T) {
	s := &stubScreen{title: "x"}
	if msg, ok := Push(s)().(PushScreenMsg); !ok || msg.Screen != s {
		t.Error("Push() should produce PushScreenMsg")
	}
	if msg, ok := Replace(s)().(ReplaceScreenMsg); !ok || msg.Screen != s {
		t.Error("Replace() should produce ReplaceScreenMsg")
	}
	if _, ok := Pop().(PopScreenMsg); !ok {
		t.Error("Pop should produce PopScreenMsg")
	}
}

func TestView(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	if got := r.View(80, 24); got != "home" {
		t.Errorf("expected 'home', got %q", got)
	}
}
