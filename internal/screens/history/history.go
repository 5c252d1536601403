// Package history lists past practice sessions: when they were, which
// letters earned stars and how the quizzes went.
package history

import (
	"context"
	"fmt"
	"image/color"
	"sort"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hima/internal/progress"
	"github.com/abhisek/hima/internal/screen"
	"github.com/abhisek/hima/internal/store"
	"github.com/abhisek/hima/internal/ui/layout"
	"github.com/abhisek/hima/internal/ui/theme"
)

// eventLimit bounds how much history is read.
const eventLimit = 500

// Session is one visit to a practice screen.
type Session struct {
	ID      string
	Started time.Time
	Letters []string
	Tracing int
	Quiz    int
	Answers []store.QuizEventRecord
}

// Stars is the number of stars earned in the session.
func (s Session) Stars() int { return s.Tracing + s.Quiz }

// Correct counts right quiz answers.
func (s Session) Correct() int {
	n := 0
	for _, a := range s.Answers {
		if a.Correct {
			n++
		}
	}
	return n
}

// Summarize groups star and quiz events by session, newest session first.
// Answers keep the order they were given in.
func Summarize(stars []store.StarEventRecord, answers []store.QuizEventRecord) []Session {
	byID := map[string]*Session{}
	get := func(id string, ts time.Time) *Session {
		s, ok := byID[id]
		if !ok {
			s = &Session{ID: id, Started: ts}
			byID[id] = s
		}
		if ts.Before(s.Started) {
			s.Started = ts
		}
		return s
	}
	addLetter := func(s *Session, l string) {
		for _, x := range s.Letters {
			if x == l {
				return
			}
		}
		s.Letters = append(s.Letters, l)
	}

	for _, e := range stars {
		s := get(e.SessionID, e.Timestamp)
		if e.Source == progress.SourceQuiz {
			s.Quiz++
		} else {
			s.Tracing++
		}
		addLetter(s, e.Letter)
	}
	for _, a := range answers {
		s := get(a.SessionID, a.Timestamp)
		s.Answers = append(s.Answers, a)
		addLetter(s, a.Letter)
	}

	out := make([]Session, 0, len(byID))
	for _, s := range byID {
		sort.Slice(s.Answers, func(i, j int) bool { return s.Answers[i].Sequence < s.Answers[j].Sequence })
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Started.After(out[j].Started) })
	return out
}

type historyLoadedMsg struct {
	Sessions []Session
	Err      error
}

// HistoryScreen displays past sessions.
type HistoryScreen struct {
	events   screen.EventLog
	sessions []Session
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(events screen.EventLog) *HistoryScreen {
	return &HistoryScreen{
		events:   events,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	events := s.events
	return func() tea.Msg {
		ctx := context.Background()
		opts := store.QueryOpts{Limit: eventLimit}

		stars, err := events.QueryStarEvents(ctx, opts)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		answers, err := events.QueryQuizEvents(ctx, opts)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Sessions: Summarize(stars, answers)}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case "enter", "space":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No stars yet. Pick a letter and start tracing!")
	}

	var b strings.Builder
	b.WriteString("\n")
	center := func(style lipgloss.Style, line string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	for i, sess := range s.sessions {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		quiz := ""
		if n := len(sess.Answers); n > 0 {
			quiz = fmt.Sprintf("  quiz %d/%d", sess.Correct(), n)
		}
		center(style, fmt.Sprintf("%s%s  %s  ★ %d%s",
			prefix, sess.Started.Local().Format("Jan 02 15:04"), strings.Join(sess.Letters, " "), sess.Stars(), quiz))

		if !s.expanded[i] {
			continue
		}
		dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
		center(dim, fmt.Sprintf("    %d from tracing, %d from quizzes", sess.Tracing, sess.Quiz))
		for _, a := range sess.Answers {
			line := "    ✓ " + a.Target
			if !a.Correct {
				line = fmt.Sprintf("    ✗ %s (heard %s)", a.Chosen, a.Target)
			}
			center(lipgloss.NewStyle().Foreground(answerColor(a.Correct)), line)
		}
	}

	return b.String()
}

func answerColor(correct bool) color.Color {
	if correct {
		return theme.Success
	}
	return theme.Error
}
