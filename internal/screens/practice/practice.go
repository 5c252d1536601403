// Package practice is the letter practice screen: listen, trace with the
// mouse, hear example words, and play the "identify the word" quiz.
package practice

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/hima/internal/audio"
	"github.com/abhisek/hima/internal/examples"
	"github.com/abhisek/hima/internal/letters"
	"github.com/abhisek/hima/internal/progress"
	"github.com/abhisek/hima/internal/quiz"
	"github.com/abhisek/hima/internal/router"
	"github.com/abhisek/hima/internal/screen"
	"github.com/abhisek/hima/internal/tracing"
	"github.com/abhisek/hima/internal/ui/theme"
)

// Screen practises one letter. Leaving it drops the tracing and any open
// quiz round.
type Screen struct {
	svc       screen.Services
	letter    string
	sessionID string

	trace   *tracing.Session
	drawing bool
	canvas  rect

	pool       []letters.Example
	shown      []letters.Example
	combos     []string
	showCombos bool

	quiz *quizOverlay

	stars  int
	status string
	style  lipgloss.Style
}

var (
	_ screen.Screen        = (*Screen)(nil)
	_ screen.EscapeHandler = (*Screen)(nil)
)

// starsMsg carries a re-read star count.
type starsMsg int

// New creates a practice screen for letter.
func New(svc screen.Services, letter string) *Screen {
	letter = letters.Normalize(letter)
	s := &Screen{
		svc:       svc,
		letter:    letter,
		sessionID: uuid.NewString(),
		trace:     tracing.New(letter, svc.Ledger),
		style:     theme.Hint,
	}
	limit := svc.ExamplesLimit
	if limit <= 0 {
		limit = examples.DefaultLimit
	}
	if svc.Library != nil {
		s.pool = svc.Library.Pool(letter)
		s.combos = svc.Library.CombinationsFor(letter)
	} else {
		s.combos = letters.Combinations(letter, nil)
	}
	s.shown = examples.Select(s.pool, limit)
	return s
}

// Letter returns the letter being practised.
func (s *Screen) Letter() string { return s.letter }

// Init plays the letter and loads its stars.
func (s *Screen) Init() tea.Cmd {
	return tea.Batch(s.listen(), s.refreshStars())
}

func (s *Screen) ctx() context.Context {
	return progress.WithSession(context.Background(), s.sessionID)
}

func (s *Screen) refreshStars() tea.Cmd {
	ledger, letter := s.svc.Ledger, s.letter
	if ledger == nil {
		return nil
	}
	return func() tea.Msg {
		n, err := ledger.Stars(context.Background(), letter)
		if err != nil {
			return nil
		}
		return starsMsg(n)
	}
}

// starEarned re-reads the count here and tells the app to refresh totals.
func (s *Screen) starEarned() tea.Cmd {
	return tea.Batch(s.refreshStars(), screen.StarsChanged)
}

func (s *Screen) listen() tea.Cmd {
	return s.svc.Play(audio.Legacy(s.letter))
}

// WantsEscape is true while the quiz overlay is open, so Esc closes it
// instead of leaving the letter.
func (s *Screen) WantsEscape() bool { return s.quiz != nil }

func (s *Screen) say(text string, style lipgloss.Style) {
	s.status, s.style = text, style
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case starsMsg:
		s.stars = int(msg)
		return s, nil
	case tea.MouseClickMsg:
		return s, s.mouseDown(msg.Mouse())
	case tea.MouseMotionMsg:
		s.mouseMove(msg.Mouse())
		return s, nil
	case tea.MouseReleaseMsg:
		if s.drawing {
			s.trace.EndStroke()
			s.drawing = false
		}
		return s, nil
	case tea.KeyPressMsg:
		if s.quiz != nil {
			return s, s.updateQuiz(msg)
		}
		return s, s.updateKeys(msg)
	}
	return s, nil
}

func (s *Screen) mouseDown(m tea.Mouse) tea.Cmd {
	if s.quiz != nil || m.Button != tea.MouseLeft || !s.canvas.contains(m.X, m.Y) {
		return nil
	}
	if s.trace.BeginStroke(s.canvas.local(m.X, m.Y)) {
		s.drawing = true
		s.say("", theme.Hint)
	}
	return nil
}

func (s *Screen) mouseMove(m tea.Mouse) {
	if !s.drawing {
		return
	}
	if m.Button != tea.MouseLeft {
		s.trace.EndStroke()
		s.drawing = false
		return
	}
	if s.canvas.contains(m.X, m.Y) {
		s.trace.ExtendStroke(s.canvas.local(m.X, m.Y))
	}
}

func (s *Screen) updateKeys(msg tea.KeyPressMsg) tea.Cmd {
	switch key := msg.String(); key {
	case "l":
		return s.listen()
	case "m":
		return s.markComplete()
	case "c":
		if s.trace.Clear() {
			s.drawing = false
			s.say("Canvas cleared", theme.Hint)
		}
	case "t":
		if s.trace.State() == tracing.Completed {
			s.trace.Reset()
			s.say("Trace it again!", theme.Hint)
		}
	case "x":
		s.showCombos = !s.showCombos
	case "q":
		return s.startQuiz()
	case "]", "[":
		return s.neighbour(key == "]")
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(key[0] - '1')
		if i < len(s.shown) {
			return s.svc.Play(examples.ListenIntent(s.shown[i], s.svc.Language()))
		}
	}
	return nil
}

func (s *Screen) markComplete() tea.Cmd {
	ok, err := s.trace.MarkComplete(s.ctx())
	switch {
	case err != nil:
		s.say("Could not save your star: "+err.Error(), theme.Incorrect)
		return nil
	case !ok && s.trace.State() == tracing.Completed:
		s.say("Already done! Press t to trace again.", theme.Hint)
		return nil
	case !ok:
		s.say("Trace the letter first, then press m.", theme.Hint)
		return nil
	}
	s.drawing = false
	cheer := s.cheer()
	s.say("★ "+cheer.Text, theme.Star)
	return tea.Batch(s.starEarned(), s.svc.PlayEach(cheerIntents(cheer)...))
}

func (s *Screen) cheer() quiz.Cheer {
	if s.svc.Quiz == nil {
		return quiz.Cheer{Text: "शाबाश!"}
	}
	return s.svc.Quiz.Cheer(s.svc.Language())
}

// neighbour moves to the next or previous letter on the chart.
func (s *Screen) neighbour(next bool) tea.Cmd {
	all := letters.All()
	for i, l := range all {
		if l != s.letter {
			continue
		}
		j := i - 1
		if next {
			j = i + 1
		}
		if j < 0 || j >= len(all) {
			return nil
		}
		return router.Replace(New(s.svc, all[j]))
	}
	return nil
}

func (s *Screen) startQuiz() tea.Cmd {
	if s.svc.Quiz == nil {
		return nil
	}
	round, err := s.svc.Quiz.StartRound(s.letter, s.pool, s.shown)
	if errors.Is(err, quiz.ErrNotEnoughExamples) {
		s.say("This letter has no words for a quiz yet.", theme.Hint)
		return nil
	}
	if err != nil {
		s.say(err.Error(), theme.Incorrect)
		return nil
	}
	s.quiz = newQuizOverlay(round)
	s.say("", theme.Hint)
	return s.sayTarget(round.Target)
}

// cheerIntents plays the mascot sound, when the cheer has one, and then
// speaks the praise.
func cheerIntents(c quiz.Cheer) []audio.Intent {
	if c.Asset != "" {
		return []audio.Intent{audio.PlayAsset(c.Asset, ""), audio.Speak(c.Text)}
	}
	return []audio.Intent{audio.Speak(c.Text)}
}

// sayTarget reads out the word the learner must find with its meaning and
// sentence.
func (s *Screen) sayTarget(ex letters.Example) tea.Cmd {
	return s.svc.Play(examples.ListenIntent(ex, s.svc.Language()))
}

func (s *Screen) Title() string {
	return "Practice " + s.letter
}
