package practice

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hima/internal/audio"
	"github.com/abhisek/hima/internal/letters"
	"github.com/abhisek/hima/internal/quiz"
	"github.com/abhisek/hima/internal/ui/components"
	"github.com/abhisek/hima/internal/ui/theme"
)

// quizOverlay is an open round and how it is shown.
type quizOverlay struct {
	round    *quiz.Round
	choice   components.MultiChoice
	feedback string
	correct  bool
}

func newQuizOverlay(r *quiz.Round) *quizOverlay {
	return &quizOverlay{
		round:  r,
		choice: components.NewMultiChoice("Which word did you hear?", optionLabels(r.Candidates)),
	}
}

func optionLabels(cands []letters.Example) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.Word
		if c.Emoji != "" {
			out[i] = c.Emoji + "  " + c.Word
		}
	}
	return out
}

func (s *Screen) updateQuiz(msg tea.KeyPressMsg) tea.Cmd {
	q := s.quiz
	switch msg.String() {
	case "esc":
		s.quiz = nil
		s.say("", theme.Hint)
		return nil
	case "r":
		return s.sayTarget(q.round.Target)
	case "n":
		return s.retryQuiz()
	case "enter", "space":
		if q.round.Answered() {
			return s.retryQuiz()
		}
		return s.submit()
	}

	q.choice, _ = q.choice.Update(msg)
	q.round.Select(q.choice.Selected)
	return nil
}

func (s *Screen) submit() tea.Cmd {
	q := s.quiz
	if q.round.Selected < 0 {
		q.feedback = "Pick a word first (1-4)."
		return nil
	}

	outcome, err := s.svc.Quiz.Submit(s.ctx(), q.round, q.round.Selected)
	if err != nil {
		q.feedback = "Could not save your answer: " + err.Error()
		return nil
	}
	q.choice.Reveal(q.round.TargetIndex(), q.round.Selected)

	lang := s.svc.Language()
	if outcome == quiz.Correct {
		cheer := s.cheer()
		q.feedback, q.correct = "★ "+cheer.Text, true
		return tea.Batch(s.starEarned(), s.svc.PlayEach(cheerIntents(cheer)...))
	}
	again := quiz.TryAgain(lang)
	q.feedback, q.correct = again.Text+" ("+q.round.Target.Word+")", false
	return s.svc.Play(audio.Speak(again.Text))
}

func (s *Screen) retryQuiz() tea.Cmd {
	next, err := s.svc.Quiz.Retry(s.quiz.round)
	if err != nil {
		s.quiz = nil
		s.say(err.Error(), theme.Incorrect)
		return nil
	}
	s.quiz = newQuizOverlay(next)
	return s.sayTarget(next.Target)
}
