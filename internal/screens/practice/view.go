package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hima/internal/examples"
	"github.com/abhisek/hima/internal/letters"
	"github.com/abhisek/hima/internal/tracing"
	"github.com/abhisek/hima/internal/ui/components"
	"github.com/abhisek/hima/internal/ui/layout"
	"github.com/abhisek/hima/internal/ui/theme"
)

const (
	padX      = 2
	titleRows = 2
)

// View lays out the title row, the canvas on the left and the side panel
// on the right. The canvas position is kept so mouse events can be mapped
// onto it.
func (s *Screen) View(width, height int) string {
	title := s.renderTitle()

	cw := min(max(width/2-padX, 16), 48)
	ch := min(max(height-titleRows-5, 5), 16)
	s.canvas = rect{X: padX + 1, Y: titleRows + 1, W: cw, H: ch}

	canvas := renderCanvas(s.letter, s.trace.Strokes(), cw, ch, s.trace.State() == tracing.Completed)
	sideWidth := max(width-cw-2*padX-4, 20)
	side := s.renderSide(sideWidth)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Repeat(" ", padX), canvas, strings.Repeat(" ", padX), side)

	toolbar := components.Toolbar(s.buttons(), width-2*padX)
	out := title + "\n\n" + body + "\n" + indent(toolbar)
	if s.status != "" {
		out += "\n" + indent(s.style.Render(s.status))
	}
	return lipgloss.NewStyle().Width(width).Height(height).Render(out)
}

func indent(s string) string {
	pad := strings.Repeat(" ", padX)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}

func (s *Screen) renderTitle() string {
	t := theme.Glyph.Render(s.letter)
	if roman, ok := letters.Romanize(s.letter); ok {
		t += theme.Hint.Render(roman) + "  "
	}
	return indent(t + components.StarRow(s.stars, 10))
}

func (s *Screen) renderSide(width int) string {
	if s.quiz != nil {
		return s.renderQuiz(width)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Words"))
	b.WriteString("\n")
	if len(s.shown) == 0 {
		b.WriteString(theme.Hint.Render("No words for this letter yet."))
		b.WriteString("\n")
	}
	lang := s.svc.Language()
	for i, ex := range s.shown {
		head := fmt.Sprintf("%d) %s %s", i+1, ex.Emoji, ex.Word)
		b.WriteString(theme.Body.Bold(true).Render(head))
		if ex.Meaning != "" {
			b.WriteString(theme.Hint.Render("  " + ex.Meaning))
		}
		b.WriteString("\n")
		if sentence := examples.Sentence(ex, lang); sentence != "" {
			b.WriteString(theme.Body.Render("   " + sentence))
			b.WriteString("\n")
		}
	}

	if s.showCombos && len(s.combos) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Title.Render("Sounds"))
		b.WriteString("\n")
		b.WriteString(wrapWords(s.combos, width))
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (s *Screen) renderQuiz(width int) string {
	q := s.quiz
	var b strings.Builder
	b.WriteString(q.choice.View())
	if q.feedback != "" {
		style := theme.Incorrect
		if q.correct {
			style = theme.Star
		}
		b.WriteString("\n")
		b.WriteString(style.Render(q.feedback))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	hint := "1-4 choose · Enter answer · r hear again · n new word · Esc close"
	if q.round.Answered() {
		hint = "Enter or n next word · Esc close"
	}
	b.WriteString(theme.Hint.Render(hint))
	return theme.Card.Width(width).Render(b.String())
}

func wrapWords(words []string, width int) string {
	var lines []string
	var line string
	for _, w := range words {
		if line != "" && lipgloss.Width(line)+1+lipgloss.Width(w) > width {
			lines = append(lines, line)
			line = ""
		}
		if line != "" {
			line += " "
		}
		line += w
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (s *Screen) buttons() []components.Button {
	completed := s.trace.State() == tracing.Completed
	return []components.Button{
		{Key: "l", Label: "Listen", Active: true},
		{Key: "m", Label: "Done", Active: s.trace.HasStrokes() && !completed},
		{Key: "c", Label: "Clear", Active: s.trace.HasStrokes() && !completed},
		{Key: "t", Label: "Again", Active: completed},
		{Key: "x", Label: "Sounds", Active: len(s.combos) > 0},
		{Key: "q", Label: "Quiz", Active: len(s.pool) > 0},
	}
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.quiz != nil {
		return []layout.KeyHint{
			{Key: "1-4", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Close quiz"},
		}
	}
	return []layout.KeyHint{
		{Key: "Mouse", Description: "Trace"},
		{Key: "1-3", Description: "Words"},
		{Key: "[ ]", Description: "Letter"},
		{Key: "Esc", Description: "Back"},
	}
}
