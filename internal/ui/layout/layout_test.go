package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

var hints = []KeyHint{
	{Key: "m", Description: "Mark complete"},
	{Key: "c", Description: "Clear"},
	{Key: "q", Description: "Quiz"},
	{Key: "Esc", Description: "Back"},
}

func TestFitHintsKeepsAllWhenRoomy(t *testing.T) {
	got := FitHints(hints, 200)
	for _, h := range hints {
		if !strings.Contains(got, h.Description) {
			t.Errorf("missing %q in %q", h.Description, got)
		}
	}
	if strings.Contains(got, "…") {
		t.Errorf("unexpected ellipsis in %q", got)
	}
}

func TestFitHintsTruncates(t *testing.T) {
	got := FitHints(hints, 30)
	if w := lipgloss.Width(got); w > 30 {
		t.Errorf("width = %d, want <= 30", w)
	}
	if !strings.Contains(got, "Mark complete") {
		t.Errorf("first hint dropped: %q", got)
	}
	if strings.Contains(got, "Back") {
		t.Errorf("last hint should be dropped: %q", got)
	}
	if !strings.Contains(got, "…") {
		t.Errorf("want trailing ellipsis: %q", got)
	}
}

func TestHeaderShowsStars(t *testing.T) {
	got := RenderHeader("Practice", 12, "हिन्दी", 100)
	if !strings.Contains(got, "★ 12") {
		t.Errorf("header missing star count: %q", got)
	}
	if !strings.Contains(got, "Practice") {
		t.Errorf("header missing title: %q", got)
	}
}
