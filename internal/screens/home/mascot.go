package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hima/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // no stars yet
	MascotCelebrating                      // at least one star earned
)

const mascotIdle = `  ,___,
  (o,o)
  /)अ)
 --"-"--`

const mascotCelebrating = ` \,___,/
  (★,★)
  /)अ)
 --"-"--`

// RenderMascot returns the owl for the given variant.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.Secondary
	if v == MascotCelebrating {
		art, fg = mascotCelebrating, theme.StarGold
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}

// mascotFor picks the owl for a star total.
func mascotFor(total int) MascotVariant {
	if total > 0 {
		return MascotCelebrating
	}
	return MascotIdle
}
