package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: warm and bright, readable on dark terminals
var (
	Primary   = lipgloss.Color("#F97316") // Saffron
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#EC4899") // Pink
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")

	StarGold = lipgloss.Color("#FBBF24")
	Ink      = lipgloss.Color("#38BDF8") // traced strokes
	Guide    = lipgloss.Color("#475569") // letter shown under the canvas
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Glyph renders a Devanagari letter large enough to stand out.
	Glyph = lipgloss.NewStyle().
		Bold(true).
		Foreground(ArcadeYellow).
		Padding(0, 1)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Canvas = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Secondary)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Disabled = lipgloss.NewStyle().
			Foreground(TextDim)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Star = lipgloss.NewStyle().
		Foreground(StarGold).
		Bold(true)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 1)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Padding(0, 1)
)
