package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hima/internal/ui/components"
	"github.com/abhisek/hima/internal/ui/theme"
)

const titleFull = `╦ ╦╦╔╦╗╔═╗
╠═╣║║║║╠═╣
╩ ╩╩╩ ╩╩ ╩`

const titleCompact = "H · I · M · A"

// renderTitle returns the block title, or one line when compact.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := titleFull + "\n" + theme.Subtitle.Render("अ आ इ ई · क ख ग घ")
	if compact {
		title = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar shows total stars and how many letters have any.
func renderStatsBar(stars, started, total, cw int, compact bool) string {
	starText := theme.Star.Render(fmt.Sprintf("★ %d STARS", stars))
	if compact {
		starText = theme.Star.Render(fmt.Sprintf("★%d", stars))
	}

	bar := components.ProgressBar{
		Label: "Letters",
		Done:  started,
		Total: total,
		Width: cw - 8,
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(starText + "\n" + bar.View())
}

// renderProblems warns that some asset files were skipped.
func renderProblems(n, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("⚠ %d letter files could not be read (see hima assets validate)", n))
}
