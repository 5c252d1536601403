package practice

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hima/internal/tracing"
	"github.com/abhisek/hima/internal/ui/theme"
)

// rect is a region of the content area in terminal cells.
type rect struct {
	X, Y, W, H int
}

// contains reports whether cell (x, y) is inside r.
func (r rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// local converts a content cell to a canvas point.
func (r rect) local(x, y int) tracing.Point {
	return tracing.Point{X: float64(x - r.X), Y: float64(y - r.Y)}
}

const (
	inkCell   = "●"
	guideDot  = "·"
	blankCell = " "
)

// renderCanvas draws the tracing surface: a faint dot grid, the letter as
// a guide in the middle, and the strokes with gaps between sampled points
// filled in.
func renderCanvas(letter string, strokes [][]tracing.Point, w, h int, done bool) string {
	grid := make([][]string, h)
	for y := range grid {
		grid[y] = make([]string, w)
		for x := range grid[y] {
			grid[y][x] = blankCell
			if x%4 == 2 && y%2 == 1 {
				grid[y][x] = theme.Disabled.Render(guideDot)
			}
		}
	}

	ink := lipgloss.NewStyle().Foreground(theme.Ink).Bold(true)
	if done {
		ink = ink.Foreground(theme.Success)
	}
	plot := func(x, y int) {
		if x >= 0 && x < w && y >= 0 && y < h {
			grid[y][x] = ink.Render(inkCell)
		}
	}
	for _, stroke := range strokes {
		for i, p := range stroke {
			if i == 0 {
				plot(int(p.X), int(p.Y))
				continue
			}
			for _, c := range line(stroke[i-1], p) {
				plot(c[0], c[1])
			}
		}
	}

	// The guide letter takes as many cells as it is wide. Ink wins.
	gw := lipgloss.Width(letter)
	gx, gy := (w-gw)/2, h/2
	free := gx >= 0 && gx+gw <= w
	for x := gx; free && x < gx+gw; x++ {
		if grid[gy][x] != blankCell && !strings.Contains(grid[gy][x], guideDot) {
			free = false
		}
	}
	if free && gw > 0 {
		grid[gy][gx] = lipgloss.NewStyle().Foreground(theme.Guide).Bold(true).Render(letter)
		for x := gx + 1; x < gx+gw; x++ {
			grid[gy][x] = ""
		}
	}

	rows := make([]string, h)
	for y := range grid {
		rows[y] = strings.Join(grid[y], "")
	}
	border := theme.Canvas
	if done {
		border = border.BorderForeground(theme.Success)
	}
	return border.Render(strings.Join(rows, "\n"))
}

// line returns the cells from a to b, excluding a.
func line(a, b tracing.Point) [][2]int {
	x0, y0 := int(a.X), int(a.Y)
	x1, y1 := int(b.X), int(b.Y)
	steps := max(abs(x1-x0), abs(y1-y0))
	if steps == 0 {
		return [][2]int{{x1, y1}}
	}
	out := make([][2]int, 0, steps)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		out = append(out, [2]int{
			int(math.Round(float64(x0) + t*float64(x1-x0))),
			int(math.Round(float64(y0) + t*float64(y1-y0))),
		})
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
