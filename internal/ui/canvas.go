package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Canvas is a rune grid with a style per cell. Sprites blit onto it with
// viewport clipping; String flattens it to styled terminal lines.
type Canvas struct {
	w, h   int
	runes  [][]rune
	styles [][]*lipgloss.Style
}

func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{w: w, h: h}
	c.runes = make([][]rune, h)
	c.styles = make([][]*lipgloss.Style, h)
	for y := 0; y < h; y++ {
		row := make([]rune, w)
		for x := range row {
			row[x] = ' '
		}
		c.runes[y] = row
		c.styles[y] = make([]*lipgloss.Style, w)
	}
	return c
}

func (c *Canvas) Width() int  { return c.w }
func (c *Canvas) Height() int { return c.h }

// Blit draws lines at (x, y), clipping anything outside the canvas.
// Spaces in the art are transparent so overlays stack cleanly.
func (c *Canvas) Blit(x, y int, lines []string, st *lipgloss.Style) {
	for dy, ln := range lines {
		cy := y + dy
		if cy < 0 || cy >= c.h {
			continue
		}
		for dx, r := range []rune(ln) {
			cx := x + dx
			if cx < 0 || cx >= c.w || r == ' ' {
				continue
			}
			c.runes[cy][cx] = r
			c.styles[cy][cx] = st
		}
	}
}

// Cell returns the rune at (x, y), for tests.
func (c *Canvas) Cell(x, y int) rune {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return 0
	}
	return c.runes[y][x]
}

// String renders the grid, batching runs of same-styled cells so each
// line costs a handful of style renders rather than one per cell.
func (c *Canvas) String() string {
	var out strings.Builder
	for y := 0; y < c.h; y++ {
		var run strings.Builder
		var cur *lipgloss.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur != nil {
				out.WriteString(cur.Render(run.String()))
			} else {
				out.WriteString(run.String())
			}
			run.Reset()
		}
		for x := 0; x < c.w; x++ {
			if c.styles[y][x] != cur {
				flush()
				cur = c.styles[y][x]
			}
			run.WriteRune(c.runes[y][x])
		}
		flush()
		if y < c.h-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}
