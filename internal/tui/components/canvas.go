// Package components provides reusable TUI components for the DriftKeys UI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cell is one canvas position: a rune plus the style it renders with.
// A nil style means "unset" and renders as a plain space.
type cell struct {
	r     rune
	style *lipgloss.Style
}

// Canvas is a grid of styled cells that supports absolute-position drawing,
// which lipgloss's flow layout cannot do. Keycaps render onto a Canvas so
// animated keys can sit at interpolated, overlapping positions mid-flight.
// Draws outside the bounds are clipped.
type Canvas struct {
	width  int
	height int
	cells  [][]cell
}

// NewCanvas creates an empty canvas of the given dimensions.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
	}
	return &Canvas{width: width, height: height, cells: cells}
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in rows.
func (c *Canvas) Height() int { return c.height }

// Set places a single rune at (x, y). Out-of-bounds positions are ignored.
func (c *Canvas) Set(x, y int, r rune, style *lipgloss.Style) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = cell{r: r, style: style}
}

// DrawText writes s horizontally starting at (x, y), clipping at the edges.
func (c *Canvas) DrawText(x, y int, s string, style *lipgloss.Style) {
	for i, r := range []rune(s) {
		c.Set(x+i, y, r, style)
	}
}

// DrawBox draws a rounded-border box with blank interior. Boxes smaller than
// 2x2 are ignored.
func (c *Canvas) DrawBox(x, y, w, h int, style *lipgloss.Style) {
	if w < 2 || h < 2 {
		return
	}
	c.Set(x, y, '╭', style)
	c.Set(x+w-1, y, '╮', style)
	c.Set(x, y+h-1, '╰', style)
	c.Set(x+w-1, y+h-1, '╯', style)
	for i := 1; i < w-1; i++ {
		c.Set(x+i, y, '─', style)
		c.Set(x+i, y+h-1, '─', style)
	}
	for j := 1; j < h-1; j++ {
		c.Set(x, y+j, '│', style)
		c.Set(x+w-1, y+j, '│', style)
		for i := 1; i < w-1; i++ {
			c.Set(x+i, y+j, ' ', style)
		}
	}
}

// Render flattens the canvas to a string, one line per row. Consecutive
// cells sharing a style render as one styled run to keep escape sequences
// down.
func (c *Canvas) Render() string {
	lines := make([]string, c.height)
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		b.Reset()
		x := 0
		for x < c.width {
			style := c.cells[y][x].style
			var run strings.Builder
			for x < c.width && c.cells[y][x].style == style {
				r := c.cells[y][x].r
				if r == 0 {
					r = ' '
				}
				run.WriteRune(r)
				x++
			}
			if style == nil {
				b.WriteString(run.String())
			} else {
				b.WriteString(style.Render(run.String()))
			}
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
