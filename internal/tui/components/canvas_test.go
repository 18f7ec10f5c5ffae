package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestCanvasRenderEmpty(t *testing.T) {
	c := NewCanvas(4, 2)
	want := "    \n    "
	if got := c.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCanvasDrawText(t *testing.T) {
	c := NewCanvas(6, 1)
	c.DrawText(1, 0, "hi", nil)
	if got := c.Render(); got != " hi   " {
		t.Errorf("Render() = %q", got)
	}
}

func TestCanvasClipping(t *testing.T) {
	c := NewCanvas(3, 2)
	c.DrawText(1, 0, "abcdef", nil)
	c.Set(-1, 0, 'x', nil)
	c.Set(0, 5, 'x', nil)
	if got := c.Render(); got != " ab\n   " {
		t.Errorf("Render() = %q", got)
	}
}

func TestCanvasDrawBox(t *testing.T) {
	c := NewCanvas(5, 3)
	c.DrawBox(0, 0, 5, 3, nil)
	want := strings.Join([]string{
		"╭───╮",
		"│   │",
		"╰───╯",
	}, "\n")
	if got := c.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestCanvasBoxOverBox(t *testing.T) {
	// A later box blanks the part of an earlier box it covers.
	c := NewCanvas(7, 3)
	c.DrawBox(0, 0, 5, 3, nil)
	c.DrawBox(2, 0, 5, 3, nil)
	got := strings.Split(c.Render(), "\n")
	if got[1] != "│ │   │" {
		t.Errorf("middle row = %q", got[1])
	}
}

func TestCanvasTinyBoxIgnored(t *testing.T) {
	c := NewCanvas(4, 4)
	c.DrawBox(0, 0, 1, 3, nil)
	c.DrawBox(0, 0, 3, 1, nil)
	if got := c.Render(); strings.TrimSpace(got) != "" {
		t.Errorf("tiny boxes drew something: %q", got)
	}
}

func TestCanvasStyledRuns(t *testing.T) {
	style := lipgloss.NewStyle().Bold(true)
	c := NewCanvas(4, 1)
	c.DrawText(0, 0, "ab", &style)
	got := c.Render()
	if !strings.Contains(got, "ab") {
		t.Errorf("Render() = %q, want styled text present", got)
	}
}

func TestCanvasNegativeDims(t *testing.T) {
	c := NewCanvas(-1, -1)
	if c.Width() != 0 || c.Height() != 0 {
		t.Errorf("dims = %dx%d, want 0x0", c.Width(), c.Height())
	}
	if got := c.Render(); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}
