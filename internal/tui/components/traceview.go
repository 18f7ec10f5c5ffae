package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// traceHistoryCap bounds the in-memory trace so an all-day session cannot
// grow without limit.
const traceHistoryCap = 500

// TraceView is a scrollable press-trace panel wrapping bubbles/viewport.
// In follow mode (default), new lines auto-scroll the view to the bottom;
// scrolling away pauses follow until toggled back.
type TraceView struct {
	vp     viewport.Model
	lines  []string // rendered (pre-styled) lines
	follow bool
	width  int
	height int
}

// NewTraceView creates a TraceView with the given dimensions, in follow mode.
func NewTraceView(w, h int) TraceView {
	vp := viewport.New(w, h)
	return TraceView{
		vp:     vp,
		follow: true,
		width:  w,
		height: h,
	}
}

// AppendLine appends a pre-rendered (styled) line, dropping the oldest line
// once the history cap is reached.
func (v TraceView) AppendLine(rendered string) TraceView {
	v.lines = append(v.lines, rendered)
	if len(v.lines) > traceHistoryCap {
		v.lines = v.lines[len(v.lines)-traceHistoryCap:]
	}
	v.vp.SetContent(strings.Join(v.lines, "\n"))
	if v.follow {
		v.vp.GotoBottom()
	}
	return v
}

// Len returns the number of retained lines.
func (v TraceView) Len() int {
	return len(v.lines)
}

// ToggleFollow switches follow mode on or off. When turned on, scrolls
// immediately to the bottom.
func (v TraceView) ToggleFollow() TraceView {
	v.follow = !v.follow
	if v.follow {
		v.vp.GotoBottom()
	}
	return v
}

// Following reports whether follow mode is currently active.
func (v TraceView) Following() bool {
	return v.follow
}

// SetSize resizes the view to the given dimensions.
func (v TraceView) SetSize(w, h int) TraceView {
	v.width = w
	v.height = h
	v.vp.Width = w
	v.vp.Height = h
	if v.follow {
		v.vp.GotoBottom()
	}
	return v
}

// Update handles bubbletea messages (scroll keys, mouse events).
func (v TraceView) Update(msg tea.Msg) (TraceView, tea.Cmd) {
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	// Explicit scrolling away from the bottom exits follow mode.
	if v.follow && !v.vp.AtBottom() {
		switch msg.(type) {
		case tea.KeyMsg, tea.MouseMsg:
			v.follow = false
		}
	}
	return v, cmd
}

// View renders the trace content.
func (v TraceView) View() string {
	return v.vp.View()
}
