package tui

// Rect represents a rectangular region of the terminal.
type Rect struct {
	X, Y, Width, Height int
}

// Layout holds the computed panel geometry for a given terminal size.
type Layout struct {
	Header   Rect
	Tabs     Rect
	Keyboard Rect
	Output   Rect
	Trace    Rect
	TooSmall bool // true when the terminal cannot fit the keyboard
	Footer   Rect
}

// Calculate computes the panel layout for a terminal of the given dimensions
// and a keyboard canvas of kbW x kbH cells (borders excluded).
//
// Algorithm:
//   - Header: full width, 1 row at top
//   - Tabs: full width, 1 row under the header
//   - Keyboard: full width, kbH + 2 rows (border)
//   - Footer: full width, 1 row at bottom
//   - Output: 40% of the remaining height, minimum 3 rows
//   - Trace: the rest (collapsed into Output when the trace panel is hidden)
func Calculate(width, height, kbW, kbH int, showTrace bool) Layout {
	kbOuterH := kbH + 2
	remaining := height - 3 - kbOuterH // header + tabs + footer
	if width < kbW+4 || remaining < 5 {
		return Layout{TooSmall: true}
	}

	outputH := remaining * 40 / 100
	if outputH < 3 {
		outputH = 3
	}
	traceH := remaining - outputH
	if !showTrace {
		outputH = remaining
		traceH = 0
	}

	y := 0
	header := Rect{X: 0, Y: y, Width: width, Height: 1}
	y++
	tabs := Rect{X: 0, Y: y, Width: width, Height: 1}
	y++
	kb := Rect{X: 0, Y: y, Width: width, Height: kbOuterH}
	y += kbOuterH
	output := Rect{X: 0, Y: y, Width: width, Height: outputH}
	y += outputH
	tr := Rect{X: 0, Y: y, Width: width, Height: traceH}
	y += traceH

	return Layout{
		Header:   header,
		Tabs:     tabs,
		Keyboard: kb,
		Output:   output,
		Trace:    tr,
		Footer:   Rect{X: 0, Y: height - 1, Width: width, Height: 1},
	}
}

// innerDims returns the content dimensions for a panel rect accounting for
// the 1-character border on each side (2 total per dimension).
func innerDims(r Rect) (w, h int) {
	w = r.Width - 2
	if w < 1 {
		w = 1
	}
	h = r.Height - 2
	if h < 1 {
		h = 1
	}
	return
}
