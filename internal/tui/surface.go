package tui

import (
	"time"

	"github.com/driftkeys/driftkeys/internal/flip"
	"github.com/driftkeys/driftkeys/internal/keyboard"
)

// keyHeight is the rendered height of one keycap (border, label, border).
const keyHeight = 3

// keyGap is the number of blank columns between adjacent keycaps.
const keyGap = 1

// CellSurface is the terminal implementation of keyboard.Surface. It mirrors
// the engine's visual tree as rows of keys in cell coordinates and owns the
// currently playing FLIP transition. The engine drives it through paired
// CreateKeyVisual/Reparent calls, so the mirror can never diverge from the
// model.
type CellSurface struct {
	rows         [][]*keyboard.Key
	unitsPerCell int
	animate      bool
	duration     time.Duration
	transition   flip.Transition
	clock        func() time.Time
}

// NewCellSurface creates a surface for a keyboard with rowCount rows.
func NewCellSurface(rowCount, unitsPerCell int, animate bool, duration time.Duration) *CellSurface {
	if unitsPerCell <= 0 {
		unitsPerCell = 10
	}
	return &CellSurface{
		rows:         make([][]*keyboard.Key, rowCount),
		unitsPerCell: unitsPerCell,
		animate:      animate,
		duration:     duration,
		clock:        time.Now,
	}
}

// CreateKeyVisual appends k at the end of the given row.
func (s *CellSurface) CreateKeyVisual(k *keyboard.Key, row int) {
	s.rows[row] = append(s.rows[row], k)
}

// CellWidth returns k's rendered width in cells: its layout width scaled by
// the configured units-per-cell, never narrower than the label plus borders.
func (s *CellSurface) CellWidth(k *keyboard.Key) int {
	w := k.Width / s.unitsPerCell
	if min := len([]rune(k.Label)) + 2; w < min {
		w = min
	}
	return w
}

// Rect returns k's bounding box relative to the keyboard origin.
func (s *CellSurface) Rect(k *keyboard.Key) (flip.Rect, bool) {
	for r, row := range s.rows {
		x := 0
		for _, cand := range row {
			if cand == k {
				return flip.Rect{
					X: float64(x),
					Y: float64(r * keyHeight),
					W: float64(s.CellWidth(k)),
					H: keyHeight,
				}, true
			}
			x += s.CellWidth(cand) + keyGap
		}
	}
	return flip.Rect{}, false
}

// Reparent moves k's visual to (toRow, toCol) in the mirror.
func (s *CellSurface) Reparent(k *keyboard.Key, toRow, toCol int) {
	for r, row := range s.rows {
		for c, cand := range row {
			if cand != k {
				continue
			}
			s.rows[r] = append(row[:c], row[c+1:]...)
			dst := s.rows[toRow]
			dst = append(dst, nil)
			copy(dst[toCol+1:], dst[toCol:])
			dst[toCol] = k
			s.rows[toRow] = dst
			return
		}
	}
}

// PlayTransition starts a FLIP transition for the given deltas. With
// animation disabled this is a no-op: keys snap to their new slots.
func (s *CellSurface) PlayTransition(deltas []flip.Delta) {
	if !s.animate {
		return
	}
	s.transition = flip.NewTransition(deltas, s.clock(), s.duration, nil)
}

// Animating reports whether a transition still has frames to play at now.
func (s *CellSurface) Animating(now time.Time) bool {
	return s.transition.Active(now)
}

// Offsets returns the per-key display offsets for the current frame.
func (s *CellSurface) Offsets(now time.Time) map[int]flip.Offset {
	offsets, _ := s.transition.Frame(now)
	return offsets
}

// Rows returns the mirrored visual rows, top to bottom. The outer slice is a
// copy; the inner slices are live.
func (s *CellSurface) Rows() [][]*keyboard.Key {
	out := make([][]*keyboard.Key, len(s.rows))
	copy(out, s.rows)
	return out
}

// Size returns the canvas dimensions needed to draw the keyboard: the widest
// row in cells and the stacked row height.
func (s *CellSurface) Size() (w, h int) {
	for _, row := range s.rows {
		x := 0
		for i, k := range row {
			if i > 0 {
				x += keyGap
			}
			x += s.CellWidth(k)
		}
		if x > w {
			w = x
		}
	}
	return w, len(s.rows) * keyHeight
}
