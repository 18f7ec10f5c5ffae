// Package flip implements the First-Last-Invert-Play animation technique:
// capture element rectangles before and after an instantaneous layout change,
// compute per-element deltas, and play an eased transition from the inverted
// delta back to identity. The package is pure geometry and timing; actually
// drawing offset elements is the presentation layer's job.
package flip

import (
	"math"
	"time"
)

// Rect is an on-screen bounding box in cell coordinates.
type Rect struct {
	X, Y float64
	W, H float64
}

// Snapshot maps element IDs to their rectangles at one instant.
type Snapshot map[int]Rect

// Capture builds a Snapshot for the given IDs. rectFn returns the current
// rectangle for an ID and false if the element has no visual yet; such
// elements are simply absent from the snapshot.
func Capture(ids []int, rectFn func(id int) (Rect, bool)) Snapshot {
	snap := make(Snapshot, len(ids))
	for _, id := range ids {
		if r, ok := rectFn(id); ok {
			snap[id] = r
		}
	}
	return snap
}

// Delta describes how one element moved between two snapshots. DX/DY are the
// offsets from the new position back to the old one; ScaleX/ScaleY the ratio
// of old size to new size. An element that did not move has DX = DY = 0 and
// both scales 1.
type Delta struct {
	ID     int
	DX, DY float64
	ScaleX float64
	ScaleY float64
}

// Moved reports whether the delta is visually observable.
func (d Delta) Moved() bool {
	return d.DX != 0 || d.DY != 0 || d.ScaleX != 1 || d.ScaleY != 1
}

// Diff computes the delta for every element present in both snapshots.
// Elements appearing in only one snapshot produce no delta. Degenerate
// zero-size rectangles scale as 1 to avoid division by zero.
func Diff(before, after Snapshot) []Delta {
	deltas := make([]Delta, 0, len(after))
	for id, na := range after {
		ba, ok := before[id]
		if !ok {
			continue
		}
		d := Delta{
			ID:     id,
			DX:     ba.X - na.X,
			DY:     ba.Y - na.Y,
			ScaleX: ratio(ba.W, na.W),
			ScaleY: ratio(ba.H, na.H),
		}
		deltas = append(deltas, d)
	}
	return deltas
}

func ratio(old, cur float64) float64 {
	if cur == 0 {
		return 1
	}
	return old / cur
}

// EaseOutCubic is the standard ease-out curve: fast start, gentle landing.
func EaseOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

// Linear is the identity easing, useful in tests.
func Linear(p float64) float64 { return p }

// Easing maps raw progress in [0,1] to eased progress in [0,1].
type Easing func(p float64) float64

// Transition animates a set of deltas toward identity over a fixed duration.
// The zero Transition is inert: Done reports true and offsets are identity.
type Transition struct {
	deltas  []Delta
	started time.Time
	dur     time.Duration
	ease    Easing
}

// NewTransition starts a transition at now. A nil easing defaults to
// EaseOutCubic; a non-positive duration completes immediately.
func NewTransition(deltas []Delta, now time.Time, dur time.Duration, ease Easing) Transition {
	if ease == nil {
		ease = EaseOutCubic
	}
	return Transition{deltas: deltas, started: now, dur: dur, ease: ease}
}

// Active reports whether the transition still has frames to play at now.
func (t Transition) Active(now time.Time) bool {
	return len(t.deltas) > 0 && t.progress(now) < 1
}

// progress returns raw (un-eased) progress clamped to [0,1].
func (t Transition) progress(now time.Time) float64 {
	if t.dur <= 0 || t.started.IsZero() {
		return 1
	}
	p := float64(now.Sub(t.started)) / float64(t.dur)
	return math.Min(math.Max(p, 0), 1)
}

// Offset is an element's interpolated display offset for one frame. At the
// start of a transition the offset fully undoes the layout change; at the end
// it is zero and the element sits in its new slot.
type Offset struct {
	DX, DY float64
	ScaleX float64
	ScaleY float64
}

// Frame returns the per-element offsets at now, keyed by element ID, plus
// whether the transition has completed. Elements whose delta is unobservable
// are omitted.
func (t Transition) Frame(now time.Time) (map[int]Offset, bool) {
	p := t.progress(now)
	if t.ease != nil {
		p = t.ease(p)
	}
	remain := 1 - p
	offsets := make(map[int]Offset, len(t.deltas))
	for _, d := range t.deltas {
		if !d.Moved() {
			continue
		}
		offsets[d.ID] = Offset{
			DX:     d.DX * remain,
			DY:     d.DY * remain,
			ScaleX: 1 + (d.ScaleX-1)*remain,
			ScaleY: 1 + (d.ScaleY-1)*remain,
		}
	}
	return offsets, remain == 0
}
