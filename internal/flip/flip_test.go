package flip

import (
	"math"
	"testing"
	"time"
)

func TestCapture(t *testing.T) {
	rects := map[int]Rect{
		1: {X: 0, Y: 0, W: 5, H: 3},
		2: {X: 5, Y: 0, W: 8, H: 3},
	}
	snap := Capture([]int{1, 2, 3}, func(id int) (Rect, bool) {
		r, ok := rects[id]
		return r, ok
	})

	if len(snap) != 2 {
		t.Fatalf("snapshot size: got %d, want 2", len(snap))
	}
	if snap[2].W != 8 {
		t.Errorf("snap[2].W: got %v, want 8", snap[2].W)
	}
	if _, ok := snap[3]; ok {
		t.Errorf("element 3 has no visual but appeared in snapshot")
	}
}

func TestDiff(t *testing.T) {
	before := Snapshot{
		1: {X: 10, Y: 4, W: 5, H: 3},
		2: {X: 0, Y: 0, W: 8, H: 3},
		9: {X: 1, Y: 1, W: 1, H: 1}, // gone after
	}
	after := Snapshot{
		1: {X: 0, Y: 0, W: 5, H: 3},
		2: {X: 0, Y: 0, W: 4, H: 3},
		7: {X: 2, Y: 2, W: 2, H: 2}, // new element, no before entry
	}

	deltas := Diff(before, after)
	if len(deltas) != 2 {
		t.Fatalf("delta count: got %d, want 2", len(deltas))
	}

	byID := map[int]Delta{}
	for _, d := range deltas {
		byID[d.ID] = d
	}

	d1 := byID[1]
	if d1.DX != 10 || d1.DY != 4 {
		t.Errorf("delta 1: got (%v,%v), want (10,4)", d1.DX, d1.DY)
	}
	if d1.ScaleX != 1 || d1.ScaleY != 1 {
		t.Errorf("delta 1 scale: got (%v,%v), want (1,1)", d1.ScaleX, d1.ScaleY)
	}
	if !d1.Moved() {
		t.Errorf("delta 1 should be observable")
	}

	d2 := byID[2]
	if d2.DX != 0 || d2.ScaleX != 2 {
		t.Errorf("delta 2: got DX=%v ScaleX=%v, want DX=0 ScaleX=2", d2.DX, d2.ScaleX)
	}
}

func TestDiffZeroSizeRect(t *testing.T) {
	before := Snapshot{1: {W: 5, H: 3}}
	after := Snapshot{1: {W: 0, H: 0}}
	deltas := Diff(before, after)
	if len(deltas) != 1 {
		t.Fatalf("delta count: got %d, want 1", len(deltas))
	}
	if deltas[0].ScaleX != 1 || deltas[0].ScaleY != 1 {
		t.Errorf("zero-size rect must scale as identity, got (%v,%v)", deltas[0].ScaleX, deltas[0].ScaleY)
	}
}

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 0},
		{0.5, 0.875},
		{1, 1},
	}
	for _, tt := range tests {
		if got := EaseOutCubic(tt.p); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("EaseOutCubic(%v): got %v, want %v", tt.p, got, tt.want)
		}
	}
	// Monotonic over [0,1].
	prev := -1.0
	for p := 0.0; p <= 1.0; p += 0.05 {
		got := EaseOutCubic(p)
		if got < prev {
			t.Fatalf("EaseOutCubic not monotonic at p=%v", p)
		}
		prev = got
	}
}

func TestTransitionFrames(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deltas := []Delta{
		{ID: 1, DX: 10, DY: -4, ScaleX: 1, ScaleY: 1},
		{ID: 2, DX: 0, DY: 0, ScaleX: 1, ScaleY: 1}, // unobservable
	}
	tr := NewTransition(deltas, start, 200*time.Millisecond, Linear)

	// At t=0 the offset fully undoes the layout change.
	offsets, done := tr.Frame(start)
	if done {
		t.Fatalf("transition done at start")
	}
	if o := offsets[1]; o.DX != 10 || o.DY != -4 {
		t.Errorf("start offset: got (%v,%v), want (10,-4)", o.DX, o.DY)
	}
	if _, ok := offsets[2]; ok {
		t.Errorf("unobservable delta produced an offset")
	}

	// Halfway with linear easing.
	offsets, done = tr.Frame(start.Add(100 * time.Millisecond))
	if done {
		t.Fatalf("transition done at halfway")
	}
	if o := offsets[1]; math.Abs(o.DX-5) > 1e-9 || math.Abs(o.DY+2) > 1e-9 {
		t.Errorf("halfway offset: got (%v,%v), want (5,-2)", o.DX, o.DY)
	}

	// At and past the end: identity, done.
	offsets, done = tr.Frame(start.Add(300 * time.Millisecond))
	if !done {
		t.Fatalf("transition not done past end")
	}
	if len(offsets) != 0 {
		t.Errorf("offsets at end: got %d entries, want 0", len(offsets))
	}
	if tr.Active(start.Add(300 * time.Millisecond)) {
		t.Errorf("Active past end")
	}
	if !tr.Active(start.Add(50 * time.Millisecond)) {
		t.Errorf("not Active mid-flight")
	}
}

func TestTransitionScaleInterpolation(t *testing.T) {
	start := time.Unix(0, 0)
	deltas := []Delta{{ID: 1, ScaleX: 2, ScaleY: 3}}
	tr := NewTransition(deltas, start, 100*time.Millisecond, Linear)

	offsets, _ := tr.Frame(start.Add(50 * time.Millisecond))
	o := offsets[1]
	if math.Abs(o.ScaleX-1.5) > 1e-9 || math.Abs(o.ScaleY-2) > 1e-9 {
		t.Errorf("halfway scale: got (%v,%v), want (1.5,2)", o.ScaleX, o.ScaleY)
	}
}

func TestZeroTransitionIsInert(t *testing.T) {
	var tr Transition
	now := time.Now()
	if tr.Active(now) {
		t.Errorf("zero Transition reports Active")
	}
	offsets, done := tr.Frame(now)
	if !done || len(offsets) != 0 {
		t.Errorf("zero Transition frame: got done=%v offsets=%d, want done=true offsets=0", done, len(offsets))
	}
}

func TestZeroDurationCompletesImmediately(t *testing.T) {
	now := time.Now()
	tr := NewTransition([]Delta{{ID: 1, DX: 3}}, now, 0, nil)
	if tr.Active(now) {
		t.Errorf("zero-duration transition reports Active")
	}
	if _, done := tr.Frame(now); !done {
		t.Errorf("zero-duration transition not done")
	}
}
