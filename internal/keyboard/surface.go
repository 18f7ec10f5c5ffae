package keyboard

import "github.com/driftkeys/driftkeys/internal/flip"

// Surface is the engine's only view of the presentation layer. The engine
// holds the authoritative model and emits explicit visual edits through this
// interface; it never reads layout back from the surface except for the
// animation rect snapshots.
//
// Every MoveKey is mirrored by exactly one Reparent, in the same order, so
// the visual tree can never diverge from the model.
type Surface interface {
	// CreateKeyVisual instantiates a visual element for k, appended at the
	// end of the given row's container. Called once per key at construction.
	CreateKeyVisual(k *Key, row int)

	// Rect returns k's current on-screen bounding box. ok is false when the
	// key has no visual yet. Used only for animation snapshots.
	Rect(k *Key) (flip.Rect, bool)

	// Reparent moves k's visual element to the given row and column.
	Reparent(k *Key, toRow, toCol int)

	// PlayTransition requests a FLIP-style animation for the given deltas.
	// Fire-and-forget: the engine never waits for it.
	PlayTransition(deltas []flip.Delta)
}

// NopSurface is a Surface that does nothing. Useful for headless engines in
// tools and tests that only care about the model.
type NopSurface struct{}

func (NopSurface) CreateKeyVisual(*Key, int)   {}
func (NopSurface) Rect(*Key) (flip.Rect, bool) { return flip.Rect{}, false }
func (NopSurface) Reparent(*Key, int, int)     {}
func (NopSurface) PlayTransition([]flip.Delta) {}
