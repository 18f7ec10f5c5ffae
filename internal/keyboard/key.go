// Package keyboard implements the self-sorting virtual keyboard engine: the
// key/row model, the press-driven re-sort with row reflow, and the Surface
// contract through which the engine mirrors every model mutation into the
// presentation layer.
package keyboard

import "fmt"

// Action is what pressing a key does to the output text.
type Action int

const (
	ActionAppend    Action = iota // append the key's label
	ActionBackspace               // delete the last rune
	ActionEnter                   // append a newline
	ActionSpace                   // append a space
)

// String returns the action name as used in traces and layout listings.
func (a Action) String() string {
	switch a {
	case ActionAppend:
		return "append"
	case ActionBackspace:
		return "backspace"
	case ActionEnter:
		return "enter"
	case ActionSpace:
		return "space"
	default:
		return "unknown"
	}
}

// Key is a single actionable unit of the layout. Identity (ID) and Width are
// fixed for the key's lifetime; only the engine's MoveKey relocates a key.
type Key struct {
	ID     int
	Label  string
	Width  int // layout units, always > 0
	Action Action
}

// String renders the key for logs and error context.
func (k *Key) String() string {
	if k == nil {
		return "<nil key>"
	}
	return fmt.Sprintf("key %d %q (w=%d, %s)", k.ID, k.Label, k.Width, k.Action)
}

// Row is an ordered sequence of keys plus the row's default width budget,
// snapshotted once at initialization and never changed afterwards even as
// membership churns during reflow.
type Row struct {
	keys         []*Key
	defaultWidth int
	finalized    bool
}

// append adds a key at the end of the row. Only used during construction and
// by MoveKey's insert path.
func (r *Row) append(k *Key) {
	r.keys = append(r.keys, k)
}

// insert places k at column col, shifting subsequent keys right.
func (r *Row) insert(col int, k *Key) {
	r.keys = append(r.keys, nil)
	copy(r.keys[col+1:], r.keys[col:])
	r.keys[col] = k
}

// remove deletes and returns the key at column col.
func (r *Row) remove(col int) *Key {
	k := r.keys[col]
	r.keys = append(r.keys[:col], r.keys[col+1:]...)
	return k
}

// Len returns the number of keys currently in the row.
func (r *Row) Len() int { return len(r.keys) }

// Key returns the key at column col.
func (r *Row) Key(col int) *Key { return r.keys[col] }

// Keys returns the row's keys in visual order. The slice is a copy; mutating
// it does not affect the row.
func (r *Row) Keys() []*Key {
	out := make([]*Key, len(r.keys))
	copy(out, r.keys)
	return out
}

// CurrentWidth sums the widths of the keys currently in the row.
func (r *Row) CurrentWidth() int {
	total := 0
	for _, k := range r.keys {
		total += k.Width
	}
	return total
}

// DefaultWidth returns the row's width budget.
func (r *Row) DefaultWidth() int { return r.defaultWidth }

// finalizeDefaultWidth snapshots the current width as the row's permanent
// budget. Called exactly once per row, after all initial keys (including the
// row's special key, if any) are in place.
func (r *Row) finalizeDefaultWidth() {
	if r.finalized {
		return
	}
	r.defaultWidth = r.CurrentWidth()
	r.finalized = true
}
