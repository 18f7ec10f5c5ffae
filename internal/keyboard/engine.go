package keyboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/driftkeys/driftkeys/internal/flip"
)

// ErrKeyNotTracked reports a key that cannot be located in any row. Every key
// must belong to exactly one row at all times, so hitting this means the
// engine's own bookkeeping broke; the press that trips it is aborted and
// never retried.
var ErrKeyNotTracked = errors.New("keyboard: key not tracked in any row")

// ErrSlotMismatch reports a MoveKey call whose (fromRow, fromCol) does not
// hold the given key. A programming-error signal, not a user-facing failure.
var ErrSlotMismatch = errors.New("keyboard: slot does not hold expected key")

// ReflowPolicy selects how rows shed overflow after a key is promoted to the
// top-left slot.
type ReflowPolicy int

const (
	// PolicyWidthBudget demotes each over-budget row's last key to the next
	// row until the row's width is back within its default budget. The
	// general policy: rows with wide special keys self-balance by visual
	// weight, not key count.
	PolicyWidthBudget ReflowPolicy = iota

	// PolicyRowCount moves exactly one key down from each row strictly above
	// the pressed key's old row, compensating for the vacated slot.
	PolicyRowCount
)

// String returns the policy name as spelled in driftkeys.toml.
func (p ReflowPolicy) String() string {
	switch p {
	case PolicyWidthBudget:
		return "width-budget"
	case PolicyRowCount:
		return "row-count"
	default:
		return "unknown"
	}
}

// ParseReflowPolicy parses a policy name as spelled in driftkeys.toml.
func ParseReflowPolicy(s string) (ReflowPolicy, error) {
	switch s {
	case "width-budget":
		return PolicyWidthBudget, nil
	case "row-count":
		return PolicyRowCount, nil
	default:
		return 0, fmt.Errorf("keyboard: unknown reflow policy %q", s)
	}
}

// Move records one key relocation performed during a press.
type Move struct {
	Key     *Key
	FromRow int
	FromCol int
	ToRow   int
	ToCol   int
}

// PressResult summarises one completed press: where the key came from and
// every move the reflow performed (the promotion itself is Moves[0]).
type PressResult struct {
	Key     *Key
	FromRow int
	FromCol int
	Moves   []Move
}

// Engine owns the rows and implements the press-driven re-sort. Row count and
// key membership are fixed at construction; per-row order and membership
// mutate on every press. The engine is single-goroutine by design: all
// operations run synchronously inside the host's event handler.
type Engine struct {
	rows    []*Row
	keys    []*Key // all keys, indexed by ID
	surface Surface
	policy  ReflowPolicy
}

// NewEngine builds an engine from a layout spec, creating one key per letter
// plus each row's special key, mirroring every key into the surface, and
// finalizing each row's width budget once its membership is complete.
func NewEngine(layout LayoutSpec, surface Surface, policy ReflowPolicy) *Engine {
	e := &Engine{surface: surface, policy: policy}
	nextID := 0
	for rowIdx, rs := range layout.Rows {
		row := &Row{}
		for _, ch := range rs.Letters {
			k := &Key{ID: nextID, Label: string(ch), Width: LetterWidth, Action: ActionAppend}
			nextID++
			row.append(k)
			e.keys = append(e.keys, k)
			e.surface.CreateKeyVisual(k, rowIdx)
		}
		if rs.Special != nil {
			k := &Key{ID: nextID, Label: rs.Special.Label, Width: rs.Special.Width, Action: rs.Special.Action}
			nextID++
			row.append(k)
			e.keys = append(e.keys, k)
			e.surface.CreateKeyVisual(k, rowIdx)
		}
		row.finalizeDefaultWidth()
		e.rows = append(e.rows, row)
	}
	return e
}

// Policy returns the engine's reflow policy.
func (e *Engine) Policy() ReflowPolicy { return e.policy }

// Rows returns the engine's rows in top-to-bottom order. The slice is a
// copy; the rows themselves are live.
func (e *Engine) Rows() []*Row {
	out := make([]*Row, len(e.rows))
	copy(out, e.rows)
	return out
}

// Keys returns every key the engine owns, in creation (ID) order.
func (e *Engine) Keys() []*Key {
	out := make([]*Key, len(e.keys))
	copy(out, e.keys)
	return out
}

// KeyByLabel returns the first key whose label matches, or nil. Convenience
// for mapping physical key input onto virtual keys.
func (e *Engine) KeyByLabel(label string) *Key {
	for _, k := range e.keys {
		if k.Label == label {
			return k
		}
	}
	return nil
}

// KeyByAction returns the first key with the given special action, or nil.
func (e *Engine) KeyByAction(a Action) *Key {
	for _, k := range e.keys {
		if k.Action == a {
			return k
		}
	}
	return nil
}

// Locate scans rows top-to-bottom, columns left-to-right, for k. A miss
// wraps ErrKeyNotTracked with the key identity and a full layout snapshot:
// it signals a broken invariant the caller cannot repair by re-querying.
func (e *Engine) Locate(k *Key) (row, col int, err error) {
	for r, rw := range e.rows {
		for c, cand := range rw.keys {
			if cand == k {
				return r, c, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("%w: %s, layout %s", ErrKeyNotTracked, k, e.layoutString())
}

// MoveKey is the sole primitive for relocating a key: it removes k from
// (fromRow, fromCol), inserts it into toRow at toCol shifting subsequent
// keys right, and emits the paired Reparent so the surface stays in
// lockstep. The source slot is verified to actually hold k.
func (e *Engine) MoveKey(k *Key, fromRow, fromCol, toRow, toCol int) error {
	if fromRow < 0 || fromRow >= len(e.rows) || toRow < 0 || toRow >= len(e.rows) {
		return fmt.Errorf("keyboard: move %s: row out of range (%d -> %d, %d rows)", k, fromRow, toRow, len(e.rows))
	}
	src := e.rows[fromRow]
	if fromCol < 0 || fromCol >= src.Len() || src.keys[fromCol] != k {
		return fmt.Errorf("%w: expected %s at (%d,%d), layout %s", ErrSlotMismatch, k, fromRow, fromCol, e.layoutString())
	}
	dst := e.rows[toRow]
	if toCol < 0 || toCol > dst.Len() {
		return fmt.Errorf("keyboard: move %s: column %d out of range for row %d (len %d)", k, toCol, toRow, dst.Len())
	}

	src.remove(fromCol)
	// Removing from the same row shifts later columns left by one.
	if src == dst && fromCol < toCol {
		toCol--
	}
	dst.insert(toCol, k)
	e.surface.Reparent(k, toRow, toCol)
	return nil
}

// Press runs the core re-sort for one key press: snapshot rects, promote the
// pressed key to the top-left slot, reflow per policy, snapshot again, and
// hand the deltas to the surface for a FLIP transition. Each press is an
// atomic stable-to-stable transition; the animation is cosmetic and never
// gates the next press.
func (e *Engine) Press(k *Key) (PressResult, error) {
	oldRow, oldCol, err := e.Locate(k)
	if err != nil {
		return PressResult{}, err
	}
	res := PressResult{Key: k, FromRow: oldRow, FromCol: oldCol}

	before := e.captureRects()

	if err := e.record(&res, k, oldRow, oldCol, 0, 0); err != nil {
		return res, err
	}

	switch e.policy {
	case PolicyRowCount:
		err = e.reflowRowCount(&res, oldRow)
	default:
		err = e.reflowWidthBudget(&res)
	}
	if err != nil {
		return res, err
	}

	after := e.captureRects()
	e.surface.PlayTransition(flip.Diff(before, after))
	return res, nil
}

// reflowWidthBudget restores row shape by demoting each over-budget row's
// last key into column 0 of the next row. Every move shrinks the source row
// by the moved key's positive width, so the loop terminates; a row whose
// single remaining key exceeds the budget is left alone.
func (e *Engine) reflowWidthBudget(res *PressResult) error {
	for r := 0; r < len(e.rows)-1; r++ {
		row := e.rows[r]
		for row.CurrentWidth() > row.defaultWidth && row.Len() > 1 {
			last := row.Len() - 1
			if err := e.record(res, row.keys[last], r, last, r+1, 0); err != nil {
				return err
			}
		}
	}
	return nil
}

// reflowRowCount moves one key down from each row strictly above the pressed
// key's old row, top to bottom, compensating for the vacated slot.
func (e *Engine) reflowRowCount(res *PressResult, oldRow int) error {
	for r := 0; r < oldRow && r < len(e.rows)-1; r++ {
		row := e.rows[r]
		if row.Len() == 0 {
			continue
		}
		last := row.Len() - 1
		if err := e.record(res, row.keys[last], r, last, r+1, 0); err != nil {
			return err
		}
	}
	return nil
}

// record performs one MoveKey and appends it to the press result.
func (e *Engine) record(res *PressResult, k *Key, fromRow, fromCol, toRow, toCol int) error {
	if err := e.MoveKey(k, fromRow, fromCol, toRow, toCol); err != nil {
		return err
	}
	res.Moves = append(res.Moves, Move{Key: k, FromRow: fromRow, FromCol: fromCol, ToRow: toRow, ToCol: toCol})
	return nil
}

// captureRects snapshots every key's current surface rect.
func (e *Engine) captureRects() flip.Snapshot {
	return flip.Capture(e.keyIDs(), func(id int) (flip.Rect, bool) {
		return e.surface.Rect(e.keys[id])
	})
}

func (e *Engine) keyIDs() []int {
	ids := make([]int, len(e.keys))
	for i := range e.keys {
		ids[i] = i
	}
	return ids
}

// layoutString renders the full layout for error context, one bracketed
// group of labels per row.
func (e *Engine) layoutString() string {
	var b strings.Builder
	for r, row := range e.rows {
		if r > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('[')
		for c, k := range row.keys {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(k.Label)
		}
		b.WriteByte(']')
	}
	return b.String()
}
