// Package trace persists press events to a JSONL session trace and computes
// summary statistics for read-back. Tracing is optional: the keyboard itself
// carries no required persisted state.
package trace

import (
	"time"

	"github.com/driftkeys/driftkeys/internal/keyboard"
)

// Event is one recorded key press: which key, where it came from, and how
// much reflow it caused.
type Event struct {
	Seq     int       `json:"seq"`
	Time    time.Time `json:"time"`
	KeyID   int       `json:"key_id"`
	Label   string    `json:"label"`
	Action  string    `json:"action"`
	FromRow int       `json:"from_row"`
	FromCol int       `json:"from_col"`
	Moves   int       `json:"moves"` // total relocations, promotion included
	Layout  string    `json:"layout"`
}

// FromPress builds an Event from a completed press result.
func FromPress(seq int, res keyboard.PressResult, layout string, now time.Time) Event {
	return Event{
		Seq:     seq,
		Time:    now,
		KeyID:   res.Key.ID,
		Label:   res.Key.Label,
		Action:  res.Key.Action.String(),
		FromRow: res.FromRow,
		FromCol: res.FromCol,
		Moves:   len(res.Moves),
		Layout:  layout,
	}
}
