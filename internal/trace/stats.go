package trace

import (
	"sort"
	"time"
)

// KeyStats aggregates presses of one key label.
type KeyStats struct {
	Label   string
	Presses int
	Moves   int
}

// Stats summarises one session trace.
type Stats struct {
	Presses    int
	Moves      int
	Started    time.Time
	Ended      time.Time
	Layouts    []string   // distinct layouts seen, in order of first use
	Keys       []KeyStats // per-label, most pressed first
	BusiestKey string     // label with the most presses, "" when empty
}

// Summarize computes session statistics from a list of events.
func Summarize(events []Event) Stats {
	var s Stats
	byLabel := map[string]*KeyStats{}
	seenLayout := map[string]bool{}
	var order []string

	for _, ev := range events {
		s.Presses++
		s.Moves += ev.Moves
		if s.Started.IsZero() || ev.Time.Before(s.Started) {
			s.Started = ev.Time
		}
		if ev.Time.After(s.Ended) {
			s.Ended = ev.Time
		}
		if !seenLayout[ev.Layout] {
			seenLayout[ev.Layout] = true
			s.Layouts = append(s.Layouts, ev.Layout)
		}
		ks, ok := byLabel[ev.Label]
		if !ok {
			ks = &KeyStats{Label: ev.Label}
			byLabel[ev.Label] = ks
			order = append(order, ev.Label)
		}
		ks.Presses++
		ks.Moves += ev.Moves
	}

	// Stable order: most pressed first, first-seen breaks ties.
	for _, label := range order {
		s.Keys = append(s.Keys, *byLabel[label])
	}
	sort.SliceStable(s.Keys, func(i, j int) bool {
		return s.Keys[i].Presses > s.Keys[j].Presses
	})
	if len(s.Keys) > 0 {
		s.BusiestKey = s.Keys[0].Label
	}
	return s
}
