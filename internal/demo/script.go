// Package demo drives the keyboard from a scripted text, pressing one
// virtual key per step. Used by `driftkeys run --demo` to showcase the
// re-sorting behavior without a human typist.
package demo

import (
	"strings"

	"github.com/driftkeys/driftkeys/internal/keyboard"
)

// Script walks a text one character at a time, resolving each to a virtual
// key at step time (keys move between rows, but label identity is stable).
// Characters with no matching key are skipped.
type Script struct {
	runes []rune
	pos   int
}

// New creates a script for the given text. Letters are lowercased to match
// key labels.
func New(text string) *Script {
	return &Script{runes: []rune(strings.ToLower(text))}
}

// Done reports whether the script has been fully consumed.
func (s *Script) Done() bool { return s.pos >= len(s.runes) }

// Remaining returns the number of unconsumed characters.
func (s *Script) Remaining() int { return len(s.runes) - s.pos }

// Next advances to the next character that resolves to a key on e and
// returns that key. ok is false once the script is exhausted.
func (s *Script) Next(e *keyboard.Engine) (k *keyboard.Key, ok bool) {
	for s.pos < len(s.runes) {
		ch := s.runes[s.pos]
		s.pos++
		if k := resolve(e, ch); k != nil {
			return k, true
		}
	}
	return nil, false
}

// resolve maps one character onto a key of the engine, or nil.
func resolve(e *keyboard.Engine, ch rune) *keyboard.Key {
	switch ch {
	case ' ':
		return e.KeyByAction(keyboard.ActionSpace)
	case '\n':
		return e.KeyByAction(keyboard.ActionEnter)
	default:
		return e.KeyByLabel(string(ch))
	}
}
