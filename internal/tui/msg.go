package tui

import "time"

// tickMsg is sent every second for the clock.
type tickMsg time.Time

// frameMsg drives one FLIP animation frame.
type frameMsg time.Time

// clearPressMsg ends the pressed-key flash and preview bubble.
type clearPressMsg struct{}

// demoMsg asks the scripted typist for its next press.
type demoMsg struct{}
