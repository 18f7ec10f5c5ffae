package components

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTraceViewAppendAndFollow(t *testing.T) {
	v := NewTraceView(40, 3)
	if !v.Following() {
		t.Fatal("must start in follow mode")
	}
	for i := 0; i < 10; i++ {
		v = v.AppendLine(fmt.Sprintf("line %d", i))
	}
	if v.Len() != 10 {
		t.Errorf("Len() = %d, want 10", v.Len())
	}
	// Follow mode keeps the newest line in view.
	if !strings.Contains(v.View(), "line 9") {
		t.Errorf("view does not show newest line:\n%s", v.View())
	}
}

func TestTraceViewHistoryCap(t *testing.T) {
	v := NewTraceView(40, 3)
	for i := 0; i < traceHistoryCap+50; i++ {
		v = v.AppendLine(fmt.Sprintf("line %d", i))
	}
	if v.Len() != traceHistoryCap {
		t.Errorf("Len() = %d, want %d", v.Len(), traceHistoryCap)
	}
}

func TestTraceViewScrollPausesFollow(t *testing.T) {
	v := NewTraceView(40, 3)
	for i := 0; i < 20; i++ {
		v = v.AppendLine(fmt.Sprintf("line %d", i))
	}
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	if v.Following() {
		t.Error("scrolling up did not pause follow mode")
	}
	v = v.ToggleFollow()
	if !v.Following() {
		t.Error("ToggleFollow did not resume follow mode")
	}
	if !strings.Contains(v.View(), "line 19") {
		t.Error("resumed follow mode not at bottom")
	}
}
