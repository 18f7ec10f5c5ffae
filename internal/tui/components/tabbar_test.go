package components

import (
	"strings"
	"testing"
)

func TestTabBarCycle(t *testing.T) {
	tb := NewTabBar([]string{"full", "compact"})
	if tb.Title() != "full" || tb.Active() != 0 {
		t.Fatalf("initial tab = %q (%d)", tb.Title(), tb.Active())
	}
	tb = tb.Next()
	if tb.Title() != "compact" {
		t.Errorf("after Next, tab = %q", tb.Title())
	}
	tb = tb.Next()
	if tb.Title() != "full" {
		t.Errorf("Next did not wrap, tab = %q", tb.Title())
	}
}

func TestTabBarSetActive(t *testing.T) {
	tb := NewTabBar([]string{"full", "compact"})
	tb = tb.SetActive(1)
	if tb.Title() != "compact" {
		t.Errorf("SetActive(1) tab = %q", tb.Title())
	}
	tb = tb.SetActive(5)
	if tb.Title() != "compact" {
		t.Errorf("out-of-range SetActive changed tab to %q", tb.Title())
	}
}

func TestTabBarView(t *testing.T) {
	tb := NewTabBar([]string{"full", "compact"})
	view := tb.View()
	for _, want := range []string{"full", "compact", "│"} {
		if !strings.Contains(view, want) {
			t.Errorf("view %q missing %q", view, want)
		}
	}
}

func TestTabBarEmpty(t *testing.T) {
	tb := NewTabBar(nil)
	if tb.Title() != "" || tb.View() != "" {
		t.Error("empty tab bar must render nothing")
	}
	if tb = tb.Next(); tb.Active() != 0 {
		t.Error("Next on empty tab bar must not move")
	}
}
