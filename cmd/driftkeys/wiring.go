package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/driftkeys/driftkeys/internal/config"
	"github.com/driftkeys/driftkeys/internal/demo"
	"github.com/driftkeys/driftkeys/internal/keyboard"
	"github.com/driftkeys/driftkeys/internal/trace"
	"github.com/driftkeys/driftkeys/internal/tui"
)

// executeRun loads configuration, wires the engine, surface and optional
// trace recorder together, and runs the bubbletea program.
func executeRun(cfgPath, layoutOverride, demoText string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	layoutName := cfg.Keyboard.Layout
	if layoutOverride != "" {
		layoutName = layoutOverride
	}
	spec, err := keyboard.LayoutByName(layoutName)
	if err != nil {
		return err
	}

	var rec tui.Recorder
	if cfg.Trace.Enabled {
		writer, traceErr := trace.NewJSONL(cfg.Trace.Dir)
		if traceErr != nil {
			return fmt.Errorf("open trace: %w", traceErr)
		}
		defer writer.Close()
		if cfg.Trace.Retention > 0 {
			if pruneErr := trace.EnforceRetention(cfg.Trace.Dir, cfg.Trace.Retention); pruneErr != nil {
				return fmt.Errorf("prune traces: %w", pruneErr)
			}
		}
		rec = writer
	}

	var script *demo.Script
	if demoText != "" {
		script = demo.New(demoText)
	}

	model := tui.New(*cfg, spec, script, rec)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// executeStats summarizes a session trace file: the given one, or the most
// recent file in the configured trace directory.
func executeStats(cfgPath, file string) (string, error) {
	if file == "" {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return "", err
		}
		latest, err := trace.Latest(cfg.Trace.Dir)
		if err != nil {
			return "", err
		}
		if latest == "" {
			return "No traces found. Run 'driftkeys run' with tracing enabled first.\n", nil
		}
		file = latest
	}

	events, err := trace.ReadFile(file)
	if err != nil {
		return "", err
	}
	return formatStats(file, trace.Summarize(events)), nil
}

// formatStats renders a session summary for the terminal.
func formatStats(file string, s trace.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Session %s\n", file)
	b.WriteString("───────\n")
	fmt.Fprintf(&b, "  presses:  %d\n", s.Presses)
	fmt.Fprintf(&b, "  moves:    %d\n", s.Moves)
	if !s.Started.IsZero() {
		fmt.Fprintf(&b, "  span:     %s\n", s.Ended.Sub(s.Started).Round(time.Second))
	}
	if len(s.Layouts) > 0 {
		fmt.Fprintf(&b, "  layouts:  %s\n", strings.Join(s.Layouts, ", "))
	}
	if s.BusiestKey != "" {
		fmt.Fprintf(&b, "  busiest:  %s\n", s.BusiestKey)
	}
	if len(s.Keys) > 0 {
		b.WriteString("\nKeys\n────\n")
		for _, k := range s.Keys {
			fmt.Fprintf(&b, "  %-6s  %4d presses  %4d moves\n", k.Label, k.Presses, k.Moves)
		}
	}
	return b.String()
}

// formatLayouts renders the builtin layout catalog.
func formatLayouts() string {
	var b strings.Builder
	b.WriteString("Layouts\n───────\n")
	for _, spec := range keyboard.Layouts() {
		fmt.Fprintf(&b, "  %s (%d rows)\n", spec.Name, len(spec.Rows))
		for i, row := range spec.Rows {
			var labels []string
			for _, r := range row.Letters {
				labels = append(labels, string(r))
			}
			if row.Special != nil {
				labels = append(labels, row.Special.Label)
			}
			fmt.Fprintf(&b, "    row %d: %s\n", i, strings.Join(labels, " "))
		}
	}
	return b.String()
}
