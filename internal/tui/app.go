// Package tui implements the terminal interface for the self-sorting
// keyboard: a bubbletea program that renders the keycap grid, replays
// reflow transitions as cell-grid animation, and echoes typed output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/driftkeys/driftkeys/internal/config"
	"github.com/driftkeys/driftkeys/internal/demo"
	"github.com/driftkeys/driftkeys/internal/keyboard"
	"github.com/driftkeys/driftkeys/internal/trace"
	"github.com/driftkeys/driftkeys/internal/tui/components"
	"github.com/driftkeys/driftkeys/internal/tui/panels"
)

const (
	// pressFlashDuration is how long a keycap stays highlighted after a press.
	pressFlashDuration = 250 * time.Millisecond
	// demoInterval paces the scripted typist.
	demoInterval = 600 * time.Millisecond
)

// Recorder persists press events. The JSONL trace writer satisfies it; tests
// substitute an in-memory recorder.
type Recorder interface {
	Append(ev trace.Event) error
}

// Model is the root bubbletea model.
type Model struct {
	cfg    config.Config
	theme  Theme
	policy keyboard.ReflowPolicy

	engine  *keyboard.Engine
	surface *CellSurface

	tabs      components.TabBar
	output    panels.OutputPanel
	traceView components.TraceView
	layout    Layout

	width  int
	height int

	pressedID   int
	lastPressed string
	pressSeq    int

	script   *demo.Script
	recorder Recorder

	startedAt time.Time
	now       time.Time
	animNow   time.Time
}

// New builds the root model around a fresh engine for the given layout.
// script and rec may be nil.
func New(cfg config.Config, spec keyboard.LayoutSpec, script *demo.Script, rec Recorder) Model {
	policy, err := keyboard.ParseReflowPolicy(cfg.Keyboard.ReflowPolicy)
	if err != nil {
		policy = keyboard.PolicyWidthBudget
	}

	var names []string
	active := 0
	for i, l := range keyboard.Layouts() {
		names = append(names, l.Name)
		if l.Name == spec.Name {
			active = i
		}
	}
	tabs := components.NewTabBar(names)
	tabs = tabs.SetActive(active)

	m := Model{
		cfg:       cfg,
		theme:     NewTheme(cfg.TUI.AccentColor),
		policy:    policy,
		tabs:      tabs,
		output:    panels.NewOutputPanel(40, 5),
		traceView: components.NewTraceView(40, 5),
		width:     80,
		height:    24,
		pressedID: -1,
		script:    script,
		recorder:  rec,
		startedAt: time.Now(),
		now:       time.Now(),
	}
	m = m.mountLayout(spec)
	return m
}

// mountLayout replaces the engine and surface with fresh ones for spec and
// recomputes panel geometry.
func (m Model) mountLayout(spec keyboard.LayoutSpec) Model {
	m.surface = NewCellSurface(
		len(spec.Rows),
		m.cfg.Keyboard.UnitsPerCell,
		m.cfg.Animation.Enabled,
		time.Duration(m.cfg.Animation.DurationMS)*time.Millisecond,
	)
	m.engine = keyboard.NewEngine(spec, m.surface, m.policy)
	m.pressedID = -1
	return m.relayout()
}

// relayout recomputes the panel rectangles for the current terminal size.
func (m Model) relayout() Model {
	kbW, kbH := m.surface.Size()
	m.layout = Calculate(m.width, m.height, kbW, kbH+panels.PreviewMargin, m.cfg.TUI.ShowTrace)
	m.tabs = m.tabs.SetWidth(m.width)

	if w, h := innerDims(m.layout.Output); w > 0 {
		m.output = m.output.SetSize(w, h)
	}
	if w, h := innerDims(m.layout.Trace); w > 0 && h > 1 && m.cfg.TUI.ShowTrace {
		// One inner row is taken by the panel label.
		m.traceView = m.traceView.SetSize(w, h-1)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}
	if m.script != nil {
		cmds = append(cmds, demoCmd())
	}
	return tea.Batch(cmds...)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func demoCmd() tea.Cmd {
	return tea.Tick(demoInterval, func(time.Time) tea.Msg {
		return demoMsg{}
	})
}

func (m Model) frameCmd() tea.Cmd {
	interval := time.Second / time.Duration(m.cfg.Animation.FPS)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.relayout(), nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()

	case frameMsg:
		m.animNow = time.Time(msg)
		if m.surface.Animating(m.animNow) {
			return m, m.frameCmd()
		}
		return m, nil

	case clearPressMsg:
		m.pressedID = -1
		return m, nil

	case demoMsg:
		if m.script == nil || m.script.Done() {
			return m, nil
		}
		k, ok := m.script.Next(m.engine)
		if !ok {
			return m, nil
		}
		m, cmd := m.press(k)
		return m, tea.Batch(cmd, demoCmd())

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.traceView, cmd = m.traceView.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.tabs = m.tabs.Next()
		spec, err := keyboard.LayoutByName(m.tabs.Title())
		if err != nil {
			return m, nil
		}
		return m.mountLayout(spec), nil
	case "ctrl+f":
		m.traceView = m.traceView.ToggleFollow()
		return m, nil
	}

	if k := VirtualKeyFor(m.engine, msg.String()); k != nil {
		return m.press(k)
	}

	// Unbound keys scroll the trace panel.
	var cmd tea.Cmd
	m.traceView, cmd = m.traceView.Update(msg)
	return m, cmd
}

// press runs the full press pipeline: engine reflow, trace append, output
// echo, flash and animation scheduling.
func (m Model) press(k *keyboard.Key) (Model, tea.Cmd) {
	res, err := m.engine.Press(k)
	if err != nil {
		m.traceView = m.traceView.AppendLine(m.theme.RenderTraceError(err))
		return m, nil
	}

	m.pressSeq++
	m.lastPressed = k.Label
	m.pressedID = k.ID

	ev := trace.FromPress(m.pressSeq, res, m.tabs.Title(), time.Now())
	if m.recorder != nil {
		// Trace persistence never interrupts typing.
		if err := m.recorder.Append(ev); err != nil {
			m.traceView = m.traceView.AppendLine(m.theme.RenderTraceError(err))
		}
	}
	m.traceView = m.traceView.AppendLine(m.theme.RenderTraceLine(ev))
	m.output = m.output.Apply(k.Action, k.Label)

	cmds := []tea.Cmd{
		tea.Tick(pressFlashDuration, func(time.Time) tea.Msg {
			return clearPressMsg{}
		}),
	}
	if m.cfg.Animation.Enabled {
		m.animNow = time.Now()
		cmds = append(cmds, m.frameCmd())
	}
	return m, tea.Batch(cmds...)
}

// Presses reports how many keys have been pressed this session.
func (m Model) Presses() int { return m.pressSeq }

// Typed returns the text accumulated in the output panel.
func (m Model) Typed() string { return m.output.Text() }
