// Package config parses driftkeys.toml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/driftkeys/driftkeys/internal/keyboard"
)

// DefaultAccentColor is the default TUI accent color (indigo).
const DefaultAccentColor = "#7D56F4"

// hexColorRe matches a 6-digit hex color string like "#7D56F4".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the top-level driftkeys.toml configuration.
type Config struct {
	Keyboard  KeyboardConfig  `toml:"keyboard"`
	Animation AnimationConfig `toml:"animation"`
	TUI       TUIConfig       `toml:"tui"`
	Trace     TraceConfig     `toml:"trace"`
}

// KeyboardConfig selects the layout and reflow behavior.
type KeyboardConfig struct {
	Layout       string `toml:"layout"`         // builtin layout name: "full" or "compact"
	ReflowPolicy string `toml:"reflow_policy"`  // "width-budget" or "row-count"
	UnitsPerCell int    `toml:"units_per_cell"` // layout units per terminal cell
}

// AnimationConfig controls the FLIP reflow animation.
type AnimationConfig struct {
	Enabled    bool `toml:"enabled"`
	DurationMS int  `toml:"duration_ms"`
	FPS        int  `toml:"fps"`
}

// TUIConfig controls the terminal UI appearance.
type TUIConfig struct {
	AccentColor string `toml:"accent_color"`
	ShowPreview bool   `toml:"show_preview"` // floating label bubble on press
	ShowTrace   bool   `toml:"show_trace"`   // press trace panel
}

// TraceConfig controls the optional JSONL session trace.
type TraceConfig struct {
	Enabled   bool   `toml:"enabled"`
	Dir       string `toml:"dir"`
	Retention int    `toml:"retention"` // trace files to keep; 0 = unlimited
}

// Validate checks the configuration for issues that would cause confusing
// runtime failures. It returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if _, err := keyboard.LayoutByName(c.Keyboard.Layout); err != nil {
		errs = append(errs, fmt.Errorf("keyboard.layout: %w", err))
	}
	if _, err := keyboard.ParseReflowPolicy(c.Keyboard.ReflowPolicy); err != nil {
		errs = append(errs, fmt.Errorf("keyboard.reflow_policy: %w", err))
	}
	if c.Keyboard.UnitsPerCell <= 0 {
		errs = append(errs, fmt.Errorf("keyboard.units_per_cell must be > 0"))
	}

	if c.Animation.DurationMS < 0 {
		errs = append(errs, fmt.Errorf("animation.duration_ms must be >= 0"))
	}
	if c.Animation.FPS <= 0 || c.Animation.FPS > 120 {
		errs = append(errs, fmt.Errorf("animation.fps must be in 1..120"))
	}

	if c.TUI.AccentColor != "" && !hexColorRe.MatchString(c.TUI.AccentColor) {
		errs = append(errs, fmt.Errorf("tui.accent_color must be a hex color (e.g. \"#7D56F4\")"))
	}

	if c.Trace.Retention < 0 {
		errs = append(errs, fmt.Errorf("trace.retention must be >= 0 (0 = unlimited)"))
	}
	if c.Trace.Enabled && c.Trace.Dir == "" {
		errs = append(errs, fmt.Errorf("trace.dir must be set when trace.enabled is true"))
	}

	return errors.Join(errs...)
}

// Defaults returns a Config with sensible defaults.
func Defaults() Config {
	return Config{
		Keyboard: KeyboardConfig{
			Layout:       "full",
			ReflowPolicy: "width-budget",
			UnitsPerCell: 10,
		},
		Animation: AnimationConfig{
			Enabled:    true,
			DurationMS: 220,
			FPS:        30,
		},
		TUI: TUIConfig{
			AccentColor: DefaultAccentColor,
			ShowPreview: true,
			ShowTrace:   true,
		},
		Trace: TraceConfig{
			Enabled:   false,
			Dir:       ".driftkeys",
			Retention: 20,
		},
	}
}

// Load reads driftkeys.toml from the given path. If path is empty, it walks
// up from the current working directory looking for driftkeys.toml; if none
// is found, defaults are returned (the widget runs fine unconfigured).
// Returns an error if the file contains unknown keys (likely typos).
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfig()
		if err != nil {
			cfg := Defaults()
			return &cfg, nil
		}
		path = found
	}

	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, strings.Join(keys, ", "))
	}

	return &cfg, nil
}

// findConfig walks up from the current directory looking for driftkeys.toml.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, "driftkeys.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("config: driftkeys.toml not found (searched up from %s)", dir)
		}
		dir = parent
	}
}

// InitFile writes a default driftkeys.toml template to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, "driftkeys.toml")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: driftkeys.toml already exists at %s", path)
	}

	content := `# driftkeys.toml — DriftKeys configuration

[keyboard]
layout = "full"                 # "full" (4 rows with specials) or "compact" (3 letter rows)
reflow_policy = "width-budget"  # "width-budget" or "row-count"
units_per_cell = 10             # layout units per terminal cell

[animation]
enabled = true
duration_ms = 220  # FLIP transition length
fps = 30

[tui]
accent_color = "#7D56F4"  # hex color for pressed keys / accents
show_preview = true       # floating label bubble while a key is held
show_trace = true         # recent-press trace panel

[trace]
enabled = false     # append press events to a JSONL session trace
dir = ".driftkeys"  # trace directory
retention = 20      # trace files to keep; 0 = unlimited
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}
