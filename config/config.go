// Package config provides configuration loading and access for the demo.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all demo configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Grid      GridConfig      `yaml:"grid"`
	Spin      SpinConfig      `yaml:"spin"`
	Jelly     JellyConfig     `yaml:"jelly"`
	Symbols   SymbolsConfig   `yaml:"symbols"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// GridConfig holds tile grid layout parameters.
type GridConfig struct {
	Rows         int     `yaml:"rows"`
	Cols         int     `yaml:"cols"`
	TileSize     float64 `yaml:"tile_size"`     // Tile edge length in pixels
	Spacing      float64 `yaml:"spacing"`       // Gap between adjacent tiles
	FramePadding float64 `yaml:"frame_padding"` // Border between outer tiles and frame edge
}

// SpinConfig holds rotation animation parameters.
type SpinConfig struct {
	Duration  float64      `yaml:"duration"`  // Seconds per quarter turn
	Overshoot float64      `yaml:"overshoot"` // Back-ease amplitude (1.70158 = classic ~10%)
	Direction string       `yaml:"direction"` // "cw" or "ccw"
	Easing    string       `yaml:"easing"`    // back, bounce, elastic, custom
	Curve     []CurvePoint `yaml:"curve"`     // Control points for easing: custom
}

// CurvePoint is a single control point of a custom easing curve.
type CurvePoint struct {
	T float64 `yaml:"t"` // Normalized time [0, 1]
	V float64 `yaml:"v"` // Eased value (may overshoot past 1)
}

// JellyConfig holds the squash-and-recover zoom parameters.
type JellyConfig struct {
	Squash        float64 `yaml:"squash"`         // Minimum scale at full squash
	SquashPortion float64 `yaml:"squash_portion"` // Fraction of the spin spent squashing
	Overshoot     float64 `yaml:"overshoot"`      // Back-ease amplitude of the recovery
}

// SymbolsConfig holds cosmetic symbol fill parameters.
type SymbolsConfig struct {
	Count int   `yaml:"count"` // Distinct symbol kinds
	Seed  int64 `yaml:"seed"`  // RNG seed (0 = time-based)
}

// TelemetryConfig holds frame recording parameters.
type TelemetryConfig struct {
	SampleEvery int `yaml:"sample_every"` // Ticks between CSV samples
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32      float32 // Fixed timestep (1 / target_fps) as float32
	TilePitch float32 // TileSize + Spacing
	FrameW    float32 // Frame pixel width including padding
	FrameH    float32 // Frame pixel height including padding
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	// Sanitize values the renderer and scene cannot tolerate
	if c.Grid.Rows < 1 {
		c.Grid.Rows = 1
	}
	if c.Grid.Cols < 1 {
		c.Grid.Cols = 1
	}
	if c.Symbols.Count < 1 {
		c.Symbols.Count = 1
	}
	if c.Screen.TargetFPS < 1 {
		c.Screen.TargetFPS = 60
	}
	if c.Spin.Duration <= 0 {
		c.Spin.Duration = 0.9
	}
	if c.Telemetry.SampleEvery < 1 {
		c.Telemetry.SampleEvery = 1
	}

	c.Derived.DT32 = 1.0 / float32(c.Screen.TargetFPS)
	c.Derived.TilePitch = float32(c.Grid.TileSize + c.Grid.Spacing)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	cols := float64(c.Grid.Cols)
	rows := float64(c.Grid.Rows)
	c.Derived.FrameW = float32(cols*c.Grid.TileSize + (cols-1)*c.Grid.Spacing + 2*c.Grid.FramePadding)
	c.Derived.FrameH = float32(rows*c.Grid.TileSize + (rows-1)*c.Grid.Spacing + 2*c.Grid.FramePadding)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
