// Package config provides configuration loading and access for the app.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all application configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Canvas    CanvasConfig    `yaml:"canvas"`
	Camera    CameraConfig    `yaml:"camera"`
	UI        UIConfig        `yaml:"ui"`
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

// CanvasConfig holds the block canvas dimensions.
// The canvas can be larger than the screen; the camera handles the viewport.
type CanvasConfig struct {
	Width  int `yaml:"width"`  // Canvas width in world units (0 = use screen width minus the panel)
	Height int `yaml:"height"` // Canvas height in world units (0 = use screen height)
}

// CameraConfig holds viewport navigation parameters.
type CameraConfig struct {
	MinZoom  float64 `yaml:"min_zoom"`
	MaxZoom  float64 `yaml:"max_zoom"`
	ZoomStep float64 `yaml:"zoom_step"` // Zoom multiplier per scroll notch
	PanSpeed float64 `yaml:"pan_speed"` // Keyboard pan speed in screen px/sec
}

// UIConfig holds control panel and trash zone settings.
type UIConfig struct {
	PanelWidth    int `yaml:"panel_width"`
	TrashZoneSize int `yaml:"trash_zone_size"` // Side length of the trash square in the canvas corner
	MaxSpawnValue int `yaml:"max_spawn_value"` // Upper bound of the spawn slider
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindowTicks int  `yaml:"stats_window_ticks"`
	LogStats         bool `yaml:"log_stats"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	CanvasW32 float32 // Effective canvas width as float32
	CanvasH32 float32 // Effective canvas height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
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

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	// Canvas dimensions default to the screen area beside the panel
	canvasW := c.Canvas.Width
	if canvasW == 0 {
		canvasW = c.Screen.Width - c.UI.PanelWidth
	}
	canvasH := c.Canvas.Height
	if canvasH == 0 {
		canvasH = c.Screen.Height
	}
	c.Derived.CanvasW32 = float32(canvasW)
	c.Derived.CanvasH32 = float32(canvasH)
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
