package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded defaults: %v", err)
	}

	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		t.Errorf("screen size %dx%d must be positive", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.UI.PanelWidth <= 0 {
		t.Error("panel width must be positive")
	}
	if cfg.Telemetry.StatsWindowTicks <= 0 {
		t.Error("stats window must be positive")
	}
}

func TestDerivedCanvasDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	wantW := float32(cfg.Screen.Width - cfg.UI.PanelWidth)
	if cfg.Derived.CanvasW32 != wantW {
		t.Errorf("canvas width = %v, want %v", cfg.Derived.CanvasW32, wantW)
	}
	if cfg.Derived.CanvasH32 != float32(cfg.Screen.Height) {
		t.Errorf("canvas height = %v, want %v", cfg.Derived.CanvasH32, cfg.Screen.Height)
	}
}

func TestLoadUserOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("canvas:\n  width: 800\n  height: 600\nui:\n  max_spawn_value: 500\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading user config: %v", err)
	}

	if cfg.Derived.CanvasW32 != 800 || cfg.Derived.CanvasH32 != 600 {
		t.Errorf("canvas = %vx%v, want 800x600",
			cfg.Derived.CanvasW32, cfg.Derived.CanvasH32)
	}
	if cfg.UI.MaxSpawnValue != 500 {
		t.Errorf("max spawn value = %d, want 500", cfg.UI.MaxSpawnValue)
	}
	// Untouched fields keep their defaults.
	if cfg.Screen.TargetFPS == 0 {
		t.Error("override must not clear defaulted fields")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing yaml: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written yaml: %v", err)
	}
	if loaded.Screen != cfg.Screen || loaded.UI != cfg.UI {
		t.Error("round trip changed the config")
	}
}
