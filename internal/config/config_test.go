package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input != "step" {
		t.Errorf("expected input step, got %s", cfg.Input)
	}
	if cfg.Horizon <= 0 {
		t.Error("horizon should be positive")
	}
	if cfg.Samples < 2 {
		t.Error("samples should be at least 2")
	}
	if cfg.Gains.Max <= cfg.Gains.Min {
		t.Error("gain range should be increasing")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("second_order")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Den) != 3 || cfg.Den[1] != 2 {
		t.Errorf("expected den [1 2 1], got %v", cfg.Den)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != 5 {
		t.Errorf("expected 5 presets, got %d", len(presets))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctlab.yaml")
	cfg := DefaultConfig()
	cfg.Den = []float64{1, 3, 2}
	cfg.Input = "ramp"
	cfg.Controller.Kind = "pid"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Input != "ramp" || got.Controller.Kind != "pid" {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if len(got.Den) != 3 || got.Den[1] != 3 {
		t.Errorf("round trip lost den: %v", got.Den)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("den: [1, 5]\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Horizon != DefaultHorizon {
		t.Errorf("horizon = %v, want default %v", cfg.Horizon, DefaultHorizon)
	}
}
