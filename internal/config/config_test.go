package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Potential != "square-well" {
		t.Errorf("expected potential square-well, got %s", cfg.Potential)
	}
	if cfg.Method != "numerov" {
		t.Errorf("expected method numerov, got %s", cfg.Method)
	}
	if cfg.Grid.Points < 3 {
		t.Error("grid points should allow a solve")
	}
	if cfg.Grid.RMax <= cfg.Grid.RMin {
		t.Error("grid should span a positive interval")
	}
	if cfg.Scan.K2Max <= cfg.Scan.K2Min {
		t.Error("scan window should be non-empty")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := DefaultConfig()
	cfg.Potential = "coulomb"
	cfg.K2 = -0.25
	cfg.L = 1
	cfg.Params = map[string]float64{"Z": 2}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Potential != "coulomb" {
		t.Errorf("expected potential coulomb, got %s", loaded.Potential)
	}
	if loaded.K2 != -0.25 {
		t.Errorf("expected k2 -0.25, got %f", loaded.K2)
	}
	if loaded.L != 1 {
		t.Errorf("expected l 1, got %d", loaded.L)
	}
	if loaded.Params["Z"] != 2 {
		t.Errorf("expected Z param 2, got %f", loaded.Params["Z"])
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	if err := os.WriteFile(path, []byte("k2: -1.5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.K2 != -1.5 {
		t.Errorf("expected k2 -1.5, got %f", cfg.K2)
	}
	if cfg.Potential != DefaultPotential {
		t.Errorf("expected default potential, got %s", cfg.Potential)
	}
	if cfg.Grid.Points != DefaultPoints {
		t.Errorf("expected default points, got %d", cfg.Grid.Points)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("coulomb", "hydrogen-1s")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.K2 != -1 {
		t.Errorf("expected k2 -1, got %f", cfg.K2)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("coulomb", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "bound"); cfg != nil {
		t.Error("expected nil for nonexistent potential")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("square-well")
	if len(presets) == 0 {
		t.Error("expected presets for square-well")
	}

	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent potential")
	}
}

func TestPresetsBuild(t *testing.T) {
	for potName, group := range Presets {
		for name, cfg := range group {
			if _, err := cfg.BuildGrid(); err != nil {
				t.Errorf("%s/%s: grid does not build: %v", potName, name, err)
			}
			if _, err := cfg.BuildPotential(); err != nil {
				t.Errorf("%s/%s: potential does not build: %v", potName, name, err)
			}
			if _, err := cfg.BuildSolver(); err != nil {
				t.Errorf("%s/%s: solver does not build: %v", potName, name, err)
			}
		}
	}
}
