package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/RasmusBruhn/hex-plant-simulator/sun"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Grid.Columns <= 0 || cfg.Grid.Rows <= 0 {
		t.Errorf("default grid invalid: %dx%d", cfg.Grid.Columns, cfg.Grid.Rows)
	}
	if cfg.Derived.TileCount != cfg.Grid.Columns*cfg.Grid.Rows {
		t.Errorf("TileCount = %d, want %d", cfg.Derived.TileCount, cfg.Grid.Columns*cfg.Grid.Rows)
	}
	if cfg.Transparency.Base != 1.0 {
		t.Errorf("default base transparency = %v, want 1", cfg.Transparency.Base)
	}
	if cfg.Telemetry.StatsWindow <= 0 {
		t.Errorf("default stats window = %d, want positive", cfg.Telemetry.StatsWindow)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	data := []byte("grid:\n  columns: 12\n  rows: 7\nsun:\n  model: constant\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Grid.Columns != 12 || cfg.Grid.Rows != 7 {
		t.Errorf("grid = %dx%d, want 12x7", cfg.Grid.Columns, cfg.Grid.Rows)
	}
	if cfg.Sun.Model != "constant" {
		t.Errorf("sun model = %q, want constant", cfg.Sun.Model)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Screen.Width == 0 || cfg.Growth.SpreadEnergy == 0 {
		t.Error("defaults lost during merge")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero grid", "grid:\n  columns: 0\n"},
		{"unknown sun model", "sun:\n  model: lantern\n"},
		{"zero steps per update", "simulation:\n  steps_per_update: 0\n"},
		{"zero stats window", "telemetry:\n  stats_window: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("invalid config accepted")
			}
		})
	}
}

func TestSettingsMapping(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Transparency.Leaf = 0.8
	cfg.Energy.Storage.Log = 0.3
	cfg.Energy.Transfer.Branch = 0.7

	settings := cfg.Settings()
	if settings.Transparency.Leaf != 0.8 {
		t.Errorf("leaf transparency = %v, want 0.8", settings.Transparency.Leaf)
	}
	if settings.Energy.Storage.Energy.Log != 0.3 {
		t.Errorf("log storage cost = %v, want 0.3", settings.Energy.Storage.Energy.Log)
	}
	if settings.Energy.Transfer.Energy.Branch != 0.7 {
		t.Errorf("branch transfer cost = %v, want 0.7", settings.Energy.Transfer.Energy.Branch)
	}
}

func TestSunModelSelection(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	cfg.Sun.Model = "constant"
	if _, ok := cfg.SunModel().(*sun.Constant); !ok {
		t.Error("constant model not built")
	}
	cfg.Sun.Model = "day"
	if _, ok := cfg.SunModel().(*sun.Day); !ok {
		t.Error("day model not built")
	}
	cfg.Sun.Model = "year"
	if _, ok := cfg.SunModel().(*sun.Year); !ok {
		t.Error("year model not built")
	}
	cfg.Sun.Model = "yearday"
	if _, ok := cfg.SunModel().(*sun.YearDay); !ok {
		t.Error("composite model not built")
	}
}
