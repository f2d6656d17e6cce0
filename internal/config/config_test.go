package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadSplt_EmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadSplt("")
	if err != nil {
		t.Fatalf("LoadSplt failed: %v", err)
	}
	if cfg != DefaultSpltConfig() {
		t.Errorf("embedded config = %+v, want %+v", cfg, DefaultSpltConfig())
	}
}

func TestLoadSplt_UserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".splt", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("board:\n  width: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSplt("")
	if err != nil {
		t.Fatalf("LoadSplt failed: %v", err)
	}
	if cfg.Board.Width != 6 || cfg.Board.Height != 16 {
		t.Errorf("board = %dx%d, want 6x16", cfg.Board.Width, cfg.Board.Height)
	}
}

func TestLoadSplt_CustomYAML(t *testing.T) {
	path := writeFile(t, "custom.yaml", `
board:
  width: 4
  height: 4
display:
  cell_width: 2
  show_index: true
journal:
  enabled: false
  dir: /tmp/j
`)

	cfg, err := LoadSplt(path)
	if err != nil {
		t.Fatalf("LoadSplt failed: %v", err)
	}
	want := SpltConfig{
		Board:   BoardConfig{Width: 4, Height: 4},
		Display: DisplayConfig{CellWidth: 2, ShowIndex: true},
		Journal: JournalConfig{Enabled: false, Dir: "/tmp/j"},
	}
	if cfg != want {
		t.Errorf("config = %+v, want %+v", cfg, want)
	}
	if cfg.JournalDir() != "/tmp/j" {
		t.Errorf("JournalDir = %q", cfg.JournalDir())
	}
}

func TestLoadSplt_CustomTOML(t *testing.T) {
	path := writeFile(t, "custom.toml", `
[board]
width = 16
height = 8

[display]
cell_width = 4
`)

	cfg, err := LoadSplt(path)
	if err != nil {
		t.Fatalf("LoadSplt failed: %v", err)
	}
	if cfg.Board.Width != 16 || cfg.Board.Height != 8 {
		t.Errorf("board = %dx%d, want 16x8", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Display.CellWidth != 4 {
		t.Errorf("cell_width = %d, want 4", cfg.Display.CellWidth)
	}
	if !cfg.Journal.Enabled {
		t.Error("journal.enabled should keep its default")
	}
}

func TestLoadSplt_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.yaml")},
		{"bad yaml", writeFile(t, "bad.yaml", "board: [1, 2")},
		{"bad toml", writeFile(t, "bad.toml", "[board\nwidth = ")},
		{"zero width", writeFile(t, "zero.yaml", "board:\n  width: 0\n")},
		{"too tall", writeFile(t, "tall.yaml", "board:\n  height: 65\n")},
		{"wide cells", writeFile(t, "cells.yaml", "display:\n  cell_width: 9\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadSplt(tt.path); err == nil {
				t.Errorf("LoadSplt(%s) should fail", tt.name)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"mini", 4, 8},
		{"Classic", 8, 16},
		{" wide ", 16, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePreset(tt.name)
			if err != nil {
				t.Fatalf("ParsePreset(%q) failed: %v", tt.name, err)
			}
			cfg := DefaultSpltConfig()
			ApplyPreset(&cfg, p)
			if cfg.Board.Width != tt.w || cfg.Board.Height != tt.h {
				t.Errorf("preset %s = %dx%d, want %dx%d", p, cfg.Board.Width, cfg.Board.Height, tt.w, tt.h)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s invalid: %v", p, err)
			}
		})
	}

	if _, err := ParsePreset("huge"); err == nil {
		t.Error("ParsePreset should reject unknown names")
	}
}
