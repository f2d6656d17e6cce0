// Package config provides YAML and TOML configuration loading and board
// presets for SPL-T.
package config

import (
	"fmt"
	"strings"
)

// MaxBoardSide is the largest accepted board width or height.
const MaxBoardSide = 64

// SpltConfig contains all configuration for the SPL-T game.
type SpltConfig struct {
	Board   BoardConfig   `yaml:"board" toml:"board"`
	Display DisplayConfig `yaml:"display" toml:"display"`
	Journal JournalConfig `yaml:"journal" toml:"journal"`
}

// BoardConfig defines the board size in cells.
type BoardConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// DisplayConfig defines how the board is drawn in the terminal.
type DisplayConfig struct {
	CellWidth int  `yaml:"cell_width" toml:"cell_width"` // Terminal columns per board cell
	ShowIndex bool `yaml:"show_index" toml:"show_index"` // Label rectangles with their index
}

// JournalConfig defines where finished games are journaled.
type JournalConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Dir     string `yaml:"dir" toml:"dir"` // Empty means ~/.splt/journal
}

// Validate checks that the configuration describes a playable board.
func (c SpltConfig) Validate() error {
	if c.Board.Width < 1 || c.Board.Width > MaxBoardSide {
		return fmt.Errorf("config: board.width %d out of range [1,%d]", c.Board.Width, MaxBoardSide)
	}
	if c.Board.Height < 1 || c.Board.Height > MaxBoardSide {
		return fmt.Errorf("config: board.height %d out of range [1,%d]", c.Board.Height, MaxBoardSide)
	}
	if c.Display.CellWidth < 1 || c.Display.CellWidth > 5 {
		return fmt.Errorf("config: display.cell_width %d out of range [1,5]", c.Display.CellWidth)
	}
	return nil
}

// BoardPreset represents a named board size.
type BoardPreset string

const (
	PresetMini    BoardPreset = "mini"
	PresetClassic BoardPreset = "classic"
	PresetWide    BoardPreset = "wide"
)

// Presets returns all board presets from smallest to largest.
func Presets() []BoardPreset {
	return []BoardPreset{PresetMini, PresetClassic, PresetWide}
}

// ParsePreset resolves a preset name, ignoring case.
func ParsePreset(name string) (BoardPreset, error) {
	p := BoardPreset(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown preset %q (want mini, classic or wide)", name)
}

// Size returns the board width and height for the preset.
func (p BoardPreset) Size() (int, int) {
	switch p {
	case PresetMini:
		return 4, 8
	case PresetWide:
		return 16, 16
	default:
		return 8, 16
	}
}

// ApplyPreset overrides the board section with the preset size.
func ApplyPreset(cfg *SpltConfig, p BoardPreset) {
	cfg.Board.Width, cfg.Board.Height = p.Size()
}
