package config

import (
	_ "embed"
)

//go:embed defaults/splt.yaml
var defaultSpltYAML []byte

// DefaultSpltConfig returns the default SPL-T configuration.
func DefaultSpltConfig() SpltConfig {
	return SpltConfig{
		Board: BoardConfig{
			Width:  8,
			Height: 16,
		},
		Display: DisplayConfig{
			CellWidth: 3,
			ShowIndex: false,
		},
		Journal: JournalConfig{
			Enabled: true,
		},
	}
}
