package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "splt.yaml"

// LoadSplt loads SPL-T configuration.
// Search order: customPath -> ~/.splt/configs/splt.yaml -> ./configs/splt.yaml -> embedded default
// Keys missing from a file keep their default values.
func LoadSplt(customPath string) (SpltConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SpltConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(customPath, data)
		if err != nil {
			return SpltConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return SpltConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(path, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(ConfigFile, defaultSpltYAML)
	if err != nil {
		return DefaultSpltConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data on top of the defaults. Files ending in .toml are
// decoded as TOML, everything else as YAML.
func parse(path string, data []byte) (SpltConfig, error) {
	cfg := DefaultSpltConfig()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// HomeDir returns ~/.splt, or empty if home is unavailable.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".splt")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := HomeDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// JournalDir resolves the journal directory, defaulting to ~/.splt/journal.
func (c SpltConfig) JournalDir() string {
	if c.Journal.Dir != "" {
		return c.Journal.Dir
	}
	if dir := HomeDir(); dir != "" {
		return filepath.Join(dir, "journal")
	}
	return "journal"
}
