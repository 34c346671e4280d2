// Package config loads and persists lumen.yaml project configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Filename is the canonical project configuration file name.
const Filename = "lumen.yaml"

// Config describes a Lumen project.
type Config struct {
	Name      string      `yaml:"name"`
	SourceDir string      `yaml:"source_dir"`
	OutputDir string      `yaml:"output_dir"`
	Watch     WatchConfig `yaml:"watch"`
}

// WatchConfig tunes the rebuild watcher.
type WatchConfig struct {
	DebounceMillis int `yaml:"debounce_ms"`
}

// Default returns the configuration used when no lumen.yaml exists.
func Default() *Config {
	return &Config{
		Name:      "app",
		SourceDir: "src",
		OutputDir: "out",
		Watch: WatchConfig{
			DebounceMillis: 200,
		},
	}
}

// Load reads a project configuration, applying defaults for absent fields.
func Load(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, Filename))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", Filename, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", Filename, err)
	}

	return cfg, nil
}

// Save writes the configuration to dir/lumen.yaml.
func (c *Config) Save(dir string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", Filename, err)
	}

	return os.WriteFile(filepath.Join(dir, Filename), data, 0o644)
}
