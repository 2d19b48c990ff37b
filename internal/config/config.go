package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/Nomadcxx/sceneparse/internal/taxonomy"
)

// Config holds all sceneparse configuration
type Config struct {
	Output   OutputConfig   `toml:"output"`
	Defaults DefaultsConfig `toml:"defaults"`
	Patterns PatternsConfig `toml:"patterns"`
}

// OutputConfig controls how parse results are printed
type OutputConfig struct {
	Format string `toml:"format"` // text, json
	Color  bool   `toml:"color"`
}

// DefaultsConfig holds defaults applied to every parse
type DefaultsConfig struct {
	Section string `toml:"section"` // classification hint when none is given
}

// PatternsConfig holds user pattern extensions, keyed by canonical value.
// Entries extend the built-in knowledge base; they cannot replace it.
type PatternsConfig struct {
	Flags   map[string][]string `toml:"flags"`
	Sources map[string][]string `toml:"sources"`
	Formats map[string][]string `toml:"formats"`
	Audio   map[string][]string `toml:"audio"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
	}
}

// Taxonomy returns the knowledge base with the user's pattern extensions
// applied. With no extensions the shared default set is returned as is.
func (c *Config) Taxonomy() *taxonomy.Set {
	if len(c.Patterns.Flags) == 0 && len(c.Patterns.Sources) == 0 &&
		len(c.Patterns.Formats) == 0 && len(c.Patterns.Audio) == 0 {
		return taxonomy.Default()
	}
	set := taxonomy.Default().Clone()
	set.Flags = extendEntries(set.Flags, c.Patterns.Flags)
	set.Sources = extendEntries(set.Sources, c.Patterns.Sources)
	set.Formats = extendEntries(set.Formats, c.Patterns.Formats)
	set.Audio = extendEntries(set.Audio, c.Patterns.Audio)
	return set
}

// extendEntries appends extra patterns to existing keys and adds unknown
// keys at the end of the table, after every built-in entry.
func extendEntries(entries []taxonomy.Entry, extra map[string][]string) []taxonomy.Entry {
	for key, patterns := range extra {
		extended := false
		for i := range entries {
			if entries[i].Key == key {
				entries[i].Patterns = append(entries[i].Patterns, patterns...)
				extended = true
				break
			}
		}
		if !extended {
			entries = append(entries, taxonomy.Entry{Key: key, Patterns: patterns})
		}
	}
	return entries
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(configDir, "sceneparse", "config.toml"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	configFile, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}

// Load reads the config file, creating it with defaults if it doesn't exist
func Load() (*Config, error) {
	configFile, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	if err := EnsureConfigDir(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := Save(cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(configFile, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(cfg *Config) error {
	configFile, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := EnsureConfigDir(); err != nil {
		return err
	}

	f, err := os.Create(configFile)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
