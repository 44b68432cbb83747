// Package config loads the optional YAML defaults file the classdiff CLI
// consults before applying flags, so that a project can pin its diff
// criteria, labels and version separator once instead of repeating long
// flag lists on every invocation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI defaults that can be persisted to a YAML file.
type Config struct {
	Criteria       string `yaml:"criteria"`        // "public" | "public-protected" | "simple"
	IncludePrivate bool   `yaml:"includePrivate"`  // only consulted when Criteria == "simple"
	OldLabel       string `yaml:"oldLabel"`
	NewLabel       string `yaml:"newLabel"`
	Separator      string `yaml:"separator"` // single-rune pre-release separator, default "-"
	LogFile        string `yaml:"logFile,omitempty"`
}

// Default returns the CLI's built-in defaults, used when no config file is
// present.
func Default() Config {
	return Config{
		Criteria:  "public",
		OldLabel:  "old",
		NewLabel:  "new",
		Separator: "-",
	}
}

// Load reads and parses a YAML config file at path. A missing file is not
// an error: it returns Default() unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating or truncating the file.
func Save(path string, cfg Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// SeparatorRune returns the configured separator as a rune, defaulting to
// '-' if Separator is empty or not exactly one rune.
func (c Config) SeparatorRune() rune {
	rs := []rune(c.Separator)
	if len(rs) != 1 {
		return '-'
	}
	return rs[0]
}
