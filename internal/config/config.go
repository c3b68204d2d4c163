package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the set of log files to monitor, keyed by display name.
type Config struct {
	Sources map[string]string
}

// Names returns the configured source names in stable, sorted order.
func (c Config) Names() []string {
	names := make([]string, 0, len(c.Sources))
	for name := range c.Sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads and validates the monitor configuration at path. Any problem is
// returned as an error; there is no partial or default configuration.
func Load(path string) (Config, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Sources map[string]string `toml:"sources"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if len(raw.Sources) == 0 {
		return Config{}, fmt.Errorf("config %s: no sources defined", path)
	}

	cfg := Config{Sources: make(map[string]string, len(raw.Sources))}
	for name, p := range raw.Sources {
		if strings.TrimSpace(name) == "" {
			return Config{}, fmt.Errorf("config %s: source with empty name", path)
		}
		resolved, err := expandPath(p)
		if err != nil {
			return Config{}, fmt.Errorf("config %s: source %q: %w", path, name, err)
		}
		cfg.Sources[name] = resolved
	}
	return cfg, nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
