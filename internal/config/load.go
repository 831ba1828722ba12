package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = "shaderbind.yaml"

// Load loads configuration with priority: defaults < file < flags.
// It returns the positional arguments left after flag parsing.
func Load(args []string) (*Config, []string, error) {
	fs, f := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := f.config
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg, fs, f)

	return cfg, fs.Args(), nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./" + FileName,
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "shaderbind")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "shaderbind")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "shaderbind")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "shaderbind")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// ShaderPaths expands the configured shader patterns. Patterns keep their
// order, matches of one pattern are sorted and duplicates are dropped.
func (c *Config) ShaderPaths(extra ...string) ([]string, error) {
	var paths []string
	seen := map[string]bool{}

	for _, pattern := range append(append([]string(nil), c.Shaders...), extra...) {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("shader pattern %q: %w", pattern, err)
		}
		if matches == nil {
			return nil, fmt.Errorf("shader pattern %q matches no files", pattern)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	return paths, nil
}
