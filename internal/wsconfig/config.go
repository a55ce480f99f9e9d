// Package wsconfig loads an optional user configuration file that
// supplies defaults the CLI flags can still override.
//
// Not named anywhere in the protocol's own data model - this is client
// convenience surface, the same way an importer loads and merges a
// JSON configuration with built-in defaults.
package wsconfig

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the subset of settings a config file may override.
type Config struct {
	// PreferredProtocol is the default dialect to bind, overridden by
	// --protocol-version. One of "ext-v0", "ext-v1", "cosmic-v1", or
	// empty (try all three in order).
	PreferredProtocol string `yaml:"preferred_protocol"`

	// DefaultOutput is the default output name used whenever a
	// command's output name and output protocol id flags are both left
	// unset.
	DefaultOutput string `yaml:"default_output"`
}

// Load reads $XDG_CONFIG_HOME/wsctrl/config.yaml, falling back to
// ~/.config/wsctrl/config.yaml. Returns a zero Config and a nil error
// if no file exists - an absent config is not a failure, only a
// read or parse error is reported back to the caller to log.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func configPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "wsctrl", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wsctrl", "config.yaml"), nil
}
