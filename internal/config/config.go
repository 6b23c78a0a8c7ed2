// Package config loads sluice's optional defaults file. Configuration is
// advisory: a missing or malformed file degrades to built-in defaults with a
// warning, never a failure.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/treeline-io/sluice/pkg/parse"
)

// AppConfig holds parser defaults from .sluice.yaml.
type AppConfig struct {
	Raw           bool   `yaml:"raw"`
	Mode          string `yaml:"mode"`            // strict | quiet | tolerant
	MaxLineLength int    `yaml:"max_line_length"` // in bytes
}

// Constants for default values.
const (
	DefaultMode          = "strict"
	DefaultMaxLineLength = 1 * 1024 * 1024 // 1MB

	configFileName = ".sluice.yaml"
	pathEnv        = "SLUICE_CONFIG"
)

// Load reads the configuration file, merging it over built-in defaults.
// Lookup order: $SLUICE_CONFIG, ./.sluice.yaml, then the user config dir.
func Load() *AppConfig {
	cfg := &AppConfig{
		Mode:          DefaultMode,
		MaxLineLength: DefaultMaxLineLength,
	}

	path := configPath()
	if path == "" {
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v. Using defaults.\n", path, err)
		}
		return cfg
	}

	var fileCfg AppConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error unmarshalling config file %s: %v. Using defaults.\n", path, err)
		return cfg
	}

	cfg.Raw = fileCfg.Raw
	if fileCfg.Mode != "" {
		cfg.Mode = fileCfg.Mode
	}
	if fileCfg.MaxLineLength > 0 {
		cfg.MaxLineLength = fileCfg.MaxLineLength
	}
	return cfg
}

// Options converts the configured defaults into stream options.
func (c *AppConfig) Options() parse.Options {
	return parse.Options{
		Raw:  c.Raw,
		Mode: parse.ParseMode(c.Mode),
	}
}

// configPath returns the first configuration file that exists, or "".
func configPath() string {
	if p := os.Getenv(pathEnv); p != "" {
		return p
	}
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(dir, "sluice", "config.yaml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}
