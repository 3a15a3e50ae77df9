// Package config handles duckspec configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/duckdialect/duckspec/internal/dialect"
)

// Config controls which catalog entries are exported and what the
// output files are called. Fields left unset in the file keep their
// built-in defaults; an explicitly empty list is honored as-is.
type Config struct {
	ExcludedPrefixes  []string `yaml:"excluded_prefixes"`
	IncludedFunctions []string `yaml:"included_functions"`
	KeywordsFile      string   `yaml:"keywords_file,omitempty"`
	FunctionsFile     string   `yaml:"functions_file,omitempty"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "duckspec"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"

	// DefaultKeywordsFile is the keywords document name in folder mode.
	DefaultKeywordsFile = "keywords.json"
	// DefaultFunctionsFile is the functions document name.
	DefaultFunctionsFile = "functions.json"
)

// Default returns a config with the built-in filter lists and file names.
func Default() *Config {
	return &Config{
		ExcludedPrefixes:  append([]string(nil), dialect.ExcludedPrefixes...),
		IncludedFunctions: append([]string(nil), dialect.IncludedFunctionPrefixes...),
		KeywordsFile:      DefaultKeywordsFile,
		FunctionsFile:     DefaultFunctionsFile,
	}
}

// DefaultPath returns the path to the config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/duckspec/config.yml.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load reads the config at path, falling back to the default location
// when path is empty. A missing file at the default location yields
// the built-in defaults; an explicitly given path must exist, so a
// typo'd --config flag fails instead of silently using defaults.
// A malformed file is an error either way.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.KeywordsFile == "" {
		cfg.KeywordsFile = DefaultKeywordsFile
	}
	if cfg.FunctionsFile == "" {
		cfg.FunctionsFile = DefaultFunctionsFile
	}
	return cfg, nil
}
