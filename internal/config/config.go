package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSynsets   = "synsets.txt"
	DefaultHypernyms = "hypernyms.txt"
)

// Config holds the settings shared by the wordnet binaries.
// Precedence: defaults, then the YAML file, then WORDNET_* variables.
// Command-line flags are applied on top by each binary.
type Config struct {
	Synsets     string `yaml:"synsets" env:"WORDNET_SYNSETS"`
	Hypernyms   string `yaml:"hypernyms" env:"WORDNET_HYPERNYMS"`
	Cache       bool   `yaml:"cache" env:"WORDNET_CACHE"`
	CacheDir    string `yaml:"cache_dir" env:"WORDNET_CACHE_DIR"`
	LogLevel    string `yaml:"log_level" env:"WORDNET_LOG_LEVEL"`
	LogFormat   string `yaml:"log_format" env:"WORDNET_LOG_FORMAT"`
	MetricsAddr string `yaml:"metrics_addr" env:"WORDNET_METRICS_ADDR"`
}

// Defaults returns the built-in configuration
func Defaults() *Config {
	return &Config{
		Synsets:   DefaultSynsets,
		Hypernyms: DefaultHypernyms,
		Cache:     true,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Load reads the config file at path (a missing file is not an error)
// and applies environment overrides. An empty path means DefaultPath().
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Defaults()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, cfg.Validate()
}

// DefaultPath returns WORDNET_CONFIG, falling back to
// $XDG_CONFIG_HOME/wordnet/config.yaml
func DefaultPath() string {
	if env := os.Getenv("WORDNET_CONFIG"); env != "" {
		return env
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "wordnet.yaml"
	}
	return filepath.Join(dir, "wordnet", "config.yaml")
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q: must be debug, info, warn or error", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q: must be text or json", c.LogFormat)
	}
	if c.Synsets == "" || c.Hypernyms == "" {
		return errors.New("synsets and hypernyms paths are required")
	}
	return nil
}
