// Package config loads, validates and persists bookshelf settings.
//
// Settings come from, in increasing precedence: built-in defaults, the global
// file ~/.bookshelf/config.yaml, a project overlay .bookshelf/config.yaml,
// BOOKSHELF_* environment variables and finally command-line flags applied by
// the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rshade/bookshelf/internal/browser"
	"github.com/rshade/bookshelf/internal/cache"
	"github.com/rshade/bookshelf/internal/pagination"
	"github.com/rshade/bookshelf/internal/query"
)

const (
	configFileName = "config.yaml"
	outputTypeFile = "file"
)

// Config is the full settings tree.
type Config struct {
	Output  OutputConfig  `yaml:"output"  json:"output"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	Browse  BrowseConfig  `yaml:"browse"  json:"browse"`
	Cache   CacheConfig   `yaml:"cache"   json:"cache"`

	configPath string
	loadErr    error
}

// OutputConfig controls one-shot output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
}

// LoggingConfig controls diagnostics.
type LoggingConfig struct {
	Level  string `yaml:"level"          json:"level"`
	Format string `yaml:"format"         json:"format"`
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
}

// BrowseConfig holds the catalog browsing variant points.
type BrowseConfig struct {
	PageSize                int    `yaml:"page_size"                  json:"page_size"`
	CaseSensitiveGenreMatch bool   `yaml:"case_sensitive_genre_match" json:"case_sensitive_genre_match"`
	CaseSensitiveAgeMatch   bool   `yaml:"case_sensitive_age_match"   json:"case_sensitive_age_match"`
	FacetOrder              string `yaml:"facet_order"                json:"facet_order"`
	Locale                  string `yaml:"locale"                     json:"locale"`
	Catalog                 string `yaml:"catalog,omitempty"          json:"catalog,omitempty"`
}

// CacheConfig controls the remote catalog cache.
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled"             json:"enabled"`
	TTLSeconds int    `yaml:"ttl_seconds"         json:"ttl_seconds"`
	Directory  string `yaml:"directory,omitempty" json:"directory,omitempty"`
}

// Defaults returns the built-in settings without reading any file or
// environment variable.
func Defaults() *Config {
	return &Config{
		Output: OutputConfig{DefaultFormat: "table"},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Browse: BrowseConfig{
			PageSize:                pagination.DefaultPageSize,
			CaseSensitiveGenreMatch: false,
			CaseSensitiveAgeMatch:   true,
			FacetOrder:              string(query.OrderSorted),
			Locale:                  "en",
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTLSeconds: cache.DefaultTTLSeconds,
		},
	}
}

// New returns defaults overlaid with the global config file and environment
// variables. A broken file does not fail New; it is reported by LoadError.
func New() *Config {
	cfg := Defaults()
	if dir, err := GetConfigDir(); err == nil {
		cfg.configPath = filepath.Join(dir, configFileName)
	}
	if cfg.configPath != "" {
		if err := cfg.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			cfg.loadErr = err
		}
	}
	cfg.applyEnvOverrides()
	return cfg
}

// Load reads the config file onto c. Keys absent from the file keep their
// current values.
func (c *Config) Load() error {
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", c.configPath, err)
	}
	return nil
}

// Save writes c to its config path, creating the directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path is not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	tmp := c.configPath + ".tmp"
	if err = os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	if err = os.Rename(tmp, c.configPath); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing config file: %w", err)
	}
	return nil
}

// ConfigPath returns the file c was loaded from and saves to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath points c at another file.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// LoadError returns the error met while reading the config file in New.
func (c *Config) LoadError() error {
	return c.loadErr
}

// CacheDirectory returns the configured cache directory or the default
// one under the config directory.
func (c *Config) CacheDirectory() (string, error) {
	if c.Cache.Directory != "" {
		return c.Cache.Directory, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cache"), nil
}

// SessionOptions converts the browse settings into session options.
func (c *Config) SessionOptions() (browser.Options, error) {
	order, err := query.ParseValueOrder(c.Browse.FacetOrder)
	if err != nil {
		return browser.Options{}, err
	}
	tag, err := parseLocale(c.Browse.Locale)
	if err != nil {
		return browser.Options{}, err
	}
	return browser.Options{
		PageSize: c.Browse.PageSize,
		Query: query.Options{
			CaseSensitiveGenreMatch: c.Browse.CaseSensitiveGenreMatch,
			CaseSensitiveAgeMatch:   c.Browse.CaseSensitiveAgeMatch,
			Locale:                  tag,
		},
		FacetOrder: order,
	}, nil
}
