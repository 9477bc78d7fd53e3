package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rshade/bookshelf/internal/logging"
)

// ToLoggingConfig converts the logging section for the logging package.
// A configured file switches output to that file; otherwise logs go to
// stderr so they never mix with catalog output on stdout.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	if lc.Level != "" {
		cfg.Level = lc.Level
	}
	if lc.Format != "" {
		cfg.Format = lc.Format
	}
	if lc.File != "" {
		cfg.Output = outputTypeFile
		cfg.File = lc.File
	}
	return cfg
}

// GetLoggingConfig returns a copy of the global logging section. Flag
// overrides such as --debug are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}

// EnsureLogDir creates the parent directory of the configured log file.
func EnsureLogDir() error {
	file := GetGlobalConfig().Logging.File
	if file == "" {
		return nil
	}
	logDir := filepath.Dir(file)
	if err := os.MkdirAll(logDir, 0o700); err != nil {
		return fmt.Errorf("failed to create log directory %q: %w", logDir, err)
	}
	return nil
}
