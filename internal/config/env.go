package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/rshade/bookshelf/internal/cache"
)

// Environment variables recognized on top of the config files.
const (
	EnvHome         = "BOOKSHELF_HOME"
	EnvProjectDir   = "BOOKSHELF_PROJECT_DIR"
	EnvPageSize     = "BOOKSHELF_PAGE_SIZE"
	EnvLocale       = "BOOKSHELF_LOCALE"
	EnvCatalog      = "BOOKSHELF_CATALOG"
	EnvLogLevel     = "BOOKSHELF_LOG_LEVEL"
	EnvLogFormat    = "BOOKSHELF_LOG_FORMAT"
	EnvOutputFormat = "BOOKSHELF_OUTPUT_FORMAT"
)

// applyEnvOverrides overlays BOOKSHELF_* variables. Unparsable numeric or
// boolean values are ignored.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvPageSize); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			c.Browse.PageSize = n
		}
	}
	if v := os.Getenv(EnvLocale); v != "" {
		c.Browse.Locale = v
	}
	if v := os.Getenv(EnvCatalog); v != "" {
		c.Browse.Catalog = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = v
	}
	c.Cache.Enabled = cache.GetCacheEnabledFromEnv(c.Cache.Enabled)
	c.Cache.TTLSeconds = cache.GetTTLFromEnv(c.Cache.TTLSeconds)
	if v := cache.GetCacheDirFromEnv(); v != "" {
		c.Cache.Directory = v
	}
}
