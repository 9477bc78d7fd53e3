package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/rshade/bookshelf/internal/query"
)

// isolate points the config directory at a temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	for _, env := range []string{
		EnvPageSize, EnvLocale, EnvCatalog, EnvLogLevel, EnvLogFormat, EnvOutputFormat,
		"BOOKSHELF_CACHE_ENABLED", "BOOKSHELF_CACHE_TTL_SECONDS", "BOOKSHELF_CACHE_DIR", EnvProjectDir,
	} {
		t.Setenv(env, "")
	}
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)
	return home
}

func TestNew_Defaults(t *testing.T) {
	home := isolate(t)

	cfg := New()
	require.NoError(t, cfg.LoadError())
	assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.ConfigPath())
	assert.Equal(t, "table", cfg.Output.DefaultFormat)
	assert.Equal(t, 8, cfg.Browse.PageSize)
	assert.False(t, cfg.Browse.CaseSensitiveGenreMatch)
	assert.True(t, cfg.Browse.CaseSensitiveAgeMatch)
	assert.Equal(t, "sorted", cfg.Browse.FacetOrder)
	assert.Equal(t, "en", cfg.Browse.Locale)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 3600, cfg.Cache.TTLSeconds)
	require.NoError(t, cfg.Validate())

	dir, err := cfg.CacheDirectory()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "cache"), dir)
}

func TestNew_ReadsFileThenEnv(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(`
browse:
  page_size: 12
  locale: de
output:
  default_format: json
`), 0o600))
	t.Setenv(EnvPageSize, "20")
	t.Setenv("BOOKSHELF_CACHE_TTL_SECONDS", "120")

	cfg := New()
	require.NoError(t, cfg.LoadError())
	assert.Equal(t, 20, cfg.Browse.PageSize, "env beats file")
	assert.Equal(t, "de", cfg.Browse.Locale)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
	assert.Equal(t, "sorted", cfg.Browse.FacetOrder, "keys absent from the file keep defaults")
	assert.Equal(t, 120, cfg.Cache.TTLSeconds)
}

func TestNew_BrokenFileIsReported(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("browse: [nope"), 0o600))

	cfg := New()
	require.Error(t, cfg.LoadError())
	assert.Equal(t, 8, cfg.Browse.PageSize)
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)
	cfg := New()
	require.NoError(t, cfg.Set("browse.page_size", "5"))
	require.NoError(t, cfg.Set("browse.catalog", "https://example.org/books.json"))
	require.NoError(t, cfg.Save())

	again := New()
	require.NoError(t, again.LoadError())
	assert.Equal(t, 5, again.Browse.PageSize)
	assert.Equal(t, "https://example.org/books.json", again.Browse.Catalog)
}

func TestSave_WithoutPath(t *testing.T) {
	require.Error(t, Defaults().Save())
}

func TestGetSet(t *testing.T) {
	cfg := Defaults()

	v, err := cfg.Get("browse.page_size")
	require.NoError(t, err)
	assert.Equal(t, "8", v)

	require.NoError(t, cfg.Set("browse.case_sensitive_age_match", "false"))
	v, err = cfg.Get("BROWSE.CASE_SENSITIVE_AGE_MATCH")
	require.NoError(t, err)
	assert.Equal(t, "false", v)

	require.NoError(t, cfg.Set("logging.level", "debug"))
	assert.Equal(t, "debug", cfg.Logging.Level)

	require.Error(t, cfg.Set("browse.page_size", "eight"))
	require.Error(t, cfg.Set("cache.enabled", "sometimes"))
	require.ErrorIs(t, cfg.Set("plugins.foo", "x"), ErrUnknownKey)
	_, err = cfg.Get("nope")
	require.ErrorIs(t, err, ErrUnknownKey)
}

func TestKeysAndList(t *testing.T) {
	keys := Keys()
	assert.IsNonDecreasing(t, keys)
	assert.Contains(t, keys, "browse.page_size")

	list := Defaults().List()
	assert.Len(t, list, len(keys))
	assert.Equal(t, "true", list["cache.enabled"])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "bad format", mutate: func(c *Config) { c.Output.DefaultFormat = "xml" }, wantErr: "output.default_format"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
		{name: "zero page size", mutate: func(c *Config) { c.Browse.PageSize = 0 }, wantErr: "browse.page_size"},
		{name: "bad facet order", mutate: func(c *Config) { c.Browse.FacetOrder = "random" }, wantErr: "browse.facet_order"},
		{name: "bad locale", mutate: func(c *Config) { c.Browse.Locale = "not a locale" }, wantErr: "browse.locale"},
		{name: "ttl too small", mutate: func(c *Config) { c.Cache.TTLSeconds = 1 }, wantErr: "cache.ttl_seconds"},
		{
			name: "ttl ignored when cache disabled",
			mutate: func(c *Config) {
				c.Cache.Enabled = false
				c.Cache.TTLSeconds = 1
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := Defaults()
	cfg.Browse.PageSize = -1
	cfg.Browse.Locale = "???"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "browse.page_size")
	assert.Contains(t, err.Error(), "browse.locale")
}

func TestSessionOptions(t *testing.T) {
	cfg := Defaults()
	cfg.Browse.Locale = "sv"
	cfg.Browse.FacetOrder = "first-seen"
	cfg.Browse.PageSize = 3

	opts, err := cfg.SessionOptions()
	require.NoError(t, err)
	assert.Equal(t, 3, opts.PageSize)
	assert.Equal(t, query.OrderFirstSeen, opts.FacetOrder)
	assert.Equal(t, language.Swedish, opts.Query.Locale)
	assert.True(t, opts.Query.CaseSensitiveAgeMatch)

	cfg.Browse.FacetOrder = "random"
	_, err = cfg.SessionOptions()
	require.Error(t, err)
}

func TestGlobalConfig(t *testing.T) {
	isolate(t)

	cfg := GetGlobalConfig()
	require.NotNil(t, cfg)
	assert.Same(t, cfg, GetGlobalConfig())
	assert.Equal(t, "table", GetDefaultOutputFormat())
	assert.Equal(t, 8, GetPageSize())
	assert.Empty(t, GetDefaultCatalog())

	replacement := Defaults()
	replacement.Browse.PageSize = 4
	SetGlobalConfig(replacement)
	assert.Equal(t, 4, GetPageSize())

	ResetGlobalConfigForTest()
	assert.NotSame(t, cfg, GetGlobalConfig())
}

func TestLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "json"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, "stderr", got.Output)
	assert.Equal(t, "debug", got.Level)

	assert.Equal(t, "info", (&LoggingConfig{}).ToLoggingConfig().Level)
	assert.Equal(t, "console", (&LoggingConfig{}).ToLoggingConfig().Format)

	lc.File = "/var/log/bookshelf.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, "file", got.Output)
	assert.Equal(t, "/var/log/bookshelf.log", got.File)
}

func TestEnsureDirs(t *testing.T) {
	home := isolate(t)
	require.NoError(t, EnsureConfigDir())
	assert.DirExists(t, home)

	cfg := GetGlobalConfig()
	cfg.Logging.File = filepath.Join(home, "logs", "bookshelf.log")
	require.NoError(t, EnsureLogDir())
	assert.DirExists(t, filepath.Join(home, "logs"))
}
