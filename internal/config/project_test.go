package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/bookshelf/internal/config"
)

func TestResolveProjectDir_FlagOverridesEnv(t *testing.T) {
	envDir := t.TempDir()
	flagDir := t.TempDir()
	t.Setenv(config.EnvProjectDir, envDir)

	got := config.ResolveProjectDir(context.Background(), flagDir, "/does/not/matter")
	assert.Equal(t, filepath.Join(flagDir, ".bookshelf"), got)
	assert.True(t, filepath.IsAbs(got))
}

func TestResolveProjectDir_Env(t *testing.T) {
	envDir := t.TempDir()
	t.Setenv(config.EnvProjectDir, filepath.Join(envDir, ".bookshelf"))

	got := config.ResolveProjectDir(context.Background(), "", "/does/not/matter")
	assert.Equal(t, filepath.Join(envDir, ".bookshelf"), got, "no double append")
}

func TestResolveProjectDir_WalkUp(t *testing.T) {
	t.Setenv(config.EnvProjectDir, "")
	t.Setenv(config.EnvHome, t.TempDir())

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".bookshelf"), 0o750))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	got := config.ResolveProjectDir(context.Background(), "", nested)
	assert.Equal(t, filepath.Join(root, ".bookshelf"), got)
}

func TestFindProjectRoot_None(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	_, err := config.FindProjectRoot(t.TempDir())
	if err != nil {
		require.ErrorIs(t, err, config.ErrNoProject)
	}
}

func TestNewWithProjectDir(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv(config.EnvPageSize, "")
	t.Setenv(config.EnvLocale, "")

	projectDir := filepath.Join(t.TempDir(), ".bookshelf")
	require.NoError(t, os.MkdirAll(projectDir, 0o750))

	assert.Equal(t, 8, config.NewWithProjectDir(context.Background(), projectDir).Browse.PageSize,
		"missing overlay file keeps globals")

	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "config.yaml"), []byte(`
browse:
  page_size: 4
  catalog: ./books.json
unknown_section:
  x: 1
`), 0o600))

	cfg := config.NewWithProjectDir(context.Background(), projectDir)
	assert.Equal(t, 4, cfg.Browse.PageSize)
	assert.Equal(t, "./books.json", cfg.Browse.Catalog)
	assert.Empty(t, cfg.Browse.Locale, "a replaced section does not keep unspecified fields")
	assert.Equal(t, "table", cfg.Output.DefaultFormat, "absent sections are untouched")

	t.Setenv(config.EnvPageSize, "6")
	cfg = config.NewWithProjectDir(context.Background(), projectDir)
	assert.Equal(t, 6, cfg.Browse.PageSize, "env beats project overlay")
}

func TestNewWithProjectDir_BrokenOverlay(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv(config.EnvPageSize, "")
	projectDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "config.yaml"), []byte("browse: [x"), 0o600))

	cfg := config.NewWithProjectDir(context.Background(), projectDir)
	assert.Equal(t, 8, cfg.Browse.PageSize)
}

func TestShallowMergeYAML(t *testing.T) {
	target := config.Defaults()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
output:
  default_format: ndjson
cache:
  enabled: false
`), 0o600))

	require.NoError(t, config.ShallowMergeYAML(target, path))
	assert.Equal(t, "ndjson", target.Output.DefaultFormat)
	assert.False(t, target.Cache.Enabled)
	assert.Zero(t, target.Cache.TTLSeconds)
	assert.Equal(t, 8, target.Browse.PageSize)

	require.Error(t, config.ShallowMergeYAML(nil, path))
	require.Error(t, config.ShallowMergeYAML(target, filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	target := config.Defaults()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte("# only a comment\n"), 0o600))
	require.NoError(t, config.ShallowMergeYAML(target, path))
	assert.Equal(t, config.Defaults().Browse, target.Browse)
}

func TestEnsureGitignore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".bookshelf")

	created, err := config.EnsureGitignore(dir)
	require.NoError(t, err)
	assert.True(t, created)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, config.GitignoreContent(), string(data))
	assert.Contains(t, string(data), "cache/")

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("custom\n"), 0o644))
	created, err = config.EnsureGitignore(dir)
	require.NoError(t, err)
	assert.False(t, created)
	data, err = os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, "custom\n", string(data))
}
