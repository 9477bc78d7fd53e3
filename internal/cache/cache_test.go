package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogURL = "https://library.example.org/catalog.json"

func newTestStore(t *testing.T) (*FileStore, *time.Time) {
	t.Helper()
	s, err := NewFileStore(t.TempDir(), true, MinTTLSeconds)
	require.NoError(t, err)
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.SetClock(func() time.Time { return clock })
	return s, &clock
}

func TestKeyForURL(t *testing.T) {
	assert.Len(t, KeyForURL(catalogURL), 64)
	assert.Equal(t, KeyForURL(catalogURL), KeyForURL("HTTPS://Library.Example.org/catalog.json"))
	assert.NotEqual(t, KeyForURL(catalogURL), KeyForURL("https://library.example.org/Catalog.json"))
	assert.Equal(t, KeyForURL("  "+catalogURL), KeyForURL(catalogURL))
}

func TestFileStore_PutGet(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Get(catalogURL)
	require.ErrorIs(t, err, ErrCacheNotFound)

	stored, err := s.Put(catalogURL, []byte(`[]`), "application/json", `"v1"`, "Mon, 02 Jan 2006 15:04:05 GMT")
	require.NoError(t, err)
	assert.True(t, stored.CanRevalidate())

	got, err := s.Get(catalogURL)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got.Body)
	assert.Equal(t, `"v1"`, got.ETag)
	assert.Equal(t, catalogURL, got.URL)
	assert.Equal(t, "application/json", got.ContentType)

	_, statErr := os.Stat(filepath.Join(s.Directory(), KeyForURL(catalogURL)+".json.tmp"))
	assert.True(t, os.IsNotExist(statErr), "temp file must be renamed away")
}

func TestFileStore_ExpiredEntryIsStillReturned(t *testing.T) {
	s, clock := newTestStore(t)
	_, err := s.Put(catalogURL, []byte(`[]`), "", `"v1"`, "")
	require.NoError(t, err)

	*clock = clock.Add(2 * time.Minute)
	got, err := s.Get(catalogURL)
	require.ErrorIs(t, err, ErrCacheExpired)
	require.NotNil(t, got)
	assert.Equal(t, `"v1"`, got.ETag)

	require.NoError(t, s.Touch(got))
	got, err = s.Get(catalogURL)
	require.NoError(t, err)
	assert.True(t, clock.Equal(got.FetchedAt))
}

func TestFileStore_CleanupAndStats(t *testing.T) {
	s, clock := newTestStore(t)
	_, err := s.Put(catalogURL, []byte(`[1]`), "", "", "")
	require.NoError(t, err)

	*clock = clock.Add(2 * time.Minute)
	_, err = s.Put("https://other.example.org/books.yaml", []byte(`- {}`), "", "", "")
	require.NoError(t, err)

	st, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, st.Entries)
	assert.Equal(t, 1, st.Expired)
	assert.Positive(t, st.Bytes)

	require.NoError(t, s.CleanupExpired())
	st, err = s.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, st.Entries)
	assert.Equal(t, 0, st.Expired)

	require.NoError(t, s.Clear())
	st, err = s.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, st.Entries)
}

func TestFileStore_Delete(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Put(catalogURL, []byte(`[]`), "", "", "")
	require.NoError(t, err)

	require.NoError(t, s.Delete(catalogURL))
	require.NoError(t, s.Delete(catalogURL))
	_, err = s.Get(catalogURL)
	require.ErrorIs(t, err, ErrCacheNotFound)
	require.ErrorIs(t, s.Delete(""), ErrInvalidCacheKey)
}

func TestFileStore_Disabled(t *testing.T) {
	s, err := NewFileStore("", false, 0)
	require.NoError(t, err)
	assert.False(t, s.IsEnabled())

	_, err = s.Get(catalogURL)
	require.ErrorIs(t, err, ErrCacheDisabled)
	_, err = s.Put(catalogURL, nil, "", "", "")
	require.ErrorIs(t, err, ErrCacheDisabled)
	require.ErrorIs(t, s.Clear(), ErrCacheDisabled)
}

func TestNewFileStore_Validation(t *testing.T) {
	_, err := NewFileStore("", true, DefaultTTLSeconds)
	require.Error(t, err)

	_, err = NewFileStore(t.TempDir(), true, 5)
	require.ErrorIs(t, err, ErrInvalidTTL)

	s, err := NewFileStore(filepath.Join(t.TempDir(), "nested", "cache"), true, DefaultTTLSeconds)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, s.TTL())
	assert.DirExists(t, s.Directory())
}

func TestFileStore_CorruptEntry(t *testing.T) {
	s, _ := newTestStore(t)
	path := filepath.Join(s.Directory(), KeyForURL(catalogURL)+".json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := s.Get(catalogURL)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrCacheNotFound)

	require.NoError(t, s.CleanupExpired())
	assert.NoFileExists(t, path)
}

func TestParseTTL(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"3600", 3600, false},
		{"1h30m", 5400, false},
		{"30s", 0, true},
		{"8d", 0, true},
		{"200h", 0, true},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTTL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvTTLSeconds, "120")
	assert.Equal(t, 120, GetTTLFromEnv(DefaultTTLSeconds))
	t.Setenv(EnvTTLSeconds, "1")
	assert.Equal(t, DefaultTTLSeconds, GetTTLFromEnv(DefaultTTLSeconds))

	t.Setenv(EnvCacheEnabled, "false")
	assert.False(t, GetCacheEnabledFromEnv(true))
	t.Setenv(EnvCacheEnabled, "maybe")
	assert.True(t, GetCacheEnabledFromEnv(true))

	t.Setenv(EnvCacheDir, "/var/cache/bookshelf")
	assert.Equal(t, "/var/cache/bookshelf", GetCacheDirFromEnv())
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45s", FormatDuration(45*time.Second))
	assert.Equal(t, "30m", FormatDuration(30*time.Minute))
	assert.Equal(t, "1h", FormatDuration(time.Hour))
	assert.Equal(t, "1h30m", FormatDuration(90*time.Minute))
	assert.Equal(t, "2d", FormatDuration(48*time.Hour))
	assert.Equal(t, "2d3h", FormatDuration(51*time.Hour))
}
