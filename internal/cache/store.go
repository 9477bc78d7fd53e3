package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const cacheFileExtension = ".json"

// Common cache errors.
var (
	ErrCacheNotFound   = errors.New("cache entry not found")
	ErrCacheExpired    = errors.New("cache entry expired")
	ErrInvalidCacheKey = errors.New("cache key cannot be empty")
	ErrCacheDisabled   = errors.New("cache is disabled")
)

// FileStore stores entries as one JSON file per key. It is safe for
// concurrent use within a process.
type FileStore struct {
	directory string
	enabled   bool
	ttl       time.Duration
	now       func() time.Time

	mu sync.RWMutex
}

// NewFileStore creates a store rooted at directory, creating it if needed.
// A disabled store accepts every call and stores nothing.
func NewFileStore(directory string, enabled bool, ttlSeconds int) (*FileStore, error) {
	if !enabled {
		return &FileStore{enabled: false, now: time.Now}, nil
	}
	if directory == "" {
		return nil, errors.New("cache directory cannot be empty")
	}
	if _, err := NewTTLConfig(ttlSeconds); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(directory, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &FileStore{
		directory: directory,
		enabled:   true,
		ttl:       time.Duration(ttlSeconds) * time.Second,
		now:       time.Now,
	}, nil
}

// Get returns the entry for rawURL. An expired entry is still returned,
// together with ErrCacheExpired, so the caller can revalidate it.
func (s *FileStore) Get(rawURL string) (*Entry, error) {
	if !s.enabled {
		return nil, ErrCacheDisabled
	}
	if rawURL == "" {
		return nil, ErrInvalidCacheKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, err := readEntry(s.pathFor(KeyForURL(rawURL)))
	if err != nil {
		return nil, err
	}
	if entry.IsExpired(s.now()) {
		return entry, ErrCacheExpired
	}
	return entry, nil
}

// Put stores a freshly fetched document for rawURL.
func (s *FileStore) Put(rawURL string, body []byte, contentType, etag, lastModified string) (*Entry, error) {
	if !s.enabled {
		return nil, ErrCacheDisabled
	}
	if rawURL == "" {
		return nil, ErrInvalidCacheKey
	}
	now := s.now()
	entry := &Entry{
		Key:          KeyForURL(rawURL),
		URL:          rawURL,
		Body:         body,
		ContentType:  contentType,
		ETag:         etag,
		LastModified: lastModified,
		FetchedAt:    now,
		ExpiresAt:    now.Add(s.ttl),
	}
	if err := s.write(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Touch extends an existing entry after the origin confirmed it unchanged.
func (s *FileStore) Touch(entry *Entry) error {
	if !s.enabled {
		return ErrCacheDisabled
	}
	if entry == nil || entry.Key == "" {
		return ErrInvalidCacheKey
	}
	entry.Refresh(s.now(), s.ttl)
	return s.write(entry)
}

func (s *FileStore) write(entry *Entry) error {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	filePath := s.pathFor(entry.Key)
	tempPath := filePath + ".tmp"
	if writeErr := os.WriteFile(tempPath, data, 0o600); writeErr != nil {
		return fmt.Errorf("failed to write cache file: %w", writeErr)
	}
	if renameErr := os.Rename(tempPath, filePath); renameErr != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename cache file: %w", renameErr)
	}
	return nil
}

// Delete removes the entry for rawURL. Missing entries are not an error.
func (s *FileStore) Delete(rawURL string) error {
	if !s.enabled {
		return ErrCacheDisabled
	}
	if rawURL == "" {
		return ErrInvalidCacheKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.pathFor(KeyForURL(rawURL)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete cache file: %w", err)
	}
	return nil
}

// Clear removes every entry.
func (s *FileStore) Clear() error {
	return s.removeWhere(func(*Entry) bool { return true })
}

// CleanupExpired removes entries past their TTL, including unreadable ones.
func (s *FileStore) CleanupExpired() error {
	now := s.now()
	return s.removeWhere(func(e *Entry) bool { return e == nil || e.IsExpired(now) })
}

func (s *FileStore) removeWhere(match func(*Entry) bool) error {
	if !s.enabled {
		return ErrCacheDisabled
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	files, err := s.entryFiles()
	if err != nil {
		return err
	}
	for _, path := range files {
		entry, _ := readEntry(path)
		if !match(entry) {
			continue
		}
		if removeErr := os.Remove(path); removeErr != nil && !os.IsNotExist(removeErr) {
			return fmt.Errorf("failed to remove cache file %s: %w", filepath.Base(path), removeErr)
		}
	}
	return nil
}

// Stats summarizes the store contents.
type Stats struct {
	Entries int
	Expired int
	Bytes   int64
}

// Stats counts entries, expired entries and bytes on disk.
func (s *FileStore) Stats() (Stats, error) {
	if !s.enabled {
		return Stats{}, ErrCacheDisabled
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	files, err := s.entryFiles()
	if err != nil {
		return Stats{}, err
	}
	now := s.now()
	var st Stats
	for _, path := range files {
		info, statErr := os.Stat(path)
		if statErr != nil {
			continue
		}
		st.Entries++
		st.Bytes += info.Size()
		if entry, readErr := readEntry(path); readErr != nil || entry.IsExpired(now) {
			st.Expired++
		}
	}
	return st, nil
}

// SetClock replaces the time source used for expiry.
func (s *FileStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// IsEnabled reports whether the store persists anything.
func (s *FileStore) IsEnabled() bool {
	return s.enabled
}

// Directory returns the cache directory.
func (s *FileStore) Directory() string {
	return s.directory
}

// TTL returns the lifetime given to new entries.
func (s *FileStore) TTL() time.Duration {
	return s.ttl
}

func (s *FileStore) pathFor(key string) string {
	return filepath.Join(s.directory, key+cacheFileExtension)
}

func (s *FileStore) entryFiles() ([]string, error) {
	dirEntries, err := os.ReadDir(s.directory)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache directory: %w", err)
	}
	var files []string
	for _, de := range dirEntries {
		if de.IsDir() || filepath.Ext(de.Name()) != cacheFileExtension {
			continue
		}
		files = append(files, filepath.Join(s.directory, de.Name()))
	}
	return files, nil
}

func readEntry(path string) (*Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCacheNotFound
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	var entry Entry
	if unmarshalErr := json.Unmarshal(data, &entry); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal cache entry: %w", unmarshalErr)
	}
	return &entry, nil
}
