package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Entry is one cached catalog document.
type Entry struct {
	// Key is the SHA256 of the normalized source URL.
	Key string `json:"key"`

	// URL is the source the body was fetched from.
	URL string `json:"url"`

	// Body is the raw document.
	Body []byte `json:"body"`

	// ContentType is the response Content-Type, used to pick a decoder.
	ContentType string `json:"content_type,omitempty"`

	// ETag and LastModified are the validators for conditional requests.
	ETag         string `json:"etag,omitempty"`
	LastModified string `json:"last_modified,omitempty"`

	FetchedAt time.Time `json:"fetched_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the entry is past its TTL at now.
func (e *Entry) IsExpired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}

// CanRevalidate reports whether a conditional request can be made for e.
func (e *Entry) CanRevalidate() bool {
	return e.ETag != "" || e.LastModified != ""
}

// Age returns how long ago the entry was fetched.
func (e *Entry) Age(now time.Time) time.Duration {
	return now.Sub(e.FetchedAt)
}

// Refresh extends the entry by ttl from now, after a 304 response.
func (e *Entry) Refresh(now time.Time, ttl time.Duration) {
	e.FetchedAt = now
	e.ExpiresAt = now.Add(ttl)
}

// KeyForURL returns the cache key for a source URL. Scheme and host are
// case-insensitive; the path and query are kept verbatim.
func KeyForURL(rawURL string) string {
	u := strings.TrimSpace(rawURL)
	if i := strings.Index(u, "://"); i > 0 {
		rest := u[i+3:]
		host, path := rest, ""
		if j := strings.IndexByte(rest, '/'); j >= 0 {
			host, path = rest[:j], rest[j:]
		}
		u = strings.ToLower(u[:i]) + "://" + strings.ToLower(host) + path
	}
	sum := sha256.Sum256([]byte(u))
	return hex.EncodeToString(sum[:])
}
