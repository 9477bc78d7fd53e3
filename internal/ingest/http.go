package ingest

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rshade/bookshelf/internal/cache"
	"github.com/rshade/bookshelf/internal/logging"
)

// HTTPSource downloads a catalog, using Cache when it is enabled.
//
// A fresh cache entry is served without a request. An expired entry with
// validators is revalidated with If-None-Match / If-Modified-Since, and a
// 304 response extends it.
type HTTPSource struct {
	URL    string
	Client *http.Client
	Cache  *cache.FileStore
	Format Format
}

// Location implements Source.
func (s *HTTPSource) Location() string { return s.URL }

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, Format, error) {
	log := logging.FromContext(ctx)

	cached, fresh := s.cachedEntry(ctx)
	if fresh {
		log.Debug().Ctx(ctx).
			Str("component", "ingest").
			Str("operation", "fetch").
			Str("url", s.URL).
			Msg("serving catalog from cache")
		return cached.Body, s.format(cached.ContentType), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("building catalog request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent())
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.5")
	if cached != nil {
		if cached.ETag != "" {
			req.Header.Set("If-None-Match", cached.ETag)
		}
		if cached.LastModified != "" {
			req.Header.Set("If-Modified-Since", cached.LastModified)
		}
	}

	log.Debug().Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "fetch").
		Str("url", s.URL).
		Bool("revalidating", cached != nil).
		Msg("downloading catalog")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetching catalog %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified && cached != nil {
		if touchErr := s.Cache.Touch(cached); touchErr != nil {
			log.Warn().Ctx(ctx).Err(touchErr).Str("url", s.URL).Msg("could not refresh cache entry")
		}
		return cached.Body, s.format(cached.ContentType), nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("fetching catalog %s: %w: %s", s.URL, ErrHTTPStatus, resp.Status)
	}

	data, err := readLimited(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading catalog response: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if s.Cache != nil && s.Cache.IsEnabled() {
		if _, putErr := s.Cache.Put(s.URL, data, contentType,
			resp.Header.Get("ETag"), resp.Header.Get("Last-Modified")); putErr != nil {
			log.Warn().Ctx(ctx).Err(putErr).Str("url", s.URL).Msg("could not cache catalog")
		}
	}
	return data, s.format(contentType), nil
}

// cachedEntry returns the stored entry, stale or not, and whether it is
// still within its TTL.
func (s *HTTPSource) cachedEntry(ctx context.Context) (*cache.Entry, bool) {
	if s.Cache == nil || !s.Cache.IsEnabled() {
		return nil, false
	}
	entry, err := s.Cache.Get(s.URL)
	switch {
	case err == nil:
		return entry, true
	case errors.Is(err, cache.ErrCacheExpired):
		return entry, false
	case errors.Is(err, cache.ErrCacheNotFound):
		return nil, false
	default:
		logging.FromContext(ctx).Debug().Ctx(ctx).Err(err).Str("url", s.URL).Msg("ignoring unreadable cache entry")
		return nil, false
	}
}

func (s *HTTPSource) format(contentType string) Format {
	if s.Format != FormatAuto {
		return s.Format
	}
	return FormatFromName(s.URL, contentType)
}
