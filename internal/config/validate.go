package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/rshade/bookshelf/internal/cache"
	"github.com/rshade/bookshelf/internal/logging"
	"github.com/rshade/bookshelf/internal/pagination"
	"github.com/rshade/bookshelf/internal/query"
	"github.com/rshade/bookshelf/internal/render"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := render.ParseFormat(c.Output.DefaultFormat); err != nil {
		errs = append(errs, fmt.Errorf("output.default_format: %w", err))
	}

	if lvl := strings.ToLower(c.Logging.Level); lvl != "" {
		if _, err := zerolog.ParseLevel(lvl); err != nil {
			errs = append(errs, fmt.Errorf("logging.level: %w", err))
		}
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", logging.FormatJSON, logging.FormatConsole, logging.FormatText:
	default:
		errs = append(errs, fmt.Errorf("logging.format: unknown format %q (valid: json, console, text)", c.Logging.Format))
	}

	if err := pagination.ValidatePageSize(c.Browse.PageSize); err != nil {
		errs = append(errs, fmt.Errorf("browse.page_size: %w", err))
	}
	if _, err := query.ParseValueOrder(c.Browse.FacetOrder); err != nil {
		errs = append(errs, fmt.Errorf("browse.facet_order: %w", err))
	}
	if _, err := parseLocale(c.Browse.Locale); err != nil {
		errs = append(errs, fmt.Errorf("browse.locale: %w", err))
	}

	if c.Cache.Enabled {
		if _, err := cache.NewTTLConfig(c.Cache.TTLSeconds); err != nil {
			errs = append(errs, fmt.Errorf("cache.ttl_seconds: %w", err))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// parseLocale parses a BCP 47 tag. Empty means English.
func parseLocale(s string) (language.Tag, error) {
	if strings.TrimSpace(s) == "" {
		return language.English, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("unknown locale %q: %w", s, err)
	}
	return tag, nil
}
