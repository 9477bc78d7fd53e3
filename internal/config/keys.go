package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownKey is returned for dotted keys that name no setting.
var ErrUnknownKey = errors.New("unknown configuration key")

type keyKind int

const (
	kindString keyKind = iota
	kindInt
	kindBool
)

type keyBinding struct {
	kind keyKind
	str  func(c *Config) *string
	num  func(c *Config) *int
	flag func(c *Config) *bool
}

// keyTable maps every settable dotted key to its field.
//
//nolint:gochecknoglobals // Read-only lookup table.
var keyTable = map[string]keyBinding{
	"output.default_format": {kind: kindString, str: func(c *Config) *string { return &c.Output.DefaultFormat }},
	"logging.level":         {kind: kindString, str: func(c *Config) *string { return &c.Logging.Level }},
	"logging.format":        {kind: kindString, str: func(c *Config) *string { return &c.Logging.Format }},
	"logging.file":          {kind: kindString, str: func(c *Config) *string { return &c.Logging.File }},
	"browse.page_size":      {kind: kindInt, num: func(c *Config) *int { return &c.Browse.PageSize }},
	"browse.case_sensitive_genre_match": {
		kind: kindBool, flag: func(c *Config) *bool { return &c.Browse.CaseSensitiveGenreMatch },
	},
	"browse.case_sensitive_age_match": {
		kind: kindBool, flag: func(c *Config) *bool { return &c.Browse.CaseSensitiveAgeMatch },
	},
	"browse.facet_order":  {kind: kindString, str: func(c *Config) *string { return &c.Browse.FacetOrder }},
	"browse.locale":       {kind: kindString, str: func(c *Config) *string { return &c.Browse.Locale }},
	"browse.catalog":      {kind: kindString, str: func(c *Config) *string { return &c.Browse.Catalog }},
	"cache.enabled":       {kind: kindBool, flag: func(c *Config) *bool { return &c.Cache.Enabled }},
	"cache.ttl_seconds":   {kind: kindInt, num: func(c *Config) *int { return &c.Cache.TTLSeconds }},
	"cache.directory":     {kind: kindString, str: func(c *Config) *string { return &c.Cache.Directory }},
}

// Keys returns every settable key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(keyTable))
	for k := range keyTable {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func binding(key string) (keyBinding, error) {
	b, ok := keyTable[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return keyBinding{}, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return b, nil
}

// Get returns the value of a dotted key as text.
func (c *Config) Get(key string) (string, error) {
	b, err := binding(key)
	if err != nil {
		return "", err
	}
	switch b.kind {
	case kindInt:
		return strconv.Itoa(*b.num(c)), nil
	case kindBool:
		return strconv.FormatBool(*b.flag(c)), nil
	default:
		return *b.str(c), nil
	}
}

// Set parses value for a dotted key and stores it. The result is not
// validated; call Validate before saving.
func (c *Config) Set(key, value string) error {
	b, err := binding(key)
	if err != nil {
		return err
	}
	switch b.kind {
	case kindInt:
		n, convErr := strconv.Atoi(strings.TrimSpace(value))
		if convErr != nil {
			return fmt.Errorf("%s expects an integer: %w", key, convErr)
		}
		*b.num(c) = n
	case kindBool:
		v, convErr := strconv.ParseBool(strings.TrimSpace(value))
		if convErr != nil {
			return fmt.Errorf("%s expects true or false: %w", key, convErr)
		}
		*b.flag(c) = v
	default:
		*b.str(c) = value
	}
	return nil
}

// List returns every key with its current value.
func (c *Config) List() map[string]string {
	out := make(map[string]string, len(keyTable))
	for _, k := range Keys() {
		v, _ := c.Get(k)
		out[k] = v
	}
	return out
}
