package query

import (
	"errors"
	"fmt"
	"strings"
)

// AllValue is the selector value meaning "no filter" for genre and age rating.
// An empty string means the same thing.
const AllValue = "all"

// SortKey names one of the supported result orderings.
type SortKey string

// Supported sort keys.
const (
	SortNone       SortKey = "none"
	SortTitleAsc   SortKey = "title-asc"
	SortTitleDesc  SortKey = "title-desc"
	SortAuthorAsc  SortKey = "author-asc"
	SortAuthorDesc SortKey = "author-desc"
	SortCopiesAsc  SortKey = "copies-asc"
	SortCopiesDesc SortKey = "copies-desc"
)

// Sort orders accepted in "field:order" expressions.
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// sortPartsMax is the maximum number of parts in a "field:order" expression.
const sortPartsMax = 2

// Sort parsing errors.
var (
	ErrUnknownSortKey   = errors.New("unknown sort key")
	ErrInvalidSortOrder = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortForm  = errors.New("invalid sort format: use 'title-desc' or 'title:desc'")
)

//nolint:gochecknoglobals // Fixed cycle order used by the TUI and help text.
var sortKeys = []SortKey{
	SortNone,
	SortTitleAsc,
	SortTitleDesc,
	SortAuthorAsc,
	SortAuthorDesc,
	SortCopiesAsc,
	SortCopiesDesc,
}

// SortKeys returns every supported key, starting with SortNone.
func SortKeys() []SortKey {
	out := make([]SortKey, len(sortKeys))
	copy(out, sortKeys)
	return out
}

// Valid reports whether k is one of the supported keys. The zero value is
// accepted and behaves like SortNone.
func (k SortKey) Valid() bool {
	if k == "" {
		return true
	}
	for _, known := range sortKeys {
		if k == known {
			return true
		}
	}
	return false
}

// Next returns the key after k in the cycle order, wrapping to SortNone.
func (k SortKey) Next() SortKey {
	return k.step(1)
}

// Prev returns the key before k in the cycle order.
func (k SortKey) Prev() SortKey {
	return k.step(-1)
}

func (k SortKey) step(delta int) SortKey {
	idx := 0
	for i, known := range sortKeys {
		if k == known {
			idx = i
			break
		}
	}
	n := len(sortKeys)
	return sortKeys[((idx+delta)%n+n)%n]
}

// Label is the human-readable form used by renderers.
func (k SortKey) Label() string {
	switch k {
	case SortTitleAsc:
		return "Title (A-Z)"
	case SortTitleDesc:
		return "Title (Z-A)"
	case SortAuthorAsc:
		return "Author (A-Z)"
	case SortAuthorDesc:
		return "Author (Z-A)"
	case SortCopiesAsc:
		return "Available copies (low-high)"
	case SortCopiesDesc:
		return "Available copies (high-low)"
	case SortNone, "":
		return "Catalog order"
	default:
		return string(k)
	}
}

// ParseSortKey parses a sort expression. Accepted forms:
//   - "" or "none"
//   - "title-asc", "author-desc", "copies-desc", ...
//   - "title", "author:desc", "copies:asc" (order defaults to asc)
func ParseSortKey(expr string) (SortKey, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	if expr == "" || expr == string(SortNone) {
		return SortNone, nil
	}

	if key := SortKey(expr); key.Valid() {
		return key, nil
	}

	parts := strings.Split(expr, ":")
	if len(parts) > sortPartsMax {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortForm, expr)
	}

	field := strings.TrimSpace(parts[0])
	order := SortOrderAsc
	if len(parts) == sortPartsMax {
		order = strings.TrimSpace(parts[1])
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	key := SortKey(field + "-" + order)
	if !key.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, field)
	}
	return key, nil
}

// Criteria is the full set of browse selections. It is a value type and is
// replaced wholesale on every interaction.
type Criteria struct {
	// SearchText is matched case-insensitively against title and author.
	SearchText string `json:"search,omitempty"`

	// Genre selects one genre. Empty or AllValue disables the filter.
	Genre string `json:"genre,omitempty"`

	// AgeRating selects one age rating. Empty or AllValue disables the filter.
	AgeRating string `json:"ageRating,omitempty"`

	// AvailableOnly keeps only records with at least one available copy.
	AvailableOnly bool `json:"availableOnly,omitempty"`

	// Sort is the result ordering. The zero value means SortNone.
	Sort SortKey `json:"sort,omitempty"`
}

// IsUnfiltered reports whether c selects the whole catalog in load order.
func (c Criteria) IsUnfiltered() bool {
	return c.SearchText == "" &&
		isUnset(c.Genre) &&
		isUnset(c.AgeRating) &&
		!c.AvailableOnly &&
		(c.Sort == "" || c.Sort == SortNone)
}

func isUnset(selector string) bool {
	return selector == "" || selector == AllValue
}
