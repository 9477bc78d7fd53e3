package pagination

import (
	"errors"
	"fmt"
)

// Page size limits and defaults.
const (
	// DefaultPageSize matches the page size of the original catalog browser.
	DefaultPageSize = 8
	MinPageSize     = 1
	MaxPageSize     = 1000
	DefaultPage     = 1
	MinPage         = 1
)

// ErrInvalidPageSize is returned when a page size is outside [MinPageSize, MaxPageSize].
var ErrInvalidPageSize = errors.New("page-size must be between 1 and 1000")

// Params holds the page flags of a one-shot listing.
//
// Page values outside the result range are legal and are clamped when the
// page is computed; only the page size is validated.
type Params struct {
	// Page is the requested 1-based page number.
	Page int

	// PageSize is the number of records per page.
	PageSize int
}

// NewParams creates Params with the default page and page size.
func NewParams() Params {
	return Params{Page: DefaultPage, PageSize: DefaultPageSize}
}

// Validate checks the page size bounds.
func (p Params) Validate() error {
	return ValidatePageSize(p.PageSize)
}

// ValidatePageSize returns ErrInvalidPageSize for sizes outside the allowed range.
func ValidatePageSize(size int) error {
	if size < MinPageSize || size > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, size)
	}
	return nil
}

// Offset returns the index of the first item of the requested page, before clamping.
func (p Params) Offset() int {
	if p.Page < MinPage || p.PageSize < MinPageSize {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}
