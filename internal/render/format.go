package render

import (
	"errors"
	"fmt"
	"strings"
)

// Format is a one-shot output format.
type Format string

// Supported formats.
const (
	FormatTable  Format = "table"
	FormatJSON   Format = "json"
	FormatNDJSON Format = "ndjson"
	FormatStyled Format = "styled"
)

// ErrUnsupportedFormat is returned for unknown format names.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatTable, FormatJSON, FormatNDJSON, FormatStyled}
}

// ParseFormat parses a format name. Empty means table.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatTable, nil
	}
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid: table, json, ndjson, styled)", ErrUnsupportedFormat, s)
}

// IsStructured reports whether f is machine-readable.
func (f Format) IsStructured() bool {
	return f == FormatJSON || f == FormatNDJSON
}
