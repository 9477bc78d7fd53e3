package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/bookshelf/internal/catalog"
	"github.com/rshade/bookshelf/internal/logging"
)

// Format is the encoding of a catalog document.
type Format string

// Document formats. FormatAuto sniffs the content.
const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// SupportedSchemaRange is the envelope schemaVersion constraint.
const SupportedSchemaRange = "^1"

// Parse errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported catalog document")
	ErrSchemaVersion     = errors.New("unsupported catalog schema version")
	ErrInvalidRecord     = errors.New("catalog entry is not an object")
)

// FormatFromName picks a format from a file name or URL path and an optional
// Content-Type. Unknown names yield FormatAuto.
func FormatFromName(name, contentType string) Format {
	switch strings.ToLower(path.Ext(stripQuery(name))) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	}
	if contentType != "" {
		if mt, _, err := mime.ParseMediaType(contentType); err == nil {
			switch {
			case strings.HasSuffix(mt, "json"):
				return FormatJSON
			case strings.HasSuffix(mt, "yaml"):
				return FormatYAML
			}
		}
	}
	return FormatAuto
}

func stripQuery(name string) string {
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		return name[:i]
	}
	return name
}

// Parse decodes a catalog document into records. The result is never nil on
// success, so an empty document yields an empty catalog.
func Parse(ctx context.Context, data []byte, format Format) ([]catalog.BookRecord, error) {
	log := logging.FromContext(ctx)
	if format == FormatAuto {
		format = sniff(data)
	}
	log.Debug().Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "parse").
		Str("format", string(format)).
		Int("data_size_bytes", len(data)).
		Msg("parsing catalog document")

	var (
		root any
		err  error
	)
	switch format {
	case FormatJSON:
		root, err = decodeJSON(data)
	case FormatYAML:
		root, err = decodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: format %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		log.Error().Ctx(ctx).
			Str("component", "ingest").
			Str("operation", "parse").
			Err(err).
			Msg("failed to decode catalog document")
		return nil, err
	}

	items, err := recordList(root)
	if err != nil {
		return nil, err
	}
	records := make([]catalog.BookRecord, 0, len(items))
	for i, item := range items {
		obj, ok := asObject(item)
		if !ok {
			return nil, fmt.Errorf("%w: index %d", ErrInvalidRecord, i)
		}
		records = append(records, normalizeRecord(obj))
	}

	log.Debug().Ctx(ctx).
		Str("component", "ingest").
		Int("book_count", len(records)).
		Msg("catalog document parsed")
	return records, nil
}

// sniff treats documents starting with '[' or '{' as JSON and anything else
// as YAML.
func sniff(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
		return FormatJSON
	}
	return FormatYAML
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("parsing catalog JSON: %w", err)
	}
	return root, nil
}

func decodeYAML(data []byte) (any, error) {
	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}
	return root, nil
}

// recordList extracts the element list from a bare array or an envelope.
func recordList(root any) ([]any, error) {
	switch doc := root.(type) {
	case []any:
		return doc, nil
	case map[string]any:
		return envelopeBooks(doc)
	case nil:
		return nil, fmt.Errorf("%w: document is empty", ErrUnsupportedFormat)
	default:
		return nil, fmt.Errorf("%w: expected a list of books or an envelope, got %T", ErrUnsupportedFormat, root)
	}
}

func envelopeBooks(doc map[string]any) ([]any, error) {
	raw, ok := doc["books"]
	if !ok {
		return nil, fmt.Errorf("%w: object without a \"books\" list", ErrUnsupportedFormat)
	}
	if v, present := doc["schemaVersion"]; present {
		if err := CheckSchemaVersion(fmt.Sprint(v)); err != nil {
			return nil, err
		}
	}
	switch books := raw.(type) {
	case []any:
		return books, nil
	case nil:
		return []any{}, nil
	default:
		return nil, fmt.Errorf("%w: \"books\" is %T, not a list", ErrUnsupportedFormat, raw)
	}
}

// CheckSchemaVersion reports whether an envelope schemaVersion is readable.
func CheckSchemaVersion(v string) error {
	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrSchemaVersion, v, err)
	}
	constraint, err := semver.NewConstraint(SupportedSchemaRange)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(ver) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrSchemaVersion, ver, SupportedSchemaRange)
	}
	return nil
}

func asObject(v any) (map[string]any, bool) {
	switch obj := v.(type) {
	case map[string]any:
		return obj, true
	case map[any]any:
		out := make(map[string]any, len(obj))
		for k, val := range obj {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}
