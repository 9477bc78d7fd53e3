package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/bookshelf/internal/cache"
	"github.com/rshade/bookshelf/internal/catalog"
	"github.com/rshade/bookshelf/internal/logging"
	"github.com/rshade/bookshelf/pkg/version"
)

// StdinLocation selects standard input as the catalog source.
const StdinLocation = "-"

// DefaultHTTPTimeout bounds a single catalog download.
const DefaultHTTPTimeout = 30 * time.Second

// maxDocumentBytes caps catalog documents read from any source.
const maxDocumentBytes = 64 << 20

// Source errors.
var (
	ErrNoSources      = errors.New("no catalog source given")
	ErrHTTPStatus     = errors.New("unexpected HTTP status")
	ErrDocumentTooBig = errors.New("catalog document too large")
)

// Source produces one raw catalog document.
type Source interface {
	// Location identifies the source in logs and error messages.
	Location() string

	// Fetch returns the document and its format hint.
	Fetch(ctx context.Context) ([]byte, Format, error)
}

// Options configure how locations are opened.
type Options struct {
	// Stdin is read for the "-" location. Defaults to os.Stdin.
	Stdin io.Reader

	// HTTPClient is used for URL sources. Defaults to a client with
	// DefaultHTTPTimeout.
	HTTPClient *http.Client

	// Cache, when enabled, stores URL documents between runs.
	Cache *cache.FileStore

	// Format forces a document format for every source.
	Format Format
}

// Open resolves a location string into a Source.
func Open(location string, opts Options) (Source, error) {
	location = strings.TrimSpace(location)
	switch {
	case location == "":
		return nil, ErrNoSources
	case location == StdinLocation:
		in := opts.Stdin
		if in == nil {
			in = os.Stdin
		}
		return &StdinSource{Reader: in, Format: opts.Format}, nil
	case isURL(location):
		client := opts.HTTPClient
		if client == nil {
			client = &http.Client{Timeout: DefaultHTTPTimeout}
		}
		return &HTTPSource{URL: location, Client: client, Cache: opts.Cache, Format: opts.Format}, nil
	default:
		return &FileSource{Path: location, Format: opts.Format}, nil
	}
}

func isURL(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// FileSource reads a catalog from the local filesystem.
type FileSource struct {
	Path   string
	Format Format
}

// Location implements Source.
func (s *FileSource) Location() string { return s.Path }

// Fetch implements Source.
func (s *FileSource) Fetch(ctx context.Context) ([]byte, Format, error) {
	log := logging.FromContext(ctx)
	log.Debug().Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "read_file").
		Str("catalog_path", s.Path).
		Msg("reading catalog file")

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, "", fmt.Errorf("reading catalog file: %w", err)
	}
	defer f.Close()

	data, err := readLimited(f)
	if err != nil {
		return nil, "", fmt.Errorf("reading catalog file %s: %w", s.Path, err)
	}
	format := s.Format
	if format == FormatAuto {
		format = FormatFromName(s.Path, "")
	}
	return data, format, nil
}

// StdinSource reads a catalog piped into the process.
type StdinSource struct {
	Reader io.Reader
	Format Format
}

// Location implements Source.
func (s *StdinSource) Location() string { return StdinLocation }

// Fetch implements Source.
func (s *StdinSource) Fetch(_ context.Context) ([]byte, Format, error) {
	data, err := readLimited(s.Reader)
	if err != nil {
		return nil, "", fmt.Errorf("reading catalog from stdin: %w", err)
	}
	return data, s.Format, nil
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxDocumentBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxDocumentBytes {
		return nil, ErrDocumentTooBig
	}
	return data, nil
}

// Load fetches and parses one source.
func Load(ctx context.Context, src Source) ([]catalog.BookRecord, error) {
	data, format, err := src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	records, err := Parse(ctx, data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Location(), err)
	}
	return records, nil
}

// LoadAll loads every source concurrently and concatenates the records in
// source order. The first failure cancels the rest and fails the whole load.
func LoadAll(ctx context.Context, sources []Source) ([]catalog.BookRecord, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	log := logging.FromContext(ctx)
	start := time.Now()

	parts := make([][]catalog.BookRecord, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			records, err := Load(gctx, src)
			if err != nil {
				return err
			}
			parts[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	all := make([]catalog.BookRecord, 0, total)
	for _, p := range parts {
		all = append(all, p...)
	}

	log.Debug().Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "load_all").
		Int("source_count", len(sources)).
		Int("book_count", len(all)).
		Dur("duration_ms", time.Since(start)).
		Msg("catalog sources loaded")
	return all, nil
}

// OpenAll resolves every location. At most one location may be stdin.
func OpenAll(locations []string, opts Options) ([]Source, error) {
	if len(locations) == 0 {
		return nil, ErrNoSources
	}
	sources := make([]Source, 0, len(locations))
	stdinSeen := false
	for _, loc := range locations {
		src, err := Open(loc, opts)
		if err != nil {
			return nil, err
		}
		if src.Location() == StdinLocation {
			if stdinSeen {
				return nil, errors.New("standard input can only be used once as a catalog source")
			}
			stdinSeen = true
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func userAgent() string {
	return "bookshelf/" + version.GetVersion()
}
