package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/rshade/bookshelf/internal/browser"
	"github.com/rshade/bookshelf/internal/cache"
	"github.com/rshade/bookshelf/internal/catalog"
	"github.com/rshade/bookshelf/internal/config"
	"github.com/rshade/bookshelf/internal/ingest"
	"github.com/rshade/bookshelf/internal/logging"
	"github.com/rshade/bookshelf/internal/pagination"
	"github.com/rshade/bookshelf/internal/render"
)

// ErrNoCatalog is returned when neither --catalog nor browse.catalog names a
// catalog.
var ErrNoCatalog = errors.New("no catalog given: use --catalog or set browse.catalog")

// catalogRun bundles what every catalog command needs: a session that has
// not been loaded yet, the loader for it and a locale printer.
type catalogRun struct {
	session   *browser.Session
	load      browser.LoadFunc
	printer   *message.Printer
	locations []string
}

// usesStdin reports whether one of the catalog locations is standard input.
func (r *catalogRun) usesStdin() bool {
	return slices.Contains(r.locations, ingest.StdinLocation)
}

// loadNow runs the loader and fails the session on error.
func (r *catalogRun) loadNow(ctx context.Context) error {
	if err := r.session.Load(ctx, r.load); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	return nil
}

// newCatalogRun builds the session and loader from flags and configuration.
func newCatalogRun(cmd *cobra.Command) (*catalogRun, error) {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	cfg := config.GetGlobalConfig()

	opts, err := cfg.SessionOptions()
	if err != nil {
		return nil, fmt.Errorf("invalid browse configuration: %w", err)
	}
	if cmd.Flags().Changed("page-size") {
		opts.PageSize, _ = cmd.Flags().GetInt("page-size")
		if err = pagination.ValidatePageSize(opts.PageSize); err != nil {
			return nil, fmt.Errorf("invalid --page-size: %w", err)
		}
	}
	session, err := browser.New(opts)
	if err != nil {
		return nil, err
	}

	locations, _ := cmd.Flags().GetStringArray("catalog")
	if len(locations) == 0 && cfg.Browse.Catalog != "" {
		locations = []string{cfg.Browse.Catalog}
	}
	if len(locations) == 0 {
		return nil, ErrNoCatalog
	}

	formatFlag, _ := cmd.Flags().GetString("catalog-format")
	docFormat, err := parseDocumentFormat(formatFlag)
	if err != nil {
		return nil, err
	}

	store, err := catalogCache(cfg)
	if err != nil {
		log.Warn().Ctx(ctx).
			Str("component", "cli").
			Err(err).
			Msg("catalog cache unavailable, fetching without it")
	}

	sources, err := ingest.OpenAll(locations, ingest.Options{
		Stdin:  cmd.InOrStdin(),
		Cache:  store,
		Format: docFormat,
	})
	if err != nil {
		return nil, err
	}

	log.Debug().Ctx(ctx).
		Str("component", "cli").
		Strs("locations", locations).
		Int("page_size", opts.PageSize).
		Msg("catalog sources resolved")

	return &catalogRun{
		session: session,
		load: func(ctx context.Context) ([]catalog.BookRecord, error) {
			return ingest.LoadAll(ctx, sources)
		},
		printer:   render.NewPrinter(opts.Query.Locale),
		locations: locations,
	}, nil
}

func parseDocumentFormat(s string) (ingest.Format, error) {
	switch ingest.Format(s) {
	case ingest.FormatAuto, ingest.FormatJSON, ingest.FormatYAML:
		return ingest.Format(s), nil
	default:
		return ingest.FormatAuto, fmt.Errorf("%w: %q (use json or yaml)", ingest.ErrUnsupportedFormat, s)
	}
}

// catalogCache opens the URL cache, or returns nil when caching is off.
func catalogCache(cfg *config.Config) (*cache.FileStore, error) {
	if !cfg.Cache.Enabled {
		return nil, nil //nolint:nilnil // A nil store disables caching.
	}
	dir, err := cfg.CacheDirectory()
	if err != nil {
		return nil, err
	}
	return cache.NewFileStore(dir, cfg.Cache.Enabled, cfg.Cache.TTLSeconds)
}

// outputFormat resolves --output against the configured default.
func outputFormat(cmd *cobra.Command) (render.Format, error) {
	value, _ := cmd.Flags().GetString("output")
	if value == "" {
		value = config.GetDefaultOutputFormat()
	}
	return render.ParseFormat(value)
}
