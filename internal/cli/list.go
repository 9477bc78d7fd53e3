package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/bookshelf/internal/pagination"
	"github.com/rshade/bookshelf/internal/query"
	"github.com/rshade/bookshelf/internal/render"
	"github.com/rshade/bookshelf/internal/tui"
)

// listParams holds the flags of the list command.
type listParams struct {
	search    string
	genre     string
	age       string
	available bool
	sort      string
	output    string
	paging    pagination.Params
}

// criteria converts the flags into query criteria.
func (p listParams) criteria() (query.Criteria, error) {
	sortKey, err := query.ParseSortKey(p.sort)
	if err != nil {
		return query.Criteria{}, err
	}
	return query.Criteria{
		SearchText:    p.search,
		Genre:         p.genre,
		AgeRating:     p.age,
		AvailableOnly: p.available,
		Sort:          sortKey,
	}, nil
}

// NewListCmd creates the list command, which prints one page of results.
func NewListCmd() *cobra.Command {
	params := listParams{paging: pagination.NewParams()}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of books matching the given criteria",
		Long: `Loads the catalog, applies search, filters and sort order, and prints
the requested page. Out-of-range pages are clamped to the nearest valid page.

Output formats: table (default), styled, json, ndjson.`,
		Example: `  # First page, catalog order
  bookshelf list --catalog books.json

  # Available children's books sorted by author, page 2
  bookshelf list --catalog books.json --genre children --available --sort author --page 2

  # Machine-readable output
  bookshelf list --catalog books.json --search dune --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, params)
		},
	}

	addCriteriaFlags(cmd, &params)
	cmd.Flags().IntVar(&params.paging.Page, "page", pagination.DefaultPage, "page number (clamped to the valid range)")
	return cmd
}

func addCriteriaFlags(cmd *cobra.Command, params *listParams) {
	cmd.Flags().StringVar(&params.search, "search", "", "match title or author (case-insensitive substring)")
	cmd.Flags().StringVar(&params.genre, "genre", "", "only this genre ('all' for every genre)")
	cmd.Flags().StringVar(&params.age, "age", "", "only this age rating ('all' for every rating)")
	cmd.Flags().BoolVar(&params.available, "available", false, "only books with an available copy")
	cmd.Flags().StringVar(&params.sort, "sort", "",
		"sort order: title-asc, title-desc, author-asc, author-desc, copies-asc, copies-desc")
	cmd.Flags().StringVarP(&params.output, "output", "o", "", "output format: table, styled, json, ndjson")
}

func runList(cmd *cobra.Command, params listParams) error {
	ctx := cmd.Context()

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	criteria, err := params.criteria()
	if err != nil {
		return err
	}

	run, err := newCatalogRun(cmd)
	if err != nil {
		return err
	}
	params.paging.PageSize = run.session.PageSize()
	if err = params.paging.Validate(); err != nil {
		return err
	}
	if err = run.loadNow(ctx); err != nil {
		return err
	}
	if err = run.session.SetCriteria(criteria); err != nil {
		return err
	}
	page, err := run.session.GoTo(params.paging.Page)
	if err != nil {
		return err
	}

	logger.Debug().Ctx(ctx).
		Str("operation", "list").
		Int("requested_page", params.paging.Page).
		Int("requested_offset", params.paging.Offset()).
		Int("matched", run.session.MatchCount()).
		Int("page", page.EffectivePage).
		Int("total_pages", page.TotalPages).
		Msg("page selected")

	view := render.PageView{
		Page:        page,
		Criteria:    run.session.Criteria(),
		CatalogSize: run.session.CatalogSize(),
	}
	if format == render.FormatStyled {
		_, err = fmt.Fprint(cmd.OutOrStdout(), tui.RenderStyledPage(view, run.printer, tui.TerminalWidth()))
		return err
	}
	return render.Render(cmd.OutOrStdout(), format, view)
}
