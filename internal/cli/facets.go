package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/bookshelf/internal/browser"
	"github.com/rshade/bookshelf/internal/query"
	"github.com/rshade/bookshelf/internal/render"
)

// NewFacetsCmd creates the facets command, which lists the genres and age
// ratings present in the catalog.
func NewFacetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "facets",
		Short: "List the genres and age ratings of the catalog",
		Example: `  bookshelf facets --catalog books.json
  bookshelf facets --catalog books.json --field genre
  bookshelf facets --catalog books.json --output json`,
		RunE: runFacets,
	}
	cmd.Flags().StringP("output", "o", "", "output format: table, json, ndjson")
	cmd.Flags().String("field", "", "only list one field: genre or age")
	return cmd
}

func runFacets(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	var field query.Field
	if raw, _ := cmd.Flags().GetString("field"); raw != "" {
		if field, err = query.ParseField(raw); err != nil {
			return err
		}
	}

	run, err := newCatalogRun(cmd)
	if err != nil {
		return err
	}
	if err = run.loadNow(cmd.Context()); err != nil {
		return err
	}
	facets, err := run.session.Facets()
	if err != nil {
		return err
	}
	return render.RenderFacets(cmd.OutOrStdout(), format, selectFacets(facets, field))
}

// selectFacets keeps the values of field; an empty field keeps both.
func selectFacets(f browser.Facets, field query.Field) browser.Facets {
	switch field {
	case query.FieldGenre:
		f.AgeRatings = []string{}
	case query.FieldAgeRating:
		f.Genres = []string{}
	}
	return f
}
