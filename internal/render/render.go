package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rshade/bookshelf/internal/browser"
	"github.com/rshade/bookshelf/internal/catalog"
	"github.com/rshade/bookshelf/internal/pagination"
	"github.com/rshade/bookshelf/internal/query"
)

// Column widths for the page table.
const (
	colWidthTitle    = 40
	colWidthAuthor   = 28
	tabwriterPadding = 2
	truncateMinLen   = 3
)

// Render writes view in format. Styled output belongs to the terminal UI
// and is rejected here.
func Render(w io.Writer, format Format, view PageView) error {
	switch format {
	case FormatTable, "":
		return RenderTable(w, view)
	case FormatJSON:
		return RenderJSON(w, view)
	case FormatNDJSON:
		return RenderNDJSON(w, view.Page.Items)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// RenderTable writes the page as an aligned text table followed by the
// page indicator.
func RenderTable(w io.Writer, view PageView) error {
	page := view.Page
	if page.IsEmpty() {
		if _, err := fmt.Fprintf(w, "%s\n\n%s\n", EmptyMessage, PageIndicator(page.EffectivePage, page.TotalPages)); err != nil {
			return fmt.Errorf("writing empty page: %w", err)
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	if _, err := fmt.Fprintf(tw, "TITLE\tAUTHOR\tGENRE\tAGE\tAVAILABLE\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----\t------\t-----\t---\t---------\n"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}
	for _, b := range page.Items {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d/%d\n",
			truncate(cell(b.Title), colWidthTitle),
			truncate(cell(b.Author), colWidthAuthor),
			cell(b.Genre),
			cell(b.AgeRating),
			b.AvailableCopies, b.TotalCopies,
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	footer := PageIndicator(page.EffectivePage, page.TotalPages)
	if view.CatalogSize > 0 {
		footer += fmt.Sprintf("  (%d of %d books match)", page.TotalItems, view.CatalogSize)
	}
	_, err := fmt.Fprintf(w, "\n%s\n", footer)
	return err
}

// cell keeps tabs and newlines in record text from breaking the table.
func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= truncateMinLen {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-truncateMinLen]) + "..."
}

// pageDocument is the JSON shape of one page.
type pageDocument struct {
	Books       []catalog.BookRecord `json:"books"`
	Pagination  pagination.Meta      `json:"pagination"`
	Criteria    query.Criteria       `json:"criteria"`
	CatalogSize int                  `json:"catalogSize"`
}

// RenderJSON writes the page with its pagination metadata and the criteria
// that produced it.
func RenderJSON(w io.Writer, view PageView) error {
	items := view.Page.Items
	if items == nil {
		items = []catalog.BookRecord{}
	}
	doc := pageDocument{
		Books:       items,
		Pagination:  view.Page.Meta(),
		Criteria:    view.Criteria,
		CatalogSize: view.CatalogSize,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding page: %w", err)
	}
	return nil
}

// RenderNDJSON writes one record per line and nothing else.
func RenderNDJSON(w io.Writer, books []catalog.BookRecord) error {
	enc := json.NewEncoder(w)
	for _, b := range books {
		if err := enc.Encode(b); err != nil {
			return fmt.Errorf("encoding record: %w", err)
		}
	}
	return nil
}

// RenderFacets writes the genre and age-rating values of a catalog.
func RenderFacets(w io.Writer, format Format, facets browser.Facets) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(facets)
	case FormatNDJSON:
		enc := json.NewEncoder(w)
		for _, f := range facetRows(facets) {
			if err := enc.Encode(f); err != nil {
				return fmt.Errorf("encoding facet: %w", err)
			}
		}
		return nil
	case FormatTable, FormatStyled, "":
		tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
		if _, err := fmt.Fprintf(tw, "FIELD\tVALUE\n-----\t-----\n"); err != nil {
			return err
		}
		for _, f := range facetRows(facets) {
			if _, err := fmt.Fprintf(tw, "%s\t%s\n", f.Field, f.Value); err != nil {
				return err
			}
		}
		return tw.Flush()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

type facetRow struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func facetRows(f browser.Facets) []facetRow {
	rows := make([]facetRow, 0, len(f.Genres)+len(f.AgeRatings))
	for _, g := range f.Genres {
		rows = append(rows, facetRow{Field: string(query.FieldGenre), Value: g})
	}
	for _, a := range f.AgeRatings {
		rows = append(rows, facetRow{Field: string(query.FieldAgeRating), Value: a})
	}
	return rows
}
