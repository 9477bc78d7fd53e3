package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/rshade/bookshelf/internal/catalog"
)

// Options are the configuration points of the engine.
type Options struct {
	// CaseSensitiveGenreMatch makes genre selection an exact comparison.
	// When false, "sci-fi" selects records whose genre is "Sci-Fi".
	CaseSensitiveGenreMatch bool

	// CaseSensitiveAgeMatch makes age-rating selection an exact comparison.
	CaseSensitiveAgeMatch bool

	// Locale drives title and author collation. The zero tag uses English.
	Locale language.Tag
}

// DefaultOptions returns case-insensitive genre matching, exact age-rating
// matching and English collation.
func DefaultOptions() Options {
	return Options{
		CaseSensitiveGenreMatch: false,
		CaseSensitiveAgeMatch:   true,
		Locale:                  language.English,
	}
}

// Engine runs the filter/sort pipeline. It is safe to share between callers:
// every Filter call builds its own collator.
type Engine struct {
	opts Options
}

// NewEngine creates an Engine with the given options.
func NewEngine(opts Options) *Engine {
	if opts.Locale == language.Und {
		opts.Locale = language.English
	}
	return &Engine{opts: opts}
}

// Options returns the engine configuration.
func (e *Engine) Options() Options {
	return e.opts
}

// Filter returns the records of all that match c, ordered by c.Sort.
//
// With SortNone the relative order of all is preserved. Other keys apply a
// stable sort, so records with equal keys keep their catalog order in both
// ascending and descending direction. The input slice is never modified.
func (e *Engine) Filter(all []catalog.BookRecord, c Criteria) []catalog.BookRecord {
	term := strings.ToLower(c.SearchText)

	matched := make([]catalog.BookRecord, 0, len(all))
	for _, book := range all {
		if e.matches(book, c, term) {
			matched = append(matched, book)
		}
	}

	e.sortStable(matched, c.Sort)
	return matched
}

// Matches reports whether a single record satisfies every active predicate of c.
func (e *Engine) Matches(book catalog.BookRecord, c Criteria) bool {
	return e.matches(book, c, strings.ToLower(c.SearchText))
}

func (e *Engine) matches(book catalog.BookRecord, c Criteria, lowerTerm string) bool {
	return matchesSearch(book, lowerTerm) &&
		matchesSelector(book.Genre, c.Genre, e.opts.CaseSensitiveGenreMatch) &&
		matchesSelector(book.AgeRating, c.AgeRating, e.opts.CaseSensitiveAgeMatch) &&
		(!c.AvailableOnly || book.AvailableCopies > 0)
}

func matchesSearch(book catalog.BookRecord, lowerTerm string) bool {
	if lowerTerm == "" {
		return true
	}
	return strings.Contains(strings.ToLower(book.Title), lowerTerm) ||
		strings.Contains(strings.ToLower(book.Author), lowerTerm)
}

func matchesSelector(value, selected string, caseSensitive bool) bool {
	if isUnset(selected) {
		return true
	}
	if caseSensitive {
		return value == selected
	}
	return strings.EqualFold(value, selected)
}

// sortStable orders books in place according to key.
func (e *Engine) sortStable(books []catalog.BookRecord, key SortKey) {
	if key == "" || key == SortNone || len(books) < 2 {
		return
	}

	col := e.newCollator()
	desc := key == SortTitleDesc || key == SortAuthorDesc || key == SortCopiesDesc

	sort.SliceStable(books, func(i, j int) bool {
		// Swapping operands rather than negating keeps equal keys in place.
		if desc {
			i, j = j, i
		}
		switch key {
		case SortTitleAsc, SortTitleDesc:
			return col.CompareString(books[i].Title, books[j].Title) < 0
		case SortAuthorAsc, SortAuthorDesc:
			return col.CompareString(books[i].Author, books[j].Author) < 0
		case SortCopiesAsc, SortCopiesDesc:
			return books[i].AvailableCopies < books[j].AvailableCopies
		default:
			return false
		}
	})
}

func (e *Engine) newCollator() *collate.Collator {
	return collate.New(e.opts.Locale)
}
