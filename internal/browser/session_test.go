package browser_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/bookshelf/internal/browser"
	"github.com/rshade/bookshelf/internal/catalog"
	"github.com/rshade/bookshelf/internal/pagination"
	"github.com/rshade/bookshelf/internal/query"
)

func numberedBooks(n int) []catalog.BookRecord {
	books := make([]catalog.BookRecord, n)
	for i := range books {
		books[i] = catalog.BookRecord{
			Title:           fmt.Sprintf("Book %02d", i+1),
			Author:          "Author",
			Genre:           []string{"Sci-Fi", "Romance"}[i%2],
			AgeRating:       []string{"All", "13+", "18+"}[i%3],
			TotalCopies:     2,
			AvailableCopies: i % 2,
		}
	}
	return books
}

func loadOK(books []catalog.BookRecord) browser.LoadFunc {
	return func(context.Context) ([]catalog.BookRecord, error) {
		return books, nil
	}
}

func newReady(t *testing.T, books []catalog.BookRecord) *browser.Session {
	t.Helper()
	s, err := browser.New(browser.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, s.Load(context.Background(), loadOK(books)))
	return s
}

func TestNew_RejectsInvalidPageSize(t *testing.T) {
	opts := browser.DefaultOptions()
	opts.PageSize = 0
	_, err := browser.New(opts)
	require.ErrorIs(t, err, pagination.ErrInvalidPageSize)
}

func TestSession_LoadingState(t *testing.T) {
	s, err := browser.New(browser.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, browser.StateLoading, s.State())

	_, err = s.Current()
	require.ErrorIs(t, err, browser.ErrCatalogUnavailable)
	_, err = s.Facets()
	require.ErrorIs(t, err, browser.ErrCatalogUnavailable)
	require.ErrorIs(t, s.SetCriteria(query.Criteria{SearchText: "x"}), browser.ErrCatalogUnavailable)
}

func TestSession_LoadSuccess(t *testing.T) {
	s := newReady(t, numberedBooks(20))

	assert.Equal(t, browser.StateReady, s.State())
	assert.Equal(t, 20, s.CatalogSize())
	assert.True(t, s.Criteria().IsUnfiltered())

	page, err := s.Current()
	require.NoError(t, err)
	assert.Equal(t, 1, page.EffectivePage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 8)
	assert.Equal(t, "Book 01", page.Items[0].Title)

	facets, err := s.Facets()
	require.NoError(t, err)
	assert.Equal(t, []string{"Romance", "Sci-Fi"}, facets.Genres)
	assert.Equal(t, []string{"13+", "18+", "All"}, facets.AgeRatings)
}

func TestSession_LoadFailureIsTerminal(t *testing.T) {
	s, err := browser.New(browser.DefaultOptions())
	require.NoError(t, err)

	boom := errors.New("connection refused")
	err = s.Load(context.Background(), func(context.Context) ([]catalog.BookRecord, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, browser.StateFailed, s.State())
	require.ErrorIs(t, s.Err(), boom)

	_, err = s.Current()
	require.ErrorIs(t, err, browser.ErrCatalogUnavailable)
	require.ErrorIs(t, err, boom)
	_, err = s.Next()
	require.ErrorIs(t, err, browser.ErrCatalogUnavailable)
	require.ErrorIs(t, s.Reset(), browser.ErrCatalogUnavailable)

	// No retry out of the failed state.
	err = s.Load(context.Background(), loadOK(numberedBooks(3)))
	require.ErrorIs(t, err, browser.ErrAlreadyLoaded)
	assert.Equal(t, browser.StateFailed, s.State())
}

func TestSession_NilRecordListFails(t *testing.T) {
	s, err := browser.New(browser.DefaultOptions())
	require.NoError(t, err)

	err = s.Load(context.Background(), loadOK(nil))
	require.ErrorIs(t, err, catalog.ErrEmptySource)
	assert.Equal(t, browser.StateFailed, s.State())
}

func TestSession_EmptyCatalogIsReady(t *testing.T) {
	s := newReady(t, []catalog.BookRecord{})

	page, err := s.Current()
	require.NoError(t, err)
	assert.True(t, page.IsEmpty())
	assert.Equal(t, 1, page.EffectivePage)
	assert.Equal(t, 1, page.TotalPages)

	facets, err := s.Facets()
	require.NoError(t, err)
	assert.Empty(t, facets.Genres)
	assert.Empty(t, facets.AgeRatings)
}

func TestSession_LoadTwice(t *testing.T) {
	s := newReady(t, numberedBooks(2))
	require.ErrorIs(t, s.Load(context.Background(), loadOK(numberedBooks(5))), browser.ErrAlreadyLoaded)
	assert.Equal(t, 2, s.CatalogSize())
}

func TestSession_Navigation(t *testing.T) {
	s := newReady(t, numberedBooks(20))

	page, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, page.EffectivePage)
	assert.Equal(t, "Book 09", page.Items[0].Title)

	page, err = s.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, page.EffectivePage)
	assert.Len(t, page.Items, 4)

	page, err = s.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, page.EffectivePage, "next stays on the last page")

	page, err = s.GoTo(1)
	require.NoError(t, err)
	assert.Equal(t, 1, page.EffectivePage)

	page, err = s.Prev()
	require.NoError(t, err)
	assert.Equal(t, 1, page.EffectivePage, "prev stays on the first page")

	page, err = s.GoTo(99)
	require.NoError(t, err)
	assert.Equal(t, 3, page.EffectivePage)

	page, err = s.GoTo(-4)
	require.NoError(t, err)
	assert.Equal(t, 1, page.EffectivePage)

	page, err = s.Last()
	require.NoError(t, err)
	assert.Equal(t, 3, page.EffectivePage)
}

func TestSession_CriteriaChangeResetsPage(t *testing.T) {
	s := newReady(t, numberedBooks(20))
	_, err := s.GoTo(3)
	require.NoError(t, err)

	require.NoError(t, s.SetCriteria(query.Criteria{Genre: "Sci-Fi"}))
	page, err := s.Current()
	require.NoError(t, err)
	assert.Equal(t, 1, page.EffectivePage)
	assert.Equal(t, 10, s.MatchCount())
	for _, b := range page.Items {
		assert.Equal(t, "Sci-Fi", b.Genre)
	}

	_, err = s.Next()
	require.NoError(t, err)
	require.NoError(t, s.Update(func(c query.Criteria) query.Criteria {
		c.AvailableOnly = true
		return c
	}))
	page, err = s.Current()
	require.NoError(t, err)
	assert.Equal(t, 1, page.EffectivePage)
	assert.Equal(t, "Sci-Fi", s.Criteria().Genre)
	assert.True(t, s.Criteria().AvailableOnly)
}

func TestSession_NoMatches(t *testing.T) {
	s := newReady(t, numberedBooks(5))
	require.NoError(t, s.SetCriteria(query.Criteria{SearchText: "zzz"}))

	page, err := s.Current()
	require.NoError(t, err)
	assert.True(t, page.IsEmpty())
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, s.MatchCount())
}

func TestSession_SortAndReset(t *testing.T) {
	s := newReady(t, numberedBooks(10))
	require.NoError(t, s.SetCriteria(query.Criteria{Sort: query.SortTitleDesc}))

	page, err := s.Current()
	require.NoError(t, err)
	assert.Equal(t, "Book 10", page.Items[0].Title)

	require.NoError(t, s.Reset())
	page, err = s.Current()
	require.NoError(t, err)
	assert.Equal(t, "Book 01", page.Items[0].Title)
	assert.True(t, s.Criteria().IsUnfiltered())
}

func TestSession_RejectsUnknownSort(t *testing.T) {
	s := newReady(t, numberedBooks(3))
	err := s.SetCriteria(query.Criteria{Sort: "pages-asc"})
	require.ErrorIs(t, err, query.ErrUnknownSortKey)
	assert.True(t, s.Criteria().IsUnfiltered())
}

func TestSession_FailOnlyFromLoading(t *testing.T) {
	s := newReady(t, numberedBooks(3))
	s.Fail(errors.New("late"))
	assert.Equal(t, browser.StateReady, s.State())

	fresh, err := browser.New(browser.DefaultOptions())
	require.NoError(t, err)
	fresh.Fail(errors.New("aborted"))
	assert.Equal(t, browser.StateFailed, fresh.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "loading", browser.StateLoading.String())
	assert.Equal(t, "ready", browser.StateReady.String())
	assert.Equal(t, "failed", browser.StateFailed.String())
	assert.Equal(t, "state(9)", browser.State(9).String())
}
