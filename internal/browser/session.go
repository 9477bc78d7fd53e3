package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rshade/bookshelf/internal/catalog"
	"github.com/rshade/bookshelf/internal/logging"
	"github.com/rshade/bookshelf/internal/pagination"
	"github.com/rshade/bookshelf/internal/query"
)

// State is the lifecycle state of a session.
type State int

// Session states.
const (
	StateLoading State = iota
	StateReady
	StateFailed
)

// String returns the state name used in logs.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session errors.
var (
	// ErrCatalogUnavailable is returned by every query once loading failed,
	// or before loading finished.
	ErrCatalogUnavailable = errors.New("catalog is not available")

	// ErrAlreadyLoaded is returned when Load is called on a session that has
	// already left the loading state.
	ErrAlreadyLoaded = errors.New("catalog already loaded")
)

// LoadFunc produces the raw record list of a catalog.
type LoadFunc func(ctx context.Context) ([]catalog.BookRecord, error)

// Facets are the selectable genre and age-rating values of the loaded catalog.
type Facets struct {
	Genres     []string `json:"genres"`
	AgeRatings []string `json:"ageRatings"`
}

// Options configure a Session.
type Options struct {
	// PageSize is fixed for the session lifetime.
	PageSize int

	// Query configures matching and collation.
	Query query.Options

	// FacetOrder controls the order of discovered genre and age values.
	FacetOrder query.ValueOrder
}

// DefaultOptions returns the page size and matching rules of the original browser.
func DefaultOptions() Options {
	return Options{
		PageSize:   pagination.DefaultPageSize,
		Query:      query.DefaultOptions(),
		FacetOrder: query.OrderSorted,
	}
}

// Session holds the catalog, the criteria and the page of one browse session.
type Session struct {
	state   State
	loadErr error

	store    *catalog.Store
	engine   *query.Engine
	pageSize int
	order    query.ValueOrder

	criteria query.Criteria
	filtered []catalog.BookRecord
	page     int
	facets   Facets
}

// New creates a session in the loading state.
func New(opts Options) (*Session, error) {
	if err := pagination.ValidatePageSize(opts.PageSize); err != nil {
		return nil, err
	}
	return &Session{
		state:    StateLoading,
		engine:   query.NewEngine(opts.Query),
		pageSize: opts.PageSize,
		order:    opts.FacetOrder,
		page:     pagination.DefaultPage,
	}, nil
}

// Load runs load once and moves the session to Ready or, on error, to the
// terminal Failed state. No partial catalog is kept on failure.
func (s *Session) Load(ctx context.Context, load LoadFunc) error {
	log := logging.FromContext(ctx)
	if s.state != StateLoading {
		return ErrAlreadyLoaded
	}

	start := time.Now()
	records, err := load(ctx)
	if err == nil {
		err = s.SetRecords(records)
	}
	if err != nil {
		s.fail(err)
		log.Error().Ctx(ctx).
			Str("component", "browser").
			Str("operation", "load").
			Err(err).
			Msg("failed to load catalog")
		return fmt.Errorf("loading catalog: %w", err)
	}

	log.Debug().Ctx(ctx).
		Str("component", "browser").
		Str("operation", "load").
		Int("book_count", s.store.Len()).
		Int("genre_count", len(s.facets.Genres)).
		Int("age_rating_count", len(s.facets.AgeRatings)).
		Dur("duration_ms", time.Since(start)).
		Msg("catalog loaded")
	return nil
}

// SetRecords completes loading with an already-fetched record list.
func (s *Session) SetRecords(records []catalog.BookRecord) error {
	if s.state != StateLoading {
		return ErrAlreadyLoaded
	}
	store, err := catalog.NewStore(records)
	if err != nil {
		s.fail(err)
		return err
	}

	s.store = store
	all := store.Books()
	s.facets = Facets{
		Genres:     s.engine.DistinctValues(all, query.FieldGenre, s.order),
		AgeRatings: s.engine.DistinctValues(all, query.FieldAgeRating, s.order),
	}
	s.state = StateReady
	s.apply(query.Criteria{})
	return nil
}

// Fail moves a loading session to the terminal Failed state with err.
func (s *Session) Fail(err error) {
	if s.state == StateLoading {
		s.fail(err)
	}
}

func (s *Session) fail(err error) {
	s.state = StateFailed
	s.loadErr = err
	s.store = nil
	s.filtered = nil
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Err returns the load error of a failed session.
func (s *Session) Err() error {
	return s.loadErr
}

// PageSize returns the fixed page size.
func (s *Session) PageSize() int {
	return s.pageSize
}

// Criteria returns the current criteria.
func (s *Session) Criteria() query.Criteria {
	return s.criteria
}

// Facets returns the genre and age-rating values discovered at load time.
func (s *Session) Facets() (Facets, error) {
	if err := s.ready(); err != nil {
		return Facets{}, err
	}
	return s.facets, nil
}

// CatalogSize returns the number of records in the loaded catalog.
func (s *Session) CatalogSize() int {
	return s.store.Len()
}

// SetCriteria replaces the criteria wholesale, recomputes the filtered list
// and resets the current page to 1.
func (s *Session) SetCriteria(c query.Criteria) error {
	if err := s.ready(); err != nil {
		return err
	}
	if !c.Sort.Valid() {
		return fmt.Errorf("%w: %q", query.ErrUnknownSortKey, c.Sort)
	}
	s.apply(c)
	return nil
}

// Update derives new criteria from the current ones. It is a convenience for
// single-control changes such as one search keystroke.
func (s *Session) Update(change func(c query.Criteria) query.Criteria) error {
	return s.SetCriteria(change(s.criteria))
}

// Reset clears every criterion.
func (s *Session) Reset() error {
	return s.SetCriteria(query.Criteria{})
}

func (s *Session) apply(c query.Criteria) {
	s.criteria = c
	s.filtered = s.engine.Filter(s.store.Books(), c)
	s.page = pagination.DefaultPage
}

// Current returns the current page.
func (s *Session) Current() (pagination.Page[catalog.BookRecord], error) {
	if err := s.ready(); err != nil {
		return pagination.Page[catalog.BookRecord]{}, err
	}
	page := pagination.Paginate(s.filtered, s.pageSize, s.page)
	s.page = page.EffectivePage
	return page, nil
}

// Next moves to the next page, staying on the last page.
func (s *Session) Next() (pagination.Page[catalog.BookRecord], error) {
	return s.navigate(pagination.NextPage)
}

// Prev moves to the previous page, staying on the first page.
func (s *Session) Prev() (pagination.Page[catalog.BookRecord], error) {
	return s.navigate(pagination.PrevPage)
}

// GoTo moves to page n, clamped to the valid range.
func (s *Session) GoTo(n int) (pagination.Page[catalog.BookRecord], error) {
	return s.navigate(func(_, total int) int { return pagination.GoTo(n, total) })
}

// Last moves to the last page.
func (s *Session) Last() (pagination.Page[catalog.BookRecord], error) {
	return s.navigate(func(_, total int) int { return total })
}

func (s *Session) navigate(next func(current, total int) int) (pagination.Page[catalog.BookRecord], error) {
	if err := s.ready(); err != nil {
		return pagination.Page[catalog.BookRecord]{}, err
	}
	total := pagination.TotalPages(len(s.filtered), s.pageSize)
	s.page = next(s.page, total)
	return s.Current()
}

// MatchCount returns the number of records matching the current criteria.
func (s *Session) MatchCount() int {
	return len(s.filtered)
}

func (s *Session) ready() error {
	switch s.state {
	case StateReady:
		return nil
	case StateFailed:
		return fmt.Errorf("%w: %w", ErrCatalogUnavailable, s.loadErr)
	default:
		return ErrCatalogUnavailable
	}
}
