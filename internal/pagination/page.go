package pagination

// Page is one page of a result list together with its position metadata.
type Page[T any] struct {
	// Items is the contiguous slice shown on this page (at most PageSize).
	Items []T

	// EffectivePage is the clamped, 1-based page number actually used.
	EffectivePage int

	// TotalPages is ceil(TotalItems/PageSize), and 1 for an empty list.
	TotalPages int

	// TotalItems is the length of the full result list.
	TotalItems int

	// PageSize is the page size used for slicing.
	PageSize int
}

// HasPrevious reports whether a page exists before this one.
func (p Page[T]) HasPrevious() bool {
	return p.EffectivePage > 1
}

// HasNext reports whether a page exists after this one.
func (p Page[T]) HasNext() bool {
	return p.EffectivePage < p.TotalPages
}

// IsEmpty reports whether the underlying result list is empty.
func (p Page[T]) IsEmpty() bool {
	return p.TotalItems == 0
}

// Meta returns the serializable metadata of the page.
func (p Page[T]) Meta() Meta {
	return Meta{
		CurrentPage: p.EffectivePage,
		PageSize:    p.PageSize,
		TotalPages:  p.TotalPages,
		TotalItems:  p.TotalItems,
		HasPrevious: p.HasPrevious(),
		HasNext:     p.HasNext(),
	}
}

// Paginate returns page requestedPage of items.
//
// A request outside [1, TotalPages] is clamped rather than rejected. A
// non-positive pageSize puts every item on a single page. The returned Items
// slice shares backing storage with items.
func Paginate[T any](items []T, pageSize, requestedPage int) Page[T] {
	total := len(items)
	if pageSize < MinPageSize {
		// No page size means a single page holding everything.
		pageSize = max(total, 1)
	}

	totalPages := TotalPages(total, pageSize)
	page := Clamp(requestedPage, totalPages)

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)
	pageItems := items[start:end:end]
	if total == 0 {
		pageItems = []T{}
	}

	return Page[T]{
		Items:         pageItems,
		EffectivePage: page,
		TotalPages:    totalPages,
		TotalItems:    total,
		PageSize:      pageSize,
	}
}

// TotalPages returns the number of pages needed for totalItems. An empty list
// still has one (empty) page.
func TotalPages(totalItems, pageSize int) int {
	if pageSize < MinPageSize || totalItems <= 0 {
		return 1
	}
	pages := totalItems / pageSize
	if totalItems%pageSize > 0 {
		pages++
	}
	return pages
}

// Clamp limits page to [1, totalPages].
func Clamp(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	switch {
	case page < MinPage:
		return MinPage
	case page > totalPages:
		return totalPages
	default:
		return page
	}
}

// NextPage returns the page to request after current. The result is clamped.
func NextPage(current, totalPages int) int {
	return Clamp(current+1, totalPages)
}

// PrevPage returns the page to request before current. The result is clamped.
func PrevPage(current, totalPages int) int {
	return Clamp(current-1, totalPages)
}

// GoTo returns the clamped page for a direct page-number request.
func GoTo(requested, totalPages int) int {
	return Clamp(requested, totalPages)
}
