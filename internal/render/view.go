package render

import (
	"github.com/rshade/bookshelf/internal/catalog"
	"github.com/rshade/bookshelf/internal/pagination"
	"github.com/rshade/bookshelf/internal/query"
)

// PageView is everything a renderer needs for one page of results.
type PageView struct {
	Page        pagination.Page[catalog.BookRecord]
	Criteria    query.Criteria
	CatalogSize int
}
