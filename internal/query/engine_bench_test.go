package query_test

import (
	"fmt"
	"testing"

	"github.com/rshade/bookshelf/internal/catalog"
	"github.com/rshade/bookshelf/internal/query"
)

func benchCatalog(count int) []catalog.BookRecord {
	books := make([]catalog.BookRecord, count)
	for i := range books {
		books[i] = catalog.BookRecord{
			Title:           fmt.Sprintf("Book %05d", count-i),
			Author:          fmt.Sprintf("Author %d", i%97),
			Genre:           fmt.Sprintf("Genre %d", i%12),
			AgeRating:       []string{"Kids", "Teen", "Adult"}[i%3],
			TotalCopies:     i%5 + 1,
			AvailableCopies: i % 3,
		}
	}
	return books
}

// BenchmarkFilter_Search measures one keystroke of search over 10k books.
func BenchmarkFilter_Search(b *testing.B) {
	b.ReportAllocs()
	books := benchCatalog(10000)
	engine := query.NewEngine(query.DefaultOptions())
	criteria := query.Criteria{SearchText: "author 4"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Filter(books, criteria)
	}
}

// BenchmarkFilter_SortByTitle measures a collated sort of 10k books.
func BenchmarkFilter_SortByTitle(b *testing.B) {
	b.ReportAllocs()
	books := benchCatalog(10000)
	engine := query.NewEngine(query.DefaultOptions())
	criteria := query.Criteria{Genre: "genre 3", Sort: query.SortTitleAsc}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Filter(books, criteria)
	}
}

// BenchmarkDistinctValues measures facet discovery at load time.
func BenchmarkDistinctValues(b *testing.B) {
	b.ReportAllocs()
	books := benchCatalog(10000)
	engine := query.NewEngine(query.DefaultOptions())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.DistinctValues(books, query.FieldGenre, query.OrderSorted)
	}
}
