package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/bookshelf/internal/catalog"
	"github.com/rshade/bookshelf/internal/query"
)

func TestEngine_DistinctValues_SkipsReservedAll(t *testing.T) {
	books := []catalog.BookRecord{
		{Genre: "all", AgeRating: "All"},
		{Genre: "Poetry", AgeRating: "all"},
	}
	eng := query.NewEngine(query.DefaultOptions())

	assert.Equal(t, []string{"Poetry"}, eng.DistinctValues(books, query.FieldGenre, query.OrderFirstSeen))
	assert.Equal(t, []string{"All"}, eng.DistinctValues(books, query.FieldAgeRating, query.OrderFirstSeen))
}

func TestEngine_DistinctValues(t *testing.T) {
	books := []catalog.BookRecord{
		{Genre: "Sci-Fi", AgeRating: "13+"},
		{Genre: "Romance", AgeRating: "All"},
		{Genre: "", AgeRating: "13+"},
		{Genre: "Sci-Fi", AgeRating: "18+"},
		{Genre: "mystery", AgeRating: ""},
	}
	eng := query.NewEngine(query.DefaultOptions())

	t.Run("sorted genres", func(t *testing.T) {
		got := eng.DistinctValues(books, query.FieldGenre, query.OrderSorted)
		assert.Equal(t, []string{"mystery", "Romance", "Sci-Fi"}, got)
	})

	t.Run("first-seen genres", func(t *testing.T) {
		got := eng.DistinctValues(books, query.FieldGenre, query.OrderFirstSeen)
		assert.Equal(t, []string{"Sci-Fi", "Romance", "mystery"}, got)
	})

	t.Run("sorted age ratings", func(t *testing.T) {
		got := eng.DistinctValues(books, query.FieldAgeRating, query.OrderSorted)
		assert.Equal(t, []string{"13+", "18+", "All"}, got)
	})

	t.Run("empty catalog", func(t *testing.T) {
		got := eng.DistinctValues(nil, query.FieldGenre, query.OrderSorted)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})
}

func TestParseValueOrder(t *testing.T) {
	order, err := query.ParseValueOrder("")
	require.NoError(t, err)
	assert.Equal(t, query.OrderSorted, order)

	order, err = query.ParseValueOrder("First-Seen")
	require.NoError(t, err)
	assert.Equal(t, query.OrderFirstSeen, order)

	_, err = query.ParseValueOrder("random")
	assert.Error(t, err)
}

func TestParseField(t *testing.T) {
	f, err := query.ParseField("genre")
	require.NoError(t, err)
	assert.Equal(t, query.FieldGenre, f)

	f, err = query.ParseField("age")
	require.NoError(t, err)
	assert.Equal(t, query.FieldAgeRating, f)

	_, err = query.ParseField("author")
	assert.Error(t, err)
}
