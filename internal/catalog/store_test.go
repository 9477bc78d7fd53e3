package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/bookshelf/internal/catalog"
)

func TestNewStore(t *testing.T) {
	t.Run("nil records", func(t *testing.T) {
		store, err := catalog.NewStore(nil)
		require.ErrorIs(t, err, catalog.ErrEmptySource)
		assert.Nil(t, store)
	})

	t.Run("empty records", func(t *testing.T) {
		store, err := catalog.NewStore([]catalog.BookRecord{})
		require.NoError(t, err)
		assert.Equal(t, 0, store.Len())
		assert.Empty(t, store.Books())
	})

	t.Run("copies input", func(t *testing.T) {
		records := []catalog.BookRecord{{Title: "Dune"}, {Title: "Emma"}}
		store, err := catalog.NewStore(records)
		require.NoError(t, err)

		records[0].Title = "changed"
		first, ok := store.At(0)
		require.True(t, ok)
		assert.Equal(t, "Dune", first.Title)
	})

	t.Run("books returns a copy", func(t *testing.T) {
		store, err := catalog.NewStore([]catalog.BookRecord{{Title: "Dune"}})
		require.NoError(t, err)

		books := store.Books()
		books[0].Title = "changed"
		assert.Equal(t, "Dune", store.Books()[0].Title)
	})
}

func TestStore_At(t *testing.T) {
	store, err := catalog.NewStore([]catalog.BookRecord{{Title: "Dune"}})
	require.NoError(t, err)

	_, ok := store.At(-1)
	assert.False(t, ok)
	_, ok = store.At(1)
	assert.False(t, ok)

	var nilStore *catalog.Store
	assert.Equal(t, 0, nilStore.Len())
	assert.Nil(t, nilStore.Books())
}

func TestBookRecord_IsAvailable(t *testing.T) {
	assert.True(t, catalog.BookRecord{AvailableCopies: 1}.IsAvailable())
	assert.False(t, catalog.BookRecord{AvailableCopies: 0, TotalCopies: 3}.IsAvailable())
	// Out-of-range data is treated as valid, not repaired.
	assert.True(t, catalog.BookRecord{AvailableCopies: 5, TotalCopies: 2}.IsAvailable())
}
