package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		want    SortKey
		wantErr error
	}{
		{name: "empty", expr: "", want: SortNone},
		{name: "none", expr: "none", want: SortNone},
		{name: "dashed key", expr: "title-desc", want: SortTitleDesc},
		{name: "upper case", expr: " AUTHOR-ASC ", want: SortAuthorAsc},
		{name: "field only", expr: "copies", want: SortCopiesAsc},
		{name: "field and order", expr: "copies:desc", want: SortCopiesDesc},
		{name: "unknown field", expr: "isbn:asc", wantErr: ErrUnknownSortKey},
		{name: "unknown dashed key", expr: "title-sideways", wantErr: ErrUnknownSortKey},
		{name: "invalid order", expr: "title:up", wantErr: ErrInvalidSortOrder},
		{name: "too many parts", expr: "title:asc:desc", wantErr: ErrInvalidSortForm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSortKey(tt.expr)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortKey_Cycle(t *testing.T) {
	key := SortNone
	seen := make([]SortKey, 0, len(sortKeys))
	for range sortKeys {
		seen = append(seen, key)
		key = key.Next()
	}
	assert.Equal(t, SortKeys(), seen)
	assert.Equal(t, SortNone, key, "cycle wraps")

	assert.Equal(t, SortCopiesDesc, SortNone.Prev())
	assert.Equal(t, SortTitleAsc, SortKey("").Next())
}

func TestSortKey_Valid(t *testing.T) {
	assert.True(t, SortKey("").Valid())
	assert.True(t, SortCopiesDesc.Valid())
	assert.False(t, SortKey("price-asc").Valid())
}

func TestSortKey_Label(t *testing.T) {
	assert.Equal(t, "Catalog order", SortNone.Label())
	assert.Equal(t, "Title (Z-A)", SortTitleDesc.Label())
	assert.Equal(t, "bogus", SortKey("bogus").Label())
}

func TestCriteria_IsUnfiltered(t *testing.T) {
	assert.True(t, Criteria{}.IsUnfiltered())
	assert.True(t, Criteria{Genre: AllValue, AgeRating: AllValue, Sort: SortNone}.IsUnfiltered())
	assert.False(t, Criteria{SearchText: "x"}.IsUnfiltered())
	assert.False(t, Criteria{AvailableOnly: true}.IsUnfiltered())
	assert.False(t, Criteria{Sort: SortTitleAsc}.IsUnfiltered())
}
