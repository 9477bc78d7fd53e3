package ingest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/bookshelf/internal/catalog"
)

func TestNormalizeRecord(t *testing.T) {
	tests := []struct {
		name string
		obj  map[string]any
		want catalog.BookRecord
	}{
		{
			name: "canonical names",
			obj: map[string]any{
				"title": "Dune", "author": "Herbert", "genre": "Sci-Fi", "ageRating": "13+",
				"description": "Spice.", "cover": "dune.jpg",
				"totalCopies": json.Number("3"), "availableCopies": json.Number("2"),
			},
			want: catalog.BookRecord{
				Title: "Dune", Author: "Herbert", Genre: "Sci-Fi", AgeRating: "13+",
				Description: "Spice.", CoverRef: "dune.jpg", TotalCopies: 3, AvailableCopies: 2,
			},
		},
		{
			name: "alternate names",
			obj: map[string]any{
				"title": "Emma", "age_rating": "All", "coverImage": "emma.png",
				"copies": 4, "available": "1",
			},
			want: catalog.BookRecord{Title: "Emma", AgeRating: "All", CoverRef: "emma.png", TotalCopies: 4, AvailableCopies: 1},
		},
		{
			name: "short age key and float counts",
			obj:  map[string]any{"age": "18+", "totalCopies": 2.0, "availableCopies": 2.7},
			want: catalog.BookRecord{AgeRating: "18+", TotalCopies: 2, AvailableCopies: 2},
		},
		{
			name: "canonical key wins over alias",
			obj:  map[string]any{"totalCopies": 5, "copies": 9},
			want: catalog.BookRecord{TotalCopies: 5},
		},
		{
			name: "unusable values become zero",
			obj: map[string]any{
				"title": []any{"x"}, "totalCopies": "many", "availableCopies": -3,
				"genre": nil,
			},
			want: catalog.BookRecord{},
		},
		{
			name: "numeric scalars in text fields",
			obj:  map[string]any{"title": 1984, "author": json.Number("42")},
			want: catalog.BookRecord{Title: "1984", Author: "42"},
		},
		{
			name: "empty object",
			obj:  map[string]any{},
			want: catalog.BookRecord{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeRecord(tt.obj))
		})
	}
}
