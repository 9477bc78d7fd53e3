package ingest

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/rshade/bookshelf/internal/catalog"
)

// Accepted spellings per field, in priority order.
//
//nolint:gochecknoglobals // Read-only lookup tables.
var (
	titleKeys       = []string{"title"}
	authorKeys      = []string{"author"}
	genreKeys       = []string{"genre"}
	ageRatingKeys   = []string{"ageRating", "age_rating", "age"}
	descriptionKeys = []string{"description"}
	coverKeys       = []string{"cover", "coverRef", "coverImage"}
	totalKeys       = []string{"totalCopies", "copies"}
	availableKeys   = []string{"availableCopies", "available"}
)

// normalizeRecord maps one decoded object onto a BookRecord. Absent or
// unusable fields become zero values.
func normalizeRecord(obj map[string]any) catalog.BookRecord {
	return catalog.BookRecord{
		Title:           stringField(obj, titleKeys),
		Author:          stringField(obj, authorKeys),
		Genre:           stringField(obj, genreKeys),
		AgeRating:       stringField(obj, ageRatingKeys),
		Description:     stringField(obj, descriptionKeys),
		CoverRef:        stringField(obj, coverKeys),
		TotalCopies:     intField(obj, totalKeys),
		AvailableCopies: intField(obj, availableKeys),
	}
}

func lookup(obj map[string]any, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := obj[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func stringField(obj map[string]any, keys []string) string {
	v, ok := lookup(obj, keys)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// intField accepts integers, whole floats and numeric strings. Negative
// counts are clamped to zero.
func intField(obj map[string]any, keys []string) int {
	v, ok := lookup(obj, keys)
	if !ok {
		return 0
	}
	var n float64
	switch t := v.(type) {
	case int:
		n = float64(t)
	case int64:
		n = float64(t)
	case uint64:
		n = float64(t)
	case float64:
		n = t
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0
		}
		n = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		n = f
	default:
		return 0
	}
	if math.IsNaN(n) || n <= 0 {
		return 0
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}
