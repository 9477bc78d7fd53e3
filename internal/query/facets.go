package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rshade/bookshelf/internal/catalog"
)

// Field selects a categorical record attribute.
type Field string

// Fields with selectable values.
const (
	FieldGenre     Field = "genre"
	FieldAgeRating Field = "ageRating"
)

// ValueOrder controls the order DistinctValues reports values in.
type ValueOrder string

// Supported value orders.
const (
	OrderSorted    ValueOrder = "sorted"
	OrderFirstSeen ValueOrder = "first-seen"
)

// ParseValueOrder parses a facet order name. Empty means OrderSorted.
func ParseValueOrder(s string) (ValueOrder, error) {
	switch ValueOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", OrderSorted:
		return OrderSorted, nil
	case OrderFirstSeen:
		return OrderFirstSeen, nil
	default:
		return "", fmt.Errorf("unknown facet order %q (valid: %s, %s)", s, OrderSorted, OrderFirstSeen)
	}
}

// ParseField parses a field name as accepted on the command line.
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "genre", "genres":
		return FieldGenre, nil
	case "age", "agerating", "age-rating", "age_rating":
		return FieldAgeRating, nil
	default:
		return "", fmt.Errorf("unknown field %q (valid: genre, age)", s)
	}
}

// DistinctValues returns each distinct, non-empty value of field in all.
// AllValue is reserved for "no filter" and is never offered as a value.
// It is meant to be computed once per loaded catalog, not per query.
func (e *Engine) DistinctValues(all []catalog.BookRecord, field Field, order ValueOrder) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, book := range all {
		v := fieldValue(book, field)
		if v == "" || v == AllValue || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}

	if order != OrderFirstSeen {
		col := e.newCollator()
		sort.SliceStable(values, func(i, j int) bool {
			return col.CompareString(values[i], values[j]) < 0
		})
	}
	return values
}

func fieldValue(book catalog.BookRecord, field Field) string {
	switch field {
	case FieldGenre:
		return book.Genre
	case FieldAgeRating:
		return book.AgeRating
	default:
		return ""
	}
}
