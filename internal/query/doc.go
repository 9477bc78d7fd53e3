// Package query turns the full catalog and the current browse criteria into
// the ordered list of matching records.
//
// It contains:
//   - Criteria: search text, genre, age rating, availability and sort key
//   - Engine: the pure filter/sort pipeline
//   - DistinctValues: discovery of selectable genre and age-rating values
//
// Nothing here keeps state between calls. The same inputs always give the
// same output, and input slices are never modified.
package query
