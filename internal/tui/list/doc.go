// Package listview renders one page of results as a cursor-driven list
// whose items can be expanded in place.
//
// The list windows its output around the cursor so page sizes far larger
// than the terminal stay navigable. Expansion state is keyed by the item's
// index on the current page and is discarded whenever the items change.
package listview
