// Package catalog holds the book records a browsing session works on.
//
// A Store is populated once, when the catalog source has been loaded, and is
// never mutated afterwards. Everything downstream (query engine, paginator,
// renderers) reads from it and produces new slices rather than editing records
// in place.
package catalog
