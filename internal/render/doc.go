// Package render writes catalog pages as plain text tables, JSON and NDJSON,
// and holds the wording shared with the terminal UI ("Page X of Y",
// "No books found.", record details).
package render
