// Package ingest turns catalog documents into book records.
//
// A catalog comes from a local file, standard input or an HTTP(S) URL and may
// be a JSON array, a versioned JSON envelope or a YAML list. Field names are
// normalized here, at the boundary, so the rest of the program only ever sees
// well-formed catalog.BookRecord values.
package ingest
