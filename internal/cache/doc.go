// Package cache keeps remote catalog documents on disk between runs.
//
// Entries live as JSON files under ~/.bookshelf/cache/, keyed by the SHA256 of
// the source URL. Each entry stores the response body together with the ETag
// and Last-Modified validators so an expired entry can still be revalidated
// with a conditional request instead of a full download.
package cache
