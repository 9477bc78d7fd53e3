// Package pagination splits an ordered result list into fixed-size pages.
//
// This package contains:
//   - Paginate: the pure page-slicing function with clamped page numbers
//   - NextPage, PrevPage, GoTo: navigation expressed as new requested pages
//   - Params: page flag parsing and validation
//   - Meta: serializable page metadata for renderers
//
// Paginate never fails. Out-of-range requests are clamped, and an empty list
// is reported as a single empty page so renderers can show "Page 1 of 1".
package pagination
