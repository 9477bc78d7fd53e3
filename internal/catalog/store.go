package catalog

import "errors"

// ErrEmptySource is returned by NewStore when it is handed a nil record list.
// An empty, non-nil list is a valid (if dull) catalog.
var ErrEmptySource = errors.New("catalog source produced no record list")

// Store is the immutable, load-time-fixed collection of records.
type Store struct {
	books []BookRecord
}

// NewStore copies records into a new Store. Later changes to the caller's
// slice do not leak into the store.
func NewStore(records []BookRecord) (*Store, error) {
	if records == nil {
		return nil, ErrEmptySource
	}
	books := make([]BookRecord, len(records))
	copy(books, records)
	return &Store{books: books}, nil
}

// Books returns the records in load order. The returned slice is a copy.
func (s *Store) Books() []BookRecord {
	if s == nil {
		return nil
	}
	out := make([]BookRecord, len(s.books))
	copy(out, s.books)
	return out
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.books)
}

// At returns the record at index i in load order.
func (s *Store) At(i int) (BookRecord, bool) {
	if s == nil || i < 0 || i >= len(s.books) {
		return BookRecord{}, false
	}
	return s.books[i], true
}
