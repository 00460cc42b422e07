package book

import "github.com/Shivesh777/nanotick/internal/obs"

const defaultBookCapacity = 256

// Registry owns every Book of one replay run, keyed by symbol. Books
// are created lazily on first reference and never removed while the
// run lasts.
type Registry struct {
	books    map[string]*Book
	names    []string
	hints    Hints
	counters *obs.Counters
}

// NewRegistry returns an empty registry pre-sized for capacity books.
// Every book it creates shares hints and counters. counters may be
// nil.
func NewRegistry(capacity int, hints Hints, counters *obs.Counters) *Registry {
	if capacity <= 0 {
		capacity = defaultBookCapacity
	}
	return &Registry{
		books:    make(map[string]*Book, capacity),
		names:    make([]string, 0, capacity),
		hints:    hints,
		counters: counters,
	}
}

// GetOrCreate returns the book for symbol, creating an empty one on
// first use.
func (r *Registry) GetOrCreate(symbol string) *Book {
	if bk, ok := r.books[symbol]; ok {
		return bk
	}
	bk := NewBook(symbol, r.hints, r.counters)
	r.books[symbol] = bk
	r.names = append(r.names, symbol)
	return bk
}

// Lookup returns the book for symbol without creating one.
func (r *Registry) Lookup(symbol string) (*Book, bool) {
	bk, ok := r.books[symbol]
	return bk, ok
}

// Len returns the number of books created so far.
func (r *Registry) Len() int {
	return len(r.books)
}

// Symbols returns every tracked symbol in first-reference order.
func (r *Registry) Symbols() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
